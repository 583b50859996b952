package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/calendar"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/facts"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/schedule"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/taskmaster"
)

func testSchedule(t *testing.T) (*schedule.Schedule, *taskmaster.Set) {
	t.Helper()
	set := taskmaster.NewSet([]*taskmaster.Task{
		{ID: "1", Title: "Bootstrap", Status: taskmaster.StatusDone},
		{ID: "2", Title: "Build: parser", Status: taskmaster.StatusInProgress, Dependencies: []string{"1"}},
	})
	src := facts.Source{
		"1": {
			CreatedOn: dateP(2026, time.January, 5),
			ClosedOn:  dateP(2026, time.January, 9),
		},
	}
	sched, err := schedule.Compute(schedule.Input{
		Tasks:    set,
		Facts:    src,
		Calendar: calendar.New("", nil),
		Today:    time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("compute schedule: %v", err)
	}
	return sched, set
}

func dateP(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMermaid(t *testing.T) {
	sched, _ := testSchedule(t)

	var b strings.Builder
	if err := Mermaid(&b, sched, "Demo Project"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"gantt\n",
		"title Demo Project",
		"dateFormat YYYY-MM-DD",
		"excludes weekends",
		"1 - Bootstrap :done, t1, 2026-01-05, 2026-01-09",
		"active, t2,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("mermaid output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Build: parser") {
		t.Errorf("label colon should be sanitized:\n%s", out)
	}
}

func TestHTML(t *testing.T) {
	sched, _ := testSchedule(t)

	var b strings.Builder
	if err := HTML(&b, sched, "Demo Project"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, "<pre class=\"mermaid\">") {
		t.Errorf("HTML output missing mermaid block:\n%s", out)
	}
	if !strings.Contains(out, "<title>Demo Project</title>") {
		t.Errorf("HTML output missing title")
	}
}

func TestDOT(t *testing.T) {
	sched, set := testSchedule(t)

	var b strings.Builder
	if err := DOT(&b, sched, set); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, "digraph gantt {") {
		t.Errorf("DOT output missing digraph header:\n%s", out)
	}
	if !strings.Contains(out, `"1" -> "2";`) {
		t.Errorf("DOT output missing dependency edge:\n%s", out)
	}
	if !strings.Contains(out, "2026-01-05 .. 2026-01-09") {
		t.Errorf("DOT output missing date annotation:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	sched, _ := testSchedule(t)

	var b strings.Builder
	if err := JSON(&b, sched); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var entries []map[string]string
	if err := json.Unmarshal([]byte(b.String()), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0]
	for _, key := range []string{"id", "label", "start", "finish", "status", "color_class"} {
		if _, ok := first[key]; !ok {
			t.Errorf("entry missing key %q: %v", key, first)
		}
	}
	if first["start"] != "2026-01-05" {
		t.Errorf("start = %q, want 2026-01-05", first["start"])
	}
}

func TestSummary(t *testing.T) {
	sched, set := testSchedule(t)

	var b strings.Builder
	Summary(&b, sched, set, "Demo Project")
	out := b.String()

	if !strings.Contains(out, "Demo Project") {
		t.Errorf("summary missing title:\n%s", out)
	}
	if !strings.Contains(out, "2026-01-05") {
		t.Errorf("summary missing dates:\n%s", out)
	}
}
