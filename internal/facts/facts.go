// Package facts turns externally-tracked issue records into per-task date
// and checklist facts. Facts are read-only inputs to scheduling; the engine
// never mutates them.
package facts

import (
	"regexp"
	"strings"
	"time"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/gitlab"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/taskmaster"
)

// ChecklistItem is one Markdown task-list entry from an issue description.
type ChecklistItem struct {
	Title     string
	Completed bool
}

// Fact holds the optional external facts for one task. All dates are
// normalized to UTC midnight.
type Fact struct {
	CreatedOn *time.Time
	DueOn     *time.Time
	ClosedOn  *time.Time
	Checklist []ChecklistItem
}

// Source maps task id to its fact. Absent ids simply have no facts.
type Source map[taskmaster.ID]Fact

// titleIDPattern matches the "<id>: <title>" issue naming convention.
var titleIDPattern = regexp.MustCompile(`^([0-9.]+):`)

// Match builds a Source from issues whose titles carry a task id prefix.
// Issues without the prefix are ignored.
func Match(issues []gitlab.Issue) Source {
	src := make(Source)
	for _, is := range issues {
		m := titleIDPattern.FindStringSubmatch(is.Title)
		if m == nil {
			continue
		}
		src[taskmaster.ID(m[1])] = Fact{
			CreatedOn: day(is.CreatedAt),
			DueOn:     day(is.DueDate),
			ClosedOn:  day(is.ClosedAt),
			Checklist: ParseChecklist(is.Description),
		}
	}
	return src
}

// checklistPattern matches "- [ ] title" and "- [x] title" lines with
// optional leading whitespace.
var checklistPattern = regexp.MustCompile(`^[ \t]*- \[([ xX])\] (.*)$`)

// ParseChecklist extracts Markdown task-list items from free text,
// preserving their order.
func ParseChecklist(text string) []ChecklistItem {
	if text == "" {
		return nil
	}
	var items []ChecklistItem
	for _, line := range strings.Split(text, "\n") {
		m := checklistPattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		items = append(items, ChecklistItem{
			Title:     strings.TrimSpace(m[2]),
			Completed: strings.EqualFold(m[1], "x"),
		})
	}
	return items
}

// EarliestCreation returns the earliest creation date across all facts, or
// nil when no fact carries one.
func EarliestCreation(src Source) *time.Time {
	var earliest *time.Time
	for _, f := range src {
		if f.CreatedOn == nil {
			continue
		}
		if earliest == nil || f.CreatedOn.Before(*earliest) {
			d := *f.CreatedOn
			earliest = &d
		}
	}
	return earliest
}

// day truncates a timestamp to its UTC calendar date.
func day(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	d := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
