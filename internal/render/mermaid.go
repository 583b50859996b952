// Package render turns a computed Schedule into consumable output: Mermaid
// gantt text, a self-contained HTML page, a Graphviz dependency graph,
// machine-readable JSON, and a colored terminal summary.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/schedule"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/taskmaster"
)

const dayFormat = "2006-01-02"

// ColorHex maps a color class to its display color.
var ColorHex = map[string]string{
	string(taskmaster.StatusDone):       "#28a745",
	string(taskmaster.StatusInProgress): "#fd7e14",
	string(taskmaster.StatusPending):    "#007bff",
	string(taskmaster.StatusBlocked):    "#dc3545",
	string(taskmaster.StatusUnknown):    "#6c757d",
	schedule.ColorClassChecklist:        "#A0A0A0",
}

// Mermaid writes the schedule as a Mermaid gantt diagram.
func Mermaid(w io.Writer, sched *schedule.Schedule, title string) error {
	var b strings.Builder
	b.WriteString("gantt\n")
	if title != "" {
		fmt.Fprintf(&b, "    title %s\n", sanitizeLabel(title))
	}
	b.WriteString("    dateFormat YYYY-MM-DD\n")
	b.WriteString("    excludes weekends\n")
	b.WriteString("    section Tasks\n")

	for _, e := range sched.Entries {
		meta := []string{}
		if tag := statusTag(e); tag != "" {
			meta = append(meta, tag)
		}
		meta = append(meta, mermaidID(e.ID), e.Start.Format(dayFormat), e.Finish.Format(dayFormat))
		fmt.Fprintf(&b, "    %s :%s\n", sanitizeLabel(e.Label), strings.Join(meta, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// statusTag maps an entry to a Mermaid task tag.
func statusTag(e schedule.Entry) string {
	switch e.Status {
	case taskmaster.StatusDone:
		return "done"
	case taskmaster.StatusInProgress:
		return "active"
	case taskmaster.StatusBlocked:
		return "crit"
	}
	return ""
}

// sanitizeLabel strips characters Mermaid treats as metadata delimiters.
func sanitizeLabel(s string) string {
	s = strings.ReplaceAll(s, ":", " -")
	s = strings.ReplaceAll(s, "#", "")
	return strings.TrimSpace(s)
}

// mermaidID converts a dotted task id into a Mermaid-safe identifier.
func mermaidID(id taskmaster.ID) string {
	return "t" + strings.ReplaceAll(string(id), ".", "_")
}
