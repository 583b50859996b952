package render

import (
	"fmt"
	"io"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/schedule"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/taskmaster"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/ui"
)

// Summary writes a terminal-friendly overview of the computed schedule.
func Summary(w io.Writer, sched *schedule.Schedule, set *taskmaster.Set, title string) {
	tasks := 0
	done := 0
	for _, e := range sched.Entries {
		if e.ColorClass == schedule.ColorClassChecklist {
			continue
		}
		tasks++
		if e.Status == taskmaster.StatusDone {
			done++
		}
	}

	fmt.Fprintf(w, "%s %s\n", ui.BoldCyan("📅 Schedule:"), ui.Bold(title))
	fmt.Fprintf(w, "%s of %s tasks done, %d entries total\n\n", ui.Bold(done), ui.Bold(tasks), sched.Len())

	for _, e := range sched.Entries {
		indent := ""
		if e.ColorClass == schedule.ColorClassChecklist {
			indent = "  "
		}
		fmt.Fprintf(w, "%s%s %s  %s %s %s",
			indent,
			ui.StatusIcon(e.Status),
			ui.BoldMagenta(string(e.ID)),
			e.Start.Format(dayFormat),
			ui.Dim("→"),
			e.Finish.Format(dayFormat))

		if deps := set.Deps(e.ID); len(deps) > 0 {
			fmt.Fprintf(w, "  %s", ui.Dim(fmt.Sprintf("after %v", deps)))
		}
		fmt.Fprintln(w)
	}
}
