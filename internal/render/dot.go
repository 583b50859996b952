package render

import (
	"fmt"
	"io"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/schedule"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/taskmaster"
)

// DOT writes the dependency graph as a Graphviz digraph, with nodes
// annotated by their computed dates and colored by status.
func DOT(w io.Writer, sched *schedule.Schedule, set *taskmaster.Set) error {
	fmt.Fprintln(w, "digraph gantt {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=box, style=\"rounded,filled\"];")
	fmt.Fprintln(w)

	for _, id := range set.IDs() {
		task := set.Tasks[id]
		label := fmt.Sprintf("%s\\n%s", id, task.Title)
		if e, ok := sched.ByID(id); ok {
			label = fmt.Sprintf("%s\\n%s .. %s", label, e.Start.Format(dayFormat), e.Finish.Format(dayFormat))
		}
		fill := ColorHex[string(task.Status)]
		fmt.Fprintf(w, "  %q [label=\"%s\", fillcolor=\"%s22\", color=\"%s\"];\n", string(id), label, fill, fill)
	}

	fmt.Fprintln(w)

	for _, id := range set.IDs() {
		for _, dep := range set.Deps(id) {
			fmt.Fprintf(w, "  %q -> %q;\n", string(dep), string(id))
		}
	}

	fmt.Fprintln(w, "}")
	return nil
}
