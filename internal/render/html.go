package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/schedule"
)

var htmlTemplate = template.Must(template.New("gantt").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 2rem; }
  h1 { font-size: 1.3rem; }
</style>
<script type="module">
  import mermaid from "https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs";
  mermaid.initialize({ startOnLoad: true, gantt: { useWidth: 1200 } });
</script>
</head>
<body>
<h1>{{.Title}}</h1>
<pre class="mermaid">
{{.Diagram}}</pre>
</body>
</html>
`))

// HTML writes a self-contained page embedding the Mermaid gantt diagram.
func HTML(w io.Writer, sched *schedule.Schedule, title string) error {
	var diagram strings.Builder
	if err := Mermaid(&diagram, sched, title); err != nil {
		return err
	}
	err := htmlTemplate.Execute(w, struct {
		Title   string
		Diagram string
	}{Title: title, Diagram: diagram.String()})
	if err != nil {
		return fmt.Errorf("render HTML: %w", err)
	}
	return nil
}
