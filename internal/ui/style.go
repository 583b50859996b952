package ui

import (
	"github.com/fatih/color"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/taskmaster"
)

// Sprint color functions for building styled strings.
var (
	Bold        = color.New(color.Bold).SprintFunc()
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Green       = color.New(color.FgGreen).SprintFunc()
	Red         = color.New(color.FgRed).SprintFunc()
	Yellow      = color.New(color.FgYellow).SprintFunc()
	Magenta     = color.New(color.FgMagenta).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed     = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldYellow  = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	BoldWhite   = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// StatusIcon returns a colored icon for a task status.
func StatusIcon(status taskmaster.Status) string {
	switch status {
	case taskmaster.StatusDone:
		return Green("✓")
	case taskmaster.StatusInProgress:
		return Cyan("●")
	case taskmaster.StatusBlocked:
		return Red("✗")
	case taskmaster.StatusPending:
		return Yellow("◌")
	default:
		return Dim("?")
	}
}
