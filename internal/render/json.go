package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/schedule"
)

// entryJSON is the wire shape of one schedule entry; dates are plain
// calendar dates, not timestamps.
type entryJSON struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Start      string `json:"start"`
	Finish     string `json:"finish"`
	Status     string `json:"status"`
	ColorClass string `json:"color_class"`
}

// JSON writes the schedule as an indented JSON entry list.
func JSON(w io.Writer, sched *schedule.Schedule) error {
	entries := make([]entryJSON, len(sched.Entries))
	for i, e := range sched.Entries {
		entries[i] = entryJSON{
			ID:         string(e.ID),
			Label:      e.Label,
			Start:      e.Start.Format(dayFormat),
			Finish:     e.Finish.Format(dayFormat),
			Status:     string(e.Status),
			ColorClass: e.ColorClass,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	return nil
}
