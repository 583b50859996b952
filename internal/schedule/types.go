package schedule

import (
	"time"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/calendar"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/facts"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/taskmaster"
)

// ColorClassChecklist marks synthetic checklist entries; task entries use
// their status name as color class.
const ColorClassChecklist = "checklist"

// Entry is one scheduled bar. Finish is the exclusive end of a closed-open
// interval; Finish is always at least one day after Start.
type Entry struct {
	ID         taskmaster.ID
	Label      string
	Start      time.Time
	Finish     time.Time
	Status     taskmaster.Status
	ColorClass string
}

// Schedule is the ordered output of a scheduling run, indexed by id for
// renderer dependency lookups.
type Schedule struct {
	Entries []Entry
	index   map[taskmaster.ID]int
}

// Len returns the number of entries.
func (s *Schedule) Len() int { return len(s.Entries) }

// ByID returns the entry for id. When a checklist entry and a real task
// share an id, the real task wins.
func (s *Schedule) ByID(id taskmaster.ID) (Entry, bool) {
	i, ok := s.index[id]
	if !ok {
		return Entry{}, false
	}
	return s.Entries[i], true
}

// Input is the immutable snapshot a scheduling run computes over. The
// engine performs no I/O; retrieval must complete before Compute is called.
type Input struct {
	Tasks         *taskmaster.Set
	Facts         facts.Source
	Calendar      *calendar.Calendar
	OverrideStart *time.Time
	Today         time.Time // injectable for tests; zero means time.Now
}
