// Package schedule computes earliest-feasible start/finish dates for every
// task by reconciling dependency order, external tracker facts, and a
// working-day calendar.
package schedule

import (
	"fmt"
	"time"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/calendar"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/facts"
	"github.com/hiono/taskmaster-gitlab-gantt/internal/taskmaster"
)

// slot is the mutable per-task scheduling state.
type slot struct {
	start, end       time.Time
	hasStart, hasEnd bool
}

// Compute resolves a complete schedule for the input snapshot. Missing
// facts degrade to documented fallbacks and never fail; the only error is a
// dependency cycle among tasks present in the set.
func Compute(in Input) (*Schedule, error) {
	sched := &Schedule{index: make(map[taskmaster.ID]int)}
	if in.Tasks == nil || in.Tasks.Len() == 0 {
		return sched, nil
	}
	if in.Calendar == nil {
		in.Calendar = calendar.New("", nil)
	}

	today := midnight(in.Today)
	if in.Today.IsZero() {
		today = midnight(time.Now())
	}
	var override *time.Time
	if in.OverrideStart != nil {
		d := midnight(*in.OverrideStart)
		override = &d
	}

	order, err := topoOrder(in.Tasks)
	if err != nil {
		return nil, err
	}

	slots := seedEnds(in, today)
	earliestCreated := facts.EarliestCreation(in.Facts)
	for _, id := range order {
		resolve(in, slots, id, today, override, earliestCreated)
	}

	materialize(in, slots, today, sched)
	return sched, nil
}

// seedEnds assigns every task a provisional end date: the closed date for
// done tasks, the due date when known, otherwise a week out. An overdue
// non-done task is extended to today so it stays visible as still-running.
func seedEnds(in Input, today time.Time) map[taskmaster.ID]*slot {
	slots := make(map[taskmaster.ID]*slot, in.Tasks.Len())
	for id, t := range in.Tasks.Tasks {
		f := in.Facts[id]
		s := &slot{hasEnd: true}
		switch {
		case t.Status == taskmaster.StatusDone && f.ClosedOn != nil:
			s.end = *f.ClosedOn
		case f.DueOn != nil:
			s.end = *f.DueOn
		default:
			s.end = today.AddDate(0, 0, 7)
		}
		if t.Status != taskmaster.StatusDone && s.end.Before(today) {
			s.end = today
		}
		slots[id] = s
	}
	return slots
}

// resolve fixes the start (and possibly extends the end) of one task. Tasks
// are visited in dependency order, so every in-set dependency end is final
// by the time its dependents read it.
func resolve(in Input, slots map[taskmaster.ID]*slot, id taskmaster.ID, today time.Time, override, earliestCreated *time.Time) {
	t := in.Tasks.Tasks[id]
	f := in.Facts[id]
	s := slots[id]

	if t.Status == taskmaster.StatusDone {
		if f.CreatedOn != nil {
			s.start = *f.CreatedOn
		} else {
			s.start = s.end.AddDate(0, 0, -1)
		}
		s.hasStart = true
		// Closure before creation is a data anomaly; collapse, then pad
		// back to a visible one-day bar.
		if s.start.After(s.end) {
			s.start = s.end
		}
		if s.start.Equal(s.end) {
			s.end = s.end.AddDate(0, 0, 1)
		}
		return
	}

	var candidates []time.Time
	if f.CreatedOn != nil {
		c := *f.CreatedOn
		if override != nil && override.After(c) {
			c = *override
		}
		candidates = append(candidates, c)
	}
	for _, dep := range in.Tasks.Deps(id) {
		ds := slots[dep]
		if ds.hasEnd {
			candidates = append(candidates, in.Calendar.NextWorkingDay(ds.end))
		}
	}

	var start time.Time
	if len(candidates) > 0 {
		start = candidates[0]
		for _, c := range candidates[1:] {
			if c.After(start) {
				start = c
			}
		}
	} else {
		switch {
		case override != nil:
			start = *override
		case earliestCreated != nil:
			start = *earliestCreated
		default:
			start = today
		}
	}

	// Start only ever moves later, never earlier.
	if !s.hasStart || start.After(s.start) {
		s.start = start
		s.hasStart = true
	}
	if !s.end.After(s.start) {
		s.end = s.start.AddDate(0, 0, 1)
	}
}

// materialize emits entries in id order, appending one synthetic entry per
// checklist item directly after its parent. Checklist items share the
// parent's interval; they are not independently scheduled.
func materialize(in Input, slots map[taskmaster.ID]*slot, today time.Time, sched *Schedule) {
	add := func(e Entry) {
		sched.Entries = append(sched.Entries, e)
		sched.index[e.ID] = len(sched.Entries) - 1
	}

	for _, id := range in.Tasks.IDs() {
		t := in.Tasks.Tasks[id]
		s := slots[id]

		// Terminal fallback; resolution always sets both, but a total
		// engine must not emit zero dates.
		if !s.hasStart {
			s.start = today
		}
		if !s.hasEnd {
			s.end = s.start.AddDate(0, 0, 7)
		}

		add(Entry{
			ID:         id,
			Label:      fmt.Sprintf("%s: %s", id, t.Title),
			Start:      s.start,
			Finish:     s.end,
			Status:     t.Status,
			ColorClass: string(t.Status),
		})

		for i, item := range in.Facts[id].Checklist {
			itemID := taskmaster.ID(fmt.Sprintf("%s.%d", id, i+1))
			status := taskmaster.StatusPending
			if item.Completed {
				status = taskmaster.StatusDone
			}
			add(Entry{
				ID:         itemID,
				Label:      fmt.Sprintf("%s: %s", itemID, item.Title),
				Start:      s.start,
				Finish:     s.end,
				Status:     status,
				ColorClass: ColorClassChecklist,
			})
		}
	}

	// Real tasks win index collisions with synthetic checklist ids.
	for i, e := range sched.Entries {
		if _, ok := in.Tasks.Tasks[e.ID]; ok {
			sched.index[e.ID] = i
		}
	}
}

// midnight truncates t to its UTC calendar date.
func midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
