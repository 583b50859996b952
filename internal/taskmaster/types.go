package taskmaster

// Status is the Taskmaster task status.
type Status string

const (
	StatusDone       Status = "done"
	StatusInProgress Status = "in-progress"
	StatusPending    Status = "pending"
	StatusBlocked    Status = "blocked"
	StatusUnknown    Status = "unknown"
)

// ParseStatus maps a raw status string to a known Status, defaulting to
// StatusUnknown for anything unrecognized.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusDone, StatusInProgress, StatusPending, StatusBlocked:
		return Status(s)
	}
	return StatusUnknown
}

// Task is a single flattened Taskmaster task.
type Task struct {
	ID           ID
	Title        string
	Status       Status
	Dependencies []string // raw dependency ids, may reference ids outside the set
}

// Set holds the flattened task hierarchy keyed by id. It is immutable for
// the duration of a scheduling run and does not validate acyclicity.
type Set struct {
	Tasks map[ID]*Task
}

// NewSet builds a Set from tasks, last writer wins on duplicate ids.
func NewSet(tasks []*Task) *Set {
	s := &Set{Tasks: make(map[ID]*Task, len(tasks))}
	for _, t := range tasks {
		s.Tasks[t.ID] = t
	}
	return s
}

// Len returns the number of tasks in the set.
func (s *Set) Len() int { return len(s.Tasks) }

// IDs returns all task ids in numeric-aware sorted order.
func (s *Set) IDs() []ID {
	ids := make([]ID, 0, len(s.Tasks))
	for id := range s.Tasks {
		ids = append(ids, id)
	}
	SortIDs(ids)
	return ids
}

// Deps returns the dependency ids of id that are present in the set, in
// sorted order. Unresolved references are dropped, not an error.
func (s *Set) Deps(id ID) []ID {
	t, ok := s.Tasks[id]
	if !ok {
		return nil
	}
	var deps []ID
	seen := make(map[ID]bool)
	for _, raw := range t.Dependencies {
		dep := ID(raw)
		if seen[dep] {
			continue
		}
		if _, ok := s.Tasks[dep]; ok {
			seen[dep] = true
			deps = append(deps, dep)
		}
	}
	SortIDs(deps)
	return deps
}
