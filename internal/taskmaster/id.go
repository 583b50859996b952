package taskmaster

import (
	"sort"
	"strconv"
	"strings"
)

// ID is a dot-delimited hierarchical task identifier such as "3" or "3.2".
// IDs order segment-wise with numeric segments compared by value, so
// "1.2" < "1.10" and "2" < "10".
type ID string

func (id ID) String() string { return string(id) }

// Segments splits the id at dots.
func (id ID) Segments() []string { return strings.Split(string(id), ".") }

// Less reports whether id orders before other.
func (id ID) Less(other ID) bool { return Compare(id, other) < 0 }

// Compare orders two ids segment-wise. Numeric segments compare by value;
// a numeric segment sorts before a non-numeric one; equal prefixes are
// broken by segment count.
func Compare(a, b ID) int {
	as, bs := a.Segments(), b.Segments()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

func compareSegment(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// SortIDs sorts ids in place using segment-wise numeric-aware ordering.
func SortIDs(ids []ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}
