package domain

import "sort"

// CourseSet is an unordered set of course IDs. Listing is always sorted so
// every output built from a set is deterministic.
type CourseSet map[string]struct{}

// NewCourseSet builds a set from the given IDs. Empty IDs are ignored.
func NewCourseSet(ids ...string) CourseSet {
	s := make(CourseSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s CourseSet) Add(id string) {
	if id == "" {
		return
	}
	s[id] = struct{}{}
}

func (s CourseSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s CourseSet) Len() int { return len(s) }

// Clone returns an independent copy.
func (s CourseSet) Clone() CourseSet {
	out := make(CourseSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Union returns a new set with the members of s and other.
func (s CourseSet) Union(other CourseSet) CourseSet {
	out := s.Clone()
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Difference returns a new set with the members of s not in other.
func (s CourseSet) Difference(other CourseSet) CourseSet {
	out := make(CourseSet, len(s))
	for id := range s {
		if !other.Contains(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Intersects reports whether s and other share any member.
func (s CourseSet) Intersects(other CourseSet) bool {
	for id := range s {
		if other.Contains(id) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every id is in s. An empty list is satisfied.
func (s CourseSet) ContainsAll(ids []string) bool {
	for _, id := range ids {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one id is in s.
func (s CourseSet) ContainsAny(ids []string) bool {
	for _, id := range ids {
		if s.Contains(id) {
			return true
		}
	}
	return false
}

// CountIn returns how many of ids are in s.
func (s CourseSet) CountIn(ids []string) int {
	n := 0
	for _, id := range ids {
		if s.Contains(id) {
			n++
		}
	}
	return n
}

// Sorted lists the members in ascending order.
func (s CourseSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
