package eligibility

import "sort"

// SpecialRequirement is a catalog entry whose rule is a named predicate
// instead of the all-prerequisites check.
type SpecialRequirement struct {
	Prerequisites []string
	Condition     string
}

// Catalog is one major's prerequisite table, split into the plain and the
// special partition. A course appears in exactly one of the two maps.
type Catalog struct {
	Plain   map[string][]string
	Special map[string]SpecialRequirement
}

// NewCatalog returns an empty catalog ready for population.
func NewCatalog() *Catalog {
	return &Catalog{
		Plain:   make(map[string][]string),
		Special: make(map[string]SpecialRequirement),
	}
}

// Has reports whether the course is in either partition.
func (c *Catalog) Has(courseID string) bool {
	if _, ok := c.Plain[courseID]; ok {
		return true
	}
	_, ok := c.Special[courseID]
	return ok
}

// PlainCourses lists the plain partition in ascending order.
func (c *Catalog) PlainCourses() []string {
	return sortedKeys(c.Plain)
}

// SpecialCourses lists the special partition in ascending order.
func (c *Catalog) SpecialCourses() []string {
	return sortedKeys(c.Special)
}

// Size is the number of courses across both partitions.
func (c *Catalog) Size() int {
	return len(c.Plain) + len(c.Special)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
