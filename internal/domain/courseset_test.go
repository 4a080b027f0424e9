package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseSet_IgnoresEmptyIDs(t *testing.T) {
	s := NewCourseSet("MATH101", "", "ENGL101")
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(""))
}

func TestCourseSet_SortedIsDeterministic(t *testing.T) {
	s := NewCourseSet("MATH201", "ACC101", "CS110")
	assert.Equal(t, []string{"ACC101", "CS110", "MATH201"}, s.Sorted())
}

func TestCourseSet_UnionAndDifferenceDoNotMutate(t *testing.T) {
	a := NewCourseSet("A", "B")
	b := NewCourseSet("B", "C")

	u := a.Union(b)
	d := a.Difference(b)

	assert.Equal(t, []string{"A", "B", "C"}, u.Sorted())
	assert.Equal(t, []string{"A"}, d.Sorted())
	assert.Equal(t, []string{"A", "B"}, a.Sorted(), "receiver must be unchanged")
}

func TestCourseSet_Predicates(t *testing.T) {
	s := NewCourseSet("A", "B", "C")

	assert.True(t, s.ContainsAll(nil), "empty requirement list is satisfied")
	assert.True(t, s.ContainsAll([]string{"A", "C"}))
	assert.False(t, s.ContainsAll([]string{"A", "D"}))
	assert.True(t, s.ContainsAny([]string{"D", "B"}))
	assert.False(t, s.ContainsAny(nil))
	assert.Equal(t, 2, s.CountIn([]string{"A", "B", "X", "Y"}))
	assert.True(t, s.Intersects(NewCourseSet("Z", "C")))
}

func TestCoRequisiteCombination_Target(t *testing.T) {
	assert.Equal(t, "Z", CoRequisiteCombination{"X", "Y", "Z"}.Target())
	assert.Equal(t, "", CoRequisiteCombination{}.Target())
}
