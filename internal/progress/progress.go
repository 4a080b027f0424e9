// Package progress compares a student's completed courses with the
// major's per-area requirements.
package progress

import (
	"sort"

	"github.com/alexanderramin/pathway/internal/domain"
)

// Requirements is the read-only view of a major's catalog metadata,
// requirements table and weights table.
type Requirements interface {
	Meta(courseID string) (domain.CourseMeta, bool)
	Required(area string) int
	Weight(area string) float64
	Areas() []string
}

// Area is one row of a student's progress table.
type Area struct {
	Area        string
	Taken       int
	Required    int
	Remaining   int
	Weight      float64
	WeightScore float64
}

// Report is the progress of one student.
type Report struct {
	StudentID string
	Areas     []Area

	// FreeElectiveTaken counts completed GE electives.
	FreeElectiveTaken int

	// Unmapped lists completed courses with no catalog metadata.
	Unmapped []string

	byArea map[string]int
}

// Compute counts distinct completed courses per area and joins them with
// the requirements. Remaining never goes below zero and an area without a
// weight contributes nothing.
func Compute(studentID string, completed domain.CourseSet, req Requirements) Report {
	taken := make(map[string]int)
	r := Report{StudentID: studentID}
	for _, id := range completed.Sorted() {
		meta, ok := req.Meta(id)
		if !ok {
			r.Unmapped = append(r.Unmapped, id)
			continue
		}
		taken[meta.AreaOfStudy]++
	}
	r.FreeElectiveTaken = taken[domain.AreaFreeElective]

	areas := make(map[string]bool)
	for _, a := range req.Areas() {
		areas[a] = true
	}
	for a := range taken {
		areas[a] = true
	}
	names := make([]string, 0, len(areas))
	for a := range areas {
		names = append(names, a)
	}
	sort.Strings(names)

	r.byArea = make(map[string]int, len(names))
	for _, a := range names {
		row := Area{
			Area:     a,
			Taken:    taken[a],
			Required: req.Required(a),
			Weight:   req.Weight(a),
		}
		row.Remaining = max(row.Required-row.Taken, 0)
		row.WeightScore = float64(row.Remaining) * row.Weight
		r.byArea[a] = len(r.Areas)
		r.Areas = append(r.Areas, row)
	}
	return r
}

// Lookup returns the row for area.
func (r Report) Lookup(area string) (Area, bool) {
	i, ok := r.byArea[area]
	if !ok {
		return Area{}, false
	}
	return r.Areas[i], true
}

// WeightScore is the remaining-weight score of area; 0 for an unknown area.
func (r Report) WeightScore(area string) float64 {
	a, _ := r.Lookup(area)
	return a.WeightScore
}

// TotalRemaining sums Remaining across areas.
func (r Report) TotalRemaining() int {
	var n int
	for _, a := range r.Areas {
		n += a.Remaining
	}
	return n
}
