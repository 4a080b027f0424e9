// Package lookahead measures how many further courses each candidate would
// open up if the student completed it next.
package lookahead

import (
	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/eligibility"
)

// Score is the lookahead result for one candidate course.
type Score struct {
	CourseID string
	Future   []string
}

// Value is the number of courses the candidate would unlock.
func (s Score) Value() int { return len(s.Future) }

// Scorer runs the lookahead pass for one major. It walks the whole catalog
// once per candidate, so its cost grows with candidates × catalog size.
type Scorer struct {
	evaluator *eligibility.Evaluator
}

// NewScorer creates a scorer over the major's evaluator.
func NewScorer(ev *eligibility.Evaluator) *Scorer {
	return &Scorer{evaluator: ev}
}

// Future returns the courses that candidate would newly unlock for the
// student. The hypothetical history is the snapshot's completed set plus
// candidate; plain courses use the full rule and special courses only the
// gate half. Courses already completed, already known to be reachable or
// the candidate itself are never reported.
func (s *Scorer) Future(snap *domain.StudentSnapshot, known domain.CourseSet, candidate string) []string {
	hypothetical := snap.Completed.Clone()
	hypothetical.Add(candidate)

	probe := *snap
	probe.Completed = hypothetical

	unlocked := s.evaluator.EligiblePlain(hypothetical).
		Union(s.evaluator.UnlockedReduced(hypothetical, &probe))

	return unlocked.Difference(hypothetical.Union(known)).Sorted()
}

// ScoreAll scores every candidate in ascending course order. known is the
// set already reachable by the student; it normally includes candidates.
func (s *Scorer) ScoreAll(snap *domain.StudentSnapshot, candidates, known domain.CourseSet) []Score {
	ids := candidates.Sorted()
	reachable := known.Union(candidates)
	out := make([]Score, 0, len(ids))
	for _, c := range ids {
		out = append(out, Score{CourseID: c, Future: s.Future(snap, reachable, c)})
	}
	return out
}
