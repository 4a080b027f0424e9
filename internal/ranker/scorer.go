// Package ranker normalizes per-student signals and produces the two
// recommendation lists.
package ranker

import "github.com/alexanderramin/pathway/internal/domain"

// Weights blends the normalized signals into the final score.
type Weights struct {
	CourseScore     float64
	RemainingWeight float64
	Level           float64
}

// DefaultWeights are the fixed blend used by every major.
func DefaultWeights() Weights {
	return Weights{
		CourseScore:     0.4,
		RemainingWeight: 0.4,
		Level:           0.2,
	}
}

// Score returns a copy of rows with normalized signals and final scores
// filled in. Rows are expected to belong to one student; each signal is
// divided by that student's maximum, and a maximum of 0 yields 0.
func Score(rows []domain.RecommendationRow, w Weights) []domain.RecommendationRow {
	out := make([]domain.RecommendationRow, len(rows))
	copy(out, rows)
	if len(out) == 0 {
		return out
	}

	var maxCourse, maxRemaining float64
	var maxLevel int
	for _, r := range out {
		maxCourse = max(maxCourse, float64(r.CourseScore))
		maxRemaining = max(maxRemaining, r.RemainingWeightScore)
		maxLevel = max(maxLevel, r.CourseLevel)
	}

	for i := range out {
		r := &out[i]
		r.NormalizedCourseScore = ratio(float64(r.CourseScore), maxCourse)
		r.NormalizedRemainingWeight = ratio(r.RemainingWeightScore, maxRemaining)
		r.NormalizedLevel = invertedLevel(r.CourseLevel, maxLevel)
		r.FinalScore = w.CourseScore*r.NormalizedCourseScore +
			w.RemainingWeight*r.NormalizedRemainingWeight +
			w.Level*r.NormalizedLevel
	}
	return out
}

func ratio(v, top float64) float64 {
	if top <= 0 || v <= 0 {
		return 0
	}
	return min(v/top, 1)
}

// invertedLevel favours lower-level courses: 1 - level/maxLevel.
func invertedLevel(level, maxLevel int) float64 {
	if maxLevel <= 0 {
		return 0
	}
	return 1 - ratio(float64(level), float64(maxLevel))
}
