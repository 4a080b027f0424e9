package ranker

import (
	"sort"

	"github.com/alexanderramin/pathway/internal/domain"
)

// CourseScoreCap is the length of the raw lookahead list for every major.
const CourseScoreCap = 5

// ByCourseScore ranks rows by raw lookahead count, highest first, and keeps
// the first n. Ties keep their input order.
func ByCourseScore(rows []domain.RecommendationRow, n int) []domain.Recommendation {
	return top(rows, n, domain.VariantCourseScore, func(a, b domain.RecommendationRow) bool {
		return a.CourseScore > b.CourseScore
	})
}

// ByFinalScore ranks rows by final score, highest first, and keeps the
// first n. Ties keep their input order.
func ByFinalScore(rows []domain.RecommendationRow, n int) []domain.Recommendation {
	return top(rows, n, domain.VariantFinalScore, func(a, b domain.RecommendationRow) bool {
		return a.FinalScore > b.FinalScore
	})
}

// Rank produces both lists for one student's scored rows. finalCap is the
// major's final-score list length.
func Rank(rows []domain.RecommendationRow, finalCap int) (byCourse, byFinal []domain.Recommendation) {
	return ByCourseScore(rows, CourseScoreCap), ByFinalScore(rows, finalCap)
}

func top(rows []domain.RecommendationRow, n int, variant domain.RankingVariant, less func(a, b domain.RecommendationRow) bool) []domain.Recommendation {
	sorted := make([]domain.RecommendationRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	if n < len(sorted) {
		sorted = sorted[:max(n, 0)]
	}

	out := make([]domain.Recommendation, len(sorted))
	for i, r := range sorted {
		out[i] = domain.Recommendation{
			StudentID: r.StudentID,
			Semester:  r.Semester,
			Variant:   variant,
			Rank:      i + 1,
			Row:       r,
		}
	}
	return out
}
