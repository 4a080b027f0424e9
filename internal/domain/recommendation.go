package domain

// Area-of-study codes with fixed meaning across majors.
const (
	AreaGeneral       = "GE"
	AreaFreeElective  = "FE"
	AreaNotApplicable = "NA"

	// CourseOfStudyElective marks a GE row that counts as a free elective.
	CourseOfStudyElective = "E"
)

// CourseMeta is the descriptive part of a catalog row used for scoring.
type CourseMeta struct {
	CourseID      string
	AreaOfStudy   string
	CourseOfStudy string
	CourseLevel   int
}

// RecommendationRow is one (student, candidate course) row with every
// computed score. Normalized values lie in [0, 1].
type RecommendationRow struct {
	StudentID             string
	Semester              int
	CourseID              string
	AreaOfStudy           string
	CourseOfStudy         string
	CourseLevel           int
	FutureEligibleCourses []string
	CourseScore           int
	RemainingWeightScore  float64

	NormalizedCourseScore     float64
	NormalizedRemainingWeight float64
	NormalizedLevel           float64
	FinalScore                float64
}

// RankingVariant names one of the two recommendation lists.
type RankingVariant string

const (
	// VariantCourseScore ranks by raw lookahead count.
	VariantCourseScore RankingVariant = "course_score"
	// VariantFinalScore ranks by the weighted final score.
	VariantFinalScore RankingVariant = "final_score"
)

// Recommendation is one ranked entry in a variant's list.
type Recommendation struct {
	StudentID string
	Semester  int
	Variant   RankingVariant
	Rank      int
	Row       RecommendationRow
}
