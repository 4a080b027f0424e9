package engine

import (
	"testing"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/history"
	"github.com/alexanderramin/pathway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iemRecords(studentID string) []domain.CourseRecord {
	major := testutil.WithMajor("IEM")
	return []domain.CourseRecord{
		testutil.NewTestRecord(studentID, 202310, "MATH100", major, testutil.WithPassedCredits(6)),
		testutil.NewTestRecord(studentID, 202310, "ENGL101", major, testutil.WithPassedCredits(6)),
		testutil.NewTestRecord(studentID, 202320, "IEM105", major, testutil.WithPassedCredits(9)),
	}
}

func findRow(rows []domain.RecommendationRow, course string) (domain.RecommendationRow, bool) {
	for _, r := range rows {
		if r.CourseID == course {
			return r, true
		}
	}
	return domain.RecommendationRow{}, false
}

func TestProcess_FullPipeline(t *testing.T) {
	cfg := testutil.NewTestMajor(t, testutil.IEMConfig)
	eng := New(cfg, DefaultOptions())

	res, err := eng.Process("S1", iemRecords("S1"))
	require.NoError(t, err)

	assert.Equal(t, "IEM", res.Major)
	assert.Equal(t, 202320, res.Latest.Semester)
	assert.Len(t, res.Walk.Semesters, 2)

	assert.True(t, res.Latest.Eligible.Contains("MATH094"), "plain rule admits MATH094")
	assert.False(t, res.Latest.EligibleCO.Contains("MATH094"), "remediation removes MATH094 after MATH100")

	assert.False(t, res.Latest.Eligible.Contains("IEM399"))
	assert.True(t, res.Latest.EligibleCO.Contains("IEM399"), "bundle adds IEM399")
	require.Len(t, res.Latest.Combinations, 1)
	assert.Equal(t, domain.CoRequisiteCombination{"IEM101", "IEM102", "IEM399"}, res.Latest.Combinations[0])

	assert.False(t, res.Latest.EligibleCO.Intersects(res.Snapshot.Completed))
	assert.False(t, res.Latest.Eligible.Intersects(res.Snapshot.Completed))

	assert.Len(t, res.Rows, 11)
	assert.Len(t, res.ByCourseScore, 5)
	assert.Len(t, res.ByFinalScore, 7, "engineering-management majors get seven")
}

func TestProcess_ScoresAndProgress(t *testing.T) {
	cfg := testutil.NewTestMajor(t, testutil.IEMConfig)
	res, err := New(cfg, DefaultOptions()).Process("S1", iemRecords("S1"))
	require.NoError(t, err)

	row, ok := findRow(res.Rows, "IEM101")
	require.True(t, ok)
	assert.Equal(t, []string{"IEM201"}, row.FutureEligibleCourses, "remediated and known courses are not future")
	assert.Equal(t, 1, row.CourseScore)
	assert.InDelta(t, 4.2, row.RemainingWeightScore, 1e-9)
	assert.InDelta(t, 1.0, row.NormalizedCourseScore, 1e-9)

	ge, ok := res.Progress.Lookup("GE")
	require.True(t, ok)
	assert.Equal(t, 2, ge.Taken)
	assert.Equal(t, 1, ge.Remaining)

	assert.Equal(t, "IEM101", res.ByCourseScore[0].Row.CourseID)
	assert.Equal(t, "IEM102", res.ByCourseScore[1].Row.CourseID)
	for _, r := range res.Rows {
		assert.GreaterOrEqual(t, r.FinalScore, 0.0)
		assert.LessOrEqual(t, r.FinalScore, 1.0+1e-9)
	}
}

func TestProcess_DefaultCapForOtherMajors(t *testing.T) {
	cfg := testutil.NewTestMajor(t, testutil.IEMConfig)
	cfg.TopN = catalog.RecommendationCap("CS")

	res, err := New(cfg, DefaultOptions()).Process("S1", iemRecords("S1"))
	require.NoError(t, err)
	assert.Len(t, res.ByFinalScore, 5)
	assert.Len(t, res.ByCourseScore, 5)
}

func TestProcess_NoRecords(t *testing.T) {
	cfg := testutil.NewTestMajor(t, testutil.IEMConfig)
	_, err := New(cfg, DefaultOptions()).Process("S1", nil)
	assert.ErrorIs(t, err, history.ErrNoRecords)
}

func TestProcess_WithoutRemediation(t *testing.T) {
	cfg := testutil.NewTestMajor(t, testutil.IEMConfig)
	opts := DefaultOptions()
	opts.Remediation = nil

	res, err := New(cfg, opts).Process("S1", iemRecords("S1"))
	require.NoError(t, err)
	assert.True(t, res.Latest.EligibleCO.Contains("MATH094"))
}

func TestProcess_MajorCombinerOverride(t *testing.T) {
	doc := `
major: CS
courses:
  - {course_id: A, requisites: "-", condition: "-", area_of_study: MC, course_level: 100}
  - {course_id: B, requisites: "['Z']", condition: "-", area_of_study: MC, course_level: 100}
  - {course_id: C, requisites: "['Z']", condition: "-", area_of_study: MC, course_level: 100}
bundles:
  - {requisites: "['B']", course_id: C}
  - {requisites: "['A']", course_id: B}
requirements:
  - {area_of_study: MC, required_courses: 3}
weights:
  - {area_of_study: MC, weight: 1}
combiner:
  fixed_point: true
`
	cfg := testutil.NewTestMajor(t, doc)
	records := []domain.CourseRecord{testutil.NewTestRecord("S1", 1, "X")}

	res, err := New(cfg, DefaultOptions()).Process("S1", records)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Latest.EligibleCO.Sorted(), "fixed point fires chained bundle")

	cfg.Combiner = nil
	res, err = New(cfg, DefaultOptions()).Process("S1", records)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Latest.EligibleCO.Sorted(), "one pass leaves chained bundle")
}
