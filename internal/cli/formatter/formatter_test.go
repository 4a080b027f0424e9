package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/engine"
	"github.com/stretchr/testify/assert"
)

func plain(t *testing.T) {
	t.Helper()
	SetColor(false)
	t.Cleanup(func() { SetColor(true) })
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	plain(t)
	out := RenderTable([]string{"A", "LONG"}, [][]string{{"xxx", "y"}, {"z"}})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "A    LONG", lines[0])
	assert.Equal(t, "───  ────", lines[1])
	assert.Equal(t, "xxx  y", lines[2])
	assert.Equal(t, "z    ", lines[3])
}

func TestRenderTableAligned_RightAlignsNumbers(t *testing.T) {
	plain(t)
	out := RenderTableAligned([]string{"NAME", "N"}, [][]string{{"a", "7"}, {"b", "123"}}, []int{1})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "NAME    N", lines[0])
	assert.Equal(t, "a       7", lines[2])
	assert.Equal(t, "b     123", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderProgress(t *testing.T) {
	plain(t)
	assert.Equal(t, "[░░░░]   0%", RenderProgress(-1, 4))
	assert.Equal(t, "[██░░]  50%", RenderProgress(0.5, 4))
	assert.Equal(t, "[████] 100%", RenderProgress(2, 4))
	assert.Equal(t, "[█░]  50%", RenderProgress(0.5, 1))
}

func TestAreaProgress(t *testing.T) {
	plain(t)
	assert.Equal(t, "[████] 100%", AreaProgress(0, 0, 4))
	assert.Equal(t, "[██░░]  50%", AreaProgress(2, 4, 4))
	assert.Equal(t, "[████] 100%", AreaProgress(5, 4, 4))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-48 * time.Hour), "Mar 8, 2026 12:00"},
		{"future", now.Add(time.Hour), "Mar 10, 2026 13:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.t, now))
		})
	}
}

func TestCourseList(t *testing.T) {
	plain(t)
	assert.Equal(t, "--", CourseList(nil, 3))
	assert.Equal(t, "A, B", CourseList([]string{"A", "B"}, 3))
	assert.Equal(t, "A, B +2 more", CourseList([]string{"A", "B", "C", "D"}, 2))
	assert.Equal(t, "A, B, C", CourseList([]string{"A", "B", "C"}, 0))
}

func TestTruncID(t *testing.T) {
	plain(t)
	assert.Equal(t, "12345678", TruncID("1234567890abcdef"))
	assert.Equal(t, "abc", TruncID("abc"))
}

func TestRenderBox_Plain(t *testing.T) {
	plain(t)
	assert.Equal(t, "TITLE\n\nbody", RenderBox("title", "body"))
	assert.Equal(t, "body", RenderBox("", "body"))
}

func TestFormatEligible(t *testing.T) {
	plain(t)
	rows := []domain.EligibleCourse{
		{StudentID: "S1", Major: "IEM", Semester: 202320, CourseID: "IEM101", Source: domain.SourceEligible},
		{StudentID: "S1", Major: "IEM", Semester: 202320, CourseID: "IEM399", Source: domain.SourceCorequisite},
	}

	out := FormatEligible("S1", rows)
	assert.Contains(t, out, "semester 202320")
	assert.Contains(t, out, "IEM399  ◆ bundle")
	assert.Contains(t, out, "2 eligible, 1 through bundles")

	assert.Contains(t, FormatEligible("S9", nil), "No eligible courses stored for S9.")
}

func TestFormatRecommendations(t *testing.T) {
	plain(t)
	recs := []domain.StoredRecommendation{
		{Recommendation: domain.Recommendation{Variant: domain.VariantCourseScore, Rank: 1,
			Row: domain.RecommendationRow{CourseID: "IEM101", AreaOfStudy: "MC", CourseLevel: 100, CourseScore: 1,
				FutureEligibleCourses: []string{"IEM201"}, FinalScore: 0.9}}},
		{Recommendation: domain.Recommendation{Variant: domain.VariantFinalScore, Rank: 1,
			Row: domain.RecommendationRow{CourseID: "IEM102", AreaOfStudy: "MC", CourseLevel: 100, FinalScore: 0.5}}},
	}

	out := FormatRecommendations("S1", recs, "")
	assert.Contains(t, out, "S1  BY COURSE SCORE")
	assert.Contains(t, out, "S1  BY FINAL SCORE")
	assert.Contains(t, out, "IEM201")
	assert.Less(t, strings.Index(out, "IEM101"), strings.Index(out, "IEM102"))

	only := FormatRecommendations("S1", recs, domain.VariantFinalScore)
	assert.NotContains(t, only, "IEM101")
	assert.Contains(t, only, "IEM102")

	assert.Contains(t, FormatRecommendations("S1", nil, ""), "No recommendations stored")
}

func TestFormatRunSummary(t *testing.T) {
	plain(t)
	out := FormatRunSummary(&domain.BatchRun{ID: "run-1", Students: 3, Processed: 2, Skipped: 1, Workers: 4})
	assert.Contains(t, out, "Run run-1")
	assert.Contains(t, out, "2 processed, 1 skipped of 3 students")
	assert.Contains(t, out, "fixed point")

	out = FormatRunSummary(&domain.BatchRun{ID: "run-2", CoreqPasses: 2})
	assert.Contains(t, out, "2 passes")
}

func TestFormatRequirements(t *testing.T) {
	plain(t)
	out := FormatRequirements([]engine.RequirementsPivot{{
		Major:    "IEM",
		Areas:    []string{"GE", "MC"},
		Required: []int{3, 8},
		Weights:  []float64{0.3, 0.6},
	}})
	assert.Contains(t, out, "IEM REQUIREMENTS")
	assert.Contains(t, out, "0.60")
	assert.Contains(t, out, "required")
}

func TestFormatAreaSummaries(t *testing.T) {
	plain(t)
	out := FormatAreaSummaries("Eligible", []engine.AreaSummary{{Major: "IEM", Area: "MC", Students: 2, Total: 5}})
	assert.Contains(t, out, "ELIGIBLE")
	assert.Contains(t, out, "2.5")
}

func TestFormatSkips(t *testing.T) {
	plain(t)
	out := FormatSkips([]domain.BatchSkip{{StudentID: "S2", Code: "UNKNOWN_MAJOR", Message: "unknown major"}})
	assert.Contains(t, out, "S2")
	assert.Contains(t, out, "--")
	assert.Contains(t, out, "UNKNOWN_MAJOR")
}

func TestFormatImportSummary(t *testing.T) {
	plain(t)
	errs := []error{errors.New("e1"), errors.New("e2"), errors.New("e3")}

	out := FormatImportSummary(5, 2, 1, errs, 2)
	assert.Contains(t, out, "Imported 2 of 5 records for 1 students")
	assert.Contains(t, out, "3 problems")
	assert.Contains(t, out, "- e2")
	assert.NotContains(t, out, "- e3")
	assert.Contains(t, out, "1 more")

	assert.NotContains(t, FormatImportSummary(1, 1, 1, nil, 2), "problems")
}
