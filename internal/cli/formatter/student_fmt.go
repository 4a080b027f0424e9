package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/pathway/internal/domain"
)

const futureCoursesShown = 4

// FormatEligible renders a student's stored final eligible courses.
func FormatEligible(studentID string, rows []domain.EligibleCourse) string {
	var b strings.Builder
	if len(rows) == 0 {
		return Dim(fmt.Sprintf("No eligible courses stored for %s.", studentID)) + "\n"
	}

	first := rows[0]
	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		Bold(studentID), paint(StylePurple, first.Major), Dim("semester "+strconv.Itoa(first.Semester)))

	headers := []string{"COURSE", "SOURCE"}
	out := make([][]string, 0, len(rows))
	bundled := 0
	for _, r := range rows {
		if r.Source == domain.SourceCorequisite {
			bundled++
		}
		out = append(out, []string{r.CourseID, SourcePill(r.Source)})
	}
	b.WriteString(RenderTable(headers, out))
	fmt.Fprintf(&b, "\n%d eligible", len(rows))
	if bundled > 0 {
		fmt.Fprintf(&b, ", %d through bundles", bundled)
	}
	b.WriteString("\n")
	return b.String()
}

// FormatRecommendations renders both ranking variants of a student. When
// only is set, the other variant is left out.
func FormatRecommendations(studentID string, recs []domain.StoredRecommendation, only domain.RankingVariant) string {
	if len(recs) == 0 {
		return Dim(fmt.Sprintf("No recommendations stored for %s.", studentID)) + "\n"
	}

	var b strings.Builder
	for _, variant := range []domain.RankingVariant{domain.VariantCourseScore, domain.VariantFinalScore} {
		if only != "" && only != variant {
			continue
		}
		var rows [][]string
		for _, r := range recs {
			if r.Variant != variant {
				continue
			}
			rows = append(rows, []string{
				strconv.Itoa(r.Rank),
				Bold(r.Row.CourseID),
				r.Row.AreaOfStudy,
				strconv.Itoa(r.Row.CourseLevel),
				strconv.Itoa(r.Row.CourseScore),
				fmt.Sprintf("%.2f", r.Row.RemainingWeightScore),
				FormatScore(r.Row.FinalScore),
				CourseList(r.Row.FutureEligibleCourses, futureCoursesShown),
			})
		}
		if len(rows) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(fmt.Sprintf("%s  %s", studentID, VariantLabel(variant))) + "\n")
		headers := []string{"#", "COURSE", "AREA", "LEVEL", "UNLOCKS", "REMAINING", "FINAL", "FUTURE"}
		b.WriteString(RenderTableAligned(headers, rows, []int{0, 3, 4, 5, 6}))
	}
	return b.String()
}
