package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/pathway/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	if !colorEnabled {
		if title == "" {
			return content
		}
		return strings.ToUpper(title) + "\n\n" + content
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// HumanTimestamp returns a relative timestamp from now.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

// HumanTimestampFrom returns a relative timestamp from a reference time.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006 15:04")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return Dim(id)
}

// FormatScore prints a score with two decimals, colored by magnitude.
func FormatScore(score float64) string {
	return paint(ScoreColor(score), fmt.Sprintf("%.2f", score))
}

// SourcePill marks how a course became eligible.
func SourcePill(source domain.EligibleSource) string {
	switch source {
	case domain.SourceCorequisite:
		return paint(StylePurple, "◆ bundle")
	case domain.SourceEligible:
		return paint(StyleGreen, "● eligible")
	default:
		return Dim(string(source))
	}
}

// VariantLabel names a ranking variant for display.
func VariantLabel(v domain.RankingVariant) string {
	switch v {
	case domain.VariantCourseScore:
		return "By course score"
	case domain.VariantFinalScore:
		return "By final score"
	default:
		return string(v)
	}
}

// CourseList joins course IDs, eliding past limit. A non-positive limit
// prints every course.
func CourseList(ids []string, limit int) string {
	if len(ids) == 0 {
		return Dim("--")
	}
	if limit <= 0 || len(ids) <= limit {
		return strings.Join(ids, ", ")
	}
	return strings.Join(ids[:limit], ", ") + Dim(fmt.Sprintf(" +%d more", len(ids)-limit))
}
