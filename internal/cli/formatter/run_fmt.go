package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/engine"
)

const areaProgressBarWidth = 10

// FormatRunSummary renders one run's header line and counts.
func FormatRunSummary(run *domain.BatchRun) string {
	var b strings.Builder
	b.WriteString(Bold("Run ") + Dim(run.ID) + "\n")
	fmt.Fprintf(&b, "  %s processed, %s skipped of %d students",
		paint(StyleGreen, strconv.Itoa(run.Processed)),
		skippedCount(run.Skipped),
		run.Students)
	fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("(workers %d, co-requisite %s)", run.Workers, passesLabel(run.CoreqPasses))))
	return b.String()
}

func skippedCount(n int) string {
	if n == 0 {
		return Dim("0")
	}
	return paint(StyleYellow, strconv.Itoa(n))
}

func passesLabel(passes int) string {
	if passes == 0 {
		return "fixed point"
	}
	if passes == 1 {
		return "1 pass"
	}
	return fmt.Sprintf("%d passes", passes)
}

// FormatRunList renders the run history table.
func FormatRunList(runs []*domain.BatchRun) string {
	headers := []string{"ID", "STARTED", "STUDENTS", "PROCESSED", "SKIPPED", "CONFIGS"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanTimestamp(r.StartedAt),
			strconv.Itoa(r.Students),
			strconv.Itoa(r.Processed),
			skippedCount(r.Skipped),
			Dim(r.ConfigDir),
		})
	}
	return RenderTableAligned(headers, rows, []int{2, 3, 4})
}

// FormatAreaSummaries renders per-major, per-area totals such as the
// taken, remaining or eligible summaries of a batch.
func FormatAreaSummaries(title string, summaries []engine.AreaSummary) string {
	var b strings.Builder
	b.WriteString(Header(title) + "\n")
	headers := []string{"MAJOR", "AREA", "STUDENTS", "TOTAL", "MEAN"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		mean := 0.0
		if s.Students > 0 {
			mean = float64(s.Total) / float64(s.Students)
		}
		rows = append(rows, []string{
			Bold(s.Major),
			s.Area,
			strconv.Itoa(s.Students),
			strconv.Itoa(s.Total),
			fmt.Sprintf("%.1f", mean),
		})
	}
	b.WriteString(RenderTableAligned(headers, rows, []int{2, 3, 4}))
	return b.String()
}

// FormatRequirements renders the pivoted requirements of each major.
func FormatRequirements(pivots []engine.RequirementsPivot) string {
	var b strings.Builder
	for i, p := range pivots {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(p.Major+" requirements") + "\n")
		headers := append([]string{""}, p.Areas...)
		required := []string{Dim("required")}
		weights := []string{Dim("weight")}
		for j := range p.Areas {
			required = append(required, strconv.Itoa(p.Required[j]))
			weights = append(weights, fmt.Sprintf("%.2f", p.Weights[j]))
		}
		right := make([]int, 0, len(p.Areas))
		for j := range p.Areas {
			right = append(right, j+1)
		}
		b.WriteString(RenderTableAligned(headers, [][]string{required, weights}, right))
	}
	return b.String()
}

// FormatStudentProgress renders each student's per-area progress.
func FormatStudentProgress(rows []engine.ProgressRow) string {
	headers := []string{"STUDENT", "MAJOR", "AREA", "TAKEN", "REQUIRED", "PROGRESS"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.StudentID,
			r.Major,
			r.Area,
			strconv.Itoa(r.Taken),
			strconv.Itoa(r.Required),
			AreaProgress(r.Taken, r.Required, areaProgressBarWidth),
		})
	}
	return RenderTableAligned(headers, out, []int{3, 4})
}

// FormatSkips renders the students a batch could not process.
func FormatSkips(skips []domain.BatchSkip) string {
	var b strings.Builder
	b.WriteString(Header("Skipped students") + "\n")
	headers := []string{"STUDENT", "MAJOR", "REASON", "DETAIL"}
	rows := make([][]string, 0, len(skips))
	for _, s := range skips {
		major := s.Major
		if major == "" {
			major = Dim("--")
		}
		rows = append(rows, []string{s.StudentID, major, paint(StyleYellow, s.Code), Dim(s.Message)})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
