package engine

import (
	"sort"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/domain"
)

// Batch is the output of one dispatcher run. Results are ordered by major
// then student; skips by student.
type Batch struct {
	Results []*StudentResult
	Skips   []*SkipError

	configs *catalog.Set
}

func newBatch(configs *catalog.Set, results []*StudentResult, skips []*SkipError) *Batch {
	b := &Batch{configs: configs}
	for _, r := range results {
		if r != nil {
			b.Results = append(b.Results, r)
		}
	}
	for _, s := range skips {
		if s != nil {
			b.Skips = append(b.Skips, s)
		}
	}
	sort.SliceStable(b.Results, func(i, j int) bool {
		if b.Results[i].Major != b.Results[j].Major {
			return b.Results[i].Major < b.Results[j].Major
		}
		return b.Results[i].StudentID < b.Results[j].StudentID
	})
	sort.SliceStable(b.Skips, func(i, j int) bool {
		return b.Skips[i].StudentID < b.Skips[j].StudentID
	})
	return b
}

// Majors lists the majors that produced at least one result.
func (b *Batch) Majors() []string {
	var out []string
	for _, r := range b.Results {
		if len(out) == 0 || out[len(out)-1] != r.Major {
			out = append(out, r.Major)
		}
	}
	return out
}

// ForMajor returns the results of one major.
func (b *Batch) ForMajor(major string) []*StudentResult {
	var out []*StudentResult
	for _, r := range b.Results {
		if r.Major == major {
			out = append(out, r)
		}
	}
	return out
}

// RequirementsPivot is a major's requirements table with one column per
// area of study.
type RequirementsPivot struct {
	Major    string
	Areas    []string
	Required []int
	Weights  []float64
}

// RequirementsTable pivots the requirements of every major in the batch.
func (b *Batch) RequirementsTable() []RequirementsPivot {
	var out []RequirementsPivot
	for _, m := range b.Majors() {
		cfg, err := b.configs.Get(m)
		if err != nil {
			continue
		}
		p := RequirementsPivot{Major: m, Areas: cfg.Areas()}
		for _, a := range p.Areas {
			p.Required = append(p.Required, cfg.Required(a))
			p.Weights = append(p.Weights, cfg.Weight(a))
		}
		out = append(out, p)
	}
	return out
}

// ProgressRow is one (student, area) row of the progress table.
type ProgressRow struct {
	StudentID   string
	Major       string
	Area        string
	Taken       int
	Required    int
	Remaining   int
	Weight      float64
	WeightScore float64
}

// StudentProgress flattens every student's progress report.
func (b *Batch) StudentProgress() []ProgressRow {
	var out []ProgressRow
	for _, r := range b.Results {
		for _, a := range r.Progress.Areas {
			out = append(out, ProgressRow{
				StudentID:   r.StudentID,
				Major:       r.Major,
				Area:        a.Area,
				Taken:       a.Taken,
				Required:    a.Required,
				Remaining:   a.Remaining,
				Weight:      a.Weight,
				WeightScore: a.WeightScore,
			})
		}
	}
	return out
}

// AreaSummary totals a per-area count across the students of one major.
type AreaSummary struct {
	Major    string
	Area     string
	Students int
	Total    int
}

// AreaTaken sums completed courses per area.
func (b *Batch) AreaTaken() []AreaSummary {
	return b.summarize(func(r *StudentResult) map[string]int {
		m := make(map[string]int)
		for _, a := range r.Progress.Areas {
			m[a.Area] = a.Taken
		}
		return m
	})
}

// AreaRemaining sums remaining required courses per area.
func (b *Batch) AreaRemaining() []AreaSummary {
	return b.summarize(func(r *StudentResult) map[string]int {
		m := make(map[string]int)
		for _, a := range r.Progress.Areas {
			m[a.Area] = a.Remaining
		}
		return m
	})
}

// AreaEligible counts final eligible courses per area.
func (b *Batch) AreaEligible() []AreaSummary {
	return b.summarize(func(r *StudentResult) map[string]int {
		m := make(map[string]int)
		for _, row := range r.Rows {
			m[row.AreaOfStudy]++
		}
		return m
	})
}

// summarize adds up per-student counts by (major, area). Students counts
// the students with a non-zero value.
func (b *Batch) summarize(counts func(*StudentResult) map[string]int) []AreaSummary {
	type key struct{ major, area string }
	acc := make(map[key]*AreaSummary)
	var keys []key
	for _, r := range b.Results {
		for area, n := range counts(r) {
			k := key{r.Major, area}
			s, ok := acc[k]
			if !ok {
				s = &AreaSummary{Major: r.Major, Area: area}
				acc[k] = s
				keys = append(keys, k)
			}
			s.Total += n
			if n > 0 {
				s.Students++
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].major != keys[j].major {
			return keys[i].major < keys[j].major
		}
		return keys[i].area < keys[j].area
	})
	out := make([]AreaSummary, len(keys))
	for i, k := range keys {
		out[i] = *acc[k]
	}
	return out
}

// LatestEligibleRow is a student's final eligible list for the latest
// semester.
type LatestEligibleRow struct {
	StudentID    string
	Major        string
	Semester     int
	Eligible     []string
	EligibleCO   []string
	Combinations []domain.CoRequisiteCombination
}

// LatestEligibleCourses lists each student's latest eligible sets.
func (b *Batch) LatestEligibleCourses() []LatestEligibleRow {
	out := make([]LatestEligibleRow, 0, len(b.Results))
	for _, r := range b.Results {
		out = append(out, LatestEligibleRow{
			StudentID:    r.StudentID,
			Major:        r.Major,
			Semester:     r.Latest.Semester,
			Eligible:     r.Latest.Eligible.Sorted(),
			EligibleCO:   r.Latest.EligibleCO.Sorted(),
			Combinations: r.Latest.Combinations,
		})
	}
	return out
}

// ComprehensiveEligibleCourses is one row per student and eligible course
// with every computed score.
func (b *Batch) ComprehensiveEligibleCourses() []domain.RecommendationRow {
	var out []domain.RecommendationRow
	for _, r := range b.Results {
		out = append(out, r.Rows...)
	}
	return out
}

// RecommendedCourses returns both ranking variants, course-score list
// first, for every student.
func (b *Batch) RecommendedCourses() []domain.Recommendation {
	var out []domain.Recommendation
	for _, r := range b.Results {
		out = append(out, r.ByCourseScore...)
		out = append(out, r.ByFinalScore...)
	}
	return out
}
