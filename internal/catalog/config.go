package catalog

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/alexanderramin/pathway/internal/corequisite"
	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/eligibility"
)

// MajorConfig is everything the engine needs for one major. It is built
// once and only read afterwards, so workers share it freely.
type MajorConfig struct {
	Major        string
	Name         string
	Catalog      *eligibility.Catalog
	Rules        *eligibility.Registry
	Evaluator    *eligibility.Evaluator
	Courses      map[string]domain.CourseMeta
	Bundles      []corequisite.Bundle
	Requirements map[string]int
	Weights      map[string]float64
	TopN         int

	// Combiner is nil unless the file overrides the engine default.
	Combiner *corequisite.Options
}

// Meta returns the catalog metadata of a course.
func (m *MajorConfig) Meta(courseID string) (domain.CourseMeta, bool) {
	meta, ok := m.Courses[courseID]
	return meta, ok
}

// Required returns the course count required in area; 0 when unset.
func (m *MajorConfig) Required(area string) int {
	return m.Requirements[area]
}

// Weight returns the weight of area; 0 when unset.
func (m *MajorConfig) Weight(area string) float64 {
	return m.Weights[area]
}

// Areas lists every area named by the requirements or weights tables.
func (m *MajorConfig) Areas() []string {
	seen := make(map[string]bool)
	var out []string
	for a := range m.Requirements {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	for a := range m.Weights {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	sort.Strings(out)
	return out
}

// NormalizeArea applies the fixed area-of-study remapping: "NA" and blank
// become general education, and GE electives are tracked as free
// electives.
func NormalizeArea(area, courseOfStudy string) string {
	a := strings.ToUpper(strings.TrimSpace(area))
	if a == "" || a == domain.AreaNotApplicable {
		a = domain.AreaGeneral
	}
	if a == domain.AreaGeneral && strings.EqualFold(strings.TrimSpace(courseOfStudy), domain.CourseOfStudyElective) {
		return domain.AreaFreeElective
	}
	return a
}

// Build validates a decoded file and produces the major's configuration.
// Rows that cannot be parsed make the whole major unusable; softer problems
// are logged and degrade to fail-closed or zero contributions.
func Build(f *File, logger *slog.Logger) (*MajorConfig, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	major := strings.ToUpper(strings.TrimSpace(f.Major))
	if major == "" {
		return nil, fmt.Errorf("%w: major is required", ErrConfiguration)
	}
	log := logger.With("major", major)

	gates := make(map[string]eligibility.Gate, len(f.Gates))
	for name, g := range f.Gates {
		gate := eligibility.Gate{
			Majors:     normalizeCodes(g.Majors, strings.ToUpper),
			Programs:   normalizeCodes(g.Programs, nil),
			Colleges:   normalizeCodes(g.Colleges, strings.ToUpper),
			MinCredits: g.MinCredits,
		}
		if gate.IsEmpty() {
			log.Warn("gate admits nobody", "gate", name)
		}
		gates[name] = gate
	}
	rules, shadowed := eligibility.NewRegistry(gates)
	for _, tag := range shadowed {
		log.Warn("gated tag shadowed by fixed tag", "tag", tag)
	}

	cat := eligibility.NewCatalog()
	courses := make(map[string]domain.CourseMeta, len(f.Courses))
	for i, row := range f.Courses {
		id := strings.TrimSpace(row.CourseID)
		if id == "" {
			return nil, fmt.Errorf("%w: %s courses[%d]: course_id is required", ErrConfiguration, major, i)
		}
		prereqs, err := ParseRequisiteList(row.Requisites)
		if err != nil {
			return nil, fmt.Errorf("%w: %s course %s: %v", ErrConfiguration, major, id, err)
		}
		if cat.Has(id) {
			log.Warn("duplicate catalog row ignored", "course", id)
			continue
		}

		condition := strings.TrimSpace(row.Condition)
		if eligibility.IsPlainMarker(condition) {
			cat.Plain[id] = prereqs
		} else {
			if _, ok := rules.Lookup(condition); !ok {
				log.Warn("unrecognized condition tag, course will never be eligible", "course", id, "condition", condition)
			}
			cat.Special[id] = eligibility.SpecialRequirement{Prerequisites: prereqs, Condition: condition}
		}

		courses[id] = domain.CourseMeta{
			CourseID:      id,
			AreaOfStudy:   NormalizeArea(row.AreaOfStudy, row.CourseOfStudy),
			CourseOfStudy: strings.TrimSpace(row.CourseOfStudy),
			CourseLevel:   row.CourseLevel,
		}
	}

	bundles := make([]corequisite.Bundle, 0, len(f.Bundles))
	for i, row := range f.Bundles {
		antecedents, err := ParseRequisiteList(row.Requisites)
		if err != nil {
			return nil, fmt.Errorf("%w: %s bundles[%d]: %v", ErrConfiguration, major, i, err)
		}
		target := strings.TrimSpace(row.CourseID)
		if target == "" || len(antecedents) == 0 {
			log.Warn("incomplete bundle ignored", "index", i)
			continue
		}
		bundles = append(bundles, corequisite.Bundle{Antecedents: antecedents, Target: target})
	}

	requirements := make(map[string]int, len(f.Requirements))
	for _, row := range f.Requirements {
		area := NormalizeArea(row.AreaOfStudy, "")
		requirements[area] += row.RequiredCourses
	}
	weights := make(map[string]float64, len(f.Weights))
	for _, row := range f.Weights {
		weights[NormalizeArea(row.AreaOfStudy, "")] = row.Weight
	}
	for area := range requirements {
		if _, ok := weights[area]; !ok {
			log.Warn("area has no weight, contributes zero", "area", area)
		}
	}

	cfg := &MajorConfig{
		Major:        major,
		Name:         f.Name,
		Catalog:      cat,
		Rules:        rules,
		Evaluator:    eligibility.NewEvaluator(cat, rules),
		Courses:      courses,
		Bundles:      bundles,
		Requirements: requirements,
		Weights:      weights,
		TopN:         RecommendationCap(major),
	}
	if f.Combiner != nil {
		cfg.Combiner = &corequisite.Options{Passes: f.Combiner.Passes, FixedPoint: f.Combiner.FixedPoint}
	}
	if cfg.Name == "" {
		for _, m := range Majors {
			if m.Code == major {
				cfg.Name = m.Name
			}
		}
	}
	return cfg, nil
}

// normalizeCodes trims gate entries and drops blanks. Majors and colleges
// are upper-cased the way imported records are.
func normalizeCodes(codes []string, fold func(string) string) []string {
	var out []string
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if fold != nil {
			c = fold(c)
		}
		out = append(out, c)
	}
	return out
}
