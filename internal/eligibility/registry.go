package eligibility

import (
	"sort"

	"github.com/alexanderramin/pathway/internal/domain"
)

// Predicate decides a special course for one student.
type Predicate func(prereqs []string, completed domain.CourseSet, s *domain.StudentSnapshot) bool

// prereqClause is the course-history half of a rule.
type prereqClause func(prereqs []string, completed domain.CourseSet) bool

// gateClause is the student-attribute half of a rule.
type gateClause func(s *domain.StudentSnapshot) bool

// Rule is one registered condition tag. Full is used for today's
// eligibility; Reduced drops the prerequisite clause and is used by the
// lookahead pass.
type Rule struct {
	Tag     string
	Full    Predicate
	Reduced Predicate
}

func compose(tag string, prereq prereqClause, gate gateClause) Rule {
	return Rule{
		Tag: tag,
		Full: func(p []string, c domain.CourseSet, s *domain.StudentSnapshot) bool {
			return prereq(p, c) && gate(s)
		},
		Reduced: func(_ []string, _ domain.CourseSet, s *domain.StudentSnapshot) bool {
			return gate(s)
		},
	}
}

// Fixed condition tags.
const (
	TagOR             = "OR"
	TagAND            = "AND"
	TagCredits        = "Credits"
	TagCreditsCollege = "Credits_College"
	TagAndOr          = "AND_OR"
	TagAndOr2         = "AND_OR_2"
	TagAndOr3         = "AND_OR_3"
	TagAnyTwo         = "Any_Two"
	TagAnyThree       = "Any_Three"
	TagAnd3Courses    = "AND_3_Courses"
	TagAndCollegeOr   = "AND_College_OR"
	TagOrAndCollegeOr = "OR_AND_College_OR"
)

// CollegeOrGate is the reserved gate name read by the College_OR tags.
const CollegeOrGate = "College_OR"

// Gated families are formed as <prefix><gate name>.
const (
	prefixAnd        = "AND_"
	prefixOr         = "OR_"
	prefixJunior     = "Junior_"
	prefixSenior     = "Senior_"
	prefixAndNot     = "AND_NOT_"
	prefixOrAndNot   = "OR_AND_NOT_"
	prefixAndCredits = "AND_Credits_"
)

const (
	plainMarker          = "-"
	plainMarkerOneCourse = "ONE_COURSE"
)

// IsPlainMarker reports whether a catalog condition routes the course to
// the plain partition.
func IsPlainMarker(condition string) bool {
	return condition == "" || condition == plainMarker || condition == plainMarkerOneCourse
}

// Registry is the closed set of condition tags one major understands.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry registers the fixed families plus every gated family for
// each named gate. Fixed tags win over a gated tag with the same name;
// the shadowed tags are returned so the caller can report them.
func NewRegistry(gates map[string]Gate) (*Registry, []string) {
	r := &Registry{rules: make(map[string]Rule)}
	always := func(*domain.StudentSnapshot) bool { return true }

	r.add(compose(TagOR, anyOf, always))
	r.add(compose(TagAND, allOf, always))
	r.add(compose(TagCredits, none, func(s *domain.StudentSnapshot) bool {
		return meetsCredits(s, SeniorCreditThreshold)
	}))
	r.add(compose(TagCreditsCollege, none, func(s *domain.StudentSnapshot) bool {
		return meetsCredits(s, SeniorCreditThreshold) && s.College == BusinessCollege
	}))
	r.add(compose(TagAndOr, splitAllAny(1), always))
	r.add(compose(TagAndOr2, splitAllAny(2), always))
	r.add(compose(TagAndOr3, splitAnyAll(2), always))
	r.add(compose(TagAnyTwo, atLeast(2), always))
	r.add(compose(TagAnyThree, atLeast(3), always))
	r.add(compose(TagAnd3Courses, allThenAtLeast(3, 3), always))

	if g, ok := gates[CollegeOrGate]; ok {
		r.add(compose(TagAndCollegeOr, allOf, g.Admits))
		r.add(compose(TagOrAndCollegeOr, anyOf, g.Admits))
	}

	var shadowed []string
	for _, name := range sortedKeys(gates) {
		if name == CollegeOrGate {
			continue
		}
		g := gates[name]
		notG := func(s *domain.StudentSnapshot) bool { return !g.Admits(s) }

		gated := []Rule{
			compose(prefixAnd+name, allOf, g.Admits),
			compose(prefixOr+name, anyOf, g.Admits),
			compose(prefixJunior+name, none, levelGate(domain.LevelJunior, g)),
			compose(prefixSenior+name, none, levelGate(domain.LevelSenior, g)),
			compose(prefixAndNot+name, allOf, notG),
			compose(prefixOrAndNot+name, anyOf, notG),
		}
		if g.MinCredits > 0 {
			threshold := g.MinCredits
			gated = append(gated, compose(prefixAndCredits+name, allOf, func(s *domain.StudentSnapshot) bool {
				return meetsCredits(s, threshold) && g.Admits(s)
			}))
		}
		for _, rule := range gated {
			if _, exists := r.rules[rule.Tag]; exists {
				shadowed = append(shadowed, rule.Tag)
				continue
			}
			r.add(rule)
		}
	}
	return r, shadowed
}

func (r *Registry) add(rule Rule) {
	r.rules[rule.Tag] = rule
}

// Lookup returns the rule registered for tag.
func (r *Registry) Lookup(tag string) (Rule, bool) {
	if r == nil {
		return Rule{}, false
	}
	rule, ok := r.rules[tag]
	return rule, ok
}

// Tags lists every registered tag in ascending order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.rules))
	for t := range r.rules {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func levelGate(level domain.StudentLevel, g Gate) gateClause {
	return func(s *domain.StudentSnapshot) bool {
		return s != nil && s.StudentLevel == level && g.Admits(s)
	}
}

func none([]string, domain.CourseSet) bool { return true }

func allOf(p []string, c domain.CourseSet) bool { return c.ContainsAll(p) }

func anyOf(p []string, c domain.CourseSet) bool { return c.ContainsAny(p) }

func atLeast(n int) prereqClause {
	return func(p []string, c domain.CourseSet) bool {
		return c.CountIn(p) >= n
	}
}

// splitAllAny: every course before idx, and at least one from idx on.
func splitAllAny(idx int) prereqClause {
	return func(p []string, c domain.CourseSet) bool {
		head, tail := split(p, idx)
		return c.ContainsAll(head) && c.ContainsAny(tail)
	}
}

// splitAnyAll: at least one course before idx, and every course from idx on.
func splitAnyAll(idx int) prereqClause {
	return func(p []string, c domain.CourseSet) bool {
		head, tail := split(p, idx)
		return c.ContainsAny(head) && c.ContainsAll(tail)
	}
}

// allThenAtLeast: every course before idx, and n of the rest.
func allThenAtLeast(idx, n int) prereqClause {
	return func(p []string, c domain.CourseSet) bool {
		head, tail := split(p, idx)
		return c.ContainsAll(head) && c.CountIn(tail) >= n
	}
}

func split(p []string, idx int) ([]string, []string) {
	if idx > len(p) {
		idx = len(p)
	}
	return p[:idx], p[idx:]
}
