package eligibility

import "github.com/alexanderramin/pathway/internal/domain"

// Evaluator answers eligibility questions against one major's catalog.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	catalog *Catalog
	rules   *Registry
}

// NewEvaluator binds a catalog to the registry of its major.
func NewEvaluator(catalog *Catalog, rules *Registry) *Evaluator {
	if catalog == nil {
		catalog = NewCatalog()
	}
	return &Evaluator{catalog: catalog, rules: rules}
}

// Catalog returns the bound catalog.
func (e *Evaluator) Catalog() *Catalog { return e.catalog }

// IsEligible applies the plain rule: every prerequisite completed. Courses
// outside the plain partition are never plain-eligible.
func (e *Evaluator) IsEligible(courseID string, completed domain.CourseSet) bool {
	prereqs, ok := e.catalog.Plain[courseID]
	if !ok {
		return false
	}
	return completed.ContainsAll(prereqs)
}

// IsEligibleSpecial applies the course's condition predicate. Unknown
// courses and unrecognized tags are not eligible.
func (e *Evaluator) IsEligibleSpecial(courseID string, completed domain.CourseSet, s *domain.StudentSnapshot) bool {
	req, rule, ok := e.special(courseID)
	if !ok {
		return false
	}
	return rule.Full(req.Prerequisites, completed, s)
}

// IsEligibleReduced applies only the gate and threshold half of the
// course's predicate.
func (e *Evaluator) IsEligibleReduced(courseID string, completed domain.CourseSet, s *domain.StudentSnapshot) bool {
	req, rule, ok := e.special(courseID)
	if !ok {
		return false
	}
	return rule.Reduced(req.Prerequisites, completed, s)
}

func (e *Evaluator) special(courseID string) (SpecialRequirement, Rule, bool) {
	req, ok := e.catalog.Special[courseID]
	if !ok {
		return SpecialRequirement{}, Rule{}, false
	}
	rule, ok := e.rules.Lookup(req.Condition)
	if !ok {
		return SpecialRequirement{}, Rule{}, false
	}
	return req, rule, true
}

// EligiblePlain returns every plain course satisfied by completed, minus
// the courses already completed.
func (e *Evaluator) EligiblePlain(completed domain.CourseSet) domain.CourseSet {
	out := domain.NewCourseSet()
	for _, id := range e.catalog.PlainCourses() {
		if completed.Contains(id) {
			continue
		}
		if e.IsEligible(id, completed) {
			out.Add(id)
		}
	}
	return out
}

// EligibleSpecial returns every special course whose predicate holds,
// minus the courses already completed.
func (e *Evaluator) EligibleSpecial(completed domain.CourseSet, s *domain.StudentSnapshot) domain.CourseSet {
	out := domain.NewCourseSet()
	for _, id := range e.catalog.SpecialCourses() {
		if completed.Contains(id) {
			continue
		}
		if e.IsEligibleSpecial(id, completed, s) {
			out.Add(id)
		}
	}
	return out
}

// UnlockedReduced returns every special course whose reduced predicate
// holds, minus the courses in completed.
func (e *Evaluator) UnlockedReduced(completed domain.CourseSet, s *domain.StudentSnapshot) domain.CourseSet {
	out := domain.NewCourseSet()
	for _, id := range e.catalog.SpecialCourses() {
		if completed.Contains(id) {
			continue
		}
		if e.IsEligibleReduced(id, completed, s) {
			out.Add(id)
		}
	}
	return out
}

// UnrecognizedConditions lists special courses whose tag the registry does
// not know, keyed by course.
func (e *Evaluator) UnrecognizedConditions() map[string]string {
	out := make(map[string]string)
	for id, req := range e.catalog.Special {
		if _, ok := e.rules.Lookup(req.Condition); !ok {
			out[id] = req.Condition
		}
	}
	return out
}
