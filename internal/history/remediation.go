package history

import "github.com/alexanderramin/pathway/internal/domain"

// RemediationRule removes lower rungs of a placement ladder once a student
// has taken any course in Trigger.
type RemediationRule struct {
	Trigger []string
	Remove  []string
}

// RemediationLadder is the fixed developmental math and English cascade.
var RemediationLadder = []RemediationRule{
	{Trigger: []string{"MATH100"}, Remove: []string{"MATH094", "MATH095", "MATH096", "MATH098"}},
	{Trigger: []string{"MATH098"}, Remove: []string{"MATH094", "MATH095", "MATH096"}},
	{Trigger: []string{"MATH096"}, Remove: []string{"MATH094", "MATH095"}},
	{Trigger: []string{"MATH095"}, Remove: []string{"MATH094"}},
	{Trigger: []string{"ENGL101"}, Remove: []string{"ENGL097", "ENGL098", "ENGL099"}},
	{Trigger: []string{"ENGL099"}, Remove: []string{"ENGL097", "ENGL098"}},
	{Trigger: []string{"ENGL098"}, Remove: []string{"ENGL097"}},
}

// ApplyRemediation returns eligible without the courses removed by every
// rule triggered by taken. The input set is not modified.
func ApplyRemediation(rules []RemediationRule, taken, eligible domain.CourseSet) domain.CourseSet {
	remove := domain.NewCourseSet()
	for _, rule := range rules {
		if taken.ContainsAny(rule.Trigger) {
			for _, id := range rule.Remove {
				remove.Add(id)
			}
		}
	}
	return eligible.Difference(remove)
}
