package domain

// StudentSnapshot is the state of a student as of one semester: every course
// completed through that semester plus the attributes recorded then.
type StudentSnapshot struct {
	StudentID     string
	Semester      int
	Completed     CourseSet
	Major         string
	College       string
	Program       string
	PassedCredits float64
	StudentLevel  StudentLevel

	// IncomingPCR is only set on a student's latest snapshot.
	IncomingPCR float64
}

// CoRequisiteCombination records a bundle that fired: its antecedents
// followed by the target course.
type CoRequisiteCombination []string

// Target returns the course the bundle unlocked.
func (c CoRequisiteCombination) Target() string {
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1]
}

// EligibilityResult holds the eligible sets computed for one snapshot.
// None of the sets contain a course from the snapshot's completed set.
type EligibilityResult struct {
	StudentID string
	Semester  int
	Plain     CourseSet
	Special   CourseSet

	// Eligible is Plain ∪ Special.
	Eligible CourseSet

	// EligibleCO is Eligible expanded by co-requisite bundles and pruned by
	// the remediation cascade. Only populated for the latest semester.
	EligibleCO   CourseSet
	Combinations []CoRequisiteCombination
}
