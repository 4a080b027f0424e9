package domain

import "time"

// BatchRun is one persisted execution of the engine over the stored
// records.
type BatchRun struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  *time.Time
	Students    int
	Processed   int
	Skipped     int
	Workers     int
	CoreqPasses int
	ConfigDir   string
}

// EligibleSource tells whether a stored eligible course came from the
// evaluator or was added by a co-requisite bundle.
type EligibleSource string

const (
	SourceEligible    EligibleSource = "eligible"
	SourceCorequisite EligibleSource = "corequisite"
)

// EligibleCourse is one stored final eligible course of a run.
type EligibleCourse struct {
	RunID     string
	StudentID string
	Major     string
	Semester  int
	CourseID  string
	Source    EligibleSource
}

// BatchSkip is one stored student skip of a run.
type BatchSkip struct {
	RunID     string
	StudentID string
	Major     string
	Code      string
	Message   string
}

// StoredRecommendation is a recommendation read back from a run.
type StoredRecommendation struct {
	RunID string
	Major string
	Recommendation
}
