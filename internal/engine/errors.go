package engine

import "fmt"

// SkipCode classifies why a student produced no result.
type SkipCode string

const (
	SkipUnknownMajor SkipCode = "UNKNOWN_MAJOR"
	SkipNoRecords    SkipCode = "NO_RECORDS"
	SkipFailed       SkipCode = "FAILED"
	SkipPanic        SkipCode = "PANIC"
	SkipCanceled     SkipCode = "CANCELED"
)

// SkipError reports one student left out of a batch. The rest of the batch
// is unaffected.
type SkipError struct {
	Code      SkipCode
	StudentID string
	Major     string
	Err       error
}

func (e *SkipError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: student %s (major %q)", e.Code, e.StudentID, e.Major)
	}
	return fmt.Sprintf("%s: student %s (major %q): %v", e.Code, e.StudentID, e.Major, e.Err)
}

func (e *SkipError) Unwrap() error { return e.Err }
