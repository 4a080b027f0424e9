package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathway/internal/domain"
)

// ErrDataShape marks a record that cannot be used.
var ErrDataShape = errors.New("data shape error")

// DataShapeError describes why one record was excluded.
type DataShapeError struct {
	Index     int
	StudentID string
	Field     string
	Reason    string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("record %d (student %q): %s: %s", e.Index, e.StudentID, e.Field, e.Reason)
}

func (e *DataShapeError) Unwrap() error { return ErrDataShape }

// ValidateRecord checks one record and returns every problem found.
func ValidateRecord(i int, r RecordImport) []error {
	var errs []error
	bad := func(field, reason string) {
		errs = append(errs, &DataShapeError{Index: i, StudentID: r.StudentID.String(), Field: field, Reason: reason})
	}

	if r.StudentID == "" {
		bad("student_id", "is required")
	}
	if r.CourseID == "" {
		bad("course_id", "is required")
	}
	if r.Major == "" {
		bad("major", "is required")
	}
	if r.Semester == "" {
		bad("semester", "is required")
	} else if _, err := r.Semester.Int(); err != nil {
		bad("semester", "must be numeric: "+err.Error())
	}

	numeric := []struct {
		name  string
		value Field
	}{
		{"credits", r.Credits},
		{"passed_credits", r.PassedCredits},
		{"gpa", r.GPA},
	}
	for _, n := range numeric {
		if _, err := n.value.Float(); err != nil {
			bad(n.name, err.Error())
		}
	}
	if r.AdmitTerm != "" {
		if _, err := r.AdmitTerm.Int(); err != nil {
			bad("admit_term", err.Error())
		}
	}
	if r.StudentLevel != "" {
		if _, ok := domain.ParseStudentLevel(r.StudentLevel.String()); !ok {
			bad("student_level", fmt.Sprintf("unknown level %q", r.StudentLevel))
		}
	}
	return errs
}

// ValidateRecords validates every record.
func ValidateRecords(recs []RecordImport) []error {
	var errs []error
	for i, r := range recs {
		errs = append(errs, ValidateRecord(i, r)...)
	}
	return errs
}

// FormatErrors renders validation errors as a bulleted summary.
func FormatErrors(errs []error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d records rejected:", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - " + e.Error())
	}
	return b.String()
}
