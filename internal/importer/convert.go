package importer

import (
	"strings"

	"github.com/alexanderramin/pathway/internal/domain"
)

// Convert turns imported rows into course records. Rows that fail
// validation are excluded and their errors returned; the rest are kept in
// input order.
func Convert(recs []RecordImport) ([]domain.CourseRecord, []error) {
	out := make([]domain.CourseRecord, 0, len(recs))
	var rejected []error
	for i, r := range recs {
		if errs := ValidateRecord(i, r); len(errs) > 0 {
			rejected = append(rejected, errs...)
			continue
		}

		semester, _ := r.Semester.Int()
		credits, _ := r.Credits.Float()
		passed, _ := r.PassedCredits.Float()
		gpa, _ := r.GPA.Float()
		var admit int
		if r.AdmitTerm != "" {
			admit, _ = r.AdmitTerm.Int()
		}
		level, _ := domain.ParseStudentLevel(r.StudentLevel.String())

		out = append(out, domain.CourseRecord{
			StudentID:     r.StudentID.String(),
			Semester:      semester,
			CourseID:      strings.ToUpper(r.CourseID.String()),
			Grade:         strings.ToUpper(r.Grade.String()),
			Credits:       credits,
			StudentLevel:  level,
			Major:         strings.ToUpper(r.Major.String()),
			College:       strings.ToUpper(r.College.String()),
			Program:       r.Program.String(),
			PassedCredits: passed,
			GPA:           gpa,
			AdmitTerm:     admit,
			Status:        r.Status.String(),
		})
	}
	return out, rejected
}
