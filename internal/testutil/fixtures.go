package testutil

import (
	"log/slog"
	"testing"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/domain"
)

// Record options
type RecordOption func(*domain.CourseRecord)

func WithGrade(g string) RecordOption {
	return func(r *domain.CourseRecord) {
		r.Grade = g
	}
}

func WithCredits(c float64) RecordOption {
	return func(r *domain.CourseRecord) {
		r.Credits = c
	}
}

func WithPassedCredits(c float64) RecordOption {
	return func(r *domain.CourseRecord) {
		r.PassedCredits = c
	}
}

func WithLevel(l domain.StudentLevel) RecordOption {
	return func(r *domain.CourseRecord) {
		r.StudentLevel = l
	}
}

func WithMajor(m string) RecordOption {
	return func(r *domain.CourseRecord) {
		r.Major = m
	}
}

func WithCollege(c string) RecordOption {
	return func(r *domain.CourseRecord) {
		r.College = c
	}
}

func WithProgram(p string) RecordOption {
	return func(r *domain.CourseRecord) {
		r.Program = p
	}
}

// NewTestRecord returns a passing three-credit freshman record in the CS
// major.
func NewTestRecord(studentID string, semester int, courseID string, opts ...RecordOption) domain.CourseRecord {
	r := domain.CourseRecord{
		StudentID:    studentID,
		Semester:     semester,
		CourseID:     courseID,
		Grade:        "B",
		Credits:      3,
		StudentLevel: domain.LevelFreshman,
		Major:        "CS",
		College:      "CEN",
		Status:       "Active",
	}
	for _, o := range opts {
		o(&r)
	}
	return r
}

// NewTestMajor decodes and builds a major configuration document, failing
// the test on any error.
func NewTestMajor(t *testing.T, doc string) *catalog.MajorConfig {
	t.Helper()
	f, err := catalog.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decoding major config: %v", err)
	}
	cfg, err := catalog.Build(f, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("building major config: %v", err)
	}
	return cfg
}

// IEMConfig is a small engineering-management major with enough entry
// courses to exceed both recommendation caps.
const IEMConfig = `
major: IEM
gates:
  IEM:
    majors: [IEM]
courses:
  - {course_id: MATH094, requisites: "-", condition: "-", area_of_study: GE, course_level: 90}
  - {course_id: MATH100, requisites: "-", condition: "-", area_of_study: GE, course_level: 100}
  - {course_id: ENGL101, requisites: "-", condition: "-", area_of_study: GE, course_level: 100}
  - {course_id: HIST101, requisites: "-", condition: "-", area_of_study: GE, course_level: 100}
  - {course_id: PHIL101, requisites: "-", condition: "-", area_of_study: GE, course_level: 100}
  - {course_id: ART100, requisites: "-", condition: "-", area_of_study: GE, course_of_study: E, course_level: 100}
  - {course_id: IEM101, requisites: "-", condition: "-", area_of_study: MC, course_level: 100}
  - {course_id: IEM102, requisites: "-", condition: "-", area_of_study: MC, course_level: 100}
  - {course_id: IEM103, requisites: "-", condition: "-", area_of_study: MC, course_level: 100}
  - {course_id: IEM104, requisites: "-", condition: "-", area_of_study: MC, course_level: 100}
  - {course_id: IEM105, requisites: "-", condition: "-", area_of_study: MC, course_level: 100}
  - {course_id: IEM106, requisites: "-", condition: "-", area_of_study: MC, course_level: 100}
  - {course_id: IEM107, requisites: "-", condition: "-", area_of_study: MC, course_level: 100}
  - {course_id: IEM108, requisites: "-", condition: "-", area_of_study: MC, course_level: 100}
  - {course_id: IEM201, requisites: "['IEM101']", condition: "-", area_of_study: MC, course_level: 200}
  - {course_id: IEM202, requisites: "['IEM102']", condition: "-", area_of_study: MC, course_level: 200}
  - {course_id: IEM301, requisites: "['IEM201', 'IEM202']", condition: "-", area_of_study: MC, course_level: 300}
  - {course_id: IEM399, requisites: "['IEM999']", condition: "-", area_of_study: MC, course_level: 300}
  - {course_id: IEM480, requisites: "-", condition: Credits, area_of_study: ME, course_level: 400}
  - {course_id: IEM490, requisites: "['IEM301']", condition: Senior_IEM, area_of_study: ME, course_level: 400}
bundles:
  - {requisites: "['IEM101', 'IEM102']", course_id: IEM399}
requirements:
  - {area_of_study: MC, required_courses: 8}
  - {area_of_study: GE, required_courses: 3}
  - {area_of_study: FE, required_courses: 1}
  - {area_of_study: ME, required_courses: 2}
weights:
  - {area_of_study: MC, weight: 0.6}
  - {area_of_study: GE, weight: 0.3}
  - {area_of_study: FE, weight: 0.1}
  - {area_of_study: ME, weight: 0.2}
`
