package domain

import "strings"

// StudentLevel is the class standing recorded on a course record.
type StudentLevel int

const (
	LevelFreshman  StudentLevel = 1
	LevelSophomore StudentLevel = 2
	LevelJunior    StudentLevel = 3
	LevelSenior    StudentLevel = 4
)

func (l StudentLevel) String() string {
	switch l {
	case LevelFreshman:
		return "freshman"
	case LevelSophomore:
		return "sophomore"
	case LevelJunior:
		return "junior"
	case LevelSenior:
		return "senior"
	default:
		return "unknown"
	}
}

// CourseRecord is one cleaned student-course-semester row. Records are
// produced by the cleaning step upstream and never mutated here.
type CourseRecord struct {
	StudentID     string
	Semester      int
	CourseID      string
	Grade         string
	Credits       float64
	StudentLevel  StudentLevel
	Major         string
	College       string
	Program       string
	PassedCredits float64
	GPA           float64
	AdmitTerm     int
	Status        string
}

// ParseStudentLevel accepts a level name ("Junior") or its number ("3").
func ParseStudentLevel(s string) (StudentLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "freshman":
		return LevelFreshman, true
	case "2", "sophomore":
		return LevelSophomore, true
	case "3", "junior":
		return LevelJunior, true
	case "4", "senior":
		return LevelSenior, true
	}
	return 0, false
}
