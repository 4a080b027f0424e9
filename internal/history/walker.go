package history

import (
	"errors"
	"sort"
	"strings"

	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/eligibility"
)

// ErrNoRecords is returned when a student has nothing to walk.
var ErrNoRecords = errors.New("student has no course records")

// DefaultNonCompletingGrades are grades that do not add a course to the
// completed set. The course still counts as taken for the remediation
// cascade.
var DefaultNonCompletingGrades = []string{"F", "W", "WF", "FA"}

// Semester is one step of the walk.
type Semester struct {
	Snapshot domain.StudentSnapshot
	Result   domain.EligibilityResult
}

// Walk is the semester-ordered eligibility history of one student.
type Walk struct {
	StudentID string
	Semesters []Semester

	// Taken is every course that appears in the history, whatever the grade.
	Taken domain.CourseSet

	// MajorMatched is false when no record carried the declared major and
	// attributes fell back to the latest record.
	MajorMatched bool
}

// Latest returns the most recent semester.
func (w *Walk) Latest() (Semester, bool) {
	if w == nil || len(w.Semesters) == 0 {
		return Semester{}, false
	}
	return w.Semesters[len(w.Semesters)-1], true
}

// Walker folds a student's records into per-semester snapshots.
type Walker struct {
	evaluator     *eligibility.Evaluator
	nonCompleting map[string]bool
}

// NewWalker creates a walker. When grades is nil the default
// non-completing grades apply.
func NewWalker(ev *eligibility.Evaluator, grades []string) *Walker {
	if grades == nil {
		grades = DefaultNonCompletingGrades
	}
	nc := make(map[string]bool, len(grades))
	for _, g := range grades {
		nc[strings.ToUpper(strings.TrimSpace(g))] = true
	}
	return &Walker{evaluator: ev, nonCompleting: nc}
}

type semesterGroup struct {
	term    int
	records []domain.CourseRecord
}

// Walk computes every semester's snapshot and eligible sets for one
// student. Each semester sees only courses recorded at or before it.
func (w *Walker) Walk(records []domain.CourseRecord, declaredMajor string) (*Walk, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	groups := groupBySemester(records)

	walk := &Walk{
		StudentID: records[0].StudentID,
		Taken:     domain.NewCourseSet(),
	}
	for _, r := range records {
		if r.Major == declaredMajor {
			walk.MajorMatched = true
			break
		}
	}

	pcr := incomingPCR(groups)
	completed := domain.NewCourseSet()
	for i, g := range groups {
		for _, r := range g.records {
			walk.Taken.Add(r.CourseID)
			if !w.nonCompleting[strings.ToUpper(strings.TrimSpace(r.Grade))] {
				completed.Add(r.CourseID)
			}
		}

		attrs := attributeRecord(g.records, declaredMajor)
		snap := domain.StudentSnapshot{
			StudentID:     walk.StudentID,
			Semester:      g.term,
			Completed:     completed.Clone(),
			Major:         declaredMajor,
			College:       attrs.College,
			Program:       attrs.Program,
			PassedCredits: semesterPassedCredits(g.records),
			StudentLevel:  attrs.StudentLevel,
		}
		if declaredMajor == "" {
			snap.Major = attrs.Major
		}
		if i == len(groups)-1 {
			snap.IncomingPCR = pcr
		}

		walk.Semesters = append(walk.Semesters, Semester{
			Snapshot: snap,
			Result:   w.evaluate(&snap),
		})
	}
	return walk, nil
}

func (w *Walker) evaluate(snap *domain.StudentSnapshot) domain.EligibilityResult {
	plain := w.evaluator.EligiblePlain(snap.Completed)
	special := w.evaluator.EligibleSpecial(snap.Completed, snap)
	return domain.EligibilityResult{
		StudentID: snap.StudentID,
		Semester:  snap.Semester,
		Plain:     plain,
		Special:   special,
		Eligible:  plain.Union(special),
	}
}

func groupBySemester(records []domain.CourseRecord) []semesterGroup {
	sorted := make([]domain.CourseRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Semester < sorted[j].Semester
	})

	var groups []semesterGroup
	for _, r := range sorted {
		if n := len(groups); n > 0 && groups[n-1].term == r.Semester {
			groups[n-1].records = append(groups[n-1].records, r)
			continue
		}
		groups = append(groups, semesterGroup{term: r.Semester, records: []domain.CourseRecord{r}})
	}
	return groups
}

// attributeRecord picks the record whose attributes describe the semester:
// the last one under the declared major, else the last one.
func attributeRecord(records []domain.CourseRecord, declaredMajor string) domain.CourseRecord {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Major == declaredMajor {
			return records[i]
		}
	}
	return records[len(records)-1]
}

func semesterPassedCredits(records []domain.CourseRecord) float64 {
	var top float64
	for _, r := range records {
		if r.PassedCredits > top {
			top = r.PassedCredits
		}
	}
	return top
}

func semesterCreditSum(records []domain.CourseRecord) float64 {
	var sum float64
	for _, r := range records {
		sum += r.Credits
	}
	return sum
}

// IncomingPCR estimates the credit total a student is carrying into the
// next term. When the latest semester's passed-credit count equals the
// prior semester's, the latest semester's credits have not been posted
// yet and are added on top.
func IncomingPCR(records []domain.CourseRecord) float64 {
	return incomingPCR(groupBySemester(records))
}

func incomingPCR(groups []semesterGroup) float64 {
	if len(groups) == 0 {
		return 0
	}
	latest := groups[len(groups)-1].records
	passedLatest := semesterPassedCredits(latest)
	if len(groups) < 2 {
		return passedLatest
	}
	passedPrior := semesterPassedCredits(groups[len(groups)-2].records)
	if passedLatest == passedPrior {
		return semesterCreditSum(latest) + passedLatest
	}
	return passedLatest
}
