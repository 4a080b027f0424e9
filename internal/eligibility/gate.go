package eligibility

import (
	"slices"
	"strings"

	"github.com/alexanderramin/pathway/internal/domain"
)

// Gate restricts a rule to students of certain majors, programs or colleges.
// A student passes when any configured list matches. MinCredits is only
// used by the AND_Credits_<Gate> family.
type Gate struct {
	Majors     []string
	Programs   []string
	Colleges   []string
	MinCredits float64
}

// IsEmpty reports whether the gate names no major, program or college.
func (g Gate) IsEmpty() bool {
	return len(g.Majors) == 0 && len(g.Programs) == 0 && len(g.Colleges) == 0
}

// Admits reports whether the student matches the gate. An empty gate
// admits nobody. Programs are imported as written, so they match without
// regard to case.
func (g Gate) Admits(s *domain.StudentSnapshot) bool {
	if s == nil {
		return false
	}
	return slices.Contains(g.Majors, s.Major) ||
		slices.ContainsFunc(g.Programs, func(p string) bool { return strings.EqualFold(p, strings.TrimSpace(s.Program)) }) ||
		slices.Contains(g.Colleges, s.College)
}

// Fixed thresholds shared by every major.
const (
	SeniorCreditThreshold = 81
	BusinessCollege       = "CBA"
)

// meetsCredits compares both the recorded and the projected credit total.
func meetsCredits(s *domain.StudentSnapshot, threshold float64) bool {
	if s == nil {
		return false
	}
	return s.PassedCredits >= threshold || s.IncomingPCR >= threshold
}
