package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// RecordImport is one cleaned course record as exported by the cleaning
// step. Semester, student level and numeric columns may arrive either as
// JSON numbers or as strings.
type RecordImport struct {
	StudentID     Field `json:"student_id"`
	Semester      Field `json:"semester"`
	CourseID      Field `json:"course_id"`
	Grade         Field `json:"grade,omitempty"`
	Credits       Field `json:"credits,omitempty"`
	StudentLevel  Field `json:"student_level,omitempty"`
	Major         Field `json:"major"`
	College       Field `json:"college,omitempty"`
	Program       Field `json:"program,omitempty"`
	PassedCredits Field `json:"passed_credits,omitempty"`
	GPA           Field `json:"gpa,omitempty"`
	AdmitTerm     Field `json:"admit_term,omitempty"`
	Status        Field `json:"status,omitempty"`
}

// Field is a scalar JSON value kept as text. Numbers keep their literal
// form; null becomes empty.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = Field(n.String())
	return nil
}

func (f Field) String() string { return string(f) }

// Int parses the field as an integer. Integral floats such as "202310.0"
// are accepted.
func (f Field) Int() (int, error) {
	s := string(f)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != float64(int(v)) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(v), nil
}

// Float parses the field as a number; empty is 0.
func (f Field) Float() (float64, error) {
	if f == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", string(f))
	}
	return v, nil
}

// LoadRecords reads a JSON array of records from path.
func LoadRecords(path string) ([]RecordImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeRecords(data)
}

// DecodeRecords parses a JSON array of records. A document that is not an
// array of objects fails as a whole.
func DecodeRecords(data []byte) ([]RecordImport, error) {
	var recs []RecordImport
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return recs, nil
}
