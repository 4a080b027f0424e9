package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of one major's configuration.
type File struct {
	Major        string              `yaml:"major"`
	Name         string              `yaml:"name,omitempty"`
	Gates        map[string]GateFile `yaml:"gates,omitempty"`
	Courses      []CourseRow         `yaml:"courses"`
	Bundles      []BundleRow         `yaml:"bundles,omitempty"`
	Requirements []RequirementRow    `yaml:"requirements"`
	Weights      []WeightRow         `yaml:"weights"`
	Combiner     *CombinerFile       `yaml:"combiner,omitempty"`
}

// GateFile names who passes a gated condition tag.
type GateFile struct {
	Majors     []string `yaml:"majors,omitempty"`
	Programs   []string `yaml:"programs,omitempty"`
	Colleges   []string `yaml:"colleges,omitempty"`
	MinCredits float64  `yaml:"min_credits,omitempty"`
}

// CourseRow is one prerequisite catalog row.
type CourseRow struct {
	CourseID      string `yaml:"course_id"`
	Requisites    string `yaml:"requisites"`
	Condition     string `yaml:"condition"`
	AreaOfStudy   string `yaml:"area_of_study"`
	CourseOfStudy string `yaml:"course_of_study"`
	CourseLevel   int    `yaml:"course_level"`
}

// BundleRow is one co-requisite bundle row.
type BundleRow struct {
	Requisites string `yaml:"requisites"`
	CourseID   string `yaml:"course_id"`
}

// RequirementRow is the number of courses required in an area of study.
type RequirementRow struct {
	AreaOfStudy     string `yaml:"area_of_study"`
	RequiredCourses int    `yaml:"required_courses"`
}

// WeightRow is the weight of an area of study in the remaining score.
type WeightRow struct {
	AreaOfStudy string  `yaml:"area_of_study"`
	Weight      float64 `yaml:"weight"`
}

// CombinerFile overrides the co-requisite pass count for a major.
type CombinerFile struct {
	Passes     int  `yaml:"passes,omitempty"`
	FixedPoint bool `yaml:"fixed_point,omitempty"`
}

// LoadFile reads and decodes a major configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a major configuration document.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrConfiguration, err)
	}
	return &f, nil
}
