// Package record reads a single student's grading record from YAML or JSON.
package record

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/godilite/grade-calculator/internal/service"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a student record.
type File struct {
	StudentID   string       `yaml:"student_id"`
	Evaluations []Evaluation `yaml:"evaluations"`
	Attendance  Attendance   `yaml:"attendance"`
	ExtraPoints ExtraPoints  `yaml:"extra_points"`
}

type Evaluation struct {
	Name   string   `yaml:"name"`
	Score  *float64 `yaml:"score"`
	Weight *float64 `yaml:"weight"`
}

type Attendance struct {
	Met         bool     `yaml:"met"`
	Percentage  *float64 `yaml:"percentage"`
	MinRequired *float64 `yaml:"min_required"`
}

type ExtraPoints struct {
	AllYearsTeachers bool     `yaml:"all_years_teachers"`
	Value            *float64 `yaml:"value"`
}

// Load decodes one record. Unknown fields, missing scores or weights and
// trailing documents are errors.
func Load(r io.Reader) (service.CalculationRequest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return service.CalculationRequest{}, fmt.Errorf("record is empty")
		}
		return service.CalculationRequest{}, fmt.Errorf("decode record: %w", err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return service.CalculationRequest{}, fmt.Errorf("record must contain a single student")
	}

	return f.Request()
}

// LoadFile reads the record stored at path.
func LoadFile(path string) (service.CalculationRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return service.CalculationRequest{}, fmt.Errorf("read record: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// Request converts f into a service request.
func (f File) Request() (service.CalculationRequest, error) {
	evals := make([]service.EvaluationInput, len(f.Evaluations))
	for i, e := range f.Evaluations {
		if e.Score == nil {
			return service.CalculationRequest{}, fmt.Errorf("evaluation %d: score is required", i+1)
		}
		if e.Weight == nil {
			return service.CalculationRequest{}, fmt.Errorf("evaluation %d: weight is required", i+1)
		}
		evals[i] = service.EvaluationInput{Name: e.Name, Score: *e.Score, Weight: *e.Weight}
	}

	return service.CalculationRequest{
		StudentID:   f.StudentID,
		Evaluations: evals,
		Attendance: service.AttendanceInput{
			Met:         f.Attendance.Met,
			Percentage:  f.Attendance.Percentage,
			MinRequired: f.Attendance.MinRequired,
		},
		ExtraPoints: service.ExtraPointsInput{
			AllYearsTeachers: f.ExtraPoints.AllYearsTeachers,
			Value:            f.ExtraPoints.Value,
		},
	}, nil
}
