package service

// EvaluationInput is one evaluation as entered by a user or read from a file.
type EvaluationInput struct {
	Name   string
	Score  float64
	Weight float64
}

// AttendanceInput carries either a yes/no answer or a percentage. Percentage wins
// when both are present; MinRequired defaults to the configured threshold.
type AttendanceInput struct {
	Met         bool
	Percentage  *float64
	MinRequired *float64
}

// ExtraPointsInput leaves Value nil to use the configured default bonus.
type ExtraPointsInput struct {
	AllYearsTeachers bool
	Value            *float64
}

type CalculationRequest struct {
	StudentID   string
	Evaluations []EvaluationInput
	Attendance  AttendanceInput
	ExtraPoints ExtraPointsInput
}

type ItemInput struct {
	Name        string
	Price       float64
	Description *string
}

type Item struct {
	ID          int64
	Name        string
	Price       float64
	Description *string
}
