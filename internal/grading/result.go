package grading

import "slices"

// Result is the audit trail of one grade calculation.
type Result struct {
	studentID                string
	evaluations              []Evaluation
	weightedAverage          float64
	attendancePenaltyApplied bool
	extraPointsApplied       float64
	finalGrade               float64
}

func (r Result) StudentID() string { return r.studentID }

// Evaluations returns a copy of the evaluations the grade was computed from.
func (r Result) Evaluations() []Evaluation { return slices.Clone(r.evaluations) }

func (r Result) WeightedAverage() float64 { return r.weightedAverage }

// AttendancePenaltyApplied reports whether missing attendance forced the grade to 0.
func (r Result) AttendancePenaltyApplied() bool { return r.attendancePenaltyApplied }

func (r Result) ExtraPointsApplied() float64 { return r.extraPointsApplied }

func (r Result) FinalGrade() float64 { return r.finalGrade }
