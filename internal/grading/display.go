package grading

import "math"

// Summary is the display form of a Result, with figures rounded to two decimals.
type Summary struct {
	StudentID                string              `json:"student_id"`
	Evaluations              []EvaluationSummary `json:"evaluations"`
	WeightedAverage          float64             `json:"weighted_average"`
	AttendancePenaltyApplied bool                `json:"attendance_penalty_applied"`
	ExtraPointsApplied       float64             `json:"extra_points_applied"`
	FinalGrade               float64             `json:"final_grade"`
}

type EvaluationSummary struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// Summarize selects the displayable fields of r and rounds the computed figures.
// Evaluation scores and weights are reported as entered.
func Summarize(r Result) Summary {
	evals := make([]EvaluationSummary, len(r.evaluations))
	for i, e := range r.evaluations {
		evals[i] = EvaluationSummary{Name: e.name, Score: e.score, Weight: e.weight}
	}
	return Summary{
		StudentID:                r.studentID,
		Evaluations:              evals,
		WeightedAverage:          Round2(r.weightedAverage),
		AttendancePenaltyApplied: r.attendancePenaltyApplied,
		ExtraPointsApplied:       Round2(r.extraPointsApplied),
		FinalGrade:               Round2(r.finalGrade),
	}
}

// AsMap is Summarize as a string-keyed mapping.
func AsMap(r Result) map[string]any {
	s := Summarize(r)
	evals := make([]map[string]any, len(s.Evaluations))
	for i, e := range s.Evaluations {
		evals[i] = map[string]any{
			"name":   e.Name,
			"score":  e.Score,
			"weight": e.Weight,
		}
	}
	return map[string]any{
		"student_id":                 s.StudentID,
		"evaluations":                evals,
		"weighted_average":           s.WeightedAverage,
		"attendance_penalty_applied": s.AttendancePenaltyApplied,
		"extra_points_applied":       s.ExtraPointsApplied,
		"final_grade":                s.FinalGrade,
	}
}

// Round2 rounds half away from zero to two decimals. Values too large to scale
// have no fractional part and are returned as is.
func Round2(v float64) float64 {
	scaled := v * 100
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.Round(scaled) / 100
}
