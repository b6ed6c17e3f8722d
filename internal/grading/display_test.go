package grading

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	evaluations := []Evaluation{
		mustEvaluation(t, "Parcial", 13, 1),
		mustEvaluation(t, "Proyecto", 17.5, 2),
	}
	extra, err := NewExtraPointsPolicy(true, 0.333)
	require.NoError(t, err)

	result, err := newCalculator(t).Calculate("UTEC011", evaluations, AttendanceMet(true), extra)
	require.NoError(t, err)

	summary := Summarize(result)

	assert.Equal(t, "UTEC011", summary.StudentID)
	assert.Equal(t, 16.0, summary.WeightedAverage)
	assert.Equal(t, 0.33, summary.ExtraPointsApplied)
	assert.Equal(t, 16.33, summary.FinalGrade)
	assert.False(t, summary.AttendancePenaltyApplied)
	assert.Equal(t, []EvaluationSummary{
		{Name: "Parcial", Score: 13, Weight: 1},
		{Name: "Proyecto", Score: 17.5, Weight: 2},
	}, summary.Evaluations)

	// rounding happens only in the display form
	assert.InDelta(t, 16.333, result.FinalGrade(), 1e-9)
}

func TestAsMap(t *testing.T) {
	evaluations := []Evaluation{mustEvaluation(t, "Proyecto", 18.5, 40)}

	result, err := newCalculator(t).Calculate("UTEC012", evaluations, AttendanceMet(false), DefaultExtraPointsPolicy(true))
	require.NoError(t, err)

	m := AsMap(result)

	assert.Equal(t, map[string]any{
		"student_id": "UTEC012",
		"evaluations": []map[string]any{
			{"name": "Proyecto", "score": 18.5, "weight": 40.0},
		},
		"weighted_average":           18.5,
		"attendance_penalty_applied": true,
		"extra_points_applied":       0.0,
		"final_grade":                0.0,
	}, m)
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		16.8:            16.8,
		16.333:          16.33,
		16.336:          16.34,
		0.125:           0.13,
		19.999:          20,
		0:               0,
		2.675001:       2.68,
		math.MaxFloat64: math.MaxFloat64,
	}
	for in, want := range cases {
		assert.Equal(t, want, Round2(in), "Round2(%v)", in)
	}
}
