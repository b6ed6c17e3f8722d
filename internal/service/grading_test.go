package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/godilite/grade-calculator/internal/grading"
	"github.com/godilite/grade-calculator/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func floatPtr(v float64) *float64 { return &v }

func newGradingService(t *testing.T) *GradingService {
	t.Helper()
	return NewGradingService(newCalculator(t), grading.DefaultLimits(), zaptest.NewLogger(t))
}

func newCalculator(t *testing.T) *grading.Calculator {
	t.Helper()
	calc, err := grading.NewCalculator()
	require.NoError(t, err)
	return calc
}

// TestNewGradingService tests the constructor
func TestNewGradingService(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		calc := newCalculator(t)
		svc := NewGradingService(calc, grading.DefaultLimits(), zap.NewNop())

		assert.NotNil(t, svc)
		assert.Equal(t, calc, svc.calculator)
		assert.Equal(t, grading.DefaultLimits(), svc.Limits())
	})

	t.Run("nil calculator panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGradingService(nil, grading.DefaultLimits(), zap.NewNop())
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		svc := NewGradingService(newCalculator(t), grading.DefaultLimits(), nil)

		assert.NotNil(t, svc.logger)
	})
}

func TestGradingService_Calculate(t *testing.T) {
	svc := newGradingService(t)

	t.Run("worked example", func(t *testing.T) {
		result, err := svc.Calculate(CalculationRequest{
			StudentID: "UTEC001",
			Evaluations: []EvaluationInput{
				{Name: "Parcial", Score: 15, Weight: 40},
				{Name: "Proyecto", Score: 18, Weight: 60},
			},
			Attendance: AttendanceInput{Met: true},
		})

		require.NoError(t, err)
		assert.InDelta(t, 16.8, result.WeightedAverage(), 1e-9)
		assert.InDelta(t, 16.8, result.FinalGrade(), 1e-9)
		assert.Len(t, result.Evaluations(), 2)
	})

	t.Run("default extra points", func(t *testing.T) {
		result, err := svc.Calculate(CalculationRequest{
			StudentID:   "UTEC002",
			Evaluations: []EvaluationInput{{Name: "Final", Score: 14, Weight: 1}},
			Attendance:  AttendanceInput{Met: true},
			ExtraPoints: ExtraPointsInput{AllYearsTeachers: true},
		})

		require.NoError(t, err)
		assert.Equal(t, 1.0, result.ExtraPointsApplied())
		assert.InDelta(t, 15.0, result.FinalGrade(), 1e-9)
	})

	t.Run("explicit extra points are capped", func(t *testing.T) {
		result, err := svc.Calculate(CalculationRequest{
			StudentID:   "UTEC003",
			Evaluations: []EvaluationInput{{Name: "Unico", Score: 20, Weight: 100}},
			Attendance:  AttendanceInput{Met: true},
			ExtraPoints: ExtraPointsInput{AllYearsTeachers: true, Value: floatPtr(5)},
		})

		require.NoError(t, err)
		assert.Equal(t, 5.0, result.ExtraPointsApplied())
		assert.Equal(t, 20.0, result.FinalGrade())
	})

	t.Run("percentage attendance overrides the flag", func(t *testing.T) {
		result, err := svc.Calculate(CalculationRequest{
			StudentID:   "UTEC004",
			Evaluations: []EvaluationInput{{Name: "Final", Score: 19, Weight: 1}},
			Attendance:  AttendanceInput{Met: true, Percentage: floatPtr(65)},
		})

		require.NoError(t, err)
		assert.True(t, result.AttendancePenaltyApplied())
		assert.Equal(t, 0.0, result.FinalGrade())
	})

	t.Run("percentage with explicit minimum", func(t *testing.T) {
		result, err := svc.Calculate(CalculationRequest{
			StudentID:   "UTEC005",
			Evaluations: []EvaluationInput{{Name: "Final", Score: 19, Weight: 1}},
			Attendance:  AttendanceInput{Percentage: floatPtr(65), MinRequired: floatPtr(60)},
		})

		require.NoError(t, err)
		assert.False(t, result.AttendancePenaltyApplied())
	})
}

func TestGradingService_CalculateFailures(t *testing.T) {
	svc := newGradingService(t)

	cases := []struct {
		name    string
		req     CalculationRequest
		message string
	}{
		{
			name: "invalid evaluation reports its position",
			req: CalculationRequest{
				StudentID: "UTEC010",
				Evaluations: []EvaluationInput{
					{Name: "Parcial", Score: 15, Weight: 40},
					{Name: "Proyecto", Score: 25, Weight: 60},
				},
			},
			message: "evaluation 2: score must be between 0 and 20",
		},
		{
			name: "blank student id",
			req: CalculationRequest{
				StudentID:  "  ",
				Attendance: AttendanceInput{Met: true},
			},
			message: "student id is required",
		},
		{
			name: "attendance percentage out of range",
			req: CalculationRequest{
				StudentID:  "UTEC011",
				Attendance: AttendanceInput{Percentage: floatPtr(120)},
			},
			message: "attendance percentage must be between 0 and 100",
		},
		{
			name: "negative extra points",
			req: CalculationRequest{
				StudentID:   "UTEC012",
				ExtraPoints: ExtraPointsInput{AllYearsTeachers: true, Value: floatPtr(-2)},
			},
			message: "extra points must not be negative",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Calculate(tc.req)

			assert.ErrorIs(t, err, grading.ErrValidation)
			assert.EqualError(t, err, tc.message)
		})
	}

	t.Run("too many evaluations", func(t *testing.T) {
		evals := make([]EvaluationInput, 11)
		for i := range evals {
			evals[i] = EvaluationInput{Name: fmt.Sprintf("Eval %d", i), Score: 10, Weight: 1}
		}

		_, err := svc.Calculate(CalculationRequest{StudentID: "UTEC013", Evaluations: evals})

		var ve *grading.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "evaluations", ve.Field)
	})
}

func TestGradingService_PassesInjectedLimits(t *testing.T) {
	limits := grading.DefaultLimits()
	limits.MinAttendance = 90
	limits.DefaultExtraPoints = 2

	calc := &mocks.MockGradeCalculator{
		CalculateFunc: func(studentID string, evaluations []grading.Evaluation, attendance grading.AttendancePolicy, extraPoints grading.ExtraPointsPolicy) (grading.Result, error) {
			assert.Equal(t, "UTEC020", studentID)
			assert.Equal(t, 90.0, attendance.MinRequired())
			assert.Equal(t, 2.0, extraPoints.ResolvePoints())
			require.Len(t, evaluations, 1)
			assert.Equal(t, "Quiz", evaluations[0].Name())
			return grading.Result{}, nil
		},
	}
	svc := NewGradingService(calc, limits, zap.NewNop())

	_, err := svc.Calculate(CalculationRequest{
		StudentID:   "UTEC020",
		Evaluations: []EvaluationInput{{Name: " Quiz ", Score: 10, Weight: 1}},
		Attendance:  AttendanceInput{Met: true},
		ExtraPoints: ExtraPointsInput{AllYearsTeachers: true},
	})

	assert.NoError(t, err)
}
