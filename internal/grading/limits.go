package grading

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultMaxEvaluations   = 10
	DefaultMinScore         = 0.0
	DefaultMaxScore         = 20.0
	DefaultMaxFinalGrade    = 20.0
	DefaultExtraPointsValue = 1.0
	DefaultMinAttendance    = 70.0
	maxAttendancePercentage = 100.0
	minAttendancePercentage = 0.0
)

// Limits groups the grading bounds. The zero value is not usable; start from DefaultLimits.
type Limits struct {
	MaxEvaluations     int
	MinScore           float64
	MaxScore           float64
	MaxFinalGrade      float64
	DefaultExtraPoints float64
	// MinAttendance is the threshold used when attendance is given as a plain yes/no.
	MinAttendance float64
}

// DefaultLimits returns the standard 0-20 grading scale with at most 10 evaluations.
func DefaultLimits() Limits {
	return Limits{
		MaxEvaluations:     DefaultMaxEvaluations,
		MinScore:           DefaultMinScore,
		MaxScore:           DefaultMaxScore,
		MaxFinalGrade:      DefaultMaxFinalGrade,
		DefaultExtraPoints: DefaultExtraPointsValue,
		MinAttendance:      DefaultMinAttendance,
	}
}

// Validate reports whether the limits describe a coherent grading scale.
func (l Limits) Validate() error {
	switch {
	case l.MaxEvaluations <= 0:
		return fmt.Errorf("max evaluations must be positive, got %d", l.MaxEvaluations)
	case !(l.MinScore >= 0):
		return fmt.Errorf("min score must not be negative, got %g", l.MinScore)
	case !(l.MinScore < l.MaxScore) || math.IsInf(l.MaxScore, 1):
		return fmt.Errorf("min score %g must be below a finite max score, got %g", l.MinScore, l.MaxScore)
	case !(l.MaxFinalGrade > 0) || math.IsInf(l.MaxFinalGrade, 1):
		return fmt.Errorf("max final grade must be positive and finite, got %g", l.MaxFinalGrade)
	case !(l.DefaultExtraPoints >= 0) || math.IsInf(l.DefaultExtraPoints, 1):
		return fmt.Errorf("default extra points must be finite and not negative, got %g", l.DefaultExtraPoints)
	case !(l.MinAttendance > minAttendancePercentage && l.MinAttendance <= maxAttendancePercentage):
		return fmt.Errorf("min attendance must be in (0, 100], got %g", l.MinAttendance)
	}
	return nil
}

// ValidateName rejects empty or all-whitespace evaluation names.
func (l Limits) ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError("name", "evaluation name must not be empty")
	}
	return nil
}

// ValidateScore rejects scores outside [MinScore, MaxScore].
func (l Limits) ValidateScore(score float64) error {
	if !(score >= l.MinScore && score <= l.MaxScore) {
		return newValidationError("score",
			fmt.Sprintf("score must be between %g and %g", l.MinScore, l.MaxScore))
	}
	return nil
}

// ValidateWeight rejects weights that are not finite and strictly positive.
func (l Limits) ValidateWeight(weight float64) error {
	if !(weight > 0) || math.IsInf(weight, 1) {
		return newValidationError("weight", "weight must be a finite number greater than 0")
	}
	return nil
}

func validatePercentage(field string, value float64) error {
	if !(value >= minAttendancePercentage && value <= maxAttendancePercentage) {
		return newValidationError(field,
			fmt.Sprintf("%s must be between %g and %g", strings.ReplaceAll(field, "_", " "),
				minAttendancePercentage, maxAttendancePercentage))
	}
	return nil
}
