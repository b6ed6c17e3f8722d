package grading

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

type CalculatorOption func(*Calculator)

// WithLimits replaces DefaultLimits.
func WithLimits(l Limits) CalculatorOption {
	return func(c *Calculator) {
		c.limits = l
	}
}

// Calculator derives final grades. It holds no per-call state and is safe for
// concurrent use.
type Calculator struct {
	limits Limits
}

// NewCalculator creates a Calculator using DefaultLimits unless overridden.
// Limits passed through WithLimits must pass Limits.Validate.
func NewCalculator(opts ...CalculatorOption) (*Calculator, error) {
	c := &Calculator{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.limits.Validate(); err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}
	return c, nil
}

// Limits returns the bounds the calculator enforces.
func (c *Calculator) Limits() Limits {
	return c.limits
}

// Calculate computes the weighted average of evaluations, zeroes the grade when
// attendance was not met, otherwise adds the resolved extra points and caps the
// sum at MaxFinalGrade.
func (c *Calculator) Calculate(
	studentID string,
	evaluations []Evaluation,
	attendance AttendancePolicy,
	extraPoints ExtraPointsPolicy,
) (Result, error) {
	if strings.TrimSpace(studentID) == "" {
		return Result{}, newValidationError("student_id", "student id is required")
	}
	if len(evaluations) > c.limits.MaxEvaluations {
		return Result{}, tooManyEvaluations(c.limits.MaxEvaluations)
	}

	average, err := weightedAverage(evaluations)
	if err != nil {
		return Result{}, err
	}

	penalty := !attendance.HasReachedMinimum()

	var extra, final float64
	if !penalty {
		extra = extraPoints.ResolvePoints()
		final = math.Min(c.limits.MaxFinalGrade, average+extra)
	}

	return Result{
		studentID:                studentID,
		evaluations:              slices.Clone(evaluations),
		weightedAverage:          average,
		attendancePenaltyApplied: penalty,
		extraPointsApplied:       extra,
		finalGrade:               final,
	}, nil
}

// weightedAverage is 0 for no evaluations. Weights are divided by the largest
// one before summing so that the sums stay finite for any finite weights.
func weightedAverage(evaluations []Evaluation) (float64, error) {
	if len(evaluations) == 0 {
		return 0, nil
	}

	var maxWeight float64
	for _, e := range evaluations {
		maxWeight = math.Max(maxWeight, e.weight)
	}
	if !(maxWeight > 0) {
		return 0, newValidationError("weights", "total weight must be greater than 0")
	}

	var sum, total float64
	for _, e := range evaluations {
		w := e.weight / maxWeight
		sum += e.score * w
		total += w
	}
	return sum / total, nil
}
