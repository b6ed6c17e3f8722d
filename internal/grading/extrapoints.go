package grading

import "math"

// ExtraPointsPolicy describes the bonus awarded when every instructor of the
// academic year agreed to it.
type ExtraPointsPolicy struct {
	allYearsTeachers bool
	value            float64
}

// NewExtraPointsPolicy fails when value is negative or not finite.
func NewExtraPointsPolicy(allYearsTeachers bool, value float64) (ExtraPointsPolicy, error) {
	if !(value >= 0) {
		return ExtraPointsPolicy{}, newValidationError("extra_points", "extra points must not be negative")
	}
	if math.IsInf(value, 1) {
		return ExtraPointsPolicy{}, newValidationError("extra_points", "extra points must be a finite number")
	}
	return ExtraPointsPolicy{allYearsTeachers: allYearsTeachers, value: value}, nil
}

// DefaultExtraPointsPolicy uses DefaultExtraPointsValue as the bonus.
func DefaultExtraPointsPolicy(allYearsTeachers bool) ExtraPointsPolicy {
	return DefaultLimits().DefaultExtraPointsPolicy(allYearsTeachers)
}

// DefaultExtraPointsPolicy uses l.DefaultExtraPoints as the bonus.
func (l Limits) DefaultExtraPointsPolicy(allYearsTeachers bool) ExtraPointsPolicy {
	return ExtraPointsPolicy{allYearsTeachers: allYearsTeachers, value: l.DefaultExtraPoints}
}

// ResolvePoints returns the bonus to add, or 0 when the instructors did not all agree.
func (p ExtraPointsPolicy) ResolvePoints() float64 {
	if p.allYearsTeachers {
		return p.value
	}
	return 0
}

func (p ExtraPointsPolicy) AllYearsTeachers() bool { return p.allYearsTeachers }
func (p ExtraPointsPolicy) Value() float64         { return p.value }
