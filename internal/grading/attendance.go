package grading

// AttendancePolicy records whether a student reached the minimum attendance.
// The zero value means the minimum was not reached.
type AttendancePolicy struct {
	percentage  float64
	minRequired float64
	met         bool
}

// NewAttendancePolicy compares an attendance percentage against a required
// minimum. Both values must lie in [0, 100].
func NewAttendancePolicy(percentage, minRequired float64) (AttendancePolicy, error) {
	if err := validatePercentage("attendance_percentage", percentage); err != nil {
		return AttendancePolicy{}, err
	}
	if err := validatePercentage("minimum_attendance", minRequired); err != nil {
		return AttendancePolicy{}, err
	}
	return AttendancePolicy{
		percentage:  percentage,
		minRequired: minRequired,
		met:         percentage >= minRequired,
	}, nil
}

// AttendanceMet builds a policy from a plain yes/no answer using DefaultMinAttendance.
func AttendanceMet(met bool) AttendancePolicy {
	return DefaultLimits().AttendanceMet(met)
}

// AttendanceMet builds a policy from a plain yes/no answer: full attendance when
// met, none otherwise, measured against l.MinAttendance.
func (l Limits) AttendanceMet(met bool) AttendancePolicy {
	percentage := minAttendancePercentage
	if met {
		percentage = maxAttendancePercentage
	}
	return AttendancePolicy{
		percentage:  percentage,
		minRequired: l.MinAttendance,
		met:         met,
	}
}

func (a AttendancePolicy) HasReachedMinimum() bool { return a.met }
func (a AttendancePolicy) Percentage() float64     { return a.percentage }
func (a AttendancePolicy) MinRequired() float64    { return a.minRequired }
