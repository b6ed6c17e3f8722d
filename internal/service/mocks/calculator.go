package mocks

import (
	"errors"

	"github.com/godilite/grade-calculator/internal/grading"
)

// MockGradeCalculator records what the service hands to the calculator.
type MockGradeCalculator struct {
	CalculateFunc func(studentID string, evaluations []grading.Evaluation, attendance grading.AttendancePolicy, extraPoints grading.ExtraPointsPolicy) (grading.Result, error)
}

func (m *MockGradeCalculator) Calculate(studentID string, evaluations []grading.Evaluation, attendance grading.AttendancePolicy, extraPoints grading.ExtraPointsPolicy) (grading.Result, error) {
	if m.CalculateFunc != nil {
		return m.CalculateFunc(studentID, evaluations, attendance, extraPoints)
	}
	return grading.Result{}, errors.New("CalculateFunc not implemented")
}
