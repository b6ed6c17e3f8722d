package service

import (
	"fmt"

	"github.com/godilite/grade-calculator/internal/grading"
	"go.uber.org/zap"
)

// GradingService turns primitive input into grading values and runs the calculator.
type GradingService struct {
	calculator GradeCalculator
	limits     grading.Limits
	logger     *zap.Logger
}

// NewGradingService creates a GradingService instance.
func NewGradingService(calculator GradeCalculator, limits grading.Limits, logger *zap.Logger) *GradingService {
	if calculator == nil {
		panic("calculator must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &GradingService{
		calculator: calculator,
		limits:     limits,
		logger:     logger.Named("grading"),
	}
}

// Limits returns the bounds used to validate input.
func (s *GradingService) Limits() grading.Limits {
	return s.limits
}

// Calculate validates req and returns the calculation result. Every failure wraps
// a *grading.ValidationError.
func (s *GradingService) Calculate(req CalculationRequest) (grading.Result, error) {
	registry := s.limits.NewRegistry()
	for i, in := range req.Evaluations {
		e, err := s.limits.NewEvaluation(in.Name, in.Score, in.Weight)
		if err != nil {
			return grading.Result{}, fmt.Errorf("evaluation %d: %w", i+1, err)
		}
		if err := registry.Add(e); err != nil {
			return grading.Result{}, err
		}
	}

	attendance, err := s.attendancePolicy(req.Attendance)
	if err != nil {
		return grading.Result{}, err
	}

	extraPoints, err := s.extraPointsPolicy(req.ExtraPoints)
	if err != nil {
		return grading.Result{}, err
	}

	result, err := s.calculator.Calculate(req.StudentID, registry.Evaluations(), attendance, extraPoints)
	if err != nil {
		s.logger.Debug("grade calculation rejected",
			zap.String("student_id", req.StudentID),
			zap.Error(err))
		return grading.Result{}, err
	}

	s.logger.Info("grade calculated",
		zap.String("student_id", result.StudentID()),
		zap.Int("evaluations", registry.Len()),
		zap.Float64("weighted_average", result.WeightedAverage()),
		zap.Bool("attendance_penalty", result.AttendancePenaltyApplied()),
		zap.Float64("extra_points", result.ExtraPointsApplied()),
		zap.Float64("final_grade", result.FinalGrade()))

	return result, nil
}

func (s *GradingService) attendancePolicy(in AttendanceInput) (grading.AttendancePolicy, error) {
	if in.Percentage == nil {
		return s.limits.AttendanceMet(in.Met), nil
	}
	minRequired := s.limits.MinAttendance
	if in.MinRequired != nil {
		minRequired = *in.MinRequired
	}
	return grading.NewAttendancePolicy(*in.Percentage, minRequired)
}

func (s *GradingService) extraPointsPolicy(in ExtraPointsInput) (grading.ExtraPointsPolicy, error) {
	if in.Value == nil {
		return s.limits.DefaultExtraPointsPolicy(in.AllYearsTeachers), nil
	}
	return grading.NewExtraPointsPolicy(in.AllYearsTeachers, *in.Value)
}
