package cli

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/godilite/grade-calculator/internal/grading"
	"github.com/godilite/grade-calculator/internal/service"
)

// Grader is the part of service.GradingService the session depends on.
type Grader interface {
	Limits() grading.Limits
	Calculate(req service.CalculationRequest) (grading.Result, error)
}

// Session collects one student's record interactively and prints the grade.
type Session struct {
	prompter Prompter
	grader   Grader
	out      io.Writer
	render   RenderFunc
}

type SessionOption func(*Session)

// WithRenderer replaces the default text output.
func WithRenderer(fn RenderFunc) SessionOption {
	return func(s *Session) {
		if fn != nil {
			s.render = fn
		}
	}
}

func NewSession(p Prompter, g Grader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		prompter: p,
		grader:   g,
		out:      out,
		render:   RenderText,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run asks for every input, calculates, and renders the result. A rejected
// calculation is reported on out and is not an error; prompt failures are.
func (s *Session) Run() error {
	limits := s.grader.Limits()

	fmt.Fprintln(s.out, "===== Grade Calculator =====")

	studentID, err := s.prompter.Text("Student ID", func(v string) error {
		if v == "" {
			return errors.New("student id must not be empty")
		}
		return nil
	})
	if err != nil {
		return err
	}

	evaluations, err := s.collectEvaluations(limits)
	if err != nil {
		return err
	}

	attended, err := s.prompter.Confirm("Did the student reach the minimum attendance?")
	if err != nil {
		return err
	}
	allTeachers, err := s.prompter.Confirm("Did all teachers of the year approve extra points?")
	if err != nil {
		return err
	}

	result, err := s.grader.Calculate(service.CalculationRequest{
		StudentID:   studentID,
		Evaluations: evaluations,
		Attendance:  service.AttendanceInput{Met: attended},
		ExtraPoints: service.ExtraPointsInput{AllYearsTeachers: allTeachers},
	})
	if err != nil {
		if errors.Is(err, grading.ErrValidation) {
			fmt.Fprintf(s.out, "could not calculate grade: %s\n", err)
			return nil
		}
		return err
	}

	fmt.Fprintln(s.out)
	return s.render(s.out, result)
}

func (s *Session) collectEvaluations(limits grading.Limits) ([]service.EvaluationInput, error) {
	count, err := s.prompter.Number(
		fmt.Sprintf("How many evaluations will you enter? (0-%d)", limits.MaxEvaluations),
		func(v float64) error {
			if v != math.Trunc(v) || v < 0 || v > float64(limits.MaxEvaluations) {
				return fmt.Errorf("enter a whole number between 0 and %d", limits.MaxEvaluations)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	registry := limits.NewRegistry()
	inputs := make([]service.EvaluationInput, 0, int(count))
	for i := 1; i <= int(count); i++ {
		for {
			fmt.Fprintf(s.out, "\nEvaluation %d\n", i)
			in, err := s.promptEvaluation(limits)
			if err != nil {
				return nil, err
			}

			e, err := limits.NewEvaluation(in.Name, in.Score, in.Weight)
			if err == nil {
				err = registry.Add(e)
			}
			if err != nil {
				fmt.Fprintf(s.out, "Error: %s. Enter the evaluation again.\n", err)
				continue
			}
			inputs = append(inputs, in)
			break
		}
	}
	return inputs, nil
}

func (s *Session) promptEvaluation(limits grading.Limits) (service.EvaluationInput, error) {
	name, err := s.prompter.Text("Name", limits.ValidateName)
	if err != nil {
		return service.EvaluationInput{}, err
	}
	score, err := s.prompter.Number(
		fmt.Sprintf("Score (%g-%g)", limits.MinScore, limits.MaxScore), limits.ValidateScore)
	if err != nil {
		return service.EvaluationInput{}, err
	}
	weight, err := s.prompter.Number("Relative weight (e.g. 20 for 20%)", limits.ValidateWeight)
	if err != nil {
		return service.EvaluationInput{}, err
	}
	return service.EvaluationInput{Name: name, Score: score, Weight: weight}, nil
}
