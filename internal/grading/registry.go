package grading

import (
	"fmt"
	"slices"
)

// EvaluationRegistry collects one student's evaluations in insertion order and
// refuses to grow past the configured maximum. It is not safe for concurrent use.
type EvaluationRegistry struct {
	max         int
	evaluations []Evaluation
}

// NewRegistry returns an empty registry capped at DefaultMaxEvaluations.
func NewRegistry() *EvaluationRegistry {
	return DefaultLimits().NewRegistry()
}

// NewRegistry returns an empty registry capped at l.MaxEvaluations.
func (l Limits) NewRegistry() *EvaluationRegistry {
	return &EvaluationRegistry{
		max:         l.MaxEvaluations,
		evaluations: make([]Evaluation, 0, l.MaxEvaluations),
	}
}

// Add appends e, failing once the registry is full.
func (r *EvaluationRegistry) Add(e Evaluation) error {
	if len(r.evaluations) >= r.max {
		return tooManyEvaluations(r.max)
	}
	r.evaluations = append(r.evaluations, e)
	return nil
}

// Extend adds each evaluation in order and stops at the first failure.
// Evaluations added before the failure stay in the registry.
func (r *EvaluationRegistry) Extend(evaluations ...Evaluation) error {
	for _, e := range evaluations {
		if err := r.Add(e); err != nil {
			return err
		}
	}
	return nil
}

func (r *EvaluationRegistry) Len() int {
	return len(r.evaluations)
}

// TotalWeight sums the weights of all registered evaluations.
func (r *EvaluationRegistry) TotalWeight() float64 {
	return totalWeight(r.evaluations)
}

// Evaluations returns a copy of the registered evaluations.
func (r *EvaluationRegistry) Evaluations() []Evaluation {
	return slices.Clone(r.evaluations)
}

func tooManyEvaluations(max int) *ValidationError {
	return newValidationError("evaluations",
		fmt.Sprintf("only %d evaluations are allowed per student", max))
}

func totalWeight(evaluations []Evaluation) float64 {
	var total float64
	for _, e := range evaluations {
		total += e.weight
	}
	return total
}
