package grading

import "strings"

// Evaluation is one graded assessment with a relative weight.
// Values built through NewEvaluation always satisfy the Limits they were built with.
type Evaluation struct {
	name   string
	score  float64
	weight float64
}

// NewEvaluation builds an Evaluation against DefaultLimits.
func NewEvaluation(name string, score, weight float64) (Evaluation, error) {
	return DefaultLimits().NewEvaluation(name, score, weight)
}

// NewEvaluation builds an Evaluation, trimming the name.
func (l Limits) NewEvaluation(name string, score, weight float64) (Evaluation, error) {
	if err := l.ValidateName(name); err != nil {
		return Evaluation{}, err
	}
	if err := l.ValidateScore(score); err != nil {
		return Evaluation{}, err
	}
	if err := l.ValidateWeight(weight); err != nil {
		return Evaluation{}, err
	}
	return Evaluation{
		name:   strings.TrimSpace(name),
		score:  score,
		weight: weight,
	}, nil
}

func (e Evaluation) Name() string    { return e.name }
func (e Evaluation) Score() float64  { return e.score }
func (e Evaluation) Weight() float64 { return e.weight }
