package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Prompter asks one question at a time. Implementations keep asking until the
// validator accepts the answer.
type Prompter interface {
	Text(title string, validate func(string) error) (string, error)
	Number(title string, validate func(float64) error) (float64, error)
	Confirm(title string) (bool, error)
}

// HuhPrompter runs a single-field huh form per question.
type HuhPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewHuhPrompter(in io.Reader, out io.Writer) *HuhPrompter {
	return &HuhPrompter{in: in, out: out}
}

func (p *HuhPrompter) Text(title string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Value(&value).
		Validate(func(s string) error {
			if validate == nil {
				return nil
			}
			return validate(strings.TrimSpace(s))
		})

	if err := p.run(input); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p *HuhPrompter) Number(title string, validate func(float64) error) (float64, error) {
	var raw string
	input := huh.NewInput().
		Title(title).
		Value(&raw).
		Validate(func(s string) error {
			v, err := parseNumber(s)
			if err != nil {
				return err
			}
			if validate == nil {
				return nil
			}
			return validate(v)
		})

	if err := p.run(input); err != nil {
		return 0, err
	}
	return parseNumber(raw)
}

func (p *HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := p.run(confirm); err != nil {
		return false, err
	}
	return confirmed, nil
}

func (p *HuhPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(p.in).
		WithOutput(p.out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := p.in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("enter a valid number")
	}
	return v, nil
}
