package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/godilite/grade-calculator/internal/grading"
)

// RenderFunc writes a calculation result to w.
type RenderFunc func(w io.Writer, r grading.Result) error

// RenderText prints the result for a person to read.
func RenderText(w io.Writer, r grading.Result) error {
	s := grading.Summarize(r)

	fmt.Fprintln(w, "===== Result =====")
	fmt.Fprintf(w, "Student: %s\n", s.StudentID)
	fmt.Fprintf(w, "Weighted average: %.2f\n", s.WeightedAverage)
	fmt.Fprintf(w, "Extra points applied: %.2f\n", s.ExtraPointsApplied)
	if s.AttendancePenaltyApplied {
		fmt.Fprintln(w, "Penalty: minimum attendance not met, final grade = 0")
	}
	_, err := fmt.Fprintf(w, "Final grade: %.2f\n", s.FinalGrade)
	return err
}

// RenderJSON prints the display mapping of the result as indented JSON.
func RenderJSON(w io.Writer, r grading.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(grading.AsMap(r)); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// Renderer resolves an output format name.
func Renderer(format string) (RenderFunc, error) {
	switch format {
	case "", "text":
		return RenderText, nil
	case "json":
		return RenderJSON, nil
	default:
		return nil, fmt.Errorf("unknown output format %q: must be text or json", format)
	}
}
