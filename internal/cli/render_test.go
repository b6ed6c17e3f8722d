package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/godilite/grade-calculator/internal/grading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculate(t *testing.T, attended bool) grading.Result {
	t.Helper()
	e1, err := grading.NewEvaluation("Parcial", 15, 40)
	require.NoError(t, err)
	e2, err := grading.NewEvaluation("Final", 18, 60)
	require.NoError(t, err)

	calculator, err := grading.NewCalculator()
	require.NoError(t, err)

	r, err := calculator.Calculate("UTEC001",
		[]grading.Evaluation{e1, e2},
		grading.AttendanceMet(attended),
		grading.DefaultExtraPointsPolicy(true))
	require.NoError(t, err)
	return r
}

func TestRenderText(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, RenderText(out, calculate(t, true)))

	assert.Equal(t, "===== Result =====\n"+
		"Student: UTEC001\n"+
		"Weighted average: 16.80\n"+
		"Extra points applied: 1.00\n"+
		"Final grade: 17.80\n", out.String())
}

func TestRenderText_Penalty(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, RenderText(out, calculate(t, false)))

	assert.Contains(t, out.String(), "Penalty: minimum attendance not met, final grade = 0")
	assert.Contains(t, out.String(), "Extra points applied: 0.00")
	assert.Contains(t, out.String(), "Final grade: 0.00")
}

func TestRenderJSON(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, RenderJSON(out, calculate(t, true)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "UTEC001", got["student_id"])
	assert.Equal(t, 16.8, got["weighted_average"])
	assert.Equal(t, 17.8, got["final_grade"])
	assert.Equal(t, false, got["attendance_penalty_applied"])
	assert.Len(t, got["evaluations"], 2)
}

func TestRenderer(t *testing.T) {
	for _, format := range []string{"", "text", "json"} {
		fn, err := Renderer(format)
		require.NoError(t, err, format)
		assert.NotNil(t, fn)
	}

	_, err := Renderer("xml")
	assert.EqualError(t, err, `unknown output format "xml": must be text or json`)
}
