package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuhPrompter_Text(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewHuhPrompter(strings.NewReader("  UTEC001  \n"), out)

	got, err := p.Text("Student ID", nil)

	require.NoError(t, err)
	assert.Equal(t, "UTEC001", got)
	assert.Contains(t, out.String(), "Student ID")
}

func TestHuhPrompter_Number(t *testing.T) {
	p := NewHuhPrompter(strings.NewReader("15.5\n"), &bytes.Buffer{})

	var seen float64
	got, err := p.Number("Score", func(v float64) error {
		seen = v
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 15.5, got)
	assert.Equal(t, 15.5, seen)
}

func TestHuhPrompter_NumberNeverValid(t *testing.T) {
	p := NewHuhPrompter(strings.NewReader("twenty\n"), &bytes.Buffer{})

	_, err := p.Number("Score", nil)

	assert.Error(t, err)
}

func TestHuhPrompter_TextRejectedUntilEOF(t *testing.T) {
	p := NewHuhPrompter(strings.NewReader("\n"), &bytes.Buffer{})

	_, err := p.Text("Name", func(s string) error {
		if s == "" {
			return errors.New("name is required")
		}
		return nil
	})

	assert.Error(t, err)
}

func TestHuhPrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p := NewHuhPrompter(strings.NewReader(tt.input), &bytes.Buffer{})

			got, err := p.Confirm("Attendance met?")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumber(t *testing.T) {
	v, err := parseNumber(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	_, err = parseNumber("4,2")
	assert.EqualError(t, err, "enter a valid number")
}
