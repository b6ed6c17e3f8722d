package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/godilite/grade-calculator/internal/grading"
)

// Exit codes for different failure modes
const (
	ExitSuccess  = 0 // Grade calculated
	ExitRejected = 1 // The record failed validation
	ExitError    = 2 // Configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		if errors.Is(err, grading.ErrValidation) {
			os.Exit(ExitRejected)
		}
		os.Exit(ExitError)
	}
}
