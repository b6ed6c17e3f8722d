package main

import (
	"fmt"

	"github.com/godilite/grade-calculator/internal/cli"
	"github.com/godilite/grade-calculator/internal/record"
	"github.com/spf13/cobra"
)

func newCalcCommand(e *env) *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the grade for a student record file",
		Long: `Calculate the grade for one student record written in YAML or JSON:

  student_id: UTEC001
  evaluations:
    - {name: Parcial, score: 15, weight: 40}
    - {name: Final, score: 18, weight: 60}
  attendance: {met: true}
  extra_points: {all_years_teachers: true}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			render, err := cli.Renderer(output)
			if err != nil {
				return err
			}

			req, err := record.LoadFile(file)
			if err != nil {
				return err
			}

			result, err := e.grading.Calculate(req)
			if err != nil {
				return fmt.Errorf("could not calculate grade: %w", err)
			}
			return render(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Student record file (YAML or JSON)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
