package main

import (
	"fmt"
	"os"

	"github.com/godilite/grade-calculator/internal/cli"
	"github.com/godilite/grade-calculator/internal/config"
	"github.com/godilite/grade-calculator/internal/grading"
	"github.com/godilite/grade-calculator/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

// env is resolved once per invocation in PersistentPreRunE.
type env struct {
	logger  *zap.Logger
	grading *service.GradingService
}

func newRootCommand() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:   "gradecli",
		Short: "Calculate a student's final grade",
		Long: `gradecli calculates a student's final grade from weighted evaluations,
the minimum attendance rule and the extra points agreed by the year's teachers.

Run without a subcommand to enter the record interactively.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := cli.NewSession(
				cli.NewHuhPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				e.grading,
				cmd.OutOrStdout(),
			)
			return session.Run()
		},
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		config.LoadDotEnv()
		cfg := config.LoadFromEnv()
		if os.Getenv("LOG_LEVEL") == "" {
			cfg.LogLevel = "warn"
		}
		if *debugLogging {
			cfg.LogLevel = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err := config.NewLogger(cfg)
		if err != nil {
			return err
		}
		calculator, err := grading.NewCalculator(grading.WithLimits(cfg.Grading))
		if err != nil {
			return err
		}

		e.logger = logger
		e.grading = service.NewGradingService(calculator, cfg.Grading, logger)
		return nil
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if e.logger != nil {
			_ = e.logger.Sync()
		}
	}

	cmd.AddCommand(newCalcCommand(e))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
