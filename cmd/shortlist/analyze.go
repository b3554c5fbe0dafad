package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/shortlist/internal/form"
	"github.com/amishk599/shortlist/internal/model"
	"github.com/amishk599/shortlist/internal/report"
)

var (
	analyzeRole   string
	analyzeSkills []string
	analyzeOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze --role ROLE --skill SKILL... RESUME...",
	Short: "Submit once, print results, exit",
	Long:  "One-shot submission: sends the resumes with the role and skills, prints the match scores and exits non-zero on failure.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "job role (required)")
	analyzeCmd.Flags().StringArrayVar(&analyzeSkills, "skill", nil, "required skill (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "table", "output format: table, json or log")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var reporter model.Reporter
	switch analyzeOutput {
	case "table":
		reporter = report.NewTableReporter(os.Stdout)
	case "json":
		reporter = report.NewJSONReporter(os.Stdout)
	case "log":
		reporter = report.NewLogReporter(setupLogger(os.Stdout, debug))
	default:
		logger.Error("unknown output format", "output", analyzeOutput)
		os.Exit(1)
	}

	ctrl := newController(cfg, logger)
	if err := prefill(ctrl, analyzeRole, analyzeSkills, args, logger); err != nil {
		logger.Error("failed to read resumes", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state, err := ctrl.Submit(ctx)
	if errors.Is(err, form.ErrNotReady) {
		logger.Error("need at least one resume, a job role and a skill",
			"resumes", len(ctrl.Files()),
			"role", ctrl.JobRole(),
			"skills", len(ctrl.Skills()),
		)
		os.Exit(1)
	}

	switch s := state.(type) {
	case form.Succeeded:
		if err := reporter.Report(s.Results); err != nil {
			logger.Error("failed to print results", "error", err)
			os.Exit(1)
		}
	case form.Failed:
		logger.Error(s.Message)
		os.Exit(1)
	}
	return nil
}
