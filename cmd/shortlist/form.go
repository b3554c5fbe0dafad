package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/shortlist/internal/tui"
)

var (
	formRole   string
	formSkills []string
)

var formCmd = &cobra.Command{
	Use:   "form [resume files...]",
	Short: "Open the interactive form",
	Long:  "Opens the resume form. Files, role and skills given on the command line are filled in; everything stays editable.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runForm,
}

func init() {
	addFormFlags(formCmd)
	rootCmd.AddCommand(formCmd)
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&formRole, "role", "", "job role to prefill")
	cmd.Flags().StringArrayVar(&formSkills, "skill", nil, "required skill to prefill (repeatable)")
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The form owns the terminal; any log output would corrupt the display.
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := setupLogger(logOut, debug)
	logger.Info("form starting", "endpoint", cfg.Analysis.Endpoint, "timeout", cfg.Analysis.Timeout.String())

	ctrl := newController(cfg, logger)
	if err := prefill(ctrl, formRole, formSkills, args, logger); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read resumes: %v\n", err)
		os.Exit(1)
	}

	if err := tui.RunForm(ctrl); err != nil {
		fmt.Fprintf(os.Stderr, "form error: %v\n", err)
		os.Exit(1)
	}
	return nil
}
