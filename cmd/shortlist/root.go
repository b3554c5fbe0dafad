package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/shortlist/internal/analysis"
	"github.com/amishk599/shortlist/internal/config"
	"github.com/amishk599/shortlist/internal/form"
	"github.com/amishk599/shortlist/internal/upload"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "shortlist",
	Short: "Score resumes against a job role and skill set",
	Long:  "Shortlist collects resumes, a job role and required skills, sends them to an analysis service and shows the match scores.",
	// No subcommand opens the interactive form.
	Args: cobra.ArbitraryArgs,
	RunE: runForm,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: SHORTLIST_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	addFormFlags(rootCmd)
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > SHORTLIST_CONFIG env var > "./config.yaml".
// Only the implicit ./config.yaml may be absent, in which case defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	if path == "" {
		path = os.Getenv("SHORTLIST_CONFIG")
	}
	if path == "" {
		cfg, err := config.Load("config.yaml")
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return cfg, err
	}
	return config.Load(path)
}

func setupLogger(w io.Writer, dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

func newController(cfg *config.Config, logger *slog.Logger) *form.Controller {
	httpClient := &http.Client{Timeout: cfg.Analysis.Timeout}
	client := analysis.NewClient(cfg.Analysis.Endpoint, httpClient, logger)
	return form.NewController(client, logger)
}

// prefill applies role, skills and resume paths given on the command line.
// Rejected paths are reported through the logger.
func prefill(ctrl *form.Controller, role string, skills, paths []string, logger *slog.Logger) error {
	ctrl.SetJobRole(role)
	for _, s := range skills {
		ctrl.AddSkill(s)
	}
	if len(paths) == 0 {
		return nil
	}
	files, rejected, err := upload.Select(paths...)
	if err != nil {
		return err
	}
	for _, r := range rejected {
		logger.Warn("skipping file", "path", r.Path, "reason", r.Reason)
	}
	ctrl.AddFiles(files...)
	return nil
}
