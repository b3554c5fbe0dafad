package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for shortlist.
type Config struct {
	Analysis AnalysisConfig
	Log      LogConfig
}

// AnalysisConfig points at the analysis service.
type AnalysisConfig struct {
	Endpoint string        // service root, /analyze is appended
	Timeout  time.Duration // transport timeout, zero means none
}

// LogConfig controls where diagnostics go while the form owns the terminal.
type LogConfig struct {
	File string // empty discards logs in form mode
}

const defaultEndpoint = "http://localhost:5000"

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Analysis rawAnalysisConfig `yaml:"analysis"`
	Log      rawLogConfig      `yaml:"log"`
}

type rawAnalysisConfig struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
}

type rawLogConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{Endpoint: defaultEndpoint},
	}
}

// LoadDotEnv loads variables from .env files into the process environment
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse expands environment variables in data, parses it and validates the result.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.Analysis.Endpoint != "" {
		cfg.Analysis.Endpoint = raw.Analysis.Endpoint
	}
	if raw.Analysis.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Analysis.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse analysis.timeout %q: %w", raw.Analysis.Timeout, err)
		}
		cfg.Analysis.Timeout = timeout
	}
	cfg.Log.File = raw.Log.File

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.Analysis.Endpoint)
	if err != nil {
		return fmt.Errorf("analysis.endpoint %q: %w", cfg.Analysis.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("analysis.endpoint must be an http or https URL, got %q", cfg.Analysis.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("analysis.endpoint has no host: %q", cfg.Analysis.Endpoint)
	}
	if cfg.Analysis.Timeout < 0 {
		return fmt.Errorf("analysis.timeout must not be negative, got %v", cfg.Analysis.Timeout)
	}
	return nil
}
