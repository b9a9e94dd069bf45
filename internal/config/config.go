package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/dataset"
)

// DefaultConfigFile is looked up in the working directory and the user config dir
const DefaultConfigFile = "salarypredictor.yaml"

// Environment variables that override the config file
const (
	EnvDataset       = "SALARY_DATASET"
	EnvDatasetFormat = "SALARY_DATASET_FORMAT"
	EnvLogLevel      = "SALARY_LOG_LEVEL"
	EnvCurrency      = "SALARY_CURRENCY"
	EnvProxy         = "SALARY_PROXY"
)

// AppConfig represents the application configuration
type AppConfig struct {
	Dataset    DatasetConfig   `yaml:"dataset"`
	Columns    dataset.Columns `yaml:"columns"`
	NullValues []string        `yaml:"null_values"`
	Display    DisplayConfig   `yaml:"display"`
	LogLevel   string          `yaml:"log_level"`
}

type DatasetConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	// Table is only used for sqlite datasets
	Table          string `yaml:"table"`
	Proxy          string `yaml:"proxy"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type DisplayConfig struct {
	Currency     string `yaml:"currency"`
	ShowBanner   bool   `yaml:"show_banner"`
	ShowProgress bool   `yaml:"show_progress"`
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// InvalidConfigError represents a malformed or inconsistent config
type InvalidConfigError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidConfigError) Error() string {
	msg := "invalid config"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Message != "" {
		msg += "\n" + e.Message
	}
	if e.Hint != "" {
		msg += "\n💡 " + e.Hint
	}
	return msg
}

// Default returns the configuration used when no config file exists
func Default() *AppConfig {
	return &AppConfig{
		Dataset: DatasetConfig{
			Path:           "Job.csv",
			Format:         dataset.FormatAuto,
			Table:          "jobs",
			TimeoutSeconds: 30,
		},
		Columns:    dataset.DefaultColumns(),
		NullValues: dataset.DefaultNullValues(),
		Display: DisplayConfig{
			Currency:     "₹",
			ShowBanner:   true,
			ShowProgress: true,
		},
		LogLevel: "info",
	}
}

// Load reads the config file at path, or the first default location that exists when
// path is empty, then applies .env and environment overrides. A missing default
// config file is not an error.
func Load(path string) (*AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = findConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, &InvalidConfigError{
					Path:    path,
					Message: err.Error(),
					Hint:    "Check the YAML syntax of the config file",
				}
			}
		case explicit || !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		var invalid *InvalidConfigError
		if errors.As(err, &invalid) && invalid.Path == "" {
			invalid.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

func findConfigPath() string {
	paths := []string{DefaultConfigFile}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "salarypredictor", "config.yaml"))
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv(EnvDataset); v != "" {
		c.Dataset.Path = v
	}
	if v := os.Getenv(EnvDatasetFormat); v != "" {
		c.Dataset.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvCurrency); ok {
		c.Display.Currency = v
	}
	if v := os.Getenv(EnvProxy); v != "" {
		c.Dataset.Proxy = v
	}
}

// Validate checks the configuration for values the loader cannot work with
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return &InvalidConfigError{
			Message: "dataset.path is empty",
			Hint:    "Set dataset.path, " + EnvDataset + " or pass --dataset",
		}
	}

	if !dataset.IsValidFormat(c.Dataset.Format) {
		return &InvalidConfigError{
			Message: fmt.Sprintf("unsupported dataset.format %q", c.Dataset.Format),
			Hint:    "Use one of: auto, csv, html, sqlite",
		}
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	if !validLogLevels[c.LogLevel] {
		return &InvalidConfigError{
			Message: fmt.Sprintf("unsupported log_level %q", c.LogLevel),
			Hint:    "Use one of: trace, debug, info, warn, error",
		}
	}

	cols := map[string]string{
		"columns.job_title":  c.Columns.JobTitle,
		"columns.company":    c.Columns.Company,
		"columns.experience": c.Columns.Experience,
		"columns.salary":     c.Columns.Salary,
	}
	seen := make(map[string]string, len(cols))
	for _, key := range []string{"columns.job_title", "columns.company", "columns.experience", "columns.salary"} {
		name := cols[key]
		if name == "" {
			return &InvalidConfigError{Message: key + " is empty"}
		}
		if other, dup := seen[name]; dup {
			return &InvalidConfigError{
				Message: fmt.Sprintf("%s and %s both name column %q", other, key, name),
			}
		}
		seen[name] = key
	}

	if c.Dataset.TimeoutSeconds < 0 {
		return &InvalidConfigError{Message: "dataset.timeout_seconds must not be negative"}
	}

	return nil
}

// DatasetOptions returns the reader options described by the config
func (c *AppConfig) DatasetOptions() dataset.Options {
	return dataset.Options{
		Columns:    c.Columns,
		NullValues: c.NullValues,
		Table:      c.Dataset.Table,
	}
}
