package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDataset, EnvDatasetFormat, EnvLogLevel, EnvProxy} {
		t.Setenv(key, "")
	}
	// An empty currency is meaningful, so it has to be unset rather than blanked
	if v, ok := os.LookupEnv(EnvCurrency); ok {
		os.Unsetenv(EnvCurrency)
		t.Cleanup(func() { os.Setenv(EnvCurrency, v) })
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Dataset.Path != "Job.csv" {
		t.Errorf("Dataset.Path = %q, want Job.csv", cfg.Dataset.Path)
	}
	if cfg.Columns.JobTitle != "Type_of_job" || cfg.Columns.Salary != "salary" {
		t.Errorf("unexpected default columns: %+v", cfg.Columns)
	}
	if cfg.Display.Currency != "₹" {
		t.Errorf("Display.Currency = %q", cfg.Display.Currency)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
dataset:
  path: data/postings.html
  format: html
columns:
  salary: pay
display:
  currency: "$"
log_level: DEBUG
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Dataset.Path != "data/postings.html" || cfg.Dataset.Format != "html" {
		t.Errorf("unexpected dataset config: %+v", cfg.Dataset)
	}
	if cfg.Columns.Salary != "pay" {
		t.Errorf("Columns.Salary = %q, want pay", cfg.Columns.Salary)
	}
	if cfg.Columns.JobTitle != "Type_of_job" {
		t.Errorf("unset column should keep its default, got %q", cfg.Columns.JobTitle)
	}
	if cfg.Display.Currency != "$" {
		t.Errorf("Display.Currency = %q, want $", cfg.Display.Currency)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Dataset.Table != "jobs" {
		t.Errorf("Dataset.Table = %q, want default jobs", cfg.Dataset.Table)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "dataset:\n  path: from-file.csv\n")
	t.Setenv(EnvDataset, "from-env.csv")
	t.Setenv(EnvCurrency, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Dataset.Path != "from-env.csv" {
		t.Errorf("Dataset.Path = %q, want from-env.csv", cfg.Dataset.Path)
	}
	if cfg.Display.Currency != "" {
		t.Errorf("Display.Currency = %q, want empty from env", cfg.Display.Currency)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "dataset: [unclosed\n")

	_, err := Load(path)
	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("Load() error = %v, want InvalidConfigError", err)
	}
	if invalid.Path != path {
		t.Errorf("InvalidConfigError.Path = %q, want %q", invalid.Path, path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*AppConfig)
	}{
		{"empty dataset path", func(c *AppConfig) { c.Dataset.Path = " " }},
		{"bad format", func(c *AppConfig) { c.Dataset.Format = "xlsx" }},
		{"bad log level", func(c *AppConfig) { c.LogLevel = "verbose" }},
		{"empty column", func(c *AppConfig) { c.Columns.Company = "" }},
		{"duplicate column", func(c *AppConfig) { c.Columns.Company = c.Columns.JobTitle }},
		{"negative timeout", func(c *AppConfig) { c.Dataset.TimeoutSeconds = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			var invalid *InvalidConfigError
			if err := cfg.Validate(); !errors.As(err, &invalid) {
				t.Errorf("Validate() error = %v, want InvalidConfigError", err)
			}
		})
	}
}

func TestDatasetOptions(t *testing.T) {
	cfg := Default()
	cfg.Dataset.Table = "postings"

	opts := cfg.DatasetOptions()
	if opts.Table != "postings" || opts.Columns != cfg.Columns || len(opts.NullValues) != len(cfg.NullValues) {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestInvalidConfigErrorMessage(t *testing.T) {
	err := &InvalidConfigError{Path: "a.yaml", Message: "bad", Hint: "fix it"}
	want := "invalid config: a.yaml\nbad\n💡 fix it"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
