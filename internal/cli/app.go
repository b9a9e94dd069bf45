package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/client"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/config"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/dataset"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/predictor"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/ui"
)

// app is the trained state shared by a command run
type app struct {
	cfg     *config.AppConfig
	service *predictor.Service
	logger  *pterm.Logger
}

// resolveConfig loads the config file and applies command line overrides
func resolveConfig(cmd *cobra.Command, opts *globalOptions) (*config.AppConfig, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.datasetPath != "" {
		cfg.Dataset.Path = opts.datasetPath
	}
	if opts.datasetFormat != "" {
		cfg.Dataset.Format = opts.datasetFormat
	}
	if opts.proxyURL != "" {
		cfg.Dataset.Proxy = opts.proxyURL
	}
	if cmd.Flags().Changed("currency") {
		cfg.Display.Currency = opts.currency
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}
	if opts.silence {
		cfg.Display.ShowBanner = false
	}
	if opts.noProgress {
		cfg.Display.ShowProgress = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadApp reads the dataset, fits the encoders and the model once, and returns
// the immutable service every command works with
func loadApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	stderr := cmd.ErrOrStderr()
	logger := ui.NewLogger(stderr, cfg.LogLevel)
	ui.PrintBanner(stderr, !cfg.Display.ShowBanner)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	httpClient, err := client.CreateHTTPClient(cfg.Dataset.Proxy, time.Duration(cfg.Dataset.TimeoutSeconds)*time.Second)
	if err != nil {
		return nil, err
	}

	logger.Debug("reading dataset", logger.Args("path", cfg.Dataset.Path, "format", cfg.Dataset.Format))
	records, err := dataset.Open(ctx, cfg.Dataset.Path, cfg.Dataset.Format, cfg.DatasetOptions(), httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", cfg.Dataset.Path, err)
	}

	loadOpts := dataset.LoadOptions{Logger: logger}
	var bar *pb.ProgressBar
	if cfg.Display.ShowProgress {
		bar = newProgressBar(stderr, len(records))
		loadOpts.OnRow = func() { bar.Increment() }
	}

	ds, err := dataset.Load(records, loadOpts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", cfg.Dataset.Path, err)
	}

	logger.Info("dataset loaded", logger.Args(
		"rows", ds.Stats.RowsRead,
		"kept", ds.Stats.Kept,
		"dropped_missing", ds.Stats.DroppedMissing,
		"dropped_unparseable", ds.Stats.DroppedUnparsable,
	))

	service, err := predictor.Train(ds)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, service: service, logger: logger}, nil
}

func newProgressBar(w io.Writer, total int) *pb.ProgressBar {
	bar := pb.New(total)
	bar.SetTemplate(pb.Default)
	bar.SetWriter(w)
	bar.Set("prefix", "Loading rows")
	return bar.Start()
}
