package cli

import (
	"github.com/spf13/cobra"
)

// globalOptions holds the flags shared by every command
type globalOptions struct {
	configPath    string
	datasetPath   string
	datasetFormat string
	proxyURL      string
	currency      string
	debug         bool
	silence       bool
	noProgress    bool
}

// NewRootCmd creates the root command. Without a subcommand it opens the
// interactive prediction form.
func NewRootCmd(version string) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "salarypredictor",
		Short: "Predict job salaries from a dataset of job postings",
		Long: `salarypredictor loads a dataset of job postings, cleans the salary column,
encodes job title, company and experience level, and fits a linear regression
model. Pick a job title, company and experience level to get a predicted salary.

Datasets can be CSV files, HTML tables, SQLite databases or http(s) URLs.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default ./salarypredictor.yaml)")
	flags.StringVarP(&opts.datasetPath, "dataset", "d", "", "Dataset file or URL (overrides config)")
	flags.StringVar(&opts.datasetFormat, "format", "", "Dataset format: auto, csv, html, sqlite")
	flags.StringVar(&opts.proxyURL, "proxy", "", "Proxy URL for remote datasets")
	flags.StringVar(&opts.currency, "currency", "", "Currency symbol shown with salaries")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.silence, "silence", false, "Silence the banner")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "Hide the loading progress bar")

	cmd.AddCommand(NewFormCmd(opts))
	cmd.AddCommand(NewPredictCmd(opts))
	cmd.AddCommand(NewCategoriesCmd(opts))
	cmd.AddCommand(NewInspectCmd(opts))
	cmd.AddCommand(NewExamplesCmd())

	return cmd
}
