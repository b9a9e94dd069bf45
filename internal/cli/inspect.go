package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/ui"
)

// NewInspectCmd creates the 'inspect' command for showing dataset and model details.
func NewInspectCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show dataset statistics and the fitted model",
		Long: `Load the dataset, fit the model and print how many rows were kept or dropped,
the number of distinct categories, the coefficients and R² on the training rows.`,
		Example: `  salarypredictor inspect
  salarypredictor inspect --dataset jobs.db --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			summary := a.service.Summary()
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			return ui.PrintSummary(cmd.OutOrStdout(), summary, a.cfg.Display.Currency)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}
