package cli

import (
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/ui"
)

// NewFormCmd creates the 'form' command for interactive predictions.
func NewFormCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Pick job title, company and experience to predict a salary",
		Long: `Open an interactive form with one list per field. The lists contain the
values seen in the dataset, in sorted order.`,
		Example: `  salarypredictor form
  salarypredictor form --dataset data/Job.csv --currency "$"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, opts)
		},
	}
}

func runForm(cmd *cobra.Command, opts *globalOptions) error {
	a, err := loadApp(cmd, opts)
	if err != nil {
		return err
	}

	form := &ui.Form{
		Predictor:     a.service,
		Prompter:      ui.PtermPrompter{MaxHeight: 10},
		Out:           cmd.OutOrStdout(),
		Currency:      a.cfg.Display.Currency,
		AverageSalary: a.service.Summary().MeanSalary,
	}
	return form.Run()
}
