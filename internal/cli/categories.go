package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/encoder"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/ui"
)

// NewCategoriesCmd creates the 'categories' command for listing valid input values.
func NewCategoriesCmd(opts *globalOptions) *cobra.Command {
	var field string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"ls"},
		Short:   "List the job titles, companies and experience levels in the dataset",
		Example: `  salarypredictor categories
  salarypredictor categories --field company
  salarypredictor ls --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(cmd, opts, field, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&field, "field", "f", "", "Only list one field: job_title, company, experience")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runCategories(cmd *cobra.Command, opts *globalOptions, field string, jsonOutput bool) error {
	a, err := loadApp(cmd, opts)
	if err != nil {
		return err
	}

	fields := []string{encoder.FieldJobTitle, encoder.FieldCompany, encoder.FieldExperience}
	if field != "" {
		fields = []string{field}
	}

	listed := make(map[string][]string, len(fields))
	for _, f := range fields {
		values, err := a.service.ChoicesFor(f)
		if err != nil {
			return err
		}
		listed[f] = values
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(listed)
	}

	for _, f := range fields {
		if err := ui.PrintChoices(out, f, listed[f]); err != nil {
			return err
		}
	}
	return nil
}
