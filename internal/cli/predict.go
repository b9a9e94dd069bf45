package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/encoder"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/utils"
)

// predictionResult is the JSON output of the predict command
type predictionResult struct {
	JobTitle   string  `json:"job_title"`
	Company    string  `json:"company"`
	Experience string  `json:"experience"`
	Salary     float64 `json:"salary"`
	Formatted  string  `json:"formatted"`
}

// NewPredictCmd creates the 'predict' command for one-shot predictions.
func NewPredictCmd(opts *globalOptions) *cobra.Command {
	var jobTitle, company, experience string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the salary for one job title, company and experience level",
		Example: `  salarypredictor predict --job "Data Analyst" --company "Infosys" --experience "0-2 yrs"
  salarypredictor predict -j Dev -C Acme -e Junior --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd, opts, jobTitle, company, experience, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&jobTitle, "job", "j", "", "Job title")
	cmd.Flags().StringVarP(&company, "company", "C", "", "Company name")
	cmd.Flags().StringVarP(&experience, "experience", "e", "", "Experience level")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.MarkFlagRequired("job")
	cmd.MarkFlagRequired("company")
	cmd.MarkFlagRequired("experience")

	return cmd
}

func runPredict(cmd *cobra.Command, opts *globalOptions, jobTitle, company, experience string, jsonOutput bool) error {
	a, err := loadApp(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	salary, err := a.service.PredictFor(jobTitle, company, experience)
	if err != nil {
		var unknown *encoder.UnknownCategoryError
		if errors.As(err, &unknown) {
			return fmt.Errorf("prediction failed: %w\n💡 Run 'salarypredictor categories --field %s' to list valid values", err, unknown.Field)
		}
		return err
	}

	formatted := utils.FormatSalary(salary, a.cfg.Display.Currency)
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(predictionResult{
			JobTitle:   jobTitle,
			Company:    company,
			Experience: experience,
			Salary:     salary,
			Formatted:  formatted,
		})
	}

	fmt.Fprintln(out, pterm.Success.Sprint("Predicted Salary: "+formatted))
	return nil
}
