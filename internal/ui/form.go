package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/encoder"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/predictor"
)

// Prompter collects closed-choice input from the user
type Prompter interface {
	Select(label string, options []string) (string, error)
	Confirm(label string) (bool, error)
}

// Predictor is the part of the prediction service the form needs
type Predictor interface {
	PredictFor(jobTitle, company, experience string) (float64, error)
	Choices() predictor.Choices
}

// PtermPrompter prompts with pterm's interactive printers
type PtermPrompter struct {
	MaxHeight int
}

func (p PtermPrompter) Select(label string, options []string) (string, error) {
	printer := pterm.DefaultInteractiveSelect.WithOptions(options).WithDefaultText(label)
	if p.MaxHeight > 0 {
		printer = printer.WithMaxHeight(p.MaxHeight)
	}
	return printer.Show()
}

func (p PtermPrompter) Confirm(label string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(true).Show(label)
}

// Form asks for a job title, company and experience level and shows the
// predicted salary, repeating until the user stops
type Form struct {
	Predictor Predictor
	Prompter  Prompter
	Out       io.Writer
	Currency  string
	// AverageSalary is used to color predictions
	AverageSalary float64
}

// Run shows the form until the user declines another prediction. Unknown
// categories are shown as errors and the form continues; prompt failures end it.
func (f *Form) Run() error {
	choices := f.Predictor.Choices()

	for {
		job, err := f.Prompter.Select("Select Job Title", choices.JobTitles)
		if err != nil {
			return fmt.Errorf("failed to read job title: %w", err)
		}
		company, err := f.Prompter.Select("Select Company Name", choices.Companies)
		if err != nil {
			return fmt.Errorf("failed to read company name: %w", err)
		}
		experience, err := f.Prompter.Select("Select Experience Level", choices.Experience)
		if err != nil {
			return fmt.Errorf("failed to read experience level: %w", err)
		}

		if err := f.predict(job, company, experience); err != nil {
			return err
		}

		again, err := f.Prompter.Confirm("Predict another salary?")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !again {
			return nil
		}
	}
}

func (f *Form) predict(job, company, experience string) error {
	salary, err := f.Predictor.PredictFor(job, company, experience)

	var unknown *encoder.UnknownCategoryError
	switch {
	case errors.As(err, &unknown):
		fmt.Fprintln(f.Out, pterm.Error.Sprintf("Prediction failed: %v", err))
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(f.Out, pterm.Success.Sprint("Predicted Salary: "+ColorizeSalary(salary, f.AverageSalary, f.Currency)))
	return nil
}
