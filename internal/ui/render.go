package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/encoder"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/predictor"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/utils"
)

// PrintChoices prints the sorted categories of one field as a numbered table
func PrintChoices(w io.Writer, field string, values []string) error {
	data := pterm.TableData{{"Code", field}}
	for i, v := range values {
		data = append(data, []string{strconv.Itoa(i), utils.TruncateString(v, 60)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	return nil
}

// PrintSummary prints dataset statistics and the fitted model
func PrintSummary(w io.Writer, summary predictor.Summary, currency string) error {
	stats := summary.Stats
	fmt.Fprintln(w, pterm.DefaultSection.Sprint("Dataset"))
	statsTable, err := pterm.DefaultTable.WithData(pterm.TableData{
		{"Rows read", strconv.Itoa(stats.RowsRead)},
		{"Dropped (missing fields)", strconv.Itoa(stats.DroppedMissing)},
		{"Dropped (unparseable salary)", strconv.Itoa(stats.DroppedUnparsable)},
		{"Rows used for training", strconv.Itoa(stats.Kept)},
		{"Job titles", strconv.Itoa(summary.Distinct[encoder.FieldJobTitle])},
		{"Companies", strconv.Itoa(summary.Distinct[encoder.FieldCompany])},
		{"Experience levels", strconv.Itoa(summary.Distinct[encoder.FieldExperience])},
		{"Salary range", utils.FormatSalary(summary.MinSalary, currency) + " - " + utils.FormatSalary(summary.MaxSalary, currency)},
		{"Average salary", utils.FormatSalary(summary.MeanSalary, currency)},
	}).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, statsTable)

	model := summary.Model
	fmt.Fprintln(w, pterm.DefaultSection.Sprint("Model"))
	modelTable, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Term", "Value"},
		{"Intercept", formatCoefficient(model.Intercept)},
		{"Job title code", formatCoefficient(model.Coefficients[0])},
		{"Company code", formatCoefficient(model.Coefficients[1])},
		{"Experience code", formatCoefficient(model.Coefficients[2])},
		{"Rank", strconv.Itoa(model.Rank)},
		{"R²", strconv.FormatFloat(summary.R2, 'f', 4, 64)},
	}).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, modelTable)
	return nil
}

func formatCoefficient(v float64) string {
	return utils.FormatSalary(v, "")
}
