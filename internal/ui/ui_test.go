package ui

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/encoder"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/models"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/predictor"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/regression"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// scriptedPrompter answers prompts from a fixed script
type scriptedPrompter struct {
	selections []string
	confirms   []bool
	labels     []string
	options    [][]string
	failAt     int
}

func (p *scriptedPrompter) Select(label string, options []string) (string, error) {
	p.labels = append(p.labels, label)
	p.options = append(p.options, options)
	if p.failAt > 0 && len(p.labels) == p.failAt {
		return "", errors.New("interrupted")
	}
	if len(p.selections) == 0 {
		return "", errors.New("script exhausted")
	}
	v := p.selections[0]
	p.selections = p.selections[1:]
	return v, nil
}

func (p *scriptedPrompter) Confirm(label string) (bool, error) {
	if len(p.confirms) == 0 {
		return false, nil
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

// fakePredictor knows a single job title, company and experience level
type fakePredictor struct {
	err error
}

func (f *fakePredictor) PredictFor(job, company, experience string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if job != "Dev" {
		return 0, &encoder.UnknownCategoryError{Field: encoder.FieldJobTitle, Value: job}
	}
	return 123456.789, nil
}

func (f *fakePredictor) Choices() predictor.Choices {
	return predictor.Choices{
		JobTitles:  []string{"Dev", "QA"},
		Companies:  []string{"Acme"},
		Experience: []string{"Junior", "Senior"},
	}
}

func TestFormPredicts(t *testing.T) {
	var out bytes.Buffer
	prompter := &scriptedPrompter{selections: []string{"Dev", "Acme", "Junior"}}
	form := &Form{Predictor: &fakePredictor{}, Prompter: prompter, Out: &out, Currency: "₹", AverageSalary: 100000}

	if err := form.Run(); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if !strings.Contains(out.String(), "Predicted Salary: ₹ 123,456.79") {
		t.Errorf("unexpected output: %q", out.String())
	}

	wantLabels := []string{"Select Job Title", "Select Company Name", "Select Experience Level"}
	for i, label := range wantLabels {
		if prompter.labels[i] != label {
			t.Errorf("prompt %d label = %q, want %q", i, prompter.labels[i], label)
		}
	}
	if len(prompter.options[2]) != 2 || prompter.options[2][0] != "Junior" {
		t.Errorf("experience options = %v", prompter.options[2])
	}
}

func TestFormShowsUnknownCategoryAndContinues(t *testing.T) {
	var out bytes.Buffer
	prompter := &scriptedPrompter{
		selections: []string{"QA", "Acme", "Junior", "Dev", "Acme", "Senior"},
		confirms:   []bool{true, false},
	}
	form := &Form{Predictor: &fakePredictor{}, Prompter: prompter, Out: &out, Currency: "$"}

	if err := form.Run(); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, `Prediction failed: unknown job_title "QA"`) {
		t.Errorf("missing error message in output: %q", output)
	}
	if !strings.Contains(output, "Predicted Salary: $ 123,456.79") {
		t.Errorf("missing prediction in output: %q", output)
	}
}

func TestFormReturnsOtherErrors(t *testing.T) {
	boom := errors.New("model unavailable")
	form := &Form{
		Predictor: &fakePredictor{err: boom},
		Prompter:  &scriptedPrompter{selections: []string{"Dev", "Acme", "Junior"}},
		Out:       &bytes.Buffer{},
	}

	if err := form.Run(); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
}

func TestFormPromptFailure(t *testing.T) {
	form := &Form{
		Predictor: &fakePredictor{},
		Prompter:  &scriptedPrompter{selections: []string{"Dev", "Acme", "Junior"}, failAt: 2},
		Out:       &bytes.Buffer{},
	}

	if err := form.Run(); err == nil || !strings.Contains(err.Error(), "company") {
		t.Errorf("Run() error = %v, want company prompt failure", err)
	}
}

func TestColorizeSalary(t *testing.T) {
	tests := []struct {
		value, average float64
		want           string
	}{
		{50000, 100000, "₹ 50,000.00"},
		{-10, 100000, "₹ -10.00"},
		{75000, 0, "₹ 75,000.00"},
	}
	for _, tt := range tests {
		if got := ColorizeSalary(tt.value, tt.average, "₹"); got != tt.want {
			t.Errorf("ColorizeSalary(%v, %v) = %q, want %q", tt.value, tt.average, got, tt.want)
		}
	}
}

func TestPrintChoices(t *testing.T) {
	var out bytes.Buffer
	if err := PrintChoices(&out, encoder.FieldCompany, []string{"Acme", "Beta"}); err != nil {
		t.Fatalf("PrintChoices() returned error: %v", err)
	}
	for _, want := range []string{"Code", "company", "Acme", "Beta"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q: %q", want, out.String())
		}
	}
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	summary := predictor.Summary{
		Stats:      models.LoadStats{RowsRead: 10, DroppedMissing: 2, DroppedUnparsable: 1, Kept: 7},
		Model:      regression.Model{Intercept: 20000, Coefficients: [3]float64{1500, 700, 9000}, Rank: 3},
		R2:         0.8123,
		Distinct:   map[string]int{encoder.FieldJobTitle: 3},
		MinSalary:  10000,
		MaxSalary:  90000,
		MeanSalary: 45000,
	}

	if err := PrintSummary(&out, summary, "₹"); err != nil {
		t.Fatalf("PrintSummary() returned error: %v", err)
	}
	for _, want := range []string{"Rows read", "10", "20,000.00", "9,000.00", "0.8123", "₹ 10,000.00 - ₹ 90,000.00"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPrintBanner(t *testing.T) {
	var out bytes.Buffer
	PrintBanner(&out, true)
	if out.Len() != 0 {
		t.Error("silenced banner should print nothing")
	}

	PrintBanner(&out, false)
	if !strings.Contains(out.String(), "@fr4nk3nst1ner") {
		t.Errorf("banner missing signature: %q", out.String())
	}
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(&out, "warn")

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(out.String(), "hidden") || !strings.Contains(out.String(), "shown") {
		t.Errorf("unexpected log output: %q", out.String())
	}
}
