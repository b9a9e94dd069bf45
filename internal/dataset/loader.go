package dataset

import (
	"errors"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/encoder"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/models"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/utils"
)

// ErrEmptyTrainingSet is returned when no row survives filtering
var ErrEmptyTrainingSet = errors.New("no usable rows left after filtering the dataset")

// Dataset is an encoded training set with the tables used to encode it.
// Features and Targets are aligned by row.
type Dataset struct {
	Features   [][3]int
	Targets    []float64
	JobTitles  *encoder.Table
	Companies  *encoder.Table
	Experience *encoder.Table
	Stats      models.LoadStats
}

// LoadOptions controls reporting while a dataset is loaded
type LoadOptions struct {
	// OnRow is called once per input record, e.g. to advance a progress bar
	OnRow func()
	// Logger receives a debug entry for every dropped row
	Logger *pterm.Logger
}

// Load filters incomplete rows and rows with an unparseable salary, fits one
// encoder per categorical field over the surviving rows and encodes them.
func Load(records []models.JobRecord, opts LoadOptions) (*Dataset, error) {
	stats := models.LoadStats{RowsRead: len(records)}
	kept := make([]models.CleanedRecord, 0, len(records))

	for _, r := range records {
		if opts.OnRow != nil {
			opts.OnRow()
		}

		if !r.Complete() {
			stats.DroppedMissing++
			if opts.Logger != nil {
				opts.Logger.Debug("dropping row with missing fields", opts.Logger.Args("line", r.Line))
			}
			continue
		}

		salary, err := utils.ParseSalary(r.Salary)
		if err != nil {
			stats.DroppedUnparsable++
			if opts.Logger != nil {
				opts.Logger.Debug("dropping row with unparseable salary", opts.Logger.Args("line", r.Line, "salary", r.Salary))
			}
			continue
		}

		kept = append(kept, models.CleanedRecord{JobRecord: r, SalaryValue: salary})
	}

	stats.Kept = len(kept)
	if len(kept) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	titles := make([]string, len(kept))
	companies := make([]string, len(kept))
	experience := make([]string, len(kept))
	for i, c := range kept {
		titles[i] = c.Title
		companies[i] = c.Company
		experience[i] = c.Experience
	}

	ds := &Dataset{
		Features:   make([][3]int, len(kept)),
		Targets:    make([]float64, len(kept)),
		JobTitles:  encoder.Fit(encoder.FieldJobTitle, titles),
		Companies:  encoder.Fit(encoder.FieldCompany, companies),
		Experience: encoder.Fit(encoder.FieldExperience, experience),
		Stats:      stats,
	}

	for i := range kept {
		c := &kept[i]
		var err error
		if c.TitleCode, err = ds.JobTitles.Encode(c.Title); err != nil {
			return nil, err
		}
		if c.CompanyCode, err = ds.Companies.Encode(c.Company); err != nil {
			return nil, err
		}
		if c.ExperienceCode, err = ds.Experience.Encode(c.Experience); err != nil {
			return nil, err
		}
		ds.Features[i] = c.Features()
		ds.Targets[i] = c.SalaryValue
	}

	return ds, nil
}
