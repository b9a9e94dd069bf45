// Package predictor ties the fitted encoders and regression model together
// into a read-only prediction service.
package predictor

import (
	"fmt"
	"math"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/dataset"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/encoder"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/models"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/regression"
)

// Choices holds the sorted category values a user can pick from
type Choices struct {
	JobTitles  []string `json:"job_titles"`
	Companies  []string `json:"companies"`
	Experience []string `json:"experience"`
}

// Summary describes a trained service
type Summary struct {
	Stats      models.LoadStats `json:"stats"`
	Model      regression.Model `json:"model"`
	R2         float64          `json:"r2"`
	Distinct   map[string]int   `json:"distinct"`
	MinSalary  float64          `json:"min_salary"`
	MaxSalary  float64          `json:"max_salary"`
	MeanSalary float64          `json:"mean_salary"`
}

// Service predicts salaries from fitted encoders and a fitted model.
// It holds no mutable state and is safe to share once built.
type Service struct {
	jobTitles  *encoder.Table
	companies  *encoder.Table
	experience *encoder.Table
	model      *regression.Model
	summary    Summary
}

// Train fits the regression model on a loaded dataset and returns the service
func Train(ds *dataset.Dataset) (*Service, error) {
	model, err := regression.Fit(ds.Features, ds.Targets)
	if err != nil {
		return nil, fmt.Errorf("failed to fit salary model: %w", err)
	}

	minSalary, maxSalary, sum := math.Inf(1), math.Inf(-1), 0.0
	for _, v := range ds.Targets {
		minSalary = math.Min(minSalary, v)
		maxSalary = math.Max(maxSalary, v)
		sum += v
	}

	return &Service{
		jobTitles:  ds.JobTitles,
		companies:  ds.Companies,
		experience: ds.Experience,
		model:      model,
		summary: Summary{
			Stats: ds.Stats,
			Model: *model,
			R2:    model.R2(ds.Features, ds.Targets),
			Distinct: map[string]int{
				encoder.FieldJobTitle:   ds.JobTitles.Len(),
				encoder.FieldCompany:    ds.Companies.Len(),
				encoder.FieldExperience: ds.Experience.Len(),
			},
			MinSalary:  minSalary,
			MaxSalary:  maxSalary,
			MeanSalary: sum / float64(len(ds.Targets)),
		},
	}, nil
}

// PredictFor returns the predicted salary for a job title, company and experience
// level. Values unknown to the fitted encoders return an *encoder.UnknownCategoryError.
func (s *Service) PredictFor(jobTitle, company, experience string) (float64, error) {
	jobCode, err := s.jobTitles.Encode(jobTitle)
	if err != nil {
		return 0, err
	}
	companyCode, err := s.companies.Encode(company)
	if err != nil {
		return 0, err
	}
	expCode, err := s.experience.Encode(experience)
	if err != nil {
		return 0, err
	}

	return s.model.Predict([regression.NumFeatures]int{jobCode, companyCode, expCode}), nil
}

// Choices returns the sorted values of each categorical field
func (s *Service) Choices() Choices {
	return Choices{
		JobTitles:  s.jobTitles.Values(),
		Companies:  s.companies.Values(),
		Experience: s.experience.Values(),
	}
}

// ChoicesFor returns the sorted values of a single field
func (s *Service) ChoicesFor(field string) ([]string, error) {
	switch field {
	case encoder.FieldJobTitle:
		return s.jobTitles.Values(), nil
	case encoder.FieldCompany:
		return s.companies.Values(), nil
	case encoder.FieldExperience:
		return s.experience.Values(), nil
	default:
		return nil, fmt.Errorf("unknown field %q (must be one of: %s, %s, %s)",
			field, encoder.FieldJobTitle, encoder.FieldCompany, encoder.FieldExperience)
	}
}

// Summary returns load statistics and the fitted coefficients
func (s *Service) Summary() Summary {
	summary := s.summary
	summary.Distinct = make(map[string]int, len(s.summary.Distinct))
	for k, v := range s.summary.Distinct {
		summary.Distinct[k] = v
	}
	return summary
}
