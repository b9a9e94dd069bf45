// Package regression fits an ordinary least squares model over the three
// encoded job features.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NumFeatures is the number of encoded predictors: job title, company, experience
const NumFeatures = 3

// rcond is the relative singular value cutoff used to determine the effective rank
const rcond = 1e-10

var (
	ErrNoSamples      = errors.New("regression: no samples to fit")
	ErrLengthMismatch = errors.New("regression: features and targets have different lengths")
)

// Model is a fitted linear function
//
//	salary ≈ Intercept + Coefficients[0]*job + Coefficients[1]*company + Coefficients[2]*experience
type Model struct {
	Intercept    float64              `json:"intercept"`
	Coefficients [NumFeatures]float64 `json:"coefficients"`
	Samples      int                  `json:"samples"`
	Rank         int                  `json:"rank"`
}

// Fit computes the least squares coefficients with an intercept term and no
// regularization. Rank deficient designs, such as a column with a single
// category, resolve to the minimum norm solution.
func Fit(features [][NumFeatures]int, targets []float64) (*Model, error) {
	n := len(features)
	if n == 0 {
		return nil, ErrNoSamples
	}
	if n != len(targets) {
		return nil, fmt.Errorf("%w: %d features, %d targets", ErrLengthMismatch, n, len(targets))
	}

	var xMean [NumFeatures]float64
	var yMean float64
	for i, row := range features {
		if math.IsNaN(targets[i]) || math.IsInf(targets[i], 0) {
			return nil, fmt.Errorf("regression: non-finite target at row %d", i)
		}
		for j, v := range row {
			xMean[j] += float64(v)
		}
		yMean += targets[i]
	}
	for j := range xMean {
		xMean[j] /= float64(n)
	}
	yMean /= float64(n)

	// Centering removes the intercept column from the solve
	x := mat.NewDense(n, NumFeatures, nil)
	y := mat.NewVecDense(n, nil)
	for i, row := range features {
		for j, v := range row {
			x.Set(i, j, float64(v)-xMean[j])
		}
		y.SetVec(i, targets[i]-yMean)
	}

	model := &Model{Samples: n}

	var svd mat.SVD
	if !svd.Factorize(x, mat.SVDThin) {
		return nil, errors.New("regression: SVD factorization failed")
	}

	rank := svd.Rank(rcond)
	model.Rank = rank
	if rank > 0 {
		var w mat.VecDense
		svd.SolveVecTo(&w, y, rank)
		for j := 0; j < NumFeatures; j++ {
			model.Coefficients[j] = w.AtVec(j)
		}
	}

	model.Intercept = yMean
	for j := 0; j < NumFeatures; j++ {
		model.Intercept -= model.Coefficients[j] * xMean[j]
	}

	return model, nil
}

// Predict maps an encoded feature triple to a salary
func (m *Model) Predict(features [NumFeatures]int) float64 {
	pred := m.Intercept
	for j, v := range features {
		pred += m.Coefficients[j] * float64(v)
	}
	return pred
}

// R2 returns the coefficient of determination of the model over the given samples.
// A constant target returns 1 when it is predicted exactly and 0 otherwise.
func (m *Model) R2(features [][NumFeatures]int, targets []float64) float64 {
	if len(targets) == 0 {
		return 0
	}

	var mean float64
	for _, v := range targets {
		mean += v
	}
	mean /= float64(len(targets))

	var ssRes, ssTot float64
	for i, row := range features {
		r := targets[i] - m.Predict(row)
		ssRes += r * r
		d := targets[i] - mean
		ssTot += d * d
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}
