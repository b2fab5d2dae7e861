// Package dataset provides synthetic data generation, tabular assembly, and
// train/test splitting for regression walkthroughs.
//
// The central type is Dataset, a two-column table pairing one input value
// with one output value per row. Datasets convert to gonum matrices for use
// with the estimators in the linear package:
//
//	d, err := dataset.Generate(dataset.NewConfig())
//	train, test, err := dataset.TrainTestSplit(d, dataset.WithSeed(42))
//	lr := linear.NewLinearRegression()
//	err = lr.Fit(train.FeatureMatrix(), train.TargetVector())
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/linreg/pkg/errors"
)

// Dataset is a two-column table of paired input and output values. X and Y
// always have the same length.
type Dataset struct {
	X []float64
	Y []float64
}

// New builds a Dataset from paired input and output slices. The slices are
// copied so later mutation of the arguments does not affect the Dataset.
func New(x, y []float64) (*Dataset, error) {
	if len(y) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "dataset.New")
	}
	if len(x) != len(y) {
		return nil, errors.Wrapf(errors.ErrLengthMismatch,
			"dataset.New: x has %d rows, y has %d rows", len(x), len(y))
	}

	xCol := make([]float64, len(x))
	yCol := make([]float64, len(y))
	copy(xCol, x)
	copy(yCol, y)

	return &Dataset{X: xCol, Y: yCol}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.X)
}

// Copy returns a deep copy of the Dataset.
func (d *Dataset) Copy() *Dataset {
	xCol := make([]float64, len(d.X))
	yCol := make([]float64, len(d.Y))
	copy(xCol, d.X)
	copy(yCol, d.Y)
	return &Dataset{X: xCol, Y: yCol}
}

// FeatureMatrix returns the inputs as an (n, 1) dense matrix for the
// estimator API.
func (d *Dataset) FeatureMatrix() *mat.Dense {
	n := d.Len()
	m := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		m.Set(i, 0, d.X[i])
	}
	return m
}

// TargetVector returns the outputs as a column vector.
func (d *Dataset) TargetVector() *mat.VecDense {
	col := make([]float64, d.Len())
	copy(col, d.Y)
	return mat.NewVecDense(len(col), col)
}

// Select returns a new Dataset containing the rows at the given indices, in
// order. Indices must be valid rows of d.
func (d *Dataset) Select(indices []int) *Dataset {
	xCol := make([]float64, 0, len(indices))
	yCol := make([]float64, 0, len(indices))
	for _, idx := range indices {
		xCol = append(xCol, d.X[idx])
		yCol = append(yCol, d.Y[idx])
	}
	return &Dataset{X: xCol, Y: yCol}
}

// XRange returns the minimum and maximum input values. Used by plotting to
// anchor the fitted line endpoints.
func (d *Dataset) XRange() (minX, maxX float64) {
	minX, maxX = d.X[0], d.X[0]
	for _, x := range d.X {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	return minX, maxX
}
