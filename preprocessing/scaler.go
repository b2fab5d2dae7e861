// Package preprocessing provides data preprocessing for the regression
// walkthrough.
//
// StandardScaler standardizes features by removing the mean and scaling to
// unit variance. It follows the Fit/Transform/FitTransform pattern: fit the
// scaler on the training partition only, then apply the same transform to
// the test partition so no test statistics leak into training.
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	err := scaler.Fit(XTrain)
//	XTrainScaled, err := scaler.Transform(XTrain)
//	XTestScaled, err := scaler.Transform(XTest)
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/linreg/core/model"
	linregErrors "github.com/ezoic/linreg/pkg/errors"
)

// StandardScaler standardizes features to zero mean and unit variance.
type StandardScaler struct {
	State *model.StateManager

	// Mean holds the per-feature mean computed by Fit.
	Mean []float64

	// Scale holds the per-feature standard deviation computed by Fit.
	// Features with zero variance get a scale of 1 so Transform is a no-op
	// on them.
	Scale []float64

	// NFeatures is the number of features seen during Fit.
	NFeatures int

	// WithMean controls whether Transform subtracts the mean.
	WithMean bool

	// WithStd controls whether Transform divides by the standard deviation.
	WithStd bool
}

// NewStandardScaler creates a StandardScaler.
//
// Parameters:
//   - withMean: subtract the per-feature mean (default behavior: true)
//   - withStd: divide by the per-feature standard deviation (default behavior: true)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		State:    model.NewStateManager(),
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// Fit computes the per-feature mean and standard deviation from X.
func (s *StandardScaler) Fit(X mat.Matrix) (err error) {
	defer linregErrors.Recover(&err, "StandardScaler.Fit")

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return linregErrors.NewModelError("StandardScaler.Fit", "empty data", linregErrors.ErrEmptyData)
	}

	s.NFeatures = c
	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		s.Mean[j] = sum / float64(r)

		var sqSum float64
		for i := 0; i < r; i++ {
			diff := X.At(i, j) - s.Mean[j]
			sqSum += diff * diff
		}
		std := math.Sqrt(sqSum / float64(r))
		if std == 0 {
			std = 1.0
		}
		s.Scale[j] = std
	}

	s.State.SetFitted()
	s.State.SetDimensions(c, r)

	return nil
}

// Transform standardizes X using the statistics computed by Fit.
func (s *StandardScaler) Transform(X mat.Matrix) (_ *mat.Dense, err error) {
	defer linregErrors.Recover(&err, "StandardScaler.Transform")
	if !s.State.IsFitted() {
		return nil, linregErrors.NewNotFittedError("StandardScaler", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, linregErrors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := X.At(i, j)
			if s.WithMean {
				v -= s.Mean[j]
			}
			if s.WithStd {
				v /= s.Scale[j]
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FitTransform fits the scaler on X and returns the transformed X.
func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform maps standardized data back to the original scale.
func (s *StandardScaler) InverseTransform(X mat.Matrix) (_ *mat.Dense, err error) {
	defer linregErrors.Recover(&err, "StandardScaler.InverseTransform")
	if !s.State.IsFitted() {
		return nil, linregErrors.NewNotFittedError("StandardScaler", "InverseTransform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, linregErrors.NewDimensionError("StandardScaler.InverseTransform", s.NFeatures, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := X.At(i, j)
			if s.WithStd {
				v *= s.Scale[j]
			}
			if s.WithMean {
				v += s.Mean[j]
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// IsFitted returns whether the scaler has been fitted.
func (s *StandardScaler) IsFitted() bool {
	return s.State.IsFitted()
}
