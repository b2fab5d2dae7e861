// Package linear provides the ordinary least squares estimator used by the
// regression walkthrough.
//
// The package exposes a single model:
//
//   - LinearRegression: ordinary least squares with an optional intercept,
//     solved through the normal equations on gonum/mat
//
// The estimator follows the standard Fit/Predict/Score interface:
//
//	lr := linear.NewLinearRegression()
//	err := lr.Fit(X, y) // X: features, y: target values
//	if err != nil {
//		log.Fatal(err)
//	}
//	predictions, err := lr.Predict(XTest)
//	r2, err := lr.Score(XTest, yTest)
//
// Fitted models can be exported to and restored from a JSON document:
//
//	err = lr.ExportJSON("model.json")
//	err = lr.ImportJSON("model.json")
package linear

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/linreg/core/model"
	"github.com/ezoic/linreg/core/parallel"
	"github.com/ezoic/linreg/metrics"
	linregErrors "github.com/ezoic/linreg/pkg/errors"
	"github.com/ezoic/linreg/pkg/log"
)

// Rows above this count get parallel design-matrix assembly and prediction.
const parallelThreshold = 1000

// LinearRegression is an ordinary least squares regression model.
type LinearRegression struct {
	State     *model.StateManager // State manager (composition instead of embedding)
	Weights   *mat.VecDense       // Model weights (coefficients)
	Intercept float64             // Model intercept
	NFeatures int                 // Number of features

	fitIntercept bool
	logger       log.Logger
}

// NewLinearRegression creates a new untrained ordinary least squares model.
// The model must be trained with Fit before making predictions.
//
// Example:
//
//	lr := linear.NewLinearRegression()
//	err := lr.Fit(X, y)
//	predictions, err := lr.Predict(XTest)
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		State:        model.NewStateManager(),
		fitIntercept: true,
	}

	for _, opt := range opts {
		opt(lr)
	}

	if lr.logger == nil {
		lr.logger = log.GetLoggerWithName("linear").With(
			log.ModelNameKey, "LinearRegression",
		)
	}

	return lr
}

// Fit trains the model on the provided data by solving the normal equations
// (X^T X) w = X^T y. After successful training the model is marked fitted.
//
// Parameters:
//   - X: feature matrix of shape (n_samples, n_features)
//   - y: target column of shape (n_samples, 1)
//
// Errors:
//   - ErrEmptyData: if X or y are empty
//   - DimensionError: if the number of samples in X and y differ
//   - ErrSingularMatrix: if X^T X cannot be inverted
func (lr *LinearRegression) Fit(X, y mat.Matrix) (err error) {
	defer linregErrors.Recover(&err, "LinearRegression.Fit")

	startTime := time.Now()
	r, c := X.Dims()
	ry, cy := y.Dims()

	lr.logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, r,
		log.FeaturesKey, c,
	)

	if r == 0 || c == 0 {
		return linregErrors.NewModelError("LinearRegression.Fit", "empty data", linregErrors.ErrEmptyData)
	}

	if ry != r {
		return linregErrors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}

	if cy != 1 {
		return linregErrors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	lr.NFeatures = c

	design := lr.buildDesignMatrix(X, r, c)

	// Normal equations: w = (X^T X)^(-1) X^T y
	var designT mat.Dense
	designT.CloneFrom(design.T())

	var gram mat.Dense
	gram.Mul(&designT, design)

	var gramInv mat.Dense
	if invErr := gramInv.Inverse(&gram); invErr != nil {
		return linregErrors.NewModelError("LinearRegression.Fit", "singular matrix", linregErrors.ErrSingularMatrix)
	}

	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var xty mat.VecDense
	xty.MulVec(&designT, yVec)

	_, dc := design.Dims()
	solution := mat.NewVecDense(dc, nil)
	solution.MulVec(&gramInv, &xty)

	if lr.fitIntercept {
		lr.Intercept = solution.AtVec(0)
		lr.Weights = mat.NewVecDense(c, nil)
		for i := 0; i < c; i++ {
			lr.Weights.SetVec(i, solution.AtVec(i+1))
		}
	} else {
		lr.Intercept = 0
		lr.Weights = mat.VecDenseCopyOf(solution)
	}

	lr.State.SetFitted()
	lr.State.SetDimensions(lr.NFeatures, r)

	lr.logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.DurationMsKey, time.Since(startTime).Milliseconds(),
		log.SamplesKey, r,
		log.FeaturesKey, c,
	)

	return nil
}

// buildDesignMatrix prepends the intercept column when fitIntercept is set,
// otherwise copies X as-is.
func (lr *LinearRegression) buildDesignMatrix(X mat.Matrix, r, c int) *mat.Dense {
	if !lr.fitIntercept {
		design := mat.NewDense(r, c, nil)
		design.Copy(X)
		return design
	}

	design := mat.NewDense(r, c+1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			design.Set(i, 0, 1.0) // Intercept term
			for j := 0; j < c; j++ {
				design.Set(i, j+1, X.At(i, j))
			}
		}
	})
	return design
}

// Predict computes y = X*w + intercept for each row of X. The model must be
// fitted first.
//
// Errors:
//   - NotFittedError: if the model has not been trained yet
//   - DimensionError: if X has a different feature count than the training data
func (lr *LinearRegression) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer linregErrors.Recover(&err, "LinearRegression.Predict")
	if !lr.State.IsFitted() {
		return nil, linregErrors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, linregErrors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	lr.logger.Debug("Prediction started",
		log.OperationKey, log.OperationPredict,
		log.PhaseKey, log.PhaseInference,
		log.SamplesKey, r,
		log.FeaturesKey, c,
	)

	predictions := mat.NewDense(r, 1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := lr.Intercept
			for j := 0; j < c; j++ {
				pred += X.At(i, j) * lr.Weights.AtVec(j)
			}
			predictions.Set(i, 0, pred)
		}
	})

	lr.logger.Debug("Prediction completed",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, r,
	)

	return predictions, nil
}

// Score returns the coefficient of determination R² of the prediction on
// (X, y). R² is at most 1; it turns negative when the fit is worse than
// predicting the mean of y.
func (lr *LinearRegression) Score(X, y mat.Matrix) (_ float64, err error) {
	defer linregErrors.Recover(&err, "LinearRegression.Score")
	if !lr.State.IsFitted() {
		return 0, linregErrors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()
	yTrueVec := mat.NewVecDense(r, nil)
	yPredVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yTrueVec.SetVec(i, y.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	r2, err := metrics.R2Score(yTrueVec, yPredVec)
	if err != nil {
		return 0, err
	}

	lr.logger.Debug("Scoring completed",
		log.OperationKey, log.OperationScore,
		log.SamplesKey, r,
		log.R2ScoreKey, r2,
	)

	return r2, nil
}

// GetWeights returns a copy of the learned coefficients.
func (lr *LinearRegression) GetWeights() []float64 {
	if lr.Weights == nil {
		return nil
	}

	weights := make([]float64, lr.Weights.Len())
	for i := 0; i < lr.Weights.Len(); i++ {
		weights[i] = lr.Weights.AtVec(i)
	}
	return weights
}

// GetIntercept returns the learned intercept, or 0 for an unfitted model.
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.State.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// IsFitted returns whether the model has been fitted.
func (lr *LinearRegression) IsFitted() bool {
	return lr.State.IsFitted()
}

// GetParams returns the model's hyperparameters.
func (lr *LinearRegression) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"fit_intercept": lr.fitIntercept,
		"n_features":    lr.NFeatures,
		"fitted":        lr.State.IsFitted(),
	}
}
