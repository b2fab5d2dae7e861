package linear

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/linreg/core/model"
	linregErrors "github.com/ezoic/linreg/pkg/errors"
)

const formatVersion = "1.0"

// ExportJSON writes the fitted model parameters to a JSON file.
func (lr *LinearRegression) ExportJSON(filename string) (err error) {
	defer linregErrors.Recover(&err, "LinearRegression.ExportJSON")
	if !lr.State.IsFitted() {
		return linregErrors.NewNotFittedError("LinearRegression", "ExportJSON")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return lr.ExportJSONWriter(file)
}

// ExportJSONWriter writes the fitted model parameters as a JSON document.
// The payload layout matches the scikit-learn export format so models can
// round-trip with Python tooling.
func (lr *LinearRegression) ExportJSONWriter(w io.Writer) (err error) {
	defer linregErrors.Recover(&err, "LinearRegression.ExportJSONWriter")
	if !lr.State.IsFitted() {
		return linregErrors.NewNotFittedError("LinearRegression", "ExportJSONWriter")
	}

	params := model.LinearRegressionParams{
		Coefficients: lr.GetWeights(),
		Intercept:    lr.Intercept,
		NFeatures:    lr.NFeatures,
	}

	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	doc := &model.Document{
		ModelSpec: model.ModelSpec{
			Name:          "LinearRegression",
			FormatVersion: formatVersion,
		},
		Params: payload,
	}

	return model.WriteDocument(w, doc)
}

// ImportJSON restores model parameters from a JSON file written by
// ExportJSON or by compatible Python tooling.
func (lr *LinearRegression) ImportJSON(filename string) (err error) {
	defer linregErrors.Recover(&err, "LinearRegression.ImportJSON")
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return lr.ImportJSONReader(file)
}

// ImportJSONReader restores model parameters from a JSON document. The
// restored model is marked fitted and ready for prediction.
func (lr *LinearRegression) ImportJSONReader(r io.Reader) (err error) {
	defer linregErrors.Recover(&err, "LinearRegression.ImportJSONReader")

	doc, err := model.ReadDocument(r)
	if err != nil {
		return fmt.Errorf("failed to load model document: %w", err)
	}

	params, err := model.DecodeLinearRegressionParams(doc)
	if err != nil {
		return fmt.Errorf("failed to decode linear regression params: %w", err)
	}

	lr.NFeatures = params.NFeatures
	lr.Intercept = params.Intercept
	lr.Weights = mat.NewVecDense(len(params.Coefficients), params.Coefficients)

	lr.State.SetFitted()
	// Sample count is not recorded in the document.
	lr.State.SetDimensions(lr.NFeatures, 0)

	return nil
}
