package model

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// ModelSpec identifies the estimator type and serialization format version
// inside an exported model document.
type ModelSpec struct {
	Name          string `json:"name"`
	FormatVersion string `json:"format_version"`
}

// Document is the JSON envelope for exported models. Params holds the
// estimator-specific payload and is decoded by the owning package.
type Document struct {
	ModelSpec ModelSpec       `json:"model_spec"`
	Params    json.RawMessage `json:"params"`
}

// LinearRegressionParams is the payload for linear regression models. The
// field names match the scikit-learn JSON layout so models can round-trip
// with Python tooling.
type LinearRegressionParams struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	NFeatures    int       `json:"n_features"`
}

// WriteDocument encodes a model document to w with indentation.
func WriteDocument(w io.Writer, doc *Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode model document: %w", err)
	}
	return nil
}

// ReadDocument decodes a model document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode model document: %w", err)
	}
	if doc.ModelSpec.Name == "" {
		return nil, fmt.Errorf("model document has no model_spec.name")
	}
	return &doc, nil
}

// DecodeLinearRegressionParams extracts linear regression parameters from a
// model document, validating the estimator name.
func DecodeLinearRegressionParams(doc *Document) (*LinearRegressionParams, error) {
	if doc.ModelSpec.Name != "LinearRegression" {
		return nil, fmt.Errorf("expected LinearRegression document, got %q", doc.ModelSpec.Name)
	}

	var params LinearRegressionParams
	if err := json.Unmarshal(doc.Params, &params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal linear regression params: %w", err)
	}

	if params.NFeatures == 0 {
		params.NFeatures = len(params.Coefficients)
	}
	if len(params.Coefficients) != params.NFeatures {
		return nil, fmt.Errorf("coefficient count %d does not match n_features %d",
			len(params.Coefficients), params.NFeatures)
	}

	return &params, nil
}
