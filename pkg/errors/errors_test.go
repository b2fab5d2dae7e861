package errors

import (
	"strings"
	"testing"
)

func TestNotFittedError_Message(t *testing.T) {
	err := NewNotFittedError("LinearRegression", "Predict")

	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	msg := err.Error()
	if !strings.Contains(msg, "LinearRegression") {
		t.Errorf("Expected model name in message, got '%s'", msg)
	}
	if !strings.Contains(msg, "Predict()") {
		t.Errorf("Expected method name in message, got '%s'", msg)
	}

	var notFitted *NotFittedError
	if !As(err, &notFitted) {
		t.Fatalf("Expected NotFittedError, got %T", err)
	}
	if notFitted.ModelName != "LinearRegression" {
		t.Errorf("Expected model name 'LinearRegression', got '%s'", notFitted.ModelName)
	}
}

func TestDimensionError_AxisNames(t *testing.T) {
	tests := []struct {
		name     string
		axis     int
		wantWord string
	}{
		{name: "row axis", axis: 0, wantWord: "rows"},
		{name: "feature axis", axis: 1, wantWord: "features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("Fit", 10, 7, tt.axis)

			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Fatalf("Expected DimensionError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantWord) {
				t.Errorf("Expected '%s' in message, got '%s'", tt.wantWord, err.Error())
			}
			if dimErr.Expected != 10 || dimErr.Got != 7 {
				t.Errorf("Expected 10/7, got %d/%d", dimErr.Expected, dimErr.Got)
			}
		})
	}
}

func TestModelError_Unwrap(t *testing.T) {
	err := NewModelError("LinearRegression.Fit", "singular matrix", ErrSingularMatrix)

	if !Is(err, ErrSingularMatrix) {
		t.Error("Expected ModelError to unwrap to ErrSingularMatrix")
	}

	var modelErr *ModelError
	if !As(err, &modelErr) {
		t.Fatalf("Expected ModelError, got %T", err)
	}
	if modelErr.Kind != "singular matrix" {
		t.Errorf("Expected kind 'singular matrix', got '%s'", modelErr.Kind)
	}
}

func TestValueError_Message(t *testing.T) {
	err := NewValueError("TrainTestSplit", "test fraction must be in (0, 1)")

	msg := err.Error()
	if !strings.HasPrefix(msg, "linreg: TrainTestSplit:") {
		t.Errorf("Expected 'linreg: TrainTestSplit:' prefix, got '%s'", msg)
	}
}

func TestWrap_PreservesSentinel(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "loading dataset")

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected wrapped error to match ErrEmptyData")
	}
	if !strings.Contains(wrapped.Error(), "loading dataset") {
		t.Errorf("Expected wrap message in '%s'", wrapped.Error())
	}
}
