package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/linreg/dataset"
	"github.com/ezoic/linreg/metrics"
)

func TestLinearRegression_Fit(t *testing.T) {
	tests := []struct {
		name    string
		X       *mat.Dense
		y       *mat.VecDense
		wantErr bool
	}{
		{
			name: "simple linear relationship y = 2x + 1",
			X: mat.NewDense(5, 1, []float64{
				1.0,
				2.0,
				3.0,
				4.0,
				5.0,
			}),
			y: mat.NewVecDense(5, []float64{
				3.0,  // 2*1 + 1
				5.0,  // 2*2 + 1
				7.0,  // 2*3 + 1
				9.0,  // 2*4 + 1
				11.0, // 2*5 + 1
			}),
			wantErr: false,
		},
		{
			name: "multiple features",
			X: mat.NewDense(5, 2, []float64{
				1.0, 2.0,
				2.0, 1.0,
				3.0, 4.0,
				4.0, 3.0,
				5.0, 5.0,
			}),
			y: mat.NewVecDense(5, []float64{
				5.0,  // 1*1 + 2*2
				4.0,  // 1*2 + 2*1
				11.0, // 1*3 + 2*4
				10.0, // 1*4 + 2*3
				15.0, // 1*5 + 2*5
			}),
			wantErr: false,
		},
		{
			name:    "empty data",
			X:       &mat.Dense{},
			y:       &mat.VecDense{},
			wantErr: true,
		},
		{
			name: "mismatched dimensions",
			X: mat.NewDense(3, 2, []float64{
				1.0, 2.0,
				3.0, 4.0,
				5.0, 6.0,
			}),
			y:       mat.NewVecDense(2, []float64{1.0, 2.0}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewLinearRegression()
			err := lr.Fit(tt.X, tt.y)

			if (err != nil) != tt.wantErr {
				t.Errorf("LinearRegression.Fit() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && !lr.IsFitted() {
				t.Error("LinearRegression should be fitted after successful Fit()")
			}
		})
	}
}

func TestLinearRegression_Predict(t *testing.T) {
	// Train y = 2x + 1 first
	lr := NewLinearRegression()

	XTrain := mat.NewDense(5, 1, []float64{
		1.0,
		2.0,
		3.0,
		4.0,
		5.0,
	})
	yTrain := mat.NewVecDense(5, []float64{
		3.0,
		5.0,
		7.0,
		9.0,
		11.0,
	})

	err := lr.Fit(XTrain, yTrain)
	if err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	tests := []struct {
		name      string
		X         *mat.Dense
		wantShape []int
		wantY     []float64
		tolerance float64
		wantErr   bool
	}{
		{
			name: "predict on training data",
			X: mat.NewDense(2, 1, []float64{
				1.0,
				5.0,
			}),
			wantShape: []int{2, 1},
			wantY:     []float64{3.0, 11.0},
			tolerance: 1e-6,
			wantErr:   false,
		},
		{
			name: "predict on new data",
			X: mat.NewDense(3, 1, []float64{
				0.0,
				6.0,
				10.0,
			}),
			wantShape: []int{3, 1},
			wantY:     []float64{1.0, 13.0, 21.0},
			tolerance: 1e-6,
			wantErr:   false,
		},
		{
			name: "wrong number of features",
			X: mat.NewDense(2, 2, []float64{
				1.0, 2.0,
				3.0, 4.0,
			}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := lr.Predict(tt.X)

			if (err != nil) != tt.wantErr {
				t.Errorf("LinearRegression.Predict() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				r, c := pred.Dims()
				if r != tt.wantShape[0] || c != tt.wantShape[1] {
					t.Errorf("Prediction shape = [%d, %d], want %v", r, c, tt.wantShape)
				}

				for i := 0; i < r; i++ {
					got := pred.At(i, 0)
					want := tt.wantY[i]
					if math.Abs(got-want) > tt.tolerance {
						t.Errorf("Prediction[%d] = %v, want %v (tolerance: %v)",
							i, got, want, tt.tolerance)
					}
				}
			}
		})
	}
}

func TestLinearRegression_PredictNotFitted(t *testing.T) {
	lr := NewLinearRegression()

	X := mat.NewDense(2, 1, []float64{1.0, 2.0})
	_, err := lr.Predict(X)

	if err == nil {
		t.Error("Expected error when predicting with unfitted model")
	}
}

func TestLinearRegression_WithoutIntercept(t *testing.T) {
	// y = 4x through the origin
	lr := NewLinearRegression(WithFitIntercept(false))

	X := mat.NewDense(4, 1, []float64{1.0, 2.0, 3.0, 4.0})
	y := mat.NewVecDense(4, []float64{4.0, 8.0, 12.0, 16.0})

	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	if got := lr.GetIntercept(); got != 0 {
		t.Errorf("Intercept = %v, want 0 without intercept fitting", got)
	}

	weights := lr.GetWeights()
	if len(weights) != 1 || math.Abs(weights[0]-4.0) > 1e-8 {
		t.Errorf("Weights = %v, want [4.0]", weights)
	}
}

func TestLinearRegression_Score(t *testing.T) {
	// Perfect linear relationship y = 2x + 1
	lr := NewLinearRegression()

	XTrain := mat.NewDense(10, 1, []float64{
		1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0, 10.0,
	})
	yTrain := mat.NewVecDense(10, []float64{
		3.0, 5.0, 7.0, 9.0, 11.0, 13.0, 15.0, 17.0, 19.0, 21.0,
	})

	if err := lr.Fit(XTrain, yTrain); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	r2, err := lr.Score(XTrain, yTrain)
	if err != nil {
		t.Fatalf("Failed to calculate R² score: %v", err)
	}
	if math.Abs(r2-1.0) > 1e-10 {
		t.Errorf("R² score = %v, want ≈ 1.0", r2)
	}

	// Score must agree with metrics.R2Score on the same predictions
	pred, err := lr.Predict(XTrain)
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}
	r, _ := pred.Dims()
	predVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		predVec.SetVec(i, pred.At(i, 0))
	}
	r2FromMetrics, err := metrics.R2Score(yTrain, predVec)
	if err != nil {
		t.Fatalf("Failed to calculate R² from metrics: %v", err)
	}
	if math.Abs(r2-r2FromMetrics) > 1e-10 {
		t.Errorf("Score() = %v, metrics.R2Score() = %v, want equal", r2, r2FromMetrics)
	}
}

func TestLinearRegression_ScoreNotFitted(t *testing.T) {
	lr := NewLinearRegression()

	X := mat.NewDense(2, 1, []float64{1.0, 2.0})
	y := mat.NewVecDense(2, []float64{1.0, 2.0})

	if _, err := lr.Score(X, y); err == nil {
		t.Error("Expected error when scoring with unfitted model")
	}
}

// The estimated parameters approach the generating constants as the sample
// size grows. With 10k samples of y = 3x + 7 plus unit noise the estimates
// land well within 0.1 of the truth.
func TestLinearRegression_RecoverGeneratingLine(t *testing.T) {
	cfg := dataset.NewConfig()
	cfg.Samples = 10000
	cfg.Seed = 42

	d, err := dataset.Generate(cfg)
	if err != nil {
		t.Fatalf("Failed to generate dataset: %v", err)
	}

	lr := NewLinearRegression()
	if err := lr.Fit(d.FeatureMatrix(), d.TargetVector()); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	slope := lr.GetWeights()[0]
	intercept := lr.GetIntercept()

	if math.Abs(slope-cfg.Slope) > 0.1 {
		t.Errorf("Estimated slope = %v, want within 0.1 of %v", slope, cfg.Slope)
	}
	if math.Abs(intercept-cfg.Intercept) > 0.1 {
		t.Errorf("Estimated intercept = %v, want within 0.1 of %v", intercept, cfg.Intercept)
	}

	r2, err := lr.Score(d.FeatureMatrix(), d.TargetVector())
	if err != nil {
		t.Fatalf("Failed to score: %v", err)
	}
	if r2 < 0.95 {
		t.Errorf("R² score = %v, want > 0.95", r2)
	}
}

// Estimates tighten as the sample count grows.
func TestLinearRegression_EstimatesTightenWithSampleSize(t *testing.T) {
	slopeErr := func(samples int) float64 {
		cfg := dataset.NewConfig()
		cfg.Samples = samples
		cfg.Seed = 7
		cfg.NoiseStd = 3.0

		d, err := dataset.Generate(cfg)
		if err != nil {
			t.Fatalf("Failed to generate dataset: %v", err)
		}

		lr := NewLinearRegression()
		if err := lr.Fit(d.FeatureMatrix(), d.TargetVector()); err != nil {
			t.Fatalf("Failed to fit model: %v", err)
		}
		return math.Abs(lr.GetWeights()[0] - cfg.Slope)
	}

	small := slopeErr(30)
	large := slopeErr(30000)

	if large >= small && large > 0.05 {
		t.Errorf("slope error did not shrink: n=30 err=%v, n=30000 err=%v", small, large)
	}
}

func TestLinearRegression_SingularMatrix(t *testing.T) {
	// Duplicate columns make X^T X singular.
	lr := NewLinearRegression()

	X := mat.NewDense(4, 2, []float64{
		1.0, 1.0,
		2.0, 2.0,
		3.0, 3.0,
		4.0, 4.0,
	})
	y := mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0})

	if err := lr.Fit(X, y); err == nil {
		t.Error("Expected error for singular design matrix")
	}
}

func BenchmarkLinearRegression_Fit(b *testing.B) {
	nSamples := 1000
	nFeatures := 10

	X := mat.NewDense(nSamples, nFeatures, nil)
	y := mat.NewVecDense(nSamples, nil)

	for i := 0; i < nSamples; i++ {
		sum := 0.0
		for j := 0; j < nFeatures; j++ {
			val := float64(i*nFeatures+j) / float64(nSamples*nFeatures)
			X.Set(i, j, val)
			sum += val * float64(j+1)
		}
		y.SetVec(i, sum)
	}

	lr := NewLinearRegression()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lr.Fit(X, y)
	}
}
