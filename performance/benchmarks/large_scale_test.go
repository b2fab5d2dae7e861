package benchmarks

import (
	"fmt"
	"testing"

	"github.com/ezoic/linreg/dataset"
	"github.com/ezoic/linreg/linear"
	"github.com/ezoic/linreg/preprocessing"
)

// BenchmarkLargeScale measures the full workflow at increasing dataset sizes.
func BenchmarkLargeScale(b *testing.B) {
	sizes := []struct {
		name    string
		samples int
	}{
		{"10K", 10_000},
		{"100K", 100_000},
		{"1M", 1_000_000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			b.Run("Generate", func(b *testing.B) {
				benchmarkGenerate(b, size.samples)
			})

			b.Run("Split", func(b *testing.B) {
				benchmarkSplit(b, size.samples)
			})

			b.Run("Fit", func(b *testing.B) {
				benchmarkFit(b, size.samples)
			})

			b.Run("Predict", func(b *testing.B) {
				benchmarkPredict(b, size.samples)
			})
		})
	}
}

func benchmarkGenerate(b *testing.B, samples int) {
	b.ReportAllocs()

	cfg := dataset.NewConfig()
	cfg.Samples = samples
	cfg.Seed = 42

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := dataset.Generate(cfg); err != nil {
			b.Fatal(err)
		}
	}

	b.SetBytes(int64(samples * 2 * 8)) // x and y columns, float64
}

func benchmarkSplit(b *testing.B, samples int) {
	b.ReportAllocs()

	ds := generateDataset(b, samples)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := dataset.TrainTestSplit(ds); err != nil {
			b.Fatal(err)
		}
	}

	b.SetBytes(int64(samples * 2 * 8))
}

func benchmarkFit(b *testing.B, samples int) {
	b.ReportAllocs()

	ds := generateDataset(b, samples)
	X := ds.FeatureMatrix()
	y := ds.TargetVector()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		lr := linear.NewLinearRegression()
		if err := lr.Fit(X, y); err != nil {
			b.Fatal(err)
		}
	}

	b.SetBytes(int64(samples * 2 * 8))
}

func benchmarkPredict(b *testing.B, samples int) {
	b.ReportAllocs()

	ds := generateDataset(b, samples)
	X := ds.FeatureMatrix()

	lr := linear.NewLinearRegression()
	if err := lr.Fit(X, ds.TargetVector()); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := lr.Predict(X); err != nil {
			b.Fatal(err)
		}
	}

	b.SetBytes(int64(samples * 8))
}

// BenchmarkScalingPipeline measures preprocessing plus training end to end.
func BenchmarkScalingPipeline(b *testing.B) {
	sizes := []int{10_000, 100_000}

	for _, samples := range sizes {
		b.Run(fmt.Sprintf("Size_%d", samples), func(b *testing.B) {
			b.ReportAllocs()

			ds := generateDataset(b, samples)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				train, test, err := dataset.TrainTestSplit(ds)
				if err != nil {
					b.Fatal(err)
				}

				scaler := preprocessing.NewStandardScaler(true, true)
				XTrain, err := scaler.FitTransform(train.FeatureMatrix())
				if err != nil {
					b.Fatal(err)
				}

				lr := linear.NewLinearRegression()
				if err := lr.Fit(XTrain, train.TargetVector()); err != nil {
					b.Fatal(err)
				}

				XTest, err := scaler.Transform(test.FeatureMatrix())
				if err != nil {
					b.Fatal(err)
				}
				if _, err := lr.Predict(XTest); err != nil {
					b.Fatal(err)
				}
			}

			b.SetBytes(int64(samples * 2 * 8))
		})
	}
}

func generateDataset(b *testing.B, samples int) *dataset.Dataset {
	b.Helper()

	cfg := dataset.NewConfig()
	cfg.Samples = samples
	cfg.Seed = 42
	ds, err := dataset.Generate(cfg)
	if err != nil {
		b.Fatal(err)
	}
	return ds
}
