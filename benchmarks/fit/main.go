// Command fit benchmarks LinearRegression training and prediction on
// synthetic datasets of increasing size. Run with -cpuprofile to write a
// CPU profile to the current directory.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/ezoic/linreg/dataset"
	"github.com/ezoic/linreg/linear"
)

// BenchmarkResult holds the measurements for one dataset size.
type BenchmarkResult struct {
	Stage       string
	DatasetSize int
	Duration    time.Duration
	Throughput  float64 // samples/second
	MemoryUsage float64 // MB
	R2          float64
}

func main() {
	cpuprofile := flag.Bool("cpuprofile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	fmt.Println("=== Linear Regression Fit Benchmarks ===")
	fmt.Println()

	sizes := []int{1_000, 10_000, 100_000, 1_000_000}

	results := []BenchmarkResult{}
	for _, n := range sizes {
		fmt.Printf("Dataset: %d samples\n", n)

		cfg := dataset.NewConfig()
		cfg.Samples = n
		cfg.Seed = 42
		ds, err := dataset.Generate(cfg)
		if err != nil {
			fmt.Printf("Error generating dataset: %v\n", err)
			return
		}

		fitResult, lr := benchmarkFit(ds)
		results = append(results, fitResult)

		predictResult := benchmarkPredict(ds, lr)
		results = append(results, predictResult)

		fmt.Printf("  Fit:     %.0f samples/sec, R²=%.4f\n", fitResult.Throughput, fitResult.R2)
		fmt.Printf("  Predict: %.0f samples/sec\n", predictResult.Throughput)
		fmt.Println()
	}

	printResults(results)
}

func benchmarkFit(ds *dataset.Dataset) (BenchmarkResult, *linear.LinearRegression) {
	var m1, m2 runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m1)

	X := ds.FeatureMatrix()
	y := ds.TargetVector()

	lr := linear.NewLinearRegression()

	start := time.Now()
	if err := lr.Fit(X, y); err != nil {
		fmt.Printf("Error in fit: %v\n", err)
		return BenchmarkResult{}, lr
	}
	duration := time.Since(start)

	runtime.GC()
	runtime.ReadMemStats(&m2)

	r2, _ := lr.Score(X, y)

	return BenchmarkResult{
		Stage:       "Fit",
		DatasetSize: ds.Len(),
		Duration:    duration,
		Throughput:  float64(ds.Len()) / duration.Seconds(),
		MemoryUsage: float64(m2.Alloc-m1.Alloc) / (1024 * 1024),
		R2:          r2,
	}, lr
}

func benchmarkPredict(ds *dataset.Dataset, lr *linear.LinearRegression) BenchmarkResult {
	var m1, m2 runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m1)

	X := ds.FeatureMatrix()

	start := time.Now()
	if _, err := lr.Predict(X); err != nil {
		fmt.Printf("Error in predict: %v\n", err)
		return BenchmarkResult{}
	}
	duration := time.Since(start)

	runtime.GC()
	runtime.ReadMemStats(&m2)

	return BenchmarkResult{
		Stage:       "Predict",
		DatasetSize: ds.Len(),
		Duration:    duration,
		Throughput:  float64(ds.Len()) / duration.Seconds(),
		MemoryUsage: float64(m2.Alloc-m1.Alloc) / (1024 * 1024),
	}
}

func printResults(results []BenchmarkResult) {
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Printf("%-10s %10s %12s %15s %10s %8s\n",
		"Stage", "Samples", "Duration", "Throughput", "Memory", "R²")

	for _, result := range results {
		fmt.Printf("%-10s %10d %12s %15.0f %10.2f %8.4f\n",
			result.Stage,
			result.DatasetSize,
			result.Duration.Truncate(time.Microsecond),
			result.Throughput,
			result.MemoryUsage,
			result.R2)
	}
}
