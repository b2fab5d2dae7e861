// Command walkthrough runs the full linear regression workflow end to end:
// generate a synthetic dataset around a known line, split it, fit a model,
// score it on held-out data, and render the fit as PNG and HTML charts.
package main

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/linreg/dataset"
	"github.com/ezoic/linreg/linear"
	"github.com/ezoic/linreg/metrics"
	"github.com/ezoic/linreg/pkg/log"
	"github.com/ezoic/linreg/visualize"
)

func main() {
	// Initialize logger
	log.SetupLogger("info")

	fmt.Println("=== Linear Regression Walkthrough ===")
	fmt.Println()

	// 1. Generate synthetic data around y = 3x + 7
	fmt.Println("1. Generating synthetic data...")

	cfg := dataset.NewConfig()
	ds, err := dataset.Generate(cfg)
	if err != nil {
		log.LogError(err, "Failed to generate dataset")
		os.Exit(1)
	}

	fmt.Printf("Generated %d samples from y = %.1fx + %.1f with noise std %.1f\n",
		ds.Len(), cfg.Slope, cfg.Intercept, cfg.NoiseStd)
	fmt.Println()

	// 2. Split into training and test sets
	fmt.Println("2. Splitting into train and test sets...")

	train, test, err := dataset.TrainTestSplit(ds)
	if err != nil {
		log.LogError(err, "Failed to split dataset")
		os.Exit(1)
	}

	fmt.Printf("  Train: %d samples\n", train.Len())
	fmt.Printf("  Test:  %d samples\n", test.Len())
	fmt.Println()

	// 3. Fit the model on the training set
	fmt.Println("3. Fitting the linear regression model...")

	model := linear.NewLinearRegression()
	if err := model.Fit(train.FeatureMatrix(), train.TargetVector()); err != nil {
		log.LogError(err, "Failed to fit model")
		os.Exit(1)
	}

	slope := model.Weights.AtVec(0)
	intercept := model.Intercept
	fmt.Println("Learned parameters:")
	fmt.Printf("  Slope:     %.4f (true value %.1f)\n", slope, cfg.Slope)
	fmt.Printf("  Intercept: %.4f (true value %.1f)\n", intercept, cfg.Intercept)
	fmt.Println()

	// 4. Score on both splits
	fmt.Println("4. Evaluating the model...")

	trainR2, err := model.Score(train.FeatureMatrix(), train.TargetVector())
	if err != nil {
		log.LogError(err, "Failed to score on training data")
		os.Exit(1)
	}
	testR2, err := model.Score(test.FeatureMatrix(), test.TargetVector())
	if err != nil {
		log.LogError(err, "Failed to score on test data")
		os.Exit(1)
	}

	fmt.Printf("  R² (train): %.4f\n", trainR2)
	fmt.Printf("  R² (test):  %.4f\n", testR2)
	fmt.Println()

	// 5. Actual vs predicted on the test set
	fmt.Println("5. Actual vs Predicted (first 5 test samples):")

	predictions, err := model.Predict(test.FeatureMatrix())
	if err != nil {
		log.LogError(err, "Failed to predict on test data")
		os.Exit(1)
	}

	n := test.Len()
	predVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		predVec.SetVec(i, predictions.At(i, 0))
	}

	mse, _ := metrics.MSE(test.TargetVector(), predVec)
	rmse, _ := metrics.RMSE(test.TargetVector(), predVec)
	mae, _ := metrics.MAE(test.TargetVector(), predVec)

	fmt.Println("   x   |  Actual  | Predicted | Error")
	fmt.Println("-------|----------|-----------|-------")
	rows := n
	if rows > 5 {
		rows = 5
	}
	for i := 0; i < rows; i++ {
		actual := test.Y[i]
		predicted := predVec.AtVec(i)
		fmt.Printf("%6.2f | %8.2f | %9.2f | %6.2f\n",
			test.X[i], actual, predicted, actual-predicted)
	}
	fmt.Println()
	fmt.Println("Test error metrics:")
	fmt.Printf("  MSE:  %.4f\n", mse)
	fmt.Printf("  RMSE: %.4f\n", rmse)
	fmt.Printf("  MAE:  %.4f\n", mae)
	fmt.Println()

	// 6. Render the fit
	fmt.Println("6. Rendering charts...")

	plotCfg := visualize.PlotConfig{
		Title:  "Synthetic Data and Fitted Line",
		XLabel: "x",
		YLabel: "y",
	}

	p, err := visualize.ScatterWithFit(ds, model, plotCfg)
	if err != nil {
		log.LogError(err, "Failed to build plot")
		os.Exit(1)
	}
	if err := visualize.SavePNG(p, "regression_fit.png"); err != nil {
		log.LogError(err, "Failed to save PNG")
		os.Exit(1)
	}
	fmt.Println("  Saved regression_fit.png")

	chart, err := visualize.ScatterWithFitChart(ds, model, plotCfg)
	if err != nil {
		log.LogError(err, "Failed to build chart")
		os.Exit(1)
	}
	htmlFile, err := os.Create("regression_fit.html")
	if err != nil {
		log.LogError(err, "Failed to create HTML file")
		os.Exit(1)
	}
	defer func() { _ = htmlFile.Close() }()
	if err := visualize.WriteHTML(htmlFile, chart); err != nil {
		log.LogError(err, "Failed to render HTML")
		os.Exit(1)
	}
	fmt.Println("  Saved regression_fit.html")
	fmt.Println()

	// 7. Persist the fitted model
	fmt.Println("7. Exporting the fitted model...")

	if err := model.ExportJSON("regression_model.json"); err != nil {
		log.LogError(err, "Failed to export model")
		os.Exit(1)
	}
	fmt.Println("  Saved regression_model.json")
}
