// Package log defines standard attribute keys for model operations.
//
// Using these keys consistently keeps log output filterable: every Fit,
// Predict, and Score call across the library reports its shape and timing
// under the same names.
package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "LinearRegression", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "dataset", "preprocessing"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	// Examples: "training", "inference", "preprocessing"
	PhaseKey = "ml.phase"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) being processed.
	FeaturesKey = "data.features"

	// TrainSamplesKey and TestSamplesKey report partition sizes after a
	// train/test split.
	TrainSamplesKey = "data.train_samples"
	TestSamplesKey  = "data.test_samples"
)

// Performance and evaluation.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// R2ScoreKey records the coefficient of determination for regression.
	// At most 1.0; negative for fits worse than predicting the mean.
	R2ScoreKey = "metrics.r2_score"

	// MSEKey records mean squared error.
	MSEKey = "metrics.mse"

	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"
)

// Configuration and reproducibility.
const (
	// SeedKey records the random seed so runs can be reproduced.
	SeedKey = "config.random_seed"

	// SlopeKey and InterceptKey record generating or estimated line
	// parameters in synthetic-data walkthroughs.
	SlopeKey     = "config.slope"
	InterceptKey = "config.intercept"
	NoiseStdKey  = "config.noise_std"
)

// Standard attribute value constants for common operations.
const (
	OperationFit          = "fit"
	OperationPredict      = "predict"
	OperationTransform    = "transform"
	OperationFitTransform = "fit_transform"
	OperationScore        = "score"
	OperationSplit        = "split"
	OperationGenerate     = "generate"

	PhaseTraining      = "training"
	PhaseValidation    = "validation"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"
)
