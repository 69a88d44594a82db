// Package log defines standard attribute keys for statistical operations.
//
// Using these keys consistently across the library enables structured log
// analysis and filtering. The keys follow a hierarchical naming convention
// (e.g., "model.name", "data.samples").

package log

// Model and operation context.
const (
	// ModelNameKey identifies the statistical model or procedure.
	// Examples: "SimpleRegression", "Bootstrap"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "run", "resample"
	OperationKey = "stats.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "bootstrap", "dataset"
	ComponentKey = "stats.component"
)

// Standard operation values for OperationKey.
const (
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationRun      = "run"
	OperationResample = "resample"
)

// Data shape.
const (
	// SamplesKey indicates the number of observations in the dataset.
	SamplesKey = "data.samples"
)

// Bootstrap run context.
const (
	// IterationsKey records the configured number of bootstrap iterations.
	IterationsKey = "bootstrap.iterations"

	// SeedKey records the random seed used for the run.
	SeedKey = "bootstrap.seed"

	// WorkersKey records the number of parallel workers.
	WorkersKey = "bootstrap.workers"

	// SkippedKey records the number of iterations skipped due to
	// degenerate resamples.
	SkippedKey = "bootstrap.skipped"
)

// Estimation results.
const (
	// SlopeKey records the fitted slope coefficient.
	SlopeKey = "estimate.slope"

	// StdErrorKey records a standard error estimate.
	StdErrorKey = "estimate.std_error"

	// R2ScoreKey records the R² coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
