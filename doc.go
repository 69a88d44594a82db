// Package quantstats provides tools for simple linear regression and
// resampling-based uncertainty estimation, built on Gonum.
//
// The centerpiece is a non-parametric bootstrap estimator for the
// standard error of a regression slope: the dataset is resampled with
// replacement, a least-squares line is fitted to each resample, and the
// spread of the resulting slope estimates approximates the sampling
// distribution of the estimator.
//
// # Quick Start
//
// Here's a minimal bootstrap run:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/MartonHorvath98/quantstats/bootstrap"
//	    "github.com/MartonHorvath98/quantstats/dataset"
//	)
//
//	func main() {
//	    ds, err := dataset.New(
//	        []float64{1, 2, 3, 4, 5},
//	        []float64{2.1, 3.9, 6.2, 8.1, 9.8},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    est := bootstrap.NewEstimator(
//	        bootstrap.WithIterations(1000),
//	        bootstrap.WithSeed(42),
//	    )
//	    res, err := est.Run(context.Background(), ds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Printf("SE(slope) = %.4f\n", res.StdError())
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - dataset: paired (x, y) observations, CSV loading, resampling
//   - linear: simple least-squares regression with analytic standard errors
//   - bootstrap: the resampling estimator and its results
//   - metrics: evaluation metrics (MSE, RMSE, MAE, R²)
//   - viz: histogram and scatter plots of fits and estimates
//   - core/model: base estimator state shared by fitted models
//   - core/parallel: parallel processing utilities
//
// # Determinism
//
// Bootstrap runs are reproducible: each iteration draws its resample
// from an independent PCG stream keyed by the run seed and the
// iteration index, so results are identical for any worker count:
//
//	est := bootstrap.NewEstimator(
//	    bootstrap.WithSeed(42),
//	    bootstrap.WithWorkers(8), // same estimates as WithWorkers(1)
//	)
//
// # Error Handling
//
// All errors carry stack traces and typed context. Degenerate
// resamples (zero predictor variance) are skipped and reported as
// warnings by default; use bootstrap.WithDegeneratePolicy to abort
// instead.
package quantstats
