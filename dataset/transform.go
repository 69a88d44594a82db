package dataset

import (
	"gonum.org/v1/gonum/stat"

	"github.com/MartonHorvath98/quantstats/pkg/errors"
)

// Center returns a new Dataset with the mean subtracted from the predictor
// values. Centering the predictor leaves the slope unchanged and makes the
// intercept the mean response, which is often easier to interpret.
func (ds *Dataset) Center() (*Dataset, error) {
	if ds.Len() == 0 {
		return nil, errors.NewModelError("Dataset.Center", "empty data", errors.ErrEmptyData)
	}

	xMean := stat.Mean(ds.x, nil)

	x := make([]float64, len(ds.x))
	y := make([]float64, len(ds.y))
	for i := range ds.x {
		x[i] = ds.x[i] - xMean
	}
	copy(y, ds.y)

	return &Dataset{x: x, y: y}, nil
}

// Standardize returns a new Dataset with the predictor values scaled to
// mean 0 and standard deviation 1. The slope fitted to a standardized
// predictor is expressed in response units per predictor standard deviation.
// Fails with a degenerate-fit error when the predictor has no variance.
func (ds *Dataset) Standardize() (*Dataset, error) {
	if ds.Len() == 0 {
		return nil, errors.NewModelError("Dataset.Standardize", "empty data", errors.ErrEmptyData)
	}

	xMean, xStd := stat.MeanStdDev(ds.x, nil)
	if xStd == 0 || ds.Len() < 2 {
		return nil, errors.NewDegenerateFitError("Dataset.Standardize", -1, ds.Len())
	}

	x := make([]float64, len(ds.x))
	y := make([]float64, len(ds.y))
	for i := range ds.x {
		x[i] = (ds.x[i] - xMean) / xStd
	}
	copy(y, ds.y)

	return &Dataset{x: x, y: y}, nil
}
