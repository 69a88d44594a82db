// Package dataset provides the paired-observation data model used by the
// regression and bootstrap packages.
//
// A Dataset is an immutable, ordered collection of (predictor, response)
// pairs. Resamples are built by index so that bootstrap iterations never
// touch the underlying data.
package dataset

import (
	"github.com/MartonHorvath98/quantstats/pkg/errors"
)

// Observation is a single (predictor, response) pair.
type Observation struct {
	X float64 // predictor value
	Y float64 // response value
}

// Dataset is an ordered, fixed-size sequence of observations.
// The backing slices are private and copied on the way in and out,
// so a Dataset never changes after construction.
type Dataset struct {
	x []float64
	y []float64
}

// New creates a Dataset from paired predictor and response slices.
// The slices must have equal length; both are copied.
func New(x, y []float64) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, errors.NewDimensionError("dataset.New", len(x), len(y))
	}

	if err := errors.CheckNumericalStability("dataset.New.x", x, -1); err != nil {
		return nil, err
	}
	if err := errors.CheckNumericalStability("dataset.New.y", y, -1); err != nil {
		return nil, err
	}

	ds := &Dataset{
		x: make([]float64, len(x)),
		y: make([]float64, len(y)),
	}
	copy(ds.x, x)
	copy(ds.y, y)
	return ds, nil
}

// FromObservations creates a Dataset from a slice of observations.
func FromObservations(obs []Observation) (*Dataset, error) {
	x := make([]float64, len(obs))
	y := make([]float64, len(obs))
	for i, o := range obs {
		x[i] = o.X
		y[i] = o.Y
	}
	return New(x, y)
}

// Len returns the number of observations.
func (ds *Dataset) Len() int {
	return len(ds.x)
}

// At returns the observation at index i.
func (ds *Dataset) At(i int) Observation {
	return Observation{X: ds.x[i], Y: ds.y[i]}
}

// X returns a copy of the predictor values.
func (ds *Dataset) X() []float64 {
	out := make([]float64, len(ds.x))
	copy(out, ds.x)
	return out
}

// Y returns a copy of the response values.
func (ds *Dataset) Y() []float64 {
	out := make([]float64, len(ds.y))
	copy(out, ds.y)
	return out
}

// Resample assembles a new Dataset from the observations at the given
// indices. Indices may repeat and omit entries, which is exactly what a
// with-replacement bootstrap resample does. Every index must be in
// [0, Len()).
func (ds *Dataset) Resample(indices []int) (*Dataset, error) {
	n := ds.Len()
	x := make([]float64, len(indices))
	y := make([]float64, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, errors.NewValueError("Dataset.Resample",
				errors.Newf("index %d out of range [0, %d)", idx, n).Error())
		}
		x[i] = ds.x[idx]
		y[i] = ds.y[idx]
	}
	return &Dataset{x: x, y: y}, nil
}

// fill copies the observations at indices into the provided slices.
// Used by the bootstrap loop to avoid one allocation pair per iteration.
// Bounds are assumed checked by the caller.
func (ds *Dataset) fill(indices []int, x, y []float64) {
	for i, idx := range indices {
		x[i] = ds.x[idx]
		y[i] = ds.y[idx]
	}
}

// Gather is the allocation-free variant of Resample for hot loops:
// it writes the selected observations into x and y, which must both
// have the same length as indices. Index bounds are checked.
func (ds *Dataset) Gather(indices []int, x, y []float64) error {
	if len(x) != len(indices) || len(y) != len(indices) {
		return errors.NewDimensionError("Dataset.Gather", len(indices), len(x))
	}
	n := ds.Len()
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return errors.NewValueError("Dataset.Gather",
				errors.Newf("index %d out of range [0, %d)", idx, n).Error())
		}
	}
	ds.fill(indices, x, y)
	return nil
}
