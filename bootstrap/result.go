package bootstrap

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/MartonHorvath98/quantstats/pkg/errors"
)

// Result holds the estimate collection produced by a bootstrap run.
type Result struct {
	// Estimates are the collected statistic values, one per non-skipped
	// iteration, in iteration order.
	Estimates []float64

	// Skipped counts iterations dropped because the resample was
	// degenerate (PolicySkip only).
	Skipped int

	// Seed is the random seed the run used.
	Seed uint64

	// Iterations is the configured iteration count, including skips.
	Iterations int
}

// Len returns the number of collected estimates.
func (r *Result) Len() int {
	return len(r.Estimates)
}

// Mean returns the mean of the collected estimates, or 0 when the
// collection is empty.
func (r *Result) Mean() float64 {
	if len(r.Estimates) == 0 {
		return 0
	}
	return stat.Mean(r.Estimates, nil)
}

// StdError returns the sample standard deviation of the collected
// estimates, which approximates the standard error of the bootstrapped
// statistic. By convention it returns 0 when the collection holds fewer
// than two estimates, where a sample standard deviation is undefined.
func (r *Result) StdError() float64 {
	if len(r.Estimates) <= 1 {
		return 0
	}
	return stat.StdDev(r.Estimates, nil)
}

// Quantile returns the p-quantile (0 <= p <= 1) of the collected estimates
// using the empirical distribution.
func (r *Result) Quantile(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, errors.NewValidationError("p", "must be in [0, 1]", p)
	}
	if len(r.Estimates) == 0 {
		return 0, errors.NewModelError("Result.Quantile", "empty estimate collection", errors.ErrEmptyData)
	}

	sorted := make([]float64, len(r.Estimates))
	copy(sorted, r.Estimates)
	sort.Float64s(sorted)

	return stat.Quantile(p, stat.Empirical, sorted, nil), nil
}

// ConfidenceInterval returns a percentile bootstrap confidence interval at
// the given level (e.g. 0.95 for the 2.5% and 97.5% quantiles).
func (r *Result) ConfidenceInterval(level float64) (lo, hi float64, err error) {
	if level <= 0 || level >= 1 {
		return 0, 0, errors.NewValidationError("level", "must be in (0, 1)", level)
	}

	alpha := (1 - level) / 2
	lo, err = r.Quantile(alpha)
	if err != nil {
		return 0, 0, err
	}
	hi, err = r.Quantile(1 - alpha)
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}
