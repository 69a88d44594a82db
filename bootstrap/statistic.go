package bootstrap

import (
	"github.com/MartonHorvath98/quantstats/linear"
)

// Statistic computes a scalar estimate from paired observations.
// A statistic reports a degenerate resample by returning an error that
// matches errors.ErrDegenerateFit.
type Statistic func(x, y []float64) (float64, error)

// SlopeStatistic fits a simple OLS regression to the resample and returns
// its slope coefficient. This is the default statistic.
func SlopeStatistic(x, y []float64) (float64, error) {
	lr := linear.NewSimpleRegression()
	if err := lr.Fit(x, y); err != nil {
		return 0, err
	}
	return lr.Slope, nil
}

// InterceptStatistic fits a simple OLS regression to the resample and
// returns its intercept.
func InterceptStatistic(x, y []float64) (float64, error) {
	lr := linear.NewSimpleRegression()
	if err := lr.Fit(x, y); err != nil {
		return 0, err
	}
	return lr.Intercept, nil
}
