// Package viz renders bootstrap and regression results with gonum/plot.
//
// Computation stays in the bootstrap and linear packages; viz only turns
// their outputs into plots. Callers own the returned *plot.Plot and decide
// where and in what format to save it.
package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/MartonHorvath98/quantstats/bootstrap"
	"github.com/MartonHorvath98/quantstats/dataset"
	"github.com/MartonHorvath98/quantstats/linear"
	"github.com/MartonHorvath98/quantstats/pkg/errors"
)

// EstimateHistogram renders the estimate collection of a bootstrap run as a
// histogram with the given number of bins.
func EstimateHistogram(res *bootstrap.Result, bins int) (*plot.Plot, error) {
	if res == nil || res.Len() == 0 {
		return nil, errors.NewModelError("viz.EstimateHistogram", "empty estimate collection", errors.ErrEmptyData)
	}
	if bins < 1 {
		return nil, errors.NewValidationError("bins", "must be at least 1", bins)
	}

	p := plot.New()
	p.Title.Text = "Bootstrap estimates"
	p.X.Label.Text = "estimate"
	p.Y.Label.Text = "count"

	hist, err := plotter.NewHist(plotter.Values(res.Estimates), bins)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build histogram")
	}
	p.Add(hist)

	return p, nil
}

// ScatterWithFit renders the dataset as a scatter plot overlaid with the
// fitted regression line.
func ScatterWithFit(ds *dataset.Dataset, lr *linear.SimpleRegression) (*plot.Plot, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, errors.NewModelError("viz.ScatterWithFit", "empty data", errors.ErrEmptyData)
	}
	if lr == nil || !lr.IsFitted() {
		return nil, errors.NewNotFittedError("SimpleRegression", "viz.ScatterWithFit")
	}

	pts := make(plotter.XYs, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		obs := ds.At(i)
		pts[i].X = obs.X
		pts[i].Y = obs.Y
	}

	p := plot.New()
	p.Title.Text = "Observations and fitted line"
	p.X.Label.Text = "predictor"
	p.Y.Label.Text = "response"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build scatter")
	}
	p.Add(scatter)

	line := plotter.NewFunction(func(x float64) float64 {
		return lr.Intercept + lr.Slope*x
	})
	p.Add(line)

	return p, nil
}

// SavePNG writes the plot to path as a PNG at a default size.
func SavePNG(p *plot.Plot, path string) error {
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", path)
	}
	return nil
}
