// Package bootstrap implements non-parametric bootstrap resampling for the
// coefficients of a simple linear regression.
//
// The estimator repeatedly draws with-replacement resamples from a dataset,
// fits an ordinary least-squares regression to each, and collects the
// resulting slope estimates. The sample standard deviation of the collection
// is an empirical standard error for the slope, an alternative to the
// analytic formula.
//
// Each iteration uses its own PCG random stream derived from (seed,
// iteration), so a run is deterministic for a fixed seed regardless of how
// many workers execute it.
package bootstrap

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/MartonHorvath98/quantstats/core/parallel"
	"github.com/MartonHorvath98/quantstats/dataset"
	"github.com/MartonHorvath98/quantstats/pkg/errors"
)

// DegeneratePolicy controls what happens when a resample has zero predictor
// variance and the slope is undefined for that iteration.
type DegeneratePolicy int

const (
	// PolicySkip drops the degenerate iteration, records it in the result's
	// skip count, and emits a DegenerateFitWarning. This is the default.
	PolicySkip DegeneratePolicy = iota
	// PolicyAbort stops the whole run at the first degenerate iteration.
	PolicyAbort
)

// String returns the policy name.
func (p DegeneratePolicy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Default configuration values.
const (
	DefaultIterations = 1000
	DefaultSeed       = 42
)

// Estimator runs the bootstrap procedure. Configure it with options and
// reuse it freely; Run does not mutate the estimator.
type Estimator struct {
	iterations int
	seed       uint64
	workers    int
	policy     DegeneratePolicy
	statistic  Statistic
}

// NewEstimator creates a bootstrap estimator. Without options it runs
// DefaultIterations iterations sequentially with DefaultSeed, skips
// degenerate resamples, and bootstraps the regression slope.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{
		iterations: DefaultIterations,
		seed:       DefaultSeed,
		workers:    1,
		policy:     PolicySkip,
		statistic:  SlopeStatistic,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// iteration outcome markers
type iterStatus uint8

const (
	statusPending iterStatus = iota // not reached (cancelled)
	statusOK
	statusSkipped
)

// invokeStatistic calls the configured statistic with panic recovery, so a
// panic inside a user-supplied statistic surfaces as an error on the
// iteration instead of killing a worker goroutine.
func (e *Estimator) invokeStatistic(x, y []float64) (v float64, err error) {
	defer errors.Recover(&err, "Bootstrap.Run.statistic")
	return e.statistic(x, y)
}

// Run executes the bootstrap procedure against ds.
//
// On success it returns a Result whose estimate collection has one entry per
// non-skipped iteration, in iteration order. If ctx is cancelled mid-run,
// Run returns the partial Result together with the context error; the
// completed subset is still a valid (noisier) bootstrap sample. With
// PolicyAbort, the first degenerate iteration fails the whole run.
func (e *Estimator) Run(ctx context.Context, ds *dataset.Dataset) (*Result, error) {
	if e.iterations < 1 {
		return nil, errors.NewValidationError("iterations", "must be at least 1", e.iterations)
	}
	if e.statistic == nil {
		return nil, errors.NewValidationError("statistic", "must not be nil", nil)
	}
	if ds == nil || ds.Len() == 0 {
		return nil, errors.NewModelError("Bootstrap.Run", "empty data", errors.ErrEmptyData)
	}

	n := ds.Len()
	k := e.iterations

	values := make([]float64, k)
	status := make([]iterStatus, k)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The earliest failing iteration wins, so runs with different worker
	// counts report the same error.
	var abortMu sync.Mutex
	abortIter := -1
	var abortErr error
	abort := func(i int, err error) {
		abortMu.Lock()
		if abortIter == -1 || i < abortIter {
			abortIter = i
			abortErr = err
		}
		abortMu.Unlock()
		cancel()
	}

	body := func(chunkCtx context.Context, start, end int) {
		// Scratch buffers are reused across the chunk's iterations.
		idx := make([]int, n)
		x := make([]float64, n)
		y := make([]float64, n)

		for i := start; i < end; i++ {
			if chunkCtx.Err() != nil {
				return
			}

			// Iteration-local stream: deterministic for (seed, i)
			// independent of chunking.
			rng := rand.New(rand.NewPCG(e.seed, uint64(i)))
			for j := range idx {
				idx[j] = rng.IntN(n)
			}
			if err := ds.Gather(idx, x, y); err != nil {
				abort(i, err)
				return
			}

			v, err := e.invokeStatistic(x, y)
			switch {
			case err == nil:
				if instErr := errors.CheckScalar("bootstrap_estimate", v, i); instErr != nil {
					abort(i, instErr)
					return
				}
				values[i] = v
				status[i] = statusOK
			case errors.Is(err, errors.ErrDegenerateFit):
				if e.policy == PolicyAbort {
					abort(i, errors.NewDegenerateFitError("Bootstrap.Run", i, n))
					return
				}
				status[i] = statusSkipped
				errors.Warn(errors.NewDegenerateFitWarning(i, n, ""))
			default:
				abort(i, errors.Wrapf(err, "bootstrap iteration %d", i))
				return
			}
		}
	}

	if e.workers <= 1 {
		body(runCtx, 0, k)
	} else {
		// Worker count does not affect the output, only wall time.
		_ = parallel.ParallelizeContext(runCtx, k, e.workers, body)
	}

	if abortErr != nil {
		return nil, abortErr
	}

	res := &Result{
		Estimates:  make([]float64, 0, k),
		Seed:       e.seed,
		Iterations: k,
	}
	for i, st := range status {
		switch st {
		case statusOK:
			res.Estimates = append(res.Estimates, values[i])
		case statusSkipped:
			res.Skipped++
		}
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}
