package bootstrap

// Option is a function that configures an Estimator
type Option func(*Estimator)

// WithIterations sets the number of bootstrap iterations
func WithIterations(k int) Option {
	return func(e *Estimator) {
		e.iterations = k
	}
}

// WithSeed sets the random seed, making runs reproducible
func WithSeed(seed uint64) Option {
	return func(e *Estimator) {
		e.seed = seed
	}
}

// WithWorkers sets the number of parallel workers.
// Iterations are independent, so the worker count changes wall time
// but never the resulting estimate collection.
func WithWorkers(n int) Option {
	return func(e *Estimator) {
		e.workers = n
	}
}

// WithDegeneratePolicy sets how degenerate resamples are handled
func WithDegeneratePolicy(policy DegeneratePolicy) Option {
	return func(e *Estimator) {
		e.policy = policy
	}
}

// WithStatistic sets the statistic computed on each resample
func WithStatistic(s Statistic) Option {
	return func(e *Estimator) {
		e.statistic = s
	}
}
