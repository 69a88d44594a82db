package linear

// Option is a function that configures SimpleRegression
type Option func(*SimpleRegression)

// WithOrigin forces the regression line through the origin,
// dropping the intercept term from the model
func WithOrigin(origin bool) Option {
	return func(lr *SimpleRegression) {
		lr.origin = origin
	}
}
