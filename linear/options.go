package linear

import "github.com/ezoic/linreg/pkg/log"

// Option is a function that configures LinearRegression.
type Option func(*LinearRegression)

// WithFitIntercept sets whether to calculate the intercept. When false the
// fitted line is forced through the origin.
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}

// WithLogger sets the logger used for training and prediction events.
func WithLogger(logger log.Logger) Option {
	return func(lr *LinearRegression) {
		lr.logger = logger
	}
}
