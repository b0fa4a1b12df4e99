// SPDX-License-Identifier: MIT

// Package fit: functional configuration for fitters. The curve itself is
// the required positional argument of NewFitter; everything tunable
// lands here. Constructors panic only on nonsensical values (programmer
// error).

package fit

import "github.com/katalvlaran/lvlnum/lsq"

// Internal panic messages (no magic strings).
const (
	panicBadMaxEvaluations = "fit: WithMaxEvaluations: n must be > 0"
	panicBadMaxIterations  = "fit: WithMaxIterations: n must be > 0"
)

// Options collects the tunable pieces of a Fitter. Fields are
// unexported; public APIs consume ...Option.
type Options struct {
	start          []float64
	checker        lsq.EvaluationChecker
	maxEvaluations int
	maxIterations  int
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// DefaultOptions returns the documented defaults: no explicit start
// (curves reporting an Arity start at zeros), an RMS checker at
// (1e-10, 1e-12), and the lsq counter budgets.
func DefaultOptions() Options {
	return Options{
		checker:        lsq.RMSChecker(1e-10, 1e-12),
		maxEvaluations: lsq.DefaultMaxEvaluations,
		maxIterations:  lsq.DefaultMaxIterations,
	}
}

// WithStart sets the initial parameter guess. The slice is copied at fit
// time; its length fixes the number of fitted parameters.
func WithStart(start []float64) Option {
	return func(o *Options) { o.start = start }
}

// WithChecker replaces the convergence checker. A nil checker clears it,
// which makes the fit fail with lsq.ErrNilChecker.
func WithChecker(c lsq.EvaluationChecker) Option {
	return func(o *Options) { o.checker = c }
}

// WithMaxEvaluations bounds the model calls of a single fit. Panics if
// n <= 0.
func WithMaxEvaluations(n int) Option {
	if n <= 0 {
		panic(panicBadMaxEvaluations)
	}
	return func(o *Options) { o.maxEvaluations = n }
}

// WithMaxIterations bounds the Gauss-Newton iterations of a single fit.
// Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicBadMaxIterations)
	}
	return func(o *Options) { o.maxIterations = n }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
