// SPDX-License-Identifier: MIT

// Package lsq: functional configuration for problem construction.
// Options cover the tunable collaborators of a Problem; the required
// pieces (model, target, start) stay positional arguments of NewProblem.
// Constructors panic only on nonsensical values (programmer error).

package lsq

// Internal panic messages (no magic strings).
const (
	panicBadMaxEvaluations = "lsq: WithMaxEvaluations: n must be > 0"
	panicBadMaxIterations  = "lsq: WithMaxIterations: n must be > 0"
)

// Options collects the optional collaborators of a Problem. Fields are
// unexported; public APIs consume ...Option.
type Options struct {
	maxEvaluations int
	maxIterations  int
	checker        EvaluationChecker
	validator      ParameterValidator
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// DefaultOptions returns the documented defaults: DefaultMaxEvaluations
// model calls, DefaultMaxIterations iterations, no convergence checker
// and no parameter validator.
func DefaultOptions() Options {
	return Options{
		maxEvaluations: DefaultMaxEvaluations,
		maxIterations:  DefaultMaxIterations,
	}
}

// WithMaxEvaluations bounds the model calls charged to the problem's
// evaluation counter. Panics if n <= 0.
func WithMaxEvaluations(n int) Option {
	if n <= 0 {
		panic(panicBadMaxEvaluations)
	}
	return func(o *Options) { o.maxEvaluations = n }
}

// WithMaxIterations bounds the iterations charged to the problem's
// iteration counter. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicBadMaxIterations)
	}
	return func(o *Options) { o.maxIterations = n }
}

// WithChecker sets the convergence checker optimizers consult. A nil
// checker clears a previously set one.
func WithChecker(c EvaluationChecker) Option {
	return func(o *Options) { o.checker = c }
}

// WithParameterValidator sets the validator applied to every candidate
// point before the model sees it. A nil validator clears a previously
// set one.
func WithParameterValidator(v ParameterValidator) Option {
	return func(o *Options) { o.validator = v }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
