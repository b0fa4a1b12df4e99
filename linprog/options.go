// SPDX-License-Identifier: MIT

// Package linprog: functional configuration for Solve.

package linprog

// Internal panic message (no magic strings).
const panicBadTolerance = "linprog: WithTolerance: tol must be > 0"

// defaultTolerance is the optimality tolerance handed to the simplex.
const defaultTolerance = 1e-10

// Options collects the tunable pieces of a Solve call.
type Options struct {
	tolerance   float64
	nonNegative bool
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// DefaultOptions returns the documented defaults: tolerance 1e-10 and
// free (sign-unrestricted) variables.
func DefaultOptions() Options {
	return Options{tolerance: defaultTolerance}
}

// WithTolerance sets the optimality tolerance of the simplex. Panics if
// tol <= 0.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic(panicBadTolerance)
	}
	return func(o *Options) { o.tolerance = tol }
}

// WithNonNegative restricts every variable to x ≥ 0, sparing the caller
// one explicit GreaterEq row per variable.
func WithNonNegative() Option {
	return func(o *Options) { o.nonNegative = true }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
