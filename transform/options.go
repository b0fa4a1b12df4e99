// SPDX-License-Identifier: MIT

// Package transform: functional configuration for the transform calls.

package transform

// Internal panic message (no magic strings).
const panicBadNormalization = "transform: WithNormalization: unknown normalization"

// Options collects the tunable pieces of a transform call.
type Options struct {
	normalization Normalization
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// DefaultOptions returns the documented default: Standard normalization.
func DefaultOptions() Options {
	return Options{normalization: Standard}
}

// WithNormalization selects the normalization convention. Panics on an
// unknown value.
func WithNormalization(n Normalization) Option {
	if n != Standard && n != Unitary {
		panic(panicBadNormalization)
	}
	return func(o *Options) { o.normalization = n }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
