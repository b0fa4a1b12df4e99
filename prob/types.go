// SPDX-License-Identifier: MIT

package prob

import "errors"

// Sentinel errors of the package.
var (
	// ErrBadParameter is returned by distribution constructors for
	// parameters outside the distribution's domain.
	ErrBadParameter = errors.New("prob: bad distribution parameter")

	// ErrBadProbability is returned when a probability argument falls
	// outside [0, 1] or is NaN.
	ErrBadProbability = errors.New("prob: probability outside [0, 1]")

	// ErrBadBracket is returned when a quantile search bracket is empty
	// or does not straddle the requested probability.
	ErrBadBracket = errors.New("prob: bad quantile bracket")
)

// Real is a continuous univariate distribution: density, cumulative
// probability, its inverse, and the first two moments. The gonum distuv
// types (Normal, Uniform, Exponential, ...) satisfy it as-is.
type Real interface {
	Prob(x float64) float64
	CDF(x float64) float64
	Quantile(p float64) float64
	Mean() float64
	Variance() float64
}

// CDFer is the minimal surface QuantileBisect needs: a nondecreasing
// cumulative distribution function.
type CDFer interface {
	CDF(x float64) float64
}
