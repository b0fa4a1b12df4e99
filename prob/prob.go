// SPDX-License-Identifier: MIT

package prob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Internal panic message (no magic strings).
const panicBadTolerance = "prob: QuantileBisect: tol must be > 0"

// Normal returns the normal distribution with mean mu and standard
// deviation sigma. Errors with ErrBadParameter unless sigma > 0.
func Normal(mu, sigma float64) (distuv.Normal, error) {
	if !(sigma > 0) {
		return distuv.Normal{}, fmt.Errorf("%w: sigma = %g, need sigma > 0", ErrBadParameter, sigma)
	}
	return distuv.Normal{Mu: mu, Sigma: sigma}, nil
}

// Uniform returns the continuous uniform distribution on [min, max].
// Errors with ErrBadParameter unless min < max.
func Uniform(min, max float64) (distuv.Uniform, error) {
	if !(min < max) {
		return distuv.Uniform{}, fmt.Errorf("%w: [%g, %g] is not a proper interval", ErrBadParameter, min, max)
	}
	return distuv.Uniform{Min: min, Max: max}, nil
}

// Exponential returns the exponential distribution with the given rate.
// Errors with ErrBadParameter unless rate > 0.
func Exponential(rate float64) (distuv.Exponential, error) {
	if !(rate > 0) {
		return distuv.Exponential{}, fmt.Errorf("%w: rate = %g, need rate > 0", ErrBadParameter, rate)
	}
	return distuv.Exponential{Rate: rate}, nil
}

// QuantileBisect inverts a CDF numerically: it returns x with
// CDF(x) ≈ p, located by bisection inside [lo, hi]. The distribution
// needs no analytic quantile, only a nondecreasing CDF.
//
// The search stops once the bracket is narrower than tol or cannot be
// narrowed further in floating point. Panics if tol <= 0 (programmer
// error); bad arguments return ErrBadProbability or ErrBadBracket.
func QuantileBisect(d CDFer, p, lo, hi, tol float64) (float64, error) {
	if tol <= 0 || math.IsNaN(tol) {
		panic(panicBadTolerance)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: p = %g", ErrBadProbability, p)
	}
	if !(lo < hi) {
		return 0, fmt.Errorf("%w: [%g, %g] is not a proper interval", ErrBadBracket, lo, hi)
	}
	if d.CDF(lo) > p || d.CDF(hi) < p {
		return 0, fmt.Errorf("%w: CDF on [%g, %g] does not reach p = %g", ErrBadBracket, lo, hi, p)
	}

	for hi-lo > tol {
		mid := lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			break
		}
		if d.CDF(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2, nil
}
