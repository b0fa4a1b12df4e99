// SPDX-License-Identifier: MIT

// Package fit fits parametric curves to weighted observations by
// nonlinear least squares, on top of the lsq framework.
//
// 🚀 What is fit?
//
//	A Curve is a parametric model y = f(param, x) exposing its value and
//	its gradient with respect to the parameters.  An Observations
//	accumulator collects weighted samples (x, y, w).  A Fitter glues the
//	two into an lsq.Problem (one residual per sample, diagonal weighting
//	when weights differ from 1) and runs Gauss-Newton.
//
// ✨ Key features:
//   - Observations accumulator with per-sample weights and slice views
//     (ToSlices, Weights, WSqrt)
//   - Curve interface small enough to implement in five lines; curves
//     reporting an Arity get a zero start for free
//   - Polynomial(degree): the power-basis curve, linear in its
//     coefficients, so exact data is recovered in a single step
//   - every Fit builds a fresh problem with fresh counters, so one
//     Fitter serves many datasets
//
// ⚙️ Usage:
//
//	obs := fit.NewObservations()
//	obs.Add(0, 1)                 // y = 1 + 2x sampled at 0, 1, 2
//	obs.Add(1, 3)
//	obs.Add(2, 5)
//
//	opt, err := fit.Fit(fit.Polynomial(1), obs)
//	// opt.Point() ≈ (1, 2): intercept 1, slope 2
//
// Performance: a fit of m samples with n parameters costs O(m·n²) per
// Gauss-Newton iteration for the QR step; linear curves converge in one
// step plus two confirming evaluations.
//
// See example_test.go for runnable examples.
package fit
