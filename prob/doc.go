// SPDX-License-Identifier: MIT

// Package prob gives validated access to continuous distributions and a
// numeric inverse CDF, on top of gonum's stat/distuv.
//
// 🚀 What is prob?
//
//	The distuv types already carry the full distribution surface (Prob,
//	CDF, Quantile, moments) but accept any parameters silently.  The
//	constructors here reject out-of-domain parameters up front, and the
//	Real interface names the shared surface so code can hold "some
//	continuous distribution" without caring which.
//
// ✨ Key features:
//   - Normal / Uniform / Exponential constructors with ErrBadParameter
//     validation, returning the distuv values unchanged
//   - Real: the five-method distribution interface distuv types satisfy
//     as-is
//   - QuantileBisect: bisection inverse CDF for distributions without an
//     analytic Quantile (mixtures, empirical CDFs, truncations)
//
// ⚙️ Usage:
//
//	n, _ := prob.Normal(0, 1)
//	x := n.Quantile(0.975)                      // ≈ 1.96, analytic
//
//	q, _ := prob.QuantileBisect(mixture, 0.5, -10, 10, 1e-10)
//	// median of a distribution that only exposes a CDF
//
// Performance: QuantileBisect spends ⌈log₂((hi-lo)/tol)⌉ CDF calls.
//
// See example_test.go for runnable examples.
package prob
