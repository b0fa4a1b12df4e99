// Package lvlnum is your in-memory toolbox for numerical analysis and
// computational geometry — from least-squares fitting to BSP-tree region
// algebra.
//
// 🚀 What is lvlnum?
//
//	A focused numerics library built on the gonum kernels:
//		• Least squares: problems, evaluations, weighting, Gauss-Newton
//		• Curve fitting: weighted observations, polynomial & custom curves
//		• Space partitioning: BSP trees, regions, boolean set operations
//		• Euclidean realizations: intervals on the line, polygons in the plane
//		• Rational arithmetic: exact int64 fractions, continued-fraction conversion
//		• Transforms: FFT with explicit normalization conventions
//		• Linear programming: general-form assembly over the gonum simplex
//		• Distributions: validated constructors + numeric inverse CDF
//
// ✨ Why choose lvlnum?
//
//   - Composable – problems decorate (weighting, counting) without copying
//   - Honest errors – errors.Is-matchable sentinels, no silent NaNs
//   - Generic geometry – one BSP engine, any dimension that can measure distance
//   - gonum underneath – QR, eigen, simplex and FFT kernels, not hand-rolled loops
//
// Under the hood, everything is organized under eight subpackages:
//
//	lsq/       — least-squares problems, evaluations, checkers, Gauss-Newton
//	fit/       — curve fitting over lsq (observations, curves, fitters)
//	bsp/       — generic BSP trees, regions, set operations, boundary projection
//	euclid/    — 1D intervals & 2D polygons realized on the bsp engine
//	frac/      — exact rational arithmetic on int64 fractions
//	transform/ — FFT / inverse / real half-spectrum with normalization options
//	linprog/   — linear programs in general form, simplex verdicts as sentinels
//	prob/      — distribution constructors and bisection quantiles
//
// Quick ASCII example:
//
//	    y
//	    │  ×           × observations
//	    │ ×  ╱── fitted curve
//	    │ ╱×
//	    └──────── x
//
//	three samples and the least-squares line through them.
//
// Dive into the per-package doc.go files for invariants, error contracts
// and runnable examples.
//
//	go get github.com/katalvlaran/lvlnum
package lvlnum
