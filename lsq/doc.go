// SPDX-License-Identifier: MIT

// Package lsq is a least-squares problem and evaluation framework built on
// gonum matrices.
//
// 🚀 What is lsq?
//
//	A Problem bundles everything a least-squares solver needs: a model
//	function (value + Jacobian), a target vector of observed values, a
//	start point, counters, and a convergence checker.  Evaluating a
//	Problem at a point yields an Evaluation: an immutable snapshot from
//	which residuals, cost, RMS, covariances and parameter deviations are
//	derived on demand.
//
//	Problems compose by decoration.  Weighting and evaluation counting
//	wrap an existing Problem without touching it, so concerns stack:
//
//	  base → CountEvaluations → WeightMatrix → optimizer
//
// ✨ Key features:
//   - Evaluation with lazy derived quantities (Cost, RMS, Covariances,
//     Sigma) — nothing is precomputed, nothing is cached
//   - weighting via the square root of a symmetric weight matrix,
//     computed once per decorator (element-wise for diagonal weights,
//     eigendecomposition otherwise)
//   - counters with hard budgets (ErrTooManyEvaluations /
//     ErrTooManyIterations) shared between decorators and optimizers
//   - convergence checking on Evaluation pairs, with an adapter lifting
//     plain point/value checkers
//   - a fluent Builder and a functional-options factory, both validating
//     dimensions up front
//   - GaussNewton: the classic iterate / evaluate / solve / step loop,
//     returning an Optimum that records the counter readings
//
// ⚙️ Usage:
//
//	model := func(p *mat.VecDense) (*mat.VecDense, *mat.Dense, error) {
//	    v := mat.NewVecDense(2, []float64{
//	        p.AtVec(0) + p.AtVec(1),
//	        2*p.AtVec(0) - p.AtVec(1),
//	    })
//	    j := mat.NewDense(2, 2, []float64{1, 1, 2, -1})
//	    return v, j, nil
//	}
//	problem, err := lsq.NewBuilder().
//	    Model(model).
//	    Target(mat.NewVecDense(2, []float64{3, 0})).
//	    Start(mat.NewVecDense(2, []float64{0, 0})).
//	    Checker(lsq.RMSChecker(1e-10, 1e-12)).
//	    Build()
//	if err != nil { ... }
//	opt, err := lsq.GaussNewton(problem) // x ≈ (1, 2)
//
// Performance:
//
//   - Evaluate: one model call plus O(n·p) assembly.
//   - Covariances/Sigma: O(p²·n) for JᵀJ plus a p×p QR factorization.
//   - WeightMatrix setup: O(n³) eigendecomposition, paid once; O(n) for
//     diagonal weights.
//
// Concurrency: Problems carry mutable counters and are not safe for
// concurrent use.  Evaluations are immutable snapshots and may be read
// from any goroutine.
//
// See example_test.go for runnable examples.
package lsq
