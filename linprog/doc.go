// SPDX-License-Identifier: MIT

// Package linprog assembles and solves linear programs in general form,
// with the simplex mechanics delegated to gonum's optimize/convex/lp.
//
// 🚀 What is linprog?
//
//	A Problem collects an objective and constraint rows through a fluent
//	chain, then Solve converts the general form (≤, ≥, = rows over free
//	variables) into the solver's standard form and translates its verdict
//	back: the optimal value, the optimizing point, or a sentinel error.
//
// ✨ Key features:
//   - three row kinds: LessEq, GreaterEq (stored negated), EqualTo
//   - Maximize / Minimize sense on the same problem value
//   - WithNonNegative() for the common x ≥ 0 restriction
//   - ErrInfeasible / ErrUnbounded verdicts as errors.Is-matchable
//     sentinels; configuration mistakes caught before the solver runs
//
// ⚙️ Usage:
//
//	value, x, err := linprog.Objective(3, 4).
//	    Maximize().
//	    LessEq([]float64{1, 2}, 14).
//	    GreaterEq([]float64{3, -1}, 0).
//	    LessEq([]float64{1, -1}, 2).
//	    Solve()
//	// value = 34, x = (6, 4)
//
// Performance: simplex iterations dominate; the conversion to standard
// form doubles the variable count and adds one slack per inequality.
//
// See example_test.go for runnable examples.
package linprog
