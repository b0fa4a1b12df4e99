// Package frac implements exact rational arithmetic on int64-backed
// fractions, including conversion from floating-point values via
// continued-fraction expansion.
//
// 🚀 What is frac?
//
//	A Fraction is an immutable, always-normalized ratio num/den with
//	den > 0 and gcd(|num|, den) = 1.  Exact rationals matter wherever
//	binary floating point silently lies:
//	  • symbolic-ish computation & test oracles
//	  • ratio bookkeeping (rates, odds, proportions)
//	  • recovering "nice" constants from measured floats
//
// ✨ Key features:
//   - value semantics: every operation returns a new Fraction
//   - overflow-checked Add/Sub/Mul/Div (cross-reduction keeps
//     intermediates small, Knuth 4.5.1)
//   - FromFloat / Approximate: continued-fraction conversion with
//     configurable tolerance and iteration cap
//   - total ordering via Cmp, exact equality via ==
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/frac"
//
//	a, _ := frac.New(1, 3)
//	b, _ := frac.New(1, 6)
//	sum, _ := a.Add(b)            // 1/2
//	pi, _ := frac.Approximate(math.Pi, 1e-6, 100) // 355/113
//
// Performance:
//
//   - All arithmetic: O(log min(num, den)) for the GCD reductions.
//   - Approximate: O(maxIterations) convergent steps.
//
// See example_test.go for runnable examples.
package frac
