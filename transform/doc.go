// SPDX-License-Identifier: MIT

// Package transform exposes the discrete Fourier transform with explicit
// normalization conventions, delegating the butterfly arithmetic to
// gonum's dsp/fourier kernels.
//
// 🚀 What is transform?
//
//	Three calls: FFT for complex sequences, Inverse to undo it, Real for
//	the half spectrum of real-valued samples.  Each accepts a
//	Normalization option deciding where the 1/n factor lives:
//
//	  Standard  forward ×1      inverse ×1/n
//	  Unitary   forward ×1/√n   inverse ×1/√n
//
// ✨ Key features:
//   - any input length (the kernels fall back to mixed-radix plans, no
//     power-of-two requirement)
//   - inputs are never modified; every call returns a fresh slice
//   - Inverse(FFT(x)) == x under either normalization
//   - Real returns the n/2+1 non-redundant bins of a real sequence
//
// ⚙️ Usage:
//
//	spectrum, _ := transform.FFT(samples)
//	back, _ := transform.Inverse(spectrum)               // back ≈ samples
//	iso, _ := transform.FFT(samples, transform.WithNormalization(transform.Unitary))
//
// Performance: O(n·log n) for smooth lengths, degrading gracefully for
// large prime factors.
//
// See example_test.go for runnable examples.
package transform
