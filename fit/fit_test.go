// SPDX-License-Identifier: MIT
package fit_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/fit"
	"github.com/katalvlaran/lvlnum/lsq"
)

// expCurve is the two-parameter decay a·exp(b·x). It deliberately does
// not report an Arity, so fits need an explicit start.
type expCurve struct{}

func (expCurve) Value(param []float64, x float64) float64 {
	return param[0] * math.Exp(param[1]*x)
}

func (expCurve) Gradient(param []float64, x float64) []float64 {
	e := math.Exp(param[1] * x)
	return []float64{e, param[0] * x * e}
}

// badCurve returns a gradient of the wrong length.
type badCurve struct{}

func (badCurve) Value(param []float64, x float64) float64      { return param[0] }
func (badCurve) Gradient(param []float64, x float64) []float64 { return []float64{1, 2, 3} }

// coefficients flattens an optimum's point for comparison.
func coefficients(opt lsq.Optimum) []float64 {
	out := make([]float64, opt.Point().Len())
	for i := range out {
		out[i] = opt.Point().AtVec(i)
	}
	return out
}

// TestPolynomial_ValueAndGradient checks Horner evaluation and the power
// basis on a cubic-sized coefficient set.
func TestPolynomial_ValueAndGradient(t *testing.T) {
	p := fit.Polynomial(2)

	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, 3, p.Arity())
	assert.InDelta(t, 17.0, p.Value([]float64{1, 2, 3}, 2), 1e-12, "1 + 2·2 + 3·4")
	assert.Equal(t, []float64{1, 2, 4}, p.Gradient([]float64{1, 2, 3}, 2))
}

// TestPolynomial_NegativeDegreePanics documents the programmer-error
// contract of the constructor.
func TestPolynomial_NegativeDegreePanics(t *testing.T) {
	assert.Panics(t, func() { fit.Polynomial(-1) })
}

// TestFit_LineExact recovers intercept and slope from exact samples of
// y = 1 + 2x, using the Arity-provided zero start.
func TestFit_LineExact(t *testing.T) {
	obs := fit.NewObservations()
	obs.Add(0, 1)
	obs.Add(1, 3)
	obs.Add(2, 5)

	opt, err := fit.Fit(fit.Polynomial(1), obs)
	require.NoError(t, err)

	if diff := cmp.Diff([]float64{1, 2}, coefficients(opt), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("coefficients mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 0.0, opt.Cost(), 1e-9, "exact data leaves no residual")
	assert.Equal(t, 3, opt.Iterations(), "linear curve: step, confirm, converge")
}

// TestFit_ParabolaExact recovers three coefficients from exact samples of
// y = 2 - x + 0.5x².
func TestFit_ParabolaExact(t *testing.T) {
	truth := []float64{2, -1, 0.5}
	curve := fit.Polynomial(2)
	obs := fit.NewObservations()
	for _, x := range []float64{-2, -1, 0, 1, 2} {
		obs.Add(x, curve.Value(truth, x))
	}

	opt, err := fit.Fit(curve, obs)
	require.NoError(t, err)

	if diff := cmp.Diff(truth, coefficients(opt), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("coefficients mismatch (-want +got):\n%s", diff)
	}
}

// TestFit_OverdeterminedLeastSquares checks the classic normal-equation
// solution for an inconsistent line fit: points (0,0), (1,1), (2,1) give
// y = 1/6 + x/2 with cost √(1/6).
func TestFit_OverdeterminedLeastSquares(t *testing.T) {
	obs := fit.NewObservations()
	obs.Add(0, 0)
	obs.Add(1, 1)
	obs.Add(2, 1)

	opt, err := fit.Fit(fit.Polynomial(1), obs)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/6.0, opt.Point().AtVec(0), 1e-9)
	assert.InDelta(t, 0.5, opt.Point().AtVec(1), 1e-9)
	assert.InDelta(t, math.Sqrt(1.0/6.0), opt.Cost(), 1e-9)
}

// TestFit_ZeroWeightDropsSample gives an outlier zero weight: the fit
// must match the line through the two remaining samples exactly.
func TestFit_ZeroWeightDropsSample(t *testing.T) {
	obs := fit.NewObservations()
	obs.Add(0, 0)
	obs.Add(1, 1)
	obs.AddWeighted(2, 5, 0)

	opt, err := fit.Fit(fit.Polynomial(1), obs)
	require.NoError(t, err)

	if diff := cmp.Diff([]float64{0, 1}, coefficients(opt), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("coefficients mismatch (-want +got):\n%s", diff)
	}
}

// TestFit_WeightsChangeTheOptimum runs the inconsistent line fit twice,
// once unweighted and once with the last sample emphasized, and checks
// the optimum moves toward the heavy sample.
func TestFit_WeightsChangeTheOptimum(t *testing.T) {
	build := func(w float64) *fit.Observations {
		obs := fit.NewObservations()
		obs.Add(0, 0)
		obs.Add(1, 1)
		obs.AddWeighted(2, 1, w)
		return obs
	}

	plain, err := fit.Fit(fit.Polynomial(1), build(1))
	require.NoError(t, err)
	heavy, err := fit.Fit(fit.Polynomial(1), build(100))
	require.NoError(t, err)

	plainAt2 := fit.Polynomial(1).Value(coefficients(plain), 2)
	heavyAt2 := fit.Polynomial(1).Value(coefficients(heavy), 2)
	assert.Less(t, math.Abs(heavyAt2-1), math.Abs(plainAt2-1),
		"the heavy sample must be reproduced more closely")
}

// TestFit_NonlinearExponential recovers (a, b) from exact samples of
// 2·exp(-0.5·x), starting the iteration at (1.5, -0.4).
func TestFit_NonlinearExponential(t *testing.T) {
	truth := []float64{2, -0.5}
	obs := fit.NewObservations()
	for _, x := range []float64{0, 0.5, 1, 1.5, 2, 3} {
		obs.Add(x, expCurve{}.Value(truth, x))
	}

	opt, err := fit.Fit(expCurve{}, obs,
		fit.WithStart([]float64{1.5, -0.4}),
		fit.WithMaxIterations(200),
		fit.WithMaxEvaluations(200),
	)
	require.NoError(t, err)

	if diff := cmp.Diff(truth, coefficients(opt), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("coefficients mismatch (-want +got):\n%s", diff)
	}
}

// TestFit_MissingStart verifies that a curve without an Arity needs an
// explicit start point.
func TestFit_MissingStart(t *testing.T) {
	obs := fit.NewObservations()
	obs.Add(0, 2)
	obs.Add(1, 1)

	_, err := fit.Fit(expCurve{}, obs)
	assert.ErrorIs(t, err, lsq.ErrMissingStart)
}

// TestFit_NoObservations rejects empty and nil observation sets.
func TestFit_NoObservations(t *testing.T) {
	_, err := fit.Fit(fit.Polynomial(1), fit.NewObservations())
	assert.ErrorIs(t, err, fit.ErrNoObservations)

	_, err = fit.Fit(fit.Polynomial(1), nil)
	assert.ErrorIs(t, err, fit.ErrNoObservations)
}

// TestFit_GradientLengthMismatch surfaces a curve returning a malformed
// gradient as a dimension error.
func TestFit_GradientLengthMismatch(t *testing.T) {
	obs := fit.NewObservations()
	obs.Add(0, 1)
	obs.Add(1, 1)

	_, err := fit.Fit(badCurve{}, obs, fit.WithStart([]float64{0}))
	assert.ErrorIs(t, err, lsq.ErrDimensionMismatch)
}

// TestFit_NegativeWeight surfaces the weighting sentinel from lsq.
func TestFit_NegativeWeight(t *testing.T) {
	obs := fit.NewObservations()
	obs.Add(0, 0)
	obs.Add(1, 1)
	obs.AddWeighted(2, 2, -3)

	_, err := fit.Fit(fit.Polynomial(1), obs)
	assert.ErrorIs(t, err, lsq.ErrNotPositiveDefinite)
}

// TestFitter_Reuse runs one fitter against two datasets and checks the
// results stay independent.
func TestFitter_Reuse(t *testing.T) {
	fitter := fit.NewFitter(fit.Polynomial(1))

	first := fit.NewObservations()
	first.Add(0, 0)
	first.Add(1, 1)
	second := fit.NewObservations()
	second.Add(0, 3)
	second.Add(1, 3)

	a, err := fitter.Fit(first)
	require.NoError(t, err)
	b, err := fitter.Fit(second)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, a.Point().AtVec(1), 1e-9, "first dataset has slope 1")
	assert.InDelta(t, 0.0, b.Point().AtVec(1), 1e-9, "second dataset is flat")
}

// TestFit_PanicContracts covers the programmer-error panics of the
// constructors and options.
func TestFit_PanicContracts(t *testing.T) {
	assert.Panics(t, func() { fit.NewFitter(nil) })
	assert.Panics(t, func() { fit.WithMaxIterations(0) })
	assert.Panics(t, func() { fit.WithMaxEvaluations(-5) })
}
