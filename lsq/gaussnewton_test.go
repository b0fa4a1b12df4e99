// SPDX-License-Identifier: MIT
package lsq_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlnum/lsq"
)

// TestGaussNewton_Linear drives the solver on the linear fixture and checks
// that it lands on the exact solution (1, 2) with vanishing cost.
func TestGaussNewton_Linear(t *testing.T) {
	problem := newLinearProblem(t, lsq.WithChecker(lsq.RMSChecker(1e-10, 1e-12)))

	opt, err := lsq.GaussNewton(problem)
	require.NoError(t, err)

	want := []float64{1, 2}
	got := []float64{opt.Point().AtVec(0), opt.Point().AtVec(1)}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("solution mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 0.0, opt.Cost(), 1e-9, "residuals must vanish at the solution")
	assert.InDelta(t, 0.0, opt.RMS(), 1e-9, "RMS must vanish at the solution")
}

// TestGaussNewton_CounterReadings checks that the Optimum reports the exact
// number of model evaluations and iterations spent by the solver.
//
// For a linear model the first step already lands on the solution, but the
// checker needs two consecutive evaluations at that point to observe a stable
// RMS, so the run takes exactly three iterations with one evaluation each.
func TestGaussNewton_CounterReadings(t *testing.T) {
	problem := newLinearProblem(t, lsq.WithChecker(lsq.RMSChecker(1e-10, 1e-12)))

	opt, err := lsq.GaussNewton(problem)
	require.NoError(t, err)

	assert.Equal(t, 3, opt.Evaluations(), "one evaluation per iteration")
	assert.Equal(t, 3, opt.Iterations(), "step to solution, confirm, converge")
	assert.Equal(t, 3, problem.EvaluationCounter().Count(), "problem counter must match the optimum")
	assert.Equal(t, 3, problem.IterationCounter().Count(), "problem counter must match the optimum")
}

// TestGaussNewton_Weighted solves the same linear system under a diagonal
// weighting; the solution of a consistent system is invariant to weights.
func TestGaussNewton_Weighted(t *testing.T) {
	base := newLinearProblem(t, lsq.WithChecker(lsq.RMSChecker(1e-10, 1e-12)))
	weighted, err := lsq.WeightDiagonal(base, []float64{4, 9})
	require.NoError(t, err)

	opt, err := lsq.GaussNewton(weighted)
	require.NoError(t, err)

	want := []float64{1, 2}
	got := []float64{opt.Point().AtVec(0), opt.Point().AtVec(1)}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("weighted solution mismatch (-want +got):\n%s", diff)
	}
}

// TestGaussNewton_Nonlinear fits the decay rate of f_i(k) = exp(k·xᵢ) to
// samples generated at k = -0.75, starting from k = -0.5.
func TestGaussNewton_Nonlinear(t *testing.T) {
	xs := []float64{0.5, 1.0, 2.0}
	model := func(point *mat.VecDense) (*mat.VecDense, *mat.Dense, error) {
		k := point.AtVec(0)
		value := mat.NewVecDense(len(xs), nil)
		jacobian := mat.NewDense(len(xs), 1, nil)
		for i, x := range xs {
			value.SetVec(i, math.Exp(k*x))
			jacobian.Set(i, 0, x*math.Exp(k*x))
		}
		return value, jacobian, nil
	}
	target := mat.NewVecDense(len(xs), nil)
	for i, x := range xs {
		target.SetVec(i, math.Exp(-0.75*x))
	}

	problem, err := lsq.NewProblem(model, target, mat.NewVecDense(1, []float64{-0.5}),
		lsq.WithChecker(lsq.RMSChecker(1e-12, 1e-14)),
		lsq.WithMaxIterations(100),
		lsq.WithMaxEvaluations(100),
	)
	require.NoError(t, err)

	opt, err := lsq.GaussNewton(problem)
	require.NoError(t, err)
	assert.InDelta(t, -0.75, opt.Point().AtVec(0), 1e-9, "recovered decay rate")
	assert.Less(t, opt.Iterations(), 20, "smooth one-parameter fit converges quickly")
}

// TestGaussNewton_NilChecker verifies that a problem without a convergence
// checker is rejected up front.
func TestGaussNewton_NilChecker(t *testing.T) {
	problem := newLinearProblem(t)

	_, err := lsq.GaussNewton(problem)
	assert.ErrorIs(t, err, lsq.ErrNilChecker)
}

// TestGaussNewton_Underdetermined verifies that a problem with fewer
// observations than parameters is rejected before any evaluation.
func TestGaussNewton_Underdetermined(t *testing.T) {
	model := func(point *mat.VecDense) (*mat.VecDense, *mat.Dense, error) {
		value := mat.NewVecDense(1, []float64{point.AtVec(0) + point.AtVec(1)})
		jacobian := mat.NewDense(1, 2, []float64{1, 1})
		return value, jacobian, nil
	}
	problem, err := lsq.NewProblem(model, mat.NewVecDense(1, []float64{3}), mat.NewVecDense(2, nil),
		lsq.WithChecker(lsq.RMSChecker(1e-10, 1e-12)))
	require.NoError(t, err)

	_, err = lsq.GaussNewton(problem)
	assert.ErrorIs(t, err, lsq.ErrDimensionMismatch)
	assert.Zero(t, problem.EvaluationCounter().Count(), "no evaluation may be spent on a rejected problem")
}

// TestGaussNewton_IterationBudget exhausts a one-iteration budget: the first
// convergence verdict needs two evaluations, so the run must abort.
func TestGaussNewton_IterationBudget(t *testing.T) {
	problem := newLinearProblem(t,
		lsq.WithChecker(lsq.RMSChecker(1e-10, 1e-12)),
		lsq.WithMaxIterations(1),
	)

	_, err := lsq.GaussNewton(problem)
	assert.ErrorIs(t, err, lsq.ErrTooManyIterations)
}

// TestGaussNewton_EvaluationBudget exhausts the evaluation budget while the
// iteration budget still has room.
func TestGaussNewton_EvaluationBudget(t *testing.T) {
	problem := newLinearProblem(t,
		lsq.WithChecker(func(_ int, _, _ lsq.Evaluation) bool { return false }),
		lsq.WithMaxIterations(100),
		lsq.WithMaxEvaluations(2),
	)

	_, err := lsq.GaussNewton(problem)
	assert.ErrorIs(t, err, lsq.ErrTooManyEvaluations)
	assert.Equal(t, 3, problem.EvaluationCounter().Count(), "the rejected attempt is still recorded")
}

// TestGaussNewton_SingularJacobian verifies that a rank-deficient normal
// system surfaces ErrSingular instead of a silent garbage step.
func TestGaussNewton_SingularJacobian(t *testing.T) {
	model := func(point *mat.VecDense) (*mat.VecDense, *mat.Dense, error) {
		s := point.AtVec(0) + point.AtVec(1)
		value := mat.NewVecDense(2, []float64{s, s})
		jacobian := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
		return value, jacobian, nil
	}
	problem, err := lsq.NewProblem(model, mat.NewVecDense(2, []float64{1, 2}), mat.NewVecDense(2, nil),
		lsq.WithChecker(lsq.RMSChecker(1e-10, 1e-12)))
	require.NoError(t, err)

	_, err = lsq.GaussNewton(problem)
	assert.ErrorIs(t, err, lsq.ErrSingular)
}

// TestGaussNewton_ModelError checks that a model failure aborts the run and
// travels to the caller unchanged.
func TestGaussNewton_ModelError(t *testing.T) {
	boom := errors.New("sensor offline")
	calls := 0
	model := func(point *mat.VecDense) (*mat.VecDense, *mat.Dense, error) {
		calls++
		if calls > 1 {
			return nil, nil, boom
		}
		return linearModel(point)
	}
	problem, err := lsq.NewProblem(model, linearTarget(), linearStart(),
		lsq.WithChecker(lsq.RMSChecker(1e-10, 1e-12)))
	require.NoError(t, err)

	_, err = lsq.GaussNewton(problem)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls, "solver must stop at the failing evaluation")
}

// TestNewOptimum checks that a hand-built optimum reports the wrapped
// evaluation and the recorded counters verbatim.
func TestNewOptimum(t *testing.T) {
	eval := evalAt(t, 1, 1)

	opt := lsq.NewOptimum(eval, 7, 4)

	assert.Equal(t, 7, opt.Evaluations())
	assert.Equal(t, 4, opt.Iterations())
	assert.InDelta(t, eval.Cost(), opt.Cost(), tol, "optimum must delegate to the wrapped evaluation")
}
