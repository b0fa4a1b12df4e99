package lsq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlnum/lsq"
)

const tol = 1.0e-12

// linearModel is the plane model f(x) = (x₀+x₁, 2x₀−x₁) with a constant
// Jacobian, shared by tests across the package. With target (3, 0) the
// exact solution is x = (1, 2).
func linearModel(point *mat.VecDense) (*mat.VecDense, *mat.Dense, error) {
	value := mat.NewVecDense(2, []float64{
		point.AtVec(0) + point.AtVec(1),
		2*point.AtVec(0) - point.AtVec(1),
	})
	jacobian := mat.NewDense(2, 2, []float64{1, 1, 2, -1})
	return value, jacobian, nil
}

func linearTarget() *mat.VecDense { return mat.NewVecDense(2, []float64{3, 0}) }

func linearStart() *mat.VecDense { return mat.NewVecDense(2, []float64{0, 0}) }

// newLinearProblem builds the shared fixture, failing the test on error.
func newLinearProblem(t *testing.T, opts ...lsq.Option) lsq.Problem {
	t.Helper()
	p, err := lsq.NewProblem(linearModel, linearTarget(), linearStart(), opts...)
	require.NoError(t, err)
	return p
}

// TestEvaluate_Residuals checks residuals, cost and RMS at an off-target
// point: f(1,1) = (2,1), so residuals are (1,−1).
func TestEvaluate_Residuals(t *testing.T) {
	p := newLinearProblem(t)

	e, err := p.Evaluate(mat.NewVecDense(2, []float64{1, 1}))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, e.Residuals().AtVec(0), tol)
	assert.InDelta(t, -1.0, e.Residuals().AtVec(1), tol)
	assert.InDelta(t, math.Sqrt2, e.Cost(), tol)
	assert.InDelta(t, 1.0, e.RMS(), tol, "RMS = √(cost²/observations)")
}

// TestEvaluate_AtSolution verifies the exact-fit case: at the solution
// the residuals vanish along with cost and RMS.
func TestEvaluate_AtSolution(t *testing.T) {
	p := newLinearProblem(t)

	e, err := p.Evaluate(mat.NewVecDense(2, []float64{1, 2}))
	require.NoError(t, err)

	assert.InDelta(t, 0.0, e.Residuals().AtVec(0), tol)
	assert.InDelta(t, 0.0, e.Residuals().AtVec(1), tol)
	assert.InDelta(t, 0.0, e.Cost(), tol)
	assert.InDelta(t, 0.0, e.RMS(), tol)
}

// TestEvaluate_Shapes checks the structural invariants of an Evaluation:
// residual length and Jacobian rows match the observation count, Jacobian
// columns match the point dimension.
func TestEvaluate_Shapes(t *testing.T) {
	p := newLinearProblem(t)

	e, err := p.Evaluate(linearStart())
	require.NoError(t, err)

	rows, cols := e.Jacobian().Dims()
	assert.Equal(t, p.ObservationSize(), e.Residuals().Len())
	assert.Equal(t, p.ObservationSize(), rows)
	assert.Equal(t, p.ParameterSize(), cols)
	assert.Equal(t, p.ParameterSize(), e.Point().Len())
}

// TestEvaluate_DefensiveCopy mutates the caller's point after Evaluate
// and checks the evaluation kept its own private copy.
func TestEvaluate_DefensiveCopy(t *testing.T) {
	p := newLinearProblem(t)

	point := mat.NewVecDense(2, []float64{1, 1})
	e, err := p.Evaluate(point)
	require.NoError(t, err)

	point.SetVec(0, 42)
	assert.InDelta(t, 1.0, e.Point().AtVec(0), tol, "evaluation owns its point")
}

// TestCovariances_Known inverts JᵀJ for the constant Jacobian
// ((1,1),(2,−1)): JᵀJ = ((5,−1),(−1,2)), inverse = ((2,1),(1,5))/9.
func TestCovariances_Known(t *testing.T) {
	p := newLinearProblem(t)
	e, err := p.Evaluate(linearStart())
	require.NoError(t, err)

	cov, err := e.Covariances(1e-14)
	require.NoError(t, err)

	assert.InDelta(t, 2.0/9.0, cov.At(0, 0), 1e-10)
	assert.InDelta(t, 1.0/9.0, cov.At(0, 1), 1e-10)
	assert.InDelta(t, 1.0/9.0, cov.At(1, 0), 1e-10)
	assert.InDelta(t, 5.0/9.0, cov.At(1, 1), 1e-10)

	sigma, err := e.Sigma(1e-14)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2.0/9.0), sigma.AtVec(0), 1e-10)
	assert.InDelta(t, math.Sqrt(5.0/9.0), sigma.AtVec(1), 1e-10)
}

// TestCovariances_Singular evaluates a rank-deficient model and expects
// ErrSingular from the covariance pseudo-inverse.
func TestCovariances_Singular(t *testing.T) {
	flat := func(point *mat.VecDense) (*mat.VecDense, *mat.Dense, error) {
		v := mat.NewVecDense(2, []float64{
			point.AtVec(0) + point.AtVec(1),
			point.AtVec(0) + point.AtVec(1),
		})
		j := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
		return v, j, nil
	}
	p, err := lsq.NewProblem(flat, linearTarget(), linearStart())
	require.NoError(t, err)
	e, err := p.Evaluate(linearStart())
	require.NoError(t, err)

	_, err = e.Covariances(1e-10)
	require.ErrorIs(t, err, lsq.ErrSingular)

	_, err = e.Sigma(1e-10)
	require.ErrorIs(t, err, lsq.ErrSingular, "sigma propagates the covariance failure")
}

// TestCovariances_ThresholdGate raises the threshold above the smallest
// R diagonal entry of a well-posed problem and expects ErrSingular: the
// threshold is the caller's notion of numerically zero.
func TestCovariances_ThresholdGate(t *testing.T) {
	p := newLinearProblem(t)
	e, err := p.Evaluate(linearStart())
	require.NoError(t, err)

	_, err = e.Covariances(1e6)
	require.ErrorIs(t, err, lsq.ErrSingular)
}
