// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// WeightMatrix returns a problem whose evaluations are weighted by the
// symmetric positive semi-definite matrix w: every Evaluation produced by
// p is wrapped so that its residuals become √w·r and its Jacobian √w·J.
//
// The square root is computed once, here: element-wise for diagonal
// matrices, through a symmetric eigendecomposition otherwise. Wrapped
// evaluations share that single matrix and re-derive their weighted
// views on every accessor call.
//
// Errors:
//   - ErrDimensionMismatch when w is not observations × observations.
//   - ErrNotPositiveDefinite when w has a negative eigenvalue.
//   - ErrSingular when the eigendecomposition fails to converge.
func WeightMatrix(p Problem, w mat.Symmetric) (Problem, error) {
	if w.SymmetricDim() != p.ObservationSize() {
		return nil, fmt.Errorf("%w: weight matrix is %dx%d, problem has %d observations",
			ErrDimensionMismatch, w.SymmetricDim(), w.SymmetricDim(), p.ObservationSize())
	}
	sqrtW, err := matrixSquareRoot(w)
	if err != nil {
		return nil, err
	}
	return &weightedProblem{Adapter: NewAdapter(p), sqrtW: sqrtW}, nil
}

// WeightDiagonal is the diagonal-weight shortcut: each observation i is
// weighted by diag[i], so the square root is element-wise.
//
// Errors:
//   - ErrDimensionMismatch when len(diag) differs from the observation
//     count.
//   - ErrNotPositiveDefinite when any weight is negative.
func WeightDiagonal(p Problem, diag []float64) (Problem, error) {
	if len(diag) != p.ObservationSize() {
		return nil, fmt.Errorf("%w: %d weights for %d observations",
			ErrDimensionMismatch, len(diag), p.ObservationSize())
	}
	sqrtW, err := diagonalSquareRoot(diag)
	if err != nil {
		return nil, err
	}
	return &weightedProblem{Adapter: NewAdapter(p), sqrtW: sqrtW}, nil
}

// weightedProblem wraps every Evaluation of the underlying problem in a
// denseWeightedEvaluation sharing one precomputed square-root matrix.
type weightedProblem struct {
	*Adapter
	sqrtW mat.Matrix
}

// Evaluate implements Problem.
func (w *weightedProblem) Evaluate(point *mat.VecDense) (Evaluation, error) {
	unweighted, err := w.Adapter.Evaluate(point)
	if err != nil {
		return nil, err
	}
	return newDenseWeightedEvaluation(unweighted, w.sqrtW), nil
}

// denseWeightedEvaluation decorates an unweighted Evaluation with a
// weight square root. It holds references only: the weighted residuals
// and Jacobian are recomputed on each call, never cached, and the
// original evaluation is never mutated.
type denseWeightedEvaluation struct {
	evalCore
	unweighted Evaluation
	sqrtW      mat.Matrix
}

var _ Evaluation = (*denseWeightedEvaluation)(nil)

func newDenseWeightedEvaluation(unweighted Evaluation, sqrtW mat.Matrix) *denseWeightedEvaluation {
	d := &denseWeightedEvaluation{unweighted: unweighted, sqrtW: sqrtW}
	d.evalCore = evalCore{prim: d}
	return d
}

// Point implements Evaluation; weighting leaves the point untouched.
func (d *denseWeightedEvaluation) Point() *mat.VecDense { return d.unweighted.Point() }

// Residuals implements Evaluation, returning √w · r.
func (d *denseWeightedEvaluation) Residuals() *mat.VecDense {
	r := mat.NewVecDense(d.unweighted.Residuals().Len(), nil)
	r.MulVec(d.sqrtW, d.unweighted.Residuals())
	return r
}

// Jacobian implements Evaluation, returning √w · J.
func (d *denseWeightedEvaluation) Jacobian() *mat.Dense {
	var j mat.Dense
	j.Mul(d.sqrtW, d.unweighted.Jacobian())
	return &j
}

// matrixSquareRoot computes the symmetric square root S with S·S = w.
// Diagonal matrices short-circuit to element-wise square roots; general
// matrices go through V·√Λ·Vᵀ.
func matrixSquareRoot(w mat.Symmetric) (mat.Matrix, error) {
	if d, ok := w.(mat.Diagonal); ok {
		diag := make([]float64, d.Diag())
		for i := range diag {
			diag[i] = d.At(i, i)
		}
		return diagonalSquareRoot(diag)
	}

	var es mat.EigenSym
	if !es.Factorize(w, true) {
		return nil, fmt.Errorf("%w: weight matrix eigendecomposition failed", ErrSingular)
	}
	values := es.Values(nil)
	for _, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("%w: eigenvalue %g", ErrNotPositiveDefinite, v)
		}
	}
	for i, v := range values {
		values[i] = math.Sqrt(v)
	}
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	var tmp, s mat.Dense
	tmp.Mul(&vectors, mat.NewDiagDense(len(values), values))
	s.Mul(&tmp, vectors.T())
	return &s, nil
}

// diagonalSquareRoot builds √diag as a diagonal matrix.
func diagonalSquareRoot(diag []float64) (mat.Matrix, error) {
	sqrt := make([]float64, len(diag))
	for i, v := range diag {
		if v < 0 {
			return nil, fmt.Errorf("%w: weight[%d] = %g", ErrNotPositiveDefinite, i, v)
		}
		sqrt[i] = math.Sqrt(v)
	}
	return mat.NewDiagDense(len(sqrt), sqrt), nil
}
