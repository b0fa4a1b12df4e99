// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// primitives is the part of an Evaluation everything else derives from.
type primitives interface {
	Residuals() *mat.VecDense
	Jacobian() *mat.Dense
}

// evalCore derives Cost, RMS, Covariances and Sigma from an evaluation's
// primitive accessors. Concrete evaluations embed it with prim pointing
// back at themselves, so a weighting decorator automatically derives the
// metrics from its weighted residuals and Jacobian.
//
// All methods are pure accessors: nothing is cached between calls.
type evalCore struct {
	prim primitives
}

// Cost returns the Euclidean norm of the residuals.
func (c evalCore) Cost() float64 {
	r := c.prim.Residuals()
	return math.Sqrt(mat.Dot(r, r))
}

// RMS returns the root-mean-square residual.
func (c evalCore) RMS() float64 {
	r := c.prim.Residuals()
	return math.Sqrt(mat.Dot(r, r) / float64(r.Len()))
}

// Covariances returns (JᵀJ)⁻¹ via a QR decomposition of JᵀJ. Any R
// diagonal entry with magnitude at or below threshold marks the normal
// matrix rank deficient and yields ErrSingular.
func (c evalCore) Covariances(threshold float64) (*mat.Dense, error) {
	j := c.prim.Jacobian()
	_, params := j.Dims()

	var jtj mat.Dense
	jtj.Mul(j.T(), j)

	var qr mat.QR
	qr.Factorize(&jtj)
	var r mat.Dense
	qr.RTo(&r)
	for i := 0; i < params; i++ {
		if math.Abs(r.At(i, i)) <= threshold {
			return nil, fmt.Errorf("%w: |R[%d,%d]| = %.6g at threshold %g",
				ErrSingular, i, i, math.Abs(r.At(i, i)), threshold)
		}
	}

	ones := make([]float64, params)
	for i := range ones {
		ones[i] = 1
	}
	var cov mat.Dense
	if err := qr.SolveTo(&cov, false, mat.NewDiagDense(params, ones)); err != nil {
		return nil, fmt.Errorf("%w: inverting JᵀJ: %v", ErrSingular, err)
	}
	return &cov, nil
}

// Sigma returns the square roots of the Covariances diagonal.
func (c evalCore) Sigma(threshold float64) (*mat.VecDense, error) {
	cov, err := c.Covariances(threshold)
	if err != nil {
		return nil, err
	}
	params, _ := cov.Dims()
	sig := mat.NewVecDense(params, nil)
	for i := 0; i < params; i++ {
		sig.SetVec(i, math.Sqrt(cov.At(i, i)))
	}
	return sig, nil
}

// unweightedEvaluation is the evaluation produced by a base problem: the
// model outcome at one (already validated and privately owned) point.
type unweightedEvaluation struct {
	evalCore
	point     *mat.VecDense
	residuals *mat.VecDense
	jacobian  *mat.Dense
}

var _ Evaluation = (*unweightedEvaluation)(nil)

// newUnweightedEvaluation bundles a model outcome. The point must already
// be a private copy; residuals are computed here as target − value.
func newUnweightedEvaluation(point, value *mat.VecDense, jacobian *mat.Dense, target *mat.VecDense) *unweightedEvaluation {
	residuals := mat.NewVecDense(target.Len(), nil)
	residuals.SubVec(target, value)
	e := &unweightedEvaluation{point: point, residuals: residuals, jacobian: jacobian}
	e.evalCore = evalCore{prim: e}
	return e
}

// Point implements Evaluation.
func (e *unweightedEvaluation) Point() *mat.VecDense { return e.point }

// Residuals implements Evaluation.
func (e *unweightedEvaluation) Residuals() *mat.VecDense { return e.residuals }

// Jacobian implements Evaluation.
func (e *unweightedEvaluation) Jacobian() *mat.Dense { return e.jacobian }
