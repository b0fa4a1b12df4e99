// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// GaussNewton minimizes a least-squares problem by the classic iteration:
// evaluate the model, solve the linearized step J·Δx = r by QR, move the
// point by Δx, repeat until the problem's convergence checker accepts two
// consecutive evaluations.
//
// The problem's own counters are charged: the iteration counter once per
// loop, the evaluation counter once per model call. Exhausting either
// budget aborts the run with the counter's sentinel, which is the only
// abnormal termination of a well-posed problem.
//
// Errors:
//   - ErrNilChecker when the problem carries no convergence checker.
//   - ErrDimensionMismatch when observations < parameters (the step
//     would be underdetermined).
//   - ErrTooManyIterations / ErrTooManyEvaluations on counter overflow.
//   - ErrSingular when the Jacobian loses rank at some iterate.
//   - Any error returned by the model itself.
func GaussNewton(p Problem) (Optimum, error) {
	checker := p.ConvergenceChecker()
	if checker == nil {
		return nil, ErrNilChecker
	}
	if p.ObservationSize() < p.ParameterSize() {
		return nil, fmt.Errorf("%w: %d observations for %d parameters",
			ErrDimensionMismatch, p.ObservationSize(), p.ParameterSize())
	}

	evaluations := p.EvaluationCounter()
	iterations := p.IterationCounter()
	point := p.Start()

	var previous, current Evaluation
	for {
		if err := iterations.Increment(); err != nil {
			return nil, err
		}
		if err := evaluations.Increment(); err != nil {
			return nil, err
		}

		var err error
		previous = current
		current, err = p.Evaluate(point)
		if err != nil {
			return nil, err
		}
		if previous != nil && checker(iterations.Count(), previous, current) {
			return NewOptimum(current, evaluations.Count(), iterations.Count()), nil
		}

		step, err := solveStep(current)
		if err != nil {
			return nil, err
		}
		point.AddVec(point, step)
	}
}

// solveStep solves J·Δx = r in the least-squares sense via QR.
func solveStep(e Evaluation) (*mat.VecDense, error) {
	var qr mat.QR
	qr.Factorize(e.Jacobian())
	step := mat.NewVecDense(e.Point().Len(), nil)
	if err := qr.SolveVecTo(step, false, e.Residuals()); err != nil {
		return nil, fmt.Errorf("%w: rank-deficient jacobian: %v", ErrSingular, err)
	}
	return step, nil
}
