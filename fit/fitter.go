// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlnum/lsq"
)

// Fitter runs weighted least-squares fits of one curve against
// observation sets. A Fitter is immutable after construction and may be
// reused across many observation sets; every Fit builds a fresh problem
// with fresh counters.
type Fitter struct {
	curve Curve
	o     Options
}

// NewFitter returns a fitter for the given curve. Panics if curve is nil
// (programmer error, same contract as the option constructors).
func NewFitter(curve Curve, opts ...Option) *Fitter {
	if curve == nil {
		panic("fit: nil curve")
	}
	return &Fitter{curve: curve, o: gatherOptions(opts...)}
}

// Fit runs Gauss-Newton on the accumulated observations and returns the
// optimum, whose point holds the fitted parameters in curve order.
//
// The start point comes from WithStart, or defaults to zeros when the
// curve reports its Arity. Samples with weights other than 1 switch the
// problem to diagonal weighting.
//
// Errors: ErrNoObservations on an empty set, lsq.ErrMissingStart when no
// start is configured and the curve has no Arity, the lsq weighting and
// counter sentinels, and any error from the curve itself.
func (f *Fitter) Fit(obs *Observations) (lsq.Optimum, error) {
	if obs == nil || obs.Len() == 0 {
		return nil, ErrNoObservations
	}
	points := obs.Points()

	target := mat.NewVecDense(len(points), nil)
	for i, p := range points {
		target.SetVec(i, p.Y)
	}

	problem, err := lsq.NewProblem(f.model(points), target, f.startVector(),
		lsq.WithChecker(f.o.checker),
		lsq.WithMaxEvaluations(f.o.maxEvaluations),
		lsq.WithMaxIterations(f.o.maxIterations),
	)
	if err != nil {
		return nil, err
	}
	if weighted(points) {
		problem, err = lsq.WeightDiagonal(problem, obs.Weights())
		if err != nil {
			return nil, err
		}
	}
	return lsq.GaussNewton(problem)
}

// model adapts the curve to the lsq model contract: value i is the curve
// at xᵢ, Jacobian row i is the curve gradient at xᵢ.
func (f *Fitter) model(points []ObservedPoint) lsq.Model {
	return func(point *mat.VecDense) (*mat.VecDense, *mat.Dense, error) {
		param := make([]float64, point.Len())
		for i := range param {
			param[i] = point.AtVec(i)
		}
		value := mat.NewVecDense(len(points), nil)
		jacobian := mat.NewDense(len(points), len(param), nil)
		for i, p := range points {
			value.SetVec(i, f.curve.Value(param, p.X))
			grad := f.curve.Gradient(param, p.X)
			if len(grad) != len(param) {
				return nil, nil, fmt.Errorf("%w: curve gradient has %d entries for %d parameters",
					lsq.ErrDimensionMismatch, len(grad), len(param))
			}
			jacobian.SetRow(i, grad)
		}
		return value, jacobian, nil
	}
}

// startVector resolves the initial guess: an explicit WithStart wins,
// otherwise zeros sized by the curve's Arity. Nil means no start, which
// NewProblem rejects with lsq.ErrMissingStart.
func (f *Fitter) startVector() *mat.VecDense {
	if len(f.o.start) > 0 {
		return mat.NewVecDense(len(f.o.start), append([]float64(nil), f.o.start...))
	}
	if a, ok := f.curve.(Aritied); ok && a.Arity() > 0 {
		return mat.NewVecDense(a.Arity(), nil)
	}
	return nil
}

// weighted reports whether any sample deviates from unit weight.
func weighted(points []ObservedPoint) bool {
	for _, p := range points {
		if p.Weight != 1 {
			return true
		}
	}
	return false
}

// Fit is the one-call convenience: NewFitter(curve, opts...).Fit(obs).
func Fit(curve Curve, obs *Observations, opts ...Option) (lsq.Optimum, error) {
	return NewFitter(curve, opts...).Fit(obs)
}
