// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// problem is the base Problem implementation: it owns the model, the
// observations and the counters, and produces unweighted evaluations.
type problem struct {
	model     Model
	target    *mat.VecDense
	start     *mat.VecDense
	checker   EvaluationChecker
	validator ParameterValidator
	evals     *Incrementor
	iters     *Incrementor
}

var _ Problem = (*problem)(nil)

// NewProblem builds a least-squares problem from a model, the observed
// target vector and a start point. Target and start are copied; the
// problem never aliases caller memory.
//
// Errors:
//   - ErrMissingModel when model is nil.
//   - ErrMissingTarget when target is nil or empty.
//   - ErrMissingStart when start is nil or empty.
//
// The problem's counters start at zero and are never reset implicitly:
// construct a new problem for a fresh run.
func NewProblem(model Model, target, start *mat.VecDense, opts ...Option) (Problem, error) {
	if model == nil {
		return nil, ErrMissingModel
	}
	if target == nil || target.Len() == 0 {
		return nil, ErrMissingTarget
	}
	if start == nil || start.Len() == 0 {
		return nil, ErrMissingStart
	}
	o := gatherOptions(opts...)
	return &problem{
		model:     model,
		target:    mat.VecDenseCopyOf(target),
		start:     mat.VecDenseCopyOf(start),
		checker:   o.checker,
		validator: o.validator,
		evals:     NewIncrementor(o.maxEvaluations, ErrTooManyEvaluations),
		iters:     NewIncrementor(o.maxIterations, ErrTooManyIterations),
	}, nil
}

// Start implements Problem, returning a fresh copy so optimizers may
// step on it freely.
func (p *problem) Start() *mat.VecDense { return mat.VecDenseCopyOf(p.start) }

// ObservationSize implements Problem.
func (p *problem) ObservationSize() int { return p.target.Len() }

// ParameterSize implements Problem.
func (p *problem) ParameterSize() int { return p.start.Len() }

// EvaluationCounter implements Problem.
func (p *problem) EvaluationCounter() *Incrementor { return p.evals }

// IterationCounter implements Problem.
func (p *problem) IterationCounter() *Incrementor { return p.iters }

// ConvergenceChecker implements Problem.
func (p *problem) ConvergenceChecker() EvaluationChecker { return p.checker }

// Evaluate implements Problem. The point is copied and, when a validator
// is configured, validated before the model runs; the resulting
// Evaluation owns that private copy. The model's output shapes are
// checked against the problem sizes on every call.
func (p *problem) Evaluate(point *mat.VecDense) (Evaluation, error) {
	if point == nil || point.Len() != p.ParameterSize() {
		return nil, fmt.Errorf("%w: point has %d parameters, problem has %d",
			ErrDimensionMismatch, vecLen(point), p.ParameterSize())
	}
	private := mat.VecDenseCopyOf(point)
	if p.validator != nil {
		private = p.validator(private)
	}

	value, jacobian, err := p.model(private)
	if err != nil {
		return nil, fmt.Errorf("lsq: model evaluation: %w", err)
	}
	if value == nil || value.Len() != p.ObservationSize() {
		return nil, fmt.Errorf("%w: model value has %d entries, target has %d",
			ErrDimensionMismatch, vecLen(value), p.ObservationSize())
	}
	rows, cols := 0, 0
	if jacobian != nil {
		rows, cols = jacobian.Dims()
	}
	if rows != p.ObservationSize() || cols != p.ParameterSize() {
		return nil, fmt.Errorf("%w: jacobian is %dx%d, problem needs %dx%d",
			ErrDimensionMismatch, rows, cols, p.ObservationSize(), p.ParameterSize())
	}

	return newUnweightedEvaluation(private, value, jacobian, p.target), nil
}

// vecLen tolerates nil vectors in error messages.
func vecLen(v *mat.VecDense) int {
	if v == nil {
		return 0
	}
	return v.Len()
}
