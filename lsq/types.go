// SPDX-License-Identifier: MIT

// Package lsq: core contracts and sentinel errors.
// All algorithms return these sentinels and tests match them via errors.Is.
// Panics are reserved for programmer errors (invalid option values).

package lsq

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDimensionMismatch is returned when target, weight, model output or
	// Jacobian dimensions disagree.
	ErrDimensionMismatch = errors.New("lsq: dimension mismatch")

	// ErrSingular is returned when a matrix decomposition meets a rank
	// deficiency: a covariance pseudo-inverse whose R diagonal falls below
	// the caller's threshold, or a Gauss-Newton step with a singular
	// Jacobian.
	ErrSingular = errors.New("lsq: singular problem")

	// ErrNotPositiveDefinite is returned when a weight matrix has a negative
	// eigenvalue, so no real square root exists.
	ErrNotPositiveDefinite = errors.New("lsq: weight matrix is not positive definite")

	// ErrTooManyEvaluations is returned by the evaluation counter when its
	// budget is exhausted.
	ErrTooManyEvaluations = errors.New("lsq: too many model evaluations")

	// ErrTooManyIterations is returned by the iteration counter when its
	// budget is exhausted.
	ErrTooManyIterations = errors.New("lsq: too many iterations")

	// ErrMissingModel is returned by Build when no model function was set.
	ErrMissingModel = errors.New("lsq: model function not set")

	// ErrMissingTarget is returned by Build when no target vector was set.
	ErrMissingTarget = errors.New("lsq: target vector not set")

	// ErrMissingStart is returned by Build when no start point was set.
	ErrMissingStart = errors.New("lsq: start point not set")

	// ErrNilChecker is returned by GaussNewton when the problem carries no
	// convergence checker: without one the loop could never terminate.
	ErrNilChecker = errors.New("lsq: nil convergence checker")
)

// Counter budgets used when the caller does not set explicit limits.
const (
	// DefaultMaxEvaluations bounds model calls per problem.
	DefaultMaxEvaluations = 1000
	// DefaultMaxIterations bounds optimizer iterations per problem.
	DefaultMaxIterations = 1000
)

// Model computes the model value and its Jacobian at point.
// The returned value has one entry per observation; the Jacobian has one
// row per observation and one column per parameter.  The point passed in
// is a private copy: the model may read it freely but must not retain it.
type Model func(point *mat.VecDense) (value *mat.VecDense, jacobian *mat.Dense, err error)

// ParameterValidator adjusts a candidate point before the model sees it,
// e.g. clamping parameters to a feasible box.  It receives a private copy
// and returns the vector to evaluate (returning its argument is fine).
type ParameterValidator func(point *mat.VecDense) *mat.VecDense

// Evaluation is an immutable snapshot of a Problem at one point.
//
// Point, Residuals and Jacobian are the primitive accessors; everything
// else is derived from them on demand.  Residuals are target − value, so
// for a perfect fit they vanish.
type Evaluation interface {
	// Point returns the evaluated parameter vector.
	Point() *mat.VecDense
	// Residuals returns target − value, one entry per observation.
	Residuals() *mat.VecDense
	// Jacobian returns the model Jacobian at Point, observations × parameters.
	Jacobian() *mat.Dense
	// Cost returns the Euclidean norm of the residuals.
	Cost() float64
	// RMS returns the root-mean-square residual, √(Cost²/observations).
	RMS() float64
	// Covariances returns (JᵀJ)⁻¹ computed by QR decomposition.
	// Any diagonal entry of R with magnitude at or below threshold marks
	// the problem singular and yields ErrSingular.
	Covariances(threshold float64) (*mat.Dense, error)
	// Sigma returns the square roots of the Covariances diagonal, one
	// standard deviation estimate per parameter.
	Sigma(threshold float64) (*mat.VecDense, error)
}

// Problem is a complete least-squares problem: model, observations,
// start point, counters and convergence policy.
//
// The counters are owned by the problem and live for its whole lifetime;
// they are never reset implicitly.  Problems are not safe for concurrent
// use.
type Problem interface {
	// Start returns the initial guess.
	Start() *mat.VecDense
	// ObservationSize returns the number of observations (target length).
	ObservationSize() int
	// ParameterSize returns the number of model parameters (start length).
	ParameterSize() int
	// Evaluate runs the model at point and wraps the outcome in an
	// Evaluation.  The point is defensively copied first.
	Evaluate(point *mat.VecDense) (Evaluation, error)
	// EvaluationCounter returns the counter charged per model call.
	EvaluationCounter() *Incrementor
	// IterationCounter returns the counter charged per optimizer iteration.
	IterationCounter() *Incrementor
	// ConvergenceChecker returns the configured checker, or nil.
	ConvergenceChecker() EvaluationChecker
}

// EvaluationChecker decides convergence from two consecutive evaluations.
// It must be pure: optimizers may call it with the same pair repeatedly.
type EvaluationChecker func(iteration int, previous, current Evaluation) bool

// VectorChecker decides convergence from raw point and value slices, for
// callers that already have a checker in that shape.
type VectorChecker func(iteration int, prevPoint, prevValue, curPoint, curValue []float64) bool

// Optimum is the result of an optimizer run: the final Evaluation plus the
// counter readings at the moment of convergence.
type Optimum interface {
	Evaluation
	// Evaluations returns how many model evaluations the run consumed.
	Evaluations() int
	// Iterations returns how many iterations the run consumed.
	Iterations() int
}
