// SPDX-License-Identifier: MIT

package lsq

import "gonum.org/v1/gonum/mat"

// Builder accumulates problem configuration through a fluent, mutable
// chain and hands construction over to NewProblem. Zero or one of
// Weight / WeightDiagonal applies; the last call wins.
//
// Use NewBuilder: the zero value carries no counter budgets and is not a
// valid Builder. A Builder may be reused after Build: later Build calls
// produce fresh, independent problems with fresh counters.
type Builder struct {
	model      Model
	target     *mat.VecDense
	start      *mat.VecDense
	weight     mat.Symmetric
	weightDiag []float64
	checker    EvaluationChecker
	validator  ParameterValidator
	maxEvals   int
	maxIters   int
}

// NewBuilder returns a builder carrying the documented defaults.
func NewBuilder() *Builder {
	return &Builder{maxEvals: DefaultMaxEvaluations, maxIters: DefaultMaxIterations}
}

// Model sets the model function.
func (b *Builder) Model(m Model) *Builder {
	b.model = m
	return b
}

// Target sets the observed values the model should reproduce.
func (b *Builder) Target(t *mat.VecDense) *Builder {
	b.target = t
	return b
}

// Start sets the initial guess.
func (b *Builder) Start(s *mat.VecDense) *Builder {
	b.start = s
	return b
}

// Weight sets a full symmetric weight matrix, clearing any diagonal
// weights set before.
func (b *Builder) Weight(w mat.Symmetric) *Builder {
	b.weight = w
	b.weightDiag = nil
	return b
}

// WeightDiagonal sets per-observation weights, clearing any full weight
// matrix set before.
func (b *Builder) WeightDiagonal(diag []float64) *Builder {
	b.weightDiag = diag
	b.weight = nil
	return b
}

// Checker sets the convergence checker.
func (b *Builder) Checker(c EvaluationChecker) *Builder {
	b.checker = c
	return b
}

// ParameterValidator sets the validator applied before each model call.
func (b *Builder) ParameterValidator(v ParameterValidator) *Builder {
	b.validator = v
	return b
}

// MaxEvaluations bounds the model calls. Panics if n <= 0, mirroring
// WithMaxEvaluations.
func (b *Builder) MaxEvaluations(n int) *Builder {
	if n <= 0 {
		panic(panicBadMaxEvaluations)
	}
	b.maxEvals = n
	return b
}

// MaxIterations bounds the optimizer iterations. Panics if n <= 0,
// mirroring WithMaxIterations.
func (b *Builder) MaxIterations(n int) *Builder {
	if n <= 0 {
		panic(panicBadMaxIterations)
	}
	b.maxIters = n
	return b
}

// Build assembles an immutable Problem from the accumulated state.
//
// Errors: the NewProblem configuration sentinels, plus the WeightMatrix /
// WeightDiagonal sentinels when weights were set.
func (b *Builder) Build() (Problem, error) {
	p, err := NewProblem(b.model, b.target, b.start,
		WithMaxEvaluations(b.maxEvals),
		WithMaxIterations(b.maxIters),
		WithChecker(b.checker),
		WithParameterValidator(b.validator),
	)
	if err != nil {
		return nil, err
	}
	switch {
	case b.weight != nil:
		return WeightMatrix(p, b.weight)
	case b.weightDiag != nil:
		return WeightDiagonal(p, b.weightDiag)
	default:
		return p, nil
	}
}
