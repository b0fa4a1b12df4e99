// SPDX-License-Identifier: MIT

package lsq

import "gonum.org/v1/gonum/mat"

// Adapter delegates every Problem method to a wrapped problem. It is the
// base case for decorator chains: embed it and override the methods that
// change. Adapter itself changes nothing.
type Adapter struct {
	Problem
}

// NewAdapter wraps a problem without altering any behavior.
func NewAdapter(p Problem) *Adapter {
	return &Adapter{Problem: p}
}

// countingProblem charges an external counter per Evaluate call before
// delegating.
type countingProblem struct {
	*Adapter
	counter *Incrementor
}

// CountEvaluations returns a problem whose Evaluate charges counter
// before delegating to p. The counter's overflow sentinel aborts the
// evaluation once the budget is exhausted.
//
// Counting decorators stack transparently with weighting: the order of
// wrapping only decides whether wrapped or unwrapped evaluations are
// counted, and with one model call per Evaluate both orders agree.
//
// Panics if counter is nil.
func CountEvaluations(p Problem, counter *Incrementor) Problem {
	if counter == nil {
		panic("lsq: CountEvaluations: nil counter")
	}
	return &countingProblem{Adapter: NewAdapter(p), counter: counter}
}

// Evaluate implements Problem.
func (c *countingProblem) Evaluate(point *mat.VecDense) (Evaluation, error) {
	if err := c.counter.Increment(); err != nil {
		return nil, err
	}
	return c.Adapter.Evaluate(point)
}
