// SPDX-License-Identifier: MIT

package lsq

// optimum bundles a final evaluation with the counter readings taken at
// the moment the optimizer stopped.
type optimum struct {
	Evaluation
	evaluations int
	iterations  int
}

var _ Optimum = optimum{}

// NewOptimum packs an optimizer result. External optimizers driving a
// Problem use it to return results in the shape GaussNewton produces.
func NewOptimum(e Evaluation, evaluations, iterations int) Optimum {
	return optimum{Evaluation: e, evaluations: evaluations, iterations: iterations}
}

// Evaluations implements Optimum.
func (o optimum) Evaluations() int { return o.evaluations }

// Iterations implements Optimum.
func (o optimum) Iterations() int { return o.iterations }
