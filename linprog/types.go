// SPDX-License-Identifier: MIT

package linprog

import "errors"

// Sentinel errors reported by Solve. Configuration mistakes surface
// before the simplex runs; ErrInfeasible and ErrUnbounded translate the
// verdicts of the underlying solver.
var (
	// ErrNoObjective is returned when the objective has no coefficients.
	ErrNoObjective = errors.New("linprog: empty objective")

	// ErrNoConstraints is returned when a problem carries no constraint
	// rows at all; with free variables such a program is never bounded.
	ErrNoConstraints = errors.New("linprog: no constraints")

	// ErrDimensionMismatch is returned when a constraint row's
	// coefficient count differs from the objective's.
	ErrDimensionMismatch = errors.New("linprog: dimension mismatch")

	// ErrInfeasible is returned when no point satisfies the constraints.
	ErrInfeasible = errors.New("linprog: infeasible")

	// ErrUnbounded is returned when the objective improves without limit.
	ErrUnbounded = errors.New("linprog: unbounded")
)
