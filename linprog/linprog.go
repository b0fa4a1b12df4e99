// SPDX-License-Identifier: MIT

package linprog

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Problem is a linear program in general form, assembled row by row:
//
//	minimize (or maximize)  cᵀ·x
//	subject to              constraint rows (≤, ≥, =)
//
// Variables are sign-unrestricted unless Solve runs WithNonNegative.
// The zero value is unusable; start with Objective.
//
// Not safe for concurrent use while rows are being added.
type Problem struct {
	c        []float64
	maximize bool
	ineq     [][]float64 // rows of G in G·x ≤ h (≥ rows stored negated)
	ineqRHS  []float64
	eq       [][]float64
	eqRHS    []float64
}

// Objective starts a minimization problem with the given cost
// coefficients, one per variable. Switch the sense with Maximize.
func Objective(c ...float64) *Problem {
	return &Problem{c: append([]float64(nil), c...)}
}

// Maximize flips the sense to maximization.
func (p *Problem) Maximize() *Problem {
	p.maximize = true
	return p
}

// Minimize flips the sense back to minimization (the default).
func (p *Problem) Minimize() *Problem {
	p.maximize = false
	return p
}

// LessEq adds the constraint coeffs·x ≤ rhs.
func (p *Problem) LessEq(coeffs []float64, rhs float64) *Problem {
	p.ineq = append(p.ineq, append([]float64(nil), coeffs...))
	p.ineqRHS = append(p.ineqRHS, rhs)
	return p
}

// GreaterEq adds the constraint coeffs·x ≥ rhs, stored as its negated
// ≤ form.
func (p *Problem) GreaterEq(coeffs []float64, rhs float64) *Problem {
	row := make([]float64, len(coeffs))
	for i, v := range coeffs {
		row[i] = -v
	}
	p.ineq = append(p.ineq, row)
	p.ineqRHS = append(p.ineqRHS, -rhs)
	return p
}

// EqualTo adds the constraint coeffs·x = rhs.
func (p *Problem) EqualTo(coeffs []float64, rhs float64) *Problem {
	p.eq = append(p.eq, append([]float64(nil), coeffs...))
	p.eqRHS = append(p.eqRHS, rhs)
	return p
}

// Solve runs the simplex method and returns the optimal objective value
// and the optimizing point.
//
// The general form is converted to standard form (slack variables plus
// the positive/negative split of each free variable) and handed to the
// gonum simplex. Solver verdicts map to ErrInfeasible and ErrUnbounded;
// configuration mistakes surface as ErrNoObjective, ErrNoConstraints or
// ErrDimensionMismatch before the solver runs.
func (p *Problem) Solve(opts ...Option) (float64, []float64, error) {
	o := gatherOptions(opts...)
	n := len(p.c)
	if n == 0 {
		return 0, nil, ErrNoObjective
	}
	if err := p.checkRowArity(n); err != nil {
		return 0, nil, err
	}

	ineq := p.ineq
	ineqRHS := p.ineqRHS
	if o.nonNegative {
		ineq = append(append([][]float64(nil), ineq...), nonNegativityRows(n)...)
		ineqRHS = append(append([]float64(nil), ineqRHS...), make([]float64, n)...)
	}
	if len(ineq) == 0 && len(p.eq) == 0 {
		return 0, nil, ErrNoConstraints
	}

	c := append([]float64(nil), p.c...)
	if p.maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}

	var g, a mat.Matrix
	var h, b []float64
	if len(ineq) > 0 {
		g = mat.NewDense(len(ineq), n, flatten(ineq))
		h = ineqRHS
	}
	if len(p.eq) > 0 {
		a = mat.NewDense(len(p.eq), n, flatten(p.eq))
		b = p.eqRHS
	}

	cStd, aStd, bStd := lp.Convert(c, g, h, a, b)
	optF, xStd, err := lp.Simplex(cStd, aStd, bStd, o.tolerance, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return 0, nil, ErrInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return 0, nil, ErrUnbounded
	case err != nil:
		return 0, nil, fmt.Errorf("linprog: simplex: %w", err)
	}

	// Standard-form variables are laid out as [x⁺, x⁻, slacks].
	x := make([]float64, n)
	for i := range x {
		x[i] = xStd[i] - xStd[n+i]
	}
	if p.maximize {
		optF = -optF
	}
	return optF, x, nil
}

// checkRowArity verifies every stored row against the variable count.
func (p *Problem) checkRowArity(n int) error {
	for i, row := range p.ineq {
		if len(row) != n {
			return fmt.Errorf("%w: inequality row %d has %d coefficients for %d variables",
				ErrDimensionMismatch, i, len(row), n)
		}
	}
	for i, row := range p.eq {
		if len(row) != n {
			return fmt.Errorf("%w: equality row %d has %d coefficients for %d variables",
				ErrDimensionMismatch, i, len(row), n)
		}
	}
	return nil
}

// nonNegativityRows builds the -xᵢ ≤ 0 rows enforcing x ≥ 0.
func nonNegativityRows(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = -1
	}
	return rows
}

// flatten lays rows out in row-major order for mat.NewDense.
func flatten(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	out := make([]float64, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}
