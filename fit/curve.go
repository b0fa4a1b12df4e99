// SPDX-License-Identifier: MIT

package fit

// Curve is a parametric model y = f(param, x). Value evaluates the curve
// at x for the given parameters; Gradient returns ∂f/∂paramⱼ at x, one
// entry per parameter, which the fitter assembles into Jacobian rows.
//
// Implementations must treat param as read-only and must return a
// gradient of exactly len(param) entries.
type Curve interface {
	Value(param []float64, x float64) float64
	Gradient(param []float64, x float64) []float64
}

// Aritied is an optional Curve upgrade reporting the number of
// parameters the curve expects. Fitters use it to default the start
// point to zeros when none is configured.
type Aritied interface {
	Arity() int
}

// PolynomialCurve is the power-basis polynomial
//
//	f(c, x) = c₀ + c₁·x + c₂·x² + … + c_d·x^d.
//
// The coefficient count follows the parameter vector, so the same value
// works for any length; the declared degree only sizes the default start
// point. The model is linear in its coefficients, which lets Gauss-Newton
// land on the least-squares optimum in a single step.
type PolynomialCurve struct {
	degree int
}

// Polynomial returns the power-basis curve of the given degree. Panics
// if degree is negative.
func Polynomial(degree int) PolynomialCurve {
	if degree < 0 {
		panic("fit: negative polynomial degree")
	}
	return PolynomialCurve{degree: degree}
}

// Degree reports the declared degree.
func (p PolynomialCurve) Degree() int { return p.degree }

// Arity reports degree+1, the coefficient count of the default start.
func (p PolynomialCurve) Arity() int { return p.degree + 1 }

// Value evaluates the polynomial at x by Horner's rule.
func (p PolynomialCurve) Value(param []float64, x float64) float64 {
	v := 0.0
	for i := len(param) - 1; i >= 0; i-- {
		v = v*x + param[i]
	}
	return v
}

// Gradient returns the power basis (1, x, x², …) at x; the polynomial is
// linear in its coefficients, so the gradient ignores their values.
func (p PolynomialCurve) Gradient(param []float64, x float64) []float64 {
	grad := make([]float64, len(param))
	pow := 1.0
	for i := range grad {
		grad[i] = pow
		pow *= x
	}
	return grad
}
