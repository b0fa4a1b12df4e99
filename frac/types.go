package frac

import "errors"

// Sentinel errors returned by fraction constructors and arithmetic.
// Callers must match them via errors.Is.
var (
	// ErrZeroDenominator is returned when a fraction is built with den == 0.
	ErrZeroDenominator = errors.New("frac: zero denominator")

	// ErrDivideByZero is returned when dividing by a zero fraction or
	// taking the reciprocal of zero.
	ErrDivideByZero = errors.New("frac: divide by zero")

	// ErrOverflow is returned when a result cannot be represented in int64.
	ErrOverflow = errors.New("frac: int64 overflow")

	// ErrNoConvergence is returned by Approximate when the continued
	// fraction fails to reach the requested tolerance within the
	// iteration budget.
	ErrNoConvergence = errors.New("frac: continued fraction did not converge")

	// ErrNotFinite is returned by Approximate for NaN or ±Inf input.
	ErrNotFinite = errors.New("frac: value is not finite")
)

// Fraction is an immutable rational number num/den in lowest terms,
// with den > 0.  The zero value is the rational 0 (0/1 after normalization;
// accessors treat den == 0 as 1).
type Fraction struct {
	num int64
	den int64
}

// Frequently used constants.
var (
	Zero = Fraction{0, 1}
	One  = Fraction{1, 1}
	Half = Fraction{1, 2}
)

// Conversion defaults used by FromFloat.
const (
	// DefaultEpsilon is the absolute tolerance FromFloat targets.
	DefaultEpsilon = 1.0e-5
	// DefaultMaxIterations bounds the continued-fraction expansion.
	DefaultMaxIterations = 100
)
