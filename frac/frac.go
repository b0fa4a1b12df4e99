package frac

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// New builds the fraction num/den reduced to lowest terms with a positive
// denominator.
//
// Errors:
//   - ErrZeroDenominator if den == 0.
//   - ErrOverflow if the normalized value cannot be represented
//     (den == MinInt64 with no common factor to cancel it).
func New(num, den int64) (Fraction, error) {
	return reduce(num, den)
}

// FromFloat converts value to a fraction using DefaultEpsilon and
// DefaultMaxIterations. See Approximate for the algorithm and errors.
func FromFloat(value float64) (Fraction, error) {
	return Approximate(value, DefaultEpsilon, DefaultMaxIterations)
}

// Approximate expands value as a continued fraction and returns the first
// convergent p/q with |p/q - value| <= epsilon. Numerator and denominator
// magnitudes are capped at MaxInt32 so convergent updates stay exact.
//
// Errors:
//   - ErrNotFinite for NaN or ±Inf input.
//   - ErrOverflow when value or an intermediate convergent exceeds the cap.
//   - ErrNoConvergence when maxIterations expire above the tolerance.
func Approximate(value, epsilon float64, maxIterations int) (Fraction, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Fraction{}, fmt.Errorf("%w: %g", ErrNotFinite, value)
	}
	if maxIterations < 1 {
		maxIterations = 1
	}
	const cap32 = int64(math.MaxInt32)

	// Stage 1 - integral part; an (almost) integer input short-circuits.
	r0 := value
	a0 := int64(math.Floor(r0))
	if a0 < -cap32 || a0 > cap32 {
		return Fraction{}, fmt.Errorf("%w: integral part of %g", ErrOverflow, value)
	}
	if math.Abs(float64(a0)-value) <= epsilon {
		return Fraction{num: a0, den: 1}, nil
	}

	// Stage 2 - convergent recurrence p2/q2 = (a1*p1 + p0)/(a1*q1 + q0).
	p0, q0 := int64(1), int64(0)
	p1, q1 := a0, int64(1)
	var p2, q2 int64
	n := 0
	for {
		n++
		r1 := 1.0 / (r0 - float64(a0))
		a1 := int64(math.Floor(r1))
		if a1 > cap32 {
			return Fraction{}, fmt.Errorf("%w: converting %g", ErrOverflow, value)
		}
		p2 = a1*p1 + p0
		q2 = a1*q1 + q0
		if p2 < -cap32 || p2 > cap32 || q2 > cap32 {
			return Fraction{}, fmt.Errorf("%w: converting %g", ErrOverflow, value)
		}
		convergent := float64(p2) / float64(q2)
		if n >= maxIterations || math.Abs(convergent-value) <= epsilon {
			break
		}
		p0, q0 = p1, q1
		p1, q1 = p2, q2
		a0 = a1
		r0 = r1
	}
	if math.Abs(float64(p2)/float64(q2)-value) > epsilon {
		return Fraction{}, fmt.Errorf("%w: %d iterations for %g", ErrNoConvergence, maxIterations, value)
	}
	return reduce(p2, q2)
}

// Num returns the normalized numerator (carries the sign).
func (f Fraction) Num() int64 { return f.norm().num }

// Den returns the normalized denominator (always positive).
func (f Fraction) Den() int64 { return f.norm().den }

// Float64 returns the closest float64 to the exact ratio.
func (f Fraction) Float64() float64 {
	f = f.norm()
	return float64(f.num) / float64(f.den)
}

// IsZero reports whether the fraction equals 0.
func (f Fraction) IsZero() bool { return f.num == 0 }

// Sign returns -1, 0 or +1 according to the sign of the fraction.
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// Neg returns -f.
func (f Fraction) Neg() (Fraction, error) {
	f = f.norm()
	if f.num == math.MinInt64 {
		return Fraction{}, fmt.Errorf("%w: negating %s", ErrOverflow, f)
	}
	return Fraction{num: -f.num, den: f.den}, nil
}

// Abs returns |f|.
func (f Fraction) Abs() (Fraction, error) {
	if f.num < 0 {
		return f.Neg()
	}
	return f.norm(), nil
}

// Reciprocal returns 1/f.
//
// Errors: ErrDivideByZero for a zero fraction, ErrOverflow when the new
// denominator cannot be represented.
func (f Fraction) Reciprocal() (Fraction, error) {
	f = f.norm()
	if f.num == 0 {
		return Fraction{}, ErrDivideByZero
	}
	return reduce(f.den, f.num)
}

// Add returns f + g in lowest terms.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	return f.addSub(g, false)
}

// Sub returns f - g in lowest terms.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	return f.addSub(g, true)
}

// addSub implements Knuth TAOCP 4.5.1: reduce by d1 = gcd(f.den, g.den)
// before cross-multiplying so intermediates stay as small as possible.
func (f Fraction) addSub(g Fraction, subtract bool) (Fraction, error) {
	f, g = f.norm(), g.norm()
	if f.num == 0 {
		if subtract {
			return g.Neg()
		}
		return g, nil
	}
	if g.num == 0 {
		return f, nil
	}
	d1 := int64(gcd(uint64(f.den), uint64(g.den)))
	t1, ok := mul64(f.num, g.den/d1)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %s +/- %s", ErrOverflow, f, g)
	}
	t2, ok := mul64(g.num, f.den/d1)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %s +/- %s", ErrOverflow, f, g)
	}
	if subtract {
		if t2 == math.MinInt64 {
			return Fraction{}, fmt.Errorf("%w: %s - %s", ErrOverflow, f, g)
		}
		t2 = -t2
	}
	t, ok := add64(t1, t2)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %s +/- %s", ErrOverflow, f, g)
	}
	d2 := int64(gcd(absU64(t), uint64(d1)))
	den, ok := mul64(f.den/d1, g.den/d2)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %s +/- %s", ErrOverflow, f, g)
	}
	return reduce(t/d2, den)
}

// Mul returns f * g in lowest terms, cross-reducing before multiplying.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	f, g = f.norm(), g.norm()
	if f.num == 0 || g.num == 0 {
		return Zero, nil
	}
	d1 := int64(gcd(absU64(f.num), uint64(g.den)))
	d2 := int64(gcd(absU64(g.num), uint64(f.den)))
	num, ok := mul64(f.num/d1, g.num/d2)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %s * %s", ErrOverflow, f, g)
	}
	den, ok := mul64(f.den/d2, g.den/d1)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %s * %s", ErrOverflow, f, g)
	}
	return reduce(num, den)
}

// Div returns f / g in lowest terms.
//
// Errors: ErrDivideByZero when g is zero, ErrOverflow on unrepresentable
// results.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.num == 0 {
		return Fraction{}, ErrDivideByZero
	}
	inv, err := g.Reciprocal()
	if err != nil {
		return Fraction{}, err
	}
	return f.Mul(inv)
}

// Cmp compares f and g exactly, returning -1, 0 or +1. The cross products
// are formed in 128 bits, so no magnitude can distort the answer.
func (f Fraction) Cmp(g Fraction) int {
	f, g = f.norm(), g.norm()
	sf, sg := f.Sign(), g.Sign()
	if sf != sg {
		if sf < sg {
			return -1
		}
		return 1
	}
	if sf == 0 {
		return 0
	}
	hi1, lo1 := bits.Mul64(absU64(f.num), uint64(g.den))
	hi2, lo2 := bits.Mul64(absU64(g.num), uint64(f.den))
	c := 0
	switch {
	case hi1 != hi2:
		if hi1 < hi2 {
			c = -1
		} else {
			c = 1
		}
	case lo1 != lo2:
		if lo1 < lo2 {
			c = -1
		} else {
			c = 1
		}
	}
	return c * sf
}

// String renders "num/den", or just "num" for integral fractions.
func (f Fraction) String() string {
	f = f.norm()
	if f.den == 1 {
		return strconv.FormatInt(f.num, 10)
	}
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.den, 10)
}

// norm maps the zero value Fraction{} onto the canonical 0/1.
func (f Fraction) norm() Fraction {
	if f.den == 0 {
		f.den = 1
	}
	return f
}

// reduce normalizes num/den: lowest terms, positive denominator.
func reduce(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	un, ud := absU64(num), absU64(den)
	if g := gcd(un, ud); g > 1 {
		un /= g
		ud /= g
	}
	const maxMag = uint64(math.MaxInt64)
	if ud > maxMag {
		return Fraction{}, fmt.Errorf("%w: %d/%d", ErrOverflow, num, den)
	}
	neg := (num < 0) != (den < 0)
	var n int64
	switch {
	case !neg:
		if un > maxMag {
			return Fraction{}, fmt.Errorf("%w: %d/%d", ErrOverflow, num, den)
		}
		n = int64(un)
	case un == maxMag+1:
		n = math.MinInt64
	default:
		n = -int64(un)
	}
	return Fraction{num: n, den: int64(ud)}, nil
}

// absU64 returns |n| as uint64; correct for MinInt64.
func absU64(n int64) uint64 {
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	return u
}

// gcd is the Euclidean greatest common divisor; gcd(0, x) = x.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mul64 multiplies with overflow detection.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

// add64 adds with overflow detection.
func add64(a, b int64) (int64, bool) {
	r := a + b
	if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
		return 0, false
	}
	return r, true
}
