package euclid

import (
	"fmt"
	"math"
)

// Vector1D is a point on the real line.
type Vector1D struct {
	X float64
}

// NaN1D is the undefined point returned as barycenter of degenerate sets.
func NaN1D() Vector1D { return Vector1D{X: math.NaN()} }

// Distance returns |v - o|.
func (v Vector1D) Distance(o Vector1D) float64 {
	return math.Abs(v.X - o.X)
}

// IsNaN reports whether the coordinate is NaN.
func (v Vector1D) IsNaN() bool { return math.IsNaN(v.X) }

// String implements fmt.Stringer.
func (v Vector1D) String() string { return fmt.Sprintf("{%g}", v.X) }

// Vector2D is a point in the plane.
type Vector2D struct {
	X, Y float64
}

// NaN2D is the undefined point returned as barycenter of degenerate sets.
func NaN2D() Vector2D { return Vector2D{X: math.NaN(), Y: math.NaN()} }

// Add returns v + o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns k * v.
func (v Vector2D) Scale(k float64) Vector2D {
	return Vector2D{X: k * v.X, Y: k * v.Y}
}

// Dot returns the dot product v · o.
func (v Vector2D) Dot(o Vector2D) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product v × o.
func (v Vector2D) Cross(o Vector2D) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Norm returns the Euclidean length of v.
func (v Vector2D) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vector2D) Distance(o Vector2D) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// IsNaN reports whether any coordinate is NaN.
func (v Vector2D) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// String implements fmt.Stringer.
func (v Vector2D) String() string { return fmt.Sprintf("{%g; %g}", v.X, v.Y) }
