package euclid

import (
	"math"

	"github.com/katalvlaran/lvlnum/bsp"
)

// Line is an oriented line of the plane, a 2D hyperplane. Its direction
// makes angle with the x axis; offsets are positive on the right-hand
// (plus) side of the direction and negative on the left-hand (minus)
// side. The line doubles as the embedding of the plane onto the line's
// own 1D abscissa axis.
//
// Line is an immutable value.
type Line struct {
	angle        float64
	cos, sin     float64
	originOffset float64
	tolerance    float64
}

var (
	_ bsp.Hyperplane[Vector2D]          = Line{}
	_ bsp.Embedding[Vector2D, Vector1D] = Line{}
	_ bsp.SubHyperplane[Vector2D]       = (*SubLine)(nil)
	_ bsp.Embedded[Vector2D, Vector1D]  = (*SubLine)(nil)
)

// NewLineFromPoints builds the oriented line going from p1 towards p2.
// Coincident points degenerate to the horizontal line through p1.
func NewLineFromPoints(p1, p2 Vector2D, tolerance float64) Line {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return Line{angle: 0, cos: 1, sin: 0, originOffset: p1.Y, tolerance: tolerance}
	}
	return Line{
		angle:        math.Pi + math.Atan2(-dy, -dx),
		cos:          dx / d,
		sin:          dy / d,
		originOffset: (p2.X*p1.Y - p1.X*p2.Y) / d,
		tolerance:    tolerance,
	}
}

// NewLine builds the oriented line through p with direction angle
// (radians, counterclockwise from the x axis).
func NewLine(p Vector2D, angle, tolerance float64) Line {
	a := normalizeAngle(angle)
	cos, sin := math.Cos(a), math.Sin(a)
	return Line{
		angle:        a,
		cos:          cos,
		sin:          sin,
		originOffset: cos*p.Y - sin*p.X,
		tolerance:    tolerance,
	}
}

// normalizeAngle wraps an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Angle returns the direction angle in [0, 2π).
func (l Line) Angle() float64 { return normalizeAngle(l.angle) }

// Reverse returns the same line with flipped orientation: the plus and
// minus sides swap and abscissas negate.
func (l Line) Reverse() Line {
	reversed := l.angle + math.Pi
	if l.angle >= math.Pi {
		reversed = l.angle - math.Pi
	}
	return Line{
		angle:        reversed,
		cos:          -l.cos,
		sin:          -l.sin,
		originOffset: -l.originOffset,
		tolerance:    l.tolerance,
	}
}

// Copy implements bsp.Hyperplane. The value is immutable, so the receiver
// itself is returned.
func (l Line) Copy() bsp.Hyperplane[Vector2D] { return l }

// Offset returns the signed distance from point to the line, negative on
// the left of the direction.
func (l Line) Offset(point Vector2D) float64 {
	return l.sin*point.X - l.cos*point.Y + l.originOffset
}

// ParallelOffset returns the signed distance between the receiver and a
// parallel line, accounting for their relative orientations.
func (l Line) ParallelOffset(other Line) float64 {
	if l.cos*other.cos+l.sin*other.sin > 0 {
		return l.originOffset - other.originOffset
	}
	return l.originOffset + other.originOffset
}

// Project returns the orthogonal projection of point onto the line.
func (l Line) Project(point Vector2D) Vector2D {
	return l.ToSpace(l.ToSubSpace(point))
}

// Tolerance implements bsp.Hyperplane.
func (l Line) Tolerance() float64 { return l.tolerance }

// Contains reports whether point lies on the line, within tolerance.
func (l Line) Contains(point Vector2D) bool {
	return math.Abs(l.Offset(point)) < l.tolerance
}

// DistanceTo returns the unsigned distance from point to the line.
func (l Line) DistanceTo(point Vector2D) float64 {
	return math.Abs(l.Offset(point))
}

// SameOrientationAs reports whether other, known to share the same locus,
// points the same way.
func (l Line) SameOrientationAs(other bsp.Hyperplane[Vector2D]) bool {
	o := other.(Line)
	return l.sin*o.sin+l.cos*o.cos >= 0
}

// ToSubSpace returns the abscissa of point along the line.
func (l Line) ToSubSpace(point Vector2D) Vector1D {
	return Vector1D{X: l.cos*point.X + l.sin*point.Y}
}

// ToSpace lifts an abscissa back to the plane point it designates.
func (l Line) ToSpace(point Vector1D) Vector2D {
	return Vector2D{
		X: point.X*l.cos - l.originOffset*l.sin,
		Y: point.X*l.sin + l.originOffset*l.cos,
	}
}

// PointAt returns the plane point at the given abscissa and signed offset
// from the line.
func (l Line) PointAt(abscissa Vector1D, offset float64) Vector2D {
	d := offset - l.originOffset
	return Vector2D{
		X: abscissa.X*l.cos + d*l.sin,
		Y: abscissa.X*l.sin - d*l.cos,
	}
}

// Intersection returns the intersection point with another line, with
// false for (anti)parallel lines.
func (l Line) Intersection(other Line) (Vector2D, bool) {
	d := l.sin*other.cos - other.sin*l.cos
	if math.Abs(d) < l.tolerance {
		return Vector2D{}, false
	}
	return Vector2D{
		X: (l.cos*other.originOffset - other.cos*l.originOffset) / d,
		Y: (l.sin*other.originOffset - other.sin*l.originOffset) / d,
	}, true
}

// WholeHyperplane returns the sub-hyperplane covering the line entirely.
func (l Line) WholeHyperplane() bsp.SubHyperplane[Vector2D] {
	return NewSubLine(l, FullLine(l.tolerance))
}

// WholeSpace returns the whole plane as a region.
func (l Line) WholeSpace() bsp.Region[Vector2D] {
	return FullPlane(l.tolerance)
}
