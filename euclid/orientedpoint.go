package euclid

import "github.com/katalvlaran/lvlnum/bsp"

// OrientedPoint is a hyperplane of the real line: a single point with an
// orientation. With direct orientation the offset of x is x-location, so
// the plus side points towards +∞; reversed orientation flips the sides.
//
// OrientedPoint is an immutable value.
type OrientedPoint struct {
	location  Vector1D
	direct    bool
	tolerance float64
}

var (
	_ bsp.Hyperplane[Vector1D]    = OrientedPoint{}
	_ bsp.SubHyperplane[Vector1D] = SubOrientedPoint{}
)

// NewOrientedPoint builds an oriented point at location.
func NewOrientedPoint(location Vector1D, direct bool, tolerance float64) OrientedPoint {
	return OrientedPoint{location: location, direct: direct, tolerance: tolerance}
}

// Location returns the point the hyperplane sits at.
func (h OrientedPoint) Location() Vector1D { return h.location }

// IsDirect reports whether the plus side points towards +∞.
func (h OrientedPoint) IsDirect() bool { return h.direct }

// Reverse returns the same point with flipped orientation.
func (h OrientedPoint) Reverse() OrientedPoint {
	return OrientedPoint{location: h.location, direct: !h.direct, tolerance: h.tolerance}
}

// Copy implements bsp.Hyperplane. The value is immutable, so the receiver
// itself is returned.
func (h OrientedPoint) Copy() bsp.Hyperplane[Vector1D] { return h }

// Offset returns the signed distance from point to the hyperplane.
func (h OrientedPoint) Offset(point Vector1D) float64 {
	delta := point.X - h.location.X
	if h.direct {
		return delta
	}
	return -delta
}

// Project maps any point onto the hyperplane, which is the location itself.
func (h OrientedPoint) Project(Vector1D) Vector1D { return h.location }

// Tolerance implements bsp.Hyperplane.
func (h OrientedPoint) Tolerance() float64 { return h.tolerance }

// SameOrientationAs reports whether other, known to share the same
// location, also shares the same plus side.
func (h OrientedPoint) SameOrientationAs(other bsp.Hyperplane[Vector1D]) bool {
	return h.direct == other.(OrientedPoint).direct
}

// WholeHyperplane returns the sub-hyperplane covering the point entirely.
func (h OrientedPoint) WholeHyperplane() bsp.SubHyperplane[Vector1D] {
	return SubOrientedPoint{hyperplane: h}
}

// WholeSpace returns the whole real line as a region.
func (h OrientedPoint) WholeSpace() bsp.Region[Vector1D] {
	return FullLine(h.tolerance)
}

// SubOrientedPoint is the sub-hyperplane of an oriented point. A point
// has no extent, so it is never empty and its size is zero.
type SubOrientedPoint struct {
	hyperplane OrientedPoint
}

// Copy implements bsp.SubHyperplane.
func (s SubOrientedPoint) Copy() bsp.SubHyperplane[Vector1D] { return s }

// Hyperplane implements bsp.SubHyperplane.
func (s SubOrientedPoint) Hyperplane() bsp.Hyperplane[Vector1D] { return s.hyperplane }

// IsEmpty implements bsp.SubHyperplane; a point is never empty.
func (s SubOrientedPoint) IsEmpty() bool { return false }

// Size implements bsp.SubHyperplane; a point has zero measure.
func (s SubOrientedPoint) Size() float64 { return 0 }

// Split locates the point relative to another oriented point. Within
// tolerance of the splitter the point lies on the splitter itself and
// both parts are nil.
func (s SubOrientedPoint) Split(h bsp.Hyperplane[Vector1D]) bsp.SplitSubHyperplane[Vector1D] {
	global := h.Offset(s.hyperplane.location)
	switch {
	case global < -s.hyperplane.tolerance:
		return bsp.NewSplit[Vector1D](nil, s)
	case global > s.hyperplane.tolerance:
		return bsp.NewSplit[Vector1D](s, nil)
	default:
		return bsp.NewSplit[Vector1D](nil, nil)
	}
}

// Reunite implements bsp.SubHyperplane. A point cannot accrete anything,
// so the receiver is returned.
func (s SubOrientedPoint) Reunite(bsp.SubHyperplane[Vector1D]) bsp.SubHyperplane[Vector1D] {
	return s
}
