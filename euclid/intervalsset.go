package euclid

import (
	"math"

	"github.com/katalvlaran/lvlnum/bsp"
)

// IntervalsSet is a region of the real line: a finite union of disjoint
// intervals, stored as a BSP tree cut by oriented points.
type IntervalsSet struct {
	bsp.RegionCore[Vector1D]
}

var _ bsp.Region[Vector1D] = (*IntervalsSet)(nil)

// FullLine returns the region covering the whole real line.
func FullLine(tolerance float64) *IntervalsSet {
	return &IntervalsSet{RegionCore: bsp.NewRegionCore[Vector1D](nil, tolerance)}
}

// NewIntervalsSet returns the region [lower, upper]. Either bound may be
// infinite for half-lines; both infinite yields the full line.
func NewIntervalsSet(lower, upper, tolerance float64) *IntervalsSet {
	return NewIntervalsSetFromTree(intervalTree(lower, upper, tolerance), tolerance)
}

// NewIntervalsSetFromTree adopts a BSP tree whose leaves carry
// inside/outside booleans.
func NewIntervalsSetFromTree(tree *bsp.Tree[Vector1D], tolerance float64) *IntervalsSet {
	return &IntervalsSet{RegionCore: bsp.NewRegionCore(tree, tolerance)}
}

// intervalTree builds the one- or two-cut tree for [lower, upper].
func intervalTree(lower, upper, tolerance float64) *bsp.Tree[Vector1D] {
	if math.IsInf(lower, -1) {
		if math.IsInf(upper, 1) {
			return bsp.NewLeaf[Vector1D](true)
		}
		// Open towards -∞, bounded above.
		upperCut := NewOrientedPoint(Vector1D{X: upper}, true, tolerance).WholeHyperplane()
		return bsp.NewNode(upperCut, bsp.NewLeaf[Vector1D](false), bsp.NewLeaf[Vector1D](true), nil)
	}
	lowerCut := NewOrientedPoint(Vector1D{X: lower}, false, tolerance).WholeHyperplane()
	if math.IsInf(upper, 1) {
		// Bounded below, open towards +∞.
		return bsp.NewNode(lowerCut, bsp.NewLeaf[Vector1D](false), bsp.NewLeaf[Vector1D](true), nil)
	}
	upperCut := NewOrientedPoint(Vector1D{X: upper}, true, tolerance).WholeHyperplane()
	inner := bsp.NewNode(upperCut, bsp.NewLeaf[Vector1D](false), bsp.NewLeaf[Vector1D](true), nil)
	return bsp.NewNode(lowerCut, bsp.NewLeaf[Vector1D](false), inner, nil)
}

// BuildNew implements bsp.Region.
func (s *IntervalsSet) BuildNew(tree *bsp.Tree[Vector1D]) bsp.Region[Vector1D] {
	return NewIntervalsSetFromTree(tree, s.Tolerance())
}

// AsList extracts the intervals in ascending order, coalescing inside
// cells that share a cut.
func (s *IntervalsSet) AsList() []Interval {
	spans := collectSpans(s.Tree(false), math.Inf(-1), math.Inf(1), nil)
	var list []Interval
	prevInside := false
	for _, sp := range spans {
		if sp.inside {
			if prevInside {
				list[len(list)-1].Upper = sp.hi
			} else {
				list = append(list, Interval{Lower: sp.lo, Upper: sp.hi})
			}
		}
		prevInside = sp.inside
	}
	return list
}

// span is one leaf cell of a 1D tree, in abscissa order.
type span struct {
	lo, hi float64
	inside bool
}

// collectSpans walks the tree in ascending abscissa order, appending each
// leaf cell with its bounds.
func collectSpans(node *bsp.Tree[Vector1D], lo, hi float64, spans []span) []span {
	if node.Cut() == nil {
		inside, _ := node.Attribute().(bool)
		return append(spans, span{lo: lo, hi: hi, inside: inside})
	}
	op := node.Cut().Hyperplane().(OrientedPoint)
	x := op.Location().X
	if op.IsDirect() {
		// Minus side is the left half-cell.
		spans = collectSpans(node.Minus(), lo, x, spans)
		return collectSpans(node.Plus(), x, hi, spans)
	}
	spans = collectSpans(node.Plus(), lo, x, spans)
	return collectSpans(node.Minus(), x, hi, spans)
}

// Inf returns the lowest point of the region, +Inf for an empty region
// and -Inf for a region open towards -∞.
func (s *IntervalsSet) Inf() float64 {
	node := s.Tree(false)
	inf := math.Inf(1)
	for node.Cut() != nil {
		op := node.Cut().Hyperplane().(OrientedPoint)
		inf = op.Location().X
		if op.IsDirect() {
			node = node.Minus()
		} else {
			node = node.Plus()
		}
	}
	if inside, _ := node.Attribute().(bool); inside {
		return math.Inf(-1)
	}
	return inf
}

// Sup returns the highest point of the region, -Inf for an empty region
// and +Inf for a region open towards +∞.
func (s *IntervalsSet) Sup() float64 {
	node := s.Tree(false)
	sup := math.Inf(-1)
	for node.Cut() != nil {
		op := node.Cut().Hyperplane().(OrientedPoint)
		sup = op.Location().X
		if op.IsDirect() {
			node = node.Plus()
		} else {
			node = node.Minus()
		}
	}
	if inside, _ := node.Attribute().(bool); inside {
		return math.Inf(1)
	}
	return sup
}

// Size implements bsp.Region: the summed length of all intervals.
func (s *IntervalsSet) Size() float64 {
	size, _ := s.measure()
	return size
}

// Barycenter implements bsp.Region: the length-weighted midpoint, NaN for
// empty or unbounded regions.
func (s *IntervalsSet) Barycenter() Vector1D {
	_, barycenter := s.measure()
	return barycenter
}

func (s *IntervalsSet) measure() (float64, Vector1D) {
	tree := s.Tree(false)
	if tree.Cut() == nil {
		if inside, _ := tree.Attribute().(bool); inside {
			return math.Inf(1), NaN1D()
		}
		return 0, NaN1D()
	}
	size := 0.0
	sum := 0.0
	for _, iv := range s.AsList() {
		size += iv.Size()
		sum += iv.Size() * iv.Barycenter()
	}
	switch {
	case math.IsInf(size, 1):
		return size, NaN1D()
	case size > 0:
		return size, Vector1D{X: sum / size}
	default:
		// Degenerate set: fall back to the root cut location.
		return size, tree.Cut().Hyperplane().(OrientedPoint).Location()
	}
}

// ProjectToBoundary implements bsp.Region. Dimension one is the base case
// of boundary projection: interval endpoints are walked directly instead
// of recursing into a lower dimension.
func (s *IntervalsSet) ProjectToBoundary(point Vector1D) bsp.BoundaryProjection[Vector1D] {
	x := point.X
	previous := math.Inf(-1)
	for _, iv := range s.AsList() {
		if x < iv.Lower {
			// Between the previous interval and this one.
			previousOffset := x - previous
			currentOffset := iv.Lower - x
			if previousOffset < currentOffset {
				return boundaryProjection1D(point, previous, previousOffset)
			}
			return boundaryProjection1D(point, iv.Lower, currentOffset)
		}
		if x <= iv.Upper {
			// Within this interval; offsets are negative inside.
			offset0 := iv.Lower - x
			offset1 := x - iv.Upper
			if offset0 < offset1 {
				return boundaryProjection1D(point, iv.Upper, offset1)
			}
			return boundaryProjection1D(point, iv.Lower, offset0)
		}
		previous = iv.Upper
	}
	// Past the last interval.
	return boundaryProjection1D(point, previous, x-previous)
}

func boundaryProjection1D(original Vector1D, projected, offset float64) bsp.BoundaryProjection[Vector1D] {
	if math.IsInf(projected, 0) {
		return bsp.NewBoundaryProjection(original, Vector1D{}, false, offset)
	}
	return bsp.NewBoundaryProjection(original, Vector1D{X: projected}, true, offset)
}
