package euclid

import (
	"math"

	"github.com/katalvlaran/lvlnum/bsp"
)

// PolygonsSet is a planar region bounded by straight lines: arbitrary
// polygons, possibly non-convex, with holes or unbounded sides.
type PolygonsSet struct {
	bsp.RegionCore[Vector2D]
}

var _ bsp.Region[Vector2D] = (*PolygonsSet)(nil)

// FullPlane returns the region covering the whole plane.
func FullPlane(tolerance float64) *PolygonsSet {
	return NewPolygonsSetFromTree(nil, tolerance)
}

// NewPolygonsSetFromTree adopts a BSP tree whose leaves carry
// inside/outside booleans and whose cuts are *SubLine instances.
// A nil tree yields the full plane.
func NewPolygonsSetFromTree(tree *bsp.Tree[Vector2D], tolerance float64) *PolygonsSet {
	return &PolygonsSet{RegionCore: bsp.NewRegionCore(tree, tolerance)}
}

// Box returns the axis-aligned rectangle [xMin, xMax] x [yMin, yMax].
// A box thinner than the tolerance in either direction is empty.
func Box(xMin, xMax, yMin, yMax, tolerance float64) *PolygonsSet {
	if xMin >= xMax-tolerance || yMin >= yMax-tolerance {
		return NewPolygonsSetFromTree(bsp.NewLeaf[Vector2D](false), tolerance)
	}
	minMin := Vector2D{X: xMin, Y: yMin}
	minMax := Vector2D{X: xMin, Y: yMax}
	maxMin := Vector2D{X: xMax, Y: yMin}
	maxMax := Vector2D{X: xMax, Y: yMax}
	// Walk the edges counterclockwise so the interior stays on each
	// line's minus side.
	region, err := bsp.BuildConvex[Vector2D](
		NewLineFromPoints(minMin, maxMin, tolerance),
		NewLineFromPoints(maxMin, maxMax, tolerance),
		NewLineFromPoints(maxMax, minMax, tolerance),
		NewLineFromPoints(minMax, minMin, tolerance),
	)
	if err != nil {
		// The four edges of a non-thin box never conflict.
		panic(err)
	}
	return region.(*PolygonsSet)
}

// BuildNew implements bsp.Region.
func (p *PolygonsSet) BuildNew(tree *bsp.Tree[Vector2D]) bsp.Region[Vector2D] {
	return NewPolygonsSetFromTree(tree, p.Tolerance())
}

// Size returns the area of the region, +Inf when it is unbounded.
func (p *PolygonsSet) Size() float64 {
	size, _ := p.measure()
	return size
}

// Barycenter returns the centroid of the region, NaN2D when the region
// is empty or unbounded.
func (p *PolygonsSet) Barycenter() Vector2D {
	_, barycenter := p.measure()
	return barycenter
}

// measure integrates over the directed boundary. For a closed boundary
// walked with the interior on the left, the signed parallelogram areas
// x0*y1-y0*x1 sum to twice the enclosed area and their vertex-weighted
// sums to six times the weighted centroid.
func (p *PolygonsSet) measure() (float64, Vector2D) {
	tree := p.Tree(true)
	if tree.Cut() == nil {
		if inside, _ := tree.Attribute().(bool); inside {
			return math.Inf(1), NaN2D()
		}
		return 0, Vector2D{}
	}

	m := &polygonMeasurer{}
	tree.Visit(m)

	switch {
	case m.unbounded:
		return math.Inf(1), NaN2D()
	case m.sum < 0:
		// A negatively oriented boundary encloses the outside: the
		// region itself extends to infinity.
		return math.Inf(1), NaN2D()
	case m.sum == 0:
		return 0, Vector2D{}
	default:
		return m.sum / 2, Vector2D{X: m.sumX / (3 * m.sum), Y: m.sumY / (3 * m.sum)}
	}
}

// polygonMeasurer accumulates boundary integrals over the segments
// attached to internal nodes as boundary attributes.
type polygonMeasurer struct {
	sum       float64
	sumX      float64
	sumY      float64
	unbounded bool
}

func (*polygonMeasurer) VisitOrder(*bsp.Tree[Vector2D]) bsp.VisitOrder { return bsp.MinusSubPlus }

func (m *polygonMeasurer) VisitInternalNode(node *bsp.Tree[Vector2D]) {
	attr, ok := node.Attribute().(*bsp.BoundaryAttribute[Vector2D])
	if !ok || attr == nil {
		return
	}
	if attr.PlusOutside != nil {
		// Inside on the minus side: follow the line direction.
		m.addContribution(attr.PlusOutside, false)
	}
	if attr.PlusInside != nil {
		// Inside on the plus side: walk against the line direction.
		m.addContribution(attr.PlusInside, true)
	}
}

func (*polygonMeasurer) VisitLeafNode(*bsp.Tree[Vector2D]) {}

func (m *polygonMeasurer) addContribution(sub bsp.SubHyperplane[Vector2D], reversed bool) {
	subLine := sub.(*SubLine)
	line := subLine.Line()
	for _, iv := range subLine.Segments() {
		if math.IsInf(iv.Size(), 1) {
			m.unbounded = true
			continue
		}
		a := line.ToSpace(Vector1D{X: iv.Lower})
		b := line.ToSpace(Vector1D{X: iv.Upper})
		if reversed {
			a, b = b, a
		}
		factor := a.X*b.Y - a.Y*b.X
		m.sum += factor
		m.sumX += factor * (a.X + b.X)
		m.sumY += factor * (a.Y + b.Y)
	}
}

// ProjectToBoundary implements bsp.Region, projecting through the
// boundary sub-lines' one-dimensional remaining regions.
func (p *PolygonsSet) ProjectToBoundary(point Vector2D) bsp.BoundaryProjection[Vector2D] {
	return bsp.ProjectToBoundary[Vector2D, Vector1D](p, point)
}
