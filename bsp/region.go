package bsp

// Location classifies a point relative to a region.
type Location int

const (
	// Inside means the point lies strictly inside the region.
	Inside Location = iota
	// Outside means the point lies strictly outside the region.
	Outside
	// Boundary means the point lies on the region's boundary, within
	// the region tolerance.
	Boundary
)

// String implements fmt.Stringer.
func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case Boundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Region is a part of a space bounded by hyperplanes, represented as a
// BSP tree whose leaves carry inside (true) / outside (false) booleans.
//
// Concrete spaces embed RegionCore for the space-independent machinery
// and add the dimension-specific pieces: BuildNew, Size, Barycenter and
// ProjectToBoundary.
type Region[P Point[P]] interface {
	// BuildNew wraps a tree into a region of the same concrete type as
	// the receiver. The tree is adopted, not copied.
	BuildNew(tree *Tree[P]) Region[P]

	// Tree returns the underlying BSP tree. When withBoundary is true,
	// boundary attributes are built lazily on internal nodes first.
	Tree(withBoundary bool) *Tree[P]

	// Tolerance is the thickness of the region's hyperplanes.
	Tolerance() float64

	// CheckPoint locates a point relative to the region.
	CheckPoint(point P) Location

	// IsEmpty reports whether the region covers nothing.
	IsEmpty() bool

	// IsEmptyTree reports whether the cell of node and all cells below
	// it are outside.
	IsEmptyTree(node *Tree[P]) bool

	// IsFull reports whether the region covers the whole space.
	IsFull() bool

	// IsFullTree reports whether the cell of node and all cells below
	// it are inside.
	IsFullTree(node *Tree[P]) bool

	// ProjectToBoundary returns the point of the region boundary nearest
	// to point, along with the signed offset to it.
	ProjectToBoundary(point P) BoundaryProjection[P]

	// Size returns the n-dimensional measure of the region, possibly
	// +Inf for unbounded regions.
	Size() float64

	// BoundarySize returns the (n-1)-dimensional measure of the boundary.
	BoundarySize() float64

	// Barycenter returns the centroid of the region. Spaces return their
	// NaN point for empty or unbounded regions.
	Barycenter() P
}

// BoundaryAttribute is attached to internal tree nodes when boundary
// attributes are requested via Region.Tree(true). It holds the parts of
// the node's cut that belong to the region boundary, split by which side
// faces outward.
type BoundaryAttribute[P Point[P]] struct {
	// PlusOutside is the part of the cut with the region outside on the
	// plus side and inside on the minus side, nil if empty.
	PlusOutside SubHyperplane[P]
	// PlusInside is the part of the cut with the region inside on the
	// plus side and outside on the minus side, nil if empty.
	PlusInside SubHyperplane[P]
}

// RegionCore implements the space-independent half of Region. Concrete
// regions embed it by value and complete the interface.
type RegionCore[P Point[P]] struct {
	tree *Tree[P]
	tol  float64
}

// NewRegionCore adopts a tree whose leaves carry inside/outside booleans.
// A nil tree yields the full space.
func NewRegionCore[P Point[P]](tree *Tree[P], tolerance float64) RegionCore[P] {
	if tree == nil {
		tree = NewLeaf[P](true)
	}
	return RegionCore[P]{tree: tree, tol: tolerance}
}

// Tree returns the underlying BSP tree, building boundary attributes
// first when withBoundary is true and they are not present yet.
func (r *RegionCore[P]) Tree(withBoundary bool) *Tree[P] {
	if withBoundary && r.tree.cut != nil && r.tree.attribute == nil {
		// Boundary attributes double as the "already built" marker on
		// the root.
		r.tree.Visit(boundaryBuilder[P]{})
	}
	return r.tree
}

// Tolerance returns the thickness of the region's hyperplanes.
func (r *RegionCore[P]) Tolerance() float64 { return r.tol }

// CheckPoint locates point relative to the region.
func (r *RegionCore[P]) CheckPoint(point P) Location {
	return checkPointNode(r.tree, point, r.tol)
}

func checkPointNode[P Point[P]](node *Tree[P], point P, tolerance float64) Location {
	cell := node.Cell(point, tolerance)
	if cell.cut == nil {
		// The point is in the interior of the cell.
		if inside, _ := cell.attribute.(bool); inside {
			return Inside
		}
		return Outside
	}
	// The point is close to a cut: look on both sides.
	minusCode := checkPointNode(cell.minus, point, tolerance)
	plusCode := checkPointNode(cell.plus, point, tolerance)
	if minusCode == plusCode {
		return minusCode
	}
	return Boundary
}

// IsEmpty reports whether the region covers nothing.
func (r *RegionCore[P]) IsEmpty() bool { return r.IsEmptyTree(r.tree) }

// IsEmptyTree reports whether every leaf below node is outside.
func (r *RegionCore[P]) IsEmptyTree(node *Tree[P]) bool {
	if node.cut == nil {
		inside, _ := node.attribute.(bool)
		return !inside
	}
	return r.IsEmptyTree(node.minus) && r.IsEmptyTree(node.plus)
}

// IsFull reports whether the region covers the whole space.
func (r *RegionCore[P]) IsFull() bool { return r.IsFullTree(r.tree) }

// IsFullTree reports whether every leaf below node is inside.
func (r *RegionCore[P]) IsFullTree(node *Tree[P]) bool {
	if node.cut == nil {
		inside, _ := node.attribute.(bool)
		return inside
	}
	return r.IsFullTree(node.minus) && r.IsFullTree(node.plus)
}

// BoundarySize sums the measures of all boundary parts.
func (r *RegionCore[P]) BoundarySize() float64 {
	visitor := &boundarySizeVisitor[P]{}
	r.Tree(true).Visit(visitor)
	return visitor.size
}

// boundaryBuilder attaches a BoundaryAttribute to every internal node.
// Children are visited first so that, on the way up, each cut can be
// characterized against fully processed subtrees.
type boundaryBuilder[P Point[P]] struct{}

func (boundaryBuilder[P]) VisitOrder(*Tree[P]) VisitOrder { return PlusMinusSub }

func (boundaryBuilder[P]) VisitInternalNode(node *Tree[P]) {
	var plusOutside, plusInside SubHyperplane[P]

	// Characterize the cut against the plus subtree: which parts of it
	// touch inside cells, which touch outside cells.
	plusChar := newCharacterization(node.plus, node.cut.Copy())
	if plusChar.touchesOutside() {
		// Parts with outside on their plus side belong to the boundary
		// when the minus side sees inside cells.
		minusChar := newCharacterization(node.minus, plusChar.outsideTouching)
		if minusChar.touchesInside() {
			plusOutside = minusChar.insideTouching
		}
	}
	if plusChar.touchesInside() {
		// Symmetric case: inside on the plus side, outside on the minus.
		minusChar := newCharacterization(node.minus, plusChar.insideTouching)
		if minusChar.touchesOutside() {
			plusInside = minusChar.outsideTouching
		}
	}
	node.attribute = &BoundaryAttribute[P]{PlusOutside: plusOutside, PlusInside: plusInside}
}

func (boundaryBuilder[P]) VisitLeafNode(*Tree[P]) {}

// characterization splits a sub-hyperplane along a subtree's cuts and
// gathers which fragments touch inside cells and which touch outside
// cells, reuniting fragments per category.
type characterization[P Point[P]] struct {
	outsideTouching SubHyperplane[P]
	insideTouching  SubHyperplane[P]
}

func newCharacterization[P Point[P]](node *Tree[P], sub SubHyperplane[P]) *characterization[P] {
	c := &characterization[P]{}
	c.characterize(node, sub)
	return c
}

func (c *characterization[P]) characterize(node *Tree[P], sub SubHyperplane[P]) {
	if node.cut == nil {
		inside, _ := node.attribute.(bool)
		if inside {
			c.addInsideTouching(sub)
		} else {
			c.addOutsideTouching(sub)
		}
		return
	}
	split := sub.Split(node.cut.Hyperplane())
	switch split.Side() {
	case SidePlus:
		c.characterize(node.plus, sub)
	case SideMinus:
		c.characterize(node.minus, sub)
	case SideBoth:
		c.characterize(node.plus, split.Plus())
		c.characterize(node.minus, split.Minus())
	default:
		panic("bsp: cut sub-hyperplane coincides with a deeper cut")
	}
}

func (c *characterization[P]) addOutsideTouching(sub SubHyperplane[P]) {
	if c.outsideTouching == nil {
		c.outsideTouching = sub
	} else {
		c.outsideTouching = c.outsideTouching.Reunite(sub)
	}
}

func (c *characterization[P]) addInsideTouching(sub SubHyperplane[P]) {
	if c.insideTouching == nil {
		c.insideTouching = sub
	} else {
		c.insideTouching = c.insideTouching.Reunite(sub)
	}
}

func (c *characterization[P]) touchesOutside() bool {
	return c.outsideTouching != nil && !c.outsideTouching.IsEmpty()
}

func (c *characterization[P]) touchesInside() bool {
	return c.insideTouching != nil && !c.insideTouching.IsEmpty()
}

// boundarySizeVisitor accumulates the measure of all boundary parts.
type boundarySizeVisitor[P Point[P]] struct {
	size float64
}

func (*boundarySizeVisitor[P]) VisitOrder(*Tree[P]) VisitOrder { return MinusSubPlus }

func (v *boundarySizeVisitor[P]) VisitInternalNode(node *Tree[P]) {
	attr, ok := node.attribute.(*BoundaryAttribute[P])
	if !ok || attr == nil {
		return
	}
	if attr.PlusOutside != nil {
		v.size += attr.PlusOutside.Size()
	}
	if attr.PlusInside != nil {
		v.size += attr.PlusInside.Size()
	}
}

func (*boundarySizeVisitor[P]) VisitLeafNode(*Tree[P]) {}
