package bsp

// Point is the constraint every space's point type must satisfy.
// The type parameter is self-referential: a concrete space declares
// its point as, say, `type Vector2D struct{ ... }` with a
// `Distance(Vector2D) float64` method and every bsp type instantiates
// cleanly with it.
type Point[P any] interface {
	// Distance returns the distance to another point of the same space.
	Distance(P) float64
}

// Hyperplane is an oriented (n-1)-dimensional subspace splitting its
// space in two half-spaces: the plus side (positive offsets) and the
// minus side (negative offsets).
//
// Implementations must be immutable values: Copy may return the receiver.
type Hyperplane[P Point[P]] interface {
	// Copy returns a hyperplane usable independently of the receiver.
	Copy() Hyperplane[P]

	// Offset returns the signed distance from point to the hyperplane,
	// negative on the minus side, positive on the plus side.
	Offset(point P) float64

	// Project returns the orthogonal projection of point onto the
	// hyperplane.
	Project(point P) P

	// Tolerance is the thickness below which points are considered to
	// belong to the hyperplane itself.
	Tolerance() float64

	// SameOrientationAs reports whether the receiver and other, assumed
	// to share the same geometric locus, also share the same plus side.
	SameOrientationAs(other Hyperplane[P]) bool

	// WholeHyperplane returns the sub-hyperplane covering the receiver
	// entirely.
	WholeHyperplane() SubHyperplane[P]

	// WholeSpace returns the region covering the whole space the
	// hyperplane lives in.
	WholeSpace() Region[P]
}

// Embedding ties a space to the lower-dimensional sub-space a hyperplane
// defines, converting points both ways. Hyperplanes of dimension two and
// above implement it alongside Hyperplane.
type Embedding[P Point[P], Q Point[Q]] interface {
	// ToSubSpace maps a space point onto its sub-space image.
	ToSubSpace(point P) Q

	// ToSpace lifts a sub-space point back into the space.
	ToSpace(point Q) P
}

// SubHyperplane is the part of a hyperplane contained in a convex cell
// of the tree. Internal tree nodes store cuts as sub-hyperplanes.
type SubHyperplane[P Point[P]] interface {
	// Copy returns a sub-hyperplane usable independently of the receiver.
	Copy() SubHyperplane[P]

	// Hyperplane returns the underlying (whole) hyperplane.
	Hyperplane() Hyperplane[P]

	// IsEmpty reports whether the sub-hyperplane covers nothing.
	IsEmpty() bool

	// Size returns the n-1 dimensional measure of the sub-hyperplane.
	Size() float64

	// Split cuts the sub-hyperplane by another hyperplane, returning the
	// parts lying on its plus and minus sides. A part that vanishes is
	// returned as nil.
	Split(h Hyperplane[P]) SplitSubHyperplane[P]

	// Reunite merges the receiver with another sub-hyperplane known to
	// lie on the same underlying hyperplane.
	Reunite(other SubHyperplane[P]) SubHyperplane[P]
}

// Embedded is a sub-hyperplane that exposes the sub-space region it
// covers on its hyperplane, through the hyperplane's Embedding. The
// boundary projector relies on it to recurse into lower dimensions.
type Embedded[P Point[P], Q Point[Q]] interface {
	SubHyperplane[P]

	// RemainingRegion returns the sub-space region covered by the
	// sub-hyperplane.
	RemainingRegion() Region[Q]
}

// Side locates a sub-hyperplane relative to a splitting hyperplane.
type Side int

const (
	// SidePlus means the sub-hyperplane lies entirely on the plus side.
	SidePlus Side = iota
	// SideMinus means the sub-hyperplane lies entirely on the minus side.
	SideMinus
	// SideBoth means the splitter crosses the sub-hyperplane.
	SideBoth
	// SideHyper means the sub-hyperplane lies on the splitter itself.
	SideHyper
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SidePlus:
		return "plus"
	case SideMinus:
		return "minus"
	case SideBoth:
		return "both"
	case SideHyper:
		return "hyper"
	default:
		return "unknown"
	}
}

// SplitSubHyperplane carries the outcome of SubHyperplane.Split: the part
// on the plus side and the part on the minus side of the splitter, either
// of which may be nil.
type SplitSubHyperplane[P Point[P]] struct {
	plus  SubHyperplane[P]
	minus SubHyperplane[P]
}

// NewSplit packs the two sides of a split.
func NewSplit[P Point[P]](plus, minus SubHyperplane[P]) SplitSubHyperplane[P] {
	return SplitSubHyperplane[P]{plus: plus, minus: minus}
}

// Plus returns the part on the plus side of the splitter, or nil.
func (s SplitSubHyperplane[P]) Plus() SubHyperplane[P] { return s.plus }

// Minus returns the part on the minus side of the splitter, or nil.
func (s SplitSubHyperplane[P]) Minus() SubHyperplane[P] { return s.minus }

// Side derives the qualitative location from the two parts.
func (s SplitSubHyperplane[P]) Side() Side {
	switch {
	case s.plus != nil && !s.plus.IsEmpty():
		if s.minus != nil && !s.minus.IsEmpty() {
			return SideBoth
		}
		return SidePlus
	case s.minus != nil && !s.minus.IsEmpty():
		return SideMinus
	default:
		return SideHyper
	}
}
