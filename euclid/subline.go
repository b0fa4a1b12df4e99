package euclid

import (
	"math"

	"github.com/katalvlaran/lvlnum/bsp"
)

// SubLine is the part of a line covered by a 1D region of its abscissas:
// a union of segments and half-lines sharing one supporting line.
type SubLine struct {
	line   Line
	region *IntervalsSet
}

// NewSubLine assembles a sub-line from its supporting line and the
// abscissa region it covers. The region is adopted, not copied.
func NewSubLine(line Line, region *IntervalsSet) *SubLine {
	return &SubLine{line: line, region: region}
}

// NewSegment builds the sub-line covering the straight segment between
// two points, oriented from start to end.
func NewSegment(start, end Vector2D, tolerance float64) *SubLine {
	line := NewLineFromPoints(start, end, tolerance)
	lower := line.ToSubSpace(start).X
	upper := line.ToSubSpace(end).X
	return NewSubLine(line, NewIntervalsSet(lower, upper, tolerance))
}

// Line returns the supporting line.
func (s *SubLine) Line() Line { return s.line }

// Segments lists the covered abscissa intervals in ascending order.
func (s *SubLine) Segments() []Interval { return s.region.AsList() }

// Copy implements bsp.SubHyperplane. The supporting line is a value and
// the remaining region is treated as immutable once built, so both are
// shared.
func (s *SubLine) Copy() bsp.SubHyperplane[Vector2D] {
	return &SubLine{line: s.line, region: s.region}
}

// Hyperplane implements bsp.SubHyperplane.
func (s *SubLine) Hyperplane() bsp.Hyperplane[Vector2D] { return s.line }

// IsEmpty implements bsp.SubHyperplane.
func (s *SubLine) IsEmpty() bool { return s.region.IsEmpty() }

// Size implements bsp.SubHyperplane: the summed length of the covered
// intervals.
func (s *SubLine) Size() float64 { return s.region.Size() }

// RemainingRegion implements bsp.Embedded, exposing the abscissa region.
func (s *SubLine) RemainingRegion() bsp.Region[Vector1D] { return s.region }

// Reunite implements bsp.SubHyperplane: the union of the abscissa
// regions. Both operands' regions are consumed.
func (s *SubLine) Reunite(other bsp.SubHyperplane[Vector2D]) bsp.SubHyperplane[Vector2D] {
	o := other.(*SubLine)
	union := bsp.Union[Vector1D](s.region, o.region).(*IntervalsSet)
	return NewSubLine(s.line, union)
}

// Split cuts the sub-line by a 2D hyperplane. For a line crossing the
// supporting line, the abscissa region is split at the crossing point;
// for parallel lines the whole sub-line goes to one side, or vanishes
// when the lines coincide.
func (s *SubLine) Split(hyperplane bsp.Hyperplane[Vector2D]) bsp.SplitSubHyperplane[Vector2D] {
	thisLine := s.line
	otherLine := hyperplane.(Line)
	tolerance := thisLine.tolerance

	crossing, ok := thisLine.Intersection(otherLine)
	if !ok {
		// Parallel lines: locate the whole sub-line by the global offset.
		global := otherLine.ParallelOffset(thisLine)
		switch {
		case global < -tolerance:
			return bsp.NewSplit[Vector2D](nil, s)
		case global > tolerance:
			return bsp.NewSplit[Vector2D](s, nil)
		default:
			return bsp.NewSplit[Vector2D](nil, nil)
		}
	}

	// The splitter crosses the supporting line: cut the abscissa region
	// at the crossing point, oriented by the relative line directions.
	direct := math.Sin(thisLine.angle-otherLine.angle) < 0
	x := thisLine.ToSubSpace(crossing)
	subPlus := NewOrientedPoint(x, !direct, tolerance).WholeHyperplane()
	subMinus := NewOrientedPoint(x, direct, tolerance).WholeHyperplane()

	splitTree := s.region.Tree(false).Split(subMinus)
	var plusTree, minusTree *bsp.Tree[Vector1D]
	if s.region.IsEmptyTree(splitTree.Plus()) {
		plusTree = bsp.NewLeaf[Vector1D](false)
	} else {
		plusTree = bsp.NewNode(subPlus, bsp.NewLeaf[Vector1D](false), splitTree.Plus(), nil)
	}
	if s.region.IsEmptyTree(splitTree.Minus()) {
		minusTree = bsp.NewLeaf[Vector1D](false)
	} else {
		minusTree = bsp.NewNode(subMinus, bsp.NewLeaf[Vector1D](false), splitTree.Minus(), nil)
	}
	return bsp.NewSplit[Vector2D](
		NewSubLine(thisLine, NewIntervalsSetFromTree(plusTree, tolerance)),
		NewSubLine(thisLine, NewIntervalsSetFromTree(minusTree, tolerance)),
	)
}
