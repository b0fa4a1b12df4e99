package bsp

import "fmt"

// BuildConvex builds the convex region lying on the minus side of every
// given hyperplane. It returns nil (and no error) when called without
// hyperplanes.
//
// Errors:
//   - ErrOppositeHyperplanes when two hyperplanes coincide with opposite
//     orientations.
//   - ErrInconsistentHyperplanes when a hyperplane lies entirely outside
//     the cell carved by the previous ones.
//
// Complexity: O(h²) sub-hyperplane splits for h hyperplanes.
func BuildConvex[P Point[P]](hyperplanes ...Hyperplane[P]) (Region[P], error) {
	if len(hyperplanes) == 0 {
		return nil, nil
	}

	// Stage 1 - start from the whole space of the first hyperplane.
	region := hyperplanes[0].WholeSpace()
	node := region.Tree(false)
	node.SetAttribute(true)

	// Stage 2 - chop the space one hyperplane at a time, keeping the
	// minus side.
	for _, hyperplane := range hyperplanes {
		if node.InsertCut(hyperplane) {
			node.SetAttribute(nil)
			node.Plus().SetAttribute(false)
			node = node.Minus()
			node.SetAttribute(true)
			continue
		}

		// The cut did not intersect the current cell: either the
		// hyperplane duplicates a previous one, or the set is
		// inconsistent. Walk the ancestors to find out which.
		s := hyperplane.WholeHyperplane()
		for tree := node; tree.Parent() != nil && s != nil; tree = tree.Parent() {
			other := tree.Parent().Cut().Hyperplane()
			split := s.Split(other)
			switch split.Side() {
			case SideHyper:
				if !hyperplane.SameOrientationAs(other) {
					return nil, fmt.Errorf("%w: %v", ErrOppositeHyperplanes, hyperplane)
				}
				// Same hyperplane seen twice, ignore the duplicate.
				s = nil
			case SidePlus:
				return nil, fmt.Errorf("%w: %v", ErrInconsistentHyperplanes, hyperplane)
			default:
				s = split.Minus()
			}
		}
	}
	return region, nil
}

// Union returns a region covering the points of either operand.
// Both operands are consumed and must not be used afterwards.
func Union[P Point[P]](a, b Region[P]) Region[P] {
	tree := a.Tree(false).Merge(b.Tree(false), unionMerger[P]())
	tree.Visit(nodeCleaner[P]{})
	return a.BuildNew(tree)
}

// Intersection returns a region covering the points of both operands.
// Both operands are consumed and must not be used afterwards.
func Intersection[P Point[P]](a, b Region[P]) Region[P] {
	tree := a.Tree(false).Merge(b.Tree(false), intersectionMerger[P]())
	tree.Visit(nodeCleaner[P]{})
	return a.BuildNew(tree)
}

// Xor returns a region covering the points of exactly one operand.
// Both operands are consumed and must not be used afterwards.
func Xor[P Point[P]](a, b Region[P]) Region[P] {
	tree := a.Tree(false).Merge(b.Tree(false), xorMerger[P]())
	tree.Visit(nodeCleaner[P]{})
	return a.BuildNew(tree)
}

// Difference returns a region covering the points of a not covered by b.
// Both operands are consumed and must not be used afterwards.
func Difference[P Point[P]](a, b Region[P]) Region[P] {
	merger := newDifferenceMerger(a, b)
	tree := a.Tree(false).Merge(b.Tree(false), merger.merge)
	tree.Visit(nodeCleaner[P]{})
	return a.BuildNew(tree)
}

// Complement returns a region covering exactly the points the operand
// does not. The operand itself is left untouched.
func Complement[P Point[P]](region Region[P]) Region[P] {
	return region.BuildNew(recurseComplement(region.Tree(false)))
}

// recurseComplement rebuilds a tree with flipped leaf booleans and, on
// internal nodes, boundary attributes with swapped sides.
func recurseComplement[P Point[P]](node *Tree[P]) *Tree[P] {
	if node.cut == nil {
		inside, _ := node.attribute.(bool)
		return NewLeaf[P](!inside)
	}
	var attribute any
	if ba, ok := node.attribute.(*BoundaryAttribute[P]); ok && ba != nil {
		flipped := &BoundaryAttribute[P]{}
		if ba.PlusInside != nil {
			flipped.PlusOutside = ba.PlusInside.Copy()
		}
		if ba.PlusOutside != nil {
			flipped.PlusInside = ba.PlusOutside.Copy()
		}
		attribute = flipped
	}
	return NewNode(node.cut.Copy(), recurseComplement(node.plus), recurseComplement(node.minus), attribute)
}

// unionMerger keeps inside leaves as-is and replaces outside leaves by
// the other operand's subtree.
func unionMerger[P Point[P]]() LeafMerger[P] {
	return func(leaf, tree, parentTree *Tree[P], isPlusChild, leafFromInstance bool) *Tree[P] {
		if inside, _ := leaf.attribute.(bool); inside {
			leaf.InsertInTree(parentTree, isPlusChild, vanishingToLeaf[P](true))
			return leaf
		}
		tree.InsertInTree(parentTree, isPlusChild, vanishingToLeaf[P](false))
		return tree
	}
}

// intersectionMerger keeps the other operand's subtree below inside
// leaves and outside leaves as-is.
func intersectionMerger[P Point[P]]() LeafMerger[P] {
	return func(leaf, tree, parentTree *Tree[P], isPlusChild, leafFromInstance bool) *Tree[P] {
		if inside, _ := leaf.attribute.(bool); inside {
			tree.InsertInTree(parentTree, isPlusChild, vanishingToLeaf[P](true))
			return tree
		}
		leaf.InsertInTree(parentTree, isPlusChild, vanishingToLeaf[P](false))
		return leaf
	}
}

// xorMerger complements the other operand's subtree below inside leaves.
func xorMerger[P Point[P]]() LeafMerger[P] {
	return func(leaf, tree, parentTree *Tree[P], isPlusChild, leafFromInstance bool) *Tree[P] {
		t := tree
		if inside, _ := leaf.attribute.(bool); inside {
			t = recurseComplement(t)
		}
		t.InsertInTree(parentTree, isPlusChild, vanishingToLeaf[P](true))
		return t
	}
}

// differenceMerger keeps the complement of b's subtree below a's inside
// leaves. A vanished cut leaves a degenerate cell whose inside/outside
// state is recovered by probing the original operands at the cell's
// barycenter, so both operands are copied up front.
type differenceMerger[P Point[P]] struct {
	a Region[P]
	b Region[P]
}

func newDifferenceMerger[P Point[P]](a, b Region[P]) *differenceMerger[P] {
	return &differenceMerger[P]{
		a: a.BuildNew(a.Tree(false).Copy()),
		b: b.BuildNew(b.Tree(false).Copy()),
	}
}

func (d *differenceMerger[P]) merge(leaf, tree, parentTree *Tree[P], isPlusChild, leafFromInstance bool) *Tree[P] {
	if inside, _ := leaf.attribute.(bool); inside {
		arg := tree
		if !leafFromInstance {
			arg = leaf
		}
		argTree := recurseComplement(arg)
		argTree.InsertInTree(parentTree, isPlusChild, d.fixNode)
		return argTree
	}
	instanceTree := tree
	if leafFromInstance {
		instanceTree = leaf
	}
	instanceTree.InsertInTree(parentTree, isPlusChild, d.fixNode)
	return instanceTree
}

func (d *differenceMerger[P]) fixNode(node *Tree[P]) *Tree[P] {
	cell := node.PruneAroundConvexCell(true, false, nil)
	r := d.a.BuildNew(cell)
	p := r.Barycenter()
	inside := d.a.CheckPoint(p) == Inside && d.b.CheckPoint(p) == Outside
	return NewLeaf[P](inside)
}

// vanishingToLeaf resolves a vanished cut: when both children agree the
// node becomes that leaf, otherwise the given inside flag decides.
func vanishingToLeaf[P Point[P]](inside bool) VanishingCutHandler[P] {
	return func(node *Tree[P]) *Tree[P] {
		if attrsEqual(node.plus.attribute, node.minus.attribute) {
			return NewLeaf[P](node.plus.attribute)
		}
		return NewLeaf[P](inside)
	}
}

// nodeCleaner strips stale attributes off internal nodes after a merge,
// so boundary attributes are rebuilt from scratch on the next request.
type nodeCleaner[P Point[P]] struct{}

func (nodeCleaner[P]) VisitOrder(*Tree[P]) VisitOrder { return PlusSubMinus }

func (nodeCleaner[P]) VisitInternalNode(node *Tree[P]) { node.attribute = nil }

func (nodeCleaner[P]) VisitLeafNode(*Tree[P]) {}
