package bsp

import "math"

// Tree is a node of a BSP tree. A node is either a leaf (nil cut, no
// children) or an internal node carrying the cut sub-hyperplane that
// splits its cell and exactly two children: plus and minus, one per side
// of the cut. Any node may carry an application attribute; the region
// machinery stores inside/outside booleans at leaves and boundary
// attributes at internal nodes.
//
// Attributes set through SetAttribute or the merge machinery are compared
// with ==, so attribute types stored on mergeable trees must be comparable.
//
// A Tree under construction is not safe for concurrent use.
type Tree[P Point[P]] struct {
	cut       SubHyperplane[P]
	plus      *Tree[P]
	minus     *Tree[P]
	parent    *Tree[P]
	attribute any
}

// LeafMerger resolves a leaf/tree pair while merging two BSP trees.
// leaf comes from one operand and tree from the other; leafFromInstance
// tells which (true when the leaf belongs to the merge receiver). The
// returned node must already be hooked under parentTree on the isPlusChild
// side, which is what Tree.InsertInTree does.
type LeafMerger[P Point[P]] func(leaf, tree, parentTree *Tree[P], isPlusChild, leafFromInstance bool) *Tree[P]

// VanishingCutHandler rebuilds a node whose cut sub-hyperplane vanished
// entirely while being chopped to a new cell during InsertInTree. The
// replacement (typically a leaf) is spliced in place of node.
type VanishingCutHandler[P Point[P]] func(node *Tree[P]) *Tree[P]

// NewTree returns an empty tree: a single leaf with a nil attribute,
// representing the whole space.
func NewTree[P Point[P]]() *Tree[P] {
	return &Tree[P]{}
}

// NewLeaf returns a leaf carrying attribute.
func NewLeaf[P Point[P]](attribute any) *Tree[P] {
	return &Tree[P]{attribute: attribute}
}

// NewNode assembles an internal node from a cut and two children, wiring
// the children's parent pointers to the new node.
func NewNode[P Point[P]](cut SubHyperplane[P], plus, minus *Tree[P], attribute any) *Tree[P] {
	n := &Tree[P]{cut: cut, plus: plus, minus: minus, attribute: attribute}
	plus.parent = n
	minus.parent = n
	return n
}

// Cut returns the cut sub-hyperplane, nil for leaves.
func (t *Tree[P]) Cut() SubHyperplane[P] { return t.cut }

// Plus returns the child on the plus side of the cut, nil for leaves.
func (t *Tree[P]) Plus() *Tree[P] { return t.plus }

// Minus returns the child on the minus side of the cut, nil for leaves.
func (t *Tree[P]) Minus() *Tree[P] { return t.minus }

// Parent returns the parent node, nil for the root.
func (t *Tree[P]) Parent() *Tree[P] { return t.parent }

// Attribute returns the attribute attached to the node, nil if unset.
func (t *Tree[P]) Attribute() any { return t.attribute }

// SetAttribute attaches an attribute to the node.
func (t *Tree[P]) SetAttribute(attribute any) { t.attribute = attribute }

// IsLeaf reports whether the node has no cut.
func (t *Tree[P]) IsLeaf() bool { return t.cut == nil }

// InsertCut splits the leaf cell of t with a hyperplane, turning t into
// an internal node with two fresh leaf children. The hyperplane is first
// chopped to the convex cell defined by t's ancestors; when nothing of it
// crosses the cell the node reverts to a leaf and InsertCut returns false.
// A false return is a normal geometric outcome, not an error.
//
// Any previous children of t are discarded.
func (t *Tree[P]) InsertCut(hyperplane Hyperplane[P]) bool {
	// Stage 1 - detach previous children, if any.
	if t.cut != nil {
		t.plus.parent = nil
		t.minus.parent = nil
	}

	// Stage 2 - chop the hyperplane to the cell of this node.
	chopped := t.fitToCell(hyperplane.WholeHyperplane())
	if chopped == nil || chopped.IsEmpty() {
		t.cut = nil
		t.plus = nil
		t.minus = nil
		return false
	}

	// Stage 3 - install the cut with two fresh leaves.
	t.cut = chopped
	t.plus = NewTree[P]()
	t.plus.parent = t
	t.minus = NewTree[P]()
	t.minus.parent = t
	return true
}

// Copy returns a deep copy of the subtree rooted at t: nodes and cuts are
// duplicated, attributes are shared by reference.
func (t *Tree[P]) Copy() *Tree[P] {
	if t.cut == nil {
		return NewLeaf[P](t.attribute)
	}
	return NewNode(t.cut.Copy(), t.plus.Copy(), t.minus.Copy(), t.attribute)
}

// Cell descends to the smallest cell containing point. When the point is
// within tolerance of a cut, the internal node carrying that cut is
// returned instead of a leaf, so callers can detect boundary proximity by
// checking Cut() != nil on the result.
func (t *Tree[P]) Cell(point P, tolerance float64) *Tree[P] {
	if t.cut == nil {
		return t
	}
	offset := t.cut.Hyperplane().Offset(point)
	switch {
	case math.Abs(offset) < tolerance:
		return t
	case offset <= 0:
		return t.minus.Cell(point, tolerance)
	default:
		return t.plus.Cell(point, tolerance)
	}
}

// fitToCell chops sub against every ancestor cut, keeping only the part
// inside the convex cell of this node. Returns nil when nothing remains.
func (t *Tree[P]) fitToCell(sub SubHyperplane[P]) SubHyperplane[P] {
	s := sub
	for node := t; node.parent != nil && s != nil; node = node.parent {
		if node == node.parent.plus {
			s = s.Split(node.parent.cut.Hyperplane()).Plus()
		} else {
			s = s.Split(node.parent.cut.Hyperplane()).Minus()
		}
	}
	return s
}

// condense collapses t into a leaf when both children are leaves carrying
// equal attributes.
func (t *Tree[P]) condense() {
	if t.cut == nil || t.plus.cut != nil || t.minus.cut != nil {
		return
	}
	if !attrsEqual(t.plus.attribute, t.minus.attribute) {
		return
	}
	if t.plus.attribute != nil {
		t.attribute = t.plus.attribute
	} else {
		t.attribute = t.minus.attribute
	}
	t.cut = nil
	t.plus = nil
	t.minus = nil
}

// attrsEqual compares node attributes, treating nil as equal only to nil.
func attrsEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// Merge combines t with another tree. The merger callback decides the
// outcome each time a leaf of one operand meets a subtree of the other,
// which is where union/intersection/xor semantics differ.
//
// Both operands are consumed: their nodes are rearranged into the result
// and neither tree must be used afterwards.
func (t *Tree[P]) Merge(other *Tree[P], merger LeafMerger[P]) *Tree[P] {
	return t.mergeWith(other, merger, nil, false)
}

func (t *Tree[P]) mergeWith(tree *Tree[P], merger LeafMerger[P], parentTree *Tree[P], isPlusChild bool) *Tree[P] {
	switch {
	case t.cut == nil:
		// Instance side bottomed out first.
		return merger(t, tree, parentTree, isPlusChild, true)
	case tree.cut == nil:
		return merger(tree, t, parentTree, isPlusChild, false)
	default:
		// Stage 1 - split the other tree by this node's cut and rehome it.
		merged := tree.Split(t.cut)
		if parentTree != nil {
			merged.parent = parentTree
			if isPlusChild {
				parentTree.plus = merged
			} else {
				parentTree.minus = merged
			}
		}

		// Stage 2 - recurse on both sides of the cut.
		t.plus.mergeWith(merged.plus, merger, merged, true)
		t.minus.mergeWith(merged.minus, merger, merged, false)

		// Stage 3 - simplify and refit the cut to the merged cell.
		merged.condense()
		if merged.cut != nil {
			merged.cut = merged.fitToCell(merged.cut.Hyperplane().WholeHyperplane())
		}
		return merged
	}
}

// Split cuts the subtree rooted at t by a sub-hyperplane and returns a
// tree whose root cut lies on sub's hyperplane, with the parts of t on
// each side below it. The receiver is consumed.
func (t *Tree[P]) Split(sub SubHyperplane[P]) *Tree[P] {
	if t.cut == nil {
		return NewNode(sub, t.Copy(), NewLeaf[P](t.attribute), nil)
	}

	cutHyperplane := t.cut.Hyperplane()
	subHyperplane := sub.Hyperplane()
	subParts := sub.Split(cutHyperplane)
	switch subParts.Side() {
	case SidePlus:
		// sub lies entirely in the plus subtree.
		split := t.plus.Split(sub)
		if t.cut.Split(subHyperplane).Side() == SidePlus {
			node := NewNode(t.cut.Copy(), split.plus, t.minus.Copy(), t.attribute)
			node.condense()
			split.plus = node
			node.parent = split
		} else {
			node := NewNode(t.cut.Copy(), split.minus, t.minus.Copy(), t.attribute)
			node.condense()
			split.minus = node
			node.parent = split
		}
		return split

	case SideMinus:
		// sub lies entirely in the minus subtree.
		split := t.minus.Split(sub)
		if t.cut.Split(subHyperplane).Side() == SidePlus {
			node := NewNode(t.cut.Copy(), t.plus.Copy(), split.plus, t.attribute)
			node.condense()
			split.plus = node
			node.parent = split
		} else {
			node := NewNode(t.cut.Copy(), t.plus.Copy(), split.minus, t.attribute)
			node.condense()
			split.minus = node
			node.parent = split
		}
		return split

	case SideBoth:
		// sub crosses this node's cut: split both children by their part
		// of sub, then stitch the four quadrants back together.
		cutParts := t.cut.Split(subHyperplane)
		split := NewNode(sub, t.plus.Split(subParts.Plus()), t.minus.Split(subParts.Minus()), nil)
		split.plus.cut = cutParts.Plus()
		split.minus.cut = cutParts.Minus()
		tmp := split.plus.minus
		split.plus.minus = split.minus.plus
		split.plus.minus.parent = split.plus
		split.minus.plus = tmp
		split.minus.plus.parent = split.minus
		split.plus.condense()
		split.minus.condense()
		return split

	default:
		// SideHyper: sub lies on this node's cut hyperplane.
		if cutHyperplane.SameOrientationAs(subHyperplane) {
			return NewNode(sub, t.plus.Copy(), t.minus.Copy(), t.attribute)
		}
		return NewNode(sub, t.minus.Copy(), t.plus.Copy(), t.attribute)
	}
}

// InsertInTree hooks t under parentTree on the isPlusChild side and chops
// t's cuts so the subtree fits the cell it now occupies. When a cut
// vanishes entirely during the chopping, vanishingHandler supplies the
// replacement node.
func (t *Tree[P]) InsertInTree(parentTree *Tree[P], isPlusChild bool, vanishingHandler VanishingCutHandler[P]) {
	// Stage 1 - rehome.
	t.parent = parentTree
	if parentTree != nil {
		if isPlusChild {
			parentTree.plus = t
		} else {
			parentTree.minus = t
		}
	}
	if t.cut == nil {
		return
	}

	// Stage 2 - chop the subtree against every new ancestor cut.
	for node := t; node.parent != nil; node = node.parent {
		hyperplane := node.parent.cut.Hyperplane()
		if node == node.parent.plus {
			t.cut = t.cut.Split(hyperplane).Plus()
			t.plus.chopOffMinus(hyperplane, vanishingHandler)
			t.minus.chopOffMinus(hyperplane, vanishingHandler)
		} else {
			t.cut = t.cut.Split(hyperplane).Minus()
			t.plus.chopOffPlus(hyperplane, vanishingHandler)
			t.minus.chopOffPlus(hyperplane, vanishingHandler)
		}
		if t.cut == nil {
			fixed := vanishingHandler(t)
			t.cut = fixed.cut
			t.plus = fixed.plus
			t.minus = fixed.minus
			t.attribute = fixed.attribute
			if t.cut == nil {
				break
			}
		}
	}

	// Stage 3 - dropped parts may have left mergeable leaves behind.
	t.condense()
}

// PruneAroundConvexCell rebuilds the chain of ancestor cuts around the
// convex cell of t as a minimal tree: the cell leaf carries cellAttribute,
// every sibling leaf carries otherLeafsAttribute and internal nodes carry
// internalAttribute.
func (t *Tree[P]) PruneAroundConvexCell(cellAttribute, otherLeafsAttribute, internalAttribute any) *Tree[P] {
	tree := NewLeaf[P](cellAttribute)
	for current := t; current.parent != nil; current = current.parent {
		parentCut := current.parent.cut.Copy()
		sibling := NewLeaf[P](otherLeafsAttribute)
		if current == current.parent.plus {
			tree = NewNode(parentCut, tree, sibling, internalAttribute)
		} else {
			tree = NewNode(parentCut, sibling, tree, internalAttribute)
		}
	}
	return tree
}

// chopOffMinus discards, in place, every part of the subtree lying on the
// minus side of hyperplane.
func (t *Tree[P]) chopOffMinus(hyperplane Hyperplane[P], vanishingHandler VanishingCutHandler[P]) {
	if t.cut == nil {
		return
	}
	t.cut = t.cut.Split(hyperplane).Plus()
	t.plus.chopOffMinus(hyperplane, vanishingHandler)
	t.minus.chopOffMinus(hyperplane, vanishingHandler)
	if t.cut == nil {
		fixed := vanishingHandler(t)
		t.cut = fixed.cut
		t.plus = fixed.plus
		t.minus = fixed.minus
		t.attribute = fixed.attribute
	}
}

// chopOffPlus discards, in place, every part of the subtree lying on the
// plus side of hyperplane.
func (t *Tree[P]) chopOffPlus(hyperplane Hyperplane[P], vanishingHandler VanishingCutHandler[P]) {
	if t.cut == nil {
		return
	}
	t.cut = t.cut.Split(hyperplane).Minus()
	t.plus.chopOffPlus(hyperplane, vanishingHandler)
	t.minus.chopOffPlus(hyperplane, vanishingHandler)
	if t.cut == nil {
		fixed := vanishingHandler(t)
		t.cut = fixed.cut
		t.plus = fixed.plus
		t.minus = fixed.minus
		t.attribute = fixed.attribute
	}
}
