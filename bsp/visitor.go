package bsp

// VisitOrder is the order in which a visitor wants a node's plus child,
// minus child and the node itself (sub) visited.
type VisitOrder int

const (
	// PlusMinusSub visits the plus child, the minus child, then the node.
	PlusMinusSub VisitOrder = iota
	// PlusSubMinus visits the plus child, the node, then the minus child.
	PlusSubMinus
	// MinusPlusSub visits the minus child, the plus child, then the node.
	MinusPlusSub
	// MinusSubPlus visits the minus child, the node, then the plus child.
	MinusSubPlus
	// SubPlusMinus visits the node, the plus child, then the minus child.
	SubPlusMinus
	// SubMinusPlus visits the node, the minus child, then the plus child.
	SubMinusPlus
)

// TreeVisitor walks a BSP tree. The order is negotiated per internal
// node, so a visitor can steer the traversal (the boundary projector uses
// this to reach the cell nearest a query point first).
type TreeVisitor[P Point[P]] interface {
	// VisitOrder is called before visiting an internal node's family and
	// decides the traversal order below it.
	VisitOrder(node *Tree[P]) VisitOrder

	// VisitInternalNode is called once per internal node.
	VisitInternalNode(node *Tree[P])

	// VisitLeafNode is called once per leaf.
	VisitLeafNode(node *Tree[P])
}

// Visit walks the subtree rooted at t, calling back exactly one of
// VisitInternalNode or VisitLeafNode per node.
func (t *Tree[P]) Visit(visitor TreeVisitor[P]) {
	if t.cut == nil {
		visitor.VisitLeafNode(t)
		return
	}
	switch visitor.VisitOrder(t) {
	case PlusMinusSub:
		t.plus.Visit(visitor)
		t.minus.Visit(visitor)
		visitor.VisitInternalNode(t)
	case PlusSubMinus:
		t.plus.Visit(visitor)
		visitor.VisitInternalNode(t)
		t.minus.Visit(visitor)
	case MinusPlusSub:
		t.minus.Visit(visitor)
		t.plus.Visit(visitor)
		visitor.VisitInternalNode(t)
	case MinusSubPlus:
		t.minus.Visit(visitor)
		visitor.VisitInternalNode(t)
		t.plus.Visit(visitor)
	case SubPlusMinus:
		visitor.VisitInternalNode(t)
		t.plus.Visit(visitor)
		t.minus.Visit(visitor)
	default:
		visitor.VisitInternalNode(t)
		t.minus.Visit(visitor)
		t.plus.Visit(visitor)
	}
}
