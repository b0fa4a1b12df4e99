package bsp

import "math"

// BoundaryProjection is the result of projecting a point onto a region's
// boundary: the original point, its image on the boundary (absent for
// empty and full regions) and the signed offset between them, negative
// when the original point is inside the region.
type BoundaryProjection[P Point[P]] struct {
	original  P
	projected P
	hasImage  bool
	offset    float64
}

// NewBoundaryProjection packs a projection result. Spaces with their own
// direct projection logic (dimension one) use it instead of the visitor.
func NewBoundaryProjection[P Point[P]](original, projected P, hasImage bool, offset float64) BoundaryProjection[P] {
	return BoundaryProjection[P]{original: original, projected: projected, hasImage: hasImage, offset: offset}
}

// Original returns the point that was projected.
func (b BoundaryProjection[P]) Original() P { return b.original }

// Projected returns the nearest boundary point, with false when the
// region has no boundary at all.
func (b BoundaryProjection[P]) Projected() (P, bool) { return b.projected, b.hasImage }

// Offset returns the signed distance to the boundary: negative inside
// the region, positive outside, ±Inf when no boundary exists (-Inf for
// a full region, +Inf for an empty one).
func (b BoundaryProjection[P]) Offset() float64 { return b.offset }

// ProjectToBoundary computes the projection of point onto the boundary of
// region. Q is the sub-space type of the region's hyperplanes: the
// hyperplanes must implement Embedding[P, Q] and their boundary parts
// Embedded[P, Q], which is how the search recurses into lower dimensions
// for corner-like nearest points.
func ProjectToBoundary[P Point[P], Q Point[Q]](region Region[P], point P) BoundaryProjection[P] {
	pr := &projector[P, Q]{original: point, offset: math.Inf(1)}
	region.Tree(true).Visit(pr)
	return pr.projection()
}

// projector walks the tree visiting cells in distance order, testing the
// cut of every crossed node as a projection candidate.
type projector[P Point[P], Q Point[Q]] struct {
	original  P
	projected P
	found     bool
	leaf      *Tree[P]
	offset    float64
}

// VisitOrder steers the traversal so the first leaf reached is the cell
// containing the original point.
func (pr *projector[P, Q]) VisitOrder(node *Tree[P]) VisitOrder {
	if node.cut.Hyperplane().Offset(pr.original) <= 0 {
		return MinusSubPlus
	}
	return PlusSubMinus
}

func (pr *projector[P, Q]) VisitInternalNode(node *Tree[P]) {
	hyperplane := node.cut.Hyperplane()
	signedOffset := hyperplane.Offset(pr.original)
	if math.Abs(signedOffset) >= pr.offset {
		return
	}

	// Stage 1 - try the orthogonal projection against each boundary part.
	regular := hyperplane.Project(pr.original)
	parts := boundaryRegionsOf[P, Q](node)
	for _, part := range parts {
		if belongsToPart(regular, hyperplane, part) {
			pr.projected = regular
			pr.found = true
			pr.offset = math.Abs(signedOffset)
			return
		}
	}

	// Stage 2 - the orthogonal projection fell off the boundary parts:
	// project within the sub-space onto each part's own boundary.
	for _, part := range parts {
		if sp, ok := singularProjection(regular, hyperplane, part); ok {
			if d := pr.original.Distance(sp); d < pr.offset {
				pr.projected = sp
				pr.found = true
				pr.offset = d
			}
		}
	}
}

func (pr *projector[P, Q]) VisitLeafNode(node *Tree[P]) {
	// The first leaf is the cell of the original point; it fixes the
	// offset sign.
	if pr.leaf == nil {
		pr.leaf = node
	}
}

func (pr *projector[P, Q]) projection() BoundaryProjection[P] {
	sign := 1.0
	if pr.leaf != nil {
		if inside, _ := pr.leaf.attribute.(bool); inside {
			sign = -1.0
		}
	}
	return BoundaryProjection[P]{
		original:  pr.original,
		projected: pr.projected,
		hasImage:  pr.found,
		offset:    math.Copysign(pr.offset, sign),
	}
}

// boundaryRegionsOf collects the sub-space regions of the node's boundary
// parts, at most two.
func boundaryRegionsOf[P Point[P], Q Point[Q]](node *Tree[P]) []Region[Q] {
	attr, ok := node.attribute.(*BoundaryAttribute[P])
	if !ok || attr == nil {
		return nil
	}
	regions := make([]Region[Q], 0, 2)
	for _, sub := range []SubHyperplane[P]{attr.PlusInside, attr.PlusOutside} {
		if sub == nil {
			continue
		}
		embedded, ok := sub.(Embedded[P, Q])
		if !ok {
			panic("bsp: boundary part does not embed a sub-space region")
		}
		if region := embedded.RemainingRegion(); region != nil {
			regions = append(regions, region)
		}
	}
	return regions
}

// belongsToPart reports whether a point already on the hyperplane falls
// within one of its boundary parts.
func belongsToPart[P Point[P], Q Point[Q]](point P, hyperplane Hyperplane[P], part Region[Q]) bool {
	embedding, ok := hyperplane.(Embedding[P, Q])
	if !ok {
		panic("bsp: hyperplane does not embed its sub-space")
	}
	return part.CheckPoint(embedding.ToSubSpace(point)) != Outside
}

// singularProjection projects a point already on the hyperplane onto the
// boundary of one of its parts, lifting the result back to the space.
func singularProjection[P Point[P], Q Point[Q]](point P, hyperplane Hyperplane[P], part Region[Q]) (P, bool) {
	embedding, ok := hyperplane.(Embedding[P, Q])
	if !ok {
		panic("bsp: hyperplane does not embed its sub-space")
	}
	bp := part.ProjectToBoundary(embedding.ToSubSpace(point))
	projected, ok := bp.Projected()
	if !ok {
		var zero P
		return zero, false
	}
	return embedding.ToSpace(projected), true
}
