package bsp

import "errors"

// Sentinel errors returned by convex region construction.
// Callers must match them via errors.Is.
var (
	// ErrInconsistentHyperplanes is returned by BuildConvex when a
	// hyperplane lies entirely outside the convex cell carved so far,
	// so the input set cannot bound a convex region.
	ErrInconsistentHyperplanes = errors.New("bsp: hyperplanes do not bound a convex region")

	// ErrOppositeHyperplanes is returned by BuildConvex when two input
	// hyperplanes coincide with opposite orientations, leaving an empty
	// slab instead of a convex cell.
	ErrOppositeHyperplanes = errors.New("bsp: opposite oriented parallel hyperplanes")
)
