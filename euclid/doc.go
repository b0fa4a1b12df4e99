// Package euclid provides one- and two-dimensional Euclidean spaces for
// the bsp partitioning engine: vectors, oriented points and lines as
// hyperplanes, interval sets on the real line and polygon sets in the
// plane.
//
// 🚀 What is euclid?
//
//	The bsp package is space-agnostic; euclid supplies the concrete
//	geometry.  On the line, hyperplanes are oriented points and regions
//	are unions of intervals.  In the plane, hyperplanes are oriented
//	lines, a line's sub-space is the real line of its abscissas, and
//	regions are arbitrary (possibly unbounded) polygons.
//
// ✨ Key features:
//   - Vector1D / Vector2D value types with plain exported fields
//   - OrientedPoint and Line hyperplanes; Line embeds the plane onto its
//     1D abscissa axis (ToSubSpace / ToSpace)
//   - IntervalsSet: interval extraction (AsList), measure, barycenter,
//     infimum/supremum, direct boundary projection
//   - PolygonsSet: area and barycenter by boundary integration,
//     axis-aligned Box helper, nearest-boundary projection
//   - full interoperability with bsp set operations and BuildConvex
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/lvlnum/bsp"
//	    "github.com/katalvlaran/lvlnum/euclid"
//	)
//
//	square := euclid.Box(0, 1, 0, 1, 1e-10)
//	disk, _ := bsp.BuildConvex[euclid.Vector2D](lines...)
//	merged := bsp.Union[euclid.Vector2D](square, disk)
//	fmt.Println(merged.Size(), merged.CheckPoint(euclid.Vector2D{X: 2, Y: 2}))
//
// Orientation conventions:
//
//   - An oriented point at location L with direct orientation has offset
//     x-L: the plus side points towards +∞.
//   - A line built from p1 to p2 keeps its minus side on the left of the
//     p1→p2 direction, so counterclockwise boundaries enclose their
//     interior on the minus side.
//
// See example_test.go for runnable examples.
package euclid
