// Package bsp implements Binary Space Partitioning trees over arbitrary
// spaces, together with the region algebra built on top of them:
// set operations, point location, boundary extraction and boundary
// projection.
//
// 🚀 What is BSP?
//
//	A BSP tree recursively splits a space with hyperplanes.  Each internal
//	node carries a "cut" (the part of a hyperplane inside the node's cell);
//	each leaf is an elementary convex cell.  Tagging leaves with an
//	inside/outside flag turns a tree into a Region - an arbitrary polytope -
//	on which boolean set operations become tree merges.  BSP trees power:
//	  • constructive solid geometry (union/intersection/difference)
//	  • point-in-region and nearest-boundary queries
//	  • interval sets on the line, polygons in the plane
//
// ✨ Key features:
//   - generic over the point type: any space with hyperplanes plugs in by
//     implementing Hyperplane and SubHyperplane
//   - Tree: insertion of cuts, cell lookup, structural split and merge,
//     six traversal orders negotiated per node by a TreeVisitor
//   - Region and RegionCore: inside/outside semantics, point location
//     (Inside / Outside / Boundary), lazy boundary construction
//   - Union, Intersection, Xor, Difference, Complement, BuildConvex
//   - ProjectToBoundary: nearest boundary point with signed offset
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/bsp"
//
//	// euclid provides ready-made 1D/2D spaces; any space works the same.
//	square, _ := bsp.BuildConvex[euclid.Vector2D](
//	    euclid.NewLineFromPoints(a, b, tol), // each hyperplane keeps the
//	    euclid.NewLineFromPoints(b, c, tol), // region on its minus side
//	    ...,
//	)
//	loc := square.CheckPoint(p)        // bsp.Inside / Outside / Boundary
//	both := bsp.Union(square, disk)    // consumes both operands
//
// Conventions:
//
//   - A hyperplane splits its space in a plus side (positive offsets) and a
//     minus side (negative offsets).  Regions built by BuildConvex lie on
//     the minus side of every cut.
//   - Merge-style operations consume their operands: the input trees are
//     rearranged in place and must not be reused afterwards.
//   - Trees under construction are not safe for concurrent use; completed
//     trees may be traversed concurrently.
//
// See euclid for concrete one- and two-dimensional spaces, and
// example_test.go files in both packages for runnable walkthroughs.
package bsp
