package bsp_test

import (
	"testing"

	"github.com/katalvlaran/lvlnum/bsp"
	"github.com/katalvlaran/lvlnum/euclid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval13() *euclid.IntervalsSet { return euclid.NewIntervalsSet(1, 3, tol) }

func emptyLine() *euclid.IntervalsSet {
	return euclid.NewIntervalsSetFromTree(bsp.NewLeaf[euclid.Vector1D](false), tol)
}

// TestRegion_EmptyFullPredicates checks the leaf-scan predicates on whole
// trees and on subtrees.
func TestRegion_EmptyFullPredicates(t *testing.T) {
	set := interval13()
	assert.False(t, set.IsEmpty())
	assert.False(t, set.IsFull())

	tree := set.Tree(false)
	assert.True(t, set.IsEmptyTree(tree.Plus()), "x < 1 is fully outside")
	assert.False(t, set.IsEmptyTree(tree.Minus()), "x > 1 contains inside cells")
	assert.False(t, set.IsFullTree(tree.Minus()))

	assert.True(t, emptyLine().IsEmpty())
	assert.True(t, euclid.FullLine(tol).IsFull())
}

// TestRegion_BoundaryAttributes asks for the boundary-augmented tree and
// checks the attributes appear on internal nodes.
func TestRegion_BoundaryAttributes(t *testing.T) {
	set := interval13()
	tree := set.Tree(true)

	require.False(t, tree.IsLeaf())
	attr, ok := tree.Attribute().(*bsp.BoundaryAttribute[euclid.Vector1D])
	require.True(t, ok, "internal nodes carry boundary attributes after Tree(true)")
	assert.NotNil(t, attr)

	// Point hyperplanes have zero measure, so the 1D boundary size is 0.
	assert.InDelta(t, 0.0, set.BoundarySize(), tol)
}

// TestSetOps_Identities verifies the algebraic identities against the
// empty and full regions.
func TestSetOps_Identities(t *testing.T) {
	union := bsp.Union[euclid.Vector1D](interval13(), emptyLine())
	assert.InDelta(t, 2.0, union.Size(), tol, "A union empty = A")

	inter := bsp.Intersection[euclid.Vector1D](interval13(), euclid.FullLine(tol))
	assert.InDelta(t, 2.0, inter.Size(), tol, "A inter full = A")
	assert.Equal(t, bsp.Inside, inter.CheckPoint(euclid.Vector1D{X: 2}))

	gone := bsp.Xor[euclid.Vector1D](interval13(), interval13())
	assert.True(t, gone.IsEmpty(), "A xor A is empty")

	same := bsp.Difference[euclid.Vector1D](interval13(), emptyLine())
	assert.InDelta(t, 2.0, same.Size(), tol, "A minus empty = A")

	nothing := bsp.Difference[euclid.Vector1D](interval13(), interval13())
	assert.True(t, nothing.IsEmpty(), "A minus A is empty")
}

// TestSetOps_AlgebraicLaws verifies the merges against their classical
// definitions: union is commutative as a point set, a region never meets
// its own complement, and difference equals intersection with the
// complement.
func TestSetOps_AlgebraicLaws(t *testing.T) {
	interval24 := func() *euclid.IntervalsSet { return euclid.NewIntervalsSet(2, 4, tol) }
	probes := []float64{0, 1.5, 2.5, 3.5, 5}

	ab := bsp.Union[euclid.Vector1D](interval13(), interval24())
	ba := bsp.Union[euclid.Vector1D](interval24(), interval13())
	assert.InDelta(t, ab.Size(), ba.Size(), tol, "union is commutative")
	for _, x := range probes {
		p := euclid.Vector1D{X: x}
		assert.Equal(t, ab.CheckPoint(p), ba.CheckPoint(p), "membership agrees at %g", x)
	}

	disjoint := bsp.Intersection[euclid.Vector1D](interval13(), bsp.Complement[euclid.Vector1D](interval13()))
	assert.True(t, disjoint.IsEmpty(), "A inter complement(A) is empty")

	diff := bsp.Difference[euclid.Vector1D](interval13(), interval24())
	alt := bsp.Intersection[euclid.Vector1D](interval13(), bsp.Complement[euclid.Vector1D](interval24()))
	assert.InDelta(t, diff.Size(), alt.Size(), tol, "difference is intersection with the complement")
	for _, x := range probes {
		p := euclid.Vector1D{X: x}
		assert.Equal(t, diff.CheckPoint(p), alt.CheckPoint(p), "membership agrees at %g", x)
	}
}

// TestComplement_Involution checks that complementing twice restores the
// region.
func TestComplement_Involution(t *testing.T) {
	set := interval13()
	twice := bsp.Complement[euclid.Vector1D](bsp.Complement[euclid.Vector1D](set))

	assert.InDelta(t, 2.0, twice.Size(), tol)
	assert.Equal(t, bsp.Inside, twice.CheckPoint(euclid.Vector1D{X: 2}))
	assert.Equal(t, bsp.Outside, twice.CheckPoint(euclid.Vector1D{X: 0}))

	empty := bsp.Complement[euclid.Vector1D](euclid.FullLine(tol))
	assert.True(t, empty.IsEmpty(), "complement of full is empty")
}

// TestLocation_String covers the point location labels.
func TestLocation_String(t *testing.T) {
	assert.Equal(t, "inside", bsp.Inside.String())
	assert.Equal(t, "outside", bsp.Outside.String())
	assert.Equal(t, "boundary", bsp.Boundary.String())
}
