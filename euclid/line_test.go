package euclid_test

import (
	"testing"

	"github.com/katalvlaran/lvlnum/bsp"
	"github.com/katalvlaran/lvlnum/euclid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLine_OffsetSides verifies the sign convention: negative on the left
// of the direction of travel, positive on the right.
func TestLine_OffsetSides(t *testing.T) {
	xAxis := euclid.NewLineFromPoints(euclid.Vector2D{X: 0, Y: 0}, euclid.Vector2D{X: 1, Y: 0}, tol)

	assert.InDelta(t, -1.0, xAxis.Offset(euclid.Vector2D{X: 0, Y: 1}), tol, "above is left, minus side")
	assert.InDelta(t, 1.0, xAxis.Offset(euclid.Vector2D{X: 0, Y: -1}), tol, "below is right, plus side")
	assert.True(t, xAxis.Contains(euclid.Vector2D{X: 42, Y: 0}))
	assert.False(t, xAxis.Contains(euclid.Vector2D{X: 42, Y: 0.5}))
	assert.InDelta(t, 0.5, xAxis.DistanceTo(euclid.Vector2D{X: 42, Y: 0.5}), tol)
}

// TestLine_Reverse checks that reversing swaps the sides and keeps the
// original value untouched.
func TestLine_Reverse(t *testing.T) {
	line := euclid.NewLineFromPoints(euclid.Vector2D{X: 1, Y: 2}, euclid.Vector2D{X: 4, Y: 6}, tol)
	reversed := line.Reverse()

	p := euclid.Vector2D{X: -3, Y: 7}
	assert.InDelta(t, -line.Offset(p), reversed.Offset(p), tol, "offsets flip sign")
	assert.False(t, line.SameOrientationAs(reversed))
	assert.True(t, line.SameOrientationAs(line.Copy().(euclid.Line)))

	twice := reversed.Reverse()
	assert.InDelta(t, line.Angle(), twice.Angle(), tol, "double reverse restores the direction")
	assert.InDelta(t, line.Offset(p), twice.Offset(p), tol)
}

// TestLine_Project verifies orthogonal projection onto the diagonal.
func TestLine_Project(t *testing.T) {
	diagonal := euclid.NewLineFromPoints(euclid.Vector2D{X: 0, Y: 0}, euclid.Vector2D{X: 1, Y: 1}, tol)

	projected := diagonal.Project(euclid.Vector2D{X: 1, Y: 0})
	assert.InDelta(t, 0.5, projected.X, tol)
	assert.InDelta(t, 0.5, projected.Y, tol)
	assert.True(t, diagonal.Contains(projected), "projection lands on the line")
}

// TestLine_SubSpaceRoundTrip lifts abscissas back and forth along an
// arbitrary line.
func TestLine_SubSpaceRoundTrip(t *testing.T) {
	line := euclid.NewLine(euclid.Vector2D{X: 2, Y: -1}, 0.7, tol)

	for _, abscissa := range []float64{-3, 0, 0.25, 12} {
		onLine := line.ToSpace(euclid.Vector1D{X: abscissa})
		assert.True(t, line.Contains(onLine), "ToSpace lands on the line")
		back := line.ToSubSpace(onLine)
		assert.InDelta(t, abscissa, back.X, tol, "abscissa survives the round trip")
	}
}

// TestLine_PointAt checks the offset form of point construction.
func TestLine_PointAt(t *testing.T) {
	xAxis := euclid.NewLineFromPoints(euclid.Vector2D{X: 0, Y: 0}, euclid.Vector2D{X: 1, Y: 0}, tol)

	p := xAxis.PointAt(euclid.Vector1D{X: 2}, -1)
	assert.InDelta(t, 2.0, p.X, tol)
	assert.InDelta(t, 1.0, p.Y, tol, "negative offset is the left side, above the x axis")
	assert.InDelta(t, -1.0, xAxis.Offset(p), tol)

	onLine := xAxis.PointAt(euclid.Vector1D{X: 2}, 0)
	assert.InDelta(t, 0.0, xAxis.Offset(onLine), tol)
}

// TestLine_Intersection covers crossing and parallel pairs.
func TestLine_Intersection(t *testing.T) {
	xAxis := euclid.NewLineFromPoints(euclid.Vector2D{X: 0, Y: 0}, euclid.Vector2D{X: 1, Y: 0}, tol)
	vertical := euclid.NewLineFromPoints(euclid.Vector2D{X: 1, Y: 0}, euclid.Vector2D{X: 1, Y: 1}, tol)

	crossing, ok := xAxis.Intersection(vertical)
	require.True(t, ok, "perpendicular lines cross")
	assert.InDelta(t, 1.0, crossing.X, tol)
	assert.InDelta(t, 0.0, crossing.Y, tol)

	shifted := euclid.NewLine(euclid.Vector2D{X: 0, Y: 1}, 0, tol)
	_, ok = xAxis.Intersection(shifted)
	assert.False(t, ok, "parallel lines do not cross")

	assert.InDelta(t, -1.0, xAxis.ParallelOffset(shifted), tol, "the shifted line lies on the minus side")
	assert.InDelta(t, 1.0, shifted.ParallelOffset(xAxis), tol)
}

// TestOrientedPoint_Offset verifies both orientations of the 1D
// hyperplane.
func TestOrientedPoint_Offset(t *testing.T) {
	direct := euclid.NewOrientedPoint(euclid.Vector1D{X: 2}, true, tol)
	assert.InDelta(t, 3.0, direct.Offset(euclid.Vector1D{X: 5}), tol)
	assert.InDelta(t, -3.0, direct.Offset(euclid.Vector1D{X: -1}), tol)
	assert.True(t, direct.IsDirect())

	reversed := direct.Reverse()
	assert.InDelta(t, -3.0, reversed.Offset(euclid.Vector1D{X: 5}), tol)
	assert.False(t, reversed.IsDirect())
	assert.False(t, direct.SameOrientationAs(reversed))
	assert.True(t, direct.IsDirect(), "Reverse leaves the receiver untouched")

	assert.InDelta(t, 2.0, direct.Project(euclid.Vector1D{X: 99}).X, tol, "projection is the location itself")
}

// TestSubOrientedPoint_Split locates a point cut relative to another
// oriented point.
func TestSubOrientedPoint_Split(t *testing.T) {
	splitter := euclid.NewOrientedPoint(euclid.Vector1D{X: 0}, true, tol)

	above := euclid.NewOrientedPoint(euclid.Vector1D{X: 2}, true, tol).WholeHyperplane()
	assert.Equal(t, bsp.SidePlus, above.Split(splitter).Side())

	below := euclid.NewOrientedPoint(euclid.Vector1D{X: -2}, true, tol).WholeHyperplane()
	assert.Equal(t, bsp.SideMinus, below.Split(splitter).Side())

	coincident := euclid.NewOrientedPoint(euclid.Vector1D{X: 0}, false, tol).WholeHyperplane()
	assert.Equal(t, bsp.SideHyper, coincident.Split(splitter).Side())
}
