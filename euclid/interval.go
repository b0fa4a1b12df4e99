package euclid

import "github.com/katalvlaran/lvlnum/bsp"

// Interval is a connected part of the real line, possibly unbounded on
// either side.
type Interval struct {
	Lower float64
	Upper float64
}

// Size returns the interval length.
func (i Interval) Size() float64 { return i.Upper - i.Lower }

// Barycenter returns the interval midpoint.
func (i Interval) Barycenter() float64 { return 0.5 * (i.Lower + i.Upper) }

// CheckPoint locates point relative to the interval, treating endpoints
// as boundary within tolerance.
func (i Interval) CheckPoint(point, tolerance float64) bsp.Location {
	switch {
	case point < i.Lower-tolerance || point > i.Upper+tolerance:
		return bsp.Outside
	case point > i.Lower+tolerance && point < i.Upper-tolerance:
		return bsp.Inside
	default:
		return bsp.Boundary
	}
}
