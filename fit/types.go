// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"math"
)

// ErrNoObservations is returned by Fit when the observation set is empty.
var ErrNoObservations = errors.New("fit: no observations")

// ObservedPoint is a single weighted sample (x, y) of the curve being
// fitted. Weight scales the sample's influence on the cost function; a
// weight of 1 is a plain unweighted sample.
type ObservedPoint struct {
	X      float64
	Y      float64
	Weight float64
}

// Observations accumulates weighted samples for a fit. The zero value is
// an empty, ready-to-use accumulator.
//
// Not safe for concurrent use.
type Observations struct {
	points []ObservedPoint
}

// NewObservations returns an empty accumulator.
func NewObservations() *Observations { return &Observations{} }

// Add appends an unweighted sample (weight 1).
func (o *Observations) Add(x, y float64) {
	o.AddWeighted(x, y, 1)
}

// AddWeighted appends a sample with an explicit weight. Weights are
// validated when the fit runs, not here, so an accumulator never rejects
// data.
func (o *Observations) AddWeighted(x, y, weight float64) {
	o.points = append(o.points, ObservedPoint{X: x, Y: y, Weight: weight})
}

// AddPoint appends a prepared sample verbatim.
func (o *Observations) AddPoint(p ObservedPoint) {
	o.points = append(o.points, p)
}

// Len reports the number of accumulated samples.
func (o *Observations) Len() int { return len(o.points) }

// Points returns a copy of the accumulated samples in insertion order.
func (o *Observations) Points() []ObservedPoint {
	out := make([]ObservedPoint, len(o.points))
	copy(out, o.points)
	return out
}

// ToSlices splits the samples into parallel x and y slices, dropping the
// weights. Convenient for plotting and for unweighted kernels.
func (o *Observations) ToSlices() (xs, ys []float64) {
	xs = make([]float64, len(o.points))
	ys = make([]float64, len(o.points))
	for i, p := range o.points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// Weights returns the per-sample weights in insertion order.
func (o *Observations) Weights() []float64 {
	out := make([]float64, len(o.points))
	for i, p := range o.points {
		out[i] = p.Weight
	}
	return out
}

// WSqrt returns the square roots of the per-sample weights, the factors
// by which a weighted fit scales each residual. Negative weights yield
// NaN here and are rejected by the fit itself.
func (o *Observations) WSqrt() []float64 {
	out := make([]float64, len(o.points))
	for i, p := range o.points {
		out[i] = math.Sqrt(p.Weight)
	}
	return out
}

// Clear drops the accumulated samples, keeping the capacity for reuse.
func (o *Observations) Clear() { o.points = o.points[:0] }
