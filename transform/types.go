// SPDX-License-Identifier: MIT

package transform

import "errors"

// ErrEmptyInput is returned when a transform receives no samples.
var ErrEmptyInput = errors.New("transform: empty input")

// Normalization selects how the DFT pair splits the 1/n factor.
//
//   - Standard: forward unscaled, inverse scaled by 1/n. The usual
//     signal-processing convention.
//   - Unitary: both directions scaled by 1/√n, making the transform an
//     isometry (Parseval's identity holds with equal norms).
type Normalization uint8

const (
	Standard Normalization = iota
	Unitary
)

// String implements fmt.Stringer.
func (n Normalization) String() string {
	switch n {
	case Standard:
		return "Standard"
	case Unitary:
		return "Unitary"
	default:
		return "Unknown"
	}
}
