// SPDX-License-Identifier: MIT

package lsq

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EvaluationCheckerFrom lifts a point/value checker to an
// EvaluationChecker by extracting Point and Residuals from each
// evaluation. The adapter itself never invokes the model.
func EvaluationCheckerFrom(checker VectorChecker) EvaluationChecker {
	return func(iteration int, previous, current Evaluation) bool {
		return checker(iteration,
			vecData(previous.Point()), vecData(previous.Residuals()),
			vecData(current.Point()), vecData(current.Residuals()))
	}
}

// RMSChecker converges when two consecutive evaluations agree on their
// RMS within an absolute tolerance, or within a tolerance relative to
// the larger of the two values.
func RMSChecker(relTol, absTol float64) EvaluationChecker {
	return func(_ int, previous, current Evaluation) bool {
		prev, cur := previous.RMS(), current.RMS()
		diff := math.Abs(prev - cur)
		if diff <= absTol {
			return true
		}
		return diff <= relTol*math.Max(math.Abs(prev), math.Abs(cur))
	}
}

// PointChecker converges when every parameter moves by less than absTol
// plus relTol times its magnitude between consecutive evaluations.
func PointChecker(relTol, absTol float64) EvaluationChecker {
	return func(_ int, previous, current Evaluation) bool {
		prev, cur := previous.Point(), current.Point()
		for i := 0; i < prev.Len(); i++ {
			diff := math.Abs(prev.AtVec(i) - cur.AtVec(i))
			size := math.Max(math.Abs(prev.AtVec(i)), math.Abs(cur.AtVec(i)))
			if diff > absTol && diff > size*relTol {
				return false
			}
		}
		return true
	}
}

// vecData exposes a vector's backing slice for checker consumption.
func vecData(v *mat.VecDense) []float64 {
	raw := v.RawVector()
	if raw.Inc == 1 {
		return raw.Data
	}
	// Strided vectors are repacked; checkers get a plain slice either way.
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
