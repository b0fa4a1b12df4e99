// SPDX-License-Identifier: MIT
package fit_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/fit"
)

// ExampleFit recovers a line from exact samples; the degree-1 polynomial
// supplies its own zero start.
func ExampleFit() {
	obs := fit.NewObservations()
	obs.Add(0, 1)
	obs.Add(1, 3)
	obs.Add(2, 5)

	opt, err := fit.Fit(fit.Polynomial(1), obs)
	if err != nil {
		fmt.Println("fit:", err)
		return
	}
	fmt.Printf("y = %.3f + %.3f·x\n", opt.Point().AtVec(0), opt.Point().AtVec(1))
	// Output: y = 1.000 + 2.000·x
}

// ExampleFitter_weighted silences an outlier with a zero weight.
func ExampleFitter_weighted() {
	obs := fit.NewObservations()
	obs.Add(0, 0)
	obs.Add(1, 1)
	obs.AddWeighted(2, 5, 0)

	fitter := fit.NewFitter(fit.Polynomial(1))
	opt, err := fitter.Fit(obs)
	if err != nil {
		fmt.Println("fit:", err)
		return
	}
	fmt.Printf("slope: %.3f\n", opt.Point().AtVec(1))
	// Output: slope: 1.000
}

// ExamplePolynomialCurve_Value evaluates a fitted parabola away from the
// samples.
func ExamplePolynomialCurve_Value() {
	curve := fit.Polynomial(2)
	coeffs := []float64{2, -1, 0.5}

	fmt.Println(curve.Value(coeffs, 4))
	// Output: 6
}
