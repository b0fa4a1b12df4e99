// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT returns the discrete Fourier transform of data. The input is left
// untouched; the result is freshly allocated. Any length works, not just
// powers of two.
//
// Standard normalization leaves the forward transform unscaled; Unitary
// scales it by 1/√n.
func FFT(data []complex128, opts ...Option) ([]complex128, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	o := gatherOptions(opts...)

	coeff := fourier.NewCmplxFFT(len(data)).Coefficients(nil, data)
	if o.normalization == Unitary {
		scale(coeff, 1/math.Sqrt(float64(len(data))))
	}
	return coeff, nil
}

// Inverse returns the inverse discrete Fourier transform of coeff, so
// that Inverse(FFT(x)) reproduces x under either normalization.
//
// Standard normalization scales the inverse by 1/n; Unitary scales it by
// 1/√n.
func Inverse(coeff []complex128, opts ...Option) ([]complex128, error) {
	if len(coeff) == 0 {
		return nil, ErrEmptyInput
	}
	o := gatherOptions(opts...)

	seq := fourier.NewCmplxFFT(len(coeff)).Sequence(nil, coeff)
	switch o.normalization {
	case Unitary:
		scale(seq, 1/math.Sqrt(float64(len(coeff))))
	default:
		scale(seq, 1/float64(len(coeff)))
	}
	return seq, nil
}

// Real returns the half spectrum of a real sequence: n/2+1 coefficients
// from DC up to the Nyquist bin. The remaining bins of the full spectrum
// are their conjugate mirror and carry no extra information.
func Real(data []float64, opts ...Option) ([]complex128, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	o := gatherOptions(opts...)

	coeff := fourier.NewFFT(len(data)).Coefficients(nil, data)
	if o.normalization == Unitary {
		scale(coeff, 1/math.Sqrt(float64(len(data))))
	}
	return coeff, nil
}

// scale multiplies every coefficient by s in place.
func scale(data []complex128, s float64) {
	for i := range data {
		data[i] *= complex(s, 0)
	}
}
