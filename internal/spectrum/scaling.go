// SPDX-License-Identifier: MIT
package spectrum

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/dsp/window"
)

// Scaler normalizes the magnitudes of a frame in place. The raster stage
// expects magnitudes in [0,1]; any function satisfying that contract can
// be plugged into an Extractor without touching downstream code.
type Scaler func(Frame)

// ScaleToZeroToOne divides every magnitude by the frame maximum, mapping
// the loudest bin to exactly 1.0. A silent frame (all zero) is left
// untouched rather than divided by zero.
func ScaleToZeroToOne(f Frame) {
	var max float64
	for _, b := range f {
		if b.Mag > max {
			max = b.Mag
		}
	}
	if max == 0 {
		return
	}
	for i := range f {
		f[i].Mag /= max
	}
}

// windowCoefficients precomputes window function coefficients by applying
// the gonum window to a slice of ones. "rectangular" (or empty) leaves
// the samples unshaped, matching a plain FFT of the raw window.
func windowCoefficients(n int, name string) ([]float64, error) {
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = 1.0
	}
	switch strings.ToLower(name) {
	case "", "rectangular":
		// No shaping.
	case "hann":
		window.Hann(coeffs)
	case "hamming":
		window.Hamming(coeffs)
	case "blackman":
		window.Blackman(coeffs)
	case "nuttall":
		window.Nuttall(coeffs)
	case "lanczos":
		window.Lanczos(coeffs)
	case "bartlett-hann", "bartletthann":
		window.BartlettHann(coeffs)
	default:
		return nil, fmt.Errorf("unknown window function %q", name)
	}
	return coeffs, nil
}
