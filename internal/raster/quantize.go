// SPDX-License-Identifier: MIT

// Package raster maps spectrum frames onto a banded RGBA image. One
// analysis window becomes one image column; columns wrap into vertically
// stacked bands so long recordings produce a tall image of bounded width
// instead of an arbitrarily wide strip.
package raster

// Quantize converts a normalized magnitude in [0,1] to an 8-bit channel
// value by truncation: Quantize(1.0) = 255, Quantize(0.999) = 254.
// Inputs outside [0,1] are a contract violation of the upstream scaling
// step and are deliberately not clamped here.
func Quantize(magnitude float64) uint8 {
	return uint8(magnitude * 255)
}
