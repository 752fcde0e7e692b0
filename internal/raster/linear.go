// SPDX-License-Identifier: MIT
package raster

import (
	"image"
	"image/color"

	"specgram/internal/spectrum"
)

// StridedMapper paints one spectrum frame down one image column on a
// linear frequency axis, packing four consecutive bins into the four
// channels of a single pixel. This trades vertical resolution for a
// compact image and skips the log transform entirely; it is a distinct
// mode, not an approximation of the logarithmic one.
//
// Unlike LogMapper there is no forward fill: rows and channels without a
// corresponding bin stay at zero.
type StridedMapper struct {
	layout Layout
	tempo  float64 // Reserved for beat-aligned layout; unused in the fill
}

// NewStridedMapper creates a mapper for the given layout. tempo is
// accepted for forward compatibility and does not affect painting.
func NewStridedMapper(layout Layout, tempo float64) *StridedMapper {
	return &StridedMapper{layout: layout, tempo: tempo}
}

// Paint walks bin indices in strides of four up to
// min(rowsPerBand/2, len(frame)) and writes one pixel per stride at row
// stride/4 within the column's band. Bins past the end of the frame
// leave their channel at zero.
func (m *StridedMapper) Paint(img *image.RGBA, column int, frame spectrum.Frame) {
	x := m.layout.X(column)
	offset := m.layout.RowOffset(column)

	limit := m.layout.RowsPerBand / 2
	if len(frame) < limit {
		limit = len(frame)
	}

	for y := 0; y < limit; y += 4 {
		var px [4]uint8
		for c := range px {
			if y+c < len(frame) {
				px[c] = Quantize(frame[y+c].Mag)
			}
		}
		img.SetRGBA(x, offset+y/4, color.RGBA{R: px[0], G: px[1], B: px[2], A: px[3]})
	}
}
