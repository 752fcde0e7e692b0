// SPDX-License-Identifier: MIT
package raster

import (
	"image"

	"specgram/pkg/bitint"
)

// Layout describes the banded geometry of the output image: Width
// columns per band, RowsPerBand image rows per band, Bands bands stacked
// top to bottom. Column i lives in band i/Width at in-band x i%Width.
type Layout struct {
	Width       int // Columns per band
	RowsPerBand int // Image rows per band
	Bands       int // Number of stacked bands
}

// NewLayout derives the band geometry for a recording of totalColumns
// analysis windows. The band width is one quarter of the largest power
// of two strictly below the column count, which keeps bands reasonably
// square, with a floor of one column for very short inputs.
func NewLayout(totalColumns, rowsPerBand int) Layout {
	width := bitint.PrevPowerOfTwo(totalColumns) / 4
	if width < 1 {
		width = 1
	}
	return Layout{
		Width:       width,
		RowsPerBand: rowsPerBand,
		Bands:       totalColumns/width + 1,
	}
}

// Height returns the total image height in rows.
func (l Layout) Height() int {
	return l.RowsPerBand * l.Bands
}

// Band returns the band index holding the given column.
func (l Layout) Band(column int) int {
	return column / l.Width
}

// X returns the in-band x-coordinate of the given column.
func (l Layout) X(column int) int {
	return column % l.Width
}

// RowOffset returns the top image row of the band holding the column.
func (l Layout) RowOffset(column int) int {
	return l.Band(column) * l.RowsPerBand
}

// NewImage allocates the RGBA pixel grid for this layout. The full image
// is allocated up front; columns are painted in increasing order and the
// grid is never read back during the fill.
func (l Layout) NewImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, l.Width, l.Height()))
}
