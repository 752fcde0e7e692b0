// SPDX-License-Identifier: MIT
package raster

import (
	"image"
	"image/color"
	"math"

	"specgram/internal/spectrum"
)

// LogMapper paints one spectrum frame down one image column with a
// logarithmic frequency axis. Linear FFT bins are sparse at low
// log-frequency and dense at high log-frequency, so the fill is a step
// function: rows without a directly mapped bin carry the last-known
// amplitude forward. Every row of the column's band gets painted.
type LogMapper struct {
	layout Layout
	logMin float64
	logMax float64
}

// NewLogMapper creates a mapper for the given layout covering
// [freqMin, freqMax] Hz. Both bounds must be positive.
func NewLogMapper(layout Layout, freqMin, freqMax float64) *LogMapper {
	return &LogMapper{
		layout: layout,
		logMin: math.Log10(freqMin),
		logMax: math.Log10(freqMax),
	}
}

// Paint fills the column's band rows top to bottom. For each bin in
// ascending frequency order the target row is the log-scaled position
// within the band; all rows up to it receive the previous bin's
// quantized value (step-hold). Bins outside [freqMin, freqMax] are
// skipped without disturbing the carry. The row cursor never decreases.
func (m *LogMapper) Paint(img *image.RGBA, column int, frame spectrum.Frame) {
	x := m.layout.X(column)
	offset := m.layout.RowOffset(column)
	bottom := offset + m.layout.RowsPerBand
	span := m.logMax - m.logMin

	row := offset
	var prev uint8

	for _, bin := range frame {
		logFreq := math.Log10(bin.Freq)
		if logFreq < m.logMin || logFreq > m.logMax {
			continue
		}

		target := offset + int(math.Round((logFreq-m.logMin)/span*float64(m.layout.RowsPerBand)))
		for row < target {
			img.SetRGBA(x, row, gray(prev))
			row++
		}
		prev = Quantize(bin.Mag)
	}

	// The column must be fully painted down to the band's bottom edge.
	for row < bottom {
		img.SetRGBA(x, row, gray(prev))
		row++
	}
}

// gray repeats one channel value across R, G, B and A.
func gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: v}
}
