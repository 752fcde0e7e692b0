// SPDX-License-Identifier: MIT
package raster

import (
	"fmt"
	"image"

	"specgram/internal/spectrum"
)

// AxisMode selects how frequency bins map onto image rows. The set of
// modes is closed and small, so it is a tagged constant dispatched once
// rather than an open extension point.
type AxisMode int

const (
	// AxisLogarithmic maps frequency logarithmically with step-hold fill.
	AxisLogarithmic AxisMode = iota
	// AxisLinearStrided packs four linear bins per pixel, no fill.
	AxisLinearStrided
)

// String returns the CLI-facing name of the mode.
func (m AxisMode) String() string {
	switch m {
	case AxisLogarithmic:
		return "log"
	case AxisLinearStrided:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseAxisMode converts a mode name ("log" or "linear") to an AxisMode.
func ParseAxisMode(s string) (AxisMode, error) {
	switch s {
	case "log":
		return AxisLogarithmic, nil
	case "linear":
		return AxisLinearStrided, nil
	default:
		return AxisLogarithmic, fmt.Errorf("unknown axis mode %q", s)
	}
}

// ColumnPainter paints one spectrum frame into one image column.
type ColumnPainter interface {
	Paint(img *image.RGBA, column int, frame spectrum.Frame)
}

// NewPainter returns the painter for the given mode. freqMin and freqMax
// bound the logarithmic axis; tempo is passed through to the strided
// mapper.
func NewPainter(mode AxisMode, layout Layout, freqMin, freqMax, tempo float64) (ColumnPainter, error) {
	switch mode {
	case AxisLogarithmic:
		return NewLogMapper(layout, freqMin, freqMax), nil
	case AxisLinearStrided:
		return NewStridedMapper(layout, tempo), nil
	default:
		return nil, fmt.Errorf("unknown axis mode %d", mode)
	}
}
