// SPDX-License-Identifier: MIT

// Package pipeline drives the column loop: slice the sample stream into
// fixed-length analysis windows, extract a spectrum frame per window and
// paint it into the banded raster image. The loop is single-threaded and
// synchronous; each column writes a disjoint set of pixels, so nothing
// is shared across iterations except the image itself.
package pipeline

import (
	"fmt"
	"image"

	"specgram/internal/config"
	"specgram/internal/log"
	"specgram/internal/raster"
	"specgram/internal/spectrum"
)

// ProgressFunc is invoked once per processed column. It decouples
// progress display from the data transformation; a nil callback is
// simply not called.
type ProgressFunc func(column, totalColumns int)

// Columns returns the number of full analysis windows in a stream of
// sampleCount samples. Trailing samples short of one window are dropped.
func Columns(sampleCount, windowSize int) int {
	return sampleCount / windowSize
}

// Window returns the half-open sample range of window i, clipped to
// sampleCount.
func Window(i, windowSize, sampleCount int) (start, end int) {
	start = i * windowSize
	end = start + windowSize
	if end > sampleCount {
		end = sampleCount
	}
	return start, end
}

// Render converts a sample stream into a finished spectrogram image.
// The image is allocated once with its final dimensions and filled
// column by column in increasing order; any column failure aborts the
// render rather than leaving NaN-derived pixels behind.
func Render(samples []float32, cfg *config.Config, progress ProgressFunc) (*image.RGBA, error) {
	totalColumns := Columns(len(samples), cfg.WindowSize)
	if totalColumns == 0 {
		return nil, fmt.Errorf("render: input too short: %d samples, need at least %d", len(samples), cfg.WindowSize)
	}

	mode, err := raster.ParseAxisMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	extractor, err := spectrum.NewExtractor(cfg.WindowSize, cfg.SampleRate, cfg.FreqMax, cfg.FFTWindow, spectrum.ScaleToZeroToOne)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	layout := raster.NewLayout(totalColumns, cfg.RowHeight)
	painter, err := raster.NewPainter(mode, layout, cfg.FreqMin, cfg.FreqMax, cfg.Tempo)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	log.Debugf("pipeline: %d columns into %d band(s) of %dx%d (%s axis)",
		totalColumns, layout.Bands, layout.Width, layout.RowsPerBand, mode)

	img := layout.NewImage()
	for column := 0; column < totalColumns; column++ {
		start, end := Window(column, cfg.WindowSize, len(samples))
		frame, err := extractor.Extract(samples[start:end])
		if err != nil {
			return nil, fmt.Errorf("render: column %d: %w", column, err)
		}
		painter.Paint(img, column, frame)
		if progress != nil {
			progress(column, totalColumns)
		}
	}

	return img, nil
}
