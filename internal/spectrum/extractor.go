// SPDX-License-Identifier: MIT
package spectrum

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"specgram/internal/log"
)

// ErrWindowTooShort is returned when an analysis window has fewer samples
// than the FFT primitive can transform.
var ErrWindowTooShort = errors.New("analysis window shorter than 2 samples")

// Bin is one discrete frequency/magnitude pair of a spectrum frame.
type Bin struct {
	Freq float64 // Center frequency in Hz
	Mag  float64 // Magnitude, normalized to [0,1] by the extractor's Scaler
}

// Frame is the spectrum of a single analysis window: bins in strictly
// ascending frequency order, restricted to [0, maxFreq]. One frame maps
// to one output image column.
type Frame []Bin

// Pre-allocated buffers for FFT calculations. The returned Frame is the
// only per-window allocation; it is handed to the caller and never reused.
type workspace struct {
	input     []float64    // Buffer for windowed input samples
	fftOutput []complex128 // Buffer for FFT complex results
	window    []float64    // Pre-calculated window coefficients
}

// Extractor converts fixed-length sample windows into spectrum frames.
// It owns a reusable FFT plan sized for the configured window length;
// shorter final windows are zero-padded up to that length.
type Extractor struct {
	fftSize    int
	sampleRate float64
	maxFreq    float64
	scale      Scaler
	fftObj     *fourier.FFT
	workspace  workspace
}

// NewExtractor creates an Extractor for windows of fftSize samples at the
// given sample rate. Frequencies above maxFreq are cut from every frame.
// windowName selects the window function coefficients ("rectangular" for
// none); scale is applied to each frame's magnitudes before it is
// returned and may be nil to keep raw FFT magnitudes.
func NewExtractor(fftSize int, sampleRate, maxFreq float64, windowName string, scale Scaler) (*Extractor, error) {
	if fftSize < 2 {
		return nil, fmt.Errorf("fft size must be >= 2, got %d", fftSize)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %f", sampleRate)
	}

	windowCoeffs, err := windowCoefficients(fftSize, windowName)
	if err != nil {
		return nil, err
	}

	// FFT output size for real input is N/2 + 1 complex values.
	outputSize := fftSize/2 + 1

	log.Debugf("spectrum: initializing extractor (size: %d, rate: %.1f Hz, window: %s)", fftSize, sampleRate, windowName)

	return &Extractor{
		fftSize:    fftSize,
		sampleRate: sampleRate,
		maxFreq:    maxFreq,
		scale:      scale,
		fftObj:     fourier.NewFFT(fftSize),
		workspace: workspace{
			input:     make([]float64, fftSize),
			fftOutput: make([]complex128, outputSize),
			window:    windowCoeffs,
		},
	}, nil
}

// Extract computes the spectrum frame for one analysis window. The input
// may be shorter than the configured FFT size (trailing window of a
// stream); it is zero-padded. Fewer than 2 samples is an error, not a
// zero frame.
func (e *Extractor) Extract(samples []float32) (Frame, error) {
	if len(samples) < 2 {
		return nil, ErrWindowTooShort
	}

	// Apply window coefficients. Zero-pad if input is shorter than fftSize.
	inputLen := len(samples)
	for i := 0; i < e.fftSize; i++ {
		if i < inputLen {
			e.workspace.input[i] = float64(samples[i]) * e.workspace.window[i]
		} else {
			e.workspace.input[i] = 0
		}
	}

	e.fftObj.Coefficients(e.workspace.fftOutput, e.workspace.input)

	// Collect bins in ascending frequency order up to maxFreq. The bins
	// above the cutoff never reach the scaler, matching the contract that
	// normalization sees only the analyzed range.
	frame := make(Frame, 0, len(e.workspace.fftOutput))
	for i, c := range e.workspace.fftOutput {
		freq := e.fftObj.Freq(i) * e.sampleRate
		if freq > e.maxFreq {
			break
		}
		frame = append(frame, Bin{Freq: freq, Mag: cmplx.Abs(c)})
	}

	if e.scale != nil {
		e.scale(frame)
	}
	return frame, nil
}

// FFTSize returns the configured window length in samples.
func (e *Extractor) FFTSize() int {
	return e.fftSize
}
