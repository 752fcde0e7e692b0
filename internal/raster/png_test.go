// SPDX-License-Identifier: MIT
package raster

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNG(t *testing.T) {
	l := Layout{Width: 4, RowsPerBand: 8, Bands: 2}
	img := l.NewImage()
	// Opaque pixels round-trip exactly through the encoder.
	img.SetRGBA(2, 5, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(img, path); err != nil {
		t.Fatalf("WritePNG() unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open written png: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("written file is not a decodable png: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != l.Width || bounds.Dy() != l.Height() {
		t.Errorf("decoded bounds %dx%d, expected %dx%d", bounds.Dx(), bounds.Dy(), l.Width, l.Height())
	}

	r, g, b, a := decoded.At(2, 5).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 || a>>8 != 255 {
		t.Errorf("pixel (2,5) = (%d,%d,%d,%d), expected (200,100,50,255)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestWritePNG_BadPath(t *testing.T) {
	l := Layout{Width: 1, RowsPerBand: 1, Bands: 1}
	err := WritePNG(l.NewImage(), filepath.Join(t.TempDir(), "no", "such", "dir", "out.png"))
	if err == nil {
		t.Fatal("WritePNG() expected error for unwritable path, got nil")
	}
}
