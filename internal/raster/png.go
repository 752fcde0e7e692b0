// SPDX-License-Identifier: MIT
package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes the finished pixel grid to a PNG file at path. The
// image is written once, whole; there are no partial or streaming
// writes.
func WritePNG(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image file: %w", err)
	}
	return nil
}
