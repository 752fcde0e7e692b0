// SPDX-License-Identifier: MIT

// Package decode turns an audio file into a flat, interleaved 32-bit
// float sample stream. The whole stream is materialized before it is
// returned; there is no streaming decode. Format detection is by file
// extension, the way the players in this codebase's lineage do it.
//
// Error scope follows the taxonomy of one-shot batch decoding: failures
// to open or probe the file are fatal and return an error; a bad frame
// mid-stream is skipped; an unrecoverable stream error stops decoding
// and the samples collected so far are returned as a valid (truncated)
// stream.
package decode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Stream is a fully decoded audio stream: interleaved samples across all
// channels at a single sample rate. It is created once and read-only
// afterward.
type Stream struct {
	Samples    []float32 // Interleaved samples in [-1, 1]
	SampleRate int       // Samples per second per channel
	Channels   int       // Interleaved channel count
}

// File opens path, picks a decoder by extension and materializes the
// whole sample stream.
func File(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode: open input: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	case ".flac":
		return decodeFLAC(f)
	case ".ogg":
		return decodeOGG(f)
	default:
		return nil, fmt.Errorf("decode: unsupported format %q", ext)
	}
}
