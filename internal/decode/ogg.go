// SPDX-License-Identifier: MIT
package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/jfreymuth/oggvorbis"

	"specgram/internal/log"
)

func decodeOGG(f *os.File) (*Stream, error) {
	r, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode: ogg probe: %w", err)
	}

	// oggvorbis yields interleaved float32 directly.
	var samples []float32
	buf := make([]float32, 8192)
	for {
		n, err := r.Read(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warnf("decode: ogg stream error after %d samples: %v", len(samples), err)
			break
		}
	}

	return &Stream{
		Samples:    samples,
		SampleRate: int(r.SampleRate()),
		Channels:   r.Channels(),
	}, nil
}
