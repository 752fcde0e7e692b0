// SPDX-License-Identifier: MIT
package decode

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"

	"specgram/internal/log"
)

func decodeMP3(f *os.File) (*Stream, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decode: mp3 probe: %w", err)
	}

	// go-mp3 always emits 16-bit little-endian stereo.
	var samples []float32
	buf := make([]byte, 8192)
	for {
		n, err := dec.Read(buf)
		for i := 0; i+1 < n; i += 2 {
			v := int16(binary.LittleEndian.Uint16(buf[i:]))
			samples = append(samples, float32(v)/32768)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warnf("decode: mp3 stream error after %d samples: %v", len(samples), err)
			break
		}
	}

	return &Stream{
		Samples:    samples,
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}, nil
}
