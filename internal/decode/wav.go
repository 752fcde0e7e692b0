// SPDX-License-Identifier: MIT
package decode

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"specgram/internal/log"
)

func decodeWAV(f *os.File) (*Stream, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.New("decode: not a valid wav file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("decode: wav pcm chunk: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	scale := float32(int64(1) << (bitDepth - 1))

	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(dec.NumChans),
			SampleRate:  int(dec.SampleRate),
		},
		Data:           make([]int, 8192),
		SourceBitDepth: bitDepth,
	}

	var samples []float32
	for {
		n, err := dec.PCMBuffer(intBuf)
		for _, v := range intBuf.Data[:n] {
			samples = append(samples, float32(v)/scale)
		}
		if n == 0 {
			break
		}
		if err != nil {
			// Stop early, keep what was collected.
			log.Warnf("decode: wav stream error after %d samples: %v", len(samples), err)
			break
		}
	}

	return &Stream{
		Samples:    samples,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
	}, nil
}
