// SPDX-License-Identifier: MIT
package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"

	"specgram/internal/log"
)

// maxFrameSkips bounds how many bad frames are tolerated before the
// stream is considered unrecoverable.
const maxFrameSkips = 3

func decodeFLAC(f *os.File) (*Stream, error) {
	stream, err := flac.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("decode: flac probe: %w", err)
	}

	info := stream.Info
	scale := float32(int64(1) << (info.BitsPerSample - 1))

	var samples []float32
	skips := 0
	for {
		fr, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			if skips < maxFrameSkips {
				skips++
				log.Debugf("decode: flac: skipping bad frame: %v", err)
				continue
			}
			// Stop early, keep what was collected.
			log.Warnf("decode: flac stream error after %d samples: %v", len(samples), err)
			break
		}

		n := len(fr.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			for _, sub := range fr.Subframes {
				samples = append(samples, float32(sub.Samples[i])/scale)
			}
		}
	}

	return &Stream{
		Samples:    samples,
		SampleRate: int(info.SampleRate),
		Channels:   int(info.NChannels),
	}, nil
}
