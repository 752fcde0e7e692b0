// SPDX-License-Identifier: MIT
package decode

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeTestWAV(t *testing.T, sampleRate, numSamples int, frequency float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp wav: %v", err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	data := make([]int, numSamples)
	for i := range data {
		tm := float64(i) / float64(sampleRate)
		data[i] = int(math.Sin(2*math.Pi*frequency*tm) * 0.9 * 32767)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("failed to write wav data: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("failed to close wav encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close wav file: %v", err)
	}
	return path
}

func TestFile_WAVRoundTrip(t *testing.T) {
	const (
		sampleRate = 44100
		numSamples = 4096
	)
	path := writeTestWAV(t, sampleRate, numSamples, 440)

	stream, err := File(path)
	if err != nil {
		t.Fatalf("File() unexpected error: %v", err)
	}
	if stream.SampleRate != sampleRate {
		t.Errorf("SampleRate = %d, expected %d", stream.SampleRate, sampleRate)
	}
	if stream.Channels != 1 {
		t.Errorf("Channels = %d, expected 1", stream.Channels)
	}
	if len(stream.Samples) != numSamples {
		t.Errorf("len(Samples) = %d, expected %d", len(stream.Samples), numSamples)
	}

	// The stream must be normalized and non-silent.
	var peak float64
	for _, s := range stream.Samples {
		if v := math.Abs(float64(s)); v > peak {
			peak = v
		}
	}
	if peak < 0.5 || peak > 1.0 {
		t.Errorf("peak amplitude = %v, expected a normalized tone near 0.9", peak)
	}
}

func TestFile_MissingInput(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.wav"))
	if err == nil {
		t.Fatal("File() expected error for missing input, got nil")
	}
	if !strings.Contains(err.Error(), "open input") {
		t.Errorf("error = %v, expected open-stage attribution", err)
	}
}

func TestFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("not audio"), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	_, err := File(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("File() error = %v, expected unsupported format", err)
	}
}

func TestFile_CorruptWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("RIFFgarbage"), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	if _, err := File(path); err == nil {
		t.Error("File() expected error for corrupt wav, got nil")
	}
}
