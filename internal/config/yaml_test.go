// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "specgram.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	if cfg.WindowSize != DefaultWindowSize {
		t.Errorf("WindowSize = %d, expected default %d", cfg.WindowSize, DefaultWindowSize)
	}
	if cfg.Mode != DefaultMode {
		t.Errorf("Mode = %q, expected default %q", cfg.Mode, DefaultMode)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	if err == nil {
		t.Errorf("expected error for missing file, got nil")
	}
	if cfg != nil {
		t.Errorf("expected nil config on error, got %+v", cfg)
	}
}

func TestLoad_UnmarshalError(t *testing.T) {
	path := writeTempConfig(t, ":\n:bad")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Error("expected unmarshal error, got nil or wrong error")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, "mode: linear\nrow_height: 64\nfft_window: hann\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Mode != "linear" {
		t.Errorf("Mode = %q, expected %q", cfg.Mode, "linear")
	}
	if cfg.RowHeight != 64 {
		t.Errorf("RowHeight = %d, expected 64", cfg.RowHeight)
	}
	if cfg.FFTWindow != "hann" {
		t.Errorf("FFTWindow = %q, expected %q", cfg.FFTWindow, "hann")
	}
	// Untouched fields keep defaults.
	if cfg.WindowSize != DefaultWindowSize {
		t.Errorf("WindowSize = %d, expected default %d", cfg.WindowSize, DefaultWindowSize)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, "mode: linear\n")
	t.Setenv("SPECGRAM_MODE", "log")
	t.Setenv("SPECGRAM_ROW_HEIGHT", "32")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Mode != "log" {
		t.Errorf("Mode = %q, expected env override %q", cfg.Mode, "log")
	}
	if cfg.RowHeight != 32 {
		t.Errorf("RowHeight = %d, expected env override 32", cfg.RowHeight)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults valid", func(c *Config) {}, ""},
		{"window too small", func(c *Config) { c.WindowSize = 1 }, "window_size"},
		{"sample rate too low", func(c *Config) { c.SampleRate = 4000 }, "sample_rate"},
		{"zero row height", func(c *Config) { c.RowHeight = 0 }, "row_height"},
		{"freq min above max", func(c *Config) { c.FreqMin = 20000 }, "freq_min"},
		{"zero freq min", func(c *Config) { c.FreqMin = 0 }, "freq_min"},
		{"unknown mode", func(c *Config) { c.Mode = "mel" }, "mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, expected mention of %q", err, tt.wantErr)
			}
		})
	}
}
