// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load builds a Config from a YAML file at path. If path is empty it
// searches default locations ("specgram.yaml"); if no file is found the
// built-in defaults are used. Environment overrides apply after the
// file, and the final configuration is validated.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		candidates := []string{
			"specgram.yaml",
			"specgram.yml",
		}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			cfg.applyEnvOverrides()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid default configuration: %w", err)
			}
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides AFTER loading from file.
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run
// with. It does not check InputFile; the decode stage reports missing or
// unreadable files with more context.
func (c *Config) Validate() error {
	if c.WindowSize < MinWindowSize {
		return fmt.Errorf("window_size must be >= %d, got %d", MinWindowSize, c.WindowSize)
	}
	if c.SampleRate < MinSampleRate || c.SampleRate > MaxSampleRate {
		return fmt.Errorf("sample_rate must be in [%d, %d], got %g", MinSampleRate, MaxSampleRate, c.SampleRate)
	}
	if c.RowHeight <= 0 {
		return fmt.Errorf("row_height must be positive, got %d", c.RowHeight)
	}
	if c.FreqMin <= 0 || c.FreqMin >= c.FreqMax {
		return fmt.Errorf("freq_min must be positive and below freq_max, got [%g, %g]", c.FreqMin, c.FreqMax)
	}
	if c.Mode != "log" && c.Mode != "linear" {
		return fmt.Errorf("mode must be \"log\" or \"linear\", got %q", c.Mode)
	}
	return nil
}

func (cfg *Config) applyEnvOverrides() {
	// SPECGRAM_LOG_LEVEL
	if val, ok := os.LookupEnv("SPECGRAM_LOG_LEVEL"); ok {
		cfg.LogLevel = val
	}
	// SPECGRAM_MODE
	if val, ok := os.LookupEnv("SPECGRAM_MODE"); ok {
		cfg.Mode = val
	}
	// SPECGRAM_ROW_HEIGHT
	if val, ok := os.LookupEnv("SPECGRAM_ROW_HEIGHT"); ok {
		if iVal, err := strconv.Atoi(val); err == nil {
			cfg.RowHeight = iVal
		}
	}
	// SPECGRAM_FFT_WINDOW
	if val, ok := os.LookupEnv("SPECGRAM_FFT_WINDOW"); ok {
		cfg.FFTWindow = val
	}
}
