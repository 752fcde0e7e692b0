package config

// Core configuration constants that define the boundaries and defaults
// for the spectrogram renderer.
const (
	// Default values for the rendering configuration
	DefaultSampleRate = 44100   // Assumed stream rate (Hz)
	DefaultWindowSize = 2048    // Samples per analysis window (one column)
	DefaultRowHeight  = 128     // Image rows per band
	DefaultFreqMin    = 20.0    // Lowest mapped frequency (Hz), log mode
	DefaultFreqMax    = 10000.0 // Highest analyzed frequency (Hz)
	DefaultMode       = "log"   // Axis mapping mode ("log" or "linear")
	DefaultFFTWindow  = "rectangular"
	DefaultTempo      = 0.0 // Reserved for beat-aligned layout
	DefaultLogLevel   = "info"
	DefaultVerbosity  = false

	// Processing limits
	MinWindowSize = 2      // FFT primitive needs at least 2 samples
	MinSampleRate = 8000   // Minimum usable sample rate (Hz)
	MaxSampleRate = 192000 // Maximum supported sample rate (Hz)
)

// Config holds all runtime configuration options for the renderer.
// It is constructed from defaults, an optional YAML file, environment
// overrides and command line flags, in that order.
type Config struct {
	// Input/Output
	InputFile  string `yaml:"-"`           // Audio file to analyze
	OutputFile string `yaml:"output_file"` // Image path; empty means "<input>.png"

	// Analysis Settings
	SampleRate float64 `yaml:"sample_rate"` // Stream sample rate in Hz
	WindowSize int     `yaml:"window_size"` // Samples per analysis window
	FFTWindow  string  `yaml:"fft_window"`  // Window function ("rectangular", "hann", ...)
	FreqMin    float64 `yaml:"freq_min"`    // Log-axis lower bound (Hz)
	FreqMax    float64 `yaml:"freq_max"`    // Spectrum upper bound (Hz)

	// Raster Settings
	Mode      string  `yaml:"mode"`       // Axis mapping mode ("log" or "linear")
	RowHeight int     `yaml:"row_height"` // Rows per band
	Tempo     float64 `yaml:"tempo"`      // Reserved for beat-aligned layout (linear mode)

	// Debug Options
	LogLevel string `yaml:"log_level"` // Logging level ("debug", "info", ...)
	Verbose  bool   `yaml:"-"`         // Force debug logging
}

// NewConfig creates a new Config instance with default values. This is
// the base configuration before applying the config file, environment
// overrides or command line arguments.
func NewConfig() *Config {
	return &Config{
		SampleRate: DefaultSampleRate,
		WindowSize: DefaultWindowSize,
		FFTWindow:  DefaultFFTWindow,
		FreqMin:    DefaultFreqMin,
		FreqMax:    DefaultFreqMax,
		Mode:       DefaultMode,
		RowHeight:  DefaultRowHeight,
		Tempo:      DefaultTempo,
		LogLevel:   DefaultLogLevel,
		Verbose:    DefaultVerbosity,
	}
}
