package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"specgram/internal/config"
	"specgram/pkg/build"
)

// ParseArgs builds the runtime configuration from the optional YAML
// config file and command line flags. Explicitly set flags win over the
// file; the file wins over built-in defaults. A nil, nil return means a
// terminating command (--help, --version) already ran.
func ParseArgs() (*config.Config, error) {
	buildInfo := build.GetBuildFlags()
	defaults := config.NewConfig()

	var (
		cfg        *config.Config
		configPath string
	)
	flagVals := config.NewConfig()

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name + " --file <audio>",
		Short:         buildInfo.Description,
		Version:       buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("width") {
				loaded.RowHeight = flagVals.RowHeight
			}
			if cmd.Flags().Changed("mode") {
				loaded.Mode = flagVals.Mode
			}
			if cmd.Flags().Changed("tempo") {
				loaded.Tempo = flagVals.Tempo
			}
			if cmd.Flags().Changed("fft-window") {
				loaded.FFTWindow = flagVals.FFTWindow
			}
			loaded.InputFile = flagVals.InputFile
			loaded.OutputFile = flagVals.OutputFile
			loaded.Verbose = flagVals.Verbose

			if err := loaded.Validate(); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	// Display help message
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Input/Output
	rootCmd.Flags().StringVarP(&flagVals.InputFile, "file", "f", "",
		"Input audio file (wav, mp3, flac or ogg)")
	rootCmd.Flags().StringVarP(&flagVals.OutputFile, "output", "o", "",
		"Output image path. Default is <file>.png")

	// Raster Configuration
	rootCmd.Flags().IntVarP(&flagVals.RowHeight, "width", "w", defaults.RowHeight,
		"Rows per band; controls the number of frequency bins per column")
	rootCmd.Flags().StringVarP(&flagVals.Mode, "mode", "m", defaults.Mode,
		"Axis mapping mode: log (step-hold fill) or linear (4 bins per pixel)")
	rootCmd.Flags().Float64VarP(&flagVals.Tempo, "tempo", "t", defaults.Tempo,
		"Track tempo in BPM (linear mode, reserved for beat-aligned layout)")

	// Analysis Configuration
	rootCmd.Flags().StringVar(&flagVals.FFTWindow, "fft-window", defaults.FFTWindow,
		"Window function applied before the FFT (rectangular, hann, hamming, ...)")

	// Debug Configuration
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to a YAML config file. Default is specgram.yaml if present")
	rootCmd.Flags().BoolVarP(&flagVals.Verbose, "verbose", "v", defaults.Verbose,
		"Show verbose output")

	_ = rootCmd.MarkFlagRequired("file")

	// Execute the CLI
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}

	return cfg, nil
}
