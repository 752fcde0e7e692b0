package main

import (
	"fmt"

	"specgram/cmd"
	"specgram/internal/decode"
	"specgram/internal/log"
	"specgram/internal/pipeline"
	"specgram/internal/raster"
	"specgram/pkg/build"
)

// main runs the one-shot batch pipeline:
//
// 1. Startup: build info, CLI/config parsing, log level.
// 2. Decode: materialize the whole sample stream in memory.
// 3. Render: sequential window → spectrum → column loop.
// 4. Sink: write the finished pixel grid as a PNG.
//
// There are no retries anywhere; every fatal error names the stage it
// came from.
func main() {
	build.Initialize()

	cfg, err := cmd.ParseArgs()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg == nil {
		// --help or --version already ran.
		return
	}

	if level, ok := log.ParseLevel(cfg.LogLevel); ok {
		log.SetLevel(level)
	}
	if cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	stream, err := decode.File(cfg.InputFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("decoded %d samples (%d channel(s) at %d Hz)",
		len(stream.Samples), stream.Channels, stream.SampleRate)
	if stream.SampleRate != int(cfg.SampleRate) {
		log.Warnf("stream rate %d Hz differs from configured %g Hz; the frequency axis will be off",
			stream.SampleRate, cfg.SampleRate)
	}

	img, err := pipeline.Render(stream.Samples, cfg, func(column, total int) {
		log.Progressf("processing column %d of %d", column+1, total)
	})
	if err != nil {
		fmt.Println()
		log.Fatalf("%v", err)
	}
	fmt.Println()

	out := cfg.OutputFile
	if out == "" {
		out = cfg.InputFile + ".png"
	}
	if err := raster.WritePNG(img, out); err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("saved spectrogram to %s", out)
}
