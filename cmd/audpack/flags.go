// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"io"
	"log/slog"

	"github.com/ik5/audpack/internal/config"
)

type flags struct {
	config   *string
	codec    *string
	stage    *string
	level    *int
	width    *int
	keepTail *bool
	rate     *int
	mono     *bool
	workers  *int
	verbose  *bool
	debug    *bool
}

func registerFlags(fs *flag.FlagSet) *flags {
	def := config.Default()

	return &flags{
		config:   fs.String("config", "", "YAML configuration file"),
		codec:    fs.String("codec", def.Codec, "sample codec: raw, rle, bitpack, piecewise or flac"),
		stage:    fs.String("stage", def.Stage, "byte stage: none, zstd, zlib, brotli or snappy"),
		level:    fs.Int("level", def.Level, "stage compression level, 0 for the stage default"),
		width:    fs.Int("width", def.Width, "bitpack quantizer width in bits (1-16)"),
		keepTail: fs.Bool("keep-tail", def.KeepTail, "piecewise: encode the final flat run"),
		rate:     fs.Int("rate", def.Rate, "compress: resample input to this rate, 0 keeps it"),
		mono:     fs.Bool("mono", def.Mono, "compress: downmix input to one channel"),
		workers:  fs.Int("workers", def.Workers, "files processed concurrently by batch"),
		verbose:  fs.Bool("v", false, "enable info logs"),
		debug:    fs.Bool("debug", false, "enable debug logs"),
	}
}

// env builds the command environment: defaults, then the -config file,
// then every flag set explicitly on the command line.
func (f *flags) env(fs *flag.FlagSet, stdout, stderr io.Writer) (env, error) {
	cfg := config.Default()
	if *f.config != "" {
		var err error
		if cfg, err = config.Load(*f.config); err != nil {
			return env{}, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "codec":
			cfg.Codec = *f.codec
		case "stage":
			cfg.Stage = *f.stage
		case "level":
			cfg.Level = *f.level
		case "width":
			cfg.Width = *f.width
		case "keep-tail":
			cfg.KeepTail = *f.keepTail
		case "rate":
			cfg.Rate = *f.rate
		case "mono":
			cfg.Mono = *f.mono
		case "workers":
			cfg.Workers = *f.workers
		case "v":
			if *f.verbose {
				cfg.LogLevel = slog.LevelInfo.String()
			}
		}
	})
	if *f.debug {
		cfg.LogLevel = slog.LevelDebug.String()
	}

	if err := cfg.Validate(); err != nil {
		return env{}, err
	}

	opts, _ := cfg.Options()
	level, _ := cfg.SlogLevel()

	return env{
		cfg:    cfg,
		opts:   opts,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		stdout: stdout,
	}, nil
}
