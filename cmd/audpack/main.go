// SPDX-License-Identifier: EPL-2.0

// audpack compresses and decompresses 16-bit PCM recordings.
//
// Usage:
//
//	audpack compress [flags] <input.{wav|aiff|mp3|ogg|flac}> <output.apk>
//	audpack decompress [flags] <input.apk> <output.wav>
//	audpack batch [flags] <dir>
//	audpack info <file>...
//
// Flags given on the command line override values read from -config.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ik5/audpack"
	"github.com/ik5/audpack/audio"
	"github.com/ik5/audpack/formats/aiff"
	"github.com/ik5/audpack/formats/flac"
	"github.com/ik5/audpack/formats/mp3"
	"github.com/ik5/audpack/formats/vorbis"
	"github.com/ik5/audpack/formats/wav"
	"github.com/ik5/audpack/internal/batch"
	"github.com/ik5/audpack/internal/config"
	"github.com/ik5/audpack/stage"
	"github.com/ik5/audpack/stream"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// env is what every command needs once flags are parsed.
type env struct {
	cfg    config.Config
	opts   audpack.Options
	log    *slog.Logger
	stdout io.Writer
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  audpack compress [flags] <input> <output>
  audpack decompress [flags] <input> <output.wav>
  audpack batch [flags] <dir>
  audpack info <file>...

Input formats: %s
Run "audpack <command> -h" for flags.
`, strings.Join(newRegistry().Formats(), ", "))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	cmd, args := args[0], args[1:]
	if cmd == "-h" || cmd == "-help" || cmd == "help" {
		usage(stdout)
		return 0
	}

	var nargs func(int) bool
	switch cmd {
	case "compress", "decompress":
		nargs = func(n int) bool { return n == 2 }
	case "batch":
		nargs = func(n int) bool { return n == 1 }
	case "info":
		nargs = func(n int) bool { return n >= 1 }
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		usage(stderr)
		return 2
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fl := registerFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if !nargs(fs.NArg()) {
		fmt.Fprintf(stderr, "%s: wrong number of arguments\n", cmd)
		usage(stderr)
		return 2
	}

	e, err := fl.env(fs, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	switch cmd {
	case "compress":
		err = compressFile(e, fs.Arg(0), fs.Arg(1))
	case "decompress":
		err = decompressFile(e, fs.Arg(0), fs.Arg(1))
	case "batch":
		err = runBatch(ctx, e, fs.Arg(0))
	case "info":
		err = info(e, fs.Args())
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func compressFile(e env, in, out string) error {
	dec, ok := newRegistry().ForPath(in)
	if !ok {
		return fmt.Errorf("unsupported input format: %s", in)
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	clip, err := audio.Load(dec, f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	if clip, err = convert(e.cfg, clip); err != nil {
		return err
	}

	b, err := audpack.Compress(clip, e.opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, b, 0o644); err != nil {
		return err
	}

	raw := int64(len(clip.Samples) * 2)
	e.log.Info("compressed", "input", in, "output", out,
		"codec", e.opts.Codec, "stage", e.opts.Stage,
		"pcm", humanize.Bytes(uint64(raw)), "compressed", humanize.Bytes(uint64(len(b))))

	return nil
}

// convert applies the lossy input conversions requested by cfg.
func convert(cfg config.Config, clip audio.Clip) (audio.Clip, error) {
	var err error
	if cfg.Mono {
		if clip, err = audio.Mono(clip); err != nil {
			return audio.Clip{}, fmt.Errorf("downmixing: %w", err)
		}
	}
	if cfg.Rate > 0 {
		if clip, err = audio.Resample(clip, cfg.Rate); err != nil {
			return audio.Clip{}, fmt.Errorf("resampling: %w", err)
		}
	}

	return clip, nil
}

func decompressFile(e env, in, out string) (err error) {
	b, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	clip, err := audpack.Decompress(b)
	if err != nil {
		return fmt.Errorf("decompressing %s: %w", in, err)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := wav.Write(f, clip); err != nil {
		return err
	}

	e.log.Info("decompressed", "input", in, "output", out,
		"rate", clip.SampleRate, "channels", clip.Channels, "duration", clip.Duration())

	return nil
}

func runBatch(ctx context.Context, e env, dir string) error {
	report, err := batch.Run(ctx, batch.Config{
		Dir:     dir,
		Options: e.opts,
		Workers: e.cfg.Workers,
		Logger:  e.log,
	})

	for _, r := range report.Results {
		if r.Difference != nil {
			fmt.Fprintf(e.stdout, "%s:\n%s", r.Path, r.Difference)
		}
	}
	if len(report.Failed) > 0 {
		fmt.Fprintln(e.stdout, "The following files failed to process:")
		for _, p := range report.Failed {
			fmt.Fprintln(e.stdout, p)
		}
	}
	if report.Files > 0 {
		fmt.Fprintln(e.stdout, report)
	}

	return err
}

// info describes audpack streams by their header and anything else as WAV.
func info(e env, paths []string) error {
	var errs []error

	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if h, payload, err := stream.Decode(b); err == nil {
			fmt.Fprintf(e.stdout, "%s: audpack v%d, codec %s, stage %s, %d Hz, %d ch, %d bit, %d samples, %s payload\n",
				p, stream.Version, audpack.Codec(h.Codec), stage.Kind(h.Stage),
				h.SampleRate, h.Channels, h.BitDepth, h.SampleCount, humanize.Bytes(uint64(len(payload))))
			continue
		} else if !errors.Is(err, stream.ErrNotStream) {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
			continue
		}

		wi, err := wav.ReadInfo(bytes.NewReader(b))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
			continue
		}
		fmt.Fprintf(e.stdout, "%s: %s\n", p, wi)
	}

	return errors.Join(errs...)
}
