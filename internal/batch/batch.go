// SPDX-License-Identifier: EPL-2.0

// Package batch round-trips every WAV file in a directory through an audpack
// codec and checks the result.
//
// For each file Run reads the clip, compresses it, decompresses the stream
// and writes the clip back next to the input as "<name>.wav.copy". With a
// lossless codec the copy must be byte-identical to the input; otherwise the
// first MaxDiffs differing bytes are logged and the file fails. Lossy codecs
// are checked with audpack.Verify instead. Inputs carrying chunks the WAV
// writer does not reproduce (LIST, fact and so on) will therefore fail the
// byte comparison.
package batch

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ik5/audpack"
	"github.com/ik5/audpack/audio"
	"github.com/ik5/audpack/formats/wav"
	"golang.org/x/sync/errgroup"
)

// CopySuffix is appended to an input path to name its decompressed copy.
const CopySuffix = ".copy"

type Config struct {
	Dir     string
	Options audpack.Options

	// Workers bounds concurrent files; <= 0 means runtime.NumCPU().
	Workers int

	// Logger receives per-file progress; nil means slog.Default().
	Logger *slog.Logger
}

// Result is the outcome for one file.
type Result struct {
	Path            string
	OriginalBytes   int64
	CompressedBytes int64
	Err             error

	// Difference is filled when a lossless copy did not match.
	Difference *Difference
}

// Report aggregates a run. Byte totals cover successful files only.
type Report struct {
	Files           int
	Failed          []string
	OriginalBytes   int64
	CompressedBytes int64
	Elapsed         time.Duration
	Results         []Result
}

// Ratio is original size over compressed size, 0 when nothing was
// compressed.
func (r Report) Ratio() float64 {
	if r.CompressedBytes == 0 {
		return 0
	}

	return float64(r.OriginalBytes) / float64(r.CompressedBytes)
}

func (r Report) String() string {
	return fmt.Sprintf("%d files, %d failed, %s -> %s (ratio %.3f) in %s",
		r.Files, len(r.Failed),
		humanize.Bytes(uint64(r.OriginalBytes)), humanize.Bytes(uint64(r.CompressedBytes)),
		r.Ratio(), r.Elapsed.Round(time.Millisecond))
}

// Inputs lists the .wav files directly inside dir, sorted by name.
func Inputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	return paths, nil
}

// Run processes every input in cfg.Dir. Per-file failures are recorded in
// the report and make Run return ErrFailed; a cancelled ctx stops
// scheduling new files and returns ctx.Err().
func Run(ctx context.Context, cfg Config) (Report, error) {
	start := time.Now()
	log := cmp.Or(cfg.Logger, slog.Default())

	paths, err := Inputs(cfg.Dir)
	if err != nil {
		return Report{}, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	log.Info("batch started", "dir", cfg.Dir, "files", len(paths),
		"codec", cfg.Options.Codec, "stage", cfg.Options.Stage, "workers", workers)

	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = processFile(path, cfg.Options)
			logResult(log, results[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("batch: %w", err)
	}

	report := Report{Files: len(paths), Results: results}
	for _, r := range results {
		if r.Err != nil {
			report.Failed = append(report.Failed, r.Path)
			continue
		}
		report.OriginalBytes += r.OriginalBytes
		report.CompressedBytes += r.CompressedBytes
	}
	report.Elapsed = time.Since(start)

	if len(report.Failed) > 0 {
		log.Error("batch finished with failures", "failed", len(report.Failed), "files", report.Files)
		return report, fmt.Errorf("%w: %d of %d", ErrFailed, len(report.Failed), report.Files)
	}

	log.Info("all recordings successfully compressed",
		"original", humanize.Bytes(uint64(report.OriginalBytes)),
		"compressed", humanize.Bytes(uint64(report.CompressedBytes)),
		"ratio", report.Ratio(),
		"elapsed", report.Elapsed)

	return report, nil
}

func logResult(log *slog.Logger, r Result) {
	if r.Err != nil {
		log.Error("file failed", "file", r.Path, "err", r.Err)
		if r.Difference != nil {
			log.Debug("difference", "file", r.Path, "diff", r.Difference.String())
		}
		return
	}

	log.Debug("file compressed", "file", r.Path,
		"original", humanize.Bytes(uint64(r.OriginalBytes)),
		"compressed", humanize.Bytes(uint64(r.CompressedBytes)))
}

// processFile runs the read, compress, decompress, write and compare steps
// for a single input.
func processFile(path string, opts audpack.Options) Result {
	res := Result{Path: path}

	original, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	clip, err := wav.Read(bytes.NewReader(original))
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", path, err)
		return res
	}

	packed, err := audpack.Compress(clip, opts)
	if err != nil {
		res.Err = fmt.Errorf("compressing %s: %w", path, err)
		return res
	}

	back, err := audpack.Decompress(packed)
	if err != nil {
		res.Err = fmt.Errorf("decompressing %s: %w", path, err)
		return res
	}

	copyPath := path + CopySuffix
	if err := writeCopy(copyPath, back); err != nil {
		res.Err = err
		return res
	}

	if opts.Codec.Lossless() {
		copied, err := os.ReadFile(copyPath)
		if err != nil {
			res.Err = err
			return res
		}
		if d := Diff(original, copied); !d.Equal() {
			res.Difference = &d
			res.Err = fmt.Errorf("%w: %s and %s", ErrMismatch, path, copyPath)
			return res
		}
	} else if err := audpack.Verify(clip, back, opts); err != nil {
		res.Err = fmt.Errorf("%s: %w", path, err)
		return res
	}

	res.OriginalBytes = int64(len(original))
	res.CompressedBytes = int64(len(packed))

	return res
}

func writeCopy(path string, clip audio.Clip) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating copy: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := wav.Write(f, clip); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
