// SPDX-License-Identifier: EPL-2.0

package stage

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Pooled zstd coders use the library's default level.
var zstdEncPool = sync.Pool{
	New: func() any {
		enc, _ := zstd.NewWriter(nil)
		return enc
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, _ := zstd.NewReader(nil)
		return dec
	},
}

func compressZstd(b []byte, level int) ([]byte, error) {
	if level < 0 || level > 22 {
		return nil, fmt.Errorf("%w: zstd %d", ErrInvalidLevel, level)
	}

	var buf bytes.Buffer

	if level != 0 {
		enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		if err != nil {
			return nil, fmt.Errorf("zstd encode: %w", err)
		}
		return finish(&buf, enc, b, "zstd")
	}

	enc := zstdEncPool.Get().(*zstd.Encoder)
	defer zstdEncPool.Put(enc)
	enc.Reset(&buf)

	return finish(&buf, enc, b, "zstd")
}

func decompressZstd(b []byte) ([]byte, error) {
	dec := zstdDecPool.Get().(*zstd.Decoder)
	defer zstdDecPool.Put(dec)

	if err := dec.Reset(bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}

	return drain(dec, "zstd")
}

func compressZlib(b []byte, level int) ([]byte, error) {
	if level == 0 {
		level = zlib.DefaultCompression
	} else if level < zlib.BestSpeed || level > zlib.BestCompression {
		return nil, fmt.Errorf("%w: zlib %d", ErrInvalidLevel, level)
	}

	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("zlib encode: %w", err)
	}

	return finish(&buf, w, b, "zlib")
}

func decompressZlib(b []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("zlib decode: %w", err)
	}
	defer r.Close()

	return drain(r, "zlib")
}

func compressBrotli(b []byte, level int) ([]byte, error) {
	if level == 0 {
		level = brotli.DefaultCompression
	} else if level < 1 || level > brotli.BestCompression {
		return nil, fmt.Errorf("%w: brotli %d", ErrInvalidLevel, level)
	}

	var buf bytes.Buffer

	return finish(&buf, brotli.NewWriterLevel(&buf, level), b, "brotli")
}

func decompressBrotli(b []byte) ([]byte, error) {
	return drain(brotli.NewReader(bytes.NewReader(b)), "brotli")
}

func compressSnappy(b []byte) []byte {
	return snappy.Encode(nil, b)
}

func decompressSnappy(b []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, b)
	if err != nil {
		return nil, fmt.Errorf("snappy decode: %w", err)
	}

	return out, nil
}

// finish writes b through w, closes it and returns what landed in buf.
func finish(buf *bytes.Buffer, w io.WriteCloser, b []byte, name string) ([]byte, error) {
	if _, err := w.Write(b); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%s encode: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s encode: %w", name, err)
	}

	return buf.Bytes(), nil
}

func drain(r io.Reader, name string) ([]byte, error) {
	var out bytes.Buffer
	if _, err := out.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%s decode: %w", name, err)
	}

	return out.Bytes(), nil
}
