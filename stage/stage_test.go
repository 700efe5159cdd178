// SPDX-License-Identifier: EPL-2.0

package stage

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audpack/audio"
	"github.com/ik5/audpack/codec/rle"
	"github.com/ik5/audpack/internal/audiotest"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"text":   bytes.Repeat([]byte("audpack "), 500),
		"pcm":    audio.SamplesToBytes(audiotest.Sine(8000, 1, 4000, 300, 0.6)),
		"rle":    rle.Encode(audio.SamplesToBytes(audiotest.Steps(6000, 40, 0, 1000, -1000))),
		"noise":  audio.SamplesToBytes(audiotest.Noise(3000, 42)),
		"single": {0x7F},
	}

	for _, k := range Kinds() {
		for name, in := range inputs {
			t.Run(k.String()+"/"+name, func(t *testing.T) {
				t.Parallel()

				packed, err := Compress(k, 0, in)
				if err != nil {
					t.Fatalf("Compress() error = %v", err)
				}

				got, err := Decompress(k, packed)
				if err != nil {
					t.Fatalf("Decompress() error = %v", err)
				}
				if !bytes.Equal(got, in) {
					t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(in))
				}
			})
		}
	}
}

func TestCompress_Shrinks(t *testing.T) {
	t.Parallel()

	in := bytes.Repeat([]byte{0, 0, 0, 1}, 4096)
	for _, k := range []Kind{Zstd, Zlib, Brotli, Snappy} {
		out, err := Compress(k, 0, in)
		if err != nil {
			t.Fatalf("%v: %v", k, err)
		}
		if len(out) >= len(in)/4 {
			t.Errorf("%v: %d bytes from %d, expected strong compression", k, len(out), len(in))
		}
	}
}

func TestCompress_Levels(t *testing.T) {
	t.Parallel()

	in := bytes.Repeat([]byte("level test "), 200)

	tests := []struct {
		kind  Kind
		level int
		ok    bool
	}{
		{Zstd, 1, true},
		{Zstd, 19, true},
		{Zstd, 23, false},
		{Zstd, -1, false},
		{Zlib, 9, true},
		{Zlib, 10, false},
		{Brotli, 11, true},
		{Brotli, 12, false},
		{Snappy, 99, true},
		{None, 5, true},
	}

	for _, tt := range tests {
		out, err := Compress(tt.kind, tt.level, in)
		if !tt.ok {
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Compress(%v, %d) error = %v, want ErrInvalidLevel", tt.kind, tt.level, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Compress(%v, %d) error = %v", tt.kind, tt.level, err)
			continue
		}

		got, err := Decompress(tt.kind, out)
		if err != nil || !bytes.Equal(got, in) {
			t.Errorf("Decompress(%v) after level %d: %v", tt.kind, tt.level, err)
		}
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		out, err := Compress(k, 0, nil)
		if err != nil || out == nil || len(out) != 0 {
			t.Errorf("Compress(%v, nil) = %v, %v, want empty non-nil", k, out, err)
		}
		back, err := Decompress(k, out)
		if err != nil || len(back) != 0 {
			t.Errorf("Decompress(%v, empty) = %v, %v", k, back, err)
		}
	}
}

func TestDecompress_Corrupt(t *testing.T) {
	t.Parallel()

	in := audio.SamplesToBytes(audiotest.Noise(4000, 3))
	for _, k := range []Kind{Zstd, Zlib, Brotli, Snappy} {
		packed, err := Compress(k, 0, in)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Decompress(k, packed[:len(packed)/2]); err == nil {
			t.Errorf("Decompress(%v, truncated) error = nil, want error", k)
		}
	}

	garbage := []byte("definitely not compressed data")
	for _, k := range []Kind{Zstd, Zlib} {
		if _, err := Decompress(k, garbage); err == nil {
			t.Errorf("Decompress(%v, garbage) error = nil, want error", k)
		}
	}
}

func TestUnknownKind(t *testing.T) {
	t.Parallel()

	if _, err := Compress(Kind(42), 0, []byte{1}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Compress() error = %v, want ErrUnknownKind", err)
	}
	if _, err := Decompress(Kind(42), []byte{1}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Decompress() error = %v, want ErrUnknownKind", err)
	}
	if got := Kind(42).String(); got != "stage(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Kind
		err  error
	}{
		{"", None, nil},
		{"none", None, nil},
		{"ZSTD", Zstd, nil},
		{" zlib ", Zlib, nil},
		{"brotli", Brotli, nil},
		{"snappy", Snappy, nil},
		{"lz4", None, ErrUnknownKind},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if !errors.Is(err, tt.err) || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v, want %v, %v", tt.in, got, err, tt.want, tt.err)
		}
	}
}

func BenchmarkCompress(b *testing.B) {
	in := rle.Encode(audio.SamplesToBytes(audiotest.Sine(44100, 2, 44100, 440, 0.5)))

	for _, k := range []Kind{Zstd, Zlib, Brotli, Snappy} {
		b.Run(k.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(in)))
			for b.Loop() {
				_, _ = Compress(k, 0, in)
			}
		})
	}
}
