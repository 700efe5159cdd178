// SPDX-License-Identifier: EPL-2.0

package audpack

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/ik5/audpack/audio"
	"github.com/ik5/audpack/codec/bitpack"
	"github.com/ik5/audpack/codec/rle"
	"github.com/ik5/audpack/internal/audiotest"
	"github.com/ik5/audpack/stage"
	"github.com/ik5/audpack/stream"
)

func testClips() map[string]audio.Clip {
	return map[string]audio.Clip{
		"empty":    {SampleRate: 8000, Channels: 1, BitDepth: 16},
		"sine":     {SampleRate: 44100, Channels: 2, BitDepth: 16, Samples: audiotest.Sine(44100, 2, 2000, 440, 0.9)},
		"steps":    {SampleRate: 16000, Channels: 1, BitDepth: 16, Samples: audiotest.Steps(3000, 300, 0, 5000, -5000)},
		"extremes": {SampleRate: 8000, Channels: 1, BitDepth: 16, Samples: audiotest.Extremes()},
	}
}

func TestRoundTrip_AllCodecsAndStages(t *testing.T) {
	t.Parallel()

	for _, c := range Codecs() {
		for _, k := range stage.Kinds() {
			for name, clip := range testClips() {
				opts := Options{Codec: c, Stage: k}

				t.Run(c.String()+"/"+k.String()+"/"+name, func(t *testing.T) {
					t.Parallel()

					b, err := Compress(clip, opts)
					if err != nil {
						t.Fatalf("Compress() error = %v", err)
					}

					got, err := Decompress(b)
					if err != nil {
						t.Fatalf("Decompress() error = %v", err)
					}

					if err := Verify(clip, got, opts); err != nil {
						t.Errorf("Verify() error = %v", err)
					}
				})
			}
		}
	}
}

func TestLosslessCodecs_Exact(t *testing.T) {
	t.Parallel()

	clip := audio.Clip{SampleRate: 22050, Channels: 1, BitDepth: 16, Samples: audiotest.Noise(5000, 11)}

	for _, c := range []Codec{Raw, RLE, FLAC} {
		b, err := Compress(clip, Options{Codec: c, Stage: stage.Zstd})
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		got, err := Decompress(b)
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		if !slices.Equal(got.Samples, clip.Samples) {
			t.Errorf("%v: samples differ", c)
		}
	}
}

func TestBitpack_ErrorBound(t *testing.T) {
	t.Parallel()

	clip := audio.Clip{SampleRate: 8000, Channels: 1, BitDepth: 16, Samples: audiotest.Noise(4000, 5)}

	for _, width := range []int{1, 4, 10, 15, 16} {
		opts := Options{Codec: Bitpack, Width: width}
		b, err := Compress(clip, opts)
		if err != nil {
			t.Fatalf("width %d: %v", width, err)
		}
		got, err := Decompress(b)
		if err != nil {
			t.Fatalf("width %d: %v", width, err)
		}

		bound := 1<<(16-width) - 1
		for i := range clip.Samples {
			if d := int(clip.Samples[i]) - int(got.Samples[i]); d < 0 || d > bound {
				t.Fatalf("width %d: sample %d off by %d", width, i, d)
			}
		}
	}
}

func TestBitpack_DefaultWidthShrinks(t *testing.T) {
	t.Parallel()

	clip := audio.Clip{SampleRate: 8000, Channels: 1, BitDepth: 16, Samples: audiotest.Noise(1600, 1)}

	raw, _ := Compress(clip, Options{Codec: Raw})
	packed, _ := Compress(clip, Options{Codec: Bitpack})

	// 1600 samples at 10 bits is 1000 words plus the packed header.
	if want := stream.HeaderSize + 5 + 2000; len(packed) != want {
		t.Errorf("bitpack stream = %d bytes, want %d", len(packed), want)
	}
	if len(packed) >= len(raw) {
		t.Errorf("bitpack %d bytes, raw %d bytes", len(packed), len(raw))
	}
}

func TestBitpack_InvalidWidth(t *testing.T) {
	t.Parallel()

	clip := audio.Clip{SampleRate: 8000, Channels: 1, BitDepth: 16, Samples: []int16{1}}
	if _, err := Compress(clip, Options{Codec: Bitpack, Width: 17}); err == nil {
		t.Error("Compress(width 17) error = nil, want error")
	}
}

func TestPiecewise_Tail(t *testing.T) {
	t.Parallel()

	clip := audio.Clip{SampleRate: 8000, Channels: 1, BitDepth: 16, Samples: []int16{0, 0, 10, 10, 10, 10}}

	b, _ := Compress(clip, Options{Codec: Piecewise})
	dropped, err := Decompress(b)
	if err != nil {
		t.Fatal(err)
	}
	// The ramp 0 -> 10 over two samples keeps rising through the dropped tail.
	if want := []int16{0, 5, 10, 15, 20, 25}; !slices.Equal(dropped.Samples, want) {
		t.Errorf("dropped tail = %v, want %v", dropped.Samples, want)
	}

	b, _ = Compress(clip, Options{Codec: Piecewise, KeepTail: true})
	kept, err := Decompress(b)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int16{0, 5, 10, 10, 10, 10}; !slices.Equal(kept.Samples, want) {
		t.Errorf("kept tail = %v, want %v", kept.Samples, want)
	}
}

func TestToSamples_Saturates(t *testing.T) {
	t.Parallel()

	got := toSamples([]float64{40000, -40000, 1.5, -1.5, math.NaN(), 32767.4})
	want := []int16{math.MaxInt16, math.MinInt16, 2, -2, 0, math.MaxInt16}
	if !slices.Equal(got, want) {
		t.Errorf("toSamples() = %v, want %v", got, want)
	}
}

func TestCompress_Errors(t *testing.T) {
	t.Parallel()

	good := audio.Clip{SampleRate: 8000, Channels: 1, BitDepth: 16, Samples: []int16{1, 2}}

	tests := []struct {
		name string
		clip audio.Clip
		opts Options
		want error
	}{
		{"bad clip", audio.Clip{Channels: 1, BitDepth: 16}, Options{}, audio.ErrInvalidSampleRate},
		{"partial frame", audio.Clip{SampleRate: 8000, Channels: 2, BitDepth: 16, Samples: []int16{1}}, Options{}, audio.ErrPartialFrame},
		{"unknown codec", good, Options{Codec: Codec(99)}, ErrUnknownCodec},
		{"unknown stage", good, Options{Stage: stage.Kind(99)}, ErrUnknownStage},
		{"bad level", good, Options{Stage: stage.Zlib, Level: 42}, stage.ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Compress(tt.clip, tt.opts); !errors.Is(err, tt.want) {
				t.Errorf("Compress() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecompress_Errors(t *testing.T) {
	t.Parallel()

	header := stream.Header{Channels: 1, BitDepth: 16, SampleRate: 8000, SampleCount: 2}
	mk := func(h stream.Header, payload []byte) []byte {
		b, err := stream.Encode(h, payload)
		if err != nil {
			t.Fatal(err)
		}
		return b
	}

	badCodec := header
	badCodec.Codec = 99
	badStage := header
	badStage.Stage = 99
	rleHeader := header
	rleHeader.Codec = uint8(RLE)
	bitpackHeader := header
	bitpackHeader.Codec = uint8(Bitpack)
	hugePiecewise := header
	hugePiecewise.Codec = uint8(Piecewise)
	hugePiecewise.SampleCount = 1 << 62

	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"not a stream", []byte("RIFF"), stream.ErrNotStream},
		{"unknown codec", mk(badCodec, nil), ErrUnknownCodec},
		{"unknown stage", mk(badStage, nil), ErrUnknownStage},
		{"odd pcm", mk(header, []byte{1, 2, 3}), audio.ErrOddByteCount},
		{"short payload", mk(header, []byte{1, 0}), ErrSampleCount},
		{"malformed rle", mk(rleHeader, []byte{4}), rle.ErrMalformedStream},
		{"truncated bitpack", mk(bitpackHeader, []byte{10, 2}), bitpack.ErrTruncated},
		{"piecewise count over limit", mk(hugePiecewise, []byte{0, 0, 0, 0}), ErrSampleCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Decompress(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("Decompress() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	want := audio.Clip{SampleRate: 8000, Channels: 1, BitDepth: 16, Samples: []int16{0, 100, 200}}
	off := func(d int16) audio.Clip {
		c := want
		c.Samples = []int16{0, 100 - d, 200}
		return c
	}
	rate := want
	rate.SampleRate = 16000
	short := want
	short.Samples = want.Samples[:2]

	tests := []struct {
		name string
		got  audio.Clip
		opts Options
		ok   bool
	}{
		{"lossless exact", want, Options{Codec: RLE}, true},
		{"lossless off by one", off(1), Options{Codec: Raw}, false},
		{"bitpack in bound", off(63), Options{Codec: Bitpack}, true},
		{"bitpack out of bound", off(64), Options{Codec: Bitpack}, false},
		{"bitpack width 16", off(1), Options{Codec: Bitpack, Width: 16}, false},
		{"piecewise ignores values", off(5000), Options{Codec: Piecewise}, true},
		{"format mismatch", rate, Options{Codec: Piecewise}, false},
		{"length mismatch", short, Options{Codec: Piecewise}, false},
	}

	for _, tt := range tests {
		err := Verify(want, tt.got, tt.opts)
		if tt.ok && err != nil {
			t.Errorf("%s: Verify() error = %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrLossyVerify) {
			t.Errorf("%s: Verify() error = %v, want ErrLossyVerify", tt.name, err)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	for _, c := range Codecs() {
		got, err := ParseCodec(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCodec(%q) = %v, %v", c, got, err)
		}
	}
	if _, err := ParseCodec("mp3"); !errors.Is(err, ErrUnknownCodec) {
		t.Errorf("ParseCodec(mp3) error = %v, want ErrUnknownCodec", err)
	}

	if k, err := ParseStage("Brotli"); err != nil || k != stage.Brotli {
		t.Errorf("ParseStage(Brotli) = %v, %v", k, err)
	}
	if _, err := ParseStage("lzma"); !errors.Is(err, ErrUnknownStage) || !errors.Is(err, stage.ErrUnknownKind) {
		t.Errorf("ParseStage(lzma) error = %v, want ErrUnknownStage", err)
	}
}

func TestCodec_Lossless(t *testing.T) {
	t.Parallel()

	want := map[Codec]bool{Raw: true, RLE: true, Bitpack: false, Piecewise: false, FLAC: true}
	for c, lossless := range want {
		if c.Lossless() != lossless {
			t.Errorf("%v.Lossless() = %v, want %v", c, c.Lossless(), lossless)
		}
	}
	if got := Codec(200).String(); got != "codec(200)" {
		t.Errorf("String() = %q", got)
	}
}

func BenchmarkCompress(b *testing.B) {
	clip := audio.Clip{SampleRate: 44100, Channels: 2, BitDepth: 16, Samples: audiotest.Sine(44100, 2, 44100, 440, 0.5)}

	for _, c := range Codecs() {
		b.Run(c.String(), func(b *testing.B) {
			opts := Options{Codec: c, Stage: stage.Zstd}
			b.ReportAllocs()
			b.SetBytes(int64(len(clip.Samples) * 2))
			for b.Loop() {
				_, _ = Compress(clip, opts)
			}
		})
	}
}
