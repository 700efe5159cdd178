// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ik5/audpack/audio"
)

// mockOggReader hands out whole frames, like oggvorbis.Reader.
type mockOggReader struct {
	sampleRate int
	channels   int
	data       []float32
	err        error
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if len(m.data) == 0 {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}

	n := min(len(buf), len(m.data))
	n -= n % m.channels
	copy(buf, m.data[:n])
	m.data = m.data[n:]

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, in := range map[string][]byte{"garbage": []byte("OggS but not really"), "empty": {}} {
		_, err := (Decoder{}).Decode(bytes.NewReader(in))
		if err == nil || !strings.HasPrefix(err.Error(), "opening ogg: ") {
			t.Errorf("%s: Decode() error = %v, want opening ogg error", name, err)
		}
	}
}

func TestNewSource_InvalidChannels(t *testing.T) {
	t.Parallel()

	_, err := newSource(&mockOggReader{sampleRate: 44100})
	if !errors.Is(err, audio.ErrInvalidChannels) {
		t.Errorf("newSource() error = %v, want ErrInvalidChannels", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		data     []float32
		bufSize  int
	}{
		{"mono", 1, []float32{0.1, 0.2, 0.3, 0.4, 0.5}, 2},
		{"stereo", 2, []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}, 4},
		{"stereo odd buffer", 2, []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := append([]float32(nil), tt.data...)
			src, err := newSource(&mockOggReader{sampleRate: 44100, channels: tt.channels, data: tt.data})
			if err != nil {
				t.Fatal(err)
			}

			var got []float32
			buf := make([]float32, tt.bufSize)
			for range 100 {
				n, err := src.ReadSamples(buf)
				if n%tt.channels != 0 {
					t.Fatalf("ReadSamples() = %d, not a whole number of frames", n)
				}
				got = append(got, buf[:n]...)
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatal(err)
				}
			}

			if len(got) != len(want) {
				t.Fatalf("read %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSource_ReadSamples_ShortBuffer(t *testing.T) {
	t.Parallel()

	src, _ := newSource(&mockOggReader{sampleRate: 44100, channels: 2, data: []float32{0.5, 0.5}})

	n, err := src.ReadSamples(make([]float32, 1))
	if n != 0 || !errors.Is(err, io.ErrShortBuffer) {
		t.Errorf("ReadSamples(1) = %d, %v, want 0, ErrShortBuffer", n, err)
	}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	src, _ := newSource(&mockOggReader{sampleRate: 8000, channels: 1, err: io.ErrUnexpectedEOF})

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSource_Collect(t *testing.T) {
	t.Parallel()

	src, _ := newSource(&mockOggReader{sampleRate: 22050, channels: 2, data: []float32{0, 0.5, -0.5, 1}})

	clip, err := audio.Collect(src, 64)
	if err != nil {
		t.Fatal(err)
	}

	if clip.SampleRate != 22050 || clip.Channels != 2 || len(clip.Samples) != 4 {
		t.Errorf("Collect() = %d Hz %d ch %d samples", clip.SampleRate, clip.Channels, len(clip.Samples))
	}
	if src.BufSize() != defaultFrameBuf {
		t.Errorf("BufSize() = %d, want %d", src.BufSize(), defaultFrameBuf)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	data := make([]float32, 2*44100)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		src, _ := newSource(&mockOggReader{sampleRate: 44100, channels: 2, data: data})
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
