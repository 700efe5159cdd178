// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audpack/audio"
	"github.com/jfreymuth/oggvorbis"
)

const defaultFrameBuf = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Read works in whole frames only.
	framesRequested := len(dst) / s.channels
	if framesRequested == 0 {
		return 0, fmt.Errorf("%w: need room for %d channels", io.ErrShortBuffer, s.channels)
	}

	want := framesRequested * s.channels
	if cap(s.frameBuf) < want {
		s.frameBuf = make([]float32, want)
	}
	s.frameBuf = s.frameBuf[:want]

	// oggvorbis reports samples read, always a whole number of frames.
	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		return 0, err
	}

	copy(dst, s.frameBuf[:n])

	return n, err
}

func newSource(dec oggReader) (*source, error) {
	if dec.Channels() < 1 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidChannels, dec.Channels())
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frameBuf:   make([]float32, defaultFrameBuf),
	}, nil
}

// Decoder streams Ogg Vorbis as float32 samples. Vorbis is lossy, so a clip
// built from it through audio.Load is quantized to 16 bits by audio.Collect.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg: %w", err)
	}

	return newSource(dec)
}
