// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audpack/audio"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	outputChannels = 2
	frameBytes     = outputChannels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// pending holds a trailing odd byte from the previous Read.
	pending []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // sample capacity, not bytes

// maxEmptyReads bounds consecutive reads that return no data and no error.
const maxEmptyReads = 100

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf) < len(dst)*2 {
		s.buf = make([]byte, len(dst)*2)
	}
	s.buf = s.buf[:len(dst)*2]

	// Keep reading until at least one whole sample is buffered, so a lone
	// odd byte does not end the stream.
	n := copy(s.buf, s.pending)
	s.pending = s.pending[:0]

	var err error
	for empty := 0; n < 2 && err == nil; {
		var m int
		m, err = s.dec.Read(s.buf[n:])
		n += m
		if m > 0 {
			continue
		}
		if empty++; empty >= maxEmptyReads {
			err = io.ErrNoProgress
		}
	}

	samples := n / 2
	if n%2 != 0 && err == nil {
		s.pending = append(s.pending, s.buf[n-1])
	}

	for i := range samples {
		val := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(val) / 32768.0
	}

	return samples, err
}

// readClip drains dec into a Clip without float conversion.
func readClip(dec mp3Reader) (audio.Clip, error) {
	data, err := io.ReadAll(dec)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("decoding mp3: %w", err)
	}

	// Ignore a truncated trailing frame.
	data = data[:len(data)-len(data)%frameBytes]

	samples, err := audio.BytesToSamples(data)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("converting mp3 samples: %w", err)
	}

	return audio.Clip{
		SampleRate: dec.SampleRate(),
		Channels:   outputChannels,
		BitDepth:   audio.BitDepth16,
		Samples:    samples,
	}, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}

// DecodeClip decodes the whole stream into exact 16-bit stereo samples.
func (Decoder) DecodeClip(r io.Reader) (audio.Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("opening mp3: %w", err)
	}

	return readClip(dec)
}
