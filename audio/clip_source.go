// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ClipDecoder is implemented by decoders of uncompressed containers that can
// hand out exact 16-bit samples instead of a float stream.
type ClipDecoder interface {
	DecodeClip(r io.Reader) (Clip, error)
}

// Load decodes r into a Clip. Decoders implementing ClipDecoder are used
// directly so integer PCM is not routed through float conversion; any other
// decoder is drained with Collect.
func Load(d Decoder, r io.Reader) (Clip, error) {
	if cd, ok := d.(ClipDecoder); ok {
		return cd.DecodeClip(r)
	}

	src, err := d.Decode(r)
	if err != nil {
		return Clip{}, fmt.Errorf("opening source: %w", err)
	}
	defer src.Close()

	return Collect(src, 0)
}

type clipSource struct {
	clip Clip
	pos  int
}

// NewClipSource streams the samples of clip as float32 values in [-1,1).
func NewClipSource(clip Clip) Source {
	return &clipSource{clip: clip}
}

func (s *clipSource) SampleRate() int { return s.clip.SampleRate }
func (s *clipSource) Channels() int   { return s.clip.Channels }
func (s *clipSource) BufSize() int    { return 4096 }
func (s *clipSource) Close() error    { return nil }

func (s *clipSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.clip.Samples) {
		return 0, io.EOF
	}

	n := copyFloat(dst, s.clip.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.clip.Samples) {
		return n, io.EOF
	}

	return n, nil
}

func copyFloat(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]) / 32768.0
	}

	return n
}
