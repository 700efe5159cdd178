// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	"github.com/ik5/audpack/audio"
)

// Read decodes a 16-bit AIFF into a Clip. Samples are returned exactly; the
// big-endian layout of AIFF is handled by go-audio.
func Read(r io.ReadSeeker) (audio.Clip, error) {
	dec := goaiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return audio.Clip{}, ErrNotAiffFile
	}

	if dec.BitDepth != audio.BitDepth16 {
		return audio.Clip{}, fmt.Errorf("%w: got %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return audio.Clip{}, fmt.Errorf("reading sound data: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}

	return audio.Clip{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   audio.BitDepth16,
		Samples:    samples,
	}, nil
}

// Decoder adapts Read to the audio.Decoder and audio.ClipDecoder interfaces.
type Decoder struct{}

func (Decoder) DecodeClip(r io.Reader) (audio.Clip, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires io.ReadSeeker
		data, err := io.ReadAll(r)
		if err != nil {
			return audio.Clip{}, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	return Read(rs)
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	clip, err := d.DecodeClip(r)
	if err != nil {
		return nil, err
	}

	return audio.NewClipSource(clip), nil
}
