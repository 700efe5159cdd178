// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audpack/audio"
)

// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
const wavFormatPCM = 1

// Read decodes a 16-bit PCM WAV into a Clip.
func Read(r io.ReadSeeker) (audio.Clip, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return audio.Clip{}, ErrNotWavFile
	}

	if dec.WavAudioFormat != wavFormatPCM || dec.BitDepth != audio.BitDepth16 {
		return audio.Clip{}, fmt.Errorf("%w: format %d, %d bits", ErrOnlyPCM16bitSupported, dec.WavAudioFormat, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return audio.Clip{}, fmt.Errorf("reading PCM data: %w", err)
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

// Write encodes clip as a 16-bit PCM WAV. The go-audio encoder patches the
// chunk sizes on close, hence the io.WriteSeeker.
func Write(w io.WriteSeeker, clip audio.Clip) error {
	if err := clip.Validate(); err != nil {
		return fmt.Errorf("invalid clip: %w", err)
	}

	data := make([]int, len(clip.Samples))
	for i, s := range clip.Samples {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(w, clip.SampleRate, audio.BitDepth16, clip.Channels, wavFormatPCM)

	// Always write, even with no samples, so the header exists before Close.
	err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: clip.Channels, SampleRate: clip.SampleRate},
		Data:           data,
		SourceBitDepth: audio.BitDepth16,
	})
	if err != nil {
		return fmt.Errorf("writing PCM data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}

	return nil
}

// Decoder adapts Read to the audio.Decoder and audio.ClipDecoder interfaces.
type Decoder struct{}

func (Decoder) DecodeClip(r io.Reader) (audio.Clip, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires io.ReadSeeker
		data, err := io.ReadAll(r)
		if err != nil {
			return audio.Clip{}, fmt.Errorf("reading wav data: %w", err)
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
