// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"time"

	gowav "github.com/go-audio/wav"
)

// Info is the header metadata of a WAV file.
type Info struct {
	SampleRate    int
	BitsPerSample int
	Channels      int
	Frames        int64
	Duration      time.Duration
}

// ReadInfo reads the WAV header without decoding samples.
func ReadInfo(r io.ReadSeeker) (Info, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Info{}, ErrNotWavFile
	}

	dur, err := dec.Duration()
	if err != nil {
		return Info{}, fmt.Errorf("reading duration: %w", err)
	}

	info := Info{
		SampleRate:    int(dec.SampleRate),
		BitsPerSample: int(dec.BitDepth),
		Channels:      int(dec.NumChans),
		Duration:      dur,
	}

	if frameSize := int64(info.Channels) * int64(info.BitsPerSample/8); frameSize > 0 {
		info.Frames = dec.PCMLen() / frameSize
	}

	return info, nil
}

// String renders the info as one "Key: value" line per field.
func (i Info) String() string {
	return fmt.Sprintf("Sample Rate: %d\nBits per Sample: %d\nChannels: %d\nLength: %d\nDuration: %v",
		i.SampleRate, i.BitsPerSample, i.Channels, i.Frames, i.Duration)
}
