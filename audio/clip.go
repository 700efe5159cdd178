// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// BitDepth16 is the only sample width a Clip carries.
const BitDepth16 = 16

// Clip is a fully decoded PCM stream: interleaved 16-bit samples plus the
// container metadata needed to write them back.
type Clip struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    []int16
}

// Validate checks that the metadata is usable and that Samples holds whole
// frames.
func (c Clip) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, c.SampleRate)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidChannels, c.Channels)
	}
	if c.BitDepth != BitDepth16 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedDepth, c.BitDepth)
	}
	if len(c.Samples)%c.Channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(c.Samples), c.Channels)
	}

	return nil
}

// Frames returns the number of sample frames (samples per channel).
func (c Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Duration returns the playing time of the clip.
func (c Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate)
}

// SameFormat reports whether c and o share rate, channel count and depth.
func (c Clip) SameFormat(o Clip) bool {
	return c.SampleRate == o.SampleRate && c.Channels == o.Channels && c.BitDepth == o.BitDepth
}
