// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Collect drains src into a 16-bit Clip using FloatToSample. It does not
// close src.
//
// bufferSize is the number of float32 values read per call; values <= 0
// fall back to src.BufSize().
func Collect(src Source, bufferSize int) (Clip, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	clip := Clip{
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
		BitDepth:   BitDepth16,
	}

	buf := make([]float32, bufferSize)
	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			clip.Samples = append(clip.Samples, FloatToSample(buf[i]))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Clip{}, fmt.Errorf("collecting samples: %w", err)
		}
		if n == 0 {
			// Sources may report (0, nil) at the end of some streams.
			break
		}
	}

	// Drop a trailing partial frame rather than misalign channels.
	if clip.Channels > 0 {
		clip.Samples = clip.Samples[:len(clip.Samples)-len(clip.Samples)%clip.Channels]
	}

	return clip, nil
}
