// SPDX-License-Identifier: EPL-2.0

package audpack

import (
	"fmt"
	"slices"

	"github.com/ik5/audpack/audio"
	"github.com/ik5/audpack/codec/quant"
)

// Verify checks got, the result of decompressing want, against what
// opts.Codec promises: identical samples for lossless codecs, every sample
// within one quantization step for bitpack, and matching format and length
// for piecewise.
func Verify(want, got audio.Clip, opts Options) error {
	if !got.SameFormat(want) {
		return fmt.Errorf("%w: format %d Hz/%d ch, want %d Hz/%d ch",
			ErrLossyVerify, got.SampleRate, got.Channels, want.SampleRate, want.Channels)
	}
	if len(got.Samples) != len(want.Samples) {
		return fmt.Errorf("%w: %d samples, want %d", ErrLossyVerify, len(got.Samples), len(want.Samples))
	}

	switch {
	case opts.Codec.Lossless():
		if i := firstDiff(want.Samples, got.Samples); i >= 0 {
			return fmt.Errorf("%w: sample %d is %d, want %d", ErrLossyVerify, i, got.Samples[i], want.Samples[i])
		}

	case opts.Codec == Bitpack:
		q, err := quant.New(opts.width())
		if err != nil {
			return fmt.Errorf("bitpack bound: %w", err)
		}
		bound := q.Step() - 1
		for i := range want.Samples {
			if d := int(want.Samples[i]) - int(got.Samples[i]); d < -bound || d > bound {
				return fmt.Errorf("%w: sample %d off by %d, bound %d", ErrLossyVerify, i, d, bound)
			}
		}
	}

	return nil
}

func firstDiff(a, b []int16) int {
	if slices.Equal(a, b) {
		return -1
	}
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}

	return -1
}
