// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrUnsupportedDepth  = errors.New("only 16-bit samples are supported")

	// ErrPartialFrame indicates a sample count that is not a multiple of the channel count.
	ErrPartialFrame = errors.New("sample count must be multiple of channels")

	// ErrOddByteCount indicates 16-bit PCM bytes with a dangling half sample.
	ErrOddByteCount = errors.New("16-bit PCM byte count must be even")
)
