// SPDX-License-Identifier: EPL-2.0

package audpack

import "errors"

var (
	ErrUnknownCodec = errors.New("unknown audpack codec")
	ErrUnknownStage = errors.New("unknown audpack stage")

	// ErrSampleCount means the payload decoded to a different number of
	// samples than the stream header announced, or the count exceeds
	// MaxSamples.
	ErrSampleCount = errors.New("decoded sample count does not match header")

	// ErrLossyVerify is returned by Verify when a decoded clip falls outside
	// the fidelity its codec guarantees.
	ErrLossyVerify = errors.New("decoded clip exceeds codec error bound")
)
