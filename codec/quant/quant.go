// SPDX-License-Identifier: EPL-2.0

// Package quant rescales signed 16-bit samples into a smaller unsigned code
// space and back.
//
// The mapping is lossy on purpose: ScaleDown drops the low 16-W bits of every
// sample, so distinct samples inside the same 2^(16-W) wide bucket collapse
// into one code. ScaleUp returns the bucket floor, which puts the round-trip
// error in [0, 2^(16-W)-1]. Callers that need lossless output must not use
// this package.
package quant

import (
	"fmt"
	"math"
)

const (
	MinWidth = 1
	MaxWidth = 16

	// DefaultWidth is the 10-bit code space used by the bitpack codec.
	DefaultWidth = 10
)

// Default is the DefaultWidth quantizer.
var Default = Quantizer{shift: 16 - DefaultWidth}

// Quantizer maps int16 samples onto W-bit codes. The zero value is a 16-bit
// quantizer, which is the lossless identity shifted into unsigned range.
type Quantizer struct {
	shift uint
}

// New returns a quantizer producing codes of the given width.
func New(width int) (Quantizer, error) {
	if width < MinWidth || width > MaxWidth {
		return Quantizer{}, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}

	return Quantizer{shift: uint(16 - width)}, nil
}

// Width returns the code width in bits.
func (q Quantizer) Width() int { return 16 - int(q.shift) }

// Step returns the size of one quantization bucket, 2^(16-W).
func (q Quantizer) Step() int { return 1 << q.shift }

// MaxCode returns the largest code, 2^W-1.
func (q Quantizer) MaxCode() uint16 { return uint16(1<<q.Width() - 1) }

// ScaleDown maps sample onto [0, 2^W-1]. It is monotonic non-decreasing.
func (q Quantizer) ScaleDown(sample int16) uint16 {
	// The offset sum needs 17 bits before the shift.
	offset := uint32(int32(sample) - math.MinInt16)
	return uint16(offset >> q.shift)
}

// ScaleUp maps code back to the floor of its bucket. Only the low W bits
// of code are used.
func (q Quantizer) ScaleUp(code uint16) int16 {
	code &= q.MaxCode()
	return int16(int32(code)<<q.shift + math.MinInt16)
}

// ScaleDownAll quantizes every sample.
func (q Quantizer) ScaleDownAll(samples []int16) []uint16 {
	codes := make([]uint16, len(samples))
	for i, s := range samples {
		codes[i] = q.ScaleDown(s)
	}

	return codes
}

// ScaleUpAll expands every code.
func (q Quantizer) ScaleUpAll(codes []uint16) []int16 {
	samples := make([]int16, len(codes))
	for i, c := range codes {
		samples[i] = q.ScaleUp(c)
	}

	return samples
}
