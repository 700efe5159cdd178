// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"math"
)

// FloatToSample maps a normalized value to 16 bits as x*32768, rounded and
// saturated. It inverts the 1/32768 scaling used by NewClipSource exactly.
func FloatToSample(x float32) int16 {
	return saturate(float64(x) * 32768)
}

func saturate(v float64) int16 {
	v = math.Round(v)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}

// SamplesToBytes returns the little-endian 16-bit PCM image of samples, the
// same layout as a WAV data chunk.
func SamplesToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}

	return out
}

// BytesToSamples is the inverse of SamplesToBytes.
func BytesToSamples(b []byte) ([]int16, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddByteCount, len(b))
	}

	samples := make([]int16, len(b)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}

	return samples, nil
}
