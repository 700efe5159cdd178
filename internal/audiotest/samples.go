// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic sample generators and a mock
// audio source for tests.
package audiotest

import (
	"math"
	"math/rand/v2"
)

// Sine returns frames*channels interleaved samples of a sine wave at the
// given amplitude (0..1 of full scale). Channel c is phase shifted by c
// radians so channels differ.
func Sine(sampleRate, channels, frames int, frequency, amplitude float64) []int16 {
	out := make([]int16, frames*channels)
	for f := range frames {
		t := float64(f) / float64(sampleRate)
		for c := range channels {
			v := amplitude * math.Sin(2*math.Pi*frequency*t+float64(c))
			out[f*channels+c] = int16(math.Round(v * math.MaxInt16))
		}
	}

	return out
}

// Steps returns n samples made of flat runs of length runLen whose values
// cycle through levels. Useful for run-length and piecewise codecs.
func Steps(n, runLen int, levels ...int16) []int16 {
	out := make([]int16, n)
	if len(levels) == 0 || runLen <= 0 {
		return out
	}

	for i := range out {
		out[i] = levels[(i/runLen)%len(levels)]
	}

	return out
}

// Noise returns n uniformly random samples from a fixed seed.
func Noise(n int, seed uint64) []int16 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	out := make([]int16, n)
	for i := range out {
		out[i] = int16(rng.IntN(1<<16) + math.MinInt16)
	}

	return out
}

// Extremes returns every boundary value a 16-bit codec must survive.
func Extremes() []int16 {
	return []int16{math.MinInt16, math.MinInt16 + 1, -1, 0, 1, math.MaxInt16 - 1, math.MaxInt16}
}
