// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// downsampleAlpha is the coefficient of the one-pole low-pass applied before
// decimation.
const downsampleAlpha = 0.5

// Mono averages the channels of every frame into one. Mono clips are
// returned unchanged.
func Mono(clip Clip) (Clip, error) {
	if err := clip.Validate(); err != nil {
		return Clip{}, err
	}
	if clip.Channels == 1 {
		return clip, nil
	}

	ch := clip.Channels
	out := clip
	out.Channels = 1
	out.Samples = make([]int16, clip.Frames())

	for f := range out.Samples {
		base := f * ch
		sum := 0
		for c := range ch {
			sum += int(clip.Samples[base+c])
		}
		out.Samples[f] = saturate(float64(sum) / float64(ch))
	}

	return out, nil
}

// Resample converts clip to rate with Catmull-Rom interpolation, channel by
// channel. Downsampling first runs each channel through a one-pole low-pass
// to tame aliasing. The output has floor((frames-1)*rate/clip.SampleRate)+1
// frames.
func Resample(clip Clip, rate int) (Clip, error) {
	if err := clip.Validate(); err != nil {
		return Clip{}, err
	}
	if rate <= 0 {
		return Clip{}, fmt.Errorf("%w: target %d", ErrInvalidSampleRate, rate)
	}
	if rate == clip.SampleRate || clip.Frames() == 0 {
		clip.SampleRate = rate
		return clip, nil
	}

	ch := clip.Channels
	frames := clip.Frames()
	ratio := float64(clip.SampleRate) / float64(rate)
	outFrames := int(float64(frames-1)/ratio) + 1

	out := Clip{
		SampleRate: rate,
		Channels:   ch,
		BitDepth:   clip.BitDepth,
		Samples:    make([]int16, outFrames*ch),
	}

	x := make([]float64, frames)
	for c := range ch {
		for f := range frames {
			x[f] = float64(clip.Samples[f*ch+c])
		}
		if ratio > 1 {
			lowPass(x)
		}

		at := func(i int) float64 { return x[min(max(i, 0), frames-1)] }

		for j := range outFrames {
			pos := float64(j) * ratio
			i := int(pos)
			t := pos - float64(i)
			out.Samples[j*ch+c] = saturate(catmullRom(at(i-1), at(i), at(i+1), at(i+2), t))
		}
	}

	return out, nil
}

// lowPass filters x in place, starting from x[0] so there is no warm-up.
func lowPass(x []float64) {
	state := x[0]
	for i, v := range x {
		state = downsampleAlpha*v + (1-downsampleAlpha)*state
		x[i] = state
	}
}

// catmullRom interpolates between y1 and y2 at fraction t in [0, 1).
func catmullRom(y0, y1, y2, y3, t float64) float64 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*t+a1)*t+a2)*t + y1
}
