// SPDX-License-Identifier: EPL-2.0

package audpack

import (
	"fmt"
	"math"

	"github.com/ik5/audpack/audio"
	"github.com/ik5/audpack/codec/bitpack"
	"github.com/ik5/audpack/codec/piecewise"
	"github.com/ik5/audpack/codec/quant"
	"github.com/ik5/audpack/codec/rle"
	"github.com/ik5/audpack/formats/flac"
	"github.com/ik5/audpack/stage"
	"github.com/ik5/audpack/stream"
)

// MaxSamples bounds the sample count of a single clip, about 11 minutes of
// 48 kHz stereo. Decompress allocates from the header count before the
// payload is decoded, so larger counts are rejected up front.
const MaxSamples = 1 << 26

// Compress encodes clip with opts.Codec, runs the payload through
// opts.Stage and frames the result with a stream header.
func Compress(clip audio.Clip, opts Options) ([]byte, error) {
	if err := clip.Validate(); err != nil {
		return nil, fmt.Errorf("invalid clip: %w", err)
	}
	if len(clip.Samples) > MaxSamples {
		return nil, fmt.Errorf("%w: %d samples, limit %d", ErrSampleCount, len(clip.Samples), MaxSamples)
	}
	if !opts.Codec.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, uint8(opts.Codec))
	}
	if !opts.Stage.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStage, uint8(opts.Stage))
	}

	payload, err := encodePayload(clip, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Codec, err)
	}

	payload, err = stage.Compress(opts.Stage, opts.Level, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Stage, err)
	}

	return stream.Encode(stream.Header{
		Codec:       uint8(opts.Codec),
		Stage:       uint8(opts.Stage),
		Channels:    clip.Channels,
		BitDepth:    clip.BitDepth,
		SampleRate:  clip.SampleRate,
		SampleCount: len(clip.Samples),
	}, payload)
}

// Decompress reverses Compress. Everything it needs is in the stream header.
func Decompress(b []byte) (audio.Clip, error) {
	h, payload, err := stream.Decode(b)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("reading header: %w", err)
	}

	c := Codec(h.Codec)
	if !c.Valid() {
		return audio.Clip{}, fmt.Errorf("%w: %d", ErrUnknownCodec, h.Codec)
	}
	k := stage.Kind(h.Stage)
	if !k.Valid() {
		return audio.Clip{}, fmt.Errorf("%w: %d", ErrUnknownStage, h.Stage)
	}
	if h.SampleCount > MaxSamples {
		return audio.Clip{}, fmt.Errorf("%w: header says %d, limit %d", ErrSampleCount, h.SampleCount, MaxSamples)
	}

	payload, err = stage.Decompress(k, payload)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("%s: %w", k, err)
	}

	samples, err := decodePayload(c, payload, h.SampleCount)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("%s: %w", c, err)
	}
	if len(samples) != h.SampleCount {
		return audio.Clip{}, fmt.Errorf("%w: got %d, header says %d", ErrSampleCount, len(samples), h.SampleCount)
	}

	clip := audio.Clip{
		SampleRate: h.SampleRate,
		Channels:   h.Channels,
		BitDepth:   h.BitDepth,
		Samples:    samples,
	}
	if err := clip.Validate(); err != nil {
		return audio.Clip{}, fmt.Errorf("decoded clip: %w", err)
	}

	return clip, nil
}

func encodePayload(clip audio.Clip, opts Options) ([]byte, error) {
	switch opts.Codec {
	case Raw:
		return audio.SamplesToBytes(clip.Samples), nil

	case RLE:
		return rle.Encode(audio.SamplesToBytes(clip.Samples)), nil

	case Bitpack:
		q, err := quant.New(opts.width())
		if err != nil {
			return nil, err
		}
		p, err := bitpack.New(q.ScaleDownAll(clip.Samples), q.Width())
		if err != nil {
			return nil, err
		}
		return p.MarshalBinary()

	case Piecewise:
		values := make([]float64, len(clip.Samples))
		for i, s := range clip.Samples {
			values[i] = float64(s)
		}
		if opts.KeepTail {
			return piecewise.Marshal(piecewise.CompressKeepTail(values))
		}
		return piecewise.Marshal(piecewise.Compress(values))

	case FLAC:
		return flac.Encode(clip)
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, uint8(opts.Codec))
}

func decodePayload(c Codec, payload []byte, count int) ([]int16, error) {
	switch c {
	case Raw:
		return audio.BytesToSamples(payload)

	case RLE:
		pcm, err := rle.Decode(payload)
		if err != nil {
			return nil, err
		}
		return audio.BytesToSamples(pcm)

	case Bitpack:
		var p bitpack.Packed
		if err := p.UnmarshalBinary(payload); err != nil {
			return nil, err
		}
		q, err := quant.New(p.Width)
		if err != nil {
			return nil, err
		}
		codes, err := p.Codes()
		if err != nil {
			return nil, err
		}
		return q.ScaleUpAll(codes), nil

	case Piecewise:
		segments, err := piecewise.Unmarshal(payload)
		if err != nil {
			return nil, err
		}
		return toSamples(piecewise.Decompress(segments, count)), nil

	case FLAC:
		clip, err := flac.Decode(payload)
		if err != nil {
			return nil, err
		}
		return clip.Samples, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, uint8(c))
}

// toSamples rounds ramp values to the nearest sample, saturating at the
// int16 range.
func toSamples(values []float64) []int16 {
	out := make([]int16, len(values))
	for i, v := range values {
		v = math.Round(v)
		switch {
		case math.IsNaN(v):
			out[i] = 0
		case v >= math.MaxInt16:
			out[i] = math.MaxInt16
		case v <= math.MinInt16:
			out[i] = math.MinInt16
		default:
			out[i] = int16(v)
		}
	}

	return out
}
