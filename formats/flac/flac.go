// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audpack/audio"
	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

const (
	blockSize   = 4096
	maxChannels = 8

	// maxHintFrames caps the preallocation taken from StreamInfo, which is
	// not trusted until the frames are read.
	maxHintFrames = 1 << 20
)

// Encode writes clip as a FLAC stream of verbatim 16-bit subframes.
func Encode(clip audio.Clip) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, clip); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write streams clip to w as FLAC. Seekable writers get their StreamInfo
// block updated on close.
func Write(w io.Writer, clip audio.Clip) error {
	if err := clip.Validate(); err != nil {
		return fmt.Errorf("invalid clip: %w", err)
	}
	if clip.Channels > maxChannels {
		return fmt.Errorf("%w: %d", ErrTooManyChannels, clip.Channels)
	}

	frames := clip.Frames()
	info := &meta.StreamInfo{
		BlockSizeMin:  blockSize,
		BlockSizeMax:  blockSize,
		SampleRate:    uint32(clip.SampleRate),
		NChannels:     uint8(clip.Channels),
		BitsPerSample: audio.BitDepth16,
		NSamples:      uint64(frames),
	}

	enc, err := goflac.NewEncoder(w, info)
	if err != nil {
		return fmt.Errorf("creating encoder: %w", err)
	}

	// Per-channel buffers are reused for every block.
	channels := make([][]int32, clip.Channels)
	for ch := range channels {
		channels[ch] = make([]int32, blockSize)
	}

	for off := 0; off < frames; off += blockSize {
		n := min(frames-off, blockSize)
		for ch := range channels {
			channels[ch] = channels[ch][:n]
		}
		for i := range n {
			base := (off + i) * clip.Channels
			for ch := range channels {
				channels[ch][i] = int32(clip.Samples[base+ch])
			}
		}

		if err := enc.WriteFrame(buildFrame(channels, n, clip.SampleRate)); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}

	return nil
}

func buildFrame(channels [][]int32, n, sampleRate int) *frame.Frame {
	subframes := make([]*frame.Subframe, len(channels))
	for ch := range channels {
		subframes[ch] = &frame.Subframe{
			SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
			Samples:   channels[ch],
			NSamples:  n,
		}
	}

	return &frame.Frame{
		Header: frame.Header{
			HasFixedBlockSize: true,
			BlockSize:         uint16(n),
			SampleRate:        uint32(sampleRate),
			Channels:          frame.Channels(len(channels) - 1),
			BitsPerSample:     audio.BitDepth16,
		},
		Subframes: subframes,
	}
}

// Decode parses a complete 16-bit FLAC stream into a Clip.
func Decode(b []byte) (audio.Clip, error) {
	return Read(bytes.NewReader(b))
}

// Read parses a 16-bit FLAC stream from r into a Clip.
func Read(r io.Reader) (audio.Clip, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
	defer stream.Close()

	info := stream.Info
	if info.BitsPerSample != audio.BitDepth16 {
		return audio.Clip{}, fmt.Errorf("%w: got %d", ErrOnlyPCM16bitSupported, info.BitsPerSample)
	}

	clip := audio.Clip{
		SampleRate: int(info.SampleRate),
		Channels:   int(info.NChannels),
		BitDepth:   audio.BitDepth16,
		Samples:    make([]int16, 0, int(min(info.NSamples, maxHintFrames))*int(info.NChannels)),
	}

	for {
		f, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return audio.Clip{}, fmt.Errorf("%w: %w", ErrReadFailure, err)
		}

		if err := checkFrame(f, clip.Channels); err != nil {
			return audio.Clip{}, err
		}

		for i := range int(f.BlockSize) {
			for ch := range clip.Channels {
				clip.Samples = append(clip.Samples, int16(f.Subframes[ch].Samples[i]))
			}
		}
	}

	return clip, nil
}

// checkFrame rejects frames whose layout disagrees with StreamInfo.
func checkFrame(f *frame.Frame, channels int) error {
	if len(f.Subframes) != channels {
		return fmt.Errorf("%w: frame has %d channels, stream has %d", ErrChannelMismatch, len(f.Subframes), channels)
	}
	for ch, sub := range f.Subframes {
		if len(sub.Samples) < int(f.BlockSize) {
			return fmt.Errorf("%w: channel %d has %d of %d samples", ErrReadFailure, ch, len(sub.Samples), f.BlockSize)
		}
	}

	return nil
}

// Decoder plugs FLAC into an audio.Registry.
type Decoder struct{}

func (Decoder) DecodeClip(r io.Reader) (audio.Clip, error) {
	return Read(r)
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	clip, err := d.DecodeClip(r)
	if err != nil {
		return nil, err
	}

	return audio.NewClipSource(clip), nil
}
