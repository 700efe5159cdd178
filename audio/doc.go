// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample-stream types shared by the codecs and the
// container formats.
//
// # Clips
//
// A Clip is a fully decoded stream: interleaved 16-bit samples plus the
// sample rate, channel count and bit depth needed to write it back:
//
//	clip := audio.Clip{SampleRate: 8000, Channels: 1, BitDepth: 16, Samples: pcm}
//	if err := clip.Validate(); err != nil {
//	    // Handle error
//	}
//
// SamplesToBytes and BytesToSamples convert between samples and the
// little-endian byte image used inside WAV data chunks.
//
// # Streamed Sources
//
// Compressed inputs (MP3, Ogg Vorbis) are decoded incrementally through the
// Source interface:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Collect drains a Source into a Clip, converting float samples to 16-bit
// with FloatToSample. NewClipSource goes the other way, and the pair round
// trips exactly. Decoders that can produce 16-bit samples directly also
// implement ClipDecoder; Load prefers that path.
//
// # Conversions
//
// Mono averages channels and Resample changes the sample rate with
// Catmull-Rom interpolation (plus a one-pole low-pass when downsampling).
// Both are lossy and operate on whole clips.
//
// # Format Registry
//
// The Registry maps file extensions to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("mp3", mp3.Decoder{})
//	dec, ok := reg.ForPath("song.mp3")
//
// # Error Handling
//
// Errors are sentinel values and are wrapped with context, so test them with
// errors.Is:
//   - ErrInvalidSampleRate, ErrInvalidChannels, ErrUnsupportedDepth,
//     ErrPartialFrame: Clip.Validate failures
//   - ErrOddByteCount: BytesToSamples got half a sample
package audio
