// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input for audpack.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// 16-bit little-endian interleaved stereo. Two paths are offered:
//
//	clip, err := mp3.Decoder{}.DecodeClip(file)   // exact int16 samples
//	src, err := mp3.Decoder{}.Decode(file)         // streamed float32 Source
//
// DecodeClip keeps the decoder's integer output untouched, so a clip read
// this way can be compressed losslessly. The streamed Source normalizes each
// sample by 1/32768.
//
// # Limitations
//
//   - Output is always stereo, even for mono files
//   - Encoding is not supported
//   - A truncated trailing frame is dropped by DecodeClip
package mp3
