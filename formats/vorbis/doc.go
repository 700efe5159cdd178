// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis input for audpack.
//
// Decoding is done by github.com/jfreymuth/oggvorbis. The Decoder yields an
// audio.Source of interleaved float32 samples in [-1.0, 1.0] at the file's
// own rate and channel count:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	clip, err := audio.Collect(src, 4096)
//
// Vorbis is lossy, so clips built from it are only as exact as the 16-bit
// quantization applied by audio.Collect. Encoding is not supported.
package vorbis
