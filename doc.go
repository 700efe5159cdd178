// SPDX-License-Identifier: EPL-2.0

// Package audpack compresses 16-bit PCM audio clips into self-describing
// byte streams.
//
// A stream is produced in three steps:
//
//  1. A sample codec turns the clip into a payload.
//  2. An optional general-purpose stage (see package stage) shrinks it.
//  3. A stream header (see package stream) records codec, stage and the
//     clip's metadata, so Decompress needs nothing but the bytes.
//
// # Codecs
//
//	raw        little-endian PCM bytes                      lossless
//	rle        run-length tokens over the PCM bytes          lossless
//	bitpack    quantize to W bits, pack into 16-bit words    lossy, |error| < 2^(16-W)
//	piecewise  point-slope segments between value changes    lossy
//	flac       verbatim FLAC frames                          lossless
//
// The bitpack codec is NOT lossless, not even for quiet input: every sample
// is rescaled into a W-bit code and back, and the round trip reproduces it
// only to within 2^(16-W)-1. With the default width of 10 that is 63.
//
// The piecewise codec keeps the shape of the signal between value changes
// and, unless Options.KeepTail is set, drops the final flat run; its decoded
// tail extrapolates the preceding ramp. Values are rounded and saturated to
// the int16 range.
//
// # Usage
//
//	opts := audpack.DefaultOptions() // rle + zstd
//	b, err := audpack.Compress(clip, opts)
//	...
//	back, err := audpack.Decompress(b)
//	err = audpack.Verify(clip, back, opts)
//
// All functions are pure and safe for concurrent use on independent inputs.
package audpack
