// SPDX-License-Identifier: EPL-2.0

// Package flac reads and writes 16-bit FLAC streams through
// github.com/mewkiz/flac.
//
// Encoding stores verbatim subframes in blocks of 4096 frames, so the
// output is a valid FLAC file whose samples decode back bit for bit. It is
// the lossless reference codec that the audpack codecs are compared with.
//
//	b, err := flac.Encode(clip)
//	back, err := flac.Decode(b)
//
// Streams with other bit depths are rejected with ErrOnlyPCM16bitSupported.
package flac
