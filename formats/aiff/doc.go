// SPDX-License-Identifier: EPL-2.0

// Package aiff reads 16-bit AIFF files as audio.Clip values.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
//	f, _ := os.Open("audio.aif")
//	clip, err := aiff.Read(f)
//
// AIFF stores samples big-endian; Read returns them as native int16 values,
// so an AIFF input can be compressed losslessly like a WAV input.
//
// Decoder implements audio.ClipDecoder and audio.Decoder for use in an
// audio.Registry. Non-seekable readers are buffered in memory because go-audio
// needs an io.ReadSeeker.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not FORM/AIFF
//   - ErrOnlyPCM16bitSupported: any sample size other than 16 bits
package aiff
