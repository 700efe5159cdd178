// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files as audio.Clip values.
//
// It is a thin layer over github.com/go-audio/wav.
//
// # Reading
//
//	f, _ := os.Open("take.wav")
//	clip, err := wav.Read(f)
//
// Read returns the interleaved samples unchanged together with the sample
// rate and channel count. Anything but PCM 16-bit is rejected with
// ErrOnlyPCM16bitSupported; input that is not RIFF/WAVE fails with
// ErrNotWavFile.
//
// Decoder implements audio.ClipDecoder for exact reads and audio.Decoder for
// streamed float access, so it can be placed in an audio.Registry.
//
// # Writing
//
//	f, _ := os.Create("out.wav")
//	err := wav.Write(f, clip)
//
// The output must be an io.WriteSeeker because chunk sizes are patched once
// all samples are written.
//
// # Metadata
//
// ReadInfo reports rate, bit depth, channels, frame count and duration
// without decoding the data chunk.
package wav
