// SPDX-License-Identifier: EPL-2.0

// Package stage applies a general-purpose byte compressor after an audio
// codec has done its work.
//
// Supported kinds and their libraries:
//
//	none    pass-through
//	zstd    github.com/klauspost/compress/zstd (pooled coders)
//	zlib    github.com/klauspost/compress/zlib
//	brotli  github.com/andybalholm/brotli
//	snappy  github.com/golang/snappy
//
// Run-length and bit-packed payloads still carry plenty of byte-level
// redundancy, so a stage usually shrinks them further. Stages are lossless:
//
//	packed, err := stage.Compress(stage.Zstd, 0, payload)
//	payload, err = stage.Decompress(stage.Zstd, packed)
package stage
