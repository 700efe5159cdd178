// SPDX-License-Identifier: EPL-2.0

// Package stream frames compressed audio in a small self-describing
// container.
//
// The layout is fixed and little-endian:
//
//	offset size field
//	0      4    magic "APCK"
//	4      1    version (1)
//	5      1    codec id
//	6      1    stage id
//	7      1    reserved, zero
//	8      2    channels
//	10     2    bits per sample
//	12     4    sample rate
//	16     8    sample count (all channels)
//	24     ...  payload
//
// The package does not interpret codec or stage ids; the audpack package
// assigns them.
package stream
