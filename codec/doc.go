// SPDX-License-Identifier: EPL-2.0

// Package codec groups the sample-stream codecs implemented by audpack.
//
// Each subpackage is a pure, in-memory transform with no I/O and no shared
// state, so all of them are safe for concurrent use on independent inputs:
//
//   - rle: lossless run-length coding of byte streams
//   - quant: lossy linear rescaling of 16-bit samples into W-bit codes
//   - bitpack: LSB-first packing of W-bit codes into 16-bit words
//   - piecewise: point-slope segmentation of real-valued sample sequences
//
// The subpackages do not depend on each other. The root audpack package
// composes them (quant + bitpack form the "bitpack" codec) and handles
// serialization.
package codec
