// SPDX-License-Identifier: EPL-2.0

package piecewise

import "errors"

var (
	// ErrTruncated indicates a serialized segment list shorter than its count.
	ErrTruncated = errors.New("truncated segment stream")

	// ErrStartOutOfRange indicates a segment start that does not fit the wire format.
	ErrStartOutOfRange = errors.New("segment start out of range")
)
