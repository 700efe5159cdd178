// SPDX-License-Identifier: EPL-2.0

package bitpack

import "errors"

var (
	// ErrInvalidWidth indicates a code width outside [1, 16].
	ErrInvalidWidth = errors.New("bit width must be between 1 and 16")

	// ErrInvalidCount indicates a negative expected code count.
	ErrInvalidCount = errors.New("code count must not be negative")

	// ErrTruncated indicates a serialized Packed value shorter than its header claims.
	ErrTruncated = errors.New("truncated packed stream")
)
