// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	// ErrMismatch means the rewritten copy of a file is not byte-identical to
	// the original although the codec is lossless.
	ErrMismatch = errors.New("copy differs from original")

	// ErrFailed is returned by Run when at least one file failed.
	ErrFailed = errors.New("some files failed to be processed")
)
