// SPDX-License-Identifier: EPL-2.0

package rle

import "errors"

var (
	// ErrMalformedStream indicates a token stream with a trailing count byte
	// that has no value byte paired with it.
	ErrMalformedStream = errors.New("malformed run-length stream")
)
