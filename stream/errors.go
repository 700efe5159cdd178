// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	ErrNotStream          = errors.New("not an audpack stream")
	ErrUnsupportedVersion = errors.New("unsupported audpack stream version")
	ErrTruncated          = errors.New("audpack stream header is truncated")
	ErrFieldOverflow      = errors.New("header field does not fit its encoding")
)
