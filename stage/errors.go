// SPDX-License-Identifier: EPL-2.0

package stage

import "errors"

var (
	ErrUnknownKind  = errors.New("unknown compression stage")
	ErrInvalidLevel = errors.New("compression level out of range")
)
