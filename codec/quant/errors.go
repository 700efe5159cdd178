// SPDX-License-Identifier: EPL-2.0

package quant

import "errors"

var (
	// ErrInvalidWidth indicates a code width outside [MinWidth, MaxWidth].
	ErrInvalidWidth = errors.New("quantizer width must be between 1 and 16 bits")
)
