// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrOnlyPCM16bitSupported = errors.New("only 16 bit FLAC streams are supported")
	ErrTooManyChannels       = errors.New("FLAC supports at most 8 channels")
	ErrReadFailure           = errors.New("flac read failure")
	ErrChannelMismatch       = errors.New("FLAC frame channel count differs from StreamInfo")
)
