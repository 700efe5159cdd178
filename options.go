// SPDX-License-Identifier: EPL-2.0

package audpack

import (
	"github.com/ik5/audpack/codec/quant"
	"github.com/ik5/audpack/stage"
)

// Options controls Compress.
type Options struct {
	Codec Codec
	Stage stage.Kind

	// Level is passed to the stage; 0 picks the stage's default.
	Level int

	// Width is the quantizer width for the bitpack codec; 0 means
	// quant.DefaultWidth.
	Width int

	// KeepTail makes the piecewise codec encode the trailing run instead of
	// dropping it.
	KeepTail bool
}

// DefaultOptions is run-length coding followed by zstd.
func DefaultOptions() Options {
	return Options{
		Codec: RLE,
		Stage: stage.Zstd,
		Width: quant.DefaultWidth,
	}
}

func (o Options) width() int {
	if o.Width == 0 {
		return quant.DefaultWidth
	}

	return o.Width
}
