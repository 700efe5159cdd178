// SPDX-License-Identifier: EPL-2.0

package audpack

import (
	"fmt"
	"strings"

	"github.com/ik5/audpack/stage"
)

// Codec selects how samples are turned into a payload. The numeric values
// are stored in stream headers and must not change.
type Codec uint8

const (
	Raw Codec = iota
	RLE
	Bitpack
	Piecewise
	FLAC
)

var codecNames = [...]string{
	Raw:       "raw",
	RLE:       "rle",
	Bitpack:   "bitpack",
	Piecewise: "piecewise",
	FLAC:      "flac",
}

func (c Codec) String() string {
	if c.Valid() {
		return codecNames[c]
	}

	return fmt.Sprintf("codec(%d)", uint8(c))
}

func (c Codec) Valid() bool { return int(c) < len(codecNames) }

// Lossless reports whether Decompress(Compress(x)) reproduces x exactly.
// Bitpack is bounded by the quantization step; piecewise keeps only the
// shape between value changes.
func (c Codec) Lossless() bool {
	switch c {
	case Raw, RLE, FLAC:
		return true
	default:
		return false
	}
}

// Codecs lists every codec in id order.
func Codecs() []Codec {
	out := make([]Codec, len(codecNames))
	for i := range out {
		out[i] = Codec(i)
	}

	return out
}

// ParseCodec maps a codec name, case-insensitively, to its Codec.
func ParseCodec(name string) (Codec, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range codecNames {
		if n == name {
			return Codec(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// ParseStage maps a stage name to its stage.Kind. The empty string means
// no stage.
func ParseStage(name string) (stage.Kind, error) {
	k, err := stage.ParseKind(name)
	if err != nil {
		return stage.None, fmt.Errorf("%w: %w", ErrUnknownStage, err)
	}

	return k, nil
}
