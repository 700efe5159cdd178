// SPDX-License-Identifier: EPL-2.0

package stage

import (
	"fmt"
	"strings"
)

// Kind selects a general-purpose compressor. The numeric values are stored
// in stream headers and must not change.
type Kind uint8

const (
	None Kind = iota
	Zstd
	Zlib
	Brotli
	Snappy
)

var kindNames = [...]string{
	None:   "none",
	Zstd:   "zstd",
	Zlib:   "zlib",
	Brotli: "brotli",
	Snappy: "snappy",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("stage(%d)", uint8(k))
}

// Valid reports whether k names a known stage.
func (k Kind) Valid() bool { return int(k) < len(kindNames) }

// Kinds lists every stage in id order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// ParseKind maps a stage name, case-insensitively, to its Kind. The empty
// string means None.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, nil
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Compress runs b through the stage. Level 0 picks the compressor's default;
// otherwise it must lie in the compressor's own range (zstd 1-22, zlib 1-9,
// brotli 1-11). Snappy has no levels and ignores it. Empty input yields
// empty output for every kind.
func Compress(k Kind, level int, b []byte) ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	if len(b) == 0 {
		return []byte{}, nil
	}

	switch k {
	case Zstd:
		return compressZstd(b, level)
	case Zlib:
		return compressZlib(b, level)
	case Brotli:
		return compressBrotli(b, level)
	case Snappy:
		return compressSnappy(b), nil
	default:
		return b, nil
	}
}

// Decompress reverses Compress.
func Decompress(k Kind, b []byte) ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	if len(b) == 0 {
		return []byte{}, nil
	}

	switch k {
	case Zstd:
		return decompressZstd(b)
	case Zlib:
		return decompressZlib(b)
	case Brotli:
		return decompressBrotli(b)
	case Snappy:
		return decompressSnappy(b)
	default:
		return b, nil
	}
}
