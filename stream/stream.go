// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Magic opens every stream.
var Magic = [4]byte{'A', 'P', 'C', 'K'}

const (
	Version    = 1
	HeaderSize = 24
)

// Header describes the clip a payload was produced from. Codec and Stage
// are opaque identifiers owned by the caller.
type Header struct {
	Codec       uint8
	Stage       uint8
	Channels    int
	BitDepth    int
	SampleRate  int
	SampleCount int
}

// Check reports whether every field fits its on-disk width.
func (h Header) Check() error {
	switch {
	case h.Channels < 0 || h.Channels > math.MaxUint16:
		return fmt.Errorf("%w: channels %d", ErrFieldOverflow, h.Channels)
	case h.BitDepth < 0 || h.BitDepth > math.MaxUint16:
		return fmt.Errorf("%w: bit depth %d", ErrFieldOverflow, h.BitDepth)
	case h.SampleRate < 0 || uint64(h.SampleRate) > math.MaxUint32:
		return fmt.Errorf("%w: sample rate %d", ErrFieldOverflow, h.SampleRate)
	case h.SampleCount < 0:
		return fmt.Errorf("%w: sample count %d", ErrFieldOverflow, h.SampleCount)
	}

	return nil
}

// AppendHeader appends the encoded header to dst.
func AppendHeader(dst []byte, h Header) ([]byte, error) {
	if err := h.Check(); err != nil {
		return dst, err
	}

	dst = append(dst, Magic[:]...)
	dst = append(dst, Version, h.Codec, h.Stage, 0)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(h.Channels))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(h.BitDepth))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(h.SampleRate))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(h.SampleCount))

	return dst, nil
}

// Encode returns header followed by payload.
func Encode(h Header, payload []byte) ([]byte, error) {
	out := make([]byte, 0, HeaderSize+len(payload))

	out, err := AppendHeader(out, h)
	if err != nil {
		return nil, err
	}

	return append(out, payload...), nil
}

// Decode splits b into its header and payload. The payload aliases b.
func Decode(b []byte) (Header, []byte, error) {
	if len(b) < len(Magic) || !bytes.Equal(b[:len(Magic)], Magic[:]) {
		return Header{}, nil, ErrNotStream
	}
	if len(b) < HeaderSize {
		return Header{}, nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(b))
	}
	if v := b[4]; v != Version {
		return Header{}, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	count := binary.LittleEndian.Uint64(b[16:24])
	if count > math.MaxInt {
		return Header{}, nil, fmt.Errorf("%w: sample count %d", ErrFieldOverflow, count)
	}

	h := Header{
		Codec:       b[5],
		Stage:       b[6],
		Channels:    int(binary.LittleEndian.Uint16(b[8:10])),
		BitDepth:    int(binary.LittleEndian.Uint16(b[10:12])),
		SampleRate:  int(binary.LittleEndian.Uint32(b[12:16])),
		SampleCount: int(count),
	}

	return h, b[HeaderSize:], nil
}
