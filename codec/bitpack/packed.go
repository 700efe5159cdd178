// SPDX-License-Identifier: EPL-2.0

package bitpack

import (
	"encoding/binary"
	"fmt"
	"math"
)

// headerSize is width (1 byte) plus count (4 bytes).
const headerSize = 5

// Header is the out-of-band description of a packed word sequence.
type Header struct {
	Width int
	Count int
}

// Packed is a packed word sequence together with its Header.
type Packed struct {
	Header
	Words []uint16
}

// New packs codes and records width and count alongside the words.
func New(codes []uint16, width int) (Packed, error) {
	words, err := Pack(codes, width)
	if err != nil {
		return Packed{}, err
	}

	return Packed{
		Header: Header{Width: width, Count: len(codes)},
		Words:  words,
	}, nil
}

// Codes unpacks the words using the recorded header.
func (p Packed) Codes() ([]uint16, error) {
	return Unpack(p.Words, p.Width, p.Count)
}

// MarshalBinary encodes p as width (u8), count (u32 LE), then every word as
// u16 LE.
func (p Packed) MarshalBinary() ([]byte, error) {
	if err := checkWidth(p.Width); err != nil {
		return nil, err
	}
	if p.Count < 0 || uint64(p.Count) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, p.Count)
	}

	out := make([]byte, headerSize+2*len(p.Words))
	out[0] = byte(p.Width)
	binary.LittleEndian.PutUint32(out[1:5], uint32(p.Count))

	for i, w := range p.Words {
		binary.LittleEndian.PutUint16(out[headerSize+2*i:], w)
	}

	return out, nil
}

// UnmarshalBinary decodes the layout written by MarshalBinary. The word
// count must match PackedWords(count, width).
func (p *Packed) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}

	width := int(data[0])
	if err := checkWidth(width); err != nil {
		return err
	}

	count := int(binary.LittleEndian.Uint32(data[1:5]))
	body := data[headerSize:]
	nWords := PackedWords(count, width)

	if len(body) != 2*nWords {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrTruncated, len(body), 2*nWords)
	}

	words := make([]uint16, nWords)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(body[2*i:])
	}

	p.Header = Header{Width: width, Count: count}
	p.Words = words

	return nil
}
