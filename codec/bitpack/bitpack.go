// SPDX-License-Identifier: EPL-2.0

// Package bitpack stores fixed-width unsigned codes contiguously in 16-bit
// words.
//
// Codes are laid out least-significant-bit first and continue across word
// boundaries without padding. The last word is zero-filled above its
// meaningful bits, so a word sequence alone does not say how many codes it
// holds: the count has to travel with it. Header and Packed carry that
// count; Pack and Unpack take it explicitly.
package bitpack

import "fmt"

const (
	MinWidth = 1
	MaxWidth = 16

	wordBits = 16
)

func checkWidth(width int) error {
	if width < MinWidth || width > MaxWidth {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}

	return nil
}

// PackedWords returns how many words Pack produces for n codes of the given
// width: ceil(n*width/16).
func PackedWords(n, width int) int {
	return (n*width + wordBits - 1) / wordBits
}

// Pack packs codes of the given width into 16-bit words. Bits of a code
// above width are ignored.
func Pack(codes []uint16, width int) ([]uint16, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}

	mask := uint64(1)<<width - 1
	words := make([]uint16, 0, PackedWords(len(codes), width))

	var acc uint64
	offset := 0

	for _, c := range codes {
		acc |= (uint64(c) & mask) << offset
		offset += width

		for offset >= wordBits {
			words = append(words, uint16(acc))
			acc >>= wordBits
			offset -= wordBits
		}
	}

	if offset > 0 {
		words = append(words, uint16(acc))
	}

	return words, nil
}

// Unpack extracts exactly count codes of the given width from words.
// If words hold fewer than count codes the missing codes are zero; codes
// past count, including the zero padding of the last word, are ignored.
func Unpack(words []uint16, width, count int) ([]uint16, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	mask := uint64(1)<<width - 1
	codes := make([]uint16, count)

	var acc uint64
	buffered := 0
	n := 0

	for _, w := range words {
		if n == count {
			break
		}

		acc |= uint64(w) << buffered
		buffered += wordBits

		for buffered >= width && n < count {
			codes[n] = uint16(acc & mask)
			acc >>= width
			buffered -= width
			n++
		}
	}

	return codes, nil
}
