// SPDX-License-Identifier: EPL-2.0

package piecewise

import (
	"encoding/binary"
	"fmt"
	"math"
)

// segmentSize is start (u32) + value (f64) + slope (f64).
const segmentSize = 4 + 8 + 8

// Marshal encodes segments as count (u32 LE) followed by start (u32 LE),
// start value and slope (IEEE 754 f64 LE) per segment.
func Marshal(segments []Segment) ([]byte, error) {
	out := make([]byte, 4+segmentSize*len(segments))
	binary.LittleEndian.PutUint32(out, uint32(len(segments)))

	b := out[4:]
	for _, seg := range segments {
		if seg.Start < 0 || uint64(seg.Start) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, seg.Start)
		}

		binary.LittleEndian.PutUint32(b[0:4], uint32(seg.Start))
		binary.LittleEndian.PutUint64(b[4:12], math.Float64bits(seg.StartValue))
		binary.LittleEndian.PutUint64(b[12:20], math.Float64bits(seg.Slope))
		b = b[segmentSize:]
	}

	return out, nil
}

// Unmarshal decodes the layout written by Marshal.
func Unmarshal(data []byte) ([]Segment, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}

	n := binary.LittleEndian.Uint32(data)
	body := data[4:]
	if uint64(len(body)) != uint64(n)*segmentSize {
		return nil, fmt.Errorf("%w: %d segments in %d bytes", ErrTruncated, n, len(body))
	}

	segments := make([]Segment, n)
	for i := range segments {
		segments[i] = Segment{
			Start:      int(binary.LittleEndian.Uint32(body[0:4])),
			StartValue: math.Float64frombits(binary.LittleEndian.Uint64(body[4:12])),
			Slope:      math.Float64frombits(binary.LittleEndian.Uint64(body[12:20])),
		}
		body = body[segmentSize:]
	}

	return segments, nil
}
