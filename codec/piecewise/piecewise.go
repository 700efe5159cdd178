// SPDX-License-Identifier: EPL-2.0

// Package piecewise describes a sample sequence as a list of point-slope
// segments.
//
// Compress walks the input in flat runs of identical values. Each run that
// is followed by a different value yields one Segment whose slope reaches
// that value at the first differing sample. A run that extends to the end of
// the input is not followed by anything and produces no segment, so the tail
// is dropped from the encoding. CompressKeepTail is the opt-in variant that
// keeps it.
//
// Decompress writes each segment's ramp from its start to the end of the
// output, in order, so later segments overwrite earlier ones from their own
// start onward. For segments sorted by start, every position ends up with
// the ramp of the last segment starting at or before it.
package piecewise

// Segment is an affine ramp: sample Start+i has value StartValue + Slope*i.
type Segment struct {
	Start      int
	StartValue float64
	Slope      float64
}

// At returns the segment's value at absolute index i.
func (s Segment) At(i int) float64 {
	return s.StartValue + s.Slope*float64(i-s.Start)
}

// Compress segments samples. A trailing run reaching the end of samples is
// dropped.
func Compress(samples []float64) []Segment {
	segments, _ := scan(samples)
	return segments
}

// CompressKeepTail is Compress plus one flat segment (slope 0) for the
// trailing run, so Decompress reproduces the tail value.
func CompressKeepTail(samples []float64) []Segment {
	segments, tail := scan(samples)
	if tail < len(samples) {
		segments = append(segments, Segment{Start: tail, StartValue: samples[tail]})
	}

	return segments
}

// scan returns the segments and the start of the unterminated trailing run
// (len(samples) when there is none).
func scan(samples []float64) ([]Segment, int) {
	var segments []Segment

	start := 0
	for start < len(samples) {
		end := start + 1
		for end < len(samples) && samples[end] == samples[start] {
			end++
		}

		if end >= len(samples) {
			return segments, start
		}

		segments = append(segments, Segment{
			Start:      start,
			StartValue: samples[start],
			Slope:      (samples[end] - samples[start]) / float64(end-start),
		})
		start = end
	}

	return segments, len(samples)
}

// Decompress renders segments into a buffer of total samples. The result is
// the same as applying the segments in the given order, each writing its ramp
// from Start to the end of the buffer: position p holds the ramp of the last
// segment in the slice whose Start is <= p. Segments starting outside
// [0, total) are skipped and positions not covered by any segment are zero.
func Decompress(segments []Segment, total int) []float64 {
	if total < 0 {
		total = 0
	}
	out := make([]float64, total)

	// owner[p] is 1 + the index of the segment that last writes p.
	owner := make([]int, total)
	for k, seg := range segments {
		if seg.Start < 0 || seg.Start >= total {
			continue
		}
		owner[seg.Start] = max(owner[seg.Start], k+1)
	}

	for p := range total {
		if p > 0 {
			owner[p] = max(owner[p], owner[p-1])
		}
		if owner[p] == 0 {
			continue
		}

		out[p] = segments[owner[p]-1].At(p)
	}

	return out
}
