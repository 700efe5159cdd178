// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"strings"
)

// MaxDiffs is the number of differing bytes Diff reports.
const MaxDiffs = 20

// ByteDiff is one position where two byte slices disagree.
type ByteDiff struct {
	Offset int
	Want   byte
	Got    byte
}

// Difference summarizes how got deviates from want.
type Difference struct {
	Bytes []ByteDiff

	// More is set when further differing bytes exist beyond MaxDiffs.
	More bool

	// WantLen and GotLen are the full lengths of the compared slices.
	WantLen int
	GotLen  int
}

// Equal reports whether no difference was found.
func (d Difference) Equal() bool {
	return len(d.Bytes) == 0 && d.WantLen == d.GotLen
}

// Diff compares want and got over their common length, recording at most
// MaxDiffs differing bytes.
func Diff(want, got []byte) Difference {
	d := Difference{WantLen: len(want), GotLen: len(got)}

	n := min(len(want), len(got))
	for i := range n {
		if want[i] == got[i] {
			continue
		}
		if len(d.Bytes) == MaxDiffs {
			d.More = true
			break
		}
		d.Bytes = append(d.Bytes, ByteDiff{Offset: i, Want: want[i], Got: got[i]})
	}

	return d
}

func (d Difference) String() string {
	var sb strings.Builder

	for _, b := range d.Bytes {
		fmt.Fprintf(&sb, "byte %d: original = %02X, copy = %02X\n", b.Offset, b.Want, b.Got)
	}
	if d.More {
		fmt.Fprintf(&sb, "more differences follow, limit of %d shown\n", MaxDiffs)
	}

	switch common := min(d.WantLen, d.GotLen); {
	case d.WantLen > common:
		fmt.Fprintf(&sb, "original has extra bytes starting from byte %d\n", common)
	case d.GotLen > common:
		fmt.Fprintf(&sb, "copy has extra bytes starting from byte %d\n", common)
	}

	return sb.String()
}
