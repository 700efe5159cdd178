// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	all := []error{
		ErrInvalidSampleRate,
		ErrInvalidChannels,
		ErrUnsupportedDepth,
		ErrPartialFrame,
		ErrOddByteCount,
	}

	for i, a := range all {
		if a == nil {
			t.Fatalf("error %d is nil", i)
		}
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("reading take: %w", ErrPartialFrame)
	if !errors.Is(wrapped, ErrPartialFrame) {
		t.Error("errors.Is() failed for wrapped ErrPartialFrame")
	}

	joined := errors.Join(ErrOddByteCount, errors.New("additional context"))
	if !errors.Is(joined, ErrOddByteCount) {
		t.Error("errors.Is() failed for joined ErrOddByteCount")
	}
}
