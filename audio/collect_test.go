// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audpack/internal/audiotest"
)

func TestCollect_Constant(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 2, 1000, 0.5)

	clip, err := Collect(src, 256)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if clip.SampleRate != 16000 || clip.Channels != 2 || clip.BitDepth != BitDepth16 {
		t.Errorf("Collect() format = %d Hz %d ch %d bit", clip.SampleRate, clip.Channels, clip.BitDepth)
	}
	if len(clip.Samples) != 2000 {
		t.Fatalf("Collect() returned %d samples, want 2000", len(clip.Samples))
	}

	for i, s := range clip.Samples {
		if math.Abs(float64(s)-16383) > 1 {
			t.Fatalf("sample %d = %d, want ~16383", i, s)
		}
	}

	if err := clip.Validate(); err != nil {
		t.Errorf("collected clip does not validate: %v", err)
	}
}

func TestCollect_DefaultBufferSize(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 1, 10000, 440)

	clip, err := Collect(src, 0)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if clip.Frames() != 10000 {
		t.Errorf("Frames() = %d, want 10000", clip.Frames())
	}
}

func TestCollect_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("device unplugged")
	src := audiotest.NewConstantSource(8000, 1, 10, 0)
	src.Err = boom

	if _, err := Collect(src, 4); !errors.Is(err, boom) {
		t.Errorf("Collect() error = %v, want %v", err, boom)
	}
}

func TestCollect_DoesNotClose(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 10, 0)
	if _, err := Collect(src, 4); err != nil {
		t.Fatal(err)
	}
	if src.Closed() {
		t.Error("Collect() closed the source")
	}
}
