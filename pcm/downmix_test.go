// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"slices"
	"testing"
)

func TestDownmix_Left(t *testing.T) {
	t.Parallel()

	samples := []int16{10, 20, 30, 40, 50, 60}
	mono, err := Downmix(samples, ModeLeft)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	want := []int16{10, 30, 50}
	if !slices.Equal(mono, want) {
		t.Errorf("Downmix(ModeLeft) = %v, want %v", mono, want)
	}
}

func TestDownmix_Right(t *testing.T) {
	t.Parallel()

	samples := []int16{10, 20, 30, 40, 50, 60}
	mono, err := Downmix(samples, ModeRight)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	want := []int16{20, 40, 60}
	if !slices.Equal(mono, want) {
		t.Errorf("Downmix(ModeRight) = %v, want %v", mono, want)
	}
}

func TestDownmix_Average(t *testing.T) {
	t.Parallel()

	// Frames (4,2), (-4,-2), (1,-1)
	samples := []int16{4, 2, -4, -2, 1, -1}
	mono, err := Downmix(samples, ModeAverage)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	want := []int16{3, -3, 0}
	if !slices.Equal(mono, want) {
		t.Errorf("Downmix(ModeAverage) = %v, want %v", mono, want)
	}
}

func TestDownmix_Difference(t *testing.T) {
	t.Parallel()

	samples := []int16{4, 2, -4, -2, 1, -1}
	mono, err := Downmix(samples, ModeDifference)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	want := []int16{1, -1, 1}
	if !slices.Equal(mono, want) {
		t.Errorf("Downmix(ModeDifference) = %v, want %v", mono, want)
	}
}

func TestDownmix_TruncatesTowardZero(t *testing.T) {
	t.Parallel()

	// Odd negative sums pin the division policy: -3/2 truncates to -1,
	// not -2.
	tests := []struct {
		name string
		l, r int16
		mode Mode
		want int16
	}{
		{"Average of -3 and 0", -3, 0, ModeAverage, -1},
		{"Average of 3 and 0", 3, 0, ModeAverage, 1},
		{"Average of -1 and -2", -1, -2, ModeAverage, -1},
		{"Difference of 0 and 3", 0, 3, ModeDifference, -1},
		{"Difference of 0 and -3", 0, -3, ModeDifference, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mono, err := Downmix([]int16{tt.l, tt.r}, tt.mode)
			if err != nil {
				t.Fatalf("Downmix() error = %v", err)
			}
			if mono[0] != tt.want {
				t.Errorf("Downmix((%d,%d), mode %d) = %d, want %d", tt.l, tt.r, tt.mode, mono[0], tt.want)
			}
		})
	}
}

func TestDownmix_ExtremeValues(t *testing.T) {
	t.Parallel()

	// Full-scale frames stay in range: the intermediate sum uses full
	// int precision before halving.
	samples := []int16{32767, 32767, -32768, -32768}
	mono, err := Downmix(samples, ModeAverage)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	want := []int16{32767, -32768}
	if !slices.Equal(mono, want) {
		t.Errorf("Downmix(ModeAverage) = %v, want %v", mono, want)
	}
}

func TestDownmix_InvalidMode(t *testing.T) {
	t.Parallel()

	_, err := Downmix([]int16{1, 2}, Mode(9))
	if !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Downmix() error = %v, want ErrInvalidMode", err)
	}
}

func TestDownmix_OddTrailingSample(t *testing.T) {
	t.Parallel()

	mono, err := Downmix([]int16{10, 20, 30}, ModeLeft)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	want := []int16{10}
	if !slices.Equal(mono, want) {
		t.Errorf("Downmix() = %v, want %v", mono, want)
	}
}

func TestDownmix_Empty(t *testing.T) {
	t.Parallel()

	mono, err := Downmix(nil, ModeAverage)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}
	if len(mono) != 0 {
		t.Errorf("Downmix(nil) length = %d, want 0", len(mono))
	}
}

// BenchmarkDownmix_Average benchmarks averaging one second of stereo
func BenchmarkDownmix_Average(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(i%4000 - 2000)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Downmix(samples, ModeAverage)
	}
}
