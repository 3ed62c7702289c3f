package wave

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrNotPCM", ErrNotPCM, "not integer PCM"},
		{"ErrBitDepth", ErrBitDepth, "unsupported bits per sample"},
		{"ErrNoFmtChunk", ErrNoFmtChunk, "missing fmt chunk"},
		{"ErrNoDataChunk", ErrNoDataChunk, "missing data chunk"},
		{"ErrShortChunk", ErrShortChunk, "truncated chunk"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatalf("%s is nil", tt.name)
			}
			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_IsComparison(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotWavFile", ErrNotWavFile},
		{"ErrNotPCM", ErrNotPCM},
		{"ErrBitDepth", ErrBitDepth},
		{"ErrNoFmtChunk", ErrNoFmtChunk},
		{"ErrNoDataChunk", ErrNoDataChunk},
		{"ErrShortChunk", ErrShortChunk},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !errors.Is(tt.err, tt.err) {
				t.Errorf("errors.Is(%s, %s) = false, want true", tt.name, tt.name)
			}

			otherErr := errors.New("some other error")
			if errors.Is(otherErr, tt.err) {
				t.Errorf("errors.Is(otherErr, %s) = true, want false", tt.name)
			}
		})
	}
}

func TestErrors_WrappingKeepsIdentity(t *testing.T) {
	t.Parallel()

	// ParseInfo reports failures as wrapped sentinels carrying detail.
	wrapped := fmt.Errorf("%w: RIFF marker is %q", ErrNotWavFile, "JUNK")
	if !errors.Is(wrapped, ErrNotWavFile) {
		t.Error("errors.Is(wrapped, ErrNotWavFile) = false, want true")
	}
	if errors.Is(wrapped, ErrNotPCM) {
		t.Error("errors.Is(wrapped, ErrNotPCM) = true, want false")
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	allErrors := []error{
		ErrNotWavFile,
		ErrNotPCM,
		ErrBitDepth,
		ErrNoFmtChunk,
		ErrNoDataChunk,
		ErrShortChunk,
	}

	for i := range allErrors {
		for j := range allErrors {
			if i != j && allErrors[i] == allErrors[j] {
				t.Errorf("errors[%d] and errors[%d] are the same instance", i, j)
			}
		}
	}
}
