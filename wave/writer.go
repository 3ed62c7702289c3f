// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WritePCM writes a complete 16-bit integer PCM WAV stream. samples must be
// interleaved per frame when channels is 2.
// This uses an optimized implementation for minimal allocations.
func WritePCM(w io.Writer, channels, sampleRate int, samples []int16) error {
	header := BuildHeader(channels, sampleRate, 16, len(samples)*2)

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Convert samples to bytes in chunks so large payloads do not need a
	// full-size scratch buffer.
	const chunkSize = 8192
	bufSize := min(len(samples), chunkSize)
	buf := make([]byte, bufSize*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WritePacked writes a complete mono 32-bit WAV stream, one little-endian
// word per packed frame.
func WritePacked(w io.Writer, sampleRate int, words []uint32) error {
	header := BuildHeader(1, sampleRate, 32, len(words)*4)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(words) == 0 {
		return nil
	}

	const chunkSize = 4096
	bufSize := min(len(words), chunkSize)
	buf := make([]byte, bufSize*4)

	for i := 0; i < len(words); i += chunkSize {
		end := min(i+chunkSize, len(words))
		chunk := words[i:end]
		buf = buf[:len(chunk)*4]

		for j, v := range chunk {
			binary.LittleEndian.PutUint32(buf[j*4:j*4+4], v)
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
