// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds WAV byte streams for tests.
//
// The builders write the container layout by hand (without importing the
// wave package) so tests exercise the real codecs against independently
// constructed bytes.
package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAV16 returns a complete canonical WAV stream holding 16-bit integer PCM
// samples, interleaved per frame when channels is 2.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)
	writeHeader(buf, sampleRate, channels, 16, uint32(len(samples)*2))
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

// WAV32 returns a complete canonical WAV stream holding mono 32-bit words.
func WAV32(sampleRate int, words []uint32) []byte {
	buf := new(bytes.Buffer)
	writeHeader(buf, sampleRate, 1, 32, uint32(len(words)*4))
	for _, w := range words {
		binary.Write(buf, binary.LittleEndian, w)
	}
	return buf.Bytes()
}

// InsertChunk returns a copy of wavData with an extra (tag, size, body)
// chunk inserted right after the 12-byte RIFF header, before the fmt chunk.
// The overall RIFF size is adjusted. tag must be 4 bytes.
func InsertChunk(wavData []byte, tag string, body []byte) []byte {
	out := make([]byte, 0, len(wavData)+8+len(body))
	out = append(out, wavData[:12]...)
	out = append(out, tag[:4]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	out = append(out, body...)
	out = append(out, wavData[12:]...)

	riffSize := binary.LittleEndian.Uint32(wavData[4:8]) + 8 + uint32(len(body))
	binary.LittleEndian.PutUint32(out[4:8], riffSize)

	return out
}

// StereoFrames returns n interleaved (left, right) frames with a
// deterministic pattern kept inside the sum/difference safe range, so the
// packed encoding round-trips exactly.
func StereoFrames(n int) []int16 {
	samples := make([]int16, 2*n)
	for f := 0; f < n; f++ {
		samples[2*f] = int16(f%16000 - 8000)
		samples[2*f+1] = int16((f*7)%16000 - 8000)
	}
	return samples
}

func writeHeader(buf *bytes.Buffer, sampleRate, channels, bits int, dataSize uint32) {
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(bits/8)
	blockAlign := uint16(channels) * uint16(bits/8)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bits))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
}
