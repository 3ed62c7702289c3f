// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"encoding/binary"

	"github.com/go-audio/riff"
)

const (
	// HeaderSize is the length of a canonical header: RIFF header,
	// fmt chunk and data chunk header, with the payload following.
	HeaderSize = 44

	// FormatPCM is the fmt chunk format code for integer PCM.
	FormatPCM = 1

	fmtChunkSize = 16
)

// BuildHeader returns the canonical 44-byte header for an integer PCM
// stream. Byte rate, block alignment and the overall RIFF size are derived
// from the arguments. Inputs are assumed valid; BuildHeader has no error
// paths.
func BuildHeader(channels, sampleRate, bitsPerSample, dataSize int) []byte {
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(bitsPerSample/8)
	blockAlign := uint16(channels) * uint16(bitsPerSample/8)
	riffSize := uint32(36 + dataSize)

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], riff.RiffID[:])
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], riff.WavFormatID[:])

	// fmt chunk (24 bytes)
	copy(header[12:16], riff.FmtID[:])
	binary.LittleEndian.PutUint32(header[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], FormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitsPerSample))

	// data chunk header (8 bytes)
	copy(header[36:40], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	return header
}
