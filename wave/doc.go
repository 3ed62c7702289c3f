// SPDX-License-Identifier: EPL-2.0

// Package wave implements the chunked WAV container used by stereowav.
//
// The package reads and writes canonical little-endian RIFF/WAVE streams
// holding integer PCM payloads (16 or 32 bits per sample, mono or stereo).
//
// # Parsing
//
// ParseInfo scans a stream and returns an Info record describing it:
//
//	info, err := wave.ParseInfo(file)
//	if err != nil {
//	    // Handle error
//	}
//	data, err := info.ReadData(file)
//
// The scanner validates the RIFF and WAVE markers, decodes the fmt chunk,
// records where the data chunk's payload starts, and skips any other chunk
// using its declared size. Unknown chunks are forward-compatible: metadata
// chunks inserted between fmt and data do not break parsing.
//
// # Writing
//
// BuildHeader produces the fixed 44-byte canonical header. WritePCM and
// WritePacked emit a complete stream (header plus payload):
//
//	err := wave.WritePCM(out, 1, 8000, samples) // mono 16-bit
//	err := wave.WritePacked(out, 8000, words)   // mono 32-bit
//
// # Error Handling
//
// Parse failures are reported through sentinel errors, each naming the
// expectation that was not met:
//   - ErrNotWavFile: RIFF or WAVE marker mismatch
//   - ErrNotPCM: format code other than integer PCM
//   - ErrBitDepth: bits per sample outside {16, 32}
//   - ErrNoFmtChunk, ErrNoDataChunk: a required chunk never appeared
//   - ErrShortChunk: a chunk body ended before its declared size
//
// Errors carry detail via wrapping; match them with errors.Is.
//
// # File Format
//
// A canonical stream consists of:
//   - RIFF header (12 bytes): "RIFF", overall size, "WAVE"
//   - fmt chunk (24 bytes): format code, channels, sample rate, byte rate,
//     block alignment, bits per sample
//   - data chunk: declared size followed by raw interleaved samples
//
// Byte rate and block alignment are derivable from the other fields; they
// are written correctly but trusted as-is on read.
package wave
