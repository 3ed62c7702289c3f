// SPDX-License-Identifier: EPL-2.0

// Package pcm implements sample-level transforms over interleaved 16-bit
// integer PCM.
//
// All functions are pure: they take a sample slice, return a new slice, and
// never mutate their input. Stereo buffers are interleaved per frame
// (left, right, left, right, ...).
//
// # Channel Mixdown
//
// Downmix reduces a stereo buffer to mono, one output sample per frame:
//
//	mono, err := pcm.Downmix(samples, pcm.ModeAverage)
//
// ModeLeft and ModeRight select one channel; ModeAverage and ModeDifference
// halve the frame's sum or difference using truncating (toward zero)
// integer division.
//
// # Interleaving
//
// Interleave merges two mono sequences into one stereo buffer:
//
//	stereo := pcm.Interleave(left, right)
//
// Inputs of unequal length are truncated to the shorter one.
//
// # Sum/Difference Packing
//
// Pack encodes each stereo frame into a single 32-bit word: the low 16 bits
// of left+right in the high half, the low 16 bits of left-right in the low
// half. Unpack reverses it. The round trip is exact whenever every frame's
// sum and difference fit in int16 (guaranteed for samples within roughly
// ±16383); outside that range the sum or difference wraps and the encoding
// is lossy. The wrap is part of the wire format and is not corrected.
//
// # Byte Codecs
//
// DecodeInt16/EncodeInt16 and DecodeUint32/EncodeUint32 convert between raw
// little-endian payload bytes and sample slices. Trailing bytes that do not
// fill a whole sample are ignored.
package pcm
