// SPDX-License-Identifier: EPL-2.0

// Package stereowav converts between stereo and mono 16-bit PCM WAV
// streams, and packs stereo into a reversible 32-bit sum/difference
// encoding.
//
// # Operations
//
// The package exposes four stream-level operations. Each parses a source
// WAV stream, validates it, transforms the samples and writes a complete
// WAV stream to the destination:
//
//	// Reduce stereo to mono (left, right, average or difference)
//	err := stereowav.StereoToMono(out, in, pcm.ModeAverage)
//
//	// Interleave two mono streams into one stereo stream
//	err := stereowav.MergeMono(out, left, right)
//
//	// Encode stereo as mono-width 32-bit sum/difference words
//	err := stereowav.PackStereo(out, in)
//
//	// Reconstruct the stereo stream from a packed one
//	err := stereowav.UnpackStereo(out, in)
//
// All operations are synchronous and stateless; callers own the streams and
// are responsible for opening and closing them. Nothing is written to the
// destination until the source has been fully validated and decoded.
//
// # Sum/Difference Packing
//
// PackStereo stores left+right in the high half of each word and left-right
// in the low half. UnpackStereo reverses it exactly whenever both terms fit
// in 16 bits, which holds for samples within roughly ±16383. Louder frames
// wrap and do not round-trip; the wrap is part of the wire format.
//
// # Ecosystem Bridge
//
// Decode and PCMBuffer expose parsed streams as go-audio IntBuffers so the
// results plug into any github.com/go-audio consumer.
//
// # Error Handling
//
// Channel and depth mismatches are reported through sentinel errors
// (ErrNotStereo, ErrNotMono, ErrNotPacked); container-level failures come
// from the wave package, mode selection failures from the pcm package.
// All are matchable with errors.Is and carry the offending value.
//
// See the wave and pcm subpackages for the container codec and the
// sample-level transforms.
package stereowav
