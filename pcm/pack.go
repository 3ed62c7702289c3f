// SPDX-License-Identifier: EPL-2.0

package pcm

// Pack encodes interleaved stereo samples as one 32-bit word per frame:
// the low 16 bits of left+right in the high half, the low 16 bits of
// left-right in the low half. Sums or differences outside int16 range wrap;
// the wrap is part of the wire format. A trailing sample without a partner
// is ignored.
func Pack(samples []int16) []uint32 {
	frames := len(samples) / 2
	words := make([]uint32, frames)

	for f := 0; f < frames; f++ {
		sum := int(samples[2*f]) + int(samples[2*f+1])
		diff := int(samples[2*f]) - int(samples[2*f+1])
		words[f] = uint32(uint16(sum))<<16 | uint32(uint16(diff))
	}

	return words
}

// Unpack decodes packed words back into interleaved stereo samples. The
// halves are reinterpreted as signed 16-bit sum and difference terms, then
// left = (sum+diff)/2 and right = (sum-diff)/2 with truncating division.
// The round trip Unpack(Pack(x)) == x holds whenever every frame of x kept
// both terms within int16 range.
func Unpack(words []uint32) []int16 {
	samples := make([]int16, 2*len(words))

	for i, w := range words {
		sum := int(int16(w >> 16))
		diff := int(int16(w & 0xFFFF))
		samples[2*i] = int16((sum + diff) / 2)
		samples[2*i+1] = int16((sum - diff) / 2)
	}

	return samples
}
