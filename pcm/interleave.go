// SPDX-License-Identifier: EPL-2.0

package pcm

// Interleave merges two mono sample sequences into one stereo buffer,
// frame by frame (left, right, left, right, ...). Inputs of unequal length
// are truncated to the shorter one.
func Interleave(left, right []int16) []int16 {
	frames := min(len(left), len(right))
	stereo := make([]int16, 2*frames)

	for f := 0; f < frames; f++ {
		stereo[2*f] = left[f]
		stereo[2*f+1] = right[f]
	}

	return stereo
}
