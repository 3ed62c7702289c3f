// SPDX-License-Identifier: EPL-2.0

package pcm

import "fmt"

// Mode selects how a stereo frame is reduced to one mono sample.
type Mode int

const (
	// ModeLeft keeps the left channel.
	ModeLeft Mode = iota
	// ModeRight keeps the right channel.
	ModeRight
	// ModeAverage emits (left+right)/2.
	ModeAverage
	// ModeDifference emits (left-right)/2.
	ModeDifference
)

// Downmix reduces interleaved stereo samples to mono, one output sample per
// (left, right) frame. The averaging modes divide with Go's truncating
// integer division, rounding toward zero for negative operands. A trailing
// sample without a partner is ignored.
func Downmix(samples []int16, mode Mode) ([]int16, error) {
	frames := len(samples) / 2
	mono := make([]int16, frames)

	switch mode {
	case ModeLeft:
		for f := 0; f < frames; f++ {
			mono[f] = samples[2*f]
		}
	case ModeRight:
		for f := 0; f < frames; f++ {
			mono[f] = samples[2*f+1]
		}
	case ModeAverage:
		for f := 0; f < frames; f++ {
			mono[f] = int16((int(samples[2*f]) + int(samples[2*f+1])) / 2)
		}
	case ModeDifference:
		for f := 0; f < frames; f++ {
			mono[f] = int16((int(samples[2*f]) - int(samples[2*f+1])) / 2)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, mode)
	}

	return mono, nil
}
