// SPDX-License-Identifier: EPL-2.0

package stereowav

import (
	"fmt"
	"io"

	"github.com/ik5/stereowav/pcm"
	"github.com/ik5/stereowav/wave"
)

// StereoToMono reads a stereo 16-bit WAV stream from src and writes a mono
// 16-bit WAV stream to dst, one sample per frame according to mode.
func StereoToMono(dst io.Writer, src io.ReadSeeker, mode pcm.Mode) error {
	info, err := wave.ParseInfo(src)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	if info.NumChannels != 2 {
		return fmt.Errorf("%w: %d channel(s)", ErrNotStereo, info.NumChannels)
	}

	data, err := info.ReadData(src)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	mono, err := pcm.Downmix(pcm.DecodeInt16(data), mode)
	if err != nil {
		return err
	}

	return wave.WritePCM(dst, 1, int(info.SampleRate), mono)
}

// MergeMono interleaves two mono 16-bit WAV streams into one stereo stream
// written to dst. The output sample rate is taken from the left input.
// Inputs of unequal length are truncated to the shorter one.
func MergeMono(dst io.Writer, left, right io.ReadSeeker) error {
	leftInfo, leftSamples, err := readMono(left)
	if err != nil {
		return fmt.Errorf("left input: %w", err)
	}
	_, rightSamples, err := readMono(right)
	if err != nil {
		return fmt.Errorf("right input: %w", err)
	}

	stereo := pcm.Interleave(leftSamples, rightSamples)

	return wave.WritePCM(dst, 2, int(leftInfo.SampleRate), stereo)
}

// PackStereo reads a stereo 16-bit WAV stream from src and writes a mono
// 32-bit WAV stream to dst, one sum/difference word per frame.
func PackStereo(dst io.Writer, src io.ReadSeeker) error {
	info, err := wave.ParseInfo(src)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	if info.NumChannels != 2 {
		return fmt.Errorf("%w: %d channel(s)", ErrNotStereo, info.NumChannels)
	}

	data, err := info.ReadData(src)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	words := pcm.Pack(pcm.DecodeInt16(data))

	return wave.WritePacked(dst, int(info.SampleRate), words)
}

// UnpackStereo reads a mono 32-bit packed WAV stream from src and writes
// the reconstructed stereo 16-bit WAV stream to dst.
func UnpackStereo(dst io.Writer, src io.ReadSeeker) error {
	info, err := wave.ParseInfo(src)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	if info.BitsPerSample != 32 {
		return fmt.Errorf("%w: %d bits per sample", ErrNotPacked, info.BitsPerSample)
	}

	data, err := info.ReadData(src)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	samples := pcm.Unpack(pcm.DecodeUint32(data))

	return wave.WritePCM(dst, 2, int(info.SampleRate), samples)
}

func readMono(src io.ReadSeeker) (wave.Info, []int16, error) {
	info, err := wave.ParseInfo(src)
	if err != nil {
		return wave.Info{}, nil, err
	}
	if info.NumChannels != 1 {
		return wave.Info{}, nil, fmt.Errorf("%w: %d channels", ErrNotMono, info.NumChannels)
	}
	data, err := info.ReadData(src)
	if err != nil {
		return wave.Info{}, nil, err
	}
	return info, pcm.DecodeInt16(data), nil
}
