// SPDX-License-Identifier: EPL-2.0

package stereowav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/stereowav/pcm"
	"github.com/ik5/stereowav/wave"
)

// PCMBuffer wraps decoded 16-bit samples in a go-audio buffer so results
// can feed any go-audio consumer.
func PCMBuffer(info wave.Info, samples []int16) *goaudio.IntBuffer {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(info.NumChannels),
			SampleRate:  int(info.SampleRate),
		},
		SourceBitDepth: int(info.BitsPerSample),
		Data:           data,
	}
}

// Decode parses a 16-bit integer PCM WAV stream into a go-audio buffer.
func Decode(src io.ReadSeeker) (*goaudio.IntBuffer, error) {
	info, err := wave.ParseInfo(src)
	if err != nil {
		return nil, err
	}
	if info.BitsPerSample != 16 {
		return nil, fmt.Errorf("%w: %d, expected 16", wave.ErrBitDepth, info.BitsPerSample)
	}

	data, err := info.ReadData(src)
	if err != nil {
		return nil, err
	}

	return PCMBuffer(info, pcm.DecodeInt16(data)), nil
}
