// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Info describes one parsed stream. Every field is populated by ParseInfo
// or the parse fails outright.
type Info struct {
	// AudioFormat is the fmt chunk format code (FormatPCM for integer PCM).
	AudioFormat uint16
	// NumChannels is 1 for mono, 2 for stereo.
	NumChannels uint16
	// SampleRate in Hz.
	SampleRate uint32
	// BitsPerSample is 16 or 32.
	BitsPerSample uint16
	// DataOffset is the byte offset of the payload within the stream.
	DataOffset int64
	// DataSize is the declared payload length in bytes.
	DataSize uint32
}

// ParseInfo scans a WAV stream from offset 0 and returns its Info.
//
// The RIFF and WAVE markers are validated, then chunks are scanned
// sequentially: fmt is decoded, data records the payload position, and any
// other chunk is skipped using its declared size. Scanning stops once no
// further 8-byte chunk header can be read. Byte rate and block alignment
// are derivable from the decoded fields and are trusted as-is.
func ParseInfo(r io.ReadSeeker) (Info, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}

	var outer [12]byte
	if _, err := io.ReadFull(r, outer[:]); err != nil {
		return Info{}, fmt.Errorf("%w: header shorter than 12 bytes", ErrNotWavFile)
	}
	if !bytes.Equal(outer[0:4], riff.RiffID[:]) {
		return Info{}, fmt.Errorf("%w: RIFF marker is %q", ErrNotWavFile, outer[0:4])
	}
	if !bytes.Equal(outer[8:12], riff.WavFormatID[:]) {
		return Info{}, fmt.Errorf("%w: WAVE marker is %q", ErrNotWavFile, outer[8:12])
	}

	var (
		info    Info
		sawFmt  bool
		sawData bool
		chunk   [8]byte
	)

	for {
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			// End of stream, or not enough bytes left for another
			// chunk header.
			break
		}

		var id [4]byte
		copy(id[:], chunk[0:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])

		switch id {
		case riff.FmtID:
			if size < fmtChunkSize {
				return Info{}, fmt.Errorf("%w: fmt chunk declares %d bytes", ErrShortChunk, size)
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return Info{}, fmt.Errorf("%w: fmt chunk body", ErrShortChunk)
			}
			info.AudioFormat = binary.LittleEndian.Uint16(body[0:2])
			info.NumChannels = binary.LittleEndian.Uint16(body[2:4])
			info.SampleRate = binary.LittleEndian.Uint32(body[4:8])
			// body[8:14] holds byte rate and block alignment
			info.BitsPerSample = binary.LittleEndian.Uint16(body[14:16])
			sawFmt = true
		case riff.DataFormatID:
			pos, err := r.Seek(0, io.SeekCurrent)
			if err != nil {
				return Info{}, fmt.Errorf("%w", err)
			}
			info.DataOffset = pos
			info.DataSize = size
			sawData = true
			if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return Info{}, fmt.Errorf("%w", err)
			}
		default:
			// Unknown chunks are forward-compatible; skip exactly
			// their declared size.
			if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return Info{}, fmt.Errorf("%w", err)
			}
		}
	}

	if !sawFmt {
		return Info{}, ErrNoFmtChunk
	}
	if !sawData {
		return Info{}, ErrNoDataChunk
	}
	if info.AudioFormat != FormatPCM {
		return Info{}, fmt.Errorf("%w: format code %d", ErrNotPCM, info.AudioFormat)
	}
	if info.BitsPerSample != 16 && info.BitsPerSample != 32 {
		return Info{}, fmt.Errorf("%w: %d", ErrBitDepth, info.BitsPerSample)
	}

	return info, nil
}

// ReadData seeks to the payload and reads exactly DataSize bytes.
func (i Info) ReadData(r io.ReadSeeker) ([]byte, error) {
	if _, err := r.Seek(i.DataOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	data := make([]byte, i.DataSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: data chunk declares %d bytes", ErrShortChunk, i.DataSize)
	}
	return data, nil
}
