package pcm

import "encoding/binary"

// DecodeInt16 reads little-endian 16-bit samples from raw payload bytes.
// A trailing byte that does not fill a sample is ignored.
func DecodeInt16(data []byte) []int16 {
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[2*i : 2*i+2]))
	}
	return samples
}

// EncodeInt16 writes samples as little-endian 16-bit payload bytes.
func EncodeInt16(samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:2*i+2], uint16(s))
	}
	return data
}

// DecodeUint32 reads little-endian 32-bit words from raw payload bytes.
// Trailing bytes that do not fill a word are ignored.
func DecodeUint32(data []byte) []uint32 {
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[4*i : 4*i+4])
	}
	return words
}

// EncodeUint32 writes words as little-endian 32-bit payload bytes.
func EncodeUint32(words []uint32) []byte {
	data := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[4*i:4*i+4], w)
	}
	return data
}
