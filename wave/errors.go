package wave

import "errors"

var (
	ErrNotWavFile  = errors.New("not a WAV file")
	ErrNotPCM      = errors.New("not integer PCM")
	ErrBitDepth    = errors.New("unsupported bits per sample")
	ErrNoFmtChunk  = errors.New("missing fmt chunk")
	ErrNoDataChunk = errors.New("missing data chunk")
	ErrShortChunk  = errors.New("truncated chunk")
)
