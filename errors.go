package stereowav

import "errors"

var (
	ErrNotStereo = errors.New("input is not stereo")
	ErrNotMono   = errors.New("input is not mono")
	ErrNotPacked = errors.New("input is not a 32-bit packed stream")
)
