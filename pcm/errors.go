package pcm

import "errors"

var (
	ErrInvalidMode = errors.New("invalid channel mode")
)
