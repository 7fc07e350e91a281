package encoding

import "errors"

var (
	ErrInvalidInput = errors.New("input should be a binary string, for example \"101010\"")
	ErrUnknownMode  = errors.New("unknown sizing mode")
)
