package bin

import (
	"errors"
)

// bin errors
var (
	ErrInvalidLength   = errors.New("invalid length")
	ErrInvalidTypeTag  = errors.New("invalid type tag")
	ErrInvalidArgCount = errors.New("invalid argument count")
)
