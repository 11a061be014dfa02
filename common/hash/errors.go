package hash

import (
	"errors"
)

// hash errors
var (
	ErrInvalidHashFormat = errors.New("invalid hash format")
	ErrInvalidHashSize   = errors.New("invalid hash size")
)
