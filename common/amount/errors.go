package amount

import (
	"errors"
)

// amount errors
var (
	ErrInvalidAmountFormat = errors.New("invalid amount format")
)
