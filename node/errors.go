package node

import (
	"errors"
)

// errors
var (
	ErrDirtyContext     = errors.New("context snapshot stack is not committed")
	ErrNotExistLaunch   = errors.New("not exist launch")
	ErrNotExistContract = errors.New("not exist contract")
)
