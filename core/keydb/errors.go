package keydb

import (
	"errors"
)

// keydb errors
var (
	ErrDatabaseClosed = errors.New("database closed")
	ErrNotFound       = errors.New("not found")
)
