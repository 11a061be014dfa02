package types

import "errors"

// context errors
var (
	ErrInvalidClassID    = errors.New("invalid class id")
	ErrExistContractType = errors.New("exist contract type")
	ErrNotExistContract  = errors.New("not exist contract")
	ErrInvalidEventType  = errors.New("invalid event type")
)
