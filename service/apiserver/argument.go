package apiserver

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
)

// Argument parses rpc arguments
type Argument struct {
	args []interface{}
}

// NewArgument returns a Argument
func NewArgument(args []interface{}) *Argument {
	arg := &Argument{
		args: args,
	}
	return arg
}

// Len returns length of arguments
func (arg *Argument) Len() int {
	return len(arg.args)
}

func (arg *Argument) value(index int) (interface{}, error) {
	if index < 0 || index >= len(arg.args) {
		return nil, errors.WithStack(ErrInvalidArgumentIndex)
	}
	a := arg.args[index]
	if a == nil {
		return nil, errors.WithStack(ErrInvalidArgumentType)
	}
	return a, nil
}

// Int returns a int value of the index
func (arg *Argument) Int(index int) (int, error) {
	a, err := arg.value(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(fmt.Sprintf("%v", a), 10, 32)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return int(n), nil
}

// Uint32 returns a uint32 value of the index
func (arg *Argument) Uint32(index int) (uint32, error) {
	a, err := arg.value(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(fmt.Sprintf("%v", a), 10, 32)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return uint32(n), nil
}

// Uint64 returns a uint64 value of the index
func (arg *Argument) Uint64(index int) (uint64, error) {
	a, err := arg.value(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(fmt.Sprintf("%v", a), 10, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return uint64(n), nil
}

// String returns a string value of the index
func (arg *Argument) String(index int) (string, error) {
	a, err := arg.value(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", a), nil
}

// Address returns an address value of the index
func (arg *Argument) Address(index int) (common.Address, error) {
	s, err := arg.String(index)
	if err != nil {
		return common.Address{}, err
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.WithStack(ErrInvalidArgumentType)
	}
	return common.HexToAddress(s), nil
}

// Amount returns an amount value of the index, parsed from the
// decimal point form
func (arg *Argument) Amount(index int) (*amount.Amount, error) {
	s, err := arg.String(index)
	if err != nil {
		return nil, err
	}
	am, err := amount.ParseAmount(s)
	if err != nil {
		return nil, err
	}
	return am, nil
}
