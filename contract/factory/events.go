package factory

import (
	"github.com/pkg/errors"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/common/bin"
	"github.com/launchlabs/launchpad/core/types"
)

type LaunchCreatedEvent struct {
	Token     common.Address
	Curve     common.Address
	Creator   common.Address
	Name      string
	Symbol    string
	BasePrice *amount.Amount
}

func (s *LaunchCreatedEvent) Bytes() []byte {
	return bin.TypeWriteAll(s.Token, s.Curve, s.Creator, s.Name, s.Symbol, s.BasePrice)
}

func ParseLaunchCreatedEvent(bs []byte) (*LaunchCreatedEvent, error) {
	is, err := bin.TypeReadAll(bs, 6)
	if err != nil {
		return nil, err
	}
	ev := &LaunchCreatedEvent{}
	var ok bool
	if ev.Token, ok = is[0].(common.Address); !ok {
		return nil, errors.New("Factory: INVALID_EVENT_TOKEN")
	}
	if ev.Curve, ok = is[1].(common.Address); !ok {
		return nil, errors.New("Factory: INVALID_EVENT_CURVE")
	}
	if ev.Creator, ok = is[2].(common.Address); !ok {
		return nil, errors.New("Factory: INVALID_EVENT_CREATOR")
	}
	if ev.Name, ok = is[3].(string); !ok {
		return nil, errors.New("Factory: INVALID_EVENT_NAME")
	}
	if ev.Symbol, ok = is[4].(string); !ok {
		return nil, errors.New("Factory: INVALID_EVENT_SYMBOL")
	}
	if ev.BasePrice, ok = is[5].(*amount.Amount); !ok {
		return nil, errors.New("Factory: INVALID_EVENT_BASE_PRICE")
	}
	return ev, nil
}

func emitLaunchCreated(cc *types.ContractContext, ev *LaunchCreatedEvent) {
	cc.EmitEvent(types.EventTagLaunchCreated, ev.Bytes())
}
