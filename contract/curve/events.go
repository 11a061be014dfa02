package curve

import (
	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/common/bin"
	"github.com/launchlabs/launchpad/core/types"
	"github.com/pkg/errors"
)

// TradeEvent reports an executed buy or sell
type TradeEvent struct {
	Trade   uint8
	Curve   common.Address
	Trader  common.Address
	Units   *amount.Amount
	Reserve *amount.Amount
	Fee     *amount.Amount
}

func (s *TradeEvent) Bytes() []byte {
	return bin.TypeWriteAll(s.Trade, s.Curve, s.Trader, s.Units, s.Reserve, s.Fee)
}

func ParseTradeEvent(bs []byte) (*TradeEvent, error) {
	is, err := bin.TypeReadAll(bs, 6)
	if err != nil {
		return nil, err
	}
	ev := &TradeEvent{}
	var ok bool
	if v, has := is[0].(uint8); has {
		ev.Trade = v
	} else {
		return nil, errors.New("trade is not uint8")
	}
	if ev.Curve, ok = is[1].(common.Address); !ok {
		return nil, errors.New("curve is not address")
	}
	if ev.Trader, ok = is[2].(common.Address); !ok {
		return nil, errors.New("trader is not address")
	}
	if ev.Units, ok = is[3].(*amount.Amount); !ok {
		return nil, errors.New("units is not amount")
	}
	if ev.Reserve, ok = is[4].(*amount.Amount); !ok {
		return nil, errors.New("reserve is not amount")
	}
	if ev.Fee, ok = is[5].(*amount.Amount); !ok {
		return nil, errors.New("fee is not amount")
	}
	return ev, nil
}

// CapViolationEvent is the diagnostic record emitted right before a
// purchase cap abort. It survives the revert of the trade itself.
type CapViolationEvent struct {
	Curve     common.Address
	Trader    common.Address
	Attempted *amount.Amount
	Cap       *amount.Amount
}

func (s *CapViolationEvent) Bytes() []byte {
	return bin.TypeWriteAll(s.Curve, s.Trader, s.Attempted, s.Cap)
}

func ParseCapViolationEvent(bs []byte) (*CapViolationEvent, error) {
	is, err := bin.TypeReadAll(bs, 4)
	if err != nil {
		return nil, err
	}
	ev := &CapViolationEvent{}
	var ok bool
	if ev.Curve, ok = is[0].(common.Address); !ok {
		return nil, errors.New("curve is not address")
	}
	if ev.Trader, ok = is[1].(common.Address); !ok {
		return nil, errors.New("trader is not address")
	}
	if ev.Attempted, ok = is[2].(*amount.Amount); !ok {
		return nil, errors.New("attempted is not amount")
	}
	if ev.Cap, ok = is[3].(*amount.Amount); !ok {
		return nil, errors.New("cap is not amount")
	}
	return ev, nil
}

// GraduationEvent reports the final totals of a completed graduation
type GraduationEvent struct {
	Curve       common.Address
	Token       common.Address
	Raised      *amount.Amount
	Liquidity   *amount.Amount
	Creator     *amount.Amount
	Treasury    *amount.Amount
	UnitsSold   *amount.Amount
	UnitsToPool *amount.Amount
}

func (s *GraduationEvent) Bytes() []byte {
	return bin.TypeWriteAll(s.Curve, s.Token, s.Raised, s.Liquidity, s.Creator, s.Treasury, s.UnitsSold, s.UnitsToPool)
}

func ParseGraduationEvent(bs []byte) (*GraduationEvent, error) {
	is, err := bin.TypeReadAll(bs, 8)
	if err != nil {
		return nil, err
	}
	ev := &GraduationEvent{}
	var ok bool
	if ev.Curve, ok = is[0].(common.Address); !ok {
		return nil, errors.New("curve is not address")
	}
	if ev.Token, ok = is[1].(common.Address); !ok {
		return nil, errors.New("token is not address")
	}
	if ev.Raised, ok = is[2].(*amount.Amount); !ok {
		return nil, errors.New("raised is not amount")
	}
	if ev.Liquidity, ok = is[3].(*amount.Amount); !ok {
		return nil, errors.New("liquidity is not amount")
	}
	if ev.Creator, ok = is[4].(*amount.Amount); !ok {
		return nil, errors.New("creator is not amount")
	}
	if ev.Treasury, ok = is[5].(*amount.Amount); !ok {
		return nil, errors.New("treasury is not amount")
	}
	if ev.UnitsSold, ok = is[6].(*amount.Amount); !ok {
		return nil, errors.New("units sold is not amount")
	}
	if ev.UnitsToPool, ok = is[7].(*amount.Amount); !ok {
		return nil, errors.New("units to pool is not amount")
	}
	return ev, nil
}

func emitTrade(cc *types.ContractContext, ev *TradeEvent) {
	cc.EmitEvent(types.EventTagTrade, ev.Bytes())
}

func emitCapViolation(cc *types.ContractContext, ev *CapViolationEvent) {
	cc.EmitEvent(types.EventTagCapViolation, ev.Bytes())
}

func emitGraduation(cc *types.ContractContext, ev *GraduationEvent) {
	cc.EmitEvent(types.EventTagGraduation, ev.Bytes())
}
