package node

import (
	"github.com/launchlabs/launchpad/service/apiserver"
)

// SetupAPI binds the launch methods onto the api server
func (n *Node) SetupAPI(as *apiserver.APIServer) error {
	s, err := as.JRPC("launch")
	if err != nil {
		return err
	}

	s.Set("addresses", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return map[string]interface{}{
			"factory":  n.FactoryAddress(),
			"treasury": n.TreasuryAddress(),
			"reserve":  n.ReserveAddress(),
		}, nil
	})
	s.Set("height", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return n.Height(), nil
	})

	s.Set("createLaunch", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		creator, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		name, err := arg.String(1)
		if err != nil {
			return nil, err
		}
		symbol, err := arg.String(2)
		if err != nil {
			return nil, err
		}
		basePrice, err := arg.Amount(3)
		if err != nil {
			return nil, err
		}
		tokenAddr, curveAddr, err := n.CreateLaunch(creator, name, symbol, basePrice)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"token": tokenAddr,
			"curve": curveAddr,
		}, nil
	})

	s.Set("buy", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		trader, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		curveAddr, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		reserveIn, err := arg.Amount(2)
		if err != nil {
			return nil, err
		}
		out, err := n.Buy(trader, curveAddr, reserveIn)
		if err != nil {
			return nil, err
		}
		return out.String(), nil
	})

	s.Set("sell", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		trader, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		curveAddr, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		unitsIn, err := arg.Amount(2)
		if err != nil {
			return nil, err
		}
		out, err := n.Sell(trader, curveAddr, unitsIn)
		if err != nil {
			return nil, err
		}
		return out.String(), nil
	})

	s.Set("approve", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		from, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		tokenAddr, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		spender, err := arg.Address(2)
		if err != nil {
			return nil, err
		}
		am, err := arg.Amount(3)
		if err != nil {
			return nil, err
		}
		return nil, n.Approve(from, tokenAddr, spender, am)
	})

	s.Set("transfer", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		from, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		tokenAddr, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		to, err := arg.Address(2)
		if err != nil {
			return nil, err
		}
		am, err := arg.Amount(3)
		if err != nil {
			return nil, err
		}
		return nil, n.Transfer(from, tokenAddr, to, am)
	})

	s.Set("info", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		curveAddr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return n.CurveInfo(curveAddr)
	})

	s.Set("launchCount", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return n.LaunchCount()
	})

	s.Set("launchAt", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		index, err := arg.Uint32(0)
		if err != nil {
			return nil, err
		}
		tokenAddr, curveAddr, err := n.LaunchAt(index)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"token": tokenAddr,
			"curve": curveAddr,
		}, nil
	})

	s.Set("curveOf", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		tokenAddr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return n.CurveOf(tokenAddr)
	})

	s.Set("balanceOf", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		tokenAddr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		addr, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		bal, err := n.BalanceOf(tokenAddr, addr)
		if err != nil {
			return nil, err
		}
		return bal.String(), nil
	})

	s.Set("purchaseAmountOf", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		curveAddr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		trader, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		am, err := n.PurchaseAmountOf(curveAddr, trader)
		if err != nil {
			return nil, err
		}
		return am.String(), nil
	})

	s.Set("calcBuy", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		curveAddr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		reserveIn, err := arg.Amount(1)
		if err != nil {
			return nil, err
		}
		units, fee, err := n.CalcBuy(curveAddr, reserveIn)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"units": units.String(),
			"fee":   fee.String(),
		}, nil
	})

	s.Set("calcSell", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		curveAddr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		unitsIn, err := arg.Amount(1)
		if err != nil {
			return nil, err
		}
		out, fee, err := n.CalcSell(curveAddr, unitsIn)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"reserve": out.String(),
			"fee":     fee.String(),
		}, nil
	})

	s.Set("events", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		from := uint64(0)
		if arg.Len() > 0 {
			v, err := arg.Uint64(0)
			if err != nil {
				return nil, err
			}
			from = v
		}
		return n.Events(from), nil
	})
	return nil
}
