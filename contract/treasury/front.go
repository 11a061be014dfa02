package treasury

import (
	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/core/types"
)

func (cont *TreasuryContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *TreasuryContract
}

func (f *front) Deposit(cc *types.ContractContext, token common.Address, am *amount.Amount) error {
	return f.cont.Deposit(cc, token, am)
}

func (f *front) Withdraw(cc *types.ContractContext, token common.Address, to common.Address, am *amount.Amount) error {
	return f.cont.Withdraw(cc, token, to, am)
}

func (f *front) SetOwner(cc *types.ContractContext, newOwner common.Address) error {
	return f.cont.SetOwner(cc, newOwner)
}

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.cont.Owner(cc)
}

func (f *front) Collected(cc types.ContractLoader, token common.Address) *amount.Amount {
	return f.cont.Collected(cc, token)
}

func (f *front) DepositOf(cc types.ContractLoader, source common.Address, token common.Address) *amount.Amount {
	return f.cont.DepositOf(cc, source, token)
}
