package factory

import (
	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/core/types"
)

func (cont *FactoryContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *FactoryContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) CreateLaunch(cc *types.ContractContext, name string, symbol string, basePrice *amount.Amount) (common.Address, common.Address, error) {
	return f.cont.CreateLaunch(cc, name, symbol, basePrice)
}

func (f *front) SetOwner(cc *types.ContractContext, newOwner common.Address) error {
	return f.cont.SetOwner(cc, newOwner)
}

func (f *front) SetTreasury(cc *types.ContractContext, newTreasury common.Address) error {
	return f.cont.SetTreasury(cc, newTreasury)
}

func (f *front) SetLiquidityVault(cc *types.ContractContext, newVault common.Address) error {
	return f.cont.SetLiquidityVault(cc, newVault)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.cont.Owner(cc)
}

func (f *front) Treasury(cc types.ContractLoader) common.Address {
	return f.cont.Treasury(cc)
}

func (f *front) LiquidityVault(cc types.ContractLoader) common.Address {
	return f.cont.LiquidityVault(cc)
}

func (f *front) LaunchCount(cc types.ContractLoader) uint32 {
	return f.cont.LaunchCount(cc)
}

func (f *front) LaunchAt(cc types.ContractLoader, index uint32) (common.Address, common.Address, error) {
	return f.cont.LaunchAt(cc, index)
}

func (f *front) CurveOf(cc types.ContractLoader, tokenAddr common.Address) (common.Address, error) {
	return f.cont.CurveOf(cc, tokenAddr)
}
