package curve

import (
	"math/big"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/core/types"
)

func (self *CurveContract) Front() interface{} {
	return &front{
		self: self,
	}
}

type front struct {
	self *CurveContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) Buy(cc *types.ContractContext, reserveIn *amount.Amount) (*amount.Amount, error) {
	return f.self.Buy(cc, reserveIn)
}

func (f *front) Sell(cc *types.ContractContext, unitsIn *amount.Amount) (*amount.Amount, error) {
	return f.self.Sell(cc, unitsIn)
}

func (f *front) Pause(cc *types.ContractContext) error {
	return f.self.Pause(cc)
}

func (f *front) Unpause(cc *types.ContractContext) error {
	return f.self.Unpause(cc)
}

func (f *front) SetOwner(cc *types.ContractContext, newOwner common.Address) error {
	return f.self.SetOwner(cc, newOwner)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Price(cc types.ContractLoader) *amount.Amount {
	return f.self.Price(cc)
}

func (f *front) BasePrice(cc types.ContractLoader) *amount.Amount {
	return f.self.BasePrice(cc)
}

func (f *front) UnitsSold(cc types.ContractLoader) *amount.Amount {
	return f.self.UnitsSold(cc)
}

func (f *front) ReserveRaised(cc types.ContractLoader) *amount.Amount {
	return f.self.ReserveRaised(cc)
}

func (f *front) ReserveCurrent(cc types.ContractLoader) *amount.Amount {
	return f.self.ReserveCurrent(cc)
}

func (f *front) IsGraduated(cc types.ContractLoader) bool {
	return f.self.IsGraduated(cc)
}

func (f *front) IsPause(cc types.ContractLoader) bool {
	return f.self.IsPause(cc)
}

func (f *front) GraduationProgress(cc types.ContractLoader) *big.Int {
	return f.self.GraduationProgress(cc)
}

func (f *front) Threshold(cc types.ContractLoader) *amount.Amount {
	return f.self.Threshold(cc)
}

func (f *front) PurchaseAmountOf(cc types.ContractLoader, trader common.Address) *amount.Amount {
	return f.self.PurchaseAmountOf(cc, trader)
}

func (f *front) CalcBuy(cc types.ContractLoader, reserveIn *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	return f.self.CalcBuy(cc, reserveIn)
}

func (f *front) CalcSell(cc types.ContractLoader, unitsIn *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	return f.self.CalcSell(cc, unitsIn)
}

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.self.Owner(cc)
}

func (f *front) Token(cc types.ContractLoader) common.Address {
	return f.self.Token(cc)
}

func (f *front) Creator(cc types.ContractLoader) common.Address {
	return f.self.Creator(cc)
}

func (f *front) Treasury(cc types.ContractLoader) common.Address {
	return f.self.Treasury(cc)
}

func (f *front) LiquidityVault(cc types.ContractLoader) common.Address {
	return f.self.LiquidityVault(cc)
}
