package curve

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	. "github.com/launchlabs/launchpad/contract/util"
	"github.com/launchlabs/launchpad/core/types"
)

// CurveContract is the bonding curve market maker of one launched
// token. It prices buys and sells along a quadratic curve, tracks the
// cumulative capital raised and performs the one shot graduation once
// the raised amount reaches the fixed threshold.
type CurveContract struct {
	addr   common.Address
	master common.Address
}

func (self *CurveContract) Address() common.Address {
	return self.addr
}

func (self *CurveContract) Master() common.Address {
	return self.master
}

func (self *CurveContract) Init(addr common.Address, master common.Address) {
	self.addr = addr
	self.master = master
}

func (self *CurveContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &CurveContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Token == common.ZeroAddr {
		return errors.New("Curve: TOKEN_ZEROADDRESS")
	}
	if data.Creator == common.ZeroAddr {
		return errors.New("Curve: CREATOR_ZEROADDRESS")
	}
	if data.Treasury == common.ZeroAddr {
		return errors.New("Curve: TREASURY_ZEROADDRESS")
	}
	if data.LiquidityVault == common.ZeroAddr {
		return errors.New("Curve: VAULT_ZEROADDRESS")
	}
	if data.BasePrice == nil || !data.BasePrice.IsPlus() {
		return errors.New("Curve: INVALID_BASE_PRICE")
	}
	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	cc.SetContractData([]byte{tagToken}, data.Token[:])
	cc.SetContractData([]byte{tagCreator}, data.Creator[:])
	cc.SetContractData([]byte{tagTreasury}, data.Treasury[:])
	cc.SetContractData([]byte{tagLiquidityVault}, data.LiquidityVault[:])
	cc.SetContractData([]byte{tagBasePrice}, data.BasePrice.Bytes())
	return nil
}

//////////////////////////////////////////////////
// Curve Contract : modifier
//////////////////////////////////////////////////

func (self *CurveContract) onlyOwner(cc *types.ContractContext) error {
	if cc.From() != self.owner(cc) {
		return errors.New("Curve: FORBIDDEN")
	}
	return nil
}

// enter takes the non reentrant lock shared by Buy, Sell and the
// graduation. Released on every exit path through leave.
func (self *CurveContract) enter(cc *types.ContractContext) error {
	bs := cc.ContractData([]byte{tagInFlight})
	if len(bs) == 1 && bs[0] == 1 {
		return errors.New("Curve: REENTRANT_CALL")
	}
	cc.SetContractData([]byte{tagInFlight}, []byte{1})
	return nil
}

func (self *CurveContract) leave(cc *types.ContractContext) {
	cc.SetContractData([]byte{tagInFlight}, nil)
}

//////////////////////////////////////////////////
// Curve Contract : private reader functions
//////////////////////////////////////////////////

func (self *CurveContract) owner(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagOwner}))
}
func (self *CurveContract) token(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagToken}))
}
func (self *CurveContract) creator(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagCreator}))
}
func (self *CurveContract) treasury(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagTreasury}))
}
func (self *CurveContract) liquidityVault(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagLiquidityVault}))
}
func (self *CurveContract) basePrice(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagBasePrice}))
}
func (self *CurveContract) unitsSold(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagUnitsSold}))
}
func (self *CurveContract) reserveRaised(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagReserveRaised}))
}
func (self *CurveContract) reserveCurrent(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagReserveCurrent}))
}
func (self *CurveContract) phase(cc types.ContractLoader) uint8 {
	bs := cc.ContractData([]byte{tagPhase})
	if len(bs) == 1 {
		return bs[0]
	}
	return PhaseTrading
}
func (self *CurveContract) isPause(cc types.ContractLoader) bool {
	bs := cc.ContractData([]byte{tagPause})
	return len(bs) == 1 && bs[0] == 1
}
func (self *CurveContract) purchaseAmountOf(cc types.ContractLoader, trader common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(trader, makePurchaseKey()))
}

func (self *CurveContract) reserveToken(cc *types.ContractContext) (common.Address, error) {
	mt := cc.MainToken()
	if mt == nil {
		return common.ZeroAddr, errors.New("Curve: NO_RESERVE_TOKEN")
	}
	return *mt, nil
}

func (self *CurveContract) sendFee(cc *types.ContractContext, reserveToken common.Address, fee *big.Int) error {
	if !IsPlus(fee) {
		return nil
	}
	treasury := self.treasury(cc)
	if err := SafeTransfer(cc, reserveToken, treasury, fee); err != nil {
		return err
	}
	if cc.IsContract(treasury) {
		if _, err := cc.Exec(cc, treasury, "Deposit", []interface{}{reserveToken, ToAmount(fee)}); err != nil {
			return err
		}
	}
	return nil
}

//////////////////////////////////////////////////
// Curve Contract : sizing
//////////////////////////////////////////////////

func (self *CurveContract) calcBuy(cc types.ContractLoader, reserveIn *amount.Amount) (*big.Int, *big.Int, bool, error) {
	if reserveIn == nil || !reserveIn.IsPlus() {
		return nil, nil, false, errors.New("Curve: INSUFFICIENT_INPUT")
	}
	fee := DivC(MulC(reserveIn.Int, TRADE_FEE), FEE_DENOMINATOR)
	net := Sub(reserveIn.Int, fee)
	unitsOut, clamped := UnitsForReserve(self.basePrice(cc).Int, self.unitsSold(cc).Int, net)
	if !IsPlus(unitsOut) {
		return nil, nil, false, errors.New("Curve: INSUFFICIENT_OUTPUT")
	}
	return unitsOut, fee, clamped, nil
}

func (self *CurveContract) calcSell(cc types.ContractLoader, unitsIn *amount.Amount) (*big.Int, *big.Int, error) {
	if unitsIn == nil || !unitsIn.IsPlus() {
		return nil, nil, errors.New("Curve: INSUFFICIENT_INPUT")
	}
	sold := self.unitsSold(cc).Int
	if unitsIn.Int.Cmp(sold) > 0 {
		return nil, nil, errors.New("Curve: SELL_EXCEEDS_UNITS_SOLD")
	}
	gross := ReserveBetween(self.basePrice(cc).Int, Sub(sold, unitsIn.Int), sold)
	fee := DivC(MulC(gross, TRADE_FEE), FEE_DENOMINATOR)
	out := Sub(gross, fee)
	if !IsPlus(out) {
		return nil, nil, errors.New("Curve: INSUFFICIENT_OUTPUT")
	}
	return out, fee, nil
}

//////////////////////////////////////////////////
// Curve Contract : public writer functions
//////////////////////////////////////////////////

// Buy trades reserveIn of the reserve asset for curve tokens. The 1%
// fee is charged on the full input, also when the fill is clamped at
// the sellable supply limit; on a clamped fill the unused part of the
// net input is returned to the trader.
func (self *CurveContract) Buy(cc *types.ContractContext, reserveIn *amount.Amount) (*amount.Amount, error) {
	if err := self.enter(cc); err != nil {
		return nil, err
	}
	defer self.leave(cc)

	if self.isPause(cc) {
		return nil, errors.New("Curve: PAUSED")
	}
	if self.phase(cc) != PhaseTrading {
		return nil, errors.New("Curve: GRADUATED")
	}
	trader := cc.From()
	if trader == common.ZeroAddr {
		return nil, errors.New("Curve: BUY_FROM_ZEROADDRESS")
	}

	unitsOut, fee, clamped, err := self.calcBuy(cc, reserveIn)
	if err != nil {
		return nil, err
	}
	net := Sub(reserveIn.Int, fee)
	sold := self.unitsSold(cc).Int

	purchased := self.purchaseAmountOf(cc, trader)
	if Add(purchased.Int, unitsOut).Cmp(PurchaseCap.Int) > 0 {
		emitCapViolation(cc, &CapViolationEvent{
			Curve:     self.addr,
			Trader:    trader,
			Attempted: ToAmount(Add(purchased.Int, unitsOut)),
			Cap:       PurchaseCap,
		})
		return nil, errors.New("Curve: PURCHASE_CAP_EXCEEDED")
	}

	cost := net
	if clamped {
		cost = ReserveBetween(self.basePrice(cc).Int, sold, SellableSupply.Int)
	}

	reserveToken, err := self.reserveToken(cc)
	if err != nil {
		return nil, err
	}
	if err := SafeTransferFrom(cc, reserveToken, trader, self.addr, reserveIn.Int); err != nil {
		return nil, err
	}
	if err := self.sendFee(cc, reserveToken, fee); err != nil {
		return nil, err
	}
	if clamped {
		if refund := Sub(net, cost); IsPlus(refund) {
			if err := SafeTransfer(cc, reserveToken, trader, refund); err != nil {
				return nil, err
			}
		}
	}

	cc.SetContractData([]byte{tagUnitsSold}, ToAmount(Add(sold, unitsOut)).Bytes())
	raised := Add(self.reserveRaised(cc).Int, cost)
	cc.SetContractData([]byte{tagReserveRaised}, ToAmount(raised).Bytes())
	cc.SetContractData([]byte{tagReserveCurrent}, ToAmount(Add(self.reserveCurrent(cc).Int, cost)).Bytes())
	cc.SetAccountData(trader, makePurchaseKey(), purchased.Add(ToAmount(unitsOut)).Bytes())

	if err := SafeTransfer(cc, self.token(cc), trader, unitsOut); err != nil {
		return nil, err
	}

	emitTrade(cc, &TradeEvent{
		Trade:   TradeBuy,
		Curve:   self.addr,
		Trader:  trader,
		Units:   ToAmount(unitsOut),
		Reserve: reserveIn,
		Fee:     ToAmount(fee),
	})

	if raised.Cmp(GraduationThreshold.Int) >= 0 {
		if err := self.graduate(cc); err != nil {
			return nil, err
		}
	}
	return ToAmount(unitsOut), nil
}

// Sell trades unitsIn curve tokens back for the reserve asset. The
// cumulative raised counter is a high water mark and is never reduced.
func (self *CurveContract) Sell(cc *types.ContractContext, unitsIn *amount.Amount) (*amount.Amount, error) {
	if err := self.enter(cc); err != nil {
		return nil, err
	}
	defer self.leave(cc)

	if self.isPause(cc) {
		return nil, errors.New("Curve: PAUSED")
	}
	if self.phase(cc) != PhaseTrading {
		return nil, errors.New("Curve: GRADUATED")
	}
	trader := cc.From()
	if trader == common.ZeroAddr {
		return nil, errors.New("Curve: SELL_FROM_ZEROADDRESS")
	}

	out, fee, err := self.calcSell(cc, unitsIn)
	if err != nil {
		return nil, err
	}
	gross := Add(out, fee)

	tokenAddr := self.token(cc)
	balance, err := TokenBalanceOf(cc, tokenAddr, trader)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(unitsIn.Int) < 0 {
		return nil, errors.New("Curve: INSUFFICIENT_BALANCE")
	}

	if self.reserveCurrent(cc).Int.Cmp(gross) < 0 {
		return nil, errors.New("Curve: INSUFFICIENT_RESERVE")
	}
	reserveToken, err := self.reserveToken(cc)
	if err != nil {
		return nil, err
	}
	reserveBalance, err := TokenBalanceOf(cc, reserveToken, self.addr)
	if err != nil {
		return nil, err
	}
	if reserveBalance.Cmp(gross) < 0 {
		return nil, errors.New("Curve: INSUFFICIENT_RESERVE")
	}

	if err := SafeTransferFrom(cc, tokenAddr, trader, self.addr, unitsIn.Int); err != nil {
		return nil, err
	}
	if err := SafeTransfer(cc, reserveToken, trader, out); err != nil {
		return nil, err
	}
	if err := self.sendFee(cc, reserveToken, fee); err != nil {
		return nil, err
	}

	sold := self.unitsSold(cc).Int
	cc.SetContractData([]byte{tagUnitsSold}, ToAmount(Sub(sold, unitsIn.Int)).Bytes())
	cc.SetContractData([]byte{tagReserveCurrent}, ToAmount(Sub(self.reserveCurrent(cc).Int, gross)).Bytes())

	emitTrade(cc, &TradeEvent{
		Trade:   TradeSell,
		Curve:   self.addr,
		Trader:  trader,
		Units:   unitsIn,
		Reserve: ToAmount(out),
		Fee:     ToAmount(fee),
	})
	return ToAmount(out), nil
}

func (self *CurveContract) Pause(cc *types.ContractContext) error {
	if err := self.onlyOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagPause}, []byte{1})
	return nil
}

func (self *CurveContract) Unpause(cc *types.ContractContext) error {
	if err := self.onlyOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagPause}, nil)
	return nil
}

func (self *CurveContract) SetOwner(cc *types.ContractContext, newOwner common.Address) error {
	if err := self.onlyOwner(cc); err != nil {
		return err
	}
	if newOwner == common.ZeroAddr {
		return errors.New("Curve: NEW_OWNER_ZEROADDRESS")
	}
	cc.SetContractData([]byte{tagOwner}, newOwner[:])
	return nil
}

//////////////////////////////////////////////////
// Curve Contract : graduation
//////////////////////////////////////////////////

// graduate performs the one shot Trading to Graduated transition.
// The backing reserve splits 50% to the liquidity vault, 30% to the
// creator and 20% plus the rounding remainder to the treasury. The
// remaining unsold token balance accompanies the liquidity share.
func (self *CurveContract) graduate(cc *types.ContractContext) error {
	if self.phase(cc) != PhaseTrading {
		return errors.New("Curve: ALREADY_GRADUATED")
	}

	reserve := self.reserveCurrent(cc).Int
	liq := DivC(MulC(reserve, LIQUIDITY_SHARE), 100)
	creatorShare := DivC(MulC(reserve, CREATOR_SHARE), 100)
	treasuryShare := Sub(Sub(reserve, liq), creatorShare)

	reserveToken, err := self.reserveToken(cc)
	if err != nil {
		return err
	}
	tokenAddr := self.token(cc)
	vault := self.liquidityVault(cc)

	unitsToPool, err := TokenBalanceOf(cc, tokenAddr, self.addr)
	if err != nil {
		return err
	}
	if IsPlus(liq) {
		if err := SafeTransfer(cc, reserveToken, vault, liq); err != nil {
			return err
		}
	}
	if IsPlus(unitsToPool) {
		if err := SafeTransfer(cc, tokenAddr, vault, unitsToPool); err != nil {
			return err
		}
	}
	if IsPlus(creatorShare) {
		if err := SafeTransfer(cc, reserveToken, self.creator(cc), creatorShare); err != nil {
			return err
		}
	}
	if err := self.sendFee(cc, reserveToken, treasuryShare); err != nil {
		return err
	}

	cc.SetContractData([]byte{tagReserveCurrent}, nil)
	cc.SetContractData([]byte{tagPhase}, []byte{PhaseGraduated})

	emitGraduation(cc, &GraduationEvent{
		Curve:       self.addr,
		Token:       tokenAddr,
		Raised:      self.reserveRaised(cc),
		Liquidity:   ToAmount(liq),
		Creator:     ToAmount(creatorShare),
		Treasury:    ToAmount(treasuryShare),
		UnitsSold:   self.unitsSold(cc),
		UnitsToPool: ToAmount(unitsToPool),
	})
	return nil
}

//////////////////////////////////////////////////
// Curve Contract : public reader functions
//////////////////////////////////////////////////

func (self *CurveContract) Price(cc types.ContractLoader) *amount.Amount {
	return ToAmount(PriceAt(self.basePrice(cc).Int, self.unitsSold(cc).Int))
}

func (self *CurveContract) BasePrice(cc types.ContractLoader) *amount.Amount {
	return self.basePrice(cc)
}

func (self *CurveContract) UnitsSold(cc types.ContractLoader) *amount.Amount {
	return self.unitsSold(cc)
}

func (self *CurveContract) ReserveRaised(cc types.ContractLoader) *amount.Amount {
	return self.reserveRaised(cc)
}

func (self *CurveContract) ReserveCurrent(cc types.ContractLoader) *amount.Amount {
	return self.reserveCurrent(cc)
}

func (self *CurveContract) IsGraduated(cc types.ContractLoader) bool {
	return self.phase(cc) == PhaseGraduated
}

func (self *CurveContract) IsPause(cc types.ContractLoader) bool {
	return self.isPause(cc)
}

// GraduationProgress returns raised*100/threshold, truncated
func (self *CurveContract) GraduationProgress(cc types.ContractLoader) *big.Int {
	return Div(MulC(self.reserveRaised(cc).Int, 100), GraduationThreshold.Int)
}

func (self *CurveContract) Threshold(cc types.ContractLoader) *amount.Amount {
	return GraduationThreshold
}

func (self *CurveContract) PurchaseAmountOf(cc types.ContractLoader, trader common.Address) *amount.Amount {
	return self.purchaseAmountOf(cc, trader)
}

func (self *CurveContract) CalcBuy(cc types.ContractLoader, reserveIn *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	unitsOut, fee, _, err := self.calcBuy(cc, reserveIn)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(unitsOut), ToAmount(fee), nil
}

func (self *CurveContract) CalcSell(cc types.ContractLoader, unitsIn *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	out, fee, err := self.calcSell(cc, unitsIn)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(out), ToAmount(fee), nil
}

func (self *CurveContract) Owner(cc types.ContractLoader) common.Address {
	return self.owner(cc)
}

func (self *CurveContract) Token(cc types.ContractLoader) common.Address {
	return self.token(cc)
}

func (self *CurveContract) Creator(cc types.ContractLoader) common.Address {
	return self.creator(cc)
}

func (self *CurveContract) Treasury(cc types.ContractLoader) common.Address {
	return self.treasury(cc)
}

func (self *CurveContract) LiquidityVault(cc types.ContractLoader) common.Address {
	return self.liquidityVault(cc)
}
