package curve

import (
	"math/big"

	"github.com/launchlabs/launchpad/common/amount"
)

const (
	FEE_DENOMINATOR = 10000000000
	PRECISION       = amount.FractionalMax

	// 1% flat trade fee on both directions
	TRADE_FEE = FEE_DENOMINATOR / 100

	// reserve split at graduation, parts of 100.
	// The treasury takes the remainder after the two truncated shares.
	LIQUIDITY_SHARE = 50
	CREATOR_SHARE   = 30
)

var (
	// issuance is fixed per launch. The per-wallet cap is measured
	// against the full issuance while only 80% is sellable.
	TotalIssuance       = amount.NewAmount(1000000000, 0)
	SellableSupply      = amount.NewAmount(800000000, 0)
	PurchaseCap         = amount.NewAmount(40000000, 0)
	GraduationThreshold = amount.NewAmount(116589, 0)
)

// phases
const (
	PhaseTrading   = uint8(0)
	PhaseGraduated = uint8(1)
)

// trade directions in trade events
const (
	TradeBuy  = uint8(1)
	TradeSell = uint8(2)
)

var (
	//owner
	tagOwner = byte(0x00)

	//collaborators
	tagToken          = byte(0x01)
	tagCreator        = byte(0x02)
	tagTreasury       = byte(0x03)
	tagLiquidityVault = byte(0x04)

	//curve
	tagBasePrice      = byte(0x10)
	tagUnitsSold      = byte(0x11)
	tagReserveRaised  = byte(0x12)
	tagReserveCurrent = byte(0x13)
	tagPhase          = byte(0x14)
	tagPause          = byte(0x15)
	tagInFlight       = byte(0x16)

	//per trader
	tagPurchaseAmount = byte(0x20)
)

func makePurchaseKey() []byte {
	return []byte{tagPurchaseAmount}
}

var bigThree = big.NewInt(3)
