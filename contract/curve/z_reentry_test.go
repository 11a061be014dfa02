package curve

import (
	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/contract/token"
	"github.com/launchlabs/launchpad/contract/util"
	"github.com/launchlabs/launchpad/core/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var reenterNoteKey = []byte{0x01}

// reenterContract stands in for the treasury and drives a nested Buy
// back into the calling curve from inside the fee deposit. The nested
// error is recorded under reenterNoteKey so the outer trade still
// settles and the note can be inspected afterwards.
type reenterContract struct {
	addr   common.Address
	master common.Address
}

func (cont *reenterContract) Address() common.Address {
	return cont.addr
}

func (cont *reenterContract) Master() common.Address {
	return cont.master
}

func (cont *reenterContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *reenterContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	return nil
}

func (cont *reenterContract) Front() interface{} {
	return &reenterContractFront{cont: cont}
}

type reenterContractFront struct {
	cont *reenterContract
}

func (f *reenterContractFront) Deposit(cc *types.ContractContext, token common.Address, am *amount.Amount) error {
	if _, err := cc.Exec(cc, cc.From(), "Buy", []interface{}{amount.NewAmount(1, 0)}); err != nil {
		cc.SetContractData(reenterNoteKey, []byte(err.Error()))
	}
	return nil
}

// newReenteredLaunch mirrors newLaunch with the reenterContract wired
// in as the curve's treasury.
func newReenteredLaunch(basePrice *amount.Amount, fund *amount.Amount) *launchFixture {
	classID, err := types.RegisterContractType(&reenterContract{})
	Expect(err).To(Succeed())

	ctx := types.NewEmptyContext()
	fx := &launchFixture{ctx: ctx}

	supplies := map[common.Address]*amount.Amount{}
	for _, trader := range traders {
		supplies[trader] = fund
	}
	fx.reserve = deployContract(ctx, "Token", &token.TokenContractConstruction{
		Name:             "Reserve Coin",
		Symbol:           "RSV",
		InitialSupplyMap: supplies,
	})
	ctx.SetMainToken(fx.reserve)

	fx.token = deployContract(ctx, "Token", &token.TokenContractConstruction{
		Name:   "Launch Token",
		Symbol: "LAUNCH",
	})

	hook, err := ctx.DeployContract(admin, classID, nil)
	Expect(err).To(Succeed())
	fx.treasury = hook.Address()

	fx.curve = deployContract(ctx, "Curve", &CurveContractConstruction{
		Owner:          admin,
		Token:          fx.token,
		Creator:        launchOwner,
		Treasury:       fx.treasury,
		LiquidityVault: poolVault,
		BasePrice:      basePrice,
	})

	_, err = util.Exec(ctx, admin, fx.token, "Mint", []interface{}{fx.curve, SellableSupply})
	Expect(err).To(Succeed())

	limit := util.MaxUint256
	for _, trader := range traders {
		_, err = util.Exec(ctx, trader, fx.reserve, "Approve", []interface{}{fx.curve, limit})
		Expect(err).To(Succeed())
		_, err = util.Exec(ctx, trader, fx.token, "Approve", []interface{}{fx.curve, limit})
		Expect(err).To(Succeed())
	}
	return fx
}

var _ = Describe("reentrancy guard", func() {

	It("rejects a nested trade entered through the fee deposit", func() {
		fx := newReenteredLaunch(rawAmount(100), amount.NewAmount(1, 0))
		trader := traders[0]

		out, err := fx.buy(trader, rawAmount(1010101))
		Expect(err).To(Succeed())
		Expect(out.IsPlus()).To(BeTrue())

		note := fx.ctx.Data(fx.treasury, common.Address{}, reenterNoteKey)
		Expect(string(note)).To(Equal("Curve: REENTRANT_CALL"))
	})

	It("releases the guard once the trade settles", func() {
		fx := newReenteredLaunch(rawAmount(100), amount.NewAmount(1, 0))
		trader := traders[0]

		_, err := fx.buy(trader, rawAmount(1010101))
		Expect(err).To(Succeed())

		_, err = fx.buy(trader, rawAmount(1010101))
		Expect(err).To(Succeed())
		_, err = fx.sell(trader, amount.NewAmount(1, 0))
		Expect(err).To(Succeed())
	})
})
