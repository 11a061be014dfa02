package curve

import (
	"math/big"

	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/contract/util"
	"github.com/launchlabs/launchpad/core/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func rawAmount(i int64) *amount.Amount {
	return &amount.Amount{Int: big.NewInt(i)}
}

var _ = Describe("curve pricing", func() {

	It("spot price starts at the base price", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))
		Expect(fx.viewAmount("Price").Int.Int64()).To(Equal(int64(100)))
		Expect(fx.viewAmount("BasePrice").Int.Int64()).To(Equal(int64(100)))
	})

	It("spot price rises with every purchase", func() {
		fx := newLaunch(rawAmount(100000000000000), amount.NewAmount(1000, 0))
		before := fx.viewAmount("Price")

		_, err := fx.buy(traders[0], amount.NewAmount(100, 0))
		Expect(err).To(Succeed())

		after := fx.viewAmount("Price")
		Expect(before.Less(after)).To(BeTrue())
	})
})

var _ = Describe("curve buy", func() {

	It("sizes the fill from the net input along the curve integral", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))
		trader := traders[0]

		// 1% of 1,010,101 is 10,101 leaving a net of 1,000,000
		in := rawAmount(1010101)
		out, err := fx.buy(trader, in)
		Expect(err).To(Succeed())

		// flat-price sizing would give exactly 10,000 tokens, the
		// quadratic term shaves a sliver off
		flat := amount.NewAmount(10000, 0)
		Expect(out.Int.Cmp(flat.Int) <= 0).To(BeTrue())
		slack := new(big.Int).Sub(flat.Int, out.Int)
		Expect(slack.Cmp(big.NewInt(5e17)) < 0).To(BeTrue())

		Expect(fx.balanceOf(fx.token, trader).Equal(out)).To(BeTrue())
		Expect(fx.viewAmount("UnitsSold").Equal(out)).To(BeTrue())
		Expect(fx.viewAmount("ReserveRaised").Int.Int64()).To(Equal(int64(1000000)))
		Expect(fx.viewAmount("ReserveCurrent").Int.Int64()).To(Equal(int64(1000000)))
		Expect(fx.view("PurchaseAmountOf", trader)[0].(*amount.Amount).Equal(out)).To(BeTrue())

		spent := new(big.Int).Sub(amount.NewAmount(1, 0).Int, fx.balanceOf(fx.reserve, trader).Int)
		Expect(spent.Int64()).To(Equal(int64(1010101)))
	})

	It("routes the fee to the treasury and accounts the deposit", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))

		_, err := fx.buy(traders[0], rawAmount(1010101))
		Expect(err).To(Succeed())

		Expect(fx.balanceOf(fx.reserve, fx.treasury).Int.Int64()).To(Equal(int64(10101)))
		is, err := util.Exec(fx.ctx, admin, fx.treasury, "Collected", []interface{}{fx.reserve})
		Expect(err).To(Succeed())
		Expect(is[0].(*amount.Amount).Int.Int64()).To(Equal(int64(10101)))
	})

	It("keeps the recorded reserve equal to the held balance", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))

		_, err := fx.buy(traders[0], rawAmount(1010101))
		Expect(err).To(Succeed())
		_, err = fx.buy(traders[1], rawAmount(777777))
		Expect(err).To(Succeed())

		held := fx.balanceOf(fx.reserve, fx.curve)
		Expect(fx.viewAmount("ReserveCurrent").Equal(held)).To(BeTrue())
	})

	It("records a trade event", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))

		out, err := fx.buy(traders[0], rawAmount(1010101))
		Expect(err).To(Succeed())

		var ev *TradeEvent
		for _, en := range fx.ctx.Events() {
			if en.Type == types.EventTagTrade {
				ev, err = ParseTradeEvent(en.Result)
				Expect(err).To(Succeed())
			}
		}
		Expect(ev).NotTo(BeNil())
		Expect(ev.Trade).To(Equal(TradeBuy))
		Expect(ev.Trader).To(Equal(traders[0]))
		Expect(ev.Units.Equal(out)).To(BeTrue())
		Expect(ev.Fee.Int.Int64()).To(Equal(int64(10101)))
	})

	It("rejects a zero input", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))
		_, err := fx.buy(traders[0], amount.NewAmount(0, 0))
		Expect(err.Error()).To(ContainSubstring("INSUFFICIENT_INPUT"))
	})

	It("rejects an input too small to mint a single unit", func() {
		fx := newLaunch(amount.NewAmount(1, 0), amount.NewAmount(10, 0))
		// net rounds to zero units at a base price of one full coin
		_, err := fx.buy(traders[0], rawAmount(1))
		Expect(err.Error()).To(ContainSubstring("INSUFFICIENT_OUTPUT"))
	})
})

var _ = Describe("curve sell", func() {

	It("pays out the integral under the curve less the fee", func() {
		fx := newLaunch(rawAmount(100000000000000), amount.NewAmount(1000, 0))
		trader := traders[0]
		bp := big.NewInt(100000000000000)

		_, err := fx.buy(trader, amount.NewAmount(100, 0))
		Expect(err).To(Succeed())

		bought := fx.viewAmount("UnitsSold")
		raised := fx.viewAmount("ReserveRaised")
		half := bought.DivC(2)

		u0 := new(big.Int).Sub(bought.Int, half.Int)
		gross := ReserveBetween(bp, u0, bought.Int)
		fee := util.DivC(util.MulC(gross, TRADE_FEE), FEE_DENOMINATOR)
		want := new(big.Int).Sub(gross, fee)

		before := fx.balanceOf(fx.reserve, trader)
		out, err := fx.sell(trader, half)
		Expect(err).To(Succeed())
		Expect(out.Int.Cmp(want)).To(Equal(0))

		after := fx.balanceOf(fx.reserve, trader)
		Expect(new(big.Int).Sub(after.Int, before.Int).Cmp(want)).To(Equal(0))

		Expect(fx.viewAmount("UnitsSold").Equal(bought.Sub(half))).To(BeTrue())
		Expect(fx.viewAmount("ReserveCurrent").Int.Cmp(new(big.Int).Sub(raised.Int, gross))).To(Equal(0))
	})

	It("returns no more reserve than the buy put in", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))
		trader := traders[0]
		start := fx.balanceOf(fx.reserve, trader)

		out, err := fx.buy(trader, rawAmount(1010101))
		Expect(err).To(Succeed())

		_, err = fx.sell(trader, out)
		Expect(err).To(Succeed())

		// truncation plus the fee on both legs keeps the round trip
		// strictly below the starting balance
		end := fx.balanceOf(fx.reserve, trader)
		Expect(end.Less(start)).To(BeTrue())
	})

	It("never lowers the raised high water mark", func() {
		fx := newLaunch(rawAmount(100000000000000), amount.NewAmount(1000, 0))
		trader := traders[0]

		_, err := fx.buy(trader, amount.NewAmount(100, 0))
		Expect(err).To(Succeed())
		raised := fx.viewAmount("ReserveRaised")

		_, err = fx.sell(trader, fx.viewAmount("UnitsSold"))
		Expect(err).To(Succeed())

		Expect(fx.viewAmount("ReserveRaised").Equal(raised)).To(BeTrue())
	})

	It("keeps the purchase counter after a sell", func() {
		fx := newLaunch(rawAmount(100000000000000), amount.NewAmount(1000, 0))
		trader := traders[0]

		_, err := fx.buy(trader, amount.NewAmount(100, 0))
		Expect(err).To(Succeed())
		purchased := fx.view("PurchaseAmountOf", trader)[0].(*amount.Amount)

		_, err = fx.sell(trader, purchased)
		Expect(err).To(Succeed())

		Expect(fx.view("PurchaseAmountOf", trader)[0].(*amount.Amount).Equal(purchased)).To(BeTrue())
	})

	It("rejects selling more than the curve ever sold", func() {
		fx := newLaunch(rawAmount(100000000000000), amount.NewAmount(1000, 0))
		trader := traders[0]

		_, err := fx.buy(trader, amount.NewAmount(100, 0))
		Expect(err).To(Succeed())

		over := fx.viewAmount("UnitsSold").Add(rawAmount(1))
		_, err = fx.sell(trader, over)
		Expect(err.Error()).To(ContainSubstring("SELL_EXCEEDS_UNITS_SOLD"))
	})

	It("rejects selling units the trader does not hold", func() {
		fx := newLaunch(rawAmount(100000000000000), amount.NewAmount(1000, 0))

		_, err := fx.buy(traders[0], amount.NewAmount(100, 0))
		Expect(err).To(Succeed())

		_, err = fx.sell(traders[1], fx.viewAmount("UnitsSold"))
		Expect(err.Error()).To(ContainSubstring("INSUFFICIENT_BALANCE"))
	})
})

var _ = Describe("purchase cap", func() {

	It("rejects a fill that would push a trader over the cap", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))
		trader := traders[0]

		net := ReserveBetween(big.NewInt(100), big.NewInt(0), PurchaseCap.Int)
		in := grossUp(new(big.Int).Mul(net, big.NewInt(2)))

		_, err := fx.buy(trader, in)
		Expect(err.Error()).To(ContainSubstring("PURCHASE_CAP_EXCEEDED"))

		// the trade rolled back whole
		Expect(fx.balanceOf(fx.reserve, trader).Equal(amount.NewAmount(1, 0))).To(BeTrue())
		Expect(fx.balanceOf(fx.token, trader).IsZero()).To(BeTrue())
		Expect(fx.viewAmount("UnitsSold").IsZero()).To(BeTrue())
		Expect(fx.view("PurchaseAmountOf", trader)[0].(*amount.Amount).IsZero()).To(BeTrue())
	})

	It("keeps the violation event across the rollback", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))
		trader := traders[0]

		net := ReserveBetween(big.NewInt(100), big.NewInt(0), PurchaseCap.Int)
		_, err := fx.buy(trader, grossUp(new(big.Int).Mul(net, big.NewInt(2))))
		Expect(err).To(HaveOccurred())

		var ev *CapViolationEvent
		for _, en := range fx.ctx.Events() {
			if en.Type == types.EventTagCapViolation {
				ev, err = ParseCapViolationEvent(en.Result)
				Expect(err).To(Succeed())
			}
		}
		Expect(ev).NotTo(BeNil())
		Expect(ev.Trader).To(Equal(trader))
		Expect(ev.Cap.Equal(PurchaseCap)).To(BeTrue())
		Expect(PurchaseCap.Less(ev.Attempted)).To(BeTrue())
	})
})

var _ = Describe("sellout", func() {

	It("clamps the final fill at the sellable supply and refunds the rest", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))
		bp := big.NewInt(100)
		target := PurchaseCap.Sub(amount.NewAmount(1000, 0))

		for i := 0; i < 20; i++ {
			sold := fx.viewAmount("UnitsSold")
			net := ReserveBetween(bp, sold.Int, new(big.Int).Add(sold.Int, target.Int))
			_, err := fx.buy(traders[i], grossUp(net))
			Expect(err).To(Succeed())
		}

		sold := fx.viewAmount("UnitsSold")
		remaining := SellableSupply.Sub(sold)
		Expect(remaining.IsPlus()).To(BeTrue())

		last := traders[20]
		in := rawAmount(10000000000000000)
		cost := ReserveBetween(bp, sold.Int, SellableSupply.Int)
		before := fx.balanceOf(fx.reserve, last)
		current := fx.viewAmount("ReserveCurrent")

		out, err := fx.buy(last, in)
		Expect(err).To(Succeed())
		Expect(out.Equal(remaining)).To(BeTrue())

		Expect(fx.viewAmount("UnitsSold").Equal(SellableSupply)).To(BeTrue())
		Expect(fx.balanceOf(fx.token, fx.curve).IsZero()).To(BeTrue())

		// full fee, curve cost only, rest returned
		spent := new(big.Int).Sub(before.Int, fx.balanceOf(fx.reserve, last).Int)
		want := new(big.Int).Add(feeOf(in).Int, cost)
		Expect(spent.Cmp(want)).To(Equal(0))
		Expect(fx.viewAmount("ReserveCurrent").Int.Cmp(new(big.Int).Add(current.Int, cost))).To(Equal(0))

		// nothing left to buy
		_, err = fx.buy(traders[21], rawAmount(1010101))
		Expect(err.Error()).To(ContainSubstring("INSUFFICIENT_OUTPUT"))
	})
})

var _ = Describe("graduation", func() {

	newGraduated := func() *launchFixture {
		fx := newLaunch(rawAmount(10000000000000000), amount.NewAmount(200000, 0))
		_, err := fx.buy(traders[0], amount.NewAmount(118000, 0))
		Expect(err).To(Succeed())
		Expect(fx.view("IsGraduated")[0].(bool)).To(BeTrue())
		return fx
	}

	It("fires once the raised reserve crosses the threshold", func() {
		fx := newGraduated()
		Expect(fx.viewAmount("ReserveRaised").Less(GraduationThreshold)).To(BeFalse())
		Expect(fx.viewAmount("ReserveCurrent").IsZero()).To(BeTrue())
	})

	It("splits the reserve 50/30/20 with the remainder to the treasury", func() {
		fx := newGraduated()

		// fee 1,180 and net 116,820 from the single 118,000 buy
		raised := fx.viewAmount("ReserveRaised")
		Expect(raised.Equal(amount.NewAmount(116820, 0))).To(BeTrue())

		Expect(fx.balanceOf(fx.reserve, poolVault).Equal(amount.NewAmount(58410, 0))).To(BeTrue())
		Expect(fx.balanceOf(fx.reserve, launchOwner).Equal(amount.NewAmount(35046, 0))).To(BeTrue())
		// 20% share plus the trade fee
		Expect(fx.balanceOf(fx.reserve, fx.treasury).Equal(amount.NewAmount(23364 + 1180, 0))).To(BeTrue())
	})

	It("moves the unsold tranche to the liquidity vault", func() {
		fx := newGraduated()

		sold := fx.viewAmount("UnitsSold")
		Expect(fx.balanceOf(fx.token, poolVault).Equal(SellableSupply.Sub(sold))).To(BeTrue())
		Expect(fx.balanceOf(fx.token, fx.curve).IsZero()).To(BeTrue())
	})

	It("locks out trading afterwards", func() {
		fx := newGraduated()

		_, err := fx.buy(traders[1], amount.NewAmount(1, 0))
		Expect(err.Error()).To(ContainSubstring("GRADUATED"))

		_, err = fx.sell(traders[0], rawAmount(1))
		Expect(err.Error()).To(ContainSubstring("GRADUATED"))
	})

	It("records the graduation event", func() {
		fx := newGraduated()

		var ev *GraduationEvent
		for _, en := range fx.ctx.Events() {
			if en.Type == types.EventTagGraduation {
				parsed, err := ParseGraduationEvent(en.Result)
				Expect(err).To(Succeed())
				ev = parsed
			}
		}
		Expect(ev).NotTo(BeNil())
		Expect(ev.Curve).To(Equal(fx.curve))
		Expect(ev.Token).To(Equal(fx.token))
		Expect(ev.Liquidity.Equal(amount.NewAmount(58410, 0))).To(BeTrue())
		Expect(ev.Creator.Equal(amount.NewAmount(35046, 0))).To(BeTrue())
		Expect(ev.Treasury.Equal(amount.NewAmount(23364, 0))).To(BeTrue())
	})

	It("reports progress toward the threshold", func() {
		fx := newLaunch(rawAmount(10000000000000000), amount.NewAmount(200000, 0))
		Expect(fx.view("GraduationProgress")[0].(*big.Int).Int64()).To(Equal(int64(0)))

		_, err := fx.buy(traders[0], amount.NewAmount(60000, 0))
		Expect(err).To(Succeed())

		// net 59,400 of the 116,589 threshold is 50 percent, truncated
		Expect(fx.view("GraduationProgress")[0].(*big.Int).Int64()).To(Equal(int64(50)))
	})
})

var _ = Describe("pause", func() {

	It("only the owner may pause or resume", func() {
		fx := newLaunch(rawAmount(100), amount.NewAmount(1, 0))

		_, err := util.Exec(fx.ctx, traders[0], fx.curve, "Pause", []interface{}{})
		Expect(err.Error()).To(ContainSubstring("FORBIDDEN"))

		_, err = util.Exec(fx.ctx, admin, fx.curve, "Pause", []interface{}{})
		Expect(err).To(Succeed())
		Expect(fx.view("IsPause")[0].(bool)).To(BeTrue())

		_, err = fx.buy(traders[0], rawAmount(1010101))
		Expect(err.Error()).To(ContainSubstring("PAUSED"))

		_, err = util.Exec(fx.ctx, admin, fx.curve, "Unpause", []interface{}{})
		Expect(err).To(Succeed())

		_, err = fx.buy(traders[0], rawAmount(1010101))
		Expect(err).To(Succeed())
	})
})
