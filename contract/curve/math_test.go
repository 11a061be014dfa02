package curve

import (
	"math/big"
	"testing"

	"github.com/launchlabs/launchpad/common/amount"
)

func coins(i int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(i), big.NewInt(amount.FractionalMax))
}

func TestPriceAt(t *testing.T) {
	bp := big.NewInt(1000)

	if p := PriceAt(bp, big.NewInt(0)); p.Cmp(bp) != 0 {
		t.Fatalf("price at zero = %v, want %v", p, bp)
	}

	// quadruples at the sellable boundary, from below
	almost := new(big.Int).Sub(SellableSupply.Int, big.NewInt(1))
	if p := PriceAt(bp, almost); p.Int64() != 3999 && p.Int64() != 4000 {
		t.Fatalf("price near sellout = %v, want ~4000", p)
	}

	// fails closed once nothing is left to sell
	if p := PriceAt(bp, SellableSupply.Int); p.Sign() != 0 {
		t.Fatalf("price at sellout = %v, want 0", p)
	}
	if p := PriceAt(bp, new(big.Int).Add(SellableSupply.Int, coins(1))); p.Sign() != 0 {
		t.Fatalf("price beyond sellout = %v, want 0", p)
	}

	// strictly monotone over the open range
	prev := PriceAt(bp, big.NewInt(0))
	for i := int64(1); i < 8; i++ {
		p := PriceAt(bp, coins(i*100000000))
		if p.Cmp(prev) <= 0 {
			t.Fatalf("price not monotone at %d units: %v <= %v", i, p, prev)
		}
		prev = p
	}
}

func TestReserveBetween(t *testing.T) {
	bp := big.NewInt(100)

	// the full integral is b*S*7/3 after scaling
	full := ReserveBetween(bp, big.NewInt(0), SellableSupply.Int)
	want := new(big.Int).Div(new(big.Int).Mul(big.NewInt(100*800000000), big.NewInt(7)), big.NewInt(3))
	if full.Cmp(want) != 0 {
		t.Fatalf("full reserve = %v, want %v", full, want)
	}

	// segments add up
	mid := coins(300000000)
	lo := ReserveBetween(bp, big.NewInt(0), mid)
	hi := ReserveBetween(bp, mid, SellableSupply.Int)
	sum := new(big.Int).Add(lo, hi)
	diff := new(big.Int).Sub(full, sum)
	if diff.Sign() < 0 || diff.Cmp(big.NewInt(2)) > 0 {
		t.Fatalf("segments drift: %v + %v != %v", lo, hi, full)
	}

	if r := ReserveBetween(bp, mid, mid); r.Sign() != 0 {
		t.Fatalf("empty segment = %v, want 0", r)
	}
}

func TestUnitsForReserve(t *testing.T) {
	bp := big.NewInt(100)

	// a net of 1,000,000 at the start of the curve buys a hair under
	// 10,000 tokens
	units, clamped := UnitsForReserve(bp, big.NewInt(0), big.NewInt(1000000))
	if clamped {
		t.Fatal("unexpected clamp")
	}
	flat := coins(10000)
	if units.Cmp(flat) > 0 {
		t.Fatalf("units = %v, exceeds flat-price bound %v", units, flat)
	}
	slack := new(big.Int).Sub(flat, units)
	if slack.Cmp(big.NewInt(5e17)) >= 0 {
		t.Fatalf("units = %v, too far below %v", units, flat)
	}

	// charging the integral of the fill back never exceeds the net
	cost := ReserveBetween(bp, big.NewInt(0), units)
	if cost.Cmp(big.NewInt(1000000)) > 0 {
		t.Fatalf("round trip cost %v exceeds net input", cost)
	}

	// an over-large net clamps at the sellable supply
	units, clamped = UnitsForReserve(bp, big.NewInt(0), coins(1000000))
	if !clamped {
		t.Fatal("expected clamp")
	}
	if units.Cmp(SellableSupply.Int) != 0 {
		t.Fatalf("clamped units = %v, want %v", units, SellableSupply.Int)
	}

	// nothing to size once sold out
	units, clamped = UnitsForReserve(bp, SellableSupply.Int, big.NewInt(1000000))
	if !clamped || units.Sign() != 0 {
		t.Fatalf("units past sellout = %v (clamped=%v), want 0", units, clamped)
	}

	units, _ = UnitsForReserve(bp, big.NewInt(0), big.NewInt(0))
	if units.Sign() != 0 {
		t.Fatalf("units for zero net = %v, want 0", units)
	}
}

func TestProgress(t *testing.T) {
	half := Progress(coins(400000000))
	if half.Int64() != amount.FractionalMax/2 {
		t.Fatalf("progress at half = %v", half)
	}
	over := Progress(new(big.Int).Mul(SellableSupply.Int, big.NewInt(3)))
	if over.Int64() != amount.FractionalMax {
		t.Fatalf("progress past sellout = %v, want cap", over)
	}
}
