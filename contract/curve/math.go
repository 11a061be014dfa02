package curve

import (
	"math/big"

	. "github.com/launchlabs/launchpad/contract/util"
)

// Fixed point curve math. All amounts are 1e18 scaled integers, every
// division truncates toward zero so rounding always favors the curve.
//
//   progress p = units_sold / SellableSupply, scaled by PRECISION
//   price(p)   = base_price * (1+p)^2
//   R(p)       = base_price * SellableSupply * (1+p)^3 / 3
//
// The cube (1+p)^3 is carried at PRECISION^3 scale.

var (
	precision  = big.NewInt(PRECISION)
	precision2 = Mul(big.NewInt(PRECISION), big.NewInt(PRECISION))
	precision3 = Mul(precision2, big.NewInt(PRECISION))
	precision4 = Mul(precision3, big.NewInt(PRECISION))
)

// Progress returns units_sold/SellableSupply at PRECISION scale, capped at PRECISION.
func Progress(unitsSold *big.Int) *big.Int {
	if unitsSold.Cmp(SellableSupply.Int) >= 0 {
		return Clone(precision)
	}
	return MulDiv(unitsSold, precision, SellableSupply.Int)
}

// PriceAt returns the instantaneous unit price at the given point of the
// curve. At or beyond sellout it fails closed and reports zero.
func PriceAt(basePrice *big.Int, unitsSold *big.Int) *big.Int {
	if unitsSold.Cmp(SellableSupply.Int) >= 0 {
		return big.NewInt(0)
	}
	x := Add(precision, Progress(unitsSold))
	return Div(Mul(basePrice, Mul(x, x)), precision2)
}

// progressCube returns (PRECISION+p)^3
func progressCube(p *big.Int) *big.Int {
	x := Add(precision, p)
	return Mul(Mul(x, x), x)
}

// ReserveBetween returns the reserve backing the curve segment from
// unitsLow to unitsHigh, the closed form integral difference.
func ReserveBetween(basePrice *big.Int, unitsLow, unitsHigh *big.Int) *big.Int {
	c0 := progressCube(Progress(unitsLow))
	c1 := progressCube(Progress(unitsHigh))
	base := MulDiv(basePrice, SellableSupply.Int, precision)
	return Div(Mul(base, Sub(c1, c0)), MulC(precision3, 3))
}

// UnitsForReserve sizes a buy: the units obtained for netReserve put in
// at the unitsSold point. The target cube is inverted with the floor
// cube root, then converted back to units, so the result never exceeds
// what the integral pays for. Returns clamped=true when the buy runs
// into the sellable supply limit, with unitsOut cut to the remainder.
func UnitsForReserve(basePrice *big.Int, unitsSold *big.Int, netReserve *big.Int) (*big.Int, bool) {
	if !IsPlus(netReserve) || unitsSold.Cmp(SellableSupply.Int) >= 0 {
		return big.NewInt(0), unitsSold.Cmp(SellableSupply.Int) >= 0
	}
	c0 := progressCube(Progress(unitsSold))
	delta := Div(Mul(Mul(netReserve, bigThree), precision4), Mul(basePrice, SellableSupply.Int))
	root := Cbrt(Add(c0, delta))
	p1 := Sub(root, precision)
	if p1.Cmp(precision) >= 0 {
		return Sub(SellableSupply.Int, unitsSold), true
	}
	units1 := MulDiv(p1, SellableSupply.Int, precision)
	if units1.Cmp(unitsSold) < 0 {
		return big.NewInt(0), false
	}
	return Sub(units1, unitsSold), false
}
