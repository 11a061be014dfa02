package util

import (
	"math/big"
)

func IsPlus(a *big.Int) bool {
	return a.Cmp(Zero) > 0
}
func Clone(a *big.Int) *big.Int {
	return big.NewInt(0).Set(a)
}
func Abs(a *big.Int) *big.Int {
	return big.NewInt(0).Abs(a)
}
func Sqrt(a *big.Int) *big.Int {
	return big.NewInt(0).Sqrt(a)
}
func Exp(a, b *big.Int) *big.Int {
	return big.NewInt(0).Exp(a, b, nil)
}
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) < 0 {
		return a
	}
	return b
}
func Add(a, b *big.Int) *big.Int {
	return big.NewInt(0).Add(a, b)
}
func Sub(a, b *big.Int) *big.Int {
	return big.NewInt(0).Sub(a, b)
}
func Mul(a, b *big.Int) *big.Int {
	return big.NewInt(0).Mul(a, b)
}
func Div(a, b *big.Int) *big.Int {
	return big.NewInt(0).Div(a, b)
}
func AddC(a *big.Int, b int64) *big.Int {
	return big.NewInt(0).Add(a, big.NewInt(b))
}
func SubC(a *big.Int, b int64) *big.Int {
	return big.NewInt(0).Sub(a, big.NewInt(b))
}
func MulC(a *big.Int, b int64) *big.Int {
	return big.NewInt(0).Mul(a, big.NewInt(b))
}
func DivC(a *big.Int, b int64) *big.Int {
	return big.NewInt(0).Div(a, big.NewInt(b))
}
func MulDiv(a, b, denominator *big.Int) *big.Int {
	return Div(Mul(a, b), denominator)
}
func MulDivC(a, b *big.Int, denominator int64) *big.Int {
	return DivC(Mul(a, b), denominator)
}
func Pow10(a int) *big.Int {
	return Exp(big.NewInt(10), big.NewInt(int64(a)))
}

// Cbrt returns the floor of the cube root of a.
// Newton iteration from a bit-length based first guess, bounded at 255
// rounds, with a final floor adjustment. Truncation never overshoots.
func Cbrt(a *big.Int) *big.Int {
	if a.Sign() <= 0 {
		return big.NewInt(0)
	}
	three := big.NewInt(3)
	x := big.NewInt(0).Lsh(big.NewInt(1), uint((a.BitLen()+2)/3))
	prev := big.NewInt(0)
	for i := 0; i < 255; i++ {
		prev.Set(x)
		// x = (2x + a/x^2) / 3
		x = Div(Add(MulC(x, 2), Div(a, Mul(x, x))), three)
		if Abs(Sub(x, prev)).Cmp(big.NewInt(1)) <= 0 {
			break
		}
	}
	for Mul(Mul(x, x), x).Cmp(a) > 0 {
		x = SubC(x, 1)
	}
	next := AddC(x, 1)
	for Mul(Mul(next, next), next).Cmp(a) <= 0 {
		x = next
		next = AddC(x, 1)
	}
	return x
}
