package util

import (
	"math/big"
	"testing"
)

func Test_Cbrt(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 2},
		{26, 2},
		{27, 3},
		{1000000, 100},
		{999999, 99},
	}
	for _, c := range cases {
		got := Cbrt(big.NewInt(c.in))
		if got.Int64() != c.want {
			t.Errorf("Cbrt(%v) = %v, want %v", c.in, got, c.want)
		}
	}

	// floor property on large inputs
	x := new(big.Int)
	x.SetString("123456789012345678901234567890", 10)
	r := Cbrt(x)
	r3 := Mul(Mul(r, r), r)
	if r3.Cmp(x) > 0 {
		t.Errorf("Cbrt overshoots: %v^3 > %v", r, x)
	}
	n := AddC(r, 1)
	n3 := Mul(Mul(n, n), n)
	if n3.Cmp(x) <= 0 {
		t.Errorf("Cbrt undershoots: (%v+1)^3 <= %v", r, x)
	}
}

func Test_MulDiv_Truncates(t *testing.T) {
	got := MulDiv(big.NewInt(10), big.NewInt(10), big.NewInt(3))
	if got.Int64() != 33 {
		t.Errorf("MulDiv(10,10,3) = %v, want 33", got)
	}
}
