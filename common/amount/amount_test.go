package amount

import (
	"testing"
)

func Test_Amount(t *testing.T) {
	a := COIN.DivC(1000)
	b := COIN.MulC(10000)
	if a.String() != "0.001" {
		t.Fatalf("unexpected %v", a.String())
	}
	if b.String() != "10000" {
		t.Fatalf("unexpected %v", b.String())
	}
	if a.Add(b).String() != "10000.001" {
		t.Fatalf("unexpected %v", a.Add(b).String())
	}
	c, err := ParseAmount("10000.00121454")
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != "10000.00121454" {
		t.Fatalf("unexpected %v", c.String())
	}
	if !NewAmountFromBytes(c.Bytes()).Equal(c) {
		t.Fatal("bytes round trip mismatch")
	}
}

func Test_Amount_Compare(t *testing.T) {
	a := NewAmount(1, 0)
	b := NewAmount(2, 0)
	if !a.Less(b) {
		t.Fatal("1 < 2 expected")
	}
	if !a.IsPlus() {
		t.Fatal("1 is plus")
	}
	if !a.Sub(b).IsMinus() {
		t.Fatal("1-2 is minus")
	}
	if !a.Sub(a).IsZero() {
		t.Fatal("1-1 is zero")
	}
}
