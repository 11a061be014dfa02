package curve

import (
	"io"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/common/bin"
)

type CurveContractConstruction struct {
	Owner          common.Address
	Token          common.Address
	Creator        common.Address
	Treasury       common.Address
	LiquidityVault common.Address
	BasePrice      *amount.Amount
}

func (s *CurveContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Token); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Creator); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Treasury); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.LiquidityVault); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.BasePrice); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *CurveContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Token); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Creator); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Treasury); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.LiquidityVault); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.BasePrice); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
