package factory

import (
	"io"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/bin"
)

type FactoryContractConstruction struct {
	Owner          common.Address
	Treasury       common.Address
	LiquidityVault common.Address
	TokenClassID   uint64
	CurveClassID   uint64
}

func (s *FactoryContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Treasury); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.LiquidityVault); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.TokenClassID); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.CurveClassID); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *FactoryContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Treasury); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.LiquidityVault); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.TokenClassID); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.CurveClassID); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
