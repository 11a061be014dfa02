package treasury

import (
	"io"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/bin"
)

type TreasuryContractConstruction struct {
	Owner common.Address
}

func (s *TreasuryContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *TreasuryContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
