package types

import (
	"math/big"

	"github.com/launchlabs/launchpad/common"
)

// Loader defines functions that load committed state data
type Loader interface {
	ChainID() *big.Int
	TargetHeight() uint32
	Data(cont common.Address, addr common.Address, name []byte) []byte
	ContractDefine(addr common.Address) *ContractDefine
	IsContract(addr common.Address) bool
	MainToken() *common.Address
	AddrSeq(addr common.Address) uint64
}

// emptyLoader backs a context with no committed state.
// Used for genesis generation and contract tests.
type emptyLoader struct {
	chainID *big.Int
}

func newEmptyLoader() Loader {
	return &emptyLoader{
		chainID: big.NewInt(1),
	}
}

func (el *emptyLoader) ChainID() *big.Int {
	return el.chainID
}

func (el *emptyLoader) TargetHeight() uint32 {
	return 0
}

func (el *emptyLoader) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return nil
}

func (el *emptyLoader) ContractDefine(addr common.Address) *ContractDefine {
	return nil
}

func (el *emptyLoader) IsContract(addr common.Address) bool {
	return false
}

func (el *emptyLoader) MainToken() *common.Address {
	return nil
}

func (el *emptyLoader) AddrSeq(addr common.Address) uint64 {
	return 0
}
