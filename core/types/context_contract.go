package types

import (
	"math/big"

	"github.com/launchlabs/launchpad/common"
)

// ContractContext is an context for the contract
type ContractContext struct {
	cont common.Address
	from common.Address
	ctx  *Context
	Exec ExecFunc
}

// ChainID returns the id of the chain
func (cc *ContractContext) ChainID() *big.Int {
	return cc.ctx.ChainID()
}

// TargetHeight returns the recorded target height when ContractContext generation
func (cc *ContractContext) TargetHeight() uint32 {
	return cc.ctx.TargetHeight()
}

// From returns current signer address
func (cc *ContractContext) From() common.Address {
	return cc.from
}

// MainToken returns the MainToken
func (cc *ContractContext) MainToken() *common.Address {
	return cc.ctx.Top().MainToken()
}

// ContractData returns the contract data from the top snapshot
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, common.Address{}, name)
}

// SetContractData inserts the contract data to the top snapshot
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.Top().SetData(cc.cont, common.Address{}, name, value)
}

// AccountData returns the account data from the top snapshot
func (cc *ContractContext) AccountData(addr common.Address, name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, addr, name)
}

// SetAccountData inserts the account data to the top snapshot
func (cc *ContractContext) SetAccountData(addr common.Address, name []byte, value []byte) {
	cc.ctx.Top().SetData(cc.cont, addr, name, value)
}

// DeployContract deploy contract to the chain
func (cc *ContractContext) DeployContract(owner common.Address, ClassID uint64, Args []byte) (Contract, error) {
	return cc.ctx.Top().DeployContract(owner, ClassID, Args)
}

// DeployContractWithAddress deploy contract to the chain with address
func (cc *ContractContext) DeployContractWithAddress(owner common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	return cc.ctx.Top().DeployContractWithAddress(owner, ClassID, addr, Args)
}

// EmitEvent appends the event to the context event list
func (cc *ContractContext) EmitEvent(Type EventType, Result []byte) {
	cc.ctx.EmitEvent(&Event{
		Type:   Type,
		Result: Result,
	})
}

// AddrSeq returns the sequence of the target account
func (cc *ContractContext) AddrSeq(addr common.Address) uint64 {
	return cc.ctx.Top().AddrSeq(addr)
}

// AddAddrSeq update the sequence of the target account
func (cc *ContractContext) AddAddrSeq(addr common.Address) {
	cc.ctx.Top().AddAddrSeq(addr)
}

// NextSeq returns the next squence number
func (cc *ContractContext) NextSeq() uint32 {
	return cc.ctx.Top().NextSeq()
}

// IsContract returns is the contract
func (cc *ContractContext) IsContract(addr common.Address) bool {
	return cc.ctx.Top().IsContract(addr)
}
