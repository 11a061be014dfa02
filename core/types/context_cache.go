package types

import (
	"github.com/launchlabs/launchpad/common"
)

type contextCache struct {
	ctx         *Context
	SeqMap      map[common.Address]uint64
	mainToken   *common.Address
	ContractMap map[common.Address]*ContractDefine
	DataMap     map[string][]byte
}

func newContextCache(ctx *Context) *contextCache {
	return &contextCache{
		ctx:         ctx,
		SeqMap:      map[common.Address]uint64{},
		ContractMap: map[common.Address]*ContractDefine{},
		DataMap:     map[string][]byte{},
	}
}

// MainToken returns the MainToken
func (cc *contextCache) MainToken() *common.Address {
	if cc.mainToken == nil {
		cc.mainToken = cc.ctx.loader.MainToken()
	}
	return cc.mainToken
}

// IsContract returns is the contract
func (cc *contextCache) IsContract(addr common.Address) bool {
	if _, has := cc.ContractMap[addr]; has {
		return true
	}
	return cc.ctx.loader.IsContract(addr)
}

// ContractDefine returns the contract define of the address
func (cc *contextCache) ContractDefine(addr common.Address) *ContractDefine {
	if cd, has := cc.ContractMap[addr]; has {
		return cd
	}
	cd := cc.ctx.loader.ContractDefine(addr)
	if cd != nil {
		cc.ContractMap[addr] = cd
	}
	return cd
}

// Data returns the data
func (cc *contextCache) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := string(cont[:]) + string(addr[:]) + string(name)
	if value, has := cc.DataMap[key]; has {
		return value
	}
	value := cc.ctx.loader.Data(cont, addr, name)
	cc.DataMap[key] = value
	return value
}

// AddrSeq returns the sequence of the address
func (cc *contextCache) AddrSeq(addr common.Address) uint64 {
	seq, has := cc.SeqMap[addr]
	if has {
		return seq
	}
	seq = cc.ctx.loader.AddrSeq(addr)
	cc.SeqMap[addr] = seq
	return seq
}
