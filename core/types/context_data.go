package types

import (
	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/bin"
	"github.com/launchlabs/launchpad/common/hash"
	"github.com/pkg/errors"
)

// ContextData is a state data of the context
type ContextData struct {
	cache             *contextCache
	Parent            *ContextData
	mainToken         *common.Address
	AddrSeqMap        map[common.Address]uint64
	ContractDefineMap map[common.Address]*ContractDefine
	DataMap           map[string][]byte
	DeletedDataMap    map[string]bool
	isTop             bool
	seq               uint32
}

// NewContextData returns a ContextData
func NewContextData(cache *contextCache, Parent *ContextData) *ContextData {
	ctd := &ContextData{
		cache:             cache,
		Parent:            Parent,
		AddrSeqMap:        map[common.Address]uint64{},
		ContractDefineMap: map[common.Address]*ContractDefine{},
		DataMap:           map[string][]byte{},
		DeletedDataMap:    map[string]bool{},
		isTop:             true,
	}
	return ctd
}

// UnsafeGetMainToken returns the MainToken or nil
func (ctd *ContextData) UnsafeGetMainToken() *common.Address {
	return ctd.mainToken
}

// MainToken returns the MainToken
func (ctd *ContextData) MainToken() *common.Address {
	if ctd.mainToken != nil {
		return ctd.mainToken
	}
	var mainToken *common.Address
	if ctd.Parent != nil {
		mainToken = ctd.Parent.MainToken()
	} else {
		mainToken = ctd.cache.MainToken()
	}
	if ctd.isTop {
		ctd.mainToken = mainToken
	}
	return mainToken
}

// SetMainToken is set the maintoken
func (ctd *ContextData) SetMainToken(addr common.Address) {
	ctd.mainToken = &addr
}

// IsContract returns is the contract
func (ctd *ContextData) IsContract(addr common.Address) bool {
	if _, has := ctd.ContractDefineMap[addr]; has {
		return true
	} else if ctd.Parent != nil {
		return ctd.Parent.IsContract(addr)
	} else {
		return ctd.cache.IsContract(addr)
	}
}

// ContractDefine returns the contract define of the address
func (ctd *ContextData) ContractDefine(addr common.Address) *ContractDefine {
	if cd, has := ctd.ContractDefineMap[addr]; has {
		return cd
	} else if ctd.Parent != nil {
		return ctd.Parent.ContractDefine(addr)
	} else {
		return ctd.cache.ContractDefine(addr)
	}
}

// Contract returns the contract
func (ctd *ContextData) Contract(addr common.Address) (Contract, error) {
	cd := ctd.ContractDefine(addr)
	if cd == nil {
		return nil, errors.WithStack(ErrNotExistContract)
	}
	return CreateContract(cd)
}

// NextSeq returns the next squence number
func (ctd *ContextData) NextSeq() uint32 {
	ctd.seq++
	return ctd.seq
}

// DeployContract deploy contract to the chain
func (ctd *ContextData) DeployContract(sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	if !IsValidClassID(ClassID) {
		return nil, errors.WithStack(ErrInvalidClassID)
	}

	base := make([]byte, 1+common.AddressLength+8+4)
	base[0] = 0xff
	copy(base[1:], sender[:])
	copy(base[1+common.AddressLength:], bin.Uint64Bytes(ClassID))
	copy(base[1+common.AddressLength+8:], bin.Uint32Bytes(ctd.NextSeq()))
	height := ctd.cache.ctx.TargetHeight()
	if height > 0 {
		bs := bin.Uint32Bytes(height)
		base = append(base, bs...)
	}
	h := hash.Hash(base)
	addr := common.BytesToAddress(h[12:])
	return ctd.DeployContractWithAddress(sender, ClassID, addr, Args)
}

// DeployContractWithAddress deploy contract to the chain with address
func (ctd *ContextData) DeployContractWithAddress(sender common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	cd := &ContractDefine{
		Address: addr,
		Owner:   sender,
		ClassID: ClassID,
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	ctd.ContractDefineMap[addr] = cd
	if err := cont.OnCreate(ctd.cache.ctx.ContractContext(cont, addr), Args); err != nil {
		return nil, err
	}
	return cont, nil
}

// Data returns the data
func (ctd *ContextData) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := string(cont[:]) + string(addr[:]) + string(name)
	if _, has := ctd.DeletedDataMap[key]; has {
		return nil
	}
	if value, has := ctd.DataMap[key]; has {
		return value
	}
	var value []byte
	if ctd.Parent != nil {
		value = ctd.Parent.Data(cont, addr, name)
	} else {
		value = ctd.cache.Data(cont, addr, name)
	}
	if len(value) == 0 {
		return nil
	}
	if ctd.isTop {
		nvalue := make([]byte, len(value))
		copy(nvalue, value)
		return nvalue
	}
	return value
}

// SetData inserts the data
func (ctd *ContextData) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	key := string(cont[:]) + string(addr[:]) + string(name)
	if len(value) == 0 {
		delete(ctd.DataMap, key)
		ctd.DeletedDataMap[key] = true
	} else {
		delete(ctd.DeletedDataMap, key)
		ctd.DataMap[key] = value
	}
}

// AddrSeq returns the number of txs using the UseSeq flag of the address.
func (ctd *ContextData) AddrSeq(addr common.Address) uint64 {
	var seq uint64
	var has bool
	if seq, has = ctd.AddrSeqMap[addr]; has {
		return seq
	}

	if ctd.Parent != nil {
		seq = ctd.Parent.AddrSeq(addr)
	} else {
		seq = ctd.cache.AddrSeq(addr)
	}
	if ctd.isTop {
		ctd.AddrSeqMap[addr] = seq
	}
	return seq
}

// AddAddrSeq update the sequence of the target address
func (ctd *ContextData) AddAddrSeq(addr common.Address) {
	ctd.AddrSeqMap[addr] = ctd.AddrSeq(addr) + 1
}
