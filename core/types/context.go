package types

import (
	"math/big"

	"github.com/launchlabs/launchpad/common"
)

// Context is an intermediate in-memory state using the context data stack
type Context struct {
	loader          Loader
	genTargetHeight uint32
	cache           *contextCache
	stack           []*ContextData
	events          []*Event
	eventN          uint16
}

// NewContext returns a Context
func NewContext(loader Loader) *Context {
	ctx := &Context{
		loader:          loader,
		genTargetHeight: loader.TargetHeight(),
	}
	ctx.cache = newContextCache(ctx)
	ctx.stack = []*ContextData{NewContextData(ctx.cache, nil)}
	return ctx
}

// NewEmptyContext returns a Context over no committed state
func NewEmptyContext() *Context {
	return NewContext(newEmptyLoader())
}

// ChainID returns the id of the chain
func (ctx *Context) ChainID() *big.Int {
	return ctx.loader.ChainID()
}

// TargetHeight returns the recorded target height when context generation
func (ctx *Context) TargetHeight() uint32 {
	return ctx.genTargetHeight
}

// Top returns the top snapshot
func (ctx *Context) Top() *ContextData {
	return ctx.stack[len(ctx.stack)-1]
}

// MainToken returns the reserve token address of the chain
func (ctx *Context) MainToken() *common.Address {
	return ctx.Top().MainToken()
}

// SetMainToken sets the reserve token address of the chain
func (ctx *Context) SetMainToken(addr common.Address) {
	ctx.Top().SetMainToken(addr)
}

// IsContract returns is the contract
func (ctx *Context) IsContract(addr common.Address) bool {
	return ctx.Top().IsContract(addr)
}

// Contract returns the contract instance of the address
func (ctx *Context) Contract(addr common.Address) (Contract, error) {
	return ctx.Top().Contract(addr)
}

// ContractDefine returns the contract define of the address
func (ctx *Context) ContractDefine(addr common.Address) *ContractDefine {
	return ctx.Top().ContractDefine(addr)
}

// DeployContract deploy contract to the chain
func (ctx *Context) DeployContract(sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	return ctx.Top().DeployContract(sender, ClassID, Args)
}

// Data returns the data from the top snapshot
func (ctx *Context) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return ctx.Top().Data(cont, addr, name)
}

// SetData inserts the data to the top snapshot
func (ctx *Context) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	ctx.Top().SetData(cont, addr, name, value)
}

// AddrSeq returns the sequence of the target address
func (ctx *Context) AddrSeq(addr common.Address) uint64 {
	return ctx.Top().AddrSeq(addr)
}

// AddAddrSeq update the sequence of the target address
func (ctx *Context) AddAddrSeq(addr common.Address) {
	ctx.Top().AddAddrSeq(addr)
}

// ContractContext returns a ContractContext of the contract
func (ctx *Context) ContractContext(cont Contract, from common.Address) *ContractContext {
	cc := &ContractContext{
		cont: cont.Address(),
		from: from,
		ctx:  ctx,
	}
	return cc
}

// EmitEvent appends the event to the event list.
// Events are not stacked with the snapshots. An emission right before
// an abort is kept even though the state change it reports is reverted.
func (ctx *Context) EmitEvent(en *Event) {
	en.Index = ctx.NextEventN()
	ctx.events = append(ctx.events, en)
}

// NextEventN returns the next event sequence number
func (ctx *Context) NextEventN() uint16 {
	n := ctx.eventN
	ctx.eventN++
	return n
}

// Events returns the emitted events since context generation
func (ctx *Context) Events() []*Event {
	return ctx.events
}

// Snapshot push a snapshot and returns the snapshot number of it
func (ctx *Context) Snapshot() int {
	ctd := NewContextData(ctx.cache, ctx.Top())
	ctx.stack[len(ctx.stack)-1].isTop = false
	ctx.stack = append(ctx.stack, ctd)
	return len(ctx.stack)
}

// Revert removes snapshots after the snapshot number
func (ctx *Context) Revert(sn int) {
	if len(ctx.stack) >= sn {
		ctx.stack = ctx.stack[:sn-1]
	}
	ctx.stack[len(ctx.stack)-1].isTop = true
}

// Commit apply snapshots to the top after the snapshot number
func (ctx *Context) Commit(sn int) {
	for len(ctx.stack) >= sn {
		ctd := ctx.Top()
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		top := ctx.Top()
		if ctd.mainToken != nil {
			top.mainToken = ctd.mainToken
		}
		for addr, seq := range ctd.AddrSeqMap {
			top.AddrSeqMap[addr] = seq
		}
		for addr, cd := range ctd.ContractDefineMap {
			top.ContractDefineMap[addr] = cd
		}
		for key, value := range ctd.DataMap {
			delete(top.DeletedDataMap, key)
			top.DataMap[key] = value
		}
		for key := range ctd.DeletedDataMap {
			delete(top.DataMap, key)
			top.DeletedDataMap[key] = true
		}
		if ctd.seq > top.seq {
			top.seq = ctd.seq
		}
	}
	ctx.stack[len(ctx.stack)-1].isTop = true
}

// StackSize returns the size of the context data stack
func (ctx *Context) StackSize() int {
	return len(ctx.stack)
}
