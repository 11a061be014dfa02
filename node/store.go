package node

import (
	"bytes"
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/bin"
	"github.com/launchlabs/launchpad/core/keydb"
	"github.com/launchlabs/launchpad/core/types"
)

var (
	tagData      = byte(0x01)
	tagContract  = byte(0x02)
	tagAddrSeq   = byte(0x03)
	tagMainToken = byte(0x04)
	tagHeight    = byte(0x05)
	tagMeta      = byte(0x06)
)

// Store persists contract state and serves it back as a types.Loader.
// Every committed context becomes one height.
type Store struct {
	sync.Mutex
	db      *keydb.DB
	chainID *big.Int
	height  uint32
}

// NewStore returns a Store
func NewStore(chainID *big.Int) *Store {
	st := &Store{
		db:      keydb.New(),
		chainID: chainID,
	}
	if bs := st.db.Get([]byte{tagHeight}); len(bs) == 4 {
		st.height = bin.Uint32(bs)
	}
	return st
}

// Close releases the underlying database
func (st *Store) Close() error {
	return st.db.Close()
}

// ChainID returns the chain id of the store
func (st *Store) ChainID() *big.Int {
	return st.chainID
}

// Height returns the last committed height
func (st *Store) Height() uint32 {
	st.Lock()
	defer st.Unlock()
	return st.height
}

// TargetHeight returns the height the next context builds
func (st *Store) TargetHeight() uint32 {
	st.Lock()
	defer st.Unlock()
	return st.height + 1
}

// Data returns the data of the contract state slot
func (st *Store) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return st.db.Get(toDataKey(string(cont[:]) + string(addr[:]) + string(name)))
}

// ContractDefine returns the contract define of the address
func (st *Store) ContractDefine(addr common.Address) *types.ContractDefine {
	bs := st.db.Get(append([]byte{tagContract}, addr[:]...))
	if len(bs) == 0 {
		return nil
	}
	cd := &types.ContractDefine{}
	if _, err := cd.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil
	}
	return cd
}

// IsContract checks the address is a contract
func (st *Store) IsContract(addr common.Address) bool {
	return st.db.Has(append([]byte{tagContract}, addr[:]...))
}

// MainToken returns the reserve asset of the chain or nil
func (st *Store) MainToken() *common.Address {
	bs := st.db.Get([]byte{tagMainToken})
	if len(bs) != common.AddressLength {
		return nil
	}
	addr := common.BytesToAddress(bs)
	return &addr
}

// AddrSeq returns the deploy sequence of the address
func (st *Store) AddrSeq(addr common.Address) uint64 {
	bs := st.db.Get(append([]byte{tagAddrSeq}, addr[:]...))
	if len(bs) != 8 {
		return 0
	}
	return bin.Uint64(bs)
}

// Meta returns a node level metadata value
func (st *Store) Meta(name string) []byte {
	return st.db.Get(append([]byte{tagMeta}, []byte(name)...))
}

// SetMeta stores a node level metadata value
func (st *Store) SetMeta(name string, value []byte) error {
	return st.db.Set(append([]byte{tagMeta}, []byte(name)...), value)
}

// StoreContext flushes the top level changes of the context and moves
// the store one height forward. The context snapshot stack must be
// fully committed before flushing.
func (st *Store) StoreContext(ctx *types.Context) error {
	st.Lock()
	defer st.Unlock()

	if ctx.StackSize() != 1 {
		return errors.WithStack(ErrDirtyContext)
	}
	top := ctx.Top()

	for addr, cd := range top.ContractDefineMap {
		bs, _, err := bin.WriterToBytes(cd)
		if err != nil {
			return err
		}
		if err := st.db.Set(append([]byte{tagContract}, addr[:]...), bs); err != nil {
			return err
		}
	}
	for key, value := range top.DataMap {
		if err := st.db.Set(toDataKey(key), value); err != nil {
			return err
		}
	}
	for key := range top.DeletedDataMap {
		if err := st.db.Delete(toDataKey(key)); err != nil {
			return err
		}
	}
	for addr, seq := range top.AddrSeqMap {
		if err := st.db.Set(append([]byte{tagAddrSeq}, addr[:]...), bin.Uint64Bytes(seq)); err != nil {
			return err
		}
	}
	if mt := top.UnsafeGetMainToken(); mt != nil {
		if err := st.db.Set([]byte{tagMainToken}, mt[:]); err != nil {
			return err
		}
	}

	st.height++
	return st.db.Set([]byte{tagHeight}, bin.Uint32Bytes(st.height))
}

func toDataKey(key string) []byte {
	return append([]byte{tagData}, []byte(key)...)
}
