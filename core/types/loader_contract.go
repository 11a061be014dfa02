package types

import "github.com/launchlabs/launchpad/common"

// ContractLoader defines read-only state access for contract views
type ContractLoader interface {
	TargetHeight() uint32
	From() common.Address
	MainToken() *common.Address
	ContractData(name []byte) []byte
	AccountData(addr common.Address, name []byte) []byte
	IsContract(addr common.Address) bool
}
