package treasury

import (
	"github.com/launchlabs/launchpad/common"
)

var (
	tagOwner     = byte(0x01)
	tagCollected = byte(0x02)
	tagDeposit   = byte(0x10)
)

func makeCollectedKey(token common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagCollected
	copy(bs[1:], token[:])
	return bs
}

func makeDepositKey(token common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagDeposit
	copy(bs[1:], token[:])
	return bs
}
