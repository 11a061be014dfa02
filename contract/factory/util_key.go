package factory

import (
	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/bin"
)

var (
	//owner
	tagOwner = byte(0x01)

	//shared collaborators of every launch
	tagTreasury       = byte(0x02)
	tagLiquidityVault = byte(0x03)

	//deployable classes
	tagTokenClassID = byte(0x04)
	tagCurveClassID = byte(0x05)

	//registry
	tagLaunchCount = byte(0x10)
	tagLaunchToken = byte(0x11)
	tagCurveOfToken = byte(0x12)
)

func makeLaunchTokenKey(index uint32) []byte {
	bs := make([]byte, 5)
	bs[0] = tagLaunchToken
	copy(bs[1:], bin.Uint32Bytes(index))
	return bs
}

func makeCurveOfTokenKey(token common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagCurveOfToken
	copy(bs[1:], token[:])
	return bs
}
