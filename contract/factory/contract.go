package factory

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/common/bin"
	"github.com/launchlabs/launchpad/contract/curve"
	"github.com/launchlabs/launchpad/contract/token"
	"github.com/launchlabs/launchpad/contract/util"
	"github.com/launchlabs/launchpad/core/types"
)

// FactoryContract deploys launches: a token and its bonding curve as
// one pair, registered so either side can be looked up from the other.
// The treasury and the liquidity vault are shared by every launch.
type FactoryContract struct {
	addr   common.Address
	master common.Address
}

func (cont *FactoryContract) Address() common.Address {
	return cont.addr
}

func (cont *FactoryContract) Master() common.Address {
	return cont.master
}

func (cont *FactoryContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *FactoryContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FactoryContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Treasury == common.ZeroAddr {
		return errors.New("Factory: TREASURY_ZEROADDRESS")
	}
	if data.LiquidityVault == common.ZeroAddr {
		return errors.New("Factory: VAULT_ZEROADDRESS")
	}
	if !types.IsValidClassID(data.TokenClassID) || !types.IsValidClassID(data.CurveClassID) {
		return errors.New("Factory: INVALID_CLASS_ID")
	}
	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	cc.SetContractData([]byte{tagTreasury}, data.Treasury[:])
	cc.SetContractData([]byte{tagLiquidityVault}, data.LiquidityVault[:])
	cc.SetContractData([]byte{tagTokenClassID}, bin.Uint64Bytes(data.TokenClassID))
	cc.SetContractData([]byte{tagCurveClassID}, bin.Uint64Bytes(data.CurveClassID))
	return nil
}

//////////////////////////////////////////////////
// Factory Contract : modifier
//////////////////////////////////////////////////

func (cont *FactoryContract) onlyOwner(cc *types.ContractContext) error {
	if cc.From() != cont.owner(cc) {
		return errors.New("Factory: FORBIDDEN")
	}
	return nil
}

//////////////////////////////////////////////////
// Factory Contract : private reader functions
//////////////////////////////////////////////////

func (cont *FactoryContract) owner(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagOwner}))
}
func (cont *FactoryContract) treasury(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagTreasury}))
}
func (cont *FactoryContract) liquidityVault(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagLiquidityVault}))
}
func (cont *FactoryContract) tokenClassID(cc types.ContractLoader) uint64 {
	return bin.Uint64(cc.ContractData([]byte{tagTokenClassID}))
}
func (cont *FactoryContract) curveClassID(cc types.ContractLoader) uint64 {
	return bin.Uint64(cc.ContractData([]byte{tagCurveClassID}))
}
func (cont *FactoryContract) launchCount(cc types.ContractLoader) uint32 {
	bs := cc.ContractData([]byte{tagLaunchCount})
	if len(bs) == 4 {
		return bin.Uint32(bs)
	}
	return 0
}

//////////////////////////////////////////////////
// Factory Contract : public writer functions
//////////////////////////////////////////////////

// CreateLaunch deploys the token and its curve and seeds the curve
// with the whole issuance. The caller becomes the launch creator and
// takes the creator share at graduation.
func (cont *FactoryContract) CreateLaunch(cc *types.ContractContext, name string, symbol string, basePrice *amount.Amount) (common.Address, common.Address, error) {
	if len(name) == 0 || len(symbol) == 0 {
		return common.ZeroAddr, common.ZeroAddr, errors.New("Factory: EMPTY_NAME")
	}
	if basePrice == nil || !basePrice.IsPlus() {
		return common.ZeroAddr, common.ZeroAddr, errors.New("Factory: INVALID_BASE_PRICE")
	}
	creator := cc.From()
	if creator == common.ZeroAddr {
		return common.ZeroAddr, common.ZeroAddr, errors.New("Factory: CREATOR_ZEROADDRESS")
	}

	tokenArgs, _, err := bin.WriterToBytes(&token.TokenContractConstruction{
		Name:   name,
		Symbol: symbol,
	})
	if err != nil {
		return common.ZeroAddr, common.ZeroAddr, err
	}
	tokenCont, err := cc.DeployContract(cont.addr, cont.tokenClassID(cc), tokenArgs)
	if err != nil {
		return common.ZeroAddr, common.ZeroAddr, err
	}
	tokenAddr := tokenCont.Address()

	curveArgs, _, err := bin.WriterToBytes(&curve.CurveContractConstruction{
		Owner:          cont.owner(cc),
		Token:          tokenAddr,
		Creator:        creator,
		Treasury:       cont.treasury(cc),
		LiquidityVault: cont.liquidityVault(cc),
		BasePrice:      basePrice,
	})
	if err != nil {
		return common.ZeroAddr, common.ZeroAddr, err
	}
	curveCont, err := cc.DeployContract(cont.addr, cont.curveClassID(cc), curveArgs)
	if err != nil {
		return common.ZeroAddr, common.ZeroAddr, err
	}
	curveAddr := curveCont.Address()

	// the sellable tranche plus the pool reserve both sit on the
	// curve, whatever remains at graduation moves to the vault
	if err := util.TokenMint(cc, tokenAddr, curveAddr, curve.TotalIssuance.Int); err != nil {
		return common.ZeroAddr, common.ZeroAddr, err
	}

	index := cont.launchCount(cc)
	cc.SetContractData(makeLaunchTokenKey(index), tokenAddr[:])
	cc.SetContractData(makeCurveOfTokenKey(tokenAddr), curveAddr[:])
	cc.SetContractData([]byte{tagLaunchCount}, bin.Uint32Bytes(index+1))

	emitLaunchCreated(cc, &LaunchCreatedEvent{
		Token:     tokenAddr,
		Curve:     curveAddr,
		Creator:   creator,
		Name:      name,
		Symbol:    symbol,
		BasePrice: basePrice,
	})
	return tokenAddr, curveAddr, nil
}

func (cont *FactoryContract) SetOwner(cc *types.ContractContext, newOwner common.Address) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if newOwner == common.ZeroAddr {
		return errors.New("Factory: NEW_OWNER_ZEROADDRESS")
	}
	cc.SetContractData([]byte{tagOwner}, newOwner[:])
	return nil
}

func (cont *FactoryContract) SetTreasury(cc *types.ContractContext, newTreasury common.Address) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if newTreasury == common.ZeroAddr {
		return errors.New("Factory: TREASURY_ZEROADDRESS")
	}
	cc.SetContractData([]byte{tagTreasury}, newTreasury[:])
	return nil
}

func (cont *FactoryContract) SetLiquidityVault(cc *types.ContractContext, newVault common.Address) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if newVault == common.ZeroAddr {
		return errors.New("Factory: VAULT_ZEROADDRESS")
	}
	cc.SetContractData([]byte{tagLiquidityVault}, newVault[:])
	return nil
}

//////////////////////////////////////////////////
// Factory Contract : public reader functions
//////////////////////////////////////////////////

func (cont *FactoryContract) Owner(cc types.ContractLoader) common.Address {
	return cont.owner(cc)
}

func (cont *FactoryContract) Treasury(cc types.ContractLoader) common.Address {
	return cont.treasury(cc)
}

func (cont *FactoryContract) LiquidityVault(cc types.ContractLoader) common.Address {
	return cont.liquidityVault(cc)
}

func (cont *FactoryContract) LaunchCount(cc types.ContractLoader) uint32 {
	return cont.launchCount(cc)
}

func (cont *FactoryContract) LaunchAt(cc types.ContractLoader, index uint32) (common.Address, common.Address, error) {
	bs := cc.ContractData(makeLaunchTokenKey(index))
	if len(bs) != common.AddressLength {
		return common.ZeroAddr, common.ZeroAddr, errors.New("Factory: LAUNCH_NOT_FOUND")
	}
	tokenAddr := common.BytesToAddress(bs)
	curveAddr, err := cont.CurveOf(cc, tokenAddr)
	if err != nil {
		return common.ZeroAddr, common.ZeroAddr, err
	}
	return tokenAddr, curveAddr, nil
}

func (cont *FactoryContract) CurveOf(cc types.ContractLoader, tokenAddr common.Address) (common.Address, error) {
	bs := cc.ContractData(makeCurveOfTokenKey(tokenAddr))
	if len(bs) != common.AddressLength {
		return common.ZeroAddr, errors.New("Factory: LAUNCH_NOT_FOUND")
	}
	return common.BytesToAddress(bs), nil
}
