package treasury

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/contract/util"
	"github.com/launchlabs/launchpad/core/types"
)

// TreasuryContract accumulates platform fees and graduation shares.
// Tokens are transferred to the treasury address directly; Deposit only
// records who sent what so the collected totals can be inspected.
type TreasuryContract struct {
	addr   common.Address
	master common.Address
}

func (cont *TreasuryContract) Address() common.Address {
	return cont.addr
}

func (cont *TreasuryContract) Master() common.Address {
	return cont.master
}

func (cont *TreasuryContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *TreasuryContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &TreasuryContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	return nil
}

func (cont *TreasuryContract) owner(cc types.ContractLoader) common.Address {
	bs := cc.ContractData([]byte{tagOwner})
	if len(bs) == 0 {
		return cont.master
	}
	return common.BytesToAddress(bs)
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Deposit records an inbound amount of the token from cc.From().
// The transfer itself happens on the token ledger before this call.
func (cont *TreasuryContract) Deposit(cc *types.ContractContext, token common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.New("Treasury: INVALID_DEPOSIT_AMOUNT")
	}

	total := amount.NewAmountFromBytes(cc.ContractData(makeCollectedKey(token)))
	cc.SetContractData(makeCollectedKey(token), total.Add(am).Bytes())

	dep := amount.NewAmountFromBytes(cc.AccountData(cc.From(), makeDepositKey(token)))
	cc.SetAccountData(cc.From(), makeDepositKey(token), dep.Add(am).Bytes())
	return nil
}

// Withdraw sends collected funds to the target. Owner only.
func (cont *TreasuryContract) Withdraw(cc *types.ContractContext, token common.Address, to common.Address, am *amount.Amount) error {
	if cc.From() != cont.owner(cc) {
		return errors.New("Treasury: FORBIDDEN")
	}
	if to == common.ZeroAddr {
		return errors.New("Treasury: WITHDRAW_TO_ZEROADDRESS")
	}
	if !am.IsPlus() {
		return errors.New("Treasury: INVALID_WITHDRAW_AMOUNT")
	}
	bal, err := util.TokenBalanceOf(cc, token, cont.addr)
	if err != nil {
		return err
	}
	if bal.Cmp(am.Int) < 0 {
		return errors.New("Treasury: INSUFFICIENT_BALANCE")
	}
	return util.SafeTransfer(cc, token, to, am.Int)
}

func (cont *TreasuryContract) SetOwner(cc *types.ContractContext, newOwner common.Address) error {
	if cc.From() != cont.owner(cc) {
		return errors.New("Treasury: FORBIDDEN")
	}
	if newOwner == common.ZeroAddr {
		return errors.New("Treasury: NEW_OWNER_ZEROADDRESS")
	}
	cc.SetContractData([]byte{tagOwner}, newOwner[:])
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *TreasuryContract) Owner(cc types.ContractLoader) common.Address {
	return cont.owner(cc)
}

func (cont *TreasuryContract) Collected(cc types.ContractLoader, token common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData(makeCollectedKey(token)))
}

func (cont *TreasuryContract) DepositOf(cc types.ContractLoader, source common.Address, token common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(source, makeDepositKey(token)))
}
