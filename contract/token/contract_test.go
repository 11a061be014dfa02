package token_test

import (
	"testing"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/common/bin"
	"github.com/launchlabs/launchpad/contract/token"
	"github.com/launchlabs/launchpad/contract/util"
	"github.com/launchlabs/launchpad/core/types"
)

var (
	admin = common.HexToAddress("0x0000000000000000000000000000000000000001")
	alice = common.HexToAddress("0x00000000000000000000000000000000000000Aa")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000Bb")
)

func deployToken(t *testing.T, ctx *types.Context, supply *amount.Amount) common.Address {
	classID, err := types.RegisterContractType(&token.TokenContract{})
	if err != nil {
		t.Fatal(err)
	}
	arg := &token.TokenContractConstruction{
		Name:   "TestToken",
		Symbol: "TEST",
		InitialSupplyMap: map[common.Address]*amount.Amount{
			admin: supply,
		},
	}
	bs, _, err := bin.WriterToBytes(arg)
	if err != nil {
		t.Fatal(err)
	}
	cont, err := ctx.DeployContract(admin, classID, bs)
	if err != nil {
		t.Fatal(err)
	}
	return cont.Address()
}

func balanceOf(t *testing.T, ctx *types.Context, tokenAddr, addr common.Address) *amount.Amount {
	is, err := util.Exec(ctx, common.Address{}, tokenAddr, "BalanceOf", []interface{}{addr})
	if err != nil {
		t.Fatal(err)
	}
	return is[0].(*amount.Amount)
}

func TestTokenTransfer(t *testing.T) {
	ctx := types.NewEmptyContext()
	tokenAddr := deployToken(t, ctx, amount.NewAmount(10000, 0))

	if _, err := util.Exec(ctx, admin, tokenAddr, "Transfer", []interface{}{alice, amount.NewAmount(100, 0)}); err != nil {
		t.Fatal(err)
	}
	if bal := balanceOf(t, ctx, tokenAddr, alice); !bal.Equal(amount.NewAmount(100, 0)) {
		t.Fatalf("alice balance = %v, want 100", bal)
	}
	if bal := balanceOf(t, ctx, tokenAddr, admin); !bal.Equal(amount.NewAmount(9900, 0)) {
		t.Fatalf("admin balance = %v, want 9900", bal)
	}

	// over balance
	if _, err := util.Exec(ctx, alice, tokenAddr, "Transfer", []interface{}{bob, amount.NewAmount(101, 0)}); err == nil {
		t.Fatal("transfer over balance must fail")
	}
	if bal := balanceOf(t, ctx, tokenAddr, bob); !bal.IsZero() {
		t.Fatalf("bob balance = %v, want 0", bal)
	}
}

func TestTokenApproveTransferFrom(t *testing.T) {
	ctx := types.NewEmptyContext()
	tokenAddr := deployToken(t, ctx, amount.NewAmount(10000, 0))

	if _, err := util.Exec(ctx, admin, tokenAddr, "Approve", []interface{}{alice, amount.NewAmount(50, 0)}); err != nil {
		t.Fatal(err)
	}
	if _, err := util.Exec(ctx, alice, tokenAddr, "TransferFrom", []interface{}{admin, bob, amount.NewAmount(30, 0)}); err != nil {
		t.Fatal(err)
	}
	if bal := balanceOf(t, ctx, tokenAddr, bob); !bal.Equal(amount.NewAmount(30, 0)) {
		t.Fatalf("bob balance = %v, want 30", bal)
	}

	// allowance is reduced
	if _, err := util.Exec(ctx, alice, tokenAddr, "TransferFrom", []interface{}{admin, bob, amount.NewAmount(30, 0)}); err == nil {
		t.Fatal("transferFrom over allowance must fail")
	}
}

func TestTokenMintGating(t *testing.T) {
	ctx := types.NewEmptyContext()
	tokenAddr := deployToken(t, ctx, amount.NewAmount(1, 0))

	if _, err := util.Exec(ctx, alice, tokenAddr, "Mint", []interface{}{alice, amount.NewAmount(1, 0)}); err == nil {
		t.Fatal("mint from non minter must fail")
	}
	if _, err := util.Exec(ctx, admin, tokenAddr, "SetMinter", []interface{}{alice, true}); err != nil {
		t.Fatal(err)
	}
	if _, err := util.Exec(ctx, alice, tokenAddr, "Mint", []interface{}{alice, amount.NewAmount(1, 0)}); err != nil {
		t.Fatal(err)
	}
	if bal := balanceOf(t, ctx, tokenAddr, alice); !bal.Equal(amount.NewAmount(1, 0)) {
		t.Fatalf("alice balance = %v, want 1", bal)
	}
}

func TestTokenPause(t *testing.T) {
	ctx := types.NewEmptyContext()
	tokenAddr := deployToken(t, ctx, amount.NewAmount(10000, 0))

	if _, err := util.Exec(ctx, admin, tokenAddr, "Pause", []interface{}{}); err != nil {
		t.Fatal(err)
	}
	if _, err := util.Exec(ctx, admin, tokenAddr, "Transfer", []interface{}{alice, amount.NewAmount(1, 0)}); err == nil {
		t.Fatal("transfer while paused must fail")
	}
	if _, err := util.Exec(ctx, admin, tokenAddr, "Unpause", []interface{}{}); err != nil {
		t.Fatal(err)
	}
	if _, err := util.Exec(ctx, admin, tokenAddr, "Transfer", []interface{}{alice, amount.NewAmount(1, 0)}); err != nil {
		t.Fatal(err)
	}
}
