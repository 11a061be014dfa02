package types_test

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/common/bin"
	"github.com/launchlabs/launchpad/core/types"
)

// counterContract is a minimal contract used to drive the interactor
type counterContract struct {
	addr   common.Address
	master common.Address
}

func (cont *counterContract) Address() common.Address {
	return cont.addr
}

func (cont *counterContract) Master() common.Address {
	return cont.master
}

func (cont *counterContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *counterContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	cc.SetContractData([]byte{0x01}, Args)
	return nil
}

func (cont *counterContract) Front() interface{} {
	return &counterFront{cont: cont}
}

type counterFront struct {
	cont *counterContract
}

func (f *counterFront) Add(cc *types.ContractContext, delta *amount.Amount) (*amount.Amount, error) {
	next := f.cont.total(cc).Add(delta)
	cc.SetContractData([]byte{0x02}, next.Bytes())
	return next, nil
}

func (f *counterFront) AddThenFail(cc *types.ContractContext, delta *amount.Amount) error {
	next := f.cont.total(cc).Add(delta)
	cc.SetContractData([]byte{0x02}, next.Bytes())
	return errors.New("Counter: REJECTED")
}

func (f *counterFront) Total(cc types.ContractLoader) *amount.Amount {
	return f.cont.total(cc)
}

func (cont *counterContract) total(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{0x02}))
}

func deployCounter(t *testing.T, ctx *types.Context) types.Contract {
	t.Helper()
	classID, err := types.RegisterContractType(&counterContract{})
	if err != nil {
		t.Fatal(err)
	}
	cont, err := ctx.DeployContract(someAddr, classID, []byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	return cont
}

func execCounter(t *testing.T, ctx *types.Context, cont types.Contract, method string, args []interface{}) ([]interface{}, error) {
	t.Helper()
	cc := ctx.ContractContext(cont, someAddr)
	intr := types.NewInteractor(ctx, cont, cc, 0, false)
	cc.Exec = intr.Exec
	return cc.Exec(cc, cont.Address(), method, args)
}

func TestDeployDeterministic(t *testing.T) {
	a := deployCounter(t, types.NewEmptyContext())
	b := deployCounter(t, types.NewEmptyContext())
	if a.Address() != b.Address() {
		t.Fatalf("deploy addresses differ: %v != %v", a.Address(), b.Address())
	}
	if a.Master() != someAddr {
		t.Fatalf("master = %v, want %v", a.Master(), someAddr)
	}
}

func TestDeployStoresConstruction(t *testing.T) {
	ctx := types.NewEmptyContext()
	cont := deployCounter(t, ctx)

	if !ctx.IsContract(cont.Address()) {
		t.Fatal("deployed contract unknown to the context")
	}
	cd := ctx.ContractDefine(cont.Address())
	if cd == nil || cd.Owner != someAddr {
		t.Fatalf("contract define = %+v", cd)
	}
	if string(ctx.Data(cont.Address(), common.Address{}, []byte{0x01})) != "seed" {
		t.Fatal("construction args not stored")
	}
}

func TestInteractorExec(t *testing.T) {
	ctx := types.NewEmptyContext()
	cont := deployCounter(t, ctx)

	// lowercase method names dispatch too
	is, err := execCounter(t, ctx, cont, "add", []interface{}{amount.NewAmount(3, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if !is[0].(*amount.Amount).Equal(amount.NewAmount(3, 0)) {
		t.Fatalf("add returned %v, want 3", is[0])
	}

	// big.Int arguments convert to amounts
	if _, err := execCounter(t, ctx, cont, "Add", []interface{}{big.NewInt(amount.FractionalMax)}); err != nil {
		t.Fatal(err)
	}

	is, err = execCounter(t, ctx, cont, "Total", []interface{}{})
	if err != nil {
		t.Fatal(err)
	}
	if !is[0].(*amount.Amount).Equal(amount.NewAmount(4, 0)) {
		t.Fatalf("total = %v, want 4", is[0])
	}
}

func TestInteractorRollbackOnError(t *testing.T) {
	ctx := types.NewEmptyContext()
	cont := deployCounter(t, ctx)

	if _, err := execCounter(t, ctx, cont, "Add", []interface{}{amount.NewAmount(3, 0)}); err != nil {
		t.Fatal(err)
	}
	if _, err := execCounter(t, ctx, cont, "AddThenFail", []interface{}{amount.NewAmount(5, 0)}); err == nil {
		t.Fatal("failing method must return its error")
	}

	is, err := execCounter(t, ctx, cont, "Total", []interface{}{})
	if err != nil {
		t.Fatal(err)
	}
	if !is[0].(*amount.Amount).Equal(amount.NewAmount(3, 0)) {
		t.Fatalf("total = %v, want 3 after rollback", is[0])
	}
	if ctx.StackSize() != 1 {
		t.Fatalf("stack size = %d, want 1 after rollback", ctx.StackSize())
	}
}

func TestInteractorUnknownMethod(t *testing.T) {
	ctx := types.NewEmptyContext()
	cont := deployCounter(t, ctx)

	if _, err := execCounter(t, ctx, cont, "Missing", []interface{}{}); err == nil {
		t.Fatal("unknown method must fail")
	}
}

func TestContractDefineCodec(t *testing.T) {
	cd := &types.ContractDefine{
		Address: contAddr,
		Owner:   someAddr,
		ClassID: 7,
	}
	bs, _, err := bin.WriterToBytes(cd)
	if err != nil {
		t.Fatal(err)
	}
	var decoded types.ContractDefine
	if _, err := bin.ReadFromBytes(&decoded, bs); err != nil {
		t.Fatal(err)
	}
	if decoded.Address != cd.Address || decoded.Owner != cd.Owner || decoded.ClassID != cd.ClassID {
		t.Fatalf("decoded = %+v, want %+v", decoded, cd)
	}
}
