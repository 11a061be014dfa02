package types_test

import (
	"bytes"
	"testing"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/core/types"
)

var (
	contAddr = common.HexToAddress("0x00000000000000000000000000000000000000CC")
	someAddr = common.HexToAddress("0x00000000000000000000000000000000000000AA")
)

func TestContextSnapshotRevert(t *testing.T) {
	ctx := types.NewEmptyContext()

	ctx.SetData(contAddr, common.Address{}, []byte{0x01}, []byte("one"))

	sn := ctx.Snapshot()
	ctx.SetData(contAddr, common.Address{}, []byte{0x01}, []byte("two"))
	ctx.SetData(contAddr, someAddr, []byte{0x02}, []byte("per account"))
	if !bytes.Equal(ctx.Data(contAddr, common.Address{}, []byte{0x01}), []byte("two")) {
		t.Fatal("write inside snapshot not visible")
	}
	ctx.Revert(sn)

	if !bytes.Equal(ctx.Data(contAddr, common.Address{}, []byte{0x01}), []byte("one")) {
		t.Fatal("revert lost the base value")
	}
	if len(ctx.Data(contAddr, someAddr, []byte{0x02})) != 0 {
		t.Fatal("reverted write still visible")
	}
	if ctx.StackSize() != 1 {
		t.Fatalf("stack size = %d, want 1", ctx.StackSize())
	}
}

func TestContextSnapshotCommit(t *testing.T) {
	ctx := types.NewEmptyContext()

	sn := ctx.Snapshot()
	ctx.SetData(contAddr, common.Address{}, []byte{0x01}, []byte("kept"))
	ctx.SetMainToken(someAddr)
	ctx.Commit(sn)

	if !bytes.Equal(ctx.Data(contAddr, common.Address{}, []byte{0x01}), []byte("kept")) {
		t.Fatal("committed write lost")
	}
	if mt := ctx.MainToken(); mt == nil || *mt != someAddr {
		t.Fatalf("main token = %v, want %v", mt, someAddr)
	}
	if ctx.StackSize() != 1 {
		t.Fatalf("stack size = %d, want 1", ctx.StackSize())
	}
}

func TestContextDeleteData(t *testing.T) {
	ctx := types.NewEmptyContext()

	ctx.SetData(contAddr, common.Address{}, []byte{0x01}, []byte("value"))
	ctx.SetData(contAddr, common.Address{}, []byte{0x01}, nil)
	if len(ctx.Data(contAddr, common.Address{}, []byte{0x01})) != 0 {
		t.Fatal("deleted data still visible")
	}
}

func TestContextAddrSeq(t *testing.T) {
	ctx := types.NewEmptyContext()

	if seq := ctx.AddrSeq(someAddr); seq != 0 {
		t.Fatalf("fresh seq = %d, want 0", seq)
	}
	ctx.AddAddrSeq(someAddr)
	ctx.AddAddrSeq(someAddr)
	if seq := ctx.AddrSeq(someAddr); seq != 2 {
		t.Fatalf("seq = %d, want 2", seq)
	}
}

func TestEventsSurviveRevert(t *testing.T) {
	ctx := types.NewEmptyContext()

	sn := ctx.Snapshot()
	ctx.EmitEvent(&types.Event{Type: types.EventTagTrade, Result: []byte{0x01}})
	ctx.Revert(sn)

	events := ctx.Events()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1 surviving the revert", len(events))
	}
	if events[0].Index != 0 {
		t.Fatalf("event index = %d, want 0", events[0].Index)
	}

	ctx.EmitEvent(&types.Event{Type: types.EventTagTrade, Result: []byte{0x02}})
	if ctx.Events()[1].Index != 1 {
		t.Fatal("event numbering must follow the list position")
	}
}
