package node

import (
	"io"
	"log"
	"sync"

	"github.com/bluele/gcache"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/common/bin"
	"github.com/launchlabs/launchpad/contract/curve"
	"github.com/launchlabs/launchpad/contract/factory"
	"github.com/launchlabs/launchpad/contract/token"
	"github.com/launchlabs/launchpad/contract/treasury"
	"github.com/launchlabs/launchpad/contract/util"
	"github.com/launchlabs/launchpad/core/types"
)

// GenesisConfig seeds a fresh store
type GenesisConfig struct {
	Admin            common.Address
	LiquidityVault   common.Address
	ReserveName      string
	ReserveSymbol    string
	ReserveSupplyMap map[common.Address]*amount.Amount
}

// NodeEvent is a settled event with its node wide sequence
type NodeEvent struct {
	Seq    uint64 `json:"seq"`
	Height uint32 `json:"height"`
	Type   uint8  `json:"type"`
	Data   string `json:"data"`
}

// Node owns the store and executes launch operations against it one
// at a time
type Node struct {
	sync.Mutex
	store        *Store
	factoryAddr  common.Address
	treasuryAddr common.Address
	reserveAddr  common.Address

	eventCache gcache.Cache
	eventSeq   uint64
}

// NewNode opens the store and builds the genesis contracts when the
// store is fresh
func NewNode(st *Store, cfg *GenesisConfig) (*Node, error) {
	tokenClassID, err := types.RegisterContractType(&token.TokenContract{})
	if err != nil {
		return nil, err
	}
	if _, err := types.RegisterContractType(&treasury.TreasuryContract{}); err != nil {
		return nil, err
	}
	curveClassID, err := types.RegisterContractType(&curve.CurveContract{})
	if err != nil {
		return nil, err
	}
	if _, err := types.RegisterContractType(&factory.FactoryContract{}); err != nil {
		return nil, err
	}

	n := &Node{
		store:      st,
		eventCache: gcache.New(8192).LRU().Build(),
	}

	if bs := st.Meta("factory"); len(bs) == common.AddressLength {
		n.factoryAddr = common.BytesToAddress(bs)
		n.treasuryAddr = common.BytesToAddress(st.Meta("treasury"))
		n.reserveAddr = common.BytesToAddress(st.Meta("reserve"))
		return n, nil
	}

	ctx := types.NewContext(st)

	reserveCont, err := deployGenesisContract(ctx, cfg.Admin, &token.TokenContract{}, &token.TokenContractConstruction{
		Name:             cfg.ReserveName,
		Symbol:           cfg.ReserveSymbol,
		InitialSupplyMap: cfg.ReserveSupplyMap,
	})
	if err != nil {
		return nil, err
	}
	n.reserveAddr = reserveCont
	ctx.SetMainToken(n.reserveAddr)

	treasuryCont, err := deployGenesisContract(ctx, cfg.Admin, &treasury.TreasuryContract{}, &treasury.TreasuryContractConstruction{
		Owner: cfg.Admin,
	})
	if err != nil {
		return nil, err
	}
	n.treasuryAddr = treasuryCont

	factoryCont, err := deployGenesisContract(ctx, cfg.Admin, &factory.FactoryContract{}, &factory.FactoryContractConstruction{
		Owner:          cfg.Admin,
		Treasury:       n.treasuryAddr,
		LiquidityVault: cfg.LiquidityVault,
		TokenClassID:   tokenClassID,
		CurveClassID:   curveClassID,
	})
	if err != nil {
		return nil, err
	}
	n.factoryAddr = factoryCont

	if err := st.StoreContext(ctx); err != nil {
		return nil, err
	}
	if err := st.SetMeta("factory", n.factoryAddr[:]); err != nil {
		return nil, err
	}
	if err := st.SetMeta("treasury", n.treasuryAddr[:]); err != nil {
		return nil, err
	}
	if err := st.SetMeta("reserve", n.reserveAddr[:]); err != nil {
		return nil, err
	}
	log.Println("genesis launchpad deployed", "factory", n.factoryAddr, "treasury", n.treasuryAddr, "reserve", n.reserveAddr)
	return n, nil
}

func deployGenesisContract(ctx *types.Context, admin common.Address, cont types.Contract, construction io.WriterTo) (common.Address, error) {
	classID, err := types.RegisterContractType(cont)
	if err != nil {
		return common.ZeroAddr, err
	}
	bs, _, err := bin.WriterToBytes(construction)
	if err != nil {
		return common.ZeroAddr, err
	}
	deployed, err := ctx.DeployContract(admin, classID, bs)
	if err != nil {
		return common.ZeroAddr, err
	}
	return deployed.Address(), nil
}

// FactoryAddress returns the factory contract address
func (n *Node) FactoryAddress() common.Address {
	return n.factoryAddr
}

// TreasuryAddress returns the treasury contract address
func (n *Node) TreasuryAddress() common.Address {
	return n.treasuryAddr
}

// ReserveAddress returns the reserve token address
func (n *Node) ReserveAddress() common.Address {
	return n.reserveAddr
}

// Height returns the settled height
func (n *Node) Height() uint32 {
	return n.store.Height()
}

//////////////////////////////////////////////////
// writer operations
//////////////////////////////////////////////////

func (n *Node) execute(from common.Address, cont common.Address, method string, args []interface{}) ([]interface{}, error) {
	n.Lock()
	defer n.Unlock()

	ctx := types.NewContext(n.store)
	is, err := util.Exec(ctx, from, cont, method, args)
	if err != nil {
		return nil, err
	}
	height := n.store.TargetHeight()
	if err := n.store.StoreContext(ctx); err != nil {
		return nil, err
	}
	for _, en := range ctx.Events() {
		seq := n.eventSeq
		n.eventSeq++
		n.eventCache.Set(seq, &NodeEvent{
			Seq:    seq,
			Height: height,
			Type:   uint8(en.Type),
			Data:   hexutil.Encode(en.Result),
		})
	}
	return is, nil
}

// CreateLaunch deploys a token and curve pair through the factory
func (n *Node) CreateLaunch(creator common.Address, name string, symbol string, basePrice *amount.Amount) (common.Address, common.Address, error) {
	is, err := n.execute(creator, n.factoryAddr, "CreateLaunch", []interface{}{name, symbol, basePrice})
	if err != nil {
		return common.ZeroAddr, common.ZeroAddr, err
	}
	return is[0].(common.Address), is[1].(common.Address), nil
}

// Buy swaps reserveIn through the curve for the trader
func (n *Node) Buy(trader common.Address, curveAddr common.Address, reserveIn *amount.Amount) (*amount.Amount, error) {
	is, err := n.execute(trader, curveAddr, "Buy", []interface{}{reserveIn})
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount), nil
}

// Sell swaps unitsIn back through the curve for the trader
func (n *Node) Sell(trader common.Address, curveAddr common.Address, unitsIn *amount.Amount) (*amount.Amount, error) {
	is, err := n.execute(trader, curveAddr, "Sell", []interface{}{unitsIn})
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount), nil
}

// Transfer moves tokens between accounts
func (n *Node) Transfer(from common.Address, tokenAddr common.Address, to common.Address, am *amount.Amount) error {
	_, err := n.execute(from, tokenAddr, "Transfer", []interface{}{to, am})
	return err
}

// Approve sets the spending allowance of the spender
func (n *Node) Approve(from common.Address, tokenAddr common.Address, spender common.Address, am *amount.Amount) error {
	_, err := n.execute(from, tokenAddr, "Approve", []interface{}{spender, am})
	return err
}

//////////////////////////////////////////////////
// reader operations
//////////////////////////////////////////////////

func (n *Node) view(cont common.Address, method string, args []interface{}) ([]interface{}, error) {
	ctx := types.NewContext(n.store)
	return util.Exec(ctx, common.Address{}, cont, method, args)
}

// CurveInfo is the settled view of one curve
type CurveInfo struct {
	Token          common.Address `json:"token"`
	Creator        common.Address `json:"creator"`
	Treasury       common.Address `json:"treasury"`
	LiquidityVault common.Address `json:"liquidityVault"`
	BasePrice      string         `json:"basePrice"`
	Price          string         `json:"price"`
	UnitsSold      string         `json:"unitsSold"`
	ReserveRaised  string         `json:"reserveRaised"`
	ReserveCurrent string         `json:"reserveCurrent"`
	Graduated      bool           `json:"graduated"`
	Progress       string         `json:"progress"`
}

// CurveInfo collects the full state of the curve in one view
func (n *Node) CurveInfo(curveAddr common.Address) (*CurveInfo, error) {
	n.Lock()
	defer n.Unlock()

	ctx := types.NewContext(n.store)
	cont, err := ctx.Contract(curveAddr)
	if err != nil {
		return nil, err
	}
	c, ok := cont.(*curve.CurveContract)
	if !ok {
		return nil, ErrNotExistLaunch
	}
	cc := ctx.ContractContext(cont, common.Address{})
	info := &CurveInfo{
		Token:          c.Token(cc),
		Creator:        c.Creator(cc),
		Treasury:       c.Treasury(cc),
		LiquidityVault: c.LiquidityVault(cc),
		BasePrice:      c.BasePrice(cc).String(),
		Price:          c.Price(cc).String(),
		UnitsSold:      c.UnitsSold(cc).String(),
		ReserveRaised:  c.ReserveRaised(cc).String(),
		ReserveCurrent: c.ReserveCurrent(cc).String(),
		Graduated:      c.IsGraduated(cc),
		Progress:       c.GraduationProgress(cc).String(),
	}
	return info, nil
}

// LaunchCount returns the number of launches
func (n *Node) LaunchCount() (uint32, error) {
	is, err := n.view(n.factoryAddr, "LaunchCount", []interface{}{})
	if err != nil {
		return 0, err
	}
	return is[0].(uint32), nil
}

// LaunchAt returns the token and curve of the launch index
func (n *Node) LaunchAt(index uint32) (common.Address, common.Address, error) {
	is, err := n.view(n.factoryAddr, "LaunchAt", []interface{}{index})
	if err != nil {
		return common.ZeroAddr, common.ZeroAddr, err
	}
	return is[0].(common.Address), is[1].(common.Address), nil
}

// CurveOf returns the curve of the launch token
func (n *Node) CurveOf(tokenAddr common.Address) (common.Address, error) {
	is, err := n.view(n.factoryAddr, "CurveOf", []interface{}{tokenAddr})
	if err != nil {
		return common.ZeroAddr, err
	}
	return is[0].(common.Address), nil
}

// BalanceOf returns the token balance of the address
func (n *Node) BalanceOf(tokenAddr common.Address, addr common.Address) (*amount.Amount, error) {
	is, err := n.view(tokenAddr, "BalanceOf", []interface{}{addr})
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount), nil
}

// PurchaseAmountOf returns the lifetime purchases of the trader
func (n *Node) PurchaseAmountOf(curveAddr common.Address, trader common.Address) (*amount.Amount, error) {
	is, err := n.view(curveAddr, "PurchaseAmountOf", []interface{}{trader})
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount), nil
}

// CalcBuy sizes a buy without executing it
func (n *Node) CalcBuy(curveAddr common.Address, reserveIn *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	is, err := n.view(curveAddr, "CalcBuy", []interface{}{reserveIn})
	if err != nil {
		return nil, nil, err
	}
	return is[0].(*amount.Amount), is[1].(*amount.Amount), nil
}

// CalcSell sizes a sell without executing it
func (n *Node) CalcSell(curveAddr common.Address, unitsIn *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	is, err := n.view(curveAddr, "CalcSell", []interface{}{unitsIn})
	if err != nil {
		return nil, nil, err
	}
	return is[0].(*amount.Amount), is[1].(*amount.Amount), nil
}

// Events returns cached events from the sequence number on
func (n *Node) Events(from uint64) []*NodeEvent {
	n.Lock()
	last := n.eventSeq
	n.Unlock()

	list := []*NodeEvent{}
	for seq := from; seq < last; seq++ {
		v, err := n.eventCache.Get(seq)
		if err != nil {
			continue
		}
		list = append(list, v.(*NodeEvent))
	}
	return list
}

// EventSeq returns the next event sequence number
func (n *Node) EventSeq() uint64 {
	n.Lock()
	defer n.Unlock()
	return n.eventSeq
}
