package main

import (
	"log"
	"math/big"
	"os"

	"github.com/launchlabs/launchpad/cmd/config"
	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/node"
	"github.com/launchlabs/launchpad/service/apiserver"
)

// Config is the launch node configuration
type Config struct {
	ChainID        int64
	BindAddress    string
	Admin          string
	LiquidityVault string
	ReserveName    string
	ReserveSymbol  string
	ReserveSupply  map[string]string
}

func main() {
	path := "./config.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	var cfg Config
	if err := config.LoadFile(path, &cfg); err != nil {
		log.Fatalln("config", err)
	}
	if cfg.ChainID == 0 {
		cfg.ChainID = 1
	}
	if len(cfg.BindAddress) == 0 {
		cfg.BindAddress = ":8541"
	}
	if len(cfg.ReserveName) == 0 {
		cfg.ReserveName = "Reserve Coin"
		cfg.ReserveSymbol = "RSV"
	}

	supplies := map[common.Address]*amount.Amount{}
	for addr, sup := range cfg.ReserveSupply {
		am, err := amount.ParseAmount(sup)
		if err != nil {
			log.Fatalln("config reserve supply", addr, err)
		}
		supplies[common.HexToAddress(addr)] = am
	}

	st := node.NewStore(big.NewInt(cfg.ChainID))
	defer st.Close()

	nd, err := node.NewNode(st, &node.GenesisConfig{
		Admin:            common.HexToAddress(cfg.Admin),
		LiquidityVault:   common.HexToAddress(cfg.LiquidityVault),
		ReserveName:      cfg.ReserveName,
		ReserveSymbol:    cfg.ReserveSymbol,
		ReserveSupplyMap: supplies,
	})
	if err != nil {
		log.Fatalln("node", err)
	}

	as := apiserver.NewAPIServer()
	if err := nd.SetupAPI(as); err != nil {
		log.Fatalln("api", err)
	}
	log.Println("launch node listening on", cfg.BindAddress)
	if err := as.Run(cfg.BindAddress); err != nil {
		log.Fatalln("run", err)
	}
}
