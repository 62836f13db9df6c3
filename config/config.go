package config

import (
	"github.com/gagliardetto/solana-go"
)

var (
	ConfigPath = "./config/"
	ConfigFile = ConfigPath + "config.json"
	LogPath    = "./logs/"
	EngineLog  = "engine"
	AppLog     = "app"
	StoreLog   = "store"
	NetworkLog = "network"
)

type Venue struct {
	Id       solana.PublicKey `json:"id"`
	Name     string           `json:"name"`
	Endpoint string           `json:"endpoint"`
	TokenA   solana.PublicKey `json:"token_a"`
	TokenB   solana.PublicKey `json:"token_b"`
	ReserveA uint64           `json:"reserve_a"`
	ReserveB uint64           `json:"reserve_b"`
	Usable   bool             `json:"usable"`
}

type Config struct {
	Authority      solana.PublicKey `json:"authority"`
	BotWallet      solana.PublicKey `json:"bot_wallet"`
	SettleToken    solana.PublicKey `json:"settle_token"`
	SettleDecimals int32            `json:"settle_decimals"`
	MinInterval    int64            `json:"min_interval"`
	Venues         []*Venue         `json:"venues"`
	LendingReserve uint64           `json:"lending_reserve"`
	Simulate       bool             `json:"simulate"`
	WorkSpace      string           `json:"workspace"`
	DingUrl        string           `json:"ding-url"`
	NetStatus      bool             `json:"net_status"`
	DBUrl          string           `json:"db_url"`
	DBScheme       string           `json:"db_scheme"`
	DBUser         string           `json:"db_user"`
	DBPasswd       string           `json:"db_passwd"`
	Listen         string           `json:"listen"`
}
