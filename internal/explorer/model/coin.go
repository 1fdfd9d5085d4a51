package model

type Coin string
type Network string

var (
	FLUX Coin = "FLUX"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)
