package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ExplorerService interface {
		UTXOs(ctx context.Context) ([]model.UTXO, error)
		AddressUTXOs(ctx context.Context, address string) ([]model.UTXO, error)
		SpecialTransactions(ctx context.Context) ([]model.SpecialTransaction, error)
		Addresses(ctx context.Context) ([]model.AddressRecord, error)
		AddressList(ctx context.Context) ([]string, error)
		AddressTransactions(ctx context.Context, address string) ([]model.TxRef, error)
		ScannedHeight(ctx context.Context) (uint64, error)
	}
	Pinger interface {
		Ping(ctx context.Context) error
	}
	ReadMetrics interface {
		Observe(route, result string, started time.Time)
	}
)
