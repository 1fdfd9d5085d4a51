package query

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Store interface {
	UTXOs(ctx context.Context) ([]model.UTXO, error)
	UTXOsByAddress(ctx context.Context, address string) ([]model.UTXO, error)
	SpecialTransactions(ctx context.Context) ([]model.SpecialTransaction, error)
	Addresses(ctx context.Context) ([]model.AddressRecord, error)
	AddressList(ctx context.Context) ([]string, error)
	AddressTransactions(ctx context.Context, address string) ([]model.TxRef, error)
	ScannedHeight(ctx context.Context) (uint64, error)
	Ping(ctx context.Context) error
}
