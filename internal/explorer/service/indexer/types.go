package indexer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeClient interface {
		BlockCount(ctx context.Context) (uint64, error)
		Block(ctx context.Context, height uint64) (model.NodeBlock, error)
		RawTransaction(ctx context.Context, txid string) (model.RawTransaction, error)
	}
	OutputConverter interface {
		Convert(tx model.RawTransaction, blockHeight uint64) ([]model.UTXO, error)
	}
	// UTXOStore is the part of the store the enricher mutates.
	UTXOStore interface {
		PutUTXO(ctx context.Context, utxo model.UTXO) error
		ConsumeUTXO(ctx context.Context, txid string, vout uint32) (model.UTXO, error)
	}
	Store interface {
		Bootstrap(ctx context.Context) error
		PutUTXO(ctx context.Context, utxo model.UTXO) error
		ConsumeUTXO(ctx context.Context, txid string, vout uint32) (model.UTXO, error)
		AppendAddressTransaction(ctx context.Context, address string, ref model.TxRef) error
		InsertSpecialTransaction(ctx context.Context, tx model.RawTransaction, height uint64) error
		IndexStats(ctx context.Context) ([]model.CollectionStats, error)
		SaveScannedHeight(ctx context.Context, height uint64) error
		Close(ctx context.Context) error
	}
	StoreOpener interface {
		Open(ctx context.Context) (Store, error)
	}
	Exporter interface {
		Export(ctx context.Context, block model.BlockExport) error
	}
	Metrics interface {
		ObserveBlock(err error, txs int, started time.Time)
		ObserveFold(appends, specials int)
		SetScannedHeight(height uint64)
		SetCollectionStats(stats model.CollectionStats)
	}
)

// StoreOpenerFunc adapts a function to StoreOpener.
type StoreOpenerFunc func(ctx context.Context) (Store, error)

func (f StoreOpenerFunc) Open(ctx context.Context) (Store, error) {
	return f(ctx)
}
