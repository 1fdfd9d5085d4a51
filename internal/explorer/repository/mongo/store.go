// Package mongo persists the explorer indexes in MongoDB.
package mongo

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	UTXOCollection               = "utxoindex"
	AddressTransactionCollection = "addresstransactionindex"
	SpecialTransactionCollection = "zelnodetransactions"
	ScannedHeightCollection      = "scannedheight"
)

var (
	utxoProjection = bson.D{
		{Key: "_id", Value: 0},
		{Key: "txid", Value: 1},
		{Key: "voutIndex", Value: 1},
		{Key: "height", Value: 1},
		{Key: "address", Value: 1},
		{Key: "satoshis", Value: 1},
		{Key: "scriptPubKey", Value: 1},
	}
	addressRecordProjection = bson.D{
		{Key: "_id", Value: 0},
		{Key: "address", Value: 1},
		{Key: "transactions", Value: 1},
	}
	specialTransactionProjection = bson.D{
		{Key: "_id", Value: 0},
		{Key: "hex", Value: 1},
		{Key: "txid", Value: 1},
		{Key: "version", Value: 1},
		{Key: "type", Value: 1},
		{Key: "collateral_output", Value: 1},
		{Key: "sigtime", Value: 1},
		{Key: "sig", Value: 1},
		{Key: "ip", Value: 1},
		{Key: "update_type", Value: 1},
		{Key: "benchmark_tier", Value: 1},
		{Key: "benchmark_sigtime", Value: 1},
		{Key: "benchmark_sig", Value: 1},
		{Key: "collateral_pubkey", Value: 1},
		{Key: "zelnode_pubkey", Value: 1},
		{Key: "height", Value: 1},
	}
)

// Store holds the UTXO set, the address index, the special transaction table
// and the scanned height record of one database.
type Store struct {
	db       Database
	utxos    Collection
	address  Collection
	specials Collection
	scanned  Collection
	metrics  Metrics
	coin     model.Coin
	network  model.Network
}

// NewStore binds the explorer collections of db.
func NewStore(db Database, coin model.Coin, network model.Network, metrics Metrics) *Store {
	return &Store{
		db:       db,
		utxos:    db.Collection(UTXOCollection),
		address:  db.Collection(AddressTransactionCollection),
		specials: db.Collection(SpecialTransactionCollection),
		scanned:  db.Collection(ScannedHeightCollection),
		metrics:  metrics,
		coin:     coin,
		network:  network,
	}
}

func (s *Store) observe(operation string, err error, started time.Time) {
	s.metrics.Observe(operation, s.coin, s.network, err, started)
}
