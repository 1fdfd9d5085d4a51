package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UTXOs lists every unspent output.
func (s *Store) UTXOs(ctx context.Context) ([]model.UTXO, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("utxos", err, start)
	}()

	var utxos []model.UTXO
	utxos, err = s.findUTXOs(ctx, bson.D{})
	return utxos, err
}

// UTXOsByAddress lists the unspent outputs paying to address.
func (s *Store) UTXOsByAddress(ctx context.Context, address string) ([]model.UTXO, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("utxos_by_address", err, start)
	}()

	var utxos []model.UTXO
	utxos, err = s.findUTXOs(ctx, bson.D{{Key: "address", Value: address}})
	return utxos, err
}

func (s *Store) findUTXOs(ctx context.Context, filter bson.D) ([]model.UTXO, error) {
	cursor, err := s.utxos.Find(ctx, filter, options.Find().SetProjection(utxoProjection))
	if err != nil {
		return nil, storeError("find utxos", err)
	}

	utxos := make([]model.UTXO, 0)
	if err := cursor.All(ctx, &utxos); err != nil {
		return nil, fmt.Errorf("decode utxos: %w", err)
	}
	return utxos, nil
}
