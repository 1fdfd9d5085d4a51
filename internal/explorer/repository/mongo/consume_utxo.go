package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConsumeUTXO atomically removes and returns the output (txid, vout).
// It returns model.ErrNotFound when the output is absent or already spent.
func (s *Store) ConsumeUTXO(ctx context.Context, txid string, vout uint32) (model.UTXO, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("consume_utxo", err, start)
	}()

	filter := bson.D{{Key: "txid", Value: txid}, {Key: "voutIndex", Value: vout}}
	opts := options.FindOneAndDelete().SetProjection(utxoProjection)

	var utxo model.UTXO
	if err = s.utxos.FindOneAndDelete(ctx, filter, opts).Decode(&utxo); err != nil {
		err = storeError(fmt.Sprintf("consume utxo %s:%d", txid, vout), err)
		return model.UTXO{}, err
	}
	return utxo, nil
}
