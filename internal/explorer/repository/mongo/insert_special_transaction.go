package mongo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
	"go.mongodb.org/mongo-driver/bson"
)

// InsertSpecialTransaction stores the node payload of tx verbatim with the
// block height attached. Repeated inserts create repeated records.
func (s *Store) InsertSpecialTransaction(ctx context.Context, tx model.RawTransaction, height uint64) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("insert_special_transaction", err, start)
	}()

	var doc bson.D
	doc, err = specialTransactionDocument(tx, height)
	if err != nil {
		return err
	}

	_, err = s.specials.InsertOne(ctx, doc)
	err = storeError("insert special transaction "+tx.TxID, err)
	return err
}

func specialTransactionDocument(tx model.RawTransaction, height uint64) (bson.D, error) {
	raw := tx.Raw
	if len(raw) == 0 {
		var err error
		if raw, err = json.Marshal(tx); err != nil {
			return nil, fmt.Errorf("encode special transaction %s: %w", tx.TxID, err)
		}
	}

	var doc bson.D
	if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
		return nil, fmt.Errorf("decode special transaction %s: %w", tx.TxID, err)
	}

	value, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("special transaction %s height: %w", tx.TxID, err)
	}
	for i := range doc {
		if doc[i].Key == "height" {
			doc[i].Value = value
			return doc, nil
		}
	}
	return append(doc, bson.E{Key: "height", Value: value}), nil
}
