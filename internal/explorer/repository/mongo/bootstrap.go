package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Bootstrap drops every explorer collection and recreates the indexes.
// Missing collections are not an error, so it can run any number of times.
func (s *Store) Bootstrap(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("bootstrap", err, start)
	}()

	for _, coll := range []Collection{s.utxos, s.address, s.specials, s.scanned} {
		if dropErr := coll.Drop(ctx); dropErr != nil && !isNamespaceNotFound(dropErr) {
			err = storeError("drop "+coll.Name(), dropErr)
			return err
		}
	}

	if err = s.db.CreateIndexes(ctx, UTXOCollection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "txid", Value: 1}, {Key: "voutIndex", Value: 1}},
			Options: options.Index().SetName("query for getting utxo").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "address", Value: 1}},
			Options: options.Index().SetName("query for addresses utxo"),
		},
		{
			Keys:    bson.D{{Key: "scriptPubKey", Value: 1}},
			Options: options.Index().SetName("query for scriptPubKey utxo"),
		},
	}); err != nil {
		err = storeError("bootstrap", err)
		return err
	}

	if err = s.db.CreateIndexes(ctx, AddressTransactionCollection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "address", Value: 1}},
			Options: options.Index().SetName("query for addresses transactions"),
		},
	}); err != nil {
		err = storeError("bootstrap", err)
		return err
	}
	return nil
}
