package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppendAddressTransaction pushes ref onto the history of address, creating
// the record on first use.
func (s *Store) AppendAddressTransaction(ctx context.Context, address string, ref model.TxRef) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("append_address_transaction", err, start)
	}()

	filter := bson.D{{Key: "address", Value: address}}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "address", Value: address}}},
		{Key: "$push", Value: bson.D{{Key: "transactions", Value: ref}}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true)

	err = s.address.FindOneAndUpdate(ctx, filter, update, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		// upsert created the record
		err = nil
	}
	err = storeError(fmt.Sprintf("append %s to address %s", ref.TxID, address), err)
	return err
}
