package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const scannedHeightID = "scanned"

type scannedHeightRecord struct {
	Height uint64 `bson:"height"`
}

// SaveScannedHeight records the last fully folded block height.
func (s *Store) SaveScannedHeight(ctx context.Context, height uint64) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("save_scanned_height", err, start)
	}()

	var value int64
	if value, err = safe.Int64(height); err != nil {
		return err
	}
	filter := bson.D{{Key: "_id", Value: scannedHeightID}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "height", Value: value}}}}
	opts := options.FindOneAndUpdate().SetUpsert(true)

	err = s.scanned.FindOneAndUpdate(ctx, filter, update, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = nil
	}
	err = storeError("save scanned height", err)
	return err
}

// ScannedHeight returns the last recorded height, or model.ErrNotFound before
// the first block is folded.
func (s *Store) ScannedHeight(ctx context.Context) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("scanned_height", err, start)
	}()

	var record scannedHeightRecord
	err = s.scanned.FindOne(ctx, bson.D{{Key: "_id", Value: scannedHeightID}}).Decode(&record)
	if err != nil {
		err = storeError("scanned height", err)
		return 0, err
	}
	return record.Height, nil
}
