package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
	"go.mongodb.org/mongo-driver/bson"
)

type collStatsResult struct {
	Size       float64 `bson:"size"`
	Count      float64 `bson:"count"`
	AvgObjSize float64 `bson:"avgObjSize"`
}

// CollectionStats runs collStats for the named collection. A collection that
// does not exist yet reports zeros.
func (s *Store) CollectionStats(ctx context.Context, collection string) (model.CollectionStats, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("collection_stats", err, start)
	}()

	var result collStatsResult
	err = s.db.RunCommand(ctx, bson.D{{Key: "collStats", Value: collection}}).Decode(&result)
	if isNamespaceNotFound(err) {
		err = nil
		return model.CollectionStats{Collection: collection}, nil
	}
	if err != nil {
		err = storeError("collStats "+collection, err)
		return model.CollectionStats{}, err
	}

	stats := model.CollectionStats{Collection: collection}
	for _, field := range []struct {
		dst *int64
		src float64
	}{
		{&stats.Size, result.Size},
		{&stats.Count, result.Count},
		{&stats.AvgObjSize, result.AvgObjSize},
	} {
		if *field.dst, err = safe.Int64FromFloat(field.src); err != nil {
			err = fmt.Errorf("collStats %s: %w", collection, err)
			return model.CollectionStats{}, err
		}
	}
	return stats, nil
}
