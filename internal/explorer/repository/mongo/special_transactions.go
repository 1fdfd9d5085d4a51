package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SpecialTransactions lists the stored node-registration transactions.
func (s *Store) SpecialTransactions(ctx context.Context) ([]model.SpecialTransaction, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("special_transactions", err, start)
	}()

	cursor, err := s.specials.Find(ctx, bson.D{}, options.Find().SetProjection(specialTransactionProjection))
	if err != nil {
		err = storeError("find special transactions", err)
		return nil, err
	}

	txs := make([]model.SpecialTransaction, 0)
	if err = cursor.All(ctx, &txs); err != nil {
		err = fmt.Errorf("decode special transactions: %w", err)
		return nil, err
	}
	return txs, nil
}
