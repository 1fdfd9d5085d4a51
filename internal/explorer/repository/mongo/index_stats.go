package mongo

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// IndexStats reports collStats for the UTXO set and the address index.
func (s *Store) IndexStats(ctx context.Context) ([]model.CollectionStats, error) {
	stats := make([]model.CollectionStats, 0, 2)
	for _, collection := range []string{UTXOCollection, AddressTransactionCollection} {
		st, err := s.CollectionStats(ctx, collection)
		if err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, nil
}
