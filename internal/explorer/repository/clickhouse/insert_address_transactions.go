package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

const insertAddressTransactionsQuery = `
INSERT INTO explorer_address_transactions (
	coin,
	network,
	address,
	txid,
	height
) VALUES`

// InsertAddressTransactions appends address index rows.
func (r *Repository) InsertAddressTransactions(ctx context.Context, rows []model.AddressTransaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("insert_address_transactions", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertAddressTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare address transactions batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			string(r.coin),
			string(r.network),
			row.Address,
			row.TxID,
			row.Height,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append address transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert address transactions: %w", err)
	}
	return nil
}
