package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

const insertSpecialTransactionsQuery = `
INSERT INTO explorer_special_transactions (
	coin,
	network,
	txid,
	height,
	version,
	type,
	ip,
	collateral_output,
	payload
) VALUES`

// InsertSpecialTransactions appends node-registration transactions with their raw payload.
func (r *Repository) InsertSpecialTransactions(ctx context.Context, rows []model.SpecialTransactionExport) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("insert_special_transactions", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSpecialTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare special transactions batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			string(r.coin),
			string(r.network),
			row.TxID,
			row.Height,
			row.Version,
			row.Type,
			row.IP,
			row.CollateralOutput,
			string(row.Payload),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append special transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert special transactions: %w", err)
	}
	return nil
}
