package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const addressTransactionCountQuery = `
SELECT count() AS total
FROM explorer_address_transactions
WHERE coin = ? AND network = ? AND address = ?`

// AddressTransactionCount returns how many ledger rows address has.
func (r *Repository) AddressTransactionCount(ctx context.Context, address string) (total uint64, err error) {
	start := time.Now()
	defer func() {
		r.observe("address_transaction_count", err, start)
	}()

	rows, err := r.conn.Query(ctx, addressTransactionCountQuery, string(r.coin), string(r.network), address)
	if err != nil {
		return 0, fmt.Errorf("query address transaction count: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("address transaction count not found")
	}

	if err = rows.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan address transaction count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate address transaction count: %w", err)
	}
	return total, nil
}
