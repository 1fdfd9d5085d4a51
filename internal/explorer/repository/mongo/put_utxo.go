package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// PutUTXO inserts an unspent output. A second insert of the same
// (txid, voutIndex) fails with model.ErrDuplicateKey.
func (s *Store) PutUTXO(ctx context.Context, utxo model.UTXO) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("put_utxo", err, start)
	}()

	_, err = s.utxos.InsertOne(ctx, utxo)
	err = storeError(fmt.Sprintf("put utxo %s:%d", utxo.TxID, utxo.VoutIndex), err)
	return err
}
