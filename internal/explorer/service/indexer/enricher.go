package indexer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// Enricher turns transaction ids into transactions annotated with the
// outputs they spend, maintaining the UTXO set on the way.
type Enricher struct {
	node      NodeClient
	converter OutputConverter
}

func NewEnricher(node NodeClient, converter OutputConverter) *Enricher {
	return &Enricher{node: node, converter: converter}
}

// Enrich fetches txid and applies it to store.
func (e *Enricher) Enrich(ctx context.Context, store UTXOStore, txid string, blockHeight uint64) (*model.EnrichedTransaction, error) {
	tx, err := e.Fetch(ctx, txid)
	if err != nil {
		return nil, err
	}
	return e.Apply(ctx, store, tx, blockHeight)
}

// Fetch queries the verbose transaction from the node. It does not touch the store.
func (e *Enricher) Fetch(ctx context.Context, txid string) (model.RawTransaction, error) {
	tx, err := e.node.RawTransaction(ctx, txid)
	if err != nil {
		return model.RawTransaction{}, fmt.Errorf("fetch transaction %s: %w", txid, err)
	}
	return tx, nil
}

// Apply records the outputs of a standard transaction as unspent and
// consumes the outputs its inputs reference, in input order. Transactions
// of any other version are returned without senders.
func (e *Enricher) Apply(ctx context.Context, store UTXOStore, tx model.RawTransaction, blockHeight uint64) (*model.EnrichedTransaction, error) {
	enriched := &model.EnrichedTransaction{RawTransaction: tx}
	if !tx.IsStandard() {
		return enriched, nil
	}

	outputs, err := e.converter.Convert(tx, blockHeight)
	if err != nil {
		return nil, fmt.Errorf("convert outputs of %s: %w", tx.TxID, err)
	}
	for _, utxo := range outputs {
		if err := store.PutUTXO(ctx, utxo); err != nil {
			return nil, fmt.Errorf("tx %s: %w", tx.TxID, err)
		}
	}
	enriched.Outputs = outputs

	senders := make([]model.UTXO, 0, len(tx.Vin))
	for i, vin := range tx.Vin {
		if vin.IsCoinbase() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sender, err := store.ConsumeUTXO(ctx, vin.TxID, vin.Vout)
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d: %w", tx.TxID, i, err)
		}
		senders = append(senders, sender)
	}
	enriched.Senders = senders
	return enriched, nil
}
