package indexer

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/workerpool"
	"go.uber.org/zap"
)

type blockProcessor struct {
	nodeConcurrency int
	foldConcurrency int
	node            NodeClient
	enricher        *Enricher
	metrics         Metrics
	logger          *zap.Logger
}

// processBlock fetches every transaction of the block at height, applies them
// to the UTXO store in block order and folds the result into the address and
// special-transaction indexes.
func (p *blockProcessor) processBlock(ctx context.Context, store Store, height uint64) (export model.BlockExport, err error) {
	started := time.Now()
	txCount := 0
	defer func() {
		if p.metrics != nil {
			p.metrics.ObserveBlock(err, txCount, started)
		}
	}()

	block, err := p.node.Block(ctx, height)
	if err != nil {
		return model.BlockExport{}, fmt.Errorf("fetch block: %w", err)
	}
	txCount = len(block.Tx)

	// Node lookups have no ordering constraint. Store mutations do: an input
	// may spend an output created earlier in the same block.
	raws, err := workerpool.Map(ctx, p.nodeConcurrency, block.Tx, p.enricher.Fetch)
	if err != nil {
		return model.BlockExport{}, err
	}

	txs := make([]*model.EnrichedTransaction, 0, len(raws))
	for _, raw := range raws {
		if err := ctx.Err(); err != nil {
			return model.BlockExport{}, err
		}
		tx, err := p.enricher.Apply(ctx, store, raw, height)
		if err != nil {
			return model.BlockExport{}, err
		}
		txs = append(txs, tx)
	}

	export, err = fold(ctx, store, p.foldConcurrency, height, txs, p.logger)
	if err != nil {
		return model.BlockExport{}, fmt.Errorf("fold: %w", err)
	}
	if p.metrics != nil {
		p.metrics.ObserveFold(len(export.AddressTransactions), len(export.SpecialTransactions))
	}
	p.logger.Debug("block processed",
		zap.Uint64("height", height),
		zap.Int("txs", txCount),
		zap.Int("addressAppends", len(export.AddressTransactions)),
		zap.Int("specials", len(export.SpecialTransactions)),
	)
	return export, nil
}
