// Package export ships folded blocks to the append-only ledger.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultFlushSize     = 100
	defaultFlushInterval = 5 * time.Second
)

type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	// RPS caps flushes per second; zero leaves them unpaced.
	RPS int
}

// Exporter batches block exports and writes them to the repository in the background.
type Exporter struct {
	repo    Repository
	metrics Metrics
	logger  *zap.Logger
	batcher *batcher.Batcher[model.BlockExport]
}

func NewExporter(cfg Config, repo Repository, metrics Metrics, logger *zap.Logger) *Exporter {
	if cfg.FlushSize < 1 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}

	e := &Exporter{repo: repo, metrics: metrics, logger: logger}
	e.batcher = batcher.New[model.BlockExport](
		logger.Named("exportBatcher"),
		e.flush,
		cfg.FlushSize,
		cfg.FlushInterval,
		cfg.RPS,
	)
	return e
}

func (e *Exporter) Start(ctx context.Context) {
	e.batcher.Start(ctx)
}

// Stop flushes what is queued and waits for the background loop.
func (e *Exporter) Stop() {
	e.batcher.Stop()
}

// Export queues block for the next flush.
func (e *Exporter) Export(ctx context.Context, block model.BlockExport) error {
	if err := e.batcher.Add(ctx, block); err != nil {
		if e.metrics != nil {
			e.metrics.IncDropped()
		}
		return fmt.Errorf("queue block %d: %w", block.Height, err)
	}
	return nil
}

func (e *Exporter) flush(ctx context.Context, blocks []model.BlockExport) (err error) {
	started := time.Now()
	defer func() {
		if e.metrics != nil {
			e.metrics.ObserveFlush(err, len(blocks), started)
		}
	}()

	var (
		addresses []model.AddressTransaction
		specials  []model.SpecialTransactionExport
	)
	for _, block := range blocks {
		addresses = append(addresses, block.AddressTransactions...)
		specials = append(specials, block.SpecialTransactions...)
	}

	if err = e.repo.InsertAddressTransactions(ctx, addresses); err != nil {
		return fmt.Errorf("export address transactions: %w", err)
	}
	if err = e.repo.InsertSpecialTransactions(ctx, specials); err != nil {
		return fmt.Errorf("export special transactions: %w", err)
	}

	e.logger.Debug("ledger flushed",
		zap.Int("blocks", len(blocks)),
		zap.Int("addressTransactions", len(addresses)),
		zap.Int("specials", len(specials)),
	)
	return nil
}
