// Package indexer scans the chain from the node and maintains the explorer indexes.
package indexer

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"go.uber.org/zap"
)

// ErrInvalidRange reports a start height above the end height.
var ErrInvalidRange = errors.New("invalid height range")

// Scanner walks block heights in ascending order, processing one block at a
// time and checkpointing the scanned height after each.
type Scanner struct {
	cfg       Config
	node      NodeClient
	opener    StoreOpener
	exporter  Exporter
	metrics   Metrics
	logger    *zap.Logger
	processor *blockProcessor
}

// NewScanner wires a scanner. exporter and metrics may be nil.
func NewScanner(
	cfg Config,
	node NodeClient,
	enricher *Enricher,
	opener StoreOpener,
	exporter Exporter,
	metrics Metrics,
	logger *zap.Logger,
) *Scanner {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		cfg:      cfg,
		node:     node,
		opener:   opener,
		exporter: exporter,
		metrics:  metrics,
		logger:   logger,
		processor: &blockProcessor{
			nodeConcurrency: cfg.NodeConcurrency,
			foldConcurrency: cfg.FoldConcurrency,
			node:            node,
			enricher:        enricher,
			metrics:         metrics,
			logger:          logger.Named("block"),
		},
	}
}

// Run scans from the configured start height through the end height, or the
// node tip when no end height is set. Height 1 resets every index first.
func (s *Scanner) Run(ctx context.Context) error {
	tip, err := s.waitForNode(ctx)
	if err != nil {
		return err
	}

	start, end := s.cfg.StartHeight, s.cfg.EndHeight
	if end == 0 {
		end = tip
	}
	if start > end {
		return fmt.Errorf("%w: start %d, end %d", ErrInvalidRange, start, end)
	}

	store, err := s.opener.Open(ctx)
	if err != nil {
		s.logger.Error("open store failed", zap.Error(err))
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			s.logger.Warn("close store failed", zap.Error(err))
		}
	}()

	s.logger.Info("scan started", zap.Uint64("start", start), zap.Uint64("end", end))
	for height := start; height <= end; height++ {
		if err := ctx.Err(); err != nil {
			s.logger.Info("scan stopped", zap.Uint64("height", height), zap.Error(err))
			return err
		}
		if err := s.scanHeight(ctx, store, height); err != nil {
			s.logger.Error("scan failed", zap.Uint64("height", height), zap.Error(err))
			return fmt.Errorf("block %d: %w", height, err)
		}
	}
	s.logger.Info("scan finished", zap.Uint64("end", end))
	return nil
}

func (s *Scanner) scanHeight(ctx context.Context, store Store, height uint64) error {
	if height == 1 {
		if err := store.Bootstrap(ctx); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		s.logger.Info("indexes reset")
	}

	export, err := s.processor.processBlock(ctx, store, height)
	if err != nil {
		return err
	}

	if s.exporter != nil {
		if err := s.exporter.Export(ctx, export); err != nil {
			s.logger.Warn("export failed", zap.Uint64("height", height), zap.Error(err))
		}
	}

	return s.checkpoint(ctx, store, height)
}

func (s *Scanner) checkpoint(ctx context.Context, store Store, height uint64) error {
	if err := store.SaveScannedHeight(ctx, height); err != nil {
		return fmt.Errorf("save scanned height: %w", err)
	}
	if s.metrics != nil {
		s.metrics.SetScannedHeight(height)
	}

	if height%s.cfg.ProgressInterval == 0 {
		s.logger.Info("scan progress", zap.Uint64("height", height))
	}
	if height%s.cfg.StatsInterval == 0 {
		s.reportStats(ctx, store, height)
	}
	return nil
}

func (s *Scanner) reportStats(ctx context.Context, store Store, height uint64) {
	stats, err := store.IndexStats(ctx)
	if err != nil {
		s.logger.Warn("index stats failed", zap.Uint64("height", height), zap.Error(err))
		return
	}
	for _, stat := range stats {
		s.logger.Info("index stats",
			zap.Uint64("height", height),
			zap.String("collection", stat.Collection),
			zap.Int64("size", stat.Size),
			zap.Int64("count", stat.Count),
			zap.Int64("avgObjSize", stat.AvgObjSize),
		)
		if s.metrics != nil {
			s.metrics.SetCollectionStats(stat)
		}
	}
}

func (s *Scanner) waitForNode(ctx context.Context) (uint64, error) {
	var tip uint64
	err := clock.Poll(ctx, s.cfg.NodeReadyAttempts, s.cfg.NodeReadyInterval, func(attempt int) error {
		count, err := s.node.BlockCount(ctx)
		if err != nil {
			s.logger.Warn("node not ready", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		tip = count
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("wait for node: %w", err)
	}
	return tip, nil
}
