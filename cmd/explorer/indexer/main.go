package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/node"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/repository/mongo"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/service/export"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/service/indexer"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/metrics"
	rpcclient2 "github.com/goodnatureofminers/blockinsight7000-explorer/internal/pkg/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Coin    model.Coin    `long:"coin" env:"EXPLORER_COIN" description:"coin name" default:"FLUX"`
	Network model.Network `long:"network" env:"EXPLORER_NETWORK" description:"network name" default:"mainnet"`

	MongoURI      string `long:"mongo-uri" env:"EXPLORER_MONGO_URI" description:"MongoDB connection URI" default:"mongodb://127.0.0.1:27017"`
	MongoDatabase string `long:"mongo-database" env:"EXPLORER_MONGO_DATABASE" description:"MongoDB database holding the indexes" default:"zelcashdata"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"EXPLORER_CLICKHOUSE_DSN" description:"ClickHouse DSN for the ledger export, disabled when empty"`

	RPCURL      string `long:"rpc-url" env:"EXPLORER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:16124"`
	RPCUser     string `long:"rpc-user" env:"EXPLORER_RPC_USER" description:"node RPC username"`
	RPCPassword string `long:"rpc-password" env:"EXPLORER_RPC_PASSWORD" description:"node RPC password"`
	NodeRPS     int    `long:"node-rps" env:"EXPLORER_NODE_RPS" description:"max node requests per second, 0 for unlimited" default:"0"`
	ChainParams string `long:"chain-params" env:"EXPLORER_CHAIN_PARAMS" description:"address params used to decode addresses the node omits: flux or flux-testnet for Flux, main, testnet, regtest or signet for bitcoin; empty disables decoding"`

	StartHeight       uint64        `long:"start-height" env:"EXPLORER_START_HEIGHT" description:"first height to scan, 1 resets the indexes" default:"1"`
	EndHeight         uint64        `long:"end-height" env:"EXPLORER_END_HEIGHT" description:"last height to scan, 0 for the node tip"`
	NodeConcurrency   int           `long:"node-concurrency" env:"EXPLORER_NODE_CONCURRENCY" description:"concurrent transaction fetches per block" default:"1"`
	FoldConcurrency   int           `long:"fold-concurrency" env:"EXPLORER_FOLD_CONCURRENCY" description:"concurrent address index writers per block" default:"1"`
	StatsInterval     uint64        `long:"stats-interval" env:"EXPLORER_STATS_INTERVAL" description:"blocks between index statistics reports" default:"100"`
	ProgressInterval  uint64        `long:"progress-interval" env:"EXPLORER_PROGRESS_INTERVAL" description:"blocks between progress logs" default:"50"`
	NodeReadyAttempts int           `long:"node-ready-attempts" env:"EXPLORER_NODE_READY_ATTEMPTS" description:"node readiness probes before giving up" default:"30"`
	NodeReadyInterval time.Duration `long:"node-ready-interval" env:"EXPLORER_NODE_READY_INTERVAL" description:"delay between node readiness probes" default:"10s"`

	ExportFlushSize     int           `long:"export-flush-size" env:"EXPLORER_EXPORT_FLUSH_SIZE" description:"blocks per ledger flush" default:"100"`
	ExportFlushInterval time.Duration `long:"export-flush-interval" env:"EXPLORER_EXPORT_FLUSH_INTERVAL" description:"max delay before a ledger flush" default:"5s"`

	MetricsAddr string `long:"metrics-addr" env:"EXPLORER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	logger = logger.With(zap.String("coin", string(cfg.Coin)), zap.String("network", string(cfg.Network)))
	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("explorer indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := rpcclient2.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network), cfg.NodeRPS)
	nodeClient := node.NewClient(rpc)

	decoder, err := node.NewScriptDecoder(cfg.ChainParams)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	enricher := indexer.NewEnricher(nodeClient, node.NewOutputConverter(decoder))

	mongoOpener := mongo.NewOpener(cfg.MongoURI, cfg.MongoDatabase, cfg.Coin, cfg.Network, metrics.NewMongoRepository())
	opener := indexer.StoreOpenerFunc(func(ctx context.Context) (indexer.Store, error) {
		store, err := mongoOpener.Open(ctx)
		if err != nil {
			return nil, err
		}
		return store, nil
	})

	var exporter indexer.Exporter
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Coin, cfg.Network, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init clickhouse repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse", zap.Error(err))
			}
		}()

		ledger := export.NewExporter(export.Config{
			FlushSize:     cfg.ExportFlushSize,
			FlushInterval: cfg.ExportFlushInterval,
		}, repo, metrics.NewExporter(cfg.Coin, cfg.Network), logger.Named("export"))
		ledger.Start(ctx)
		defer ledger.Stop()
		exporter = ledger
	}

	scanner := indexer.NewScanner(indexer.Config{
		StartHeight:       cfg.StartHeight,
		EndHeight:         cfg.EndHeight,
		NodeConcurrency:   cfg.NodeConcurrency,
		FoldConcurrency:   cfg.FoldConcurrency,
		StatsInterval:     cfg.StatsInterval,
		ProgressInterval:  cfg.ProgressInterval,
		NodeReadyAttempts: cfg.NodeReadyAttempts,
		NodeReadyInterval: cfg.NodeReadyInterval,
	}, nodeClient, enricher, opener, exporter, metrics.NewIndexer(cfg.Coin, cfg.Network), logger.Named("scanner"))

	return scanner.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
