package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "blocks_total",
		Help:      "Count of processed blocks.",
	}, []string{"coin", "network", "status"})

	indexerBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "block_duration_seconds",
		Help:      "Duration of fetching, enriching and folding one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	indexerBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "block_transactions",
		Help:      "Number of transactions per processed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"coin", "network"})

	indexerFoldAppends = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "fold_appends_total",
		Help:      "Count of address index appends.",
	}, []string{"coin", "network"})

	indexerSpecialTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "special_transactions_total",
		Help:      "Count of stored node-registration transactions.",
	}, []string{"coin", "network"})

	indexerScannedHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "scanned_height",
		Help:      "Last fully folded block height.",
	}, []string{"coin", "network"})

	indexerCollectionSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "collection_size_bytes",
		Help:      "Collection size reported by collStats.",
	}, []string{"coin", "network", "collection"})

	indexerCollectionCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "collection_documents",
		Help:      "Collection document count reported by collStats.",
	}, []string{"coin", "network", "collection"})

	indexerCollectionAvgObjSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "collection_avg_object_size_bytes",
		Help:      "Average document size reported by collStats.",
	}, []string{"coin", "network", "collection"})
)

type Indexer struct {
	coin    model.Coin
	network model.Network
}

func NewIndexer(coin model.Coin, network model.Network) *Indexer {
	return &Indexer{coin: orUnknown(coin), network: orUnknown(network)}
}

func (m Indexer) ObserveBlock(err error, txs int, started time.Time) {
	status := statusOf(err)
	indexerBlocksTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	indexerBlockDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		indexerBlockTransactions.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(txs))
	}
}

func (m Indexer) ObserveFold(appends, specials int) {
	indexerFoldAppends.WithLabelValues(string(m.coin), string(m.network)).Add(float64(appends))
	indexerSpecialTransactions.WithLabelValues(string(m.coin), string(m.network)).Add(float64(specials))
}

func (m Indexer) SetScannedHeight(height uint64) {
	indexerScannedHeight.WithLabelValues(string(m.coin), string(m.network)).Set(float64(height))
}

func (m Indexer) SetCollectionStats(stats model.CollectionStats) {
	indexerCollectionSize.WithLabelValues(string(m.coin), string(m.network), stats.Collection).Set(float64(stats.Size))
	indexerCollectionCount.WithLabelValues(string(m.coin), string(m.network), stats.Collection).Set(float64(stats.Count))
	indexerCollectionAvgObjSize.WithLabelValues(string(m.coin), string(m.network), stats.Collection).Set(float64(stats.AvgObjSize))
}
