package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exporterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "exporter",
		Name:      "flush_total",
		Help:      "Count of ledger export flushes.",
	}, []string{"coin", "network", "status"})

	exporterFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "exporter",
		Name:      "flush_duration_seconds",
		Help:      "Duration of ledger export flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	exporterFlushBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "exporter",
		Name:      "flush_blocks",
		Help:      "Number of blocks per export flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"coin", "network"})

	exporterDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "exporter",
		Name:      "dropped_blocks_total",
		Help:      "Count of blocks that could not be queued for export.",
	}, []string{"coin", "network"})
)

type Exporter struct {
	coin    model.Coin
	network model.Network
}

func NewExporter(coin model.Coin, network model.Network) *Exporter {
	return &Exporter{coin: orUnknown(coin), network: orUnknown(network)}
}

func (m Exporter) ObserveFlush(err error, blocks int, started time.Time) {
	status := statusOf(err)
	exporterFlushTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	exporterFlushDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	exporterFlushBlocks.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(blocks))
}

func (m Exporter) IncDropped() {
	exporterDroppedTotal.WithLabelValues(string(m.coin), string(m.network)).Inc()
}
