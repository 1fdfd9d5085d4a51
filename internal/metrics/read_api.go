package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	readAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "read_api",
		Name:      "requests_total",
		Help:      "Count of explorer read API requests by envelope result.",
	}, []string{"route", "result"})
	readAPIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "read_api",
		Name:      "request_duration_seconds",
		Help:      "Duration of explorer read API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "result"})
)

// ReadAPI tracks explorer read API requests.
type ReadAPI struct{}

func NewReadAPI() *ReadAPI {
	return &ReadAPI{}
}

// Observe records a request; result is "success" or the error envelope name.
func (m ReadAPI) Observe(route, result string, started time.Time) {
	readAPIRequestsTotal.WithLabelValues(route, result).Inc()
	readAPIRequestDuration.WithLabelValues(route, result).Observe(time.Since(started).Seconds())
}
