package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsync",
		Subsystem: "query",
		Name:      "queries_total",
		Help:      "Count of wallet queries.",
	}, []string{"wallet", "kind", "status"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletsync",
		Subsystem: "query",
		Name:      "query_duration_seconds",
		Help:      "Duration of wallet queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"wallet", "kind", "status"})

	queryResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletsync",
		Subsystem: "query",
		Name:      "results",
		Help:      "Number of entities returned per query.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"wallet", "kind"})
)

// Query tracks metrics for wallet queries.
type Query struct {
	wallet string
}

// NewQuery constructs a Query metrics collector.
func NewQuery(wallet string) *Query {
	if wallet == "" {
		wallet = "unknown"
	}
	return &Query{wallet: wallet}
}

// Observe records a query outcome, duration and result size.
func (m Query) Observe(kind string, err error, results int, started time.Time) {
	status := statusOf(err)
	queryTotal.WithLabelValues(m.wallet, kind, status).Inc()
	queryDuration.WithLabelValues(m.wallet, kind, status).Observe(time.Since(started).Seconds())
	if err == nil {
		queryResults.WithLabelValues(m.wallet, kind).Observe(float64(results))
	}
}
