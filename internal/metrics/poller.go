package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollerCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsync",
		Subsystem: "poller",
		Name:      "cycles_total",
		Help:      "Count of poll cycles.",
	}, []string{"wallet", "status"})

	pollerCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletsync",
		Subsystem: "poller",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of poll cycles, including listener callbacks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"wallet", "status"})

	pollerSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsync",
		Subsystem: "poller",
		Name:      "skipped_cycles_total",
		Help:      "Count of poll requests skipped because a cycle was in flight.",
	}, []string{"wallet"})

	pollerNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsync",
		Subsystem: "poller",
		Name:      "notifications_total",
		Help:      "Count of notifications emitted to listeners.",
	}, []string{"wallet", "event"})

	confirmationDrift = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletsync",
		Subsystem: "graph",
		Name:      "confirmation_drift_blocks",
		Help:      "Confirmation count differences above the tolerated drift.",
		Buckets:   prometheus.LinearBuckets(2, 1, 10),
	}, []string{"wallet"})
)

// Poller tracks metrics for a wallet's change poller.
type Poller struct {
	wallet string
}

// NewPoller constructs a Poller metrics collector.
func NewPoller(wallet string) *Poller {
	if wallet == "" {
		wallet = "unknown"
	}
	return &Poller{wallet: wallet}
}

// ObserveCycle records a poll cycle outcome and duration.
func (m Poller) ObserveCycle(err error, started time.Time) {
	status := statusOf(err)
	pollerCycleTotal.WithLabelValues(m.wallet, status).Inc()
	pollerCycleDuration.WithLabelValues(m.wallet, status).Observe(time.Since(started).Seconds())
}

// ObserveSkippedCycle records a poll request dropped while a cycle was running.
func (m Poller) ObserveSkippedCycle() {
	pollerSkippedTotal.WithLabelValues(m.wallet).Inc()
}

// ObserveNotification records one notification of the given event.
func (m Poller) ObserveNotification(event string) {
	pollerNotificationsTotal.WithLabelValues(m.wallet, event).Inc()
}

// ObserveConfirmationDrift records a confirmation count difference above the
// tolerated drift.
func (m Poller) ObserveConfirmationDrift(drift uint64) {
	confirmationDrift.WithLabelValues(m.wallet).Observe(float64(drift))
}
