package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsync",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of wallet RPC operations.",
	}, []string{"operation", "wallet", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletsync",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of wallet RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "wallet", "status"})
	rpcRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsync",
		Subsystem: "rpc_client",
		Name:      "retries_total",
		Help:      "Count of retried wallet RPC attempts.",
	}, []string{"operation", "wallet"})
)

// RPCClient tracks metrics for calls to the wallet RPC server.
type RPCClient struct {
	wallet string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(wallet string) *RPCClient {
	if wallet == "" {
		wallet = "unknown"
	}
	return &RPCClient{wallet: wallet}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	rpcRequestsTotal.WithLabelValues(operation, m.wallet, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.wallet, status).Observe(time.Since(started).Seconds())
}

// ObserveRetry records a failed attempt that will be retried.
func (m RPCClient) ObserveRetry(operation string) {
	rpcRetriesTotal.WithLabelValues(operation, m.wallet).Inc()
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, model.ErrClosed):
		return "closed"
	default:
		return "error"
	}
}
