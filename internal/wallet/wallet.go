// Package wallet binds one wallet backend to its listeners, its query engine
// and its change poller. Nothing is shared between Wallet instances.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/listener"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/poller"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/query"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrNotSubscribed is returned by Unsubscribe for a listener that was never added.
var ErrNotSubscribed = errors.New("listener is not subscribed")

// Query kinds reported to QueryMetrics.
const (
	QueryTxs       = "txs"
	QueryTransfers = "transfers"
	QueryOutputs   = "outputs"
)

type (
	// Backend is the wallet server a Wallet reads from. Close releases it.
	Backend interface {
		poller.Source
		query.Source
		Close() error
	}

	// QueryMetrics records query calls.
	QueryMetrics interface {
		Observe(kind string, err error, results int, started time.Time)
	}
)

// Config wires the collectors and poller settings of a Wallet.
type Config struct {
	Poller        poller.Config
	PollerMetrics poller.Metrics
	QueryMetrics  QueryMetrics
}

// Wallet is safe for concurrent use.
type Wallet struct {
	backend  Backend
	registry *listener.Registry
	engine   *query.Engine
	poller   *poller.Poller
	metrics  QueryMetrics
	logger   *zap.Logger

	mu     sync.RWMutex
	closed bool
}

// New wires a Wallet around backend. Polling does not start until Start.
func New(backend Backend, cfg Config, logger *zap.Logger) (*Wallet, error) {
	if backend == nil {
		return nil, errors.New("wallet backend is required")
	}
	if cfg.PollerMetrics == nil || cfg.QueryMetrics == nil {
		return nil, errors.New("wallet metrics are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := listener.NewRegistry(logger.Named("listeners"))
	p, err := poller.New(backend, registry, cfg.PollerMetrics, logger.Named("poller"), cfg.Poller)
	if err != nil {
		return nil, fmt.Errorf("create poller: %w", err)
	}

	return &Wallet{
		backend:  backend,
		registry: registry,
		engine:   query.NewEngine(backend, logger.Named("query"), cfg.PollerMetrics),
		poller:   p,
		metrics:  cfg.QueryMetrics,
		logger:   logger,
	}, nil
}

// Subscribe adds l to the end of the notification order. Adding the same
// listener twice has no effect.
func (w *Wallet) Subscribe(l listener.Listener) error {
	if l == nil {
		return errors.New("listener is required")
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return model.ErrClosed
	}
	return w.registry.Add(l)
}

// Unsubscribe removes l. Notifications already being delivered still reach it.
func (w *Wallet) Unsubscribe(l listener.Listener) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return model.ErrClosed
	}
	if !w.registry.Remove(l) {
		return ErrNotSubscribed
	}
	return nil
}

// Listeners returns the subscribed listeners in notification order.
func (w *Wallet) Listeners() []listener.Listener {
	return w.registry.Listeners()
}

// GetTxs returns the transactions matching q. See query.Engine.GetTxs for how
// missing is used.
func (w *Wallet) GetTxs(ctx context.Context, q *query.TxQuery, missing *[]string) (txs []*model.Tx, err error) {
	started := time.Now()
	defer func() {
		w.metrics.Observe(QueryTxs, err, len(txs), started)
	}()
	if err := w.checkOpen(); err != nil {
		return nil, err
	}
	return w.engine.GetTxs(ctx, q, missing)
}

// GetTransfers returns the transfers matching q.
func (w *Wallet) GetTransfers(ctx context.Context, q *query.TransferQuery) (transfers []*model.Transfer, err error) {
	started := time.Now()
	defer func() {
		w.metrics.Observe(QueryTransfers, err, len(transfers), started)
	}()
	if err := w.checkOpen(); err != nil {
		return nil, err
	}
	return w.engine.GetTransfers(ctx, q)
}

// GetOutputs returns the outputs matching q.
func (w *Wallet) GetOutputs(ctx context.Context, q *query.OutputQuery) (outputs []*model.Output, err error) {
	started := time.Now()
	defer func() {
		w.metrics.Observe(QueryOutputs, err, len(outputs), started)
	}()
	if err := w.checkOpen(); err != nil {
		return nil, err
	}
	return w.engine.GetOutputs(ctx, q)
}

// Start polls the backend every period until Stop or Close.
func (w *Wallet) Start(period time.Duration) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return model.ErrClosed
	}
	return w.poller.Start(period)
}

// Stop ends polling after the cycle in flight, if any.
func (w *Wallet) Stop() error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	w.poller.Stop()
	return nil
}

// Poll runs one cycle now unless a cycle is already running.
func (w *Wallet) Poll(ctx context.Context) error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	return w.poller.Poll(ctx)
}

// IsPolling reports whether background polling is active.
func (w *Wallet) IsPolling() bool {
	return w.poller.IsPolling()
}

// Close stops polling, waits for the cycle in flight, drops every listener
// and closes the backend. If ctx ends first the backend is closed anyway and
// ctx's error is returned. Closing twice is a no-op.
func (w *Wallet) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	w.poller.Stop()
	var waitErr error
	select {
	case <-w.poller.Done():
	case <-ctx.Done():
		waitErr = ctx.Err()
		w.logger.Warn("closing wallet with a poll cycle in flight", zap.Error(waitErr))
	}

	for _, l := range w.registry.Listeners() {
		w.registry.Remove(l)
	}
	if err := w.backend.Close(); err != nil {
		return fmt.Errorf("close backend: %w", err)
	}
	w.logger.Info("wallet closed")
	return waitErr
}

func (w *Wallet) checkOpen() error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return model.ErrClosed
	}
	return nil
}
