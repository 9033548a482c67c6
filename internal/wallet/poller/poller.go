// Package poller turns differences between successive snapshots of a wallet
// backend into block, output and balance notifications.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/walletsync-backend/internal/clock"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/graph"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrRunning is returned by Start when the poller is already running.
	ErrRunning = errors.New("poller already running")
	// ErrInvalidPeriod is returned by Start for a non-positive period.
	ErrInvalidPeriod = errors.New("poll period must be positive")
	// ErrCyclePanicked wraps a value recovered from a panicking cycle.
	ErrCyclePanicked = errors.New("poll cycle panicked")
)

// Config tunes a Poller. The zero value uses the defaults.
type Config struct {
	// LockedWindow is how many blocks below the tip are searched for locked
	// transactions.
	LockedWindow uint64
	// Wake, when set, starts the next cycle before the period has elapsed.
	Wake <-chan struct{}
}

// Poller runs at most one poll cycle at a time. Start schedules cycles with a
// fixed delay; Poll runs one cycle on demand.
type Poller struct {
	source   Source
	notifier Notifier
	metrics  Metrics
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error
	wake     <-chan struct{}
	window   uint64

	inFlight atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	// owned by the cycle holding inFlight
	state state
}

type state struct {
	bootstrapped bool
	height       uint64

	// locked transactions seen so far, merged across cycles
	tracked *graph.Graph

	announcedUnconfirmed map[string]struct{}
	announcedConfirmed   map[string]struct{}
	balance              uint64
	unlockedBalance      uint64
}

// New builds a Poller.
func New(source Source, notifier Notifier, metrics Metrics, logger *zap.Logger, cfg Config) (*Poller, error) {
	if source == nil {
		return nil, errors.New("poller source is required")
	}
	if notifier == nil {
		return nil, errors.New("poller notifier is required")
	}
	if metrics == nil {
		return nil, errors.New("poller metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	window := cfg.LockedWindow
	if window == 0 {
		window = DefaultLockedWindow
	}

	done := make(chan struct{})
	close(done)
	return &Poller{
		source:   source,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		sleep:    clock.SleepWithContext,
		wake:     cfg.Wake,
		window:   window,
		done:     done,
	}, nil
}

// Start begins polling in the background, running the first cycle at once.
func (p *Poller) Start(period time.Duration) error {
	if period <= 0 {
		return ErrInvalidPeriod
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return ErrRunning
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.run(ctx, period, p.done)

	p.logger.Info("polling started", zap.Duration("period", period))
	return nil
}

// Stop ends polling at the next cycle boundary. It does not wait for an
// in-flight cycle; use Done for that. Stop is safe to call from a listener.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.cancel = nil
	p.logger.Info("polling stopped")
}

// Done is closed once the polling loop has exited.
func (p *Poller) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// IsPolling reports whether the poller was started and not yet stopped.
func (p *Poller) IsPolling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Poll runs one cycle. It returns immediately when a cycle is already in
// flight. A closed backend makes the cycle a no-op.
func (p *Poller) Poll(ctx context.Context) error {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.metrics.ObserveSkippedCycle()
		p.logger.Debug("cycle in flight, skipping poll")
		return nil
	}
	defer p.inFlight.Store(false)

	started := time.Now()
	logger := p.logger.With(zap.String("cycle", uuid.NewString()))
	err := p.safeCycle(ctx, logger)
	p.metrics.ObserveCycle(err, started)
	if errors.Is(err, model.ErrClosed) {
		logger.Debug("wallet closed, cycle skipped")
		return nil
	}
	return err
}

// safeCycle runs a cycle and turns a panic into an error, so a faulty
// notifier cannot take down the polling loop.
func (p *Poller) safeCycle(ctx context.Context, logger *zap.Logger) (err error) {
	defer func() {
		if v := recover(); v != nil {
			logger.Error("poll cycle panicked", zap.Any("panic", v), zap.Stack("stack"))
			err = fmt.Errorf("%w: %v", ErrCyclePanicked, v)
		}
	}()
	return p.cycle(ctx, logger)
}

func (p *Poller) run(ctx context.Context, period time.Duration, done chan struct{}) {
	defer close(done)

	// in-flight calls outlive Stop
	callCtx := context.WithoutCancel(ctx)
	for {
		started := time.Now()
		if err := p.Poll(callCtx); err != nil {
			p.logger.Error("poll cycle failed", zap.Error(err))
		}
		if err := p.wait(ctx, clock.Remaining(period, time.Since(started))); err != nil {
			return
		}
	}
}

func (p *Poller) wait(ctx context.Context, d time.Duration) error {
	if p.wake == nil {
		return p.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.wake:
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *Poller) cycle(ctx context.Context, logger *zap.Logger) error {
	height, err := p.source.Height(ctx)
	if err != nil {
		return fmt.Errorf("get height: %w", err)
	}
	if !p.state.bootstrapped {
		return p.bootstrap(ctx, logger, height)
	}

	for h := p.state.height + 1; h <= height; h++ {
		p.notifier.NotifyNewBlock(ctx, h)
		p.metrics.ObserveNotification(eventNewBlock)
	}
	if height < p.state.height {
		logger.Warn("height went backwards", zap.Uint64("previous", p.state.height), zap.Uint64("height", height))
	}
	p.state.height = height

	minHeight := windowStart(height, p.window)
	observed, err := p.fetchLocked(ctx, logger, minHeight)
	if err != nil {
		return err
	}

	tracked := p.state.tracked
	tracked.ResetPool()
	var gone []string
	for _, tx := range tracked.Txs() {
		if _, ok := observed.Tx(tx.Hash); !ok {
			gone = append(gone, tx.Hash)
		}
	}
	sort.Strings(gone)

	locked, err := p.track(logger, observed)
	if err != nil {
		return err
	}

	var unlocked []*model.Tx
	if len(gone) > 0 {
		unlocked, err = p.fetchUnlocked(ctx, logger, gone, minHeight)
		if err != nil {
			return err
		}
	}

	for _, tx := range locked {
		announced := p.state.announcedUnconfirmed
		if tx.IsConfirmed() {
			announced = p.state.announcedConfirmed
		}
		if _, ok := announced[tx.Hash]; ok {
			continue
		}
		announced[tx.Hash] = struct{}{}
		p.announce(ctx, tx, tx.IsConfirmed())
	}

	unlockedHashes := make(map[string]struct{}, len(unlocked))
	for _, tx := range unlocked {
		unlockedHashes[tx.Hash] = struct{}{}
		p.forget(tx.Hash)
		p.announce(ctx, tx, true)
		tracked.Evict(tx.Hash)
	}
	for _, hash := range gone {
		if _, ok := unlockedHashes[hash]; ok {
			continue
		}
		logger.Info("locked tx vanished", zap.String("hash", hash))
		p.forget(hash)
		tracked.Evict(hash)
	}

	balance, unlockedBalance, err := p.source.Balances(ctx)
	if err != nil {
		return fmt.Errorf("get balances: %w", err)
	}
	if balance != p.state.balance || unlockedBalance != p.state.unlockedBalance {
		p.state.balance, p.state.unlockedBalance = balance, unlockedBalance
		p.notifier.NotifyBalancesChanged(ctx, balance, unlockedBalance)
		p.metrics.ObserveNotification(eventBalancesChanged)
	}

	logger.Debug("cycle done",
		zap.Uint64("height", height),
		zap.Int("locked", len(locked)),
		zap.Int("unlocked", len(unlocked)),
		zap.Int("tracked", tracked.Len()),
		zap.Int("blocks", len(tracked.Blocks())))
	return nil
}

// bootstrap captures the baseline without notifying. Transactions locked at
// this point count as announced in their current bucket.
func (p *Poller) bootstrap(ctx context.Context, logger *zap.Logger, height uint64) error {
	observed, err := p.fetchLocked(ctx, logger, windowStart(height, p.window))
	if err != nil {
		return err
	}
	balance, unlockedBalance, err := p.source.Balances(ctx)
	if err != nil {
		return fmt.Errorf("get balances: %w", err)
	}

	p.state = state{
		height:               height,
		tracked:              graph.New(p.logger.Named("tracked"), nil),
		announcedUnconfirmed: make(map[string]struct{}),
		announcedConfirmed:   make(map[string]struct{}),
		balance:              balance,
		unlockedBalance:      unlockedBalance,
	}
	locked, err := p.track(logger, observed)
	if err != nil {
		return err
	}
	p.state.bootstrapped = true
	for _, tx := range locked {
		if tx.IsConfirmed() {
			p.state.announcedConfirmed[tx.Hash] = struct{}{}
		} else {
			p.state.announcedUnconfirmed[tx.Hash] = struct{}{}
		}
	}

	logger.Info("captured baseline",
		zap.Uint64("height", height),
		zap.Int("locked", len(locked)),
		zap.Uint64("balance", balance),
		zap.Uint64("unlocked_balance", unlockedBalance))
	return nil
}

func (p *Poller) fetchLocked(ctx context.Context, logger *zap.Logger, minHeight uint64) (*graph.Graph, error) {
	txs, err := p.source.LockedTxs(ctx, minHeight, true)
	if err != nil {
		return nil, fmt.Errorf("get locked txs: %w", err)
	}

	g := graph.New(logger, p.metrics)
	for _, tx := range txs {
		if _, err := g.MergeTx(tx); err != nil {
			return nil, fmt.Errorf("merge locked tx: %w", err)
		}
	}
	return g, nil
}

// track merges this cycle's locked transactions into the tracked graph and
// returns their canonical instances. Confirmation counts only grow while a
// transaction stays at its height. An observation that contradicts the
// tracked transaction, such as a new height after a reorg, replaces it.
func (p *Poller) track(logger *zap.Logger, observed *graph.Graph) ([]*model.Tx, error) {
	tracked := p.state.tracked
	locked := make([]*model.Tx, 0, observed.Len())
	for _, tx := range observed.Txs() {
		if prev, ok := tracked.Tx(tx.Hash); ok {
			p.checkLag(logger, prev, tx)
		}
		canonical, err := tracked.MergeTx(tx)
		if err != nil {
			logger.Info("tracked tx replaced", zap.String("hash", tx.Hash), zap.Error(err))
			tracked.Evict(tx.Hash)
			if canonical, err = tracked.MergeTx(tx); err != nil {
				return nil, fmt.Errorf("track tx %s: %w", tx.Hash, err)
			}
		}
		locked = append(locked, canonical)
	}
	return locked, nil
}

func (p *Poller) fetchUnlocked(ctx context.Context, logger *zap.Logger, hashes []string, minHeight uint64) ([]*model.Tx, error) {
	txs, err := p.source.UnlockedTxs(ctx, hashes, minHeight)
	if err != nil {
		return nil, fmt.Errorf("get unlocked txs: %w", err)
	}

	g := graph.New(logger, p.metrics)
	for _, tx := range txs {
		if _, err := g.MergeTx(tx); err != nil {
			return nil, fmt.Errorf("merge unlocked tx: %w", err)
		}
	}

	requested := make(map[string]struct{}, len(hashes))
	for _, hash := range hashes {
		requested[hash] = struct{}{}
	}
	unlocked := make([]*model.Tx, 0, g.Len())
	for _, tx := range g.Txs() {
		if _, ok := requested[tx.Hash]; !ok || tx.Locked() {
			continue
		}
		unlocked = append(unlocked, tx)
	}
	return unlocked, nil
}

// checkLag reports an observation whose confirmation count trails the tracked
// one by more than a block at the same height.
func (p *Poller) checkLag(logger *zap.Logger, prev, cur *model.Tx) {
	if prev.Height == nil || cur.Height == nil || *prev.Height != *cur.Height {
		return
	}
	if prev.Confirmations == nil || cur.Confirmations == nil || *prev.Confirmations <= *cur.Confirmations+1 {
		return
	}
	logger.Warn("confirmations went backwards",
		zap.String("hash", cur.Hash),
		zap.Uint64("previous", *prev.Confirmations),
		zap.Uint64("observed", *cur.Confirmations))
	p.metrics.ObserveConfirmationDrift(*prev.Confirmations - *cur.Confirmations)
}

// announce emits the outputs a transaction received and, when withSpent is
// set, the output it spent.
func (p *Poller) announce(ctx context.Context, tx *model.Tx, withSpent bool) {
	if withSpent {
		for _, output := range tx.SpentOutputs() {
			p.notifier.NotifyOutputSpent(ctx, output)
			p.metrics.ObserveNotification(eventOutputSpent)
		}
	}
	if !tx.IsIncoming() {
		return
	}
	for _, output := range tx.ReceivedOutputs() {
		p.notifier.NotifyOutputReceived(ctx, output)
		p.metrics.ObserveNotification(eventOutputReceived)
	}
}

func (p *Poller) forget(hash string) {
	delete(p.state.announcedUnconfirmed, hash)
	delete(p.state.announcedConfirmed, hash)
}

func windowStart(height, window uint64) uint64 {
	if height <= window {
		return 0
	}
	return height - window
}
