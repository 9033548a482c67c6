package listener

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
	"go.uber.org/zap"
)

var (
	// ErrNotComparable is returned by Add for listeners whose dynamic type
	// cannot be compared, such as struct values holding slices or maps.
	// Register a pointer to the value instead.
	ErrNotComparable = errors.New("listener type is not comparable")
	// ErrPanicked wraps a value recovered from a listener callback.
	ErrPanicked = errors.New("listener panicked")
)

// Registry keeps subscribers in registration order and notifies them one at
// a time. Add and Remove are safe to call while a notification is running;
// the change applies to the next notification.
type Registry struct {
	logger *zap.Logger

	mu        sync.RWMutex
	listeners []Listener
}

// NewRegistry returns an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger}
}

// Add appends l. Adding the same listener twice is a no-op.
func (r *Registry) Add(l Listener) error {
	if l == nil {
		return nil
	}
	if !isComparable(l) {
		return fmt.Errorf("%w: %T", ErrNotComparable, l)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.Contains(r.listeners, l) {
		return nil
	}
	r.listeners = append(r.listeners, l)
	return nil
}

// Remove drops l and reports whether it was registered.
func (r *Registry) Remove(l Listener) bool {
	if l == nil || !isComparable(l) {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.Index(r.listeners, l)
	if i < 0 {
		return false
	}
	r.listeners = slices.Delete(r.listeners, i, i+1)
	return true
}

// Listeners returns a snapshot of the registered listeners.
func (r *Registry) Listeners() []Listener {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.listeners)
}

// Len returns the number of registered listeners.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners)
}

func (r *Registry) NotifyNewBlock(ctx context.Context, height uint64) {
	r.each("new block", func(l Listener) error {
		return l.OnNewBlock(ctx, height)
	})
}

func (r *Registry) NotifyBalancesChanged(ctx context.Context, balance, unlockedBalance uint64) {
	r.each("balances changed", func(l Listener) error {
		return l.OnBalancesChanged(ctx, balance, unlockedBalance)
	})
}

func (r *Registry) NotifyOutputReceived(ctx context.Context, output *model.Output) {
	r.each("output received", func(l Listener) error {
		return l.OnOutputReceived(ctx, output)
	})
}

func (r *Registry) NotifyOutputSpent(ctx context.Context, output *model.Output) {
	r.each("output spent", func(l Listener) error {
		return l.OnOutputSpent(ctx, output)
	})
}

// each calls fn for every listener in order; a failing or panicking listener
// does not stop the fan-out.
func (r *Registry) each(event string, fn func(Listener) error) {
	for i, l := range r.Listeners() {
		if err := r.call(event, i, l, fn); err != nil {
			r.logger.Error("listener failed",
				zap.String("event", event),
				zap.Int("listener", i),
				zap.Error(err))
		}
	}
}

func (r *Registry) call(event string, i int, l Listener, fn func(Listener) error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			r.logger.Error("listener panicked",
				zap.String("event", event),
				zap.Int("listener", i),
				zap.Any("panic", v),
				zap.Stack("stack"))
			err = fmt.Errorf("%w: %v", ErrPanicked, v)
		}
	}()
	return fn(l)
}

// isComparable reports whether l can be matched with ==. Interface equality
// panics at runtime when the dynamic type is not comparable.
func isComparable(l Listener) bool {
	return reflect.TypeOf(l).Comparable()
}
