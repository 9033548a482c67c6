// Package listener fans wallet notifications out to subscribers.
package listener

import (
	"context"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Listener receives wallet notifications. Calls for one wallet never overlap.
type Listener interface {
	OnNewBlock(ctx context.Context, height uint64) error
	OnBalancesChanged(ctx context.Context, balance, unlockedBalance uint64) error
	OnOutputReceived(ctx context.Context, output *model.Output) error
	OnOutputSpent(ctx context.Context, output *model.Output) error
}

// Nop ignores every notification. Embed it to implement a subset of Listener.
type Nop struct{}

func (Nop) OnNewBlock(context.Context, uint64) error { return nil }
func (Nop) OnBalancesChanged(context.Context, uint64, uint64) error { return nil }
func (Nop) OnOutputReceived(context.Context, *model.Output) error { return nil }
func (Nop) OnOutputSpent(context.Context, *model.Output) error { return nil }

// Funcs adapts plain functions to Listener. Unset functions are skipped.
// Use it by pointer so that Remove can find it again.
type Funcs struct {
	NewBlock        func(ctx context.Context, height uint64) error
	BalancesChanged func(ctx context.Context, balance, unlockedBalance uint64) error
	OutputReceived  func(ctx context.Context, output *model.Output) error
	OutputSpent     func(ctx context.Context, output *model.Output) error
}

func (f *Funcs) OnNewBlock(ctx context.Context, height uint64) error {
	if f.NewBlock == nil {
		return nil
	}
	return f.NewBlock(ctx, height)
}

func (f *Funcs) OnBalancesChanged(ctx context.Context, balance, unlockedBalance uint64) error {
	if f.BalancesChanged == nil {
		return nil
	}
	return f.BalancesChanged(ctx, balance, unlockedBalance)
}

func (f *Funcs) OnOutputReceived(ctx context.Context, output *model.Output) error {
	if f.OutputReceived == nil {
		return nil
	}
	return f.OutputReceived(ctx, output)
}

func (f *Funcs) OnOutputSpent(ctx context.Context, output *model.Output) error {
	if f.OutputSpent == nil {
		return nil
	}
	return f.OutputSpent(ctx, output)
}
