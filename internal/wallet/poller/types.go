package poller

import (
	"context"
	"time"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source is the part of the wallet backend the poller reads.
	Source interface {
		Height(ctx context.Context) (uint64, error)
		// LockedTxs returns locked transactions at or above minHeight, plus
		// every unconfirmed one.
		LockedTxs(ctx context.Context, minHeight uint64, includeOutputs bool) ([]*model.Tx, error)
		// UnlockedTxs returns the unlocked transactions among hashes. Hashes
		// the backend no longer knows are left out.
		UnlockedTxs(ctx context.Context, hashes []string, minHeight uint64) ([]*model.Tx, error)
		Balances(ctx context.Context) (balance, unlockedBalance uint64, err error)
	}

	Notifier interface {
		NotifyNewBlock(ctx context.Context, height uint64)
		NotifyBalancesChanged(ctx context.Context, balance, unlockedBalance uint64)
		NotifyOutputReceived(ctx context.Context, output *model.Output)
		NotifyOutputSpent(ctx context.Context, output *model.Output)
	}

	Metrics interface {
		ObserveCycle(err error, started time.Time)
		ObserveSkippedCycle()
		ObserveNotification(event string)
		ObserveConfirmationDrift(drift uint64)
	}
)
