package listener

import (
	"context"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
	"go.uber.org/zap"
)

type logging struct {
	logger *zap.Logger
}

// NewLogging returns a listener that writes every notification to logger.
func NewLogging(logger *zap.Logger) Listener {
	return &logging{logger: logger}
}

func (l *logging) OnNewBlock(_ context.Context, height uint64) error {
	l.logger.Info("new block", zap.Uint64("height", height))
	return nil
}

func (l *logging) OnBalancesChanged(_ context.Context, balance, unlockedBalance uint64) error {
	l.logger.Info("balances changed",
		zap.Uint64("balance", balance),
		zap.Uint64("unlocked_balance", unlockedBalance))
	return nil
}

func (l *logging) OnOutputReceived(_ context.Context, output *model.Output) error {
	l.logger.Info("output received", outputFields(output)...)
	return nil
}

func (l *logging) OnOutputSpent(_ context.Context, output *model.Output) error {
	l.logger.Info("output spent", outputFields(output)...)
	return nil
}

func outputFields(output *model.Output) []zap.Field {
	fields := make([]zap.Field, 0, 6)
	if tx := output.Tx(); tx != nil {
		fields = append(fields,
			zap.String("tx", tx.Hash),
			zap.String("state", string(tx.State)),
			zap.Bool("locked", tx.Locked()))
	}
	if output.Amount != nil {
		fields = append(fields, zap.Uint64("amount", *output.Amount))
	}
	if output.AccountIndex != nil {
		fields = append(fields, zap.Uint32("account", *output.AccountIndex))
	}
	if output.SubaddressIndex != nil {
		fields = append(fields, zap.Uint32("subaddress", *output.SubaddressIndex))
	}
	return fields
}
