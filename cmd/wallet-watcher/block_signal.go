package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-zeromq/zmq4"
	"github.com/goodnatureofminers/walletsync-backend/internal/clock"
	"go.uber.org/zap"
)

// monerod publishes one frame per event, prefixed with its topic.
var blockSignalTopics = []string{"json-minimal-chain_main", "json-minimal-txpool_add"}

const blockSignalRedial = 5 * time.Second

// startBlockSignal subscribes to a monerod ZMQ publisher and signals on every
// new block or pool transaction. An empty addr disables the signal.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	sub, err := newSubscriber(ctx, addr, blockSignalTopics...)
	if err != nil {
		return nil, fmt.Errorf("connect zmq: %w", err)
	}

	notify := make(chan struct{}, 1)
	logger = logger.Named("zmq").With(zap.String("addr", addr))

	go func() {
		for {
			msg, err := sub.Recv()
			if err != nil {
				_ = sub.Close()
				if ctx.Err() != nil {
					return
				}
				logger.Warn("zmq recv failed", zap.Error(err))
				if sub = redial(ctx, addr, logger); sub == nil {
					return
				}
				continue
			}
			if len(msg.Frames) == 0 || len(msg.Frames[0]) == 0 {
				logger.Warn("skip malformed zmq message", zap.Int("parts", len(msg.Frames)))
				continue
			}

			select {
			case notify <- struct{}{}:
			default:
			}
		}
	}()

	return notify, nil
}

// redial reconnects until it succeeds or ctx ends, in which case it returns nil.
func redial(ctx context.Context, addr string, logger *zap.Logger) zmq4.Socket {
	for {
		if clock.SleepWithContext(ctx, blockSignalRedial) != nil {
			return nil
		}
		sub, err := newSubscriber(ctx, addr, blockSignalTopics...)
		if err == nil {
			logger.Info("zmq reconnected")
			return sub
		}
		logger.Warn("zmq redial failed", zap.Error(err), zap.Duration("retry_in", blockSignalRedial))
	}
}

func newSubscriber(ctx context.Context, addr string, topics ...string) (zmq4.Socket, error) {
	sub := zmq4.NewSub(ctx, zmq4.WithID(zmq4.SocketIdentity("wallet-watcher")))
	if err := sub.Dial(addr); err != nil {
		_ = sub.Close()
		return nil, err
	}
	for _, topic := range topics {
		if err := sub.SetOption(zmq4.OptionSubscribe, topic); err != nil {
			_ = sub.Close()
			return nil, err
		}
	}
	return sub, nil
}
