package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/walletsync-backend/internal/metrics"
	"github.com/goodnatureofminers/walletsync-backend/internal/transport"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/listener"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/poller"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/rpc"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Wallet           string        `long:"wallet" env:"WALLET_WATCHER_WALLET" description:"wallet label used in metrics and logs" default:"default"`
	RPCURL           string        `long:"rpc-url" env:"WALLET_WATCHER_RPC_URL" description:"monero-wallet-rpc URL" default:"http://127.0.0.1:18082"`
	RPCTimeout       time.Duration `long:"rpc-timeout" env:"WALLET_WATCHER_RPC_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	RPCRate          int           `long:"rpc-rate" env:"WALLET_WATCHER_RPC_RATE" description:"max RPC requests per second, negative disables the limit" default:"50"`
	RPCRetries       uint64        `long:"rpc-retries" env:"WALLET_WATCHER_RPC_RETRIES" description:"retries for transient RPC failures" default:"3"`
	RPCRetryInterval time.Duration `long:"rpc-retry-interval" env:"WALLET_WATCHER_RPC_RETRY_INTERVAL" description:"delay between RPC retries" default:"500ms"`
	Workers          int           `long:"workers" env:"WALLET_WATCHER_WORKERS" description:"concurrent per-account lookups" default:"4"`
	PollPeriod       time.Duration `long:"poll-period" env:"WALLET_WATCHER_POLL_PERIOD" description:"delay between poll cycles" default:"20s"`
	LockedWindow     uint64        `long:"locked-window" env:"WALLET_WATCHER_LOCKED_WINDOW" description:"blocks below the tip searched for locked txs" default:"70"`
	ZMQAddr          string        `long:"zmq-addr" env:"WALLET_WATCHER_ZMQ_ADDR" description:"monerod ZMQ publisher that wakes the poller on new blocks"`
	HTTPAddr         string        `long:"http-addr" env:"WALLET_WATCHER_HTTP_ADDR" description:"address for the query API" default:":8080"`
	MetricsAddr      string        `long:"metrics-addr" env:"WALLET_WATCHER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	CloseTimeout     time.Duration `long:"close-timeout" env:"WALLET_WATCHER_CLOSE_TIMEOUT" description:"how long shutdown waits for a poll cycle" default:"30s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.PollPeriod <= 0 {
		logger.Fatal("poll period must be positive")
	}

	if err := run(ctx, cfg, logger.With(zap.String("wallet", cfg.Wallet))); err != nil {
		logger.Fatal("wallet watcher failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	client, err := rpc.NewClient(rpc.Config{
		URL:               cfg.RPCURL,
		Timeout:           cfg.RPCTimeout,
		RequestsPerSecond: cfg.RPCRate,
		MaxRetries:        cfg.RPCRetries,
		RetryInterval:     cfg.RPCRetryInterval,
		Workers:           cfg.Workers,
	}, metrics.NewRPCClient(cfg.Wallet), logger)
	if err != nil {
		return fmt.Errorf("init wallet rpc client: %w", err)
	}

	wake, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("init block signal: %w", err)
	}

	w, err := wallet.New(client, wallet.Config{
		Poller:        poller.Config{LockedWindow: cfg.LockedWindow, Wake: wake},
		PollerMetrics: metrics.NewPoller(cfg.Wallet),
		QueryMetrics:  metrics.NewQuery(cfg.Wallet),
	}, logger)
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("init wallet: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.CloseTimeout)
		defer cancel()
		if err := w.Close(closeCtx); err != nil {
			logger.Error("failed to close wallet", zap.Error(err))
		}
	}()

	if err := w.Subscribe(listener.NewLogging(logger.Named("events"))); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	if err := w.Start(cfg.PollPeriod); err != nil {
		return fmt.Errorf("start polling: %w", err)
	}

	return serveAPI(ctx, cfg.HTTPAddr, transport.NewQueryHandler(w, logger.Named("http")), logger)
}

func serveAPI(ctx context.Context, addr string, handler *transport.QueryHandler, logger *zap.Logger) error {
	s := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(handler.Routes()),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
