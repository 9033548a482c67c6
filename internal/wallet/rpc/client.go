// Package rpc reads wallet state from a monero-wallet-rpc JSON-RPC server.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for RPC calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveRetry(operation string)
	}
)

// Error is an error object returned by the wallet server.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("wallet rpc error %d: %s", e.Code, e.Message)
}

// Is reports a "no wallet open" error as model.ErrClosed.
func (e *Error) Is(target error) bool {
	return target == model.ErrClosed && e.Code == codeNotOpen
}

// Config configures a Client. Zero values fall back to the package defaults;
// a negative RequestsPerSecond disables rate limiting.
type Config struct {
	URL               string
	Timeout           time.Duration
	RequestsPerSecond int
	MaxRetries        uint64
	RetryInterval     time.Duration
	Workers           int
}

// Client calls a wallet server over JSON-RPC. Transport failures are retried;
// errors reported by the server are not.
type Client struct {
	endpoint      string
	httpClient    *http.Client
	limiter       ratelimit.Limiter
	metrics       Metrics
	logger        *zap.Logger
	maxRetries    uint64
	retryInterval time.Duration
	workers       int

	closed atomic.Bool
	nextID atomic.Uint64
}

// NewClient constructs a client for the server at cfg.URL.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse wallet rpc url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("wallet rpc url %q: scheme must be http or https", cfg.URL)
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = DefaultRetryInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}

	return &Client{
		endpoint:      strings.TrimRight(u.String(), "/") + "/json_rpc",
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		limiter:       limiter,
		metrics:       metrics,
		logger:        logger.Named("wallet_rpc"),
		maxRetries:    cfg.MaxRetries,
		retryInterval: cfg.RetryInterval,
		workers:       cfg.Workers,
	}, nil
}

// Close makes every later call fail with model.ErrClosed.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) call(ctx context.Context, method string, params, result any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, err, started)
	}()

	if c.closed.Load() {
		return model.ErrClosed
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.maxRetries),
		ctx,
	)
	operation := func() (json.RawMessage, error) {
		if c.closed.Load() {
			return nil, backoff.Permanent(model.ErrClosed)
		}
		return c.do(ctx, method, params)
	}
	notify := func(err error, nextTry time.Duration) {
		c.metrics.ObserveRetry(method)
		c.logger.Warn("wallet rpc call failed, retrying",
			zap.String("method", method),
			zap.Duration("next_try", nextTry),
			zap.Error(err))
	}

	raw, err := backoff.RetryNotifyWithData(operation, policy, notify)
	if err != nil {
		return err
	}
	if result == nil || len(raw) == 0 {
		return nil
	}
	if err = json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      strconv.FormatUint(c.nextID.Add(1), 10),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("encode %s request: %w", method, err))
	}

	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("build %s request: %w", method, err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, backoff.Permanent(ctxErr)
		}
		return nil, fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%s: response status %s", method, resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(fmt.Errorf("%s: response status %s", method, resp.Status))
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decode %s response: %w", method, err))
	}
	if decoded.Error != nil {
		return nil, backoff.Permanent(decoded.Error)
	}
	return decoded.Result, nil
}
