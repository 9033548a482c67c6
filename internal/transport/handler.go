// Package transport exposes the wallet read API over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/query"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	predicateExpiration = 10 * time.Minute
	predicateCleanup    = 20 * time.Minute
)

// Wallet is the part of the wallet facade served over HTTP.
type Wallet interface {
	GetTxs(ctx context.Context, q *query.TxQuery, missing *[]string) ([]*model.Tx, error)
	GetTransfers(ctx context.Context, q *query.TransferQuery) ([]*model.Transfer, error)
	GetOutputs(ctx context.Context, q *query.OutputQuery) ([]*model.Output, error)
	IsPolling() bool
}

// QueryHandler serves wallet queries as JSON.
type QueryHandler struct {
	wallet     Wallet
	predicates *cache.Cache
	logger     *zap.Logger
}

// NewQueryHandler returns a QueryHandler instance.
func NewQueryHandler(wallet Wallet, logger *zap.Logger) *QueryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryHandler{
		wallet:     wallet,
		predicates: cache.New(predicateExpiration, predicateCleanup),
		logger:     logger,
	}
}

// Routes registers the API endpoints on a new mux.
func (h *QueryHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /v1/txs", h.txs)
	mux.HandleFunc("GET /v1/transfers", h.transfers)
	mux.HandleFunc("GET /v1/outputs", h.outputs)
	return mux
}

type (
	healthResponse struct {
		Status  string `json:"status"`
		Polling bool   `json:"polling"`
	}

	txsResponse struct {
		Txs     []*model.Tx `json:"txs"`
		Missing []string    `json:"missing,omitempty"`
	}

	transferView struct {
		TxHash string `json:"txHash"`
		*model.Transfer
	}

	outputView struct {
		TxHash string `json:"txHash"`
		*model.Output
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

func (h *QueryHandler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Polling: h.wallet.IsPolling()})
}

func (h *QueryHandler) txs(w http.ResponseWriter, r *http.Request) {
	p := newParams(r.URL.Query())
	q := h.txQuery(p)
	q.IncludeOutputs = p.flag("outputs")
	if account, subaddresses := p.uint32("account"), p.uint32s("subaddress"); account != nil || subaddresses != nil {
		q.Transfer = &query.TransferQuery{AccountIndex: account, SubaddressIndices: subaddresses}
	}
	strict := p.flag("strict")
	if p.err != nil {
		h.writeError(w, r, p.err)
		return
	}

	var missing []string
	sink := &missing
	if strict {
		sink = nil
	}
	txs, err := h.wallet.GetTxs(r.Context(), q, sink)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, txsResponse{Txs: nonNil(txs), Missing: missing})
}

func (h *QueryHandler) transfers(w http.ResponseWriter, r *http.Request) {
	p := newParams(r.URL.Query())
	q := &query.TransferQuery{
		IsIncoming:        p.bool("incoming"),
		AccountIndex:      p.uint32("account"),
		SubaddressIndices: p.uint32s("subaddress"),
		MinAmount:         p.uint64("minAmount"),
		MaxAmount:         p.uint64("maxAmount"),
	}
	if p.any(txFilters...) {
		q.Tx = h.txQuery(p)
	}
	if p.err != nil {
		h.writeError(w, r, p.err)
		return
	}

	transfers, err := h.wallet.GetTransfers(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	views := make([]transferView, 0, len(transfers))
	for _, transfer := range transfers {
		views = append(views, transferView{TxHash: hashOf(transfer.Tx()), Transfer: transfer})
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *QueryHandler) outputs(w http.ResponseWriter, r *http.Request) {
	p := newParams(r.URL.Query())
	q := &query.OutputQuery{
		AccountIndex:      p.uint32("account"),
		SubaddressIndices: p.uint32s("subaddress"),
		KeyImage:          p.string("keyImage"),
		IsSpent:           p.bool("spent"),
		IsFrozen:          p.bool("frozen"),
		MinAmount:         p.uint64("minAmount"),
		MaxAmount:         p.uint64("maxAmount"),
	}
	if p.any(txFilters...) {
		q.Tx = h.txQuery(p)
	}
	if p.err != nil {
		h.writeError(w, r, p.err)
		return
	}

	outputs, err := h.wallet.GetOutputs(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	views := make([]outputView, 0, len(outputs))
	for _, output := range outputs {
		views = append(views, outputView{TxHash: hashOf(output.Tx()), Output: output})
	}
	h.writeJSON(w, http.StatusOK, views)
}

// txFilters are the parameters that build a TxQuery.
var txFilters = []string{
	"hash", "confirmed", "pool", "failed", "locked", "txIncoming", "txOutgoing",
	"minHeight", "maxHeight", "hasPaymentId", "paymentId", "where",
}

func (h *QueryHandler) txQuery(p *params) *query.TxQuery {
	q := &query.TxQuery{
		Hashes:       p.strings("hash"),
		IsConfirmed:  p.bool("confirmed"),
		InTxPool:     p.bool("pool"),
		IsFailed:     p.bool("failed"),
		IsLocked:     p.bool("locked"),
		IsIncoming:   p.bool("txIncoming"),
		IsOutgoing:   p.bool("txOutgoing"),
		MinHeight:    p.uint64("minHeight"),
		MaxHeight:    p.uint64("maxHeight"),
		HasPaymentID: p.bool("hasPaymentId"),
		PaymentIDs:   p.strings("paymentId"),
	}
	if where := p.string("where"); where != nil {
		predicate, err := h.predicate(*where)
		if err != nil {
			p.fail(err)
		}
		q.Where = predicate
	}
	return q
}

// predicate returns the compiled expression, compiling it at most once per
// cache lifetime.
func (h *QueryHandler) predicate(expression string) (*query.Predicate, error) {
	if cached, found := h.predicates.Get(expression); found {
		if predicate, ok := cached.(*query.Predicate); ok {
			return predicate, nil
		}
	}
	predicate, err := query.NewPredicate(expression)
	if err != nil {
		return nil, &badRequestError{err: err}
	}
	h.predicates.Set(expression, predicate, cache.DefaultExpiration)
	return predicate, nil
}

func (h *QueryHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	logger := h.logger.With(zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
	if status >= http.StatusInternalServerError {
		logger.Error("query failed")
	} else {
		logger.Debug("query rejected")
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *QueryHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func statusOf(err error) int {
	var badRequest *badRequestError
	switch {
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func hashOf(tx *model.Tx) string {
	if tx == nil {
		return ""
	}
	return tx.Hash
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
