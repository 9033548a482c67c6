package query

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/graph"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
	"go.uber.org/zap"
)

// Engine answers queries by fetching broad from a Source, merging the
// results into a fresh graph and filtering the graph precisely.
type Engine struct {
	source Source
	logger *zap.Logger
	drift  graph.DriftObserver
}

// NewEngine builds an Engine. drift may be nil.
func NewEngine(source Source, logger *zap.Logger, drift graph.DriftObserver) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		source: source,
		logger: logger,
		drift:  drift,
	}
}

// GetTxs returns the transactions matching q. When q lists hashes the result
// follows that order; hashes that are not found are appended to missing, or
// reported as a *NotFoundError when missing is nil.
func (e *Engine) GetTxs(ctx context.Context, q *TxQuery, missing *[]string) ([]*model.Tx, error) {
	if q == nil {
		q = &TxQuery{}
	}
	g, err := e.assemble(ctx, q, q.IncludeOutputs || q.Output != nil)
	if err != nil {
		return nil, err
	}
	return Select(g, q, missing)
}

// GetTransfers returns the transfers matching q.
func (e *Engine) GetTransfers(ctx context.Context, q *TransferQuery) ([]*model.Transfer, error) {
	if q == nil {
		q = &TransferQuery{}
	}
	g, err := e.assemble(ctx, q.Tx, q.IsContextual())
	if err != nil {
		return nil, err
	}

	var transfers []*model.Transfer
	for _, tx := range g.Txs() {
		for _, transfer := range tx.Transfers() {
			if q.MeetsCriteria(transfer) {
				transfers = append(transfers, transfer)
			}
		}
	}
	return transfers, nil
}

// GetOutputs returns the outputs matching q.
func (e *Engine) GetOutputs(ctx context.Context, q *OutputQuery) ([]*model.Output, error) {
	if q == nil {
		q = &OutputQuery{}
	}

	var (
		g   *graph.Graph
		err error
	)
	if q.IsContextual() {
		g, err = e.assemble(ctx, q.Tx, true)
	} else {
		g, err = e.fetchOutputs(ctx, outputFetchQuery(q, Decontextualize(q.Tx)))
	}
	if err != nil {
		return nil, err
	}

	var outputs []*model.Output
	for _, tx := range g.Txs() {
		for _, output := range tx.Outputs {
			if q.MeetsCriteria(output) {
				outputs = append(outputs, output)
			}
		}
	}
	return outputs, nil
}

// Select filters the graph with q, orders the result by q.Hashes when set and
// reports hashes that were not found.
func Select(g *graph.Graph, q *TxQuery, missing *[]string) ([]*model.Tx, error) {
	var matched []*model.Tx
	for _, tx := range g.Txs() {
		if q.MeetsCriteria(tx) {
			matched = append(matched, tx)
		}
	}
	if len(q.Hashes) == 0 {
		return matched, nil
	}

	byHash := make(map[string]*model.Tx, len(matched))
	for _, tx := range matched {
		byHash[tx.Hash] = tx
	}
	ordered := make([]*model.Tx, 0, len(matched))
	var notFound []string
	seen := make(map[string]struct{}, len(q.Hashes))
	for _, hash := range q.Hashes {
		if _, dup := seen[hash]; dup {
			continue
		}
		seen[hash] = struct{}{}
		if tx, ok := byHash[hash]; ok {
			ordered = append(ordered, tx)
			continue
		}
		notFound = append(notFound, hash)
	}

	if len(notFound) > 0 {
		if missing == nil {
			return nil, &NotFoundError{Hashes: notFound}
		}
		*missing = append(*missing, notFound...)
	}
	return ordered, nil
}

// assemble fetches transactions (and outputs when asked) matching the coarse
// form of q and merges them into a new graph.
func (e *Engine) assemble(ctx context.Context, q *TxQuery, withOutputs bool) (*graph.Graph, error) {
	coarse := Decontextualize(q)
	txs, err := e.source.FetchTxs(ctx, coarse)
	if err != nil {
		return nil, fmt.Errorf("fetch txs: %w", err)
	}

	g := graph.New(e.logger, e.drift)
	for _, tx := range txs {
		if _, err := g.MergeTx(tx); err != nil {
			return nil, fmt.Errorf("merge tx: %w", err)
		}
	}
	if !withOutputs {
		return g, nil
	}

	var outputQuery *OutputQuery
	if q != nil {
		outputQuery = q.Output
	}
	outputs, err := e.source.FetchOutputs(ctx, outputFetchQuery(outputQuery, coarse))
	if err != nil {
		return nil, fmt.Errorf("fetch outputs: %w", err)
	}
	for _, output := range outputs {
		if _, err := g.MergeOutput(output); err != nil {
			return nil, fmt.Errorf("merge output: %w", err)
		}
	}
	e.logger.Debug("assembled txs", zap.Int("txs", g.Len()), zap.Int("outputs", len(outputs)))
	return g, nil
}

func (e *Engine) fetchOutputs(ctx context.Context, q *OutputQuery) (*graph.Graph, error) {
	outputs, err := e.source.FetchOutputs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch outputs: %w", err)
	}
	g := graph.New(e.logger, e.drift)
	for _, output := range outputs {
		if _, err := g.MergeOutput(output); err != nil {
			return nil, fmt.Errorf("merge output: %w", err)
		}
	}
	return g, nil
}
