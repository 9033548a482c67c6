package rpc

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/query"
	"github.com/goodnatureofminers/walletsync-backend/pkg/workerpool"
)

// Height returns the height of the chain as seen by the wallet.
func (c *Client) Height(ctx context.Context) (uint64, error) {
	var res heightResult
	if err := c.call(ctx, methodGetHeight, nil, &res); err != nil {
		return 0, err
	}
	return res.Height, nil
}

// Balances returns the balance and unlocked balance summed over all accounts.
func (c *Client) Balances(ctx context.Context) (uint64, uint64, error) {
	var res accountsResult
	if err := c.call(ctx, methodGetAccounts, nil, &res); err != nil {
		return 0, 0, err
	}
	return res.TotalBalance, res.TotalUnlockedBalance, nil
}

// LockedTxs returns the locked transactions confirmed at or above minHeight
// together with every pool and pending one. With includeOutputs the outputs
// received by those transactions are returned as extra partial records.
func (c *Client) LockedTxs(ctx context.Context, minHeight uint64, includeOutputs bool) ([]*model.Tx, error) {
	txs, err := c.transfers(ctx, transfersParams{
		In:             true,
		Out:            true,
		Pending:        true,
		Pool:           true,
		FilterByHeight: true,
		MinHeight:      exclusiveMin(minHeight),
		AllAccounts:    true,
	})
	if err != nil {
		return nil, err
	}

	locked := make([]*model.Tx, 0, len(txs))
	hashes := make(map[string]struct{}, len(txs))
	for _, tx := range txs {
		if !tx.Locked() {
			continue
		}
		locked = append(locked, tx)
		hashes[tx.Hash] = struct{}{}
	}
	if !includeOutputs || len(locked) == 0 {
		return locked, nil
	}
	return c.withOutputs(ctx, locked, hashes)
}

// UnlockedTxs returns the unlocked transactions among hashes confirmed at or
// above minHeight, with the outputs they received.
func (c *Client) UnlockedTxs(ctx context.Context, hashes []string, minHeight uint64) ([]*model.Tx, error) {
	if len(hashes) == 0 {
		return nil, nil
	}
	txs, err := c.transfers(ctx, transfersParams{
		In:             true,
		Out:            true,
		Pending:        true,
		Pool:           true,
		FilterByHeight: true,
		MinHeight:      exclusiveMin(minHeight),
		AllAccounts:    true,
	})
	if err != nil {
		return nil, err
	}

	requested := make(map[string]struct{}, len(hashes))
	for _, hash := range hashes {
		requested[hash] = struct{}{}
	}
	unlocked := make([]*model.Tx, 0, len(hashes))
	found := make(map[string]struct{}, len(hashes))
	for _, tx := range txs {
		if _, ok := requested[tx.Hash]; !ok || tx.Locked() {
			continue
		}
		unlocked = append(unlocked, tx)
		found[tx.Hash] = struct{}{}
	}
	if len(unlocked) == 0 {
		return nil, nil
	}
	return c.withOutputs(ctx, unlocked, found)
}

// FetchTxs returns every transaction the coarse query may match. Direction
// is never narrowed on the server so that self-sends keep both transfers.
func (c *Client) FetchTxs(ctx context.Context, q *query.TxQuery) ([]*model.Tx, error) {
	if q == nil {
		q = &query.TxQuery{}
	}
	confirmed := allows(q.IsConfirmed) && !isTrue(q.InTxPool) && !isTrue(q.IsFailed)
	pool := allows(q.InTxPool) && !isTrue(q.IsConfirmed) && !isTrue(q.IsFailed)
	failed := allows(q.IsFailed) && !isTrue(q.IsConfirmed) && !isTrue(q.InTxPool)
	if q.MaxHeight != nil && *q.MaxHeight == 0 {
		// The server reads max_height 0 as unset; nothing mined can match.
		confirmed, failed = false, false
	}
	if !confirmed && !pool && !failed {
		return nil, nil
	}

	params := transfersParams{
		In:          confirmed,
		Out:         confirmed,
		Pending:     pool,
		Pool:        pool,
		Failed:      failed,
		AllAccounts: true,
	}
	if q.MinHeight != nil && *q.MinHeight > 0 {
		params.FilterByHeight = true
		params.MinHeight = exclusiveMin(*q.MinHeight)
	}
	if q.MaxHeight != nil && *q.MaxHeight > 0 {
		params.FilterByHeight = true
		params.MaxHeight = *q.MaxHeight
	}

	txs, err := c.transfers(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(q.Hashes) == 0 {
		return txs, nil
	}

	wanted := make(map[string]struct{}, len(q.Hashes))
	for _, hash := range q.Hashes {
		wanted[hash] = struct{}{}
	}
	filtered := txs[:0]
	for _, tx := range txs {
		if _, ok := wanted[tx.Hash]; ok {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

// FetchOutputs returns the outputs matching the account, subaddress and spent
// filters of q. Other filters are left to the caller.
func (c *Client) FetchOutputs(ctx context.Context, q *query.OutputQuery) ([]*model.Output, error) {
	if q == nil {
		q = &query.OutputQuery{}
	}

	transferType := transferTypeAll
	if q.IsSpent != nil {
		transferType = transferTypeAvailable
		if *q.IsSpent {
			transferType = transferTypeUnavailable
		}
	}

	if q.AccountIndex != nil {
		return c.incoming(ctx, incomingParams{
			TransferType:   transferType,
			AccountIndex:   *q.AccountIndex,
			SubaddrIndices: q.SubaddressIndices,
		})
	}
	return c.allIncoming(ctx, transferType)
}

func (c *Client) transfers(ctx context.Context, params transfersParams) ([]*model.Tx, error) {
	var res transfersResult
	if err := c.call(ctx, methodGetTransfers, params, &res); err != nil {
		return nil, err
	}

	entries := res.entries()
	txs := make([]*model.Tx, 0, len(entries))
	for _, entry := range entries {
		tx, err := entryTx(entry)
		if err != nil {
			return nil, fmt.Errorf("convert transfer: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (c *Client) incoming(ctx context.Context, params incomingParams) ([]*model.Output, error) {
	var res incomingResult
	if err := c.call(ctx, methodIncomingTransfers, params, &res); err != nil {
		return nil, err
	}

	outputs := make([]*model.Output, 0, len(res.Transfers))
	for _, entry := range res.Transfers {
		output, err := incomingOutput(entry)
		if err != nil {
			return nil, fmt.Errorf("convert output: %w", err)
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// allIncoming fetches outputs of every account concurrently. The server only
// lists outputs one account at a time.
func (c *Client) allIncoming(ctx context.Context, transferType string) ([]*model.Output, error) {
	var res accountsResult
	if err := c.call(ctx, methodGetAccounts, nil, &res); err != nil {
		return nil, err
	}

	perAccount, err := workerpool.Map(ctx, c.workers, res.Accounts, func(ctx context.Context, account accountEntry) ([]*model.Output, error) {
		return c.incoming(ctx, incomingParams{
			TransferType: transferType,
			AccountIndex: account.AccountIndex,
		})
	})
	if err != nil {
		return nil, err
	}

	var outputs []*model.Output
	for _, batch := range perAccount {
		outputs = append(outputs, batch...)
	}
	return outputs, nil
}

// withOutputs appends the parents of the wallet's outputs that belong to one
// of hashes.
func (c *Client) withOutputs(ctx context.Context, txs []*model.Tx, hashes map[string]struct{}) ([]*model.Tx, error) {
	outputs, err := c.allIncoming(ctx, transferTypeAll)
	if err != nil {
		return nil, fmt.Errorf("get outputs: %w", err)
	}
	for _, output := range outputs {
		if _, ok := hashes[output.Tx().Hash]; ok {
			txs = append(txs, output.Tx())
		}
	}
	return txs, nil
}

func allows(v *bool) bool {
	return v == nil || *v
}

func isTrue(v *bool) bool {
	return v != nil && *v
}

// exclusiveMin converts an inclusive lower bound to the exclusive one
// get_transfers expects.
func exclusiveMin(height uint64) uint64 {
	if height == 0 {
		return 0
	}
	return height - 1
}
