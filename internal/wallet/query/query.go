// Package query filters the wallet entity graph with declarative queries.
package query

import (
	"slices"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
)

// TxQuery selects transactions. Unset fields match anything.
type TxQuery struct {
	Hashes         []string
	IsConfirmed    *bool
	InTxPool       *bool
	IsFailed       *bool
	IsLocked       *bool
	IsIncoming     *bool
	IsOutgoing     *bool
	MinHeight      *uint64
	MaxHeight      *uint64
	HasPaymentID   *bool
	PaymentIDs     []string
	IncludeOutputs bool
	Transfer       *TransferQuery
	Output         *OutputQuery
	Where          *Predicate
}

// TransferQuery selects transfers. Unset fields match anything.
type TransferQuery struct {
	IsIncoming        *bool
	AccountIndex      *uint32
	SubaddressIndices []uint32
	MinAmount         *uint64
	MaxAmount         *uint64
	Tx                *TxQuery
}

// OutputQuery selects outputs. Unset fields match anything.
type OutputQuery struct {
	AccountIndex      *uint32
	SubaddressIndices []uint32
	KeyImage          *string
	IsSpent           *bool
	IsFrozen          *bool
	MinAmount         *uint64
	MaxAmount         *uint64
	Tx                *TxQuery
}

// MeetsCriteria reports whether tx satisfies the query, including its
// transfer and output sub-queries.
func (q *TxQuery) MeetsCriteria(tx *model.Tx) bool {
	return q.meets(tx, false, false)
}

// meets evaluates the query; skipTransfer and skipOutput suppress the
// sub-query that the caller is already evaluating.
func (q *TxQuery) meets(tx *model.Tx, skipTransfer, skipOutput bool) bool {
	if tx == nil {
		return false
	}
	if q == nil {
		return true
	}
	if len(q.Hashes) > 0 && !slices.Contains(q.Hashes, tx.Hash) {
		return false
	}
	if !matchBool(q.IsConfirmed, tx.IsConfirmed()) ||
		!matchBool(q.InTxPool, tx.InTxPool()) ||
		!matchBool(q.IsFailed, tx.IsFailed()) ||
		!matchBool(q.IsLocked, tx.Locked()) ||
		!matchBool(q.IsIncoming, tx.IsIncoming()) ||
		!matchBool(q.IsOutgoing, tx.IsOutgoing()) {
		return false
	}
	if tx.Height != nil {
		if q.MinHeight != nil && *tx.Height < *q.MinHeight {
			return false
		}
		if q.MaxHeight != nil && *tx.Height > *q.MaxHeight {
			return false
		}
	} else if q.MaxHeight != nil && tx.IsConfirmed() {
		return false
	}
	if q.HasPaymentID != nil && *q.HasPaymentID != (tx.PaymentID != nil) {
		return false
	}
	if len(q.PaymentIDs) > 0 && (tx.PaymentID == nil || !slices.Contains(q.PaymentIDs, *tx.PaymentID)) {
		return false
	}
	if q.Transfer != nil && !skipTransfer && !anyTransfer(q.Transfer, tx) {
		return false
	}
	if q.Output != nil && !skipOutput && !anyOutput(q.Output, tx) {
		return false
	}
	if q.Where != nil && !q.Where.Match(tx) {
		return false
	}
	return true
}

// MeetsCriteria reports whether transfer satisfies the query and its owning
// transaction satisfies the embedded tx query.
func (q *TransferQuery) MeetsCriteria(transfer *model.Transfer) bool {
	return q.meets(transfer, true)
}

func (q *TransferQuery) meets(transfer *model.Transfer, withTx bool) bool {
	if transfer == nil {
		return false
	}
	if q == nil {
		return true
	}
	if !matchBool(q.IsIncoming, transfer.IsIncoming()) {
		return false
	}
	if !matchPtr(q.AccountIndex, transfer.AccountIndex) {
		return false
	}
	if len(q.SubaddressIndices) > 0 && !intersects(q.SubaddressIndices, transfer.SubaddressIndices) {
		return false
	}
	if !inRange(transfer.Amount, q.MinAmount, q.MaxAmount) {
		return false
	}
	if withTx && q.Tx != nil && !q.Tx.meets(transfer.Tx(), true, false) {
		return false
	}
	return true
}

// MeetsCriteria reports whether output satisfies the query and its owning
// transaction satisfies the embedded tx query.
func (q *OutputQuery) MeetsCriteria(output *model.Output) bool {
	return q.meets(output, true)
}

func (q *OutputQuery) meets(output *model.Output, withTx bool) bool {
	if output == nil {
		return false
	}
	if q == nil {
		return true
	}
	if !matchPtr(q.AccountIndex, output.AccountIndex) {
		return false
	}
	if len(q.SubaddressIndices) > 0 && (output.SubaddressIndex == nil || !slices.Contains(q.SubaddressIndices, *output.SubaddressIndex)) {
		return false
	}
	if !matchPtr(q.KeyImage, output.KeyImage) {
		return false
	}
	if q.IsSpent != nil && (output.IsSpent == nil || *output.IsSpent != *q.IsSpent) {
		return false
	}
	if q.IsFrozen != nil && (output.IsFrozen == nil || *output.IsFrozen != *q.IsFrozen) {
		return false
	}
	if !inRange(output.Amount, q.MinAmount, q.MaxAmount) {
		return false
	}
	if withTx && q.Tx != nil && !q.Tx.meets(output.Tx(), false, true) {
		return false
	}
	return true
}

func anyTransfer(q *TransferQuery, tx *model.Tx) bool {
	for _, transfer := range tx.Transfers() {
		if q.meets(transfer, false) {
			return true
		}
	}
	return false
}

func anyOutput(q *OutputQuery, tx *model.Tx) bool {
	for _, output := range tx.Outputs {
		if q.meets(output, false) {
			return true
		}
	}
	return false
}

func matchBool(want *bool, got bool) bool {
	return want == nil || *want == got
}

func matchPtr[T comparable](want, got *T) bool {
	if want == nil {
		return true
	}
	return got != nil && *got == *want
}

func inRange(v, lo, hi *uint64) bool {
	if lo == nil && hi == nil {
		return true
	}
	if v == nil {
		return false
	}
	if lo != nil && *v < *lo {
		return false
	}
	return hi == nil || *v <= *hi
}

func intersects(a, b []uint32) bool {
	for _, v := range b {
		if slices.Contains(a, v) {
			return true
		}
	}
	return false
}
