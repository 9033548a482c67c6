package model

import (
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/reconcile"
)

// Direction tells whether a transfer moved funds into or out of the wallet.
type Direction string

const (
	// Incoming transfers credit the wallet.
	Incoming Direction = "in"
	// Outgoing transfers debit the wallet.
	Outgoing Direction = "out"
)

// Transfer is a movement of funds to or from one wallet account.
type Transfer struct {
	Direction         Direction `json:"direction"`
	Amount            *uint64   `json:"amount,omitempty"`
	AccountIndex      *uint32   `json:"accountIndex,omitempty"`
	SubaddressIndices []uint32  `json:"subaddressIndices,omitempty"`

	tx *Tx
}

// Tx returns the transaction owning the transfer.
func (t *Transfer) Tx() *Tx {
	return t.tx
}

// IsIncoming reports whether the transfer credits the wallet.
func (t *Transfer) IsIncoming() bool {
	return t.Direction == Incoming
}

// SubaddressIndex returns the single subaddress of the transfer, if it has exactly one.
func (t *Transfer) SubaddressIndex() *uint32 {
	if len(t.SubaddressIndices) != 1 {
		return nil
	}
	idx := t.SubaddressIndices[0]
	return &idx
}

// Merge folds another observation of the same transfer into t.
func (t *Transfer) Merge(other *Transfer) error {
	if t == other || other == nil {
		return nil
	}
	if t.Direction != other.Direction {
		return &reconcile.InconsistentError{Field: "transfer.direction", A: t.Direction, B: other.Direction}
	}
	if t.tx != nil && other.tx != nil && t.tx.Hash != other.tx.Hash {
		return &reconcile.InconsistentError{Field: "transfer.tx", A: t.tx.Hash, B: other.tx.Hash}
	}
	if err := reconcile.Set("transfer.amount", &t.Amount, other.Amount, reconcile.Policy{}); err != nil {
		return err
	}
	if err := reconcile.Set("transfer.accountIndex", &t.AccountIndex, other.AccountIndex, reconcile.Policy{}); err != nil {
		return err
	}
	return reconcile.SetSlice("transfer.subaddressIndices", &t.SubaddressIndices, other.SubaddressIndices, reconcile.Policy{})
}

func (t *Transfer) sameIncoming(other *Transfer) bool {
	return t.Direction == other.Direction &&
		equalPtr(t.AccountIndex, other.AccountIndex) &&
		equalPtr(t.SubaddressIndex(), other.SubaddressIndex())
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
