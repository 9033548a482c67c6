package model

import (
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/reconcile"
)

// Output is a wallet-owned output, either received (tx outputs) or spent (tx inputs).
type Output struct {
	Amount          *uint64 `json:"amount,omitempty"`
	KeyImage        *string `json:"keyImage,omitempty"`
	Index           *uint64 `json:"index,omitempty"`
	IsSpent         *bool   `json:"isSpent,omitempty"`
	IsFrozen        *bool   `json:"isFrozen,omitempty"`
	AccountIndex    *uint32 `json:"accountIndex,omitempty"`
	SubaddressIndex *uint32 `json:"subaddressIndex,omitempty"`

	tx *Tx
}

// Tx returns the transaction the output belongs to.
func (o *Output) Tx() *Tx {
	return o.tx
}

// Merge folds another observation of the same output into o.
func (o *Output) Merge(other *Output) error {
	if o == other || other == nil {
		return nil
	}
	if o.tx != nil && other.tx != nil && o.tx.Hash != other.tx.Hash {
		return &reconcile.InconsistentError{Field: "output.tx", A: o.tx.Hash, B: other.tx.Hash}
	}
	if err := reconcile.Set("output.amount", &o.Amount, other.Amount, reconcile.Policy{}); err != nil {
		return err
	}
	if err := reconcile.Set("output.keyImage", &o.KeyImage, other.KeyImage, reconcile.Policy{}); err != nil {
		return err
	}
	if err := reconcile.Set("output.index", &o.Index, other.Index, reconcile.Policy{}); err != nil {
		return err
	}
	if err := reconcile.Set("output.isSpent", &o.IsSpent, other.IsSpent, reconcile.Policy{Bool: reconcile.PreferTrue}); err != nil {
		return err
	}
	if err := reconcile.Set("output.isFrozen", &o.IsFrozen, other.IsFrozen, reconcile.Policy{}); err != nil {
		return err
	}
	if err := reconcile.Set("output.accountIndex", &o.AccountIndex, other.AccountIndex, reconcile.Policy{}); err != nil {
		return err
	}
	return reconcile.Set("output.subaddressIndex", &o.SubaddressIndex, other.SubaddressIndex, reconcile.Policy{})
}

// sameOutput matches outputs by key image, then global index, then by
// (account, subaddress, amount) when neither identifier is known.
func (o *Output) sameOutput(other *Output) bool {
	if o.KeyImage != nil && other.KeyImage != nil {
		return *o.KeyImage == *other.KeyImage
	}
	if o.Index != nil && other.Index != nil {
		return *o.Index == *other.Index
	}
	return o.Amount != nil && o.AccountIndex != nil && o.SubaddressIndex != nil &&
		equalPtr(o.Amount, other.Amount) &&
		equalPtr(o.AccountIndex, other.AccountIndex) &&
		equalPtr(o.SubaddressIndex, other.SubaddressIndex)
}

func mergeOutputInto(outputs []*Output, output *Output) (bool, error) {
	for _, existing := range outputs {
		if existing == output {
			return true, nil
		}
		if existing.sameOutput(output) {
			return true, existing.Merge(output)
		}
	}
	return false, nil
}
