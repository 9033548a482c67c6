// Package model defines the wallet entity graph and its merge rules.
package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/reconcile"
)

// TxState describes the confirmation state of a transaction.
type TxState string

const (
	// TxUnconfirmed marks a transaction seen in the pool but not in a block.
	TxUnconfirmed TxState = "unconfirmed"
	// TxConfirmed marks a transaction included in a block.
	TxConfirmed TxState = "confirmed"
	// TxFailed marks a transaction the backend gave up relaying.
	TxFailed TxState = "failed"
)

// Tx is a wallet transaction. It owns its transfers, outputs and inputs.
type Tx struct {
	Hash               string      `json:"hash"`
	State              TxState     `json:"state,omitempty"`
	Height             *uint64     `json:"height,omitempty"`
	Fee                *uint64     `json:"fee,omitempty"`
	Note               *string     `json:"note,omitempty"`
	PaymentID          *string     `json:"paymentId,omitempty"`
	IsLocked           *bool       `json:"isLocked,omitempty"`
	IsRelayed          *bool       `json:"isRelayed,omitempty"`
	IsDoubleSpendSeen  *bool       `json:"isDoubleSpendSeen,omitempty"`
	Confirmations      *uint64     `json:"confirmations,omitempty"`
	NumBlocksToConfirm *uint64     `json:"numBlocksToConfirm,omitempty"`
	ReceivedTimestamp  *uint64     `json:"receivedTimestamp,omitempty"`
	UnlockTime         *uint64     `json:"unlockTime,omitempty"`
	Outgoing           *Transfer   `json:"outgoingTransfer,omitempty"`
	Incoming           []*Transfer `json:"incomingTransfers,omitempty"`
	Outputs            []*Output   `json:"outputs,omitempty"`
	Inputs             []*Output   `json:"inputs,omitempty"`

	block *Block
}

// Block returns the block the transaction is attached to, if any.
func (t *Tx) Block() *Block {
	return t.block
}

// IsConfirmed reports whether the transaction is in a block.
func (t *Tx) IsConfirmed() bool {
	return t.State == TxConfirmed
}

// InTxPool reports whether the transaction is waiting in the pool.
func (t *Tx) InTxPool() bool {
	return t.State == TxUnconfirmed
}

// IsFailed reports whether the transaction failed.
func (t *Tx) IsFailed() bool {
	return t.State == TxFailed
}

// Locked reports whether the transaction is locked. Unknown counts as locked
// for unconfirmed transactions only.
func (t *Tx) Locked() bool {
	if t.IsLocked != nil {
		return *t.IsLocked
	}
	return t.InTxPool()
}

// IsIncoming reports whether the wallet received funds in the transaction.
func (t *Tx) IsIncoming() bool {
	return len(t.Incoming) > 0
}

// IsOutgoing reports whether the wallet spent funds in the transaction.
func (t *Tx) IsOutgoing() bool {
	return t.Outgoing != nil
}

// Transfers returns the outgoing transfer (if any) followed by the incoming ones.
func (t *Tx) Transfers() []*Transfer {
	transfers := make([]*Transfer, 0, len(t.Incoming)+1)
	if t.Outgoing != nil {
		transfers = append(transfers, t.Outgoing)
	}
	return append(transfers, t.Incoming...)
}

// SetOutgoing attaches an outgoing transfer to the transaction.
func (t *Tx) SetOutgoing(transfer *Transfer) {
	transfer.tx = t
	t.Outgoing = transfer
}

// AddIncoming attaches an incoming transfer to the transaction.
func (t *Tx) AddIncoming(transfer *Transfer) {
	transfer.tx = t
	t.Incoming = append(t.Incoming, transfer)
	t.sortIncoming()
}

// AddOutput attaches a received output to the transaction.
func (t *Tx) AddOutput(output *Output) {
	output.tx = t
	t.Outputs = append(t.Outputs, output)
}

// AddInput attaches a spent output to the transaction.
func (t *Tx) AddInput(input *Output) {
	input.tx = t
	t.Inputs = append(t.Inputs, input)
}

// Attach points every child of the transaction back at it.
func (t *Tx) Attach() {
	if t.Outgoing != nil {
		t.Outgoing.tx = t
	}
	for _, transfer := range t.Incoming {
		transfer.tx = t
	}
	for _, output := range t.Outputs {
		output.tx = t
	}
	for _, input := range t.Inputs {
		input.tx = t
	}
}

// Normalize drops fields that stop being meaningful once the transaction is confirmed.
func (t *Tx) Normalize() {
	if t.IsConfirmed() {
		t.NumBlocksToConfirm = nil
		t.ReceivedTimestamp = nil
	}
}

// Merge folds another observation of the same transaction into t. When the
// observations conflict t is left as it was before the call.
func (t *Tx) Merge(other *Tx) error {
	if t == other || other == nil {
		return nil
	}
	saved := t.snapshot()
	if err := t.merge(other); err != nil {
		t.restore(saved)
		other.Attach()
		return err
	}
	return nil
}

func (t *Tx) merge(other *Tx) error {
	if t.Hash != other.Hash {
		return &reconcile.InconsistentError{Field: "tx.hash", A: t.Hash, B: other.Hash}
	}

	state, err := mergeState(t.State, other.State)
	if err != nil {
		return fmt.Errorf("tx %s: %w", t.Hash, err)
	}
	t.State = state

	if err := t.mergeScalars(other); err != nil {
		return fmt.Errorf("tx %s: %w", t.Hash, err)
	}

	if other.Outgoing != nil {
		if t.Outgoing == nil {
			t.SetOutgoing(other.Outgoing)
		} else if err := t.Outgoing.Merge(other.Outgoing); err != nil {
			return fmt.Errorf("tx %s: %w", t.Hash, err)
		}
	}
	for _, transfer := range other.Incoming {
		if err := t.mergeIncoming(transfer); err != nil {
			return fmt.Errorf("tx %s: %w", t.Hash, err)
		}
	}
	for _, output := range other.Outputs {
		merged, err := mergeOutputInto(t.Outputs, output)
		if err != nil {
			return fmt.Errorf("tx %s: %w", t.Hash, err)
		}
		if !merged {
			t.AddOutput(output)
		}
	}
	for _, input := range other.Inputs {
		merged, err := mergeOutputInto(t.Inputs, input)
		if err != nil {
			return fmt.Errorf("tx %s: %w", t.Hash, err)
		}
		if !merged {
			t.AddInput(input)
		}
	}

	t.Normalize()
	return nil
}

// txSnapshot holds a transaction and the values of its children.
type txSnapshot struct {
	tx       Tx
	outgoing Transfer
	incoming []Transfer
	outputs  []Output
	inputs   []Output
}

func (t *Tx) snapshot() txSnapshot {
	s := txSnapshot{tx: *t}
	s.tx.Incoming = slices.Clone(t.Incoming)
	s.tx.Outputs = slices.Clone(t.Outputs)
	s.tx.Inputs = slices.Clone(t.Inputs)
	if t.Outgoing != nil {
		s.outgoing = *t.Outgoing
	}
	for _, transfer := range t.Incoming {
		s.incoming = append(s.incoming, *transfer)
	}
	for _, output := range t.Outputs {
		s.outputs = append(s.outputs, *output)
	}
	for _, input := range t.Inputs {
		s.inputs = append(s.inputs, *input)
	}
	return s
}

func (t *Tx) restore(s txSnapshot) {
	*t = s.tx
	if t.Outgoing != nil {
		*t.Outgoing = s.outgoing
	}
	for i, transfer := range t.Incoming {
		*transfer = s.incoming[i]
	}
	for i, output := range t.Outputs {
		*output = s.outputs[i]
	}
	for i, input := range t.Inputs {
		*input = s.inputs[i]
	}
}

func (t *Tx) mergeScalars(other *Tx) error {
	if err := reconcile.Set("height", &t.Height, other.Height, reconcile.Policy{}); err != nil {
		return err
	}
	if err := reconcile.Set("fee", &t.Fee, other.Fee, reconcile.Policy{}); err != nil {
		return err
	}
	if err := reconcile.Set("note", &t.Note, other.Note, reconcile.Policy{}); err != nil {
		return err
	}
	if err := reconcile.Set("paymentId", &t.PaymentID, other.PaymentID, reconcile.Policy{}); err != nil {
		return err
	}
	if err := reconcile.Set("isLocked", &t.IsLocked, other.IsLocked, reconcile.Policy{Bool: reconcile.PreferFalse}); err != nil {
		return err
	}
	if err := reconcile.Set("isRelayed", &t.IsRelayed, other.IsRelayed, reconcile.Policy{Bool: reconcile.PreferTrue}); err != nil {
		return err
	}
	if err := reconcile.Set("isDoubleSpendSeen", &t.IsDoubleSpendSeen, other.IsDoubleSpendSeen, reconcile.Policy{Bool: reconcile.PreferTrue}); err != nil {
		return err
	}
	if err := reconcile.Set("confirmations", &t.Confirmations, other.Confirmations, reconcile.Policy{Number: reconcile.PreferMax}); err != nil {
		return err
	}
	if err := reconcile.Set("numBlocksToConfirm", &t.NumBlocksToConfirm, other.NumBlocksToConfirm, reconcile.Policy{Number: reconcile.PreferMin}); err != nil {
		return err
	}
	if err := reconcile.Set("receivedTimestamp", &t.ReceivedTimestamp, other.ReceivedTimestamp, reconcile.Policy{Number: reconcile.PreferMin}); err != nil {
		return err
	}
	return reconcile.Set("unlockTime", &t.UnlockTime, other.UnlockTime, reconcile.Policy{})
}

func (t *Tx) mergeIncoming(transfer *Transfer) error {
	for _, existing := range t.Incoming {
		if existing == transfer {
			return nil
		}
		if existing.sameIncoming(transfer) {
			return existing.Merge(transfer)
		}
	}
	t.AddIncoming(transfer)
	return nil
}

func (t *Tx) sortIncoming() {
	sort.SliceStable(t.Incoming, func(i, j int) bool {
		a, b := t.Incoming[i], t.Incoming[j]
		if ai, bi := deref(a.AccountIndex), deref(b.AccountIndex); ai != bi {
			return ai < bi
		}
		return deref(a.SubaddressIndex()) < deref(b.SubaddressIndex())
	})
}

// ReceivedOutputs returns the outputs announced as received for the transaction.
// Outputs the backend reported are used when present; otherwise one output is
// derived from each incoming transfer. Derived outputs point at t but are not
// owned by it.
func (t *Tx) ReceivedOutputs() []*Output {
	if len(t.Outputs) > 0 {
		return t.Outputs
	}
	outputs := make([]*Output, 0, len(t.Incoming))
	for _, transfer := range t.Incoming {
		outputs = append(outputs, &Output{
			Amount:          transfer.Amount,
			AccountIndex:    transfer.AccountIndex,
			SubaddressIndex: transfer.SubaddressIndex(),
			tx:              t,
		})
	}
	return outputs
}

// SpentOutputs returns the outputs announced as spent for the transaction: a
// single output derived from the outgoing transfer, worth its amount plus fee.
func (t *Tx) SpentOutputs() []*Output {
	if t.Outgoing == nil {
		return nil
	}
	amount := deref(t.Outgoing.Amount) + deref(t.Fee)
	spent := true
	return []*Output{{
		Amount:          &amount,
		IsSpent:         &spent,
		AccountIndex:    t.Outgoing.AccountIndex,
		SubaddressIndex: t.Outgoing.SubaddressIndex(),
		tx:              t,
	}}
}

// UnmarshalJSON decodes a transaction and re-attaches its children.
func (t *Tx) UnmarshalJSON(data []byte) error {
	type plain Tx
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*t = Tx(decoded)
	t.Attach()
	return nil
}

func mergeState(a, b TxState) (TxState, error) {
	switch {
	case a == b || b == "":
		return a, nil
	case a == "":
		return b, nil
	case a == TxUnconfirmed:
		return b, nil
	case b == TxUnconfirmed:
		return a, nil
	default:
		return "", &reconcile.InconsistentError{Field: "state", A: a, B: b}
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
