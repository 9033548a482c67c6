package rpc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
)

// Entry types reported by get_transfers.
const (
	entryIn      = "in"
	entryOut     = "out"
	entryPending = "pending"
	entryFailed  = "failed"
	entryPool    = "pool"
)

// entryTx converts one get_transfers entry into a partial transaction carrying
// a single transfer. Confirmed transactions are attached to their block.
func entryTx(e transferEntry) (*model.Tx, error) {
	if e.TxID == "" {
		return nil, fmt.Errorf("%s transfer without txid", e.Type)
	}

	var (
		state    model.TxState
		incoming bool
	)
	switch e.Type {
	case entryIn:
		state, incoming = model.TxConfirmed, true
	case entryOut:
		state = model.TxConfirmed
	case entryPool:
		state, incoming = model.TxUnconfirmed, true
	case entryPending:
		state = model.TxUnconfirmed
	case entryFailed:
		state = model.TxFailed
	default:
		return nil, fmt.Errorf("tx %s: unknown transfer type %q", e.TxID, e.Type)
	}

	tx := &model.Tx{
		Hash:              e.TxID,
		State:             state,
		Fee:               ptr(e.Fee),
		UnlockTime:        ptr(e.UnlockTime),
		IsDoubleSpendSeen: ptr(e.DoubleSpendSeen),
	}
	if e.Note != "" {
		tx.Note = ptr(e.Note)
	}
	if id := paymentID(e.PaymentID); id != "" {
		tx.PaymentID = ptr(id)
	}

	switch state {
	case model.TxConfirmed:
		tx.Height = ptr(e.Height)
		tx.Confirmations = ptr(e.Confirmations)
		tx.IsLocked = ptr(e.Locked)
		tx.IsRelayed = ptr(true)
		model.NewBlock(e.Height, ptr(e.Timestamp)).AddTx(tx)
	case model.TxUnconfirmed:
		tx.IsLocked = ptr(true)
		tx.IsRelayed = ptr(true)
		tx.ReceivedTimestamp = ptr(e.Timestamp)
	case model.TxFailed:
		tx.IsRelayed = ptr(false)
	}

	account := e.SubaddrIndex.Major
	if incoming {
		tx.AddIncoming(&model.Transfer{
			Direction:         model.Incoming,
			Amount:            ptr(e.Amount),
			AccountIndex:      ptr(account),
			SubaddressIndices: []uint32{e.SubaddrIndex.Minor},
		})
		return tx, nil
	}

	tx.SetOutgoing(&model.Transfer{
		Direction:         model.Outgoing,
		Amount:            ptr(e.Amount),
		AccountIndex:      ptr(account),
		SubaddressIndices: spentFrom(e),
	})
	return tx, nil
}

// spentFrom lists the subaddresses an outgoing transfer drew from.
func spentFrom(e transferEntry) []uint32 {
	if len(e.SubaddrIndices) == 0 {
		return []uint32{e.SubaddrIndex.Minor}
	}
	indices := make([]uint32, 0, len(e.SubaddrIndices))
	for _, idx := range e.SubaddrIndices {
		indices = append(indices, idx.Minor)
	}
	slices.Sort(indices)
	return slices.Compact(indices)
}

// paymentID returns "" for the all-zero placeholder the server reports when a
// transaction has no payment id.
func paymentID(id string) string {
	if strings.Trim(id, "0") == "" {
		return ""
	}
	return id
}

// incomingOutput converts an incoming_transfers entry into an output attached
// to a partial confirmed transaction.
func incomingOutput(e incomingEntry) (*model.Output, error) {
	if e.TxHash == "" {
		return nil, fmt.Errorf("output %d without tx hash", e.GlobalIndex)
	}
	output := &model.Output{
		Amount:          ptr(e.Amount),
		Index:           ptr(e.GlobalIndex),
		IsSpent:         ptr(e.Spent),
		IsFrozen:        ptr(e.Frozen),
		AccountIndex:    ptr(e.SubaddrIndex.Major),
		SubaddressIndex: ptr(e.SubaddrIndex.Minor),
	}
	if e.KeyImage != "" {
		output.KeyImage = ptr(e.KeyImage)
	}

	tx := &model.Tx{Hash: e.TxHash, State: model.TxConfirmed}
	if e.BlockHeight > 0 {
		tx.Height = ptr(e.BlockHeight)
	}
	tx.AddOutput(output)
	return output, nil
}

func ptr[T any](v T) *T {
	return &v
}
