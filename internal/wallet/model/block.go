package model

import (
	"encoding/json"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/reconcile"
)

// Block groups transactions by height. The pool block has no height and
// holds unconfirmed transactions; it is never persisted.
type Block struct {
	Height    *uint64 `json:"height,omitempty"`
	Hash      *string `json:"hash,omitempty"`
	Timestamp *uint64 `json:"timestamp,omitempty"`
	Txs       []*Tx   `json:"txs,omitempty"`
}

// NewBlock returns an empty block at height.
func NewBlock(height uint64, timestamp *uint64) *Block {
	return &Block{Height: &height, Timestamp: timestamp}
}

// NewPoolBlock returns an empty pool block.
func NewPoolBlock() *Block {
	return &Block{}
}

// IsPool reports whether b is the synthetic pool block.
func (b *Block) IsPool() bool {
	return b.Height == nil
}

// AddTx attaches tx to the block.
func (b *Block) AddTx(tx *Tx) {
	if tx.block == b {
		return
	}
	if tx.block != nil {
		tx.block.RemoveTx(tx)
	}
	tx.block = b
	b.Txs = append(b.Txs, tx)
}

// RemoveTx detaches tx from the block.
func (b *Block) RemoveTx(tx *Tx) {
	for i, existing := range b.Txs {
		if existing == tx {
			b.Txs = append(b.Txs[:i], b.Txs[i+1:]...)
			if tx.block == b {
				tx.block = nil
			}
			return
		}
	}
}

// MergeHeader reconciles the header fields of another observation of the block.
// A confirmed block timestamp is a consensus fact and must match exactly.
func (b *Block) MergeHeader(other *Block) error {
	if b == other || other == nil {
		return nil
	}
	if err := reconcile.Set("block.height", &b.Height, other.Height, reconcile.Policy{}); err != nil {
		return err
	}
	if err := reconcile.Set("block.hash", &b.Hash, other.Hash, reconcile.Policy{}); err != nil {
		return err
	}
	return reconcile.Set("block.timestamp", &b.Timestamp, other.Timestamp, reconcile.Policy{})
}

// UnmarshalJSON decodes a block and re-attaches its transactions.
func (b *Block) UnmarshalJSON(data []byte) error {
	type plain Block
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*b = Block(decoded)
	for _, tx := range b.Txs {
		tx.block = b
	}
	return nil
}
