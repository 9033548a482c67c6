// Package graph holds the canonical, deduplicated wallet entity graph.
package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
	"go.uber.org/zap"
)

// ErrOrphan is returned when an output is merged without its transaction.
var ErrOrphan = errors.New("entity has no owning transaction")

// maxConfirmationDrift is the largest difference tolerated between two
// observations of a transaction's confirmation count before it is reported.
const maxConfirmationDrift = 1

// DriftObserver is notified when two observations of a confirmation count
// differ by more than one block.
type DriftObserver interface {
	ObserveConfirmationDrift(drift uint64)
}

// Graph maps transaction hashes to canonical transactions and heights to
// blocks. Unconfirmed transactions hang off a pool block that is recreated by
// ResetPool. A Graph is not safe for concurrent use.
type Graph struct {
	logger *zap.Logger
	drift  DriftObserver

	txs    map[string]*model.Tx
	order  []string
	blocks map[uint64]*model.Block
	pool   *model.Block
}

// New returns an empty graph. drift may be nil.
func New(logger *zap.Logger, drift DriftObserver) *Graph {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Graph{
		logger: logger,
		drift:  drift,
		txs:    make(map[string]*model.Tx),
		blocks: make(map[uint64]*model.Block),
		pool:   model.NewPoolBlock(),
	}
}

// MergeTx merges tx into the graph and returns the canonical instance. The
// first observation of a hash becomes canonical; later ones are merged into it.
func (g *Graph) MergeTx(tx *model.Tx) (*model.Tx, error) {
	if tx == nil {
		return nil, errors.New("merge nil tx")
	}
	if tx.Hash == "" {
		return nil, errors.New("merge tx without hash")
	}
	observed := tx.Block()

	canonical, ok := g.txs[tx.Hash]
	if !ok {
		canonical = tx
		canonical.Attach()
		canonical.Normalize()
		g.txs[tx.Hash] = canonical
		g.order = append(g.order, tx.Hash)
	} else {
		g.checkDrift(canonical, tx)
		if err := canonical.Merge(tx); err != nil {
			return nil, err
		}
	}

	if err := g.associate(canonical, observed); err != nil {
		return nil, fmt.Errorf("tx %s: %w", canonical.Hash, err)
	}
	return canonical, nil
}

// MergeOutput merges the transaction owning output and returns the canonical
// transaction.
func (g *Graph) MergeOutput(output *model.Output) (*model.Tx, error) {
	if output == nil || output.Tx() == nil {
		return nil, ErrOrphan
	}
	return g.MergeTx(output.Tx())
}

// Tx returns the canonical transaction for hash.
func (g *Graph) Tx(hash string) (*model.Tx, bool) {
	tx, ok := g.txs[hash]
	return tx, ok
}

// Len returns the number of canonical transactions.
func (g *Graph) Len() int {
	return len(g.txs)
}

// Txs returns canonical transactions in first-observation order.
func (g *Graph) Txs() []*model.Tx {
	txs := make([]*model.Tx, 0, len(g.order))
	for _, hash := range g.order {
		txs = append(txs, g.txs[hash])
	}
	return txs
}

// Blocks returns blocks by ascending height followed by the pool block when
// it holds transactions.
func (g *Graph) Blocks() []*model.Block {
	heights := make([]uint64, 0, len(g.blocks))
	for h := range g.blocks {
		heights = append(heights, h)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })

	blocks := make([]*model.Block, 0, len(heights)+1)
	for _, h := range heights {
		blocks = append(blocks, g.blocks[h])
	}
	if len(g.pool.Txs) > 0 {
		blocks = append(blocks, g.pool)
	}
	return blocks
}

// Pool returns the synthetic block holding unconfirmed transactions.
func (g *Graph) Pool() *model.Block {
	return g.pool
}

// ResetPool replaces the pool block with an empty one and detaches every
// transaction that was in it.
func (g *Graph) ResetPool() {
	for _, tx := range append([]*model.Tx(nil), g.pool.Txs...) {
		g.pool.RemoveTx(tx)
	}
	g.pool = model.NewPoolBlock()
}

// Evict removes a transaction and drops its block once the block is empty.
func (g *Graph) Evict(hash string) {
	tx, ok := g.txs[hash]
	if !ok {
		return
	}
	delete(g.txs, hash)
	for i, h := range g.order {
		if h == hash {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	block := tx.Block()
	if block == nil {
		return
	}
	block.RemoveTx(tx)
	if !block.IsPool() && len(block.Txs) == 0 {
		delete(g.blocks, *block.Height)
	}
}

// associate attaches the canonical transaction to the block at its height, or
// to the pool block while it is unconfirmed. Failed transactions belong to no
// block.
func (g *Graph) associate(tx *model.Tx, observed *model.Block) error {
	if !tx.IsConfirmed() || tx.Height == nil {
		current := tx.Block()
		switch {
		case tx.InTxPool():
			if current != g.pool {
				g.pool.AddTx(tx)
			}
		case current != nil && current.IsPool():
			current.RemoveTx(tx)
		}
		return nil
	}

	height := *tx.Height
	block, ok := g.blocks[height]
	if !ok {
		block = model.NewBlock(height, nil)
		g.blocks[height] = block
	}
	if observed != nil && observed != block && !observed.IsPool() {
		if err := block.MergeHeader(observed); err != nil {
			return err
		}
	}
	block.AddTx(tx)
	return nil
}

func (g *Graph) checkDrift(canonical, observed *model.Tx) {
	if canonical.Confirmations == nil || observed.Confirmations == nil {
		return
	}
	a, b := *canonical.Confirmations, *observed.Confirmations
	drift := a - b
	if b > a {
		drift = b - a
	}
	if drift <= maxConfirmationDrift {
		return
	}
	g.logger.Warn("confirmation drift between observations",
		zap.String("hash", canonical.Hash),
		zap.Uint64("canonical", a),
		zap.Uint64("observed", b))
	if g.drift != nil {
		g.drift.ObserveConfirmationDrift(drift)
	}
}
