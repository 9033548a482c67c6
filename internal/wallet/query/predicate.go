package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
)

// TxEnv is the environment a Predicate is evaluated against.
type TxEnv struct {
	Hash          string `expr:"hash"`
	State         string `expr:"state"`
	Height        uint64 `expr:"height"`
	Confirmed     bool   `expr:"confirmed"`
	Locked        bool   `expr:"locked"`
	Failed        bool   `expr:"failed"`
	Incoming      bool   `expr:"incoming"`
	Outgoing      bool   `expr:"outgoing"`
	Fee           uint64 `expr:"fee"`
	Confirmations uint64 `expr:"confirmations"`
	UnlockTime    uint64 `expr:"unlockTime"`
	AmountIn      uint64 `expr:"amountIn"`
	AmountOut     uint64 `expr:"amountOut"`
	Note          string `expr:"note"`
	PaymentID     string `expr:"paymentId"`
	Outputs       int    `expr:"outputs"`
}

// Predicate is a compiled boolean expression over a transaction, e.g.
// `incoming && amountIn > 1000 && confirmations < 10`.
type Predicate struct {
	expression string
	program    *vm.Program
}

// NewPredicate compiles expression.
func NewPredicate(expression string) (*Predicate, error) {
	if expression == "" {
		return nil, fmt.Errorf("expression must not be empty")
	}
	program, err := expr.Compile(expression, expr.Env(TxEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile predicate %q: %w", expression, err)
	}
	return &Predicate{expression: expression, program: program}, nil
}

// String returns the source expression.
func (p *Predicate) String() string {
	return p.expression
}

// Match evaluates the predicate; evaluation errors count as no match.
func (p *Predicate) Match(tx *model.Tx) bool {
	out, err := expr.Run(p.program, NewTxEnv(tx))
	if err != nil {
		return false
	}
	matched, _ := out.(bool)
	return matched
}

// NewTxEnv flattens tx into a predicate environment.
func NewTxEnv(tx *model.Tx) TxEnv {
	env := TxEnv{
		Hash:      tx.Hash,
		State:     string(tx.State),
		Confirmed: tx.IsConfirmed(),
		Locked:    tx.Locked(),
		Failed:    tx.IsFailed(),
		Incoming:  tx.IsIncoming(),
		Outgoing:  tx.IsOutgoing(),
		Outputs:   len(tx.Outputs),
	}
	if tx.Height != nil {
		env.Height = *tx.Height
	}
	if tx.Fee != nil {
		env.Fee = *tx.Fee
	}
	if tx.Confirmations != nil {
		env.Confirmations = *tx.Confirmations
	}
	if tx.UnlockTime != nil {
		env.UnlockTime = *tx.UnlockTime
	}
	if tx.Note != nil {
		env.Note = *tx.Note
	}
	if tx.PaymentID != nil {
		env.PaymentID = *tx.PaymentID
	}
	if tx.Outgoing != nil && tx.Outgoing.Amount != nil {
		env.AmountOut = *tx.Outgoing.Amount
	}
	for _, transfer := range tx.Incoming {
		if transfer.Amount != nil {
			env.AmountIn += *transfer.Amount
		}
	}
	return env
}
