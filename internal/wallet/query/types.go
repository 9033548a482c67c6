package query

import (
	"context"

	"github.com/goodnatureofminers/walletsync-backend/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source fetches partial records from the wallet backend. Filters are
	// coarse; results are re-filtered in memory.
	Source interface {
		// FetchTxs returns transactions with their transfers.
		FetchTxs(ctx context.Context, q *TxQuery) ([]*model.Tx, error)
		// FetchOutputs returns outputs attached to partial parent transactions.
		FetchOutputs(ctx context.Context, q *OutputQuery) ([]*model.Output, error)
	}
)
