package query

// IsContextual reports whether the transfer query needs fully assembled
// transactions: it filters by direction or depends on outputs, which a
// transfer-only fetch does not return.
func (q *TransferQuery) IsContextual() bool {
	if q == nil {
		return false
	}
	if q.IsIncoming != nil {
		return true
	}
	if q.Tx == nil {
		return false
	}
	return q.Tx.IsIncoming != nil || q.Tx.IsOutgoing != nil || q.Tx.Output != nil
}

// IsContextual reports whether the output query needs fully assembled
// transactions: it filters by direction or depends on transfers, which an
// output-only fetch does not return.
func (q *OutputQuery) IsContextual() bool {
	if q == nil || q.Tx == nil {
		return false
	}
	return q.Tx.IsIncoming != nil || q.Tx.IsOutgoing != nil || q.Tx.Transfer != nil
}

// Decontextualize returns a copy of q without direction, sub-queries and
// expressions. The result is the coarse filter sent to the backend; the full
// query is re-applied in memory.
func Decontextualize(q *TxQuery) *TxQuery {
	if q == nil {
		return &TxQuery{}
	}
	coarse := *q
	coarse.Hashes = append([]string(nil), q.Hashes...)
	coarse.PaymentIDs = append([]string(nil), q.PaymentIDs...)
	coarse.IsIncoming = nil
	coarse.IsOutgoing = nil
	coarse.Transfer = nil
	coarse.Output = nil
	coarse.Where = nil
	return &coarse
}

// outputFetchQuery returns the output filter that can be sent to the backend
// alongside the coarse tx filter.
func outputFetchQuery(q *OutputQuery, coarse *TxQuery) *OutputQuery {
	fetch := &OutputQuery{}
	if q != nil {
		*fetch = *q
		fetch.SubaddressIndices = append([]uint32(nil), q.SubaddressIndices...)
	}
	fetch.Tx = coarse
	return fetch
}
