package rpc

import "encoding/json"

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	ID     json.RawMessage `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

type heightResult struct {
	Height uint64 `json:"height"`
}

type accountsResult struct {
	Accounts             []accountEntry `json:"subaddress_accounts"`
	TotalBalance         uint64         `json:"total_balance"`
	TotalUnlockedBalance uint64         `json:"total_unlocked_balance"`
}

type accountEntry struct {
	AccountIndex    uint32 `json:"account_index"`
	Balance         uint64 `json:"balance"`
	UnlockedBalance uint64 `json:"unlocked_balance"`
}

type subaddressIndex struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
}

type transfersParams struct {
	In             bool     `json:"in"`
	Out            bool     `json:"out"`
	Pending        bool     `json:"pending"`
	Failed         bool     `json:"failed"`
	Pool           bool     `json:"pool"`
	FilterByHeight bool     `json:"filter_by_height,omitempty"`
	MinHeight      uint64   `json:"min_height,omitempty"`
	MaxHeight      uint64   `json:"max_height,omitempty"`
	AccountIndex   uint32   `json:"account_index,omitempty"`
	SubaddrIndices []uint32 `json:"subaddr_indices,omitempty"`
	AllAccounts    bool     `json:"all_accounts,omitempty"`
}

type transfersResult struct {
	In      []transferEntry `json:"in"`
	Out     []transferEntry `json:"out"`
	Pending []transferEntry `json:"pending"`
	Failed  []transferEntry `json:"failed"`
	Pool    []transferEntry `json:"pool"`
}

func (r transfersResult) entries() []transferEntry {
	entries := make([]transferEntry, 0, len(r.In)+len(r.Out)+len(r.Pending)+len(r.Failed)+len(r.Pool))
	entries = append(entries, r.In...)
	entries = append(entries, r.Out...)
	entries = append(entries, r.Pending...)
	entries = append(entries, r.Failed...)
	return append(entries, r.Pool...)
}

// transferEntry is one row of get_transfers. A transaction that touches several
// subaddresses is reported once per subaddress.
type transferEntry struct {
	TxID            string            `json:"txid"`
	Type            string            `json:"type"`
	Amount          uint64            `json:"amount"`
	Fee             uint64            `json:"fee"`
	Height          uint64            `json:"height"`
	Timestamp       uint64            `json:"timestamp"`
	Confirmations   uint64            `json:"confirmations"`
	Locked          bool              `json:"locked"`
	DoubleSpendSeen bool              `json:"double_spend_seen"`
	UnlockTime      uint64            `json:"unlock_time"`
	Note            string            `json:"note"`
	PaymentID       string            `json:"payment_id"`
	SubaddrIndex    subaddressIndex   `json:"subaddr_index"`
	SubaddrIndices  []subaddressIndex `json:"subaddr_indices"`
}

type incomingParams struct {
	TransferType   string   `json:"transfer_type"`
	AccountIndex   uint32   `json:"account_index"`
	SubaddrIndices []uint32 `json:"subaddr_indices,omitempty"`
}

type incomingResult struct {
	Transfers []incomingEntry `json:"transfers"`
}

type incomingEntry struct {
	TxHash       string          `json:"tx_hash"`
	Amount       uint64          `json:"amount"`
	GlobalIndex  uint64          `json:"global_index"`
	KeyImage     string          `json:"key_image"`
	Spent        bool            `json:"spent"`
	Frozen       bool            `json:"frozen"`
	Unlocked     bool            `json:"unlocked"`
	BlockHeight  uint64          `json:"block_height"`
	SubaddrIndex subaddressIndex `json:"subaddr_index"`
}

const (
	transferTypeAll         = "all"
	transferTypeAvailable   = "available"
	transferTypeUnavailable = "unavailable"
)
