package rpc

import "time"

const (
	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 30 * time.Second
	// DefaultRequestsPerSecond caps calls to the wallet server.
	DefaultRequestsPerSecond = 50
	// DefaultMaxRetries is how many times a transport failure is retried.
	DefaultMaxRetries uint64 = 3
	// DefaultRetryInterval is the pause between retries.
	DefaultRetryInterval = 500 * time.Millisecond
	// DefaultWorkers is the fan-out used for per-account calls.
	DefaultWorkers = 4
)

const (
	methodGetHeight         = "get_height"
	methodGetAccounts       = "get_accounts"
	methodGetTransfers      = "get_transfers"
	methodIncomingTransfers = "incoming_transfers"
)

// Wallet RPC error codes with a meaning of their own.
const (
	codeNotOpen = -13
)
