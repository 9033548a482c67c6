package poller

import "time"

const (
	// DefaultLockedWindow is how many blocks below the tip are searched for
	// locked transactions.
	DefaultLockedWindow uint64 = 70

	// DefaultPeriod is the delay between the end of one cycle and the start of the next.
	DefaultPeriod = 20 * time.Second

	eventNewBlock        = "new_block"
	eventOutputReceived  = "output_received"
	eventOutputSpent     = "output_spent"
	eventBalancesChanged = "balances_changed"
)
