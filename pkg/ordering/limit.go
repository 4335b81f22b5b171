package ordering

import (
	"time"

	"github.com/Jacobbrewer1/orderbot/pkg/custom"
)

// Decision is the result of evaluating the daily ticket limit.
type Decision struct {
	// Allowed is whether a new ticket may be created.
	Allowed bool

	// MustReset is whether the daily counter must be reset to Today before anything else.
	MustReset bool

	// Today is the UTC date the decision was made for.
	Today custom.Date

	// TicketsToday is the effective counter, after any pending reset.
	TicketsToday int
}

// EvaluateDailyLimit decides whether a ticket may be opened. A last reset that is not today is treated as a
// counter of zero and flagged for reset. A limit of zero means unlimited.
func EvaluateDailyLimit(limit, ticketsToday int, lastReset custom.Date, now time.Time) Decision {
	d := Decision{
		Today:        custom.DateOf(now),
		TicketsToday: ticketsToday,
	}

	if lastReset != d.Today {
		d.MustReset = true
		d.TicketsToday = 0
	}

	d.Allowed = limit <= 0 || d.TicketsToday < limit
	return d
}
