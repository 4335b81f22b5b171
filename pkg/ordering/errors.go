package ordering

import (
	"errors"
)

var (
	// ErrConfigurationMissing is returned when the guild's order category, channel or panel no longer exists
	// on the platform. An admin needs to run setup again.
	ErrConfigurationMissing = errors.New("order configuration missing")

	// ErrInvalidAmount is returned when a limit or counter override is negative.
	ErrInvalidAmount = errors.New("amount must be zero or greater")

	// ErrPlatformNotFound is returned by a Platform when the channel or message it was asked about does not exist.
	ErrPlatformNotFound = errors.New("not found on platform")
)

// Outcome is the result of a ticket creation attempt.
type Outcome int

const (
	// OutcomeCreated means the ticket channel was opened.
	OutcomeCreated Outcome = iota

	// OutcomeStoreClosed means the store is closed.
	OutcomeStoreClosed

	// OutcomeStorePaused means the store is paused; the customer should use the notify control.
	OutcomeStorePaused

	// OutcomeLimitReached means today's ticket limit has been reached.
	OutcomeLimitReached
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeStoreClosed:
		return "store_closed"
	case OutcomeStorePaused:
		return "store_paused"
	case OutcomeLimitReached:
		return "limit_reached"
	default:
		return "unknown"
	}
}

// NotifyOutcome is the result of toggling notify list membership.
type NotifyOutcome int

const (
	// NotifyAdded means the user will be DM'd when the store reopens.
	NotifyAdded NotifyOutcome = iota

	// NotifyRemoved means the user was taken off the notify list.
	NotifyRemoved

	// NotifyStoreOpen means the store is already open and nothing changed.
	NotifyStoreOpen
)
