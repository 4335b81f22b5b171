package entities

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Jacobbrewer1/orderbot/pkg/custom"
)

// Guild is the order configuration and daily state for a guild. One exists per guild once setup has completed.
type Guild struct {
	// ID is the ID of the guild.
	ID string `json:"id" bson:"_id"`

	// Status is the current store status.
	Status StoreStatus `json:"status" bson:"status"`

	// OrderChannelID is the ID of the channel holding the order panel.
	OrderChannelID string `json:"order_channel_id" bson:"order_channel_id"`

	// OrderMessageID is the ID of the order panel message.
	OrderMessageID string `json:"order_message_id" bson:"order_message_id"`

	// CategoryID is the ID of the category that ticket channels are created in.
	CategoryID string `json:"category_id" bson:"category_id"`

	// TicketLimit is the maximum number of tickets per day. 0 means unlimited.
	TicketLimit int `json:"ticket_limit" bson:"ticket_limit"`

	// TicketsToday is the number of tickets opened since LastReset.
	TicketsToday int `json:"tickets_today" bson:"tickets_today"`

	// LastReset is the last day TicketsToday was zeroed.
	LastReset custom.Date `json:"last_reset" bson:"last_reset"`

	// Notify is the set of user IDs waiting for a reopen DM.
	Notify []string `json:"notify" bson:"notify"`
}

// NewGuild returns the record persisted by setup: closed, unlimited, and reset as of today.
func NewGuild(id, orderChannelID, orderMessageID, categoryID string, today custom.Date) *Guild {
	return &Guild{
		ID:             id,
		Status:         StoreStatusClosed,
		OrderChannelID: orderChannelID,
		OrderMessageID: orderMessageID,
		CategoryID:     categoryID,
		TicketLimit:    0,
		TicketsToday:   0,
		LastReset:      today,
		Notify:         []string{},
	}
}

// ErrInvalidGuild is returned when a stored guild record holds values no operation could have written.
var ErrInvalidGuild = errors.New("invalid guild record")

// Validate checks the fields that drive the order flow.
func (g *Guild) Validate() error {
	if !g.Status.IsValid() {
		return fmt.Errorf("status %q: %w", g.Status, ErrInvalidGuild)
	}
	if !g.LastReset.IsZero() && !g.LastReset.Valid() {
		return fmt.Errorf("last reset %q: %w", g.LastReset, ErrInvalidGuild)
	}
	if g.TicketLimit < 0 || g.TicketsToday < 0 {
		return fmt.Errorf("negative ticket counts: %w", ErrInvalidGuild)
	}
	return nil
}

// IsNotified reports whether the user is on the notify list.
func (g *Guild) IsNotified(userID string) bool {
	return slices.Contains(g.Notify, userID)
}

// Remaining returns the tickets left for today and whether a limit applies at all.
func (g *Guild) Remaining() (int, bool) {
	if g.TicketLimit <= 0 {
		return 0, false
	}
	return max(g.TicketLimit-g.TicketsToday, 0), true
}
