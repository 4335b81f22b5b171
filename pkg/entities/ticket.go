package entities

import (
	"fmt"
	"strings"

	"github.com/Jacobbrewer1/orderbot/pkg/custom"
)

// Ticket is an open order ticket. It exists from ticket creation until the ticket is closed.
type Ticket struct {
	// ID is the ID of the ticket channel.
	ID string `json:"id" bson:"_id"`

	// UserID is the ID of the user that opened the ticket.
	UserID string `json:"user_id" bson:"user_id"`

	// GuildID is the ID of the guild that the ticket is in.
	GuildID string `json:"guild_id" bson:"guild_id"`

	// CreatedAt is the time that the ticket was created.
	CreatedAt custom.Datetime `json:"created_at" bson:"created_at"`
}

// ChannelName returns the channel name for a user's ticket.
// For example, if the users username is "Big Wolf", the channel name will be "order-big-wolf".
func ChannelName(username string) string {
	return strings.ToLower(strings.ReplaceAll(fmt.Sprintf("order-%s", username), " ", "-"))
}
