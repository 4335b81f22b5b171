package ordering

import (
	"context"

	"github.com/Jacobbrewer1/orderbot/pkg/entities"
)

// Platform is the chat platform the store lives on. Implementations return ErrPlatformNotFound (wrapped is
// fine) when a channel or message they were pointed at does not exist.
type Platform interface {
	// ProvisionOrderChannel creates the order category and the order channel inside it.
	ProvisionOrderChannel(ctx context.Context, guildID string) (channelID, categoryID string, err error)

	// CategoryExists reports whether the category exists in the guild and can hold channels.
	CategoryExists(ctx context.Context, guildID, categoryID string) (bool, error)

	// ChannelExists reports whether the channel still exists.
	ChannelExists(ctx context.Context, channelID string) (bool, error)

	// CreateTicketChannel creates a private channel visible only to the customer, staff and the bot.
	CreateTicketChannel(ctx context.Context, req TicketChannelRequest) (channelID string, err error)

	// DeleteChannel deletes a channel.
	DeleteChannel(ctx context.Context, channelID string) error

	// SendTicketWelcome posts the welcome message with the close control into a new ticket channel.
	SendTicketWelcome(ctx context.Context, channelID, userID string) error

	// PostPanel posts a new order panel message.
	PostPanel(ctx context.Context, channelID string, view PanelView) (messageID string, err error)

	// EditPanel re-renders an existing order panel message.
	EditPanel(ctx context.Context, channelID, messageID string, view PanelView) error

	// NotifyReopened DMs a user that the store is taking orders again.
	NotifyReopened(ctx context.Context, guildID, userID string) error
}

// TicketChannelRequest describes a ticket channel to create.
type TicketChannelRequest struct {
	// GuildID is the guild to create the channel in.
	GuildID string

	// CategoryID is the category to create the channel under.
	CategoryID string

	// UserID is the customer who gets access.
	UserID string

	// Name is the channel name.
	Name string
}

// PanelView is everything needed to render the order panel.
type PanelView struct {
	// Status is the store status.
	Status entities.StoreStatus

	// Limited is whether a daily limit applies.
	Limited bool

	// Limit is the daily limit, when Limited.
	Limit int

	// Remaining is the tickets left today, when Limited.
	Remaining int

	// ShowNotify is whether the notify control is offered. It is never offered while open.
	ShowNotify bool
}

// NewPanelView builds the panel view for a guild record.
func NewPanelView(g *entities.Guild) PanelView {
	remaining, limited := g.Remaining()
	return PanelView{
		Status:     g.Status,
		Limited:    limited,
		Limit:      g.TicketLimit,
		Remaining:  remaining,
		ShowNotify: g.Status != entities.StoreStatusOpen,
	}
}
