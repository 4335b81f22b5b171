package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
	"github.com/Jacobbrewer1/orderbot/pkg/messages"
	"github.com/Jacobbrewer1/orderbot/pkg/ordering"
)

func startOrderProcessor(ctx context.Context, a IApp, _ *slog.Logger, i *discordgo.InteractionCreate) (*response, error) {
	user := interactionUser(i)
	if user == nil {
		return nil, fmt.Errorf("interaction has no user")
	}

	res, err := a.Orders().CreateTicket(ctx, ordering.TicketRequest{
		GuildID:  i.GuildID,
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		return nil, err
	}
	return &response{embed: outcomeReply(res)}, nil
}

func notifyProcessor(ctx context.Context, a IApp, _ *slog.Logger, i *discordgo.InteractionCreate) (*response, error) {
	user := interactionUser(i)
	if user == nil {
		return nil, fmt.Errorf("interaction has no user")
	}

	out, err := a.Orders().ToggleNotify(ctx, i.GuildID, user.ID)
	if err != nil {
		return nil, err
	}
	return &response{embed: notifyReply(out)}, nil
}

// closeTicketProcessor answers first and deletes the channel afterwards, since the followup cannot be
// delivered into a deleted channel.
func closeTicketProcessor(_ context.Context, a IApp, l *slog.Logger, i *discordgo.InteractionCreate) (*response, error) {
	channelID := i.ChannelID
	return &response{
		embed: reply(messages.TicketClosingTitle, messages.TicketClosing, colorRed),
		after: func(ctx context.Context) {
			if err := a.Orders().CloseTicket(ctx, channelID); err != nil {
				l.Error("Error closing ticket", slog.String(logging.KeyError, err.Error()))
			}
		},
	}, nil
}
