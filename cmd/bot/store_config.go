package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/orderbot/pkg/messages"
)

func setupProcessor(ctx context.Context, a IApp, l *slog.Logger, i *discordgo.InteractionCreate) (*response, error) {
	repaired, err := a.Orders().Setup(ctx, i.GuildID)
	if err != nil {
		return nil, err
	}

	guild, err := a.Orders().Guild(ctx, i.GuildID)
	if err != nil {
		return nil, err
	}

	if repaired {
		l.Info("Order channel re-provisioned")
		return &response{embed: replyOK("Setup repaired", fmt.Sprintf(messages.SetupRepaired, guild.OrderChannelID))}, nil
	}

	l.Info("Guild set up")
	return &response{embed: replyOK("Setup complete", fmt.Sprintf(messages.SetupComplete, guild.OrderChannelID))}, nil
}

func limitProcessor(ctx context.Context, a IApp, l *slog.Logger, i *discordgo.InteractionCreate) (*response, error) {
	amount, ok := intOption(i, amountOptionName)
	if !ok {
		return nil, fmt.Errorf("missing %s option", amountOptionName)
	}

	if err := a.Orders().SetTicketLimit(ctx, i.GuildID, amount); err != nil {
		return nil, err
	}

	l.Info("Ticket limit set", slog.Int("limit", amount))
	if amount == 0 {
		return &response{embed: replyOK("Limit updated", messages.LimitRemoved)}, nil
	}
	return &response{embed: replyOK("Limit updated", fmt.Sprintf(messages.LimitSet, amount))}, nil
}

func setTodayProcessor(ctx context.Context, a IApp, l *slog.Logger, i *discordgo.InteractionCreate) (*response, error) {
	amount, ok := intOption(i, amountOptionName)
	if !ok {
		return nil, fmt.Errorf("missing %s option", amountOptionName)
	}

	if err := a.Orders().SetTicketsToday(ctx, i.GuildID, amount); err != nil {
		return nil, err
	}

	l.Info("Tickets today overridden", slog.Int("tickets_today", amount))
	return &response{embed: replyOK("Count updated", fmt.Sprintf(messages.TicketsTodaySet, amount))}, nil
}

func helpProcessor(_ context.Context, _ IApp, _ *slog.Logger, _ *discordgo.InteractionCreate) (*response, error) {
	return &response{embed: reply("Help", messages.Help, colorBlurple)}, nil
}
