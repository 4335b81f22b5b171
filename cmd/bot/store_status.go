package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
	"github.com/Jacobbrewer1/orderbot/pkg/messages"
)

func pauseProcessor(ctx context.Context, a IApp, _ *slog.Logger, i *discordgo.InteractionCreate) (*response, error) {
	if err := a.Orders().Pause(ctx, i.GuildID); err != nil {
		return nil, err
	}
	return &response{embed: reply(":pause_button: Store paused", messages.StorePausedAdmin, colorOrange)}, nil
}

func closeProcessor(ctx context.Context, a IApp, _ *slog.Logger, i *discordgo.InteractionCreate) (*response, error) {
	if err := a.Orders().Close(ctx, i.GuildID); err != nil {
		return nil, err
	}
	return &response{embed: reply(":red_circle: Store closed", messages.StoreClosedAdmin, colorRed)}, nil
}

// openProcessor opens the store, answers the admin and then DMs everyone who was waiting.
func openProcessor(ctx context.Context, a IApp, l *slog.Logger, i *discordgo.InteractionCreate) (*response, error) {
	res, err := a.Orders().Open(ctx, i.GuildID)
	if err != nil {
		return nil, err
	}

	embed := replyOK(":green_circle: Store open", fmt.Sprintf(messages.StoreOpenAdmin, len(res.Pending)))
	if res.PanelErr != nil {
		l.Error("Store opened but panel not refreshed", slog.String(logging.KeyError, res.PanelErr.Error()))
		failed, _ := errorReply(res.PanelErr)
		embed.Description += "\n\n" + fmt.Sprintf(messages.PanelNotUpdated, failed.Description)
	}

	guildID := i.GuildID
	return &response{
		embed: embed,
		after: func(ctx context.Context) {
			if len(res.Pending) == 0 {
				return
			}
			a.Orders().NotifyReopened(ctx, guildID, res.Pending)
		},
	}, nil
}
