package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/orderbot/cmd/bot/monitoring"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
)

const reconcileTimeout = 2 * time.Minute

// guildJoinedHandler runs whenever a guild becomes available: on start-up, on join, and after an outage. It
// registers the commands and drops ticket records whose channel was deleted while the bot was away.
func guildJoinedHandler(a IApp, commands []*discordgo.ApplicationCommand) func(s *discordgo.Session, g *discordgo.GuildCreate) {
	return func(s *discordgo.Session, g *discordgo.GuildCreate) {
		l := a.Log().With(slog.String(logging.KeyGuildID, g.ID))
		l.Info("Guild available", slog.String("name", g.Name))

		monitoring.TotalDiscordGuilds.Set(float64(len(s.State.Guilds)))

		if _, err := s.ApplicationCommandBulkOverwrite(a.Config().ApplicationId, g.ID, commands); err != nil {
			l.Error("Error registering commands", slog.String(logging.KeyError, err.Error()))
		}

		ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
		defer cancel()

		removed, err := a.Orders().Reconcile(ctx, g.ID)
		if err != nil {
			l.Error("Error reconciling tickets", slog.String(logging.KeyError, err.Error()))
			return
		} else if removed > 0 {
			l.Info("Reconciled tickets", slog.Int("removed", removed))
		}
	}
}

func guildLeaveHandler(a IApp) func(s *discordgo.Session, g *discordgo.GuildDelete) {
	return func(s *discordgo.Session, g *discordgo.GuildDelete) {
		if g.Unavailable {
			a.Log().Warn("Guild unavailable", slog.String(logging.KeyGuildID, g.ID))
			return
		}

		a.Log().Info("Left guild", slog.String(logging.KeyGuildID, g.ID))
		monitoring.TotalDiscordGuilds.Set(float64(len(s.State.Guilds)))
	}
}
