package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/orderbot/cmd/bot/monitoring"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
	"github.com/Jacobbrewer1/orderbot/pkg/messages"
	"github.com/Jacobbrewer1/orderbot/pkg/request"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	// interactionTimeout bounds the work done before answering an interaction.
	interactionTimeout = 30 * time.Second

	// afterTimeout bounds the work done after answering, such as reopen DMs.
	afterTimeout = 10 * time.Minute
)

// response is what a processor answers with. after, if set, runs once the answer has been sent.
type response struct {
	embed *discordgo.MessageEmbed
	after func(ctx context.Context)
}

// interactionProcessor handles one slash command or button press.
type interactionProcessor func(ctx context.Context, a IApp, l *slog.Logger, i *discordgo.InteractionCreate) (*response, error)

// slashCommand is a registered slash command and its processor.
type slashCommand struct {
	// cmd is the command registered with discord.
	cmd *discordgo.ApplicationCommand

	// adminOnly requires the Administrator permission.
	adminOnly bool

	// process handles the command.
	process interactionProcessor
}

type Controller func(w http.ResponseWriter, r *http.Request)

func middlewareHttp(l *slog.Logger, handler Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		cw := request.NewClientWriter(w)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}

		defer func() {
			// The status code is only known once the handler has run.
			code := fmt.Sprintf("%d", cw.StatusCode())
			monitoring.HttpTotalRequests.WithLabelValues(path, r.Method, code).Inc()
			monitoring.HttpRequestDuration.WithLabelValues(path, r.Method, code).Observe(time.Since(now).Seconds())
		}()

		// Recover from any panics that occur in the handler.
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("Panic in handler",
					slog.String(logging.KeyError, fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)
				request.Encode(l, cw, http.StatusInternalServerError, request.NewMessageError("Panic in handler", request.ErrInternalServer))
			}
		}()

		handler(cw, r)
	}
}

// interactionHandler routes slash commands and button presses to their processors. Every interaction is
// acknowledged straight away as an ephemeral deferred reply, then answered with a followup.
func interactionHandler(a IApp, commands []*slashCommand, buttons map[string]interactionProcessor) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	slash := make(map[string]*slashCommand, len(commands))
	for _, c := range commands {
		slash[c.cmd.Name] = c
	}

	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		name := interactionName(i)
		if name == "" {
			return
		}

		l := a.Log().With(
			slog.String(logging.KeyInteractionID, uuid.NewString()),
			slog.String(logging.KeyCommand, name),
			slog.String(logging.KeyGuildID, i.GuildID),
		)
		if u := interactionUser(i); u != nil {
			l = l.With(slog.String(logging.KeyUserID, u.ID))
		}

		start := time.Now()
		result := "ok"
		defer func() {
			if rec := recover(); rec != nil {
				result = "panic"
				monitoring.DiscordInteractionPanics.WithLabelValues(name).Inc()
				l.Error("Panic handling interaction",
					slog.String(logging.KeyError, fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)
				followup(a, l, i, replyError(messages.ErrUserErrorProcessing))
			}
			monitoring.DiscordInteractionDuration.WithLabelValues(name, result).Observe(time.Since(start).Seconds())
		}()

		var (
			process   interactionProcessor
			adminOnly bool
		)
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if c, ok := slash[name]; ok {
				process, adminOnly = c.process, c.adminOnly
			}
		case discordgo.InteractionMessageComponent:
			process = buttons[name]
		}

		if err := a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Flags: discordgo.MessageFlagsEphemeral,
			},
		}); err != nil {
			result = "error"
			l.Error("Error acknowledging interaction", slog.String(logging.KeyError, err.Error()))
			return
		}

		switch {
		case process == nil:
			result = "unknown"
			l.Warn("No processor found for interaction")
			followup(a, l, i, replyError(messages.ErrUserErrorProcessing))
			return
		case i.GuildID == "":
			followup(a, l, i, replyError(messages.ErrGuildOnly))
			return
		case adminOnly && !isAdministrator(i):
			result = "denied"
			l.Info("Non-admin tried an admin command")
			followup(a, l, i, replyError(messages.ErrNotAdmin))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
		resp, err := process(ctx, a, l, i)
		cancel()
		if err != nil {
			embed, expected := errorReply(err)
			if expected {
				l.Info("Interaction refused", slog.String(logging.KeyError, err.Error()))
			} else {
				result = "error"
				l.Error("Error processing interaction", slog.String(logging.KeyError, err.Error()))
			}
			followup(a, l, i, embed)
			return
		}

		followup(a, l, i, resp.embed)

		if resp.after != nil {
			ctx, cancel := context.WithTimeout(context.Background(), afterTimeout)
			defer cancel()
			resp.after(ctx)
		}
	}
}

// followup answers a deferred interaction.
func followup(a IApp, l *slog.Logger, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := a.Session().FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}); err != nil {
		l.Error("Error responding to interaction", slog.String(logging.KeyError, err.Error()))
	}
}
