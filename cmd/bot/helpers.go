package main

import (
	"errors"
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/orderbot/pkg/dataaccess"
	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/Jacobbrewer1/orderbot/pkg/messages"
	"github.com/Jacobbrewer1/orderbot/pkg/ordering"
)

// reply is an ephemeral embed sent back to whoever triggered the interaction.
func reply(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}
}

func replyOK(title, description string) *discordgo.MessageEmbed {
	return reply(title, description, colorGreen)
}

func replyError(description string) *discordgo.MessageEmbed {
	return reply(":no_entry: Error!", description, colorRed)
}

// errorReply maps an error from the core onto what the user is told. The second value reports whether the
// error was expected, and so does not need logging at Error.
func errorReply(err error) (*discordgo.MessageEmbed, bool) {
	switch {
	case errors.Is(err, dataaccess.ErrNotFound):
		return replyError(messages.ErrNotSetUp), true
	case errors.Is(err, dataaccess.ErrAlreadyExists):
		return replyError(messages.ErrAlreadySetUp), true
	case errors.Is(err, ordering.ErrConfigurationMissing):
		return replyError(messages.ErrConfigMissing), true
	case errors.Is(err, ordering.ErrInvalidAmount):
		return replyError(messages.ErrInvalidAmount), true
	default:
		return replyError(messages.ErrUserErrorProcessing), false
	}
}

// outcomeReply renders the result of a start order press.
func outcomeReply(res *ordering.TicketResult) *discordgo.MessageEmbed {
	switch res.Outcome {
	case ordering.OutcomeCreated:
		return replyOK(messages.TicketCreatedTitle, fmt.Sprintf(messages.TicketCreated, res.ChannelID))
	case ordering.OutcomeStorePaused:
		return reply(messages.StorePausedTitle, messages.StorePaused, colorOrange)
	case ordering.OutcomeLimitReached:
		return reply(messages.LimitReachedTitle, messages.LimitReached, colorRed)
	default:
		return reply(messages.StoreClosedTitle, messages.StoreClosed, colorRed)
	}
}

// notifyReply renders the result of a notify me press.
func notifyReply(out ordering.NotifyOutcome) *discordgo.MessageEmbed {
	switch out {
	case ordering.NotifyAdded:
		return reply(messages.NotifyTitle, messages.NotifyAdded, colorOrange)
	case ordering.NotifyRemoved:
		return reply(messages.NotifyTitle, messages.NotifyRemoved, colorOrange)
	default:
		return replyOK(statusLine(entities.StoreStatusOpen), messages.NotifyStoreOpen)
	}
}

func isAdministrator(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// interactionUser returns the user behind the interaction, in a guild or a DM.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// interactionName is the command name or button ID of the interaction.
func interactionName(i *discordgo.InteractionCreate) string {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return i.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		return i.MessageComponentData().CustomID
	default:
		return ""
	}
}

// intOption returns the named integer option of a slash command.
func intOption(i *discordgo.InteractionCreate, name string) (int, bool) {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionInteger {
			return int(opt.IntValue()), true
		}
	}
	return 0, false
}
