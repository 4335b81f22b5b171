package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
	"github.com/Jacobbrewer1/orderbot/pkg/messages"
	"github.com/Jacobbrewer1/orderbot/pkg/ordering"
)

const (
	orderCategoryName = "Orders"
	orderChannelName  = "\U0001F6D2〡order-here"
)

// ticketPermissions is what the customer and the bot get in a ticket channel.
const ticketPermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory

// discordPlatform is the ordering.Platform backed by a discord session.
type discordPlatform struct {
	l *slog.Logger
	s *discordgo.Session
}

// NewDiscordPlatform creates a new ordering.Platform for the session.
func NewDiscordPlatform(l *slog.Logger, s *discordgo.Session) ordering.Platform {
	return &discordPlatform{
		l: l.With(slog.String("component", "discord_platform")),
		s: s,
	}
}

// isNotFound reports whether err is discord saying the channel or message does not exist. A general error
// is returned for some 404s, so the status code is checked too.
func isNotFound(err error) bool {
	restErr := new(discordgo.RESTError)
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownChannel, discordgo.ErrCodeUnknownMessage:
			return true
		}
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}

// wrapNotFound maps a discord not found error onto ordering.ErrPlatformNotFound.
func wrapNotFound(err error, format string, args ...any) error {
	if isNotFound(err) {
		return fmt.Errorf(format+": %w", append(args, ordering.ErrPlatformNotFound)...)
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

func (p *discordPlatform) botID() string {
	if p.s.State != nil && p.s.State.User != nil {
		return p.s.State.User.ID
	}
	return ""
}

func (p *discordPlatform) ProvisionOrderChannel(ctx context.Context, guildID string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	category, err := p.s.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: orderCategoryName,
		Type: discordgo.ChannelTypeGuildCategory,
	})
	if err != nil {
		return "", "", fmt.Errorf("error creating order category: %w", err)
	}

	overwrites := []*discordgo.PermissionOverwrite{
		// Customers can read the panel but not chat under it.
		{
			ID:   guildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionSendMessages,
		},
	}
	if id := p.botID(); id != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    id,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketPermissions,
		})
	}

	channel, err := p.s.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 orderChannelName,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             category.ID,
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		if _, delErr := p.s.ChannelDelete(category.ID); delErr != nil {
			p.l.Warn("Error removing order category after failed setup",
				slog.String(logging.KeyGuildID, guildID),
				slog.String(logging.KeyChannelID, category.ID),
				slog.String(logging.KeyError, delErr.Error()),
			)
		}
		return "", "", fmt.Errorf("error creating order channel: %w", err)
	}

	return channel.ID, category.ID, nil
}

func (p *discordPlatform) channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if channelID == "" {
		return nil, nil
	}

	ch, err := p.s.Channel(channelID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting channel %s: %w", channelID, err)
	}
	return ch, nil
}

func (p *discordPlatform) CategoryExists(ctx context.Context, guildID, categoryID string) (bool, error) {
	ch, err := p.channel(ctx, categoryID)
	if err != nil {
		return false, err
	}
	return ch != nil && ch.GuildID == guildID && ch.Type == discordgo.ChannelTypeGuildCategory, nil
}

func (p *discordPlatform) ChannelExists(ctx context.Context, channelID string) (bool, error) {
	ch, err := p.channel(ctx, channelID)
	if err != nil {
		return false, err
	}
	return ch != nil, nil
}

func (p *discordPlatform) CreateTicketChannel(ctx context.Context, req ordering.TicketChannelRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	overwrites := []*discordgo.PermissionOverwrite{
		// Deny @everyone from seeing the ticket.
		{
			ID:   req.GuildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		// The customer can see and talk in the ticket.
		{
			ID:    req.UserID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketPermissions,
		},
	}
	if id := p.botID(); id != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    id,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketPermissions,
		})
	}

	ch, err := p.s.GuildChannelCreateComplex(req.GuildID, discordgo.GuildChannelCreateData{
		Name:                 req.Name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             req.CategoryID,
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		return "", fmt.Errorf("error creating channel: %w", err)
	}
	return ch.ID, nil
}

func (p *discordPlatform) DeleteChannel(ctx context.Context, channelID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := p.s.ChannelDelete(channelID); err != nil {
		return wrapNotFound(err, "error deleting channel %s", channelID)
	}
	return nil
}

func (p *discordPlatform) SendTicketWelcome(ctx context.Context, channelID, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := p.s.ChannelMessageSendComplex(channelID, ticketWelcomeMessage(userID)); err != nil {
		return fmt.Errorf("error sending welcome message: %w", err)
	}
	return nil
}

func (p *discordPlatform) PostPanel(ctx context.Context, channelID string, view ordering.PanelView) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	msg, err := p.s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embed:      panelEmbed(view),
		Components: panelComponents(view),
	})
	if err != nil {
		return "", wrapNotFound(err, "error posting panel in %s", channelID)
	}
	return msg.ID, nil
}

func (p *discordPlatform) EditPanel(ctx context.Context, channelID, messageID string, view ordering.PanelView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	edit := discordgo.NewMessageEdit(channelID, messageID).SetEmbed(panelEmbed(view))
	edit.Components = panelComponents(view)

	if _, err := p.s.ChannelMessageEditComplex(edit); err != nil {
		return wrapNotFound(err, "error editing panel %s", messageID)
	}
	return nil
}

func (p *discordPlatform) NotifyReopened(ctx context.Context, _, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dm, err := p.s.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("error opening DM channel: %w", err)
	}

	if _, err := p.s.ChannelMessageSendEmbed(dm.ID, &discordgo.MessageEmbed{
		Title:       messages.ReopenedTitle,
		Description: messages.Reopened,
		Color:       colorGreen,
	}); err != nil {
		return fmt.Errorf("error sending DM: %w", err)
	}
	return nil
}
