package ordering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/orderbot/pkg/custom"
	"github.com/Jacobbrewer1/orderbot/pkg/dataaccess"
	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
)

// TicketRequest is a customer asking to start an order.
type TicketRequest struct {
	GuildID  string
	UserID   string
	Username string
}

// TicketResult is the result of a ticket creation attempt. ChannelID is only set when the outcome is
// OutcomeCreated.
type TicketResult struct {
	// Outcome is what happened.
	Outcome Outcome

	// ChannelID is the new ticket channel.
	ChannelID string

	// Limited is whether a daily limit applies.
	Limited bool

	// Remaining is the tickets left today after this one, when Limited.
	Remaining int
}

// CreateTicket opens a private ticket channel for the customer if the store is open, today's limit allows
// it and the ticket category still exists. Expected denials are reported through the Outcome; errors are
// reserved for storage and platform failures, and ErrConfigurationMissing.
func (s *Service) CreateTicket(ctx context.Context, req TicketRequest) (*TicketResult, error) {
	res, err := s.createTicket(ctx, req)
	if err != nil {
		return nil, err
	}
	TicketAttempts.WithLabelValues(res.Outcome.String()).Inc()

	l := s.l.With(
		slog.String(logging.KeyGuildID, req.GuildID),
		slog.String(logging.KeyUserID, req.UserID),
	)

	if res.Outcome != OutcomeCreated {
		l.Debug("Ticket denied", slog.String("outcome", res.Outcome.String()))
		return res, nil
	}

	l.Info("Ticket created", slog.String(logging.KeyChannelID, res.ChannelID))

	s.refreshPanelLogged(ctx, req.GuildID)

	if err := s.platform.SendTicketWelcome(ctx, res.ChannelID, req.UserID); err != nil {
		l.Warn("Error sending ticket welcome",
			slog.String(logging.KeyChannelID, res.ChannelID),
			slog.String(logging.KeyError, err.Error()),
		)
	}

	return res, nil
}

// createTicket runs the admission checks and the channel and record writes under the guild lock, so two
// customers cannot both take the last ticket of the day.
func (s *Service) createTicket(ctx context.Context, req TicketRequest) (*TicketResult, error) {
	defer s.locks.lock(req.GuildID)()

	guild, err := s.guilds.Get(ctx, req.GuildID)
	if err != nil {
		return nil, fmt.Errorf("error getting guild: %w", err)
	}

	if !guild.Status.AcceptsOrders() {
		if guild.Status == entities.StoreStatusPaused {
			return &TicketResult{Outcome: OutcomeStorePaused}, nil
		}
		return &TicketResult{Outcome: OutcomeStoreClosed}, nil
	}

	decision := EvaluateDailyLimit(guild.TicketLimit, guild.TicketsToday, guild.LastReset, s.now())
	if decision.MustReset {
		if err := s.guilds.ResetDaily(ctx, req.GuildID, decision.Today); err != nil {
			return nil, fmt.Errorf("error resetting daily tickets: %w", err)
		}
	}
	if !decision.Allowed {
		return &TicketResult{Outcome: OutcomeLimitReached, Limited: true}, nil
	}

	ok, err := s.platform.CategoryExists(ctx, req.GuildID, guild.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("error checking ticket category: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("ticket category %s: %w", guild.CategoryID, ErrConfigurationMissing)
	}

	channelID, err := s.platform.CreateTicketChannel(ctx, TicketChannelRequest{
		GuildID:    req.GuildID,
		CategoryID: guild.CategoryID,
		UserID:     req.UserID,
		Name:       entities.ChannelName(req.Username),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating ticket channel: %w", err)
	}

	ticket := &entities.Ticket{
		ID:        channelID,
		UserID:    req.UserID,
		GuildID:   req.GuildID,
		CreatedAt: custom.Datetime(s.now().UTC()),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		s.discardChannel(ctx, req.GuildID, channelID)
		return nil, fmt.Errorf("error saving ticket: %w", err)
	}

	if err := s.guilds.IncrementTicketsToday(ctx, req.GuildID); err != nil {
		// The customer already has their channel; a missed increment only loosens today's limit.
		s.l.Error("Error incrementing tickets today",
			slog.String(logging.KeyGuildID, req.GuildID),
			slog.String(logging.KeyChannelID, channelID),
			slog.String(logging.KeyError, err.Error()),
		)
	}

	res := &TicketResult{
		Outcome:   OutcomeCreated,
		ChannelID: channelID,
		Limited:   guild.TicketLimit > 0,
	}
	if res.Limited {
		res.Remaining = max(guild.TicketLimit-(decision.TicketsToday+1), 0)
	}
	return res, nil
}

// discardChannel deletes a ticket channel whose record could not be saved.
func (s *Service) discardChannel(ctx context.Context, guildID, channelID string) {
	err := s.platform.DeleteChannel(ctx, channelID)
	if err == nil || errors.Is(err, ErrPlatformNotFound) {
		s.l.Warn("Deleted ticket channel after failing to save its record",
			slog.String(logging.KeyGuildID, guildID),
			slog.String(logging.KeyChannelID, channelID),
		)
		return
	}

	OrphanedChannels.Inc()
	s.l.Error("Orphaned ticket channel, delete it manually",
		slog.String(logging.KeyGuildID, guildID),
		slog.String(logging.KeyChannelID, channelID),
		slog.String(logging.KeyError, err.Error()),
	)
}

// CloseTicket removes the ticket record and then deletes its channel. Closing a ticket that has no record,
// or whose channel is already gone, is not an error.
func (s *Service) CloseTicket(ctx context.Context, channelID string) error {
	l := s.l.With(slog.String(logging.KeyChannelID, channelID))

	ticket, err := s.tickets.Get(ctx, channelID)
	switch {
	case err == nil:
		l = l.With(
			slog.String(logging.KeyGuildID, ticket.GuildID),
			slog.String(logging.KeyUserID, ticket.UserID),
		)
	case errors.Is(err, dataaccess.ErrNotFound):
		l.Debug("Closing channel with no ticket record")
	default:
		return fmt.Errorf("error getting ticket: %w", err)
	}

	if err := s.tickets.Remove(ctx, channelID); err != nil {
		return fmt.Errorf("error removing ticket: %w", err)
	}

	if err := s.platform.DeleteChannel(ctx, channelID); err != nil && !errors.Is(err, ErrPlatformNotFound) {
		OrphanedChannels.Inc()
		return fmt.Errorf("error deleting ticket channel: %w", err)
	}

	TicketsClosed.Inc()
	l.Info("Ticket closed")
	return nil
}

// Reconcile drops ticket records in the guild whose channel no longer exists, returning how many were
// dropped.
func (s *Service) Reconcile(ctx context.Context, guildID string) (int, error) {
	tickets, err := s.tickets.ListByGuild(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("error listing tickets: %w", err)
	}

	removed := 0
	for _, t := range tickets {
		ok, err := s.platform.ChannelExists(ctx, t.ID)
		if err != nil {
			return removed, fmt.Errorf("error checking ticket channel: %w", err)
		} else if ok {
			continue
		}

		if err := s.tickets.Remove(ctx, t.ID); err != nil {
			return removed, fmt.Errorf("error removing ticket: %w", err)
		}
		removed++

		s.l.Info("Removed ticket with no channel",
			slog.String(logging.KeyGuildID, guildID),
			slog.String(logging.KeyChannelID, t.ID),
			slog.String(logging.KeyUserID, t.UserID),
		)
	}
	return removed, nil
}
