package ordering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Jacobbrewer1/orderbot/pkg/custom"
	"github.com/Jacobbrewer1/orderbot/pkg/dataaccess"
	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
	"golang.org/x/time/rate"
)

const (
	defaultNotifyRate  = 5
	defaultNotifyBurst = 1
)

// Service runs the order workflow for every guild: setup, store status, notify list, daily limit and the
// ticket lifecycle. Read-modify-write sequences on a guild are serialized per guild.
type Service struct {
	// l is the logger.
	l *slog.Logger

	// guilds is the guild store.
	guilds dataaccess.GuildDal

	// tickets is the ticket store.
	tickets dataaccess.TicketDal

	// platform is the chat platform.
	platform Platform

	// locks serializes work per guild.
	locks *guildLocker

	// panelLocks serializes panel refreshes per guild, so the last edit carries the last read.
	panelLocks *guildLocker

	// now is the clock.
	now func() time.Time

	// notifyLimiter paces reopen DMs.
	notifyLimiter *rate.Limiter
}

// Option configures a Service.
type Option func(s *Service)

// WithClock sets the clock used for the daily limit.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithNotifyRate sets how many reopen DMs are sent per second. A non-positive rate disables pacing.
func WithNotifyRate(perSecond float64) Option {
	return func(s *Service) {
		if perSecond <= 0 {
			s.notifyLimiter = rate.NewLimiter(rate.Inf, defaultNotifyBurst)
			return
		}
		s.notifyLimiter = rate.NewLimiter(rate.Limit(perSecond), defaultNotifyBurst)
	}
}

// NewService creates a new Service.
func NewService(l *slog.Logger, guilds dataaccess.GuildDal, tickets dataaccess.TicketDal, platform Platform, opts ...Option) *Service {
	s := &Service{
		l:             l.With(slog.String("component", "ordering")),
		guilds:        guilds,
		tickets:       tickets,
		platform:      platform,
		locks:         newGuildLocker(),
		panelLocks:    newGuildLocker(),
		now:           time.Now,
		notifyLimiter: rate.NewLimiter(defaultNotifyRate, defaultNotifyBurst),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() custom.Date {
	return custom.DateOf(s.now())
}

// Guild returns the guild record.
func (s *Service) Guild(ctx context.Context, guildID string) (*entities.Guild, error) {
	return s.guilds.Get(ctx, guildID)
}

// Setup provisions the order channel, posts the panel and stores a closed guild record. If the guild is
// already set up but its order channel or category has been deleted, both are provisioned again and the
// existing record is repointed at them, keeping its status and counters. A guild whose order channel and
// category still exist fails with dataaccess.ErrAlreadyExists.
func (s *Service) Setup(ctx context.Context, guildID string) (repaired bool, err error) {
	defer s.locks.lock(guildID)()
	defer s.panelLocks.lock(guildID)()

	exists, err := s.guilds.Exists(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("error checking guild: %w", err)
	} else if exists {
		return s.repair(ctx, guildID)
	}

	channelID, categoryID, err := s.platform.ProvisionOrderChannel(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("error provisioning order channel: %w", err)
	}

	guild := entities.NewGuild(guildID, channelID, "", categoryID, s.today())

	messageID, err := s.platform.PostPanel(ctx, channelID, NewPanelView(guild))
	if err != nil {
		s.discardOrderChannel(ctx, guildID, channelID, categoryID)
		return false, fmt.Errorf("error posting order panel: %w", err)
	}
	guild.OrderMessageID = messageID

	if err := s.guilds.Create(ctx, guild); err != nil {
		s.discardOrderChannel(ctx, guildID, channelID, categoryID)
		return false, fmt.Errorf("error saving guild: %w", err)
	}

	s.l.Info("Guild set up",
		slog.String(logging.KeyGuildID, guildID),
		slog.String(logging.KeyChannelID, channelID),
	)
	return false, nil
}

func (s *Service) repair(ctx context.Context, guildID string) (bool, error) {
	guild, err := s.guilds.Get(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("error getting guild: %w", err)
	}

	channelOK, err := s.platform.ChannelExists(ctx, guild.OrderChannelID)
	if err != nil {
		return false, fmt.Errorf("error checking order channel: %w", err)
	}
	categoryOK, err := s.platform.CategoryExists(ctx, guildID, guild.CategoryID)
	if err != nil {
		return false, fmt.Errorf("error checking order category: %w", err)
	}
	if channelOK && categoryOK {
		return false, fmt.Errorf("guild %s: %w", guildID, dataaccess.ErrAlreadyExists)
	}

	if today := s.today(); guild.LastReset != today {
		if err := s.guilds.ResetDaily(ctx, guildID, today); err != nil {
			return false, fmt.Errorf("error resetting daily tickets: %w", err)
		}
		guild.TicketsToday = 0
		guild.LastReset = today
	}

	channelID, categoryID, err := s.platform.ProvisionOrderChannel(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("error provisioning order channel: %w", err)
	}

	messageID, err := s.platform.PostPanel(ctx, channelID, NewPanelView(guild))
	if err != nil {
		s.discardOrderChannel(ctx, guildID, channelID, categoryID)
		return false, fmt.Errorf("error posting order panel: %w", err)
	}

	if err := s.guilds.SetCategory(ctx, guildID, categoryID); err != nil {
		s.discardOrderChannel(ctx, guildID, channelID, categoryID)
		return false, fmt.Errorf("error saving order category: %w", err)
	}
	if err := s.guilds.SetOrderPanel(ctx, guildID, channelID, messageID); err != nil {
		s.discardOrderChannel(ctx, guildID, channelID)
		return false, fmt.Errorf("error saving order panel: %w", err)
	}

	s.l.Warn("Order channel or category was missing, provisioned new ones",
		slog.String(logging.KeyGuildID, guildID),
		slog.String(logging.KeyChannelID, channelID),
	)

	// The old order channel still carries a panel that would never be refreshed again.
	if channelOK {
		s.discardOrderChannel(ctx, guildID, guild.OrderChannelID)
	}
	return true, nil
}

// discardOrderChannel deletes order channels or categories that are no longer, or never were, referenced by
// the guild record. Any that cannot be deleted are logged as orphans.
func (s *Service) discardOrderChannel(ctx context.Context, guildID string, channelIDs ...string) {
	for _, id := range channelIDs {
		err := s.platform.DeleteChannel(ctx, id)
		if err == nil || errors.Is(err, ErrPlatformNotFound) {
			continue
		}

		OrphanedChannels.Inc()
		s.l.Error("Orphaned order channel, delete it manually",
			slog.String(logging.KeyGuildID, guildID),
			slog.String(logging.KeyChannelID, id),
			slog.String(logging.KeyError, err.Error()),
		)
	}
}

// SetTicketLimit sets the daily ticket limit and refreshes the panel. 0 disables the limit.
func (s *Service) SetTicketLimit(ctx context.Context, guildID string, limit int) error {
	if limit < 0 {
		return ErrInvalidAmount
	}

	unlock := s.locks.lock(guildID)
	err := s.guilds.SetTicketLimit(ctx, guildID, limit)
	unlock()
	if err != nil {
		return fmt.Errorf("error setting ticket limit: %w", err)
	}

	return s.RefreshPanel(ctx, guildID)
}

// SetTicketsToday overrides today's ticket counter. A pending daily reset is applied first so the override
// is not wiped by the next ticket.
func (s *Service) SetTicketsToday(ctx context.Context, guildID string, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	unlock := s.locks.lock(guildID)
	err := s.setTicketsToday(ctx, guildID, amount)
	unlock()
	if err != nil {
		return err
	}

	return s.RefreshPanel(ctx, guildID)
}

func (s *Service) setTicketsToday(ctx context.Context, guildID string, amount int) error {
	if err := s.guilds.ResetDaily(ctx, guildID, s.today()); err != nil {
		return fmt.Errorf("error resetting daily tickets: %w", err)
	}
	if err := s.guilds.SetTicketsToday(ctx, guildID, amount); err != nil {
		return fmt.Errorf("error setting tickets today: %w", err)
	}
	return nil
}

// RefreshPanel re-renders the order panel from the stored guild record, applying a pending daily reset
// first. If the panel message is gone it is posted again; if the order channel is gone the result is
// ErrConfigurationMissing. Refreshes of one guild run one at a time.
func (s *Service) RefreshPanel(ctx context.Context, guildID string) error {
	defer s.panelLocks.lock(guildID)()

	guild, err := s.guilds.Get(ctx, guildID)
	if err != nil {
		return fmt.Errorf("error getting guild: %w", err)
	}

	if today := s.today(); guild.LastReset != today {
		if err := s.guilds.ResetDaily(ctx, guildID, today); err != nil {
			return fmt.Errorf("error resetting daily tickets: %w", err)
		}
		if guild, err = s.guilds.Get(ctx, guildID); err != nil {
			return fmt.Errorf("error getting guild: %w", err)
		}
	}

	view := NewPanelView(guild)

	err = s.platform.EditPanel(ctx, guild.OrderChannelID, guild.OrderMessageID, view)
	if err == nil {
		return nil
	} else if !errors.Is(err, ErrPlatformNotFound) {
		return fmt.Errorf("error editing order panel: %w", err)
	}

	s.l.Warn("Order panel message missing, posting a new one",
		slog.String(logging.KeyGuildID, guildID),
		slog.String(logging.KeyChannelID, guild.OrderChannelID),
	)

	messageID, err := s.platform.PostPanel(ctx, guild.OrderChannelID, view)
	if errors.Is(err, ErrPlatformNotFound) {
		return fmt.Errorf("order channel %s: %w", guild.OrderChannelID, ErrConfigurationMissing)
	} else if err != nil {
		return fmt.Errorf("error posting order panel: %w", err)
	}

	if err := s.guilds.SetOrderPanel(ctx, guildID, guild.OrderChannelID, messageID); err != nil {
		return fmt.Errorf("error saving order panel: %w", err)
	}
	return nil
}

// refreshPanelLogged refreshes the panel for callers whose own work already succeeded.
func (s *Service) refreshPanelLogged(ctx context.Context, guildID string) {
	if err := s.RefreshPanel(ctx, guildID); err != nil {
		s.l.Error("Error refreshing order panel",
			slog.String(logging.KeyGuildID, guildID),
			slog.String(logging.KeyError, err.Error()),
		)
	}
}
