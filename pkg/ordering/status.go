package ordering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
)

// Pause stops new orders while letting customers join the notify list.
func (s *Service) Pause(ctx context.Context, guildID string) error {
	return s.setStatus(ctx, guildID, entities.StoreStatusPaused)
}

// Close stops new orders.
func (s *Service) Close(ctx context.Context, guildID string) error {
	return s.setStatus(ctx, guildID, entities.StoreStatusClosed)
}

func (s *Service) setStatus(ctx context.Context, guildID string, status entities.StoreStatus) error {
	unlock := s.locks.lock(guildID)
	err := s.guilds.SetStatus(ctx, guildID, status)
	unlock()
	if err != nil {
		return fmt.Errorf("error setting store status: %w", err)
	}

	StatusChanges.WithLabelValues(status.String()).Inc()
	s.l.Info("Store status changed",
		slog.String(logging.KeyGuildID, guildID),
		slog.String("status", status.String()),
	)

	return s.RefreshPanel(ctx, guildID)
}

// OpenResult is the result of opening the store.
type OpenResult struct {
	// Pending is the notify list as it was when the store opened. Pass it to NotifyReopened.
	Pending []string

	// PanelErr is set when the status changed but the panel could not be refreshed.
	PanelErr error
}

// Open opens (or reopens) the store and refreshes the panel. The notify list is snapshotted but not
// contacted; call NotifyReopened with the snapshot once the admin has been answered.
func (s *Service) Open(ctx context.Context, guildID string) (*OpenResult, error) {
	unlock := s.locks.lock(guildID)
	guild, err := s.guilds.Get(ctx, guildID)
	if err == nil {
		err = s.guilds.SetStatus(ctx, guildID, entities.StoreStatusOpen)
	}
	unlock()
	if err != nil {
		return nil, fmt.Errorf("error opening store: %w", err)
	}

	StatusChanges.WithLabelValues(entities.StoreStatusOpen.String()).Inc()
	s.l.Info("Store opened",
		slog.String(logging.KeyGuildID, guildID),
		slog.Int("pending_notifications", len(guild.Notify)),
	)

	return &OpenResult{
		Pending:  slices.Clone(guild.Notify),
		PanelErr: s.RefreshPanel(ctx, guildID),
	}, nil
}

// NotifyReopened DMs every pending user that the store is open, then takes them off the notify list. A
// failed DM is logged and does not stop the others. If the store was paused or closed again meanwhile,
// users who joined the list since the snapshot are kept.
func (s *Service) NotifyReopened(ctx context.Context, guildID string, pending []string) (sent, failed int) {
	for i, userID := range pending {
		if err := s.notifyLimiter.Wait(ctx); err != nil {
			failed += len(pending) - i
			ReopenNotifications.WithLabelValues("failed").Add(float64(len(pending) - i))
			s.l.Warn("Stopped sending reopen notifications",
				slog.String(logging.KeyGuildID, guildID),
				slog.Int("unsent", len(pending)-i),
				slog.String(logging.KeyError, err.Error()),
			)
			break
		}

		if err := s.platform.NotifyReopened(ctx, guildID, userID); err != nil {
			failed++
			ReopenNotifications.WithLabelValues("failed").Inc()
			s.l.Warn("Error sending reopen notification",
				slog.String(logging.KeyGuildID, guildID),
				slog.String(logging.KeyUserID, userID),
				slog.String(logging.KeyError, err.Error()),
			)
			continue
		}

		sent++
		ReopenNotifications.WithLabelValues("sent").Inc()
	}

	if err := s.clearNotified(ctx, guildID, pending); err != nil {
		s.l.Error("Error clearing notify list",
			slog.String(logging.KeyGuildID, guildID),
			slog.String(logging.KeyError, err.Error()),
		)
	}

	s.l.Info("Reopen notifications sent",
		slog.String(logging.KeyGuildID, guildID),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)
	return sent, failed
}

func (s *Service) clearNotified(ctx context.Context, guildID string, pending []string) error {
	defer s.locks.lock(guildID)()

	guild, err := s.guilds.Get(ctx, guildID)
	if err != nil {
		return err
	}

	if guild.Status == entities.StoreStatusOpen {
		return s.guilds.ClearNotify(ctx, guildID)
	}

	var errs []error
	for _, userID := range pending {
		errs = append(errs, s.guilds.RemoveNotify(ctx, guildID, userID))
	}
	return errors.Join(errs...)
}

// ToggleNotify adds the user to the notify list, or removes them if already on it. Nothing changes while
// the store is open.
func (s *Service) ToggleNotify(ctx context.Context, guildID, userID string) (NotifyOutcome, error) {
	defer s.locks.lock(guildID)()

	guild, err := s.guilds.Get(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("error getting guild: %w", err)
	}

	switch {
	case guild.Status == entities.StoreStatusOpen:
		return NotifyStoreOpen, nil
	case guild.IsNotified(userID):
		if err := s.guilds.RemoveNotify(ctx, guildID, userID); err != nil {
			return 0, fmt.Errorf("error removing from notify list: %w", err)
		}
		return NotifyRemoved, nil
	default:
		if err := s.guilds.AddNotify(ctx, guildID, userID); err != nil {
			return 0, fmt.Errorf("error adding to notify list: %w", err)
		}
		return NotifyAdded, nil
	}
}
