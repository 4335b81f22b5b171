package dataaccess

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Jacobbrewer1/orderbot/pkg/custom"
	"github.com/Jacobbrewer1/orderbot/pkg/dataaccess/monitoring"
	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
)

const guildsFile = "guilds.json"

type jsonGuildDal struct {
	// l is the logger.
	l *slog.Logger

	// file is the guild document.
	file *jsonFile[entities.Guild]
}

// NewJSONGuildDal creates a new guild data access layer backed by a JSON file in dir.
func NewJSONGuildDal(l *slog.Logger, dir string) (GuildDal, error) {
	f, err := newJSONFile[entities.Guild](dir, guildsFile)
	if err != nil {
		return nil, fmt.Errorf("error opening guild store: %w", err)
	}

	return &jsonGuildDal{
		l:    l.With(slog.String(logging.KeyDal, guildDalName)),
		file: f,
	}, nil
}

func (g *jsonGuildDal) track(query string) func() {
	return monitoring.Track(guildDalName, query, fileDatabase, guildsFile)
}

func (g *jsonGuildDal) Exists(_ context.Context, guildID string) (bool, error) {
	defer g.track("exists")()

	var found bool
	err := g.file.view(func(data map[string]*entities.Guild) error {
		_, found = data[guildID]
		return nil
	})
	return found, err
}

func (g *jsonGuildDal) Create(_ context.Context, guild *entities.Guild) error {
	defer g.track("create")()

	return g.file.update(func(data map[string]*entities.Guild) (bool, error) {
		if _, ok := data[guild.ID]; ok {
			g.l.Debug("Guild already exists", slog.String(logging.KeyGuildID, guild.ID))
			return false, fmt.Errorf("guild %s: %w", guild.ID, ErrAlreadyExists)
		}

		cp := *guild
		cp.Notify = slices.Clone(guild.Notify)
		if cp.Notify == nil {
			cp.Notify = []string{}
		}
		data[guild.ID] = &cp
		return true, nil
	})
}

func (g *jsonGuildDal) Get(_ context.Context, guildID string) (*entities.Guild, error) {
	defer g.track("get")()

	var guild *entities.Guild
	err := g.file.view(func(data map[string]*entities.Guild) error {
		got, ok := data[guildID]
		if !ok {
			return fmt.Errorf("guild %s: %w", guildID, ErrNotFound)
		}
		guild = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := guild.Validate(); err != nil {
		return nil, fmt.Errorf("guild %s: %w", guildID, err)
	}
	if guild.Notify == nil {
		guild.Notify = []string{}
	}
	return guild, nil
}

// modify applies fn to the stored guild. fn reports whether it changed anything.
func (g *jsonGuildDal) modify(query, guildID string, fn func(guild *entities.Guild) bool) error {
	defer g.track(query)()

	return g.file.update(func(data map[string]*entities.Guild) (bool, error) {
		guild, ok := data[guildID]
		if !ok {
			return false, fmt.Errorf("guild %s: %w", guildID, ErrNotFound)
		}
		return fn(guild), nil
	})
}

func (g *jsonGuildDal) SetStatus(_ context.Context, guildID string, status entities.StoreStatus) error {
	return g.modify("set_status", guildID, func(guild *entities.Guild) bool {
		guild.Status = status
		return true
	})
}

func (g *jsonGuildDal) SetOrderPanel(_ context.Context, guildID, channelID, messageID string) error {
	return g.modify("set_order_panel", guildID, func(guild *entities.Guild) bool {
		guild.OrderChannelID = channelID
		guild.OrderMessageID = messageID
		return true
	})
}

func (g *jsonGuildDal) SetCategory(_ context.Context, guildID, categoryID string) error {
	return g.modify("set_category", guildID, func(guild *entities.Guild) bool {
		guild.CategoryID = categoryID
		return true
	})
}

func (g *jsonGuildDal) SetTicketLimit(_ context.Context, guildID string, limit int) error {
	return g.modify("set_ticket_limit", guildID, func(guild *entities.Guild) bool {
		guild.TicketLimit = limit
		return true
	})
}

func (g *jsonGuildDal) SetTicketsToday(_ context.Context, guildID string, amount int) error {
	return g.modify("set_tickets_today", guildID, func(guild *entities.Guild) bool {
		guild.TicketsToday = amount
		return true
	})
}

func (g *jsonGuildDal) IncrementTicketsToday(_ context.Context, guildID string) error {
	return g.modify("increment_tickets_today", guildID, func(guild *entities.Guild) bool {
		guild.TicketsToday++
		return true
	})
}

func (g *jsonGuildDal) ResetDaily(_ context.Context, guildID string, date custom.Date) error {
	return g.modify("reset_daily", guildID, func(guild *entities.Guild) bool {
		if guild.LastReset == date {
			return false
		}
		guild.TicketsToday = 0
		guild.LastReset = date
		return true
	})
}

func (g *jsonGuildDal) AddNotify(_ context.Context, guildID, userID string) error {
	return g.modify("add_notify", guildID, func(guild *entities.Guild) bool {
		if guild.IsNotified(userID) {
			return false
		}
		guild.Notify = append(guild.Notify, userID)
		return true
	})
}

func (g *jsonGuildDal) RemoveNotify(_ context.Context, guildID, userID string) error {
	return g.modify("remove_notify", guildID, func(guild *entities.Guild) bool {
		before := len(guild.Notify)
		guild.Notify = slices.DeleteFunc(guild.Notify, func(id string) bool {
			return id == userID
		})
		return len(guild.Notify) != before
	})
}

func (g *jsonGuildDal) ClearNotify(_ context.Context, guildID string) error {
	return g.modify("clear_notify", guildID, func(guild *entities.Guild) bool {
		guild.Notify = []string{}
		return true
	})
}
