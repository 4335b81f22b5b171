package dataaccess

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Jacobbrewer1/orderbot/pkg/dataaccess/monitoring"
	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
)

const ticketsFile = "tickets.json"

type jsonTicketDal struct {
	// l is the logger.
	l *slog.Logger

	// file is the ticket document.
	file *jsonFile[entities.Ticket]
}

// NewJSONTicketDal creates a new ticket data access layer backed by a JSON file in dir.
func NewJSONTicketDal(l *slog.Logger, dir string) (TicketDal, error) {
	f, err := newJSONFile[entities.Ticket](dir, ticketsFile)
	if err != nil {
		return nil, fmt.Errorf("error opening ticket store: %w", err)
	}

	return &jsonTicketDal{
		l:    l.With(slog.String(logging.KeyDal, ticketDalName)),
		file: f,
	}, nil
}

func (d *jsonTicketDal) track(query string) func() {
	return monitoring.Track(ticketDalName, query, fileDatabase, ticketsFile)
}

func (d *jsonTicketDal) Exists(_ context.Context, ticketID string) (bool, error) {
	defer d.track("exists")()

	var found bool
	err := d.file.view(func(data map[string]*entities.Ticket) error {
		_, found = data[ticketID]
		return nil
	})
	return found, err
}

func (d *jsonTicketDal) Create(_ context.Context, ticket *entities.Ticket) error {
	defer d.track("create")()

	return d.file.update(func(data map[string]*entities.Ticket) (bool, error) {
		if _, ok := data[ticket.ID]; ok {
			return false, fmt.Errorf("ticket %s: %w", ticket.ID, ErrAlreadyExists)
		}
		cp := *ticket
		data[ticket.ID] = &cp
		return true, nil
	})
}

func (d *jsonTicketDal) Get(_ context.Context, ticketID string) (*entities.Ticket, error) {
	defer d.track("get")()

	var ticket *entities.Ticket
	err := d.file.view(func(data map[string]*entities.Ticket) error {
		got, ok := data[ticketID]
		if !ok {
			return fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
		}
		ticket = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

func (d *jsonTicketDal) Remove(_ context.Context, ticketID string) error {
	defer d.track("remove")()

	return d.file.update(func(data map[string]*entities.Ticket) (bool, error) {
		if _, ok := data[ticketID]; !ok {
			d.l.Debug("Ticket already removed", slog.String(logging.KeyChannelID, ticketID))
			return false, nil
		}
		delete(data, ticketID)
		return true, nil
	})
}

func (d *jsonTicketDal) ListByGuild(_ context.Context, guildID string) ([]*entities.Ticket, error) {
	defer d.track("list_by_guild")()

	tickets := make([]*entities.Ticket, 0)
	err := d.file.view(func(data map[string]*entities.Ticket) error {
		for _, t := range data {
			if t.GuildID == guildID {
				tickets = append(tickets, t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		return time.Time(tickets[i].CreatedAt).Before(time.Time(tickets[j].CreatedAt))
	})
	return tickets, nil
}
