package dataaccess

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/orderbot/pkg/dataaccess/monitoring"
	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ticketDalName = "ticket_dal"

// TicketDal is the storage contract for open tickets, keyed by ticket channel ID.
type TicketDal interface {
	// Exists reports whether the ticket has a record.
	Exists(ctx context.Context, ticketID string) (bool, error)

	// Create stores a new ticket. Returns ErrAlreadyExists if one exists.
	Create(ctx context.Context, ticket *entities.Ticket) error

	// Get gets a ticket by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, ticketID string) (*entities.Ticket, error)

	// Remove deletes a ticket. Removing an absent ticket is not an error.
	Remove(ctx context.Context, ticketID string) error

	// ListByGuild lists the open tickets of a guild, oldest first.
	ListByGuild(ctx context.Context, guildID string) ([]*entities.Ticket, error)
}

type mongoTicketDal struct {
	// l is the logger.
	l *slog.Logger

	// database is the name of the database.
	database string

	// collection is the ticket collection.
	collection *mongo.Collection
}

// NewMongoTicketDal creates a new ticket data access layer backed by MongoDB.
func NewMongoTicketDal(l *slog.Logger, client *mongo.Client, database string) TicketDal {
	return newMongoTicketDal(l, client.Database(database).Collection(ticketsCollection))
}

func newMongoTicketDal(l *slog.Logger, collection *mongo.Collection) *mongoTicketDal {
	return &mongoTicketDal{
		l:          l.With(slog.String(logging.KeyDal, ticketDalName)),
		database:   collection.Database().Name(),
		collection: collection,
	}
}

func (d *mongoTicketDal) track(query string) func() {
	return monitoring.Track(ticketDalName, query, d.database, ticketsCollection)
}

func (d *mongoTicketDal) Exists(ctx context.Context, ticketID string) (bool, error) {
	defer d.track("exists")()

	n, err := d.collection.CountDocuments(ctx, bson.M{"_id": ticketID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error counting tickets: %w", err)
	}
	return n > 0, nil
}

func (d *mongoTicketDal) Create(ctx context.Context, ticket *entities.Ticket) error {
	defer d.track("create")()

	if _, err := d.collection.InsertOne(ctx, ticket); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("ticket %s: %w", ticket.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting ticket: %w", err)
	}
	return nil
}

func (d *mongoTicketDal) Get(ctx context.Context, ticketID string) (*entities.Ticket, error) {
	defer d.track("get")()

	ticket := new(entities.Ticket)
	if err := d.collection.FindOne(ctx, bson.M{"_id": ticketID}).Decode(ticket); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
		}
		return nil, fmt.Errorf("error getting ticket: %w", err)
	}
	return ticket, nil
}

func (d *mongoTicketDal) Remove(ctx context.Context, ticketID string) error {
	defer d.track("remove")()

	res, err := d.collection.DeleteOne(ctx, bson.M{"_id": ticketID})
	if err != nil {
		return fmt.Errorf("error deleting ticket: %w", err)
	}
	if res.DeletedCount == 0 {
		d.l.Debug("Ticket already removed", slog.String(logging.KeyChannelID, ticketID))
	}
	return nil
}

func (d *mongoTicketDal) ListByGuild(ctx context.Context, guildID string) ([]*entities.Ticket, error) {
	defer d.track("list_by_guild")()

	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cur, err := d.collection.Find(ctx, bson.M{"guild_id": guildID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding tickets: %w", err)
	}

	tickets := make([]*entities.Ticket, 0)
	if err := cur.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("error decoding tickets: %w", err)
	}
	return tickets, nil
}
