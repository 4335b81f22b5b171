package dataaccess

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/orderbot/pkg/custom"
	"github.com/Jacobbrewer1/orderbot/pkg/dataaccess/monitoring"
	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const guildDalName = "guild_dal"

// GuildDal is the storage contract for guild records. Every method except
// Exists and Create returns ErrNotFound when the guild has no record. Each
// update touches a single field group and is atomic on its own.
type GuildDal interface {
	// Exists reports whether the guild has a record.
	Exists(ctx context.Context, guildID string) (bool, error)

	// Create stores a new guild record. Returns ErrAlreadyExists if one exists.
	Create(ctx context.Context, guild *entities.Guild) error

	// Get gets a guild by ID.
	Get(ctx context.Context, guildID string) (*entities.Guild, error)

	// SetStatus sets the store status.
	SetStatus(ctx context.Context, guildID string, status entities.StoreStatus) error

	// SetOrderPanel points the guild at a new order panel message.
	SetOrderPanel(ctx context.Context, guildID, channelID, messageID string) error

	// SetCategory points the guild at a new ticket category.
	SetCategory(ctx context.Context, guildID, categoryID string) error

	// SetTicketLimit sets the daily ticket limit. 0 disables the limit.
	SetTicketLimit(ctx context.Context, guildID string, limit int) error

	// SetTicketsToday overrides today's ticket counter.
	SetTicketsToday(ctx context.Context, guildID string, amount int) error

	// IncrementTicketsToday adds one to today's ticket counter.
	IncrementTicketsToday(ctx context.Context, guildID string) error

	// ResetDaily zeroes today's counter and records the reset date. Repeating it with the same date is a no-op.
	ResetDaily(ctx context.Context, guildID string, date custom.Date) error

	// AddNotify adds a user to the notify set. Adding a present user is a no-op.
	AddNotify(ctx context.Context, guildID, userID string) error

	// RemoveNotify removes a user from the notify set.
	RemoveNotify(ctx context.Context, guildID, userID string) error

	// ClearNotify empties the notify set.
	ClearNotify(ctx context.Context, guildID string) error
}

type mongoGuildDal struct {
	// l is the logger.
	l *slog.Logger

	// database is the name of the database.
	database string

	// collection is the guild collection.
	collection *mongo.Collection
}

// NewMongoGuildDal creates a new guild data access layer backed by MongoDB.
func NewMongoGuildDal(l *slog.Logger, client *mongo.Client, database string) GuildDal {
	return newMongoGuildDal(l, client.Database(database).Collection(guildsCollection))
}

func newMongoGuildDal(l *slog.Logger, collection *mongo.Collection) *mongoGuildDal {
	return &mongoGuildDal{
		l:          l.With(slog.String(logging.KeyDal, guildDalName)),
		database:   collection.Database().Name(),
		collection: collection,
	}
}

func (g *mongoGuildDal) track(query string) func() {
	return monitoring.Track(guildDalName, query, g.database, guildsCollection)
}

func (g *mongoGuildDal) Exists(ctx context.Context, guildID string) (bool, error) {
	defer g.track("exists")()

	n, err := g.collection.CountDocuments(ctx, bson.M{"_id": guildID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error counting guilds: %w", err)
	}
	return n > 0, nil
}

func (g *mongoGuildDal) Create(ctx context.Context, guild *entities.Guild) error {
	defer g.track("create")()

	if _, err := g.collection.InsertOne(ctx, guild); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			g.l.Debug("Guild already exists", slog.String(logging.KeyGuildID, guild.ID))
			return fmt.Errorf("guild %s: %w", guild.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting guild: %w", err)
	}
	return nil
}

func (g *mongoGuildDal) Get(ctx context.Context, guildID string) (*entities.Guild, error) {
	defer g.track("get")()

	guild := new(entities.Guild)
	if err := g.collection.FindOne(ctx, bson.M{"_id": guildID}).Decode(guild); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("guild %s: %w", guildID, ErrNotFound)
		}
		return nil, fmt.Errorf("error getting guild: %w", err)
	}
	if err := guild.Validate(); err != nil {
		return nil, fmt.Errorf("guild %s: %w", guildID, err)
	}
	if guild.Notify == nil {
		guild.Notify = []string{}
	}
	return guild, nil
}

// update applies a single update document to the guild, mapping an unmatched filter to ErrNotFound.
func (g *mongoGuildDal) update(ctx context.Context, query, guildID string, update bson.M) error {
	defer g.track(query)()

	res, err := g.collection.UpdateOne(ctx, bson.M{"_id": guildID}, update)
	if err != nil {
		return fmt.Errorf("error updating guild (%s): %w", query, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("guild %s: %w", guildID, ErrNotFound)
	}
	return nil
}

func (g *mongoGuildDal) SetStatus(ctx context.Context, guildID string, status entities.StoreStatus) error {
	return g.update(ctx, "set_status", guildID, bson.M{"$set": bson.M{"status": status}})
}

func (g *mongoGuildDal) SetOrderPanel(ctx context.Context, guildID, channelID, messageID string) error {
	return g.update(ctx, "set_order_panel", guildID, bson.M{"$set": bson.M{
		"order_channel_id": channelID,
		"order_message_id": messageID,
	}})
}

func (g *mongoGuildDal) SetCategory(ctx context.Context, guildID, categoryID string) error {
	return g.update(ctx, "set_category", guildID, bson.M{"$set": bson.M{"category_id": categoryID}})
}

func (g *mongoGuildDal) SetTicketLimit(ctx context.Context, guildID string, limit int) error {
	return g.update(ctx, "set_ticket_limit", guildID, bson.M{"$set": bson.M{"ticket_limit": limit}})
}

func (g *mongoGuildDal) SetTicketsToday(ctx context.Context, guildID string, amount int) error {
	return g.update(ctx, "set_tickets_today", guildID, bson.M{"$set": bson.M{"tickets_today": amount}})
}

func (g *mongoGuildDal) IncrementTicketsToday(ctx context.Context, guildID string) error {
	return g.update(ctx, "increment_tickets_today", guildID, bson.M{"$inc": bson.M{"tickets_today": 1}})
}

// ResetDaily only matches a record whose last reset differs from date, so a
// second reset for the same day cannot wipe tickets counted since the first.
func (g *mongoGuildDal) ResetDaily(ctx context.Context, guildID string, date custom.Date) error {
	done := g.track("reset_daily")

	res, err := g.collection.UpdateOne(ctx,
		bson.M{"_id": guildID, "last_reset": bson.M{"$ne": date}},
		bson.M{"$set": bson.M{
			"tickets_today": 0,
			"last_reset":    date,
		}},
	)
	done()
	if err != nil {
		return fmt.Errorf("error updating guild (reset_daily): %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	exists, err := g.Exists(ctx, guildID)
	if err != nil {
		return err
	} else if !exists {
		return fmt.Errorf("guild %s: %w", guildID, ErrNotFound)
	}
	return nil
}

func (g *mongoGuildDal) AddNotify(ctx context.Context, guildID, userID string) error {
	return g.update(ctx, "add_notify", guildID, bson.M{"$addToSet": bson.M{"notify": userID}})
}

func (g *mongoGuildDal) RemoveNotify(ctx context.Context, guildID, userID string) error {
	return g.update(ctx, "remove_notify", guildID, bson.M{"$pull": bson.M{"notify": userID}})
}

func (g *mongoGuildDal) ClearNotify(ctx context.Context, guildID string) error {
	return g.update(ctx, "clear_notify", guildID, bson.M{"$set": bson.M{"notify": []string{}}})
}
