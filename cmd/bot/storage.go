package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Jacobbrewer1/orderbot/cmd/bot/config"
	"github.com/Jacobbrewer1/orderbot/pkg/dataaccess"
	"github.com/Jacobbrewer1/orderbot/pkg/dataaccess/connection"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
)

// Storage is the selected storage backend.
type Storage struct {
	// Name is the backend name, used as the health check name.
	Name string

	// Guilds is the guild store.
	Guilds dataaccess.GuildDal

	// Tickets is the ticket store.
	Tickets dataaccess.TicketDal

	// Ping checks the backend is reachable.
	Ping func(ctx context.Context) error
}

// NewStorage opens the configured backend. The returned func releases it.
func NewStorage(ctx context.Context, l *slog.Logger, cfg *config.Config) (*Storage, func(), error) {
	switch cfg.Backend {
	case config.BackendMongo:
		return newMongoStorage(ctx, l, cfg)
	case config.BackendJSON:
		return newJSONStorage(l, cfg)
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func newMongoStorage(ctx context.Context, l *slog.Logger, cfg *config.Config) (*Storage, func(), error) {
	mongoConn := &connection.MongoDB{ConnectionString: cfg.MongoUri}

	client, err := mongoConn.Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to mongo: %w", err)
	}
	l.Debug("Connected to MongoDB", slog.String("database", cfg.MongoDatabase))

	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			l.Error("Error disconnecting from mongo", slog.String(logging.KeyError, err.Error()))
		}
	}

	return &Storage{
		Name:    "MongoDB",
		Guilds:  dataaccess.NewMongoGuildDal(l, client, cfg.MongoDatabase),
		Tickets: dataaccess.NewMongoTicketDal(l, client, cfg.MongoDatabase),
		Ping: func(ctx context.Context) error {
			return connection.Ping(ctx, client)
		},
	}, cleanup, nil
}

func newJSONStorage(l *slog.Logger, cfg *config.Config) (*Storage, func(), error) {
	guilds, err := dataaccess.NewJSONGuildDal(l, cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	tickets, err := dataaccess.NewJSONTicketDal(l, cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	l.Debug("Using JSON storage", slog.String("dir", cfg.DataDir))

	return &Storage{
		Name:    "JSON_Store",
		Guilds:  guilds,
		Tickets: tickets,
		Ping: func(_ context.Context) error {
			info, err := os.Stat(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("error checking data directory: %w", err)
			} else if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", cfg.DataDir)
			}
			return nil
		},
	}, func() {}, nil
}
