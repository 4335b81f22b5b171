package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/orderbot/cmd/bot/config"
	"github.com/Jacobbrewer1/orderbot/cmd/bot/monitoring"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
	"github.com/Jacobbrewer1/orderbot/pkg/ordering"
	"github.com/Jacobbrewer1/orderbot/pkg/request"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// PathMetrics is the path for metrics.
	PathMetrics = "/metrics"

	// PathHealth is the path for the health check.
	PathHealth = "/health"

	shutdownTimeout = 10 * time.Second
)

// IApp is the interface for the application.
type IApp interface {
	// Log returns the logger.
	Log() *slog.Logger

	// Session returns the discord session.
	Session() *discordgo.Session

	// Config returns the configuration.
	Config() *config.Config

	// Orders returns the order service.
	Orders() *ordering.Service
}

type App struct {
	// is the logger.
	*slog.Logger

	// cfg is the configuration.
	cfg *config.Config

	// r is the router for the application.
	r *mux.Router

	// svr is the server for the application.
	svr *http.Server

	// s is the discord session.
	s *discordgo.Session

	// store is the storage backend.
	store *Storage

	// orders is the order service.
	orders *ordering.Service

	// eventNotifier is the channel for notifying of events.
	eventNotifier chan any
}

// NewApp creates a new instance of App.
func NewApp(l *slog.Logger, cfg *config.Config, r *mux.Router, s *discordgo.Session, store *Storage, orders *ordering.Service) *App {
	return &App{
		Logger: l,
		cfg:    cfg,
		r:      r,
		s:      s,
		store:  store,
		orders: orders,
	}
}

// NewSession creates the discord session. It is not connected until the app runs.
func NewSession(cfg *config.Config) (*discordgo.Session, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.MakeIntent(discordgo.IntentsGuilds)
	return dg, nil
}

// NewOrderService creates the order service over the storage backend and discord.
func NewOrderService(l *slog.Logger, store *Storage, platform ordering.Platform, cfg *config.Config) *ordering.Service {
	return ordering.NewService(l, store.Guilds, store.Tickets, platform,
		ordering.WithNotifyRate(cfg.NotifyRate),
	)
}

func (a *App) Run() error {
	// Default the number of guilds to 0.
	monitoring.TotalDiscordGuilds.Set(0)

	a.RegisterDiscordHandlers()

	// Start event listener.
	a.eventNotifier = make(chan any, 100)
	a.s.SetEventNotifier(a.eventNotifier)
	go a.eventListener()

	// Open websocket.
	if err := a.s.Open(); err != nil {
		return fmt.Errorf("error opening connection to Discord: %w", err)
	}

	a.Info("Bot is now running.")

	a.setupRoutes()
	a.runServer()

	// Register listener for shutdown signal.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	sig := <-c
	a.Info("Received shutdown signal", slog.String("signal", sig.String()))
	return a.ShutdownHook()
}

func (a *App) ShutdownHook() error {
	monitoring.TotalDiscordGuilds.Set(0)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.svr.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("error shutting down monitoring server: %w", err))
	}

	// Close the connection to Discord.
	if err := a.s.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing connection to Discord: %w", err))
	}
	return errors.Join(errs...)
}

func (a *App) runServer() {
	a.svr = &http.Server{
		Addr:              ":" + a.cfg.MonitoringPort,
		Handler:           a.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		a.Info("Starting monitoring server", slog.String("addr", a.svr.Addr))
		if err := a.svr.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Error("Error starting monitoring server", slog.String(logging.KeyError, err.Error()))
			a.Warn("Monitoring server will not be available")
		}
	}()
}

func (a *App) setupRoutes() {
	a.r.HandleFunc(PathMetrics, middlewareHttp(a.Logger, promhttp.Handler().ServeHTTP)).Methods(http.MethodGet)
	a.r.HandleFunc(PathHealth, middlewareHttp(a.Logger, a.healthCheck())).Methods(http.MethodGet)

	a.r.NotFoundHandler = request.NotFoundHandler(a.Logger)
	a.r.MethodNotAllowedHandler = request.MethodNotAllowedHandler(a.Logger)
}

func (a *App) RegisterDiscordHandlers() {
	a.s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		a.Info("Logged in", slog.String("user", r.User.Username), slog.Int("guilds", len(r.Guilds)))
	})

	commands := slashCommands()

	// Bot joined, or regained, a guild.
	a.s.AddHandler(guildJoinedHandler(a, applicationCommands(commands)))

	// Bot left guild.
	a.s.AddHandler(guildLeaveHandler(a))

	// Interaction create handler.
	a.s.AddHandler(interactionHandler(a, commands, buttonProcessors()))
}

func (a *App) eventListener() {
	for e := range a.eventNotifier {
		switch t := e.(type) {
		case *discordgo.Event:
			if t.Type != "" {
				monitoring.TotalDiscordEvents.WithLabelValues(t.Type).Inc()
			} else {
				// If there is no type, then use the operation name.
				monitoring.TotalDiscordEvents.WithLabelValues(strings.ToUpper(t.Operation.String())).Inc()
			}
		default:
			a.Error("Unknown event type", slog.String("type", fmt.Sprintf("%T", e)))
			monitoring.TotalDiscordEvents.WithLabelValues("UNKNOWN").Inc()
		}
	}
}

func (a *App) Log() *slog.Logger {
	return a.Logger
}

func (a *App) Session() *discordgo.Session {
	return a.s
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Orders() *ordering.Service {
	return a.orders
}
