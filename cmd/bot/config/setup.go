package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/Jacobbrewer1/orderbot/pkg/dataaccess"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
	"github.com/joho/godotenv"
)

// Load reads the configuration from the environment, after loading any .env files given (or ./.env if
// none are). A missing .env file is not an error.
func Load(l *slog.Logger, files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading env file: %w", err)
	} else if err == nil {
		l.Debug("Loaded env file")
	}

	c := &Config{
		BotToken:       os.Getenv(EnvBotToken),
		ApplicationId:  os.Getenv(EnvApplicationId),
		Backend:        BackendMongo,
		MongoUri:       os.Getenv(EnvMongoUri),
		MongoDatabase:  dataaccess.DefaultDatabase,
		DataDir:        defaultDataDir,
		MonitoringPort: defaultMonitoringPort,
		NotifyRate:     defaultNotifyRate,
	}

	if v := os.Getenv(EnvStorageBackend); v != "" {
		c.Backend = Backend(v)
	}

	if v := os.Getenv(EnvMongoDatabase); v != "" {
		c.MongoDatabase = v
	}

	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}

	if v := os.Getenv(EnvMonitoringPort); v != "" {
		l.Debug("Found monitoring port in environment", slog.String("key", EnvMonitoringPort))
		c.MonitoringPort = v
	} else {
		l.Info("No monitoring port provided in environment, defaulting to "+defaultMonitoringPort, slog.String("key", EnvMonitoringPort))
	}

	if v := os.Getenv(EnvNotifyRate); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			l.Warn("Invalid notify rate, using default",
				slog.String("key", EnvNotifyRate),
				slog.String(logging.KeyError, err.Error()),
			)
		} else {
			c.NotifyRate = rate
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	l.Debug("Configuration loaded",
		slog.String("backend", string(c.Backend)),
		slog.String("monitoring_port", c.MonitoringPort),
	)
	return c, nil
}

// Validate reports every missing or invalid value at once.
func (c *Config) Validate() error {
	var errs []error

	if c.BotToken == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvBotToken))
	}
	if c.ApplicationId == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvApplicationId))
	}

	switch c.Backend {
	case BackendMongo:
		if c.MongoUri == "" {
			errs = append(errs, fmt.Errorf("%s is required when %s is %s", EnvMongoUri, EnvStorageBackend, BackendMongo))
		}
	case BackendJSON:
		if c.DataDir == "" {
			errs = append(errs, fmt.Errorf("%s is required when %s is %s", EnvDataDir, EnvStorageBackend, BackendJSON))
		}
	default:
		errs = append(errs, fmt.Errorf("%s must be %s or %s, got %q", EnvStorageBackend, BackendMongo, BackendJSON, c.Backend))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
