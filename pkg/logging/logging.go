package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	// EnvLogLevel is the environment variable for the log level.
	EnvLogLevel = `LOG_LEVEL`

	// EnvLogFormat is the environment variable for the log format (json or text).
	EnvLogFormat = `LOG_FORMAT`
)

const (
	formatJSON = "json"
	formatText = "text"
)

// Name is the name of the application the logger is for.
type Name string

// Config is the configuration for the logger.
type Config struct {
	// appName is the name of the application.
	appName string

	// level is the minimum level to log.
	level slog.Level

	// format is either json or text.
	format string

	// out is where the logs are written.
	out io.Writer
}

// NewConfig creates a new logging config from the environment.
func NewConfig(name Name) *Config {
	c := &Config{
		appName: string(name),
		level:   slog.LevelInfo,
		format:  formatJSON,
		out:     os.Stdout,
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		if err := c.level.UnmarshalText([]byte(lvl)); err != nil {
			c.level = slog.LevelInfo
		}
	}

	if f := strings.ToLower(os.Getenv(EnvLogFormat)); f == formatText {
		c.format = formatText
	}

	return c
}

// WithWriter sets the output of the logger.
func (c *Config) WithWriter(w io.Writer) *Config {
	c.out = w
	return c
}

// CommonLogger creates the application logger and sets it as the default.
func CommonLogger(c *Config) (*slog.Logger, error) {
	if c == nil {
		return nil, fmt.Errorf("logging config is nil")
	}

	var h slog.Handler
	switch c.format {
	case formatText:
		h = tint.NewHandler(c.out, &tint.Options{
			Level:      c.level,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		})
	default:
		h = slog.NewJSONHandler(c.out, &slog.HandlerOptions{
			Level:     c.level,
			AddSource: true,
		})
	}

	l := slog.New(h).With(slog.String(KeyApp, c.appName))
	slog.SetDefault(l)
	return l, nil
}
