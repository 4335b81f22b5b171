package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Jacobbrewer1/orderbot/cmd/bot/config"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
)

func provideConfig(l *slog.Logger) (*config.Config, error) {
	return config.Load(l)
}

func main() {
	a, cleanup, err := InitializeApp(context.Background())
	if err != nil {
		log.Fatalln(err)
	}
	defer cleanup()

	a.Info("Starting application")
	if err := a.Run(); err != nil {
		a.Error("Error running application", slog.String(logging.KeyError, err.Error()))
		cleanup()
		os.Exit(1)
	}
}
