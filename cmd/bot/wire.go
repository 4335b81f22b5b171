//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/Jacobbrewer1/orderbot/cmd/bot/config"
	"github.com/Jacobbrewer1/orderbot/pkg/logging"
	"github.com/google/wire"
	"github.com/gorilla/mux"
)

func InitializeApp(ctx context.Context) (*App, func(), error) {
	wire.Build(
		wire.Value(logging.Name(config.AppName)),
		logging.NewConfig,
		logging.CommonLogger,
		provideConfig,
		NewSession,
		NewStorage,
		NewDiscordPlatform,
		NewOrderService,
		mux.NewRouter,
		NewApp,
	)
	return new(App), nil, nil
}
