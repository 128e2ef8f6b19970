//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"prwatch/internal/app"
	"prwatch/internal/config"
	"prwatch/internal/logger"
)

func InitializeApp(ctx context.Context, cfgPath string) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		config.LoadFrom,
		provideLoggerConfig,
		logger.New,
	)
	return &app.App{}, nil, nil
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}
