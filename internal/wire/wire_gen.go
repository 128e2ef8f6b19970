// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"prwatch/internal/app"
	"prwatch/internal/config"
	"prwatch/internal/logger"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context, cfgPath string) (*app.App, func(), error) {
	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	slogLogger := logger.New(cfg.Logging)

	application, err := app.NewApp(ctx, cfgPath, cfg, slogLogger)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}

	return application, cleanup, nil
}
