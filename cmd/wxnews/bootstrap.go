package main

import (
	"context"

	"github.com/custodia-labs/wxnews/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wxnews/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/wxnews/internal/adapters/driven/httpapi"
	"github.com/custodia-labs/wxnews/internal/adapters/driven/news/newsapi"
	"github.com/custodia-labs/wxnews/internal/adapters/driven/weather/openweather"
	"github.com/custodia-labs/wxnews/internal/adapters/driving/cli"
	"github.com/custodia-labs/wxnews/internal/core/ports/driven"
	"github.com/custodia-labs/wxnews/internal/core/services"
	"github.com/custodia-labs/wxnews/internal/logger"
)

// bootstrap wires adapters to core services. A config file that cannot be
// opened degrades to an in-memory store so that environment keys still work.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	store := openConfigStore(ctx, opts.ConfigDir)

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	client := httpapi.NewClient(httpapi.Config{
		Timeout:   settings.HTTP.Timeout,
		UserAgent: "wxnews/" + opts.Version,
	})

	return &cli.Services{
		Weather:   services.NewWeatherService(openweather.NewProvider(client), settingsService),
		Headlines: services.NewHeadlinesService(newsapi.NewProvider(client), settingsService),
		Settings:  settingsService,
	}, nil
}

// openConfigStore opens the TOML store and starts watching it for edits.
// The watcher stops when ctx is cancelled.
func openConfigStore(ctx context.Context, configDir string) driven.ConfigStore {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config file unavailable, using in-memory settings: %v", err)
		return memory.NewConfigStore()
	}

	watcher, err := file.NewWatcher(store, func(err error) {
		if err != nil {
			logger.Warn("config reload failed: %v", err)
			return
		}
		logger.Debug("config reloaded from %s", store.Path())
	})
	if err != nil {
		logger.Warn("config watcher disabled: %v", err)
		return store
	}

	go func() {
		if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("config watcher stopped: %v", err)
		}
	}()

	return store
}
