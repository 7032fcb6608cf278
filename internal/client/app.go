package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/channel-console/internal/adapter"
	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/service"
	"github.com/MKhiriev/channel-console/internal/store"
	"github.com/MKhiriev/channel-console/internal/tui"
	"github.com/MKhiriev/channel-console/internal/workers"
	"github.com/MKhiriev/channel-console/models"
)

type App struct {
	storages *store.Storages
	services *service.Services
	workers  *workers.Workers
	ui       UI

	logger *logger.Logger
}

// NewApp builds the console from cfg. A journal that cannot be opened is
// logged and skipped: the console then runs without the activity history.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	logger.Info().
		Str("version", buildInfo.Version()).
		Str("commit", buildInfo.Commit()).
		Str("base_url", cfg.Adapter.BaseURL).
		Msg("initializing console")

	api, err := adapter.NewHTTPAPIAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create api adapter: %w", err)
	}

	var activityRepo store.ActivityRepository
	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Warn().Err(err).Str("dsn", cfg.Storage.JournalDSN).Msg("activity journal is unavailable")
	} else {
		activityRepo = storages.ActivityRepository
	}

	services := service.NewServices(api, activityRepo, logger)

	jobs, err := workers.NewWorkers(cfg.Workers, services, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create workers: %w", err)
	}

	ui, err := tui.New(services, cfg.UI, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		workers:  jobs,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run starts the background workers and blocks in the UI. Workers are
// stopped and the journal is closed when the UI returns.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run()
	defer func() {
		a.workers.Stop()
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("failed to close storages")
		}
		a.logger.Info().Msg("console stopped")
	}()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
