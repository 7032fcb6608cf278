// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/service"
	"github.com/robfig/cron/v3"
)

const pruneTimeout = 30 * time.Second

// JournalPruner deletes activity entries older than the retention on a cron
// schedule. It prunes once right after Run so a console that is started
// rarely still trims its journal.
type JournalPruner struct {
	cron      *cron.Cron
	activity  service.ActivityService
	retention time.Duration

	logger *logger.Logger
}

func NewJournalPruner(cfg config.Workers, activity service.ActivityService, logger *logger.Logger) (*JournalPruner, error) {
	if activity == nil {
		return nil, ErrNilActivityService
	}
	if cfg.JournalRetention <= 0 {
		return nil, ErrInvalidRetention
	}

	p := &JournalPruner{
		cron:      cron.New(),
		activity:  activity,
		retention: cfg.JournalRetention,
		logger:    logger,
	}
	if _, err := p.cron.AddFunc(cfg.PruneSchedule, p.pruneJob); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, cfg.PruneSchedule, err)
	}

	return p, nil
}

func (p *JournalPruner) Run() {
	p.logger.Info().Dur("retention", p.retention).Msg("starting journal pruner")
	p.cron.Start()
	go p.pruneJob()
}

func (p *JournalPruner) Stop() {
	<-p.cron.Stop().Done()
	p.logger.Info().Msg("journal pruner stopped")
}

func (p *JournalPruner) pruneJob() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	_, _ = p.Prune(ctx)
}

// Prune runs one prune pass and returns the number of deleted entries.
func (p *JournalPruner) Prune(ctx context.Context) (int64, error) {
	deleted, err := p.activity.Prune(ctx, p.retention)
	if errors.Is(err, service.ErrJournalDisabled) {
		return 0, nil
	}
	if err != nil {
		p.logger.Err(err).Msg("journal prune failed")
		return 0, err
	}

	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Msg("journal pruned")
	}
	return deleted, nil
}
