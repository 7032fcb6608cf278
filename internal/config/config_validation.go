// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

const maxPageSize = 1000

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.BaseURL) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.JournalDSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.JournalRetention <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if _, err := cron.ParseStandard(cfg.Workers.PruneSchedule); err != nil {
		return fmt.Errorf("%w: prune schedule: %v", ErrInvalidWorkerConfigs, err)
	}

	if cfg.UI.PageSize < 1 || cfg.UI.PageSize > maxPageSize || cfg.UI.SearchDebounce < 0 {
		return ErrInvalidUIConfigs
	}

	if strings.TrimSpace(cfg.FakeAPI.Address) == "" {
		return ErrInvalidFakeAPIConfigs
	}

	return nil
}
