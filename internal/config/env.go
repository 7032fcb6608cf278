// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads ADAPTER_*, STORAGE_*, WORKERS_*, UI_* and FAKEAPI_*
// variables plus CONFIG into cfg. Unset variables leave fields zero so the
// other sources can fill them during the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("reading console env configuration: %w", err)
	}
	return nil
}
