// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the console.
// It is populated by merging values from environment variables, command-line
// flags and an optional JSON file; unset values fall back to [Default].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the location of the backend REST API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local activity journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// UI holds list and search behaviour of the pages.
	UI UI `envPrefix:"UI_"`

	// FakeAPI holds the settings of the in-memory development backend.
	FakeAPI FakeAPI `envPrefix:"FAKEAPI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the outbound REST settings.
type Adapter struct {
	// BaseURL is the backend root, e.g. "http://localhost:8000". A missing
	// scheme defaults to http.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the local persistence settings.
type Storage struct {
	// JournalDSN is the SQLite data source of the activity journal.
	// Env: STORAGE_JOURNAL_DSN
	JournalDSN string `env:"JOURNAL_DSN"`
}

// Workers holds background job settings.
type Workers struct {
	// JournalRetention is how long activity entries are kept.
	// Env: WORKERS_JOURNAL_RETENTION
	JournalRetention time.Duration `env:"JOURNAL_RETENTION"`

	// PruneSchedule is the cron spec of the journal prune job
	// (standard 5-field spec or a descriptor such as "@every 1h").
	// Env: WORKERS_PRUNE_SCHEDULE
	PruneSchedule string `env:"PRUNE_SCHEDULE"`
}

// UI holds list and search settings of the pages.
type UI struct {
	// PageSize is the number of rows requested per list page.
	// Env: UI_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// SearchDebounce is the quiet period after the last keystroke before a
	// search query is issued.
	// Env: UI_SEARCH_DEBOUNCE
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE"`
}

// FakeAPI holds the settings of cmd/fakeapi.
type FakeAPI struct {
	// Address is the listen address, e.g. "localhost:8000".
	// Env: FAKEAPI_ADDRESS
	Address string `env:"ADDRESS"`
}

// Default returns the values used for every setting no source provides.
func Default() StructuredConfig {
	return StructuredConfig{
		Adapter: Adapter{
			BaseURL:        "http://localhost:8000",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			JournalDSN: "channel-console.db",
		},
		Workers: Workers{
			JournalRetention: 30 * 24 * time.Hour,
			PruneSchedule:    "@every 1h",
		},
		UI: UI{
			PageSize:       10,
			SearchDebounce: 300 * time.Millisecond,
		},
		FakeAPI: FakeAPI{
			Address: "localhost:8000",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the console
// configuration. Sources are applied in the following order, a later
// source overriding the non-zero fields of an earlier one:
//  1. .env file (loaded into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Fields still zero afterwards are taken from [Default].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
