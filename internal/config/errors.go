package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty journal DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero retention or an unparsable schedule).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidUIConfigs indicates a page size outside 1..1000 or a
	// negative debounce.
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidFakeAPIConfigs indicates an empty fake backend address.
	ErrInvalidFakeAPIConfigs = errors.New("invalid fake api configuration")
)
