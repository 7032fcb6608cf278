package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"adapter": {
			"base_url": "http://api.local:8000",
			"request_timeout": "10s"
		},
		"storage": { "journal_dsn": "journal.db" },
		"workers": {
			"journal_retention": "48h",
			"prune_schedule": "@hourly"
		},
		"ui": {
			"page_size": 25,
			"search_debounce": "400ms"
		},
		"fakeapi": { "address": ":8001" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://api.local:8000", cfg.Adapter.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "journal.db", cfg.Storage.JournalDSN)
	assert.Equal(t, 48*time.Hour, cfg.Workers.JournalRetention)
	assert.Equal(t, "@hourly", cfg.Workers.PruneSchedule)
	assert.Equal(t, 25, cfg.UI.PageSize)
	assert.Equal(t, 400*time.Millisecond, cfg.UI.SearchDebounce)
	assert.Equal(t, ":8001", cfg.FakeAPI.Address)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"ui": {"search_debounce": "soon"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_NumericNanoseconds(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	out, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1s"`, string(out))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(cfg *StructuredConfig) {}},
		{name: "no base url", mutate: func(cfg *StructuredConfig) { cfg.Adapter.BaseURL = " " }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.JournalDSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "bad schedule", mutate: func(cfg *StructuredConfig) { cfg.Workers.PruneSchedule = "every now and then" }, wantErr: ErrInvalidWorkerConfigs},
		{name: "no retention", mutate: func(cfg *StructuredConfig) { cfg.Workers.JournalRetention = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "page size zero", mutate: func(cfg *StructuredConfig) { cfg.UI.PageSize = 0 }, wantErr: ErrInvalidUIConfigs},
		{name: "negative debounce", mutate: func(cfg *StructuredConfig) { cfg.UI.SearchDebounce = -time.Second }, wantErr: ErrInvalidUIConfigs},
		{name: "no fake api address", mutate: func(cfg *StructuredConfig) { cfg.FakeAPI.Address = "" }, wantErr: ErrInvalidFakeAPIConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
