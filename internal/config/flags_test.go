package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags gives ParseFlags a fresh flag set and simulated arguments.
func resetFlags(t *testing.T, args ...string) {
	t.Helper()

	oldCommandLine := flag.CommandLine
	oldArgs := os.Args
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = append([]string{"cmd"}, args...)

	t.Cleanup(func() {
		flag.CommandLine = oldCommandLine
		os.Args = oldArgs
	})
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "http://localhost:8000",
				"-t", "30s",
				"-d", "/tmp/journal.db",
				"-retention", "24h",
				"-prune-schedule", "@daily",
				"-page-size", "50",
				"-debounce", "250ms",
				"-l", "127.0.0.1:9000",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://localhost:8000", cfg.Adapter.BaseURL)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "/tmp/journal.db", cfg.Storage.JournalDSN)
				assert.Equal(t, 24*time.Hour, cfg.Workers.JournalRetention)
				assert.Equal(t, "@daily", cfg.Workers.PruneSchedule)
				assert.Equal(t, 50, cfg.UI.PageSize)
				assert.Equal(t, 250*time.Millisecond, cfg.UI.SearchDebounce)
				assert.Equal(t, "127.0.0.1:9000", cfg.FakeAPI.Address)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
