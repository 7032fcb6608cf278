package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL
//	-t request timeout (e.g., "15s")
//	-d journal DSN
//	-retention journal retention (e.g., "720h")
//	-prune-schedule cron spec of the prune job
//	-page-size rows per list page
//	-debounce search debounce (e.g., "300ms")
//	-l fake backend listen address
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var requestTimeout time.Duration
	var journalDSN string
	var retention time.Duration
	var pruneSchedule string
	var pageSize int
	var debounce time.Duration
	var fakeAPIAddress string
	var jsonConfigPath string

	flag.StringVar(&baseURL, "a", "", "Backend base URL")
	flag.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 15s)")
	flag.StringVar(&journalDSN, "d", "", "Activity journal DSN")
	flag.DurationVar(&retention, "retention", 0, "Activity journal retention (e.g., 720h)")
	flag.StringVar(&pruneSchedule, "prune-schedule", "", "Cron spec of the journal prune job")
	flag.IntVar(&pageSize, "page-size", 0, "Rows per list page")
	flag.DurationVar(&debounce, "debounce", 0, "Search debounce (e.g., 300ms)")
	flag.StringVar(&fakeAPIAddress, "l", "", "Fake backend listen address")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			JournalDSN: journalDSN,
		},
		Workers: Workers{
			JournalRetention: retention,
			PruneSchedule:    pruneSchedule,
		},
		UI: UI{
			PageSize:       pageSize,
			SearchDebounce: debounce,
		},
		FakeAPI: FakeAPI{
			Address: fakeAPIAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
