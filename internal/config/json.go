package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
// Durations are written as strings ("15s") or nanoseconds.
type StructuredJSONConfig struct {
	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		JournalDSN string `json:"journal_dsn"`
	} `json:"storage,omitempty"`

	Workers struct {
		JournalRetention Duration `json:"journal_retention"`
		PruneSchedule    string   `json:"prune_schedule"`
	} `json:"workers,omitempty"`

	UI struct {
		PageSize       int      `json:"page_size"`
		SearchDebounce Duration `json:"search_debounce"`
	} `json:"ui,omitempty"`

	FakeAPI struct {
		Address string `json:"address"`
	} `json:"fakeapi,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			JournalDSN: jsonCfg.Storage.JournalDSN,
		},
		Workers: Workers{
			JournalRetention: time.Duration(jsonCfg.Workers.JournalRetention),
			PruneSchedule:    jsonCfg.Workers.PruneSchedule,
		},
		UI: UI{
			PageSize:       jsonCfg.UI.PageSize,
			SearchDebounce: time.Duration(jsonCfg.UI.SearchDebounce),
		},
		FakeAPI: FakeAPI{
			Address: jsonCfg.FakeAPI.Address,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
