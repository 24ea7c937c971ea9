package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Remote struct {
		APIBase    string `json:"api_base"`
		RawBase    string `json:"raw_base"`
		Track      string `json:"track"`
		PathPrefix string `json:"path_prefix"`
	} `json:"remote,omitempty"`

	Adapter struct {
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     *int     `json:"retry_count"`
		RetryWait      Duration `json:"retry_wait"`
		UserAgent      string   `json:"user_agent"`
	} `json:"adapter,omitempty"`

	Storage struct {
		LocalDir      string `json:"local_dir"`
		JournalDSN    string `json:"journal_dsn"`
		MarkerHistory int    `json:"marker_history"`
	} `json:"storage,omitempty"`

	Workers struct {
		Schedule          string `json:"schedule"`
		DisableAutoUpdate bool   `json:"disable_auto_update"`
	} `json:"workers,omitempty"`
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
		Remote: Remote{
			APIBase:    jsonCfg.Remote.APIBase,
			RawBase:    jsonCfg.Remote.RawBase,
			Track:      jsonCfg.Remote.Track,
			PathPrefix: jsonCfg.Remote.PathPrefix,
		},
		Adapter: Adapter{
			Token:          jsonCfg.Adapter.Token,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:     jsonCfg.Adapter.RetryCount,
			RetryWait:      time.Duration(jsonCfg.Adapter.RetryWait),
			UserAgent:      jsonCfg.Adapter.UserAgent,
		},
		Storage: Storage{
			LocalDir:      jsonCfg.Storage.LocalDir,
			JournalDSN:    jsonCfg.Storage.JournalDSN,
			MarkerHistory: jsonCfg.Storage.MarkerHistory,
		},
		Workers: Workers{
			Schedule:          jsonCfg.Workers.Schedule,
			DisableAutoUpdate: jsonCfg.Workers.DisableAutoUpdate,
		},
		JSONFilePath: "",
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
