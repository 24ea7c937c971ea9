// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

func (cfg *SyncConfig) validate() error {
	if !isHTTPURL(cfg.Remote.APIBase) || !isHTTPURL(cfg.Remote.RawBase) {
		return fmt.Errorf("%w: api base and raw base must be http(s) URLs", ErrInvalidRemoteConfigs)
	}
	if strings.TrimSpace(cfg.Remote.Track) == "" {
		return fmt.Errorf("%w: empty track", ErrInvalidRemoteConfigs)
	}
	if strings.HasPrefix(cfg.Remote.PathPrefix, "/") || strings.Contains(cfg.Remote.PathPrefix, "..") {
		return fmt.Errorf("%w: path prefix must be relative", ErrInvalidRemoteConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.Retries() < 0 || cfg.Adapter.RetryWait < 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.LocalDir) == "" || cfg.Storage.MarkerHistory < 1 {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.JournalDSN == "" || isInMemoryDSN(cfg.Storage.JournalDSN) {
		return ErrInvalidStorageConfigs
	}

	if _, err := cron.ParseStandard(cfg.Workers.Schedule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorkerConfigs, err)
	}

	if cfg.CLI.Once && cfg.CLI.Watch {
		return fmt.Errorf("%w: --once and --watch are mutually exclusive", ErrInvalidCLIConfigs)
	}
	if cfg.CLI.History < 0 {
		return fmt.Errorf("%w: negative history", ErrInvalidCLIConfigs)
	}

	return nil
}

// isInMemoryDSN reports whether dsn names an SQLite in-memory database,
// either as ":memory:" or as a URI with mode=memory.
func isInMemoryDSN(dsn string) bool {
	if dsn == ":memory:" {
		return true
	}
	if !strings.HasPrefix(dsn, "file:") {
		return false
	}
	_, query, _ := strings.Cut(dsn, "?")
	values, err := url.ParseQuery(query)
	if err != nil {
		return false
	}
	return values.Get("mode") == "memory" || strings.HasPrefix(dsn, "file::memory:")
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
