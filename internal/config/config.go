// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-lang-sync client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote describes the remote localization repository.
	Remote Remote `envPrefix:"REMOTE_"`

	// Adapter holds the outbound HTTP client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local directory and journal database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the periodic synchronization settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// CLI holds run-mode switches. Populated from flags only.
	CLI CLI

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote identifies the remote repository and the release track to follow.
type Remote struct {
	// APIBase is the repository REST root, e.g.
	// "https://api.github.com/repos/acme/translations".
	// Env: REMOTE_API_BASE
	APIBase string `env:"API_BASE"`

	// RawBase serves raw file content as {RawBase}/{ref}/{path}, e.g.
	// "https://raw.githubusercontent.com/acme/translations".
	// Env: REMOTE_RAW_BASE
	RawBase string `env:"RAW_BASE"`

	// Track is the release line (branch) snapshots and commits are scoped to.
	// Env: REMOTE_TRACK
	Track string `env:"TRACK"`

	// PathPrefix is the directory inside the repository that holds the
	// localization files (e.g. "lang/"). Empty means the repository root.
	// Env: REMOTE_PATH_PREFIX
	PathPrefix string `env:"PATH_PREFIX"`
}

// Adapter holds settings for the outbound HTTP client.
type Adapter struct {
	// Token is an optional bearer token sent with every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times a failed request is retried. Nil means
	// unset; an explicit 0 disables retries.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount *int `env:"RETRY_COUNT"`

	// RetryWait is the initial pause between retries.
	// Env: ADAPTER_RETRY_WAIT
	RetryWait time.Duration `env:"RETRY_WAIT"`

	// UserAgent is sent as the User-Agent header.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Retries returns RetryCount, or DefaultRetryCount when it is unset.
func (a Adapter) Retries() int {
	if a.RetryCount == nil {
		return DefaultRetryCount
	}
	return *a.RetryCount
}

// Storage holds local persistence settings.
type Storage struct {
	// LocalDir is the directory holding config.xml and the *.lang files.
	// Env: STORAGE_LOCAL_DIR
	LocalDir string `env:"LOCAL_DIR"`

	// JournalDSN is the SQLite file used for the sync journal.
	// Env: STORAGE_JOURNAL_DSN
	JournalDSN string `env:"JOURNAL_DSN"`

	// MarkerHistory caps the number of <version> entries kept in config.xml.
	// Env: STORAGE_MARKER_HISTORY
	MarkerHistory int `env:"MARKER_HISTORY"`
}

// Workers holds configuration for the periodic synchronization worker.
type Workers struct {
	// Schedule is a cron spec or descriptor, e.g. "@every 30m" or "0 * * * *".
	// Env: WORKERS_SCHEDULE
	Schedule string `env:"SCHEDULE"`

	// DisableAutoUpdate turns incremental updates off: passes only run a
	// full download when the local manifest is missing.
	// Env: WORKERS_DISABLE_AUTO_UPDATE
	DisableAutoUpdate bool `env:"DISABLE_AUTO_UPDATE"`
}

// AutoUpdate reports whether incremental updates are enabled.
func (w Workers) AutoUpdate() bool {
	return !w.DisableAutoUpdate
}

// CLI holds command-line run-mode switches.
type CLI struct {
	// Once runs a single pass and exits. This is the default mode.
	Once bool
	// Watch keeps running passes on Workers.Schedule until interrupted.
	Watch bool
	// History prints the last N journal entries and exits when positive.
	History int
}

// SyncConfig is the validated configuration view consumed by the client.
type SyncConfig struct {
	Remote  Remote
	Adapter Adapter
	Storage Storage
	Workers Workers
	CLI     CLI
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (the first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields are then filled from [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}

// GetSyncConfig builds and validates the client configuration view.
func GetSyncConfig(args []string) (*SyncConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	syncCfg := cfg.syncConfig()
	return syncCfg, syncCfg.validate()
}

func (cfg *StructuredConfig) syncConfig() *SyncConfig {
	return &SyncConfig{
		Remote:  cfg.Remote,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
		CLI:     cfg.CLI,
	}
}
