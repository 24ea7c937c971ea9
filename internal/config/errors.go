package config

import "errors"

// Validation errors returned by [SyncConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates missing or malformed remote URLs or
	// an empty track.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidAdapterConfigs indicates invalid HTTP client settings
	// (for example, zero request timeout or negative retry count).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty directory or in-memory journal DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates an unparseable cron schedule.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidCLIConfigs indicates conflicting run-mode flags.
	ErrInvalidCLIConfigs = errors.New("invalid command-line configuration")
)
