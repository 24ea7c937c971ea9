package config

import "time"

// Default values used for fields left unset by every source.
const (
	DefaultTrack          = "master"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryCount     = 3
	DefaultRetryWait      = 2 * time.Second
	DefaultUserAgent      = "go-lang-sync"
	DefaultLocalDir       = "lang"
	DefaultJournalDSN     = "lang-sync.db"
	DefaultMarkerHistory  = 10
	DefaultSchedule       = "@every 30m"
)

// Defaults returns the configuration applied beneath all other sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Remote: Remote{
			Track: DefaultTrack,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     intPtr(DefaultRetryCount),
			RetryWait:      DefaultRetryWait,
			UserAgent:      DefaultUserAgent,
		},
		Storage: Storage{
			LocalDir:      DefaultLocalDir,
			JournalDSN:    DefaultJournalDSN,
			MarkerHistory: DefaultMarkerHistory,
		},
		Workers: Workers{
			Schedule: DefaultSchedule,
		},
	}
}

func intPtr(v int) *int {
	return &v
}
