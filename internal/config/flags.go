package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// parseFlags parses the command-line arguments (without the program name)
// into a partial [StructuredConfig]. A fresh flag set is used for every call.
//
// Flags:
//
//	--api-base          remote REST root
//	--raw-base          remote raw content root
//	-t, --track         release track
//	--path-prefix       directory of the localization files in the remote repository
//	--token             bearer token
//	--request-timeout   outbound request timeout (e.g. "30s")
//	--retry-count       retries per request
//	--retry-wait        pause between retries (e.g. "2s")
//	--user-agent        User-Agent header
//	-d, --dir           local localization directory
//	--journal           journal SQLite file
//	--marker-history    version entries kept in config.xml
//	--schedule          cron schedule for --watch
//	--no-auto-update    only download when config.xml is missing
//	--once              run a single pass (default)
//	-w, --watch         run passes on --schedule until interrupted
//	--history           print the last N journal entries and exit
//	-c, --config        json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := pflag.NewFlagSet("langsync", pflag.ContinueOnError)

	var (
		apiBase, rawBase, track, pathPrefix string
		token, userAgent                    string
		requestTimeout, retryWait           time.Duration
		retryCount                          int
		localDir, journalDSN                string
		markerHistory                       int
		schedule                            string
		noAutoUpdate, once, watch           bool
		history                             int
		jsonConfigPath                      string
	)

	fs.StringVar(&apiBase, "api-base", "", "Remote REST root, e.g. https://api.github.com/repos/owner/repo")
	fs.StringVar(&rawBase, "raw-base", "", "Remote raw content root, e.g. https://raw.githubusercontent.com/owner/repo")
	fs.StringVarP(&track, "track", "t", "", "Release track (branch)")
	fs.StringVar(&pathPrefix, "path-prefix", "", "Directory of the localization files in the remote repository")
	fs.StringVar(&token, "token", "", "Bearer token for the remote API")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&retryCount, "retry-count", 0, "Retries per failed request")
	fs.DurationVar(&retryWait, "retry-wait", 0, "Pause between retries (e.g., 2s)")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header")
	fs.StringVarP(&localDir, "dir", "d", "", "Local localization directory")
	fs.StringVar(&journalDSN, "journal", "", "Sync journal SQLite file")
	fs.IntVar(&markerHistory, "marker-history", 0, "Version entries kept in config.xml")
	fs.StringVar(&schedule, "schedule", "", "Cron schedule used with --watch (e.g., \"@every 30m\")")
	fs.BoolVar(&noAutoUpdate, "no-auto-update", false, "Only download when config.xml is missing")
	fs.BoolVar(&once, "once", false, "Run a single pass and exit (default)")
	fs.BoolVarP(&watch, "watch", "w", false, "Run passes on the schedule until interrupted")
	fs.IntVar(&history, "history", 0, "Print the last N journal entries and exit")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		Remote: Remote{
			APIBase:    apiBase,
			RawBase:    rawBase,
			Track:      track,
			PathPrefix: pathPrefix,
		},
		Adapter: Adapter{
			Token:          token,
			RequestTimeout: requestTimeout,
			RetryWait:      retryWait,
			UserAgent:      userAgent,
		},
		Storage: Storage{
			LocalDir:      localDir,
			JournalDSN:    journalDSN,
			MarkerHistory: markerHistory,
		},
		Workers: Workers{
			Schedule:          schedule,
			DisableAutoUpdate: noAutoUpdate,
		},
		CLI: CLI{
			Once:    once,
			Watch:   watch,
			History: history,
		},
		JSONFilePath: jsonConfigPath,
	}

	// zero is a valid retry count, so only an explicit flag counts as set
	if fs.Changed("retry-count") {
		cfg.Adapter.RetryCount = &retryCount
	}

	return cfg, nil
}
