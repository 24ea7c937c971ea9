package store

import "errors"

// Sentinel errors returned by the local storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrConfigMissing is returned by [VersionStore.ReadMarker] when the
	// manifest file does not exist. It means "first run", not a failure.
	ErrConfigMissing = errors.New("local manifest is missing")

	// ErrManifestMalformed is returned when the manifest exists but cannot be
	// decoded as a <config> document.
	ErrManifestMalformed = errors.New("local manifest is malformed")

	// ErrFileNotFound is returned by [LocalFiles.ReadFile] for absent files.
	ErrFileNotFound = errors.New("local file not found")

	// ErrUnsafePath is returned for paths that are absolute or escape the
	// local directory.
	ErrUnsafePath = errors.New("unsafe local path")
)

// Journal repository errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// journal database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning journal rows fails.
	ErrScanningRows = errors.New("failed to scan journal rows")
)
