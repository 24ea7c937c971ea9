// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to query the remote
// localization repository.
//
// The primary abstraction is [RemoteChangeFetcher], which decouples the
// synchronization services from the underlying REST API. The package ships a
// resty-based implementation for GitHub-shaped repositories
// ([NewHTTPRemoteFetcher]).
//
// Every transport failure and non-2xx response is reported as a
// [*NetworkError]. Callers match it with errors.Is against [ErrNetwork] or
// a status sentinel such as [ErrNotFound] or [ErrRateLimited].
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lang-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_fetcher_mock.go -package=mock

// RemoteChangeFetcher reads snapshots and change history from the remote
// repository. All paths are relative to the configured remote path prefix.
type RemoteChangeFetcher interface {
	// FetchSnapshotFile returns the raw content of name at ref, where ref is
	// the release track or a commit id.
	FetchSnapshotFile(ctx context.Context, ref, name string) ([]byte, error)

	// ListCommitsSince returns the ids of commits on track made after since,
	// newest first as delivered by the remote.
	ListCommitsSince(ctx context.Context, since time.Time, track string) ([]string, error)

	// FetchCommitDetail returns the file changes of commit id that fall under
	// the remote path prefix, in the order the remote lists them.
	FetchCommitDetail(ctx context.Context, id string) (models.RemoteCommit, error)
}
