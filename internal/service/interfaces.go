// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-lang-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FileSyncExecutor applies a single remote file change to the local directory.
type FileSyncExecutor interface {
	// Execute brings change.Path in line with the remote at ref (a commit id
	// or the track) and returns the terminal state reached.
	//
	// A non-nil error means the pass must be aborted. Note that
	// [models.FileSyncRedownloaded] can come with [ErrPatchFailed]: the file
	// is correct, but the patch chain is broken.
	Execute(ctx context.Context, ref string, change models.RemoteFileChange) (models.FileSyncState, error)
}

// SyncController runs synchronization passes.
type SyncController interface {
	// Synchronize runs one pass, or joins the pass already in flight.
	// With autoUpdate false only a missing manifest triggers any work.
	Synchronize(ctx context.Context, autoUpdate bool) (models.SyncOutcome, error)

	// SynchronizeAsync runs Synchronize in the background and calls done
	// exactly once with its result. done may be nil.
	SynchronizeAsync(ctx context.Context, autoUpdate bool, done func(models.SyncOutcome, error))

	// History returns up to limit recorded passes, newest first.
	History(ctx context.Context, limit int) ([]models.JournalEntry, error)
}
