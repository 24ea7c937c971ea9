// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lang-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalFiles is the filesystem port over the local localization directory.
// All names are slash-separated and relative to that directory.
type LocalFiles interface {
	// Exists reports whether name is present.
	Exists(name string) (bool, error)

	// ReadFile returns the content of name, or [ErrFileNotFound].
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces name with data atomically: a reader never observes
	// a partially written file. Parent directories are created as needed.
	WriteFile(name string, data []byte) error

	// Remove deletes name. Removing an absent file is not an error.
	Remove(name string) error
}

// VersionStore reads and writes the synchronization marker and the tracked
// locale list kept in the local manifest.
type VersionStore interface {
	// ReadMarker returns the authoritative (first) version entry.
	// Returns [ErrConfigMissing] when the manifest does not exist and
	// [ErrManifestMalformed] when it cannot be decoded. An empty or
	// unparseable date yields a zero marker without error.
	ReadMarker() (models.SyncMarker, error)

	// ReadLocales returns the tracked locales, excluding the default locale.
	ReadLocales() ([]models.LocaleDescriptor, error)

	// WriteMarker records t as the new authoritative version entry ahead of
	// all previous ones.
	WriteMarker(t time.Time) error
}

// SyncJournal keeps a diagnostic history of synchronization passes.
type SyncJournal interface {
	// Record stores the summary of one finished pass.
	Record(ctx context.Context, entry models.JournalEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.JournalEntry, error)
}
