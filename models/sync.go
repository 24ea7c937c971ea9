// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultLocale is the source locale of the remote repository. It is never
// tracked as a downloadable locale.
const DefaultLocale = "en_US"

// LocaleFileExt is the suffix of every locale file in the local directory.
const LocaleFileExt = ".lang"

// SyncMarker is the locally persisted point of the last fully successful
// synchronization pass.
type SyncMarker struct {
	// LastSyncedAt is the UTC start time of the last successful pass.
	// Nil means the local set was never synchronized (or the stored date is
	// unusable) and a full snapshot is required.
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// IsZero reports whether the marker carries no usable timestamp.
func (m SyncMarker) IsZero() bool {
	return m.LastSyncedAt == nil || m.LastSyncedAt.IsZero()
}

// LocaleDescriptor identifies one tracked non-default locale.
type LocaleDescriptor struct {
	Code string `json:"code"`
}

// FileName returns the name of the locale file inside the local directory.
func (l LocaleDescriptor) FileName() string {
	return l.Code + LocaleFileExt
}

// SyncMode tells which path a synchronization pass took.
type SyncMode string

const (
	SyncModeNone        SyncMode = "none"
	SyncModeFull        SyncMode = "full"
	SyncModeIncremental SyncMode = "incremental"
)

// SyncOutcome summarises one synchronization pass. It is returned to the
// caller of Synchronize and recorded in the sync journal.
type SyncOutcome struct {
	RunID      string    `json:"run_id"`
	Mode       SyncMode  `json:"mode"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Commits is the number of remote commits fully processed.
	Commits int `json:"commits"`
	// Files is the number of local files written or removed.
	Files int `json:"files"`
	// MarkerWritten is true only after Finalizing succeeded.
	MarkerWritten bool `json:"marker_written"`

	// Err is the reason the pass aborted, nil on success.
	Err error `json:"-"`
}

// Succeeded reports whether the pass completed without error.
func (o SyncOutcome) Succeeded() bool {
	return o.Err == nil
}
