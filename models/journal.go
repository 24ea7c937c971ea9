package models

import "time"

// JournalEntry is one row of the local sync journal.
type JournalEntry struct {
	RunID         string     `json:"run_id"`
	Mode          SyncMode   `json:"mode"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	Commits       int        `json:"commits"`
	Files         int        `json:"files"`
	MarkerWritten bool       `json:"marker_written"`
	Error         string     `json:"error,omitempty"`
}

// NewJournalEntry converts a finished pass into its journal row.
func NewJournalEntry(o SyncOutcome) JournalEntry {
	finished := o.FinishedAt
	entry := JournalEntry{
		RunID:         o.RunID,
		Mode:          o.Mode,
		StartedAt:     o.StartedAt,
		FinishedAt:    &finished,
		Commits:       o.Commits,
		Files:         o.Files,
		MarkerWritten: o.MarkerWritten,
	}
	if o.Err != nil {
		entry.Error = o.Err.Error()
	}
	return entry
}
