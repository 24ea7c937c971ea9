// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-lang-sync/models"
)

const journalTable = "sync_journal"

var journalColumns = []string{
	"run_id",
	"mode",
	"started_at",
	"finished_at",
	"commits",
	"files",
	"marker_written",
	"error",
}

// sqlite uses '?' placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertJournalEntryQuery(entry models.JournalEntry) (string, []any, error) {
	return psql.
		Insert(journalTable).
		Columns(journalColumns...).
		Values(
			entry.RunID,
			string(entry.Mode),
			entry.StartedAt.UTC(),
			entry.FinishedAt,
			entry.Commits,
			entry.Files,
			entry.MarkerWritten,
			entry.Error,
		).
		ToSql()
}

func buildSelectRecentJournalQuery(limit int) (string, []any, error) {
	return psql.
		Select(journalColumns...).
		From(journalTable).
		OrderBy("started_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}
