package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/models"
)

// journalRepository is the SQLite-backed [SyncJournal].
type journalRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncJournal(db *DB, logger *logger.Logger) SyncJournal {
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

func (j *journalRepository) Record(ctx context.Context, entry models.JournalEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertJournalEntryQuery(entry)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.Record").
			Str("run_id", entry.RunID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = j.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "journalRepository.Record").
			Str("run_id", entry.RunID).
			Msg("failed to insert journal entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// yields an empty result without touching the database.
func (j *journalRepository) Recent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return []models.JournalEntry{}, nil
	}

	query, args, err := buildSelectRecentJournalQuery(limit)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.Recent").
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.Recent").
			Int("limit", limit).
			Msg("failed to query journal entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, limit)
	for rows.Next() {
		var e models.JournalEntry
		if err = rows.Scan(
			&e.RunID,
			&e.Mode,
			&e.StartedAt,
			&e.FinishedAt,
			&e.Commits,
			&e.Files,
			&e.MarkerWritten,
			&e.Error,
		); err != nil {
			log.Err(err).
				Str("func", "journalRepository.Recent").
				Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "journalRepository.Recent").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
