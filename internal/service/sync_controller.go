// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-lang-sync/internal/adapter"
	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/internal/store"
	"github.com/MKhiriev/go-lang-sync/internal/utils"
	"github.com/MKhiriev/go-lang-sync/models"
)

const syncFlightKey = "sync"

type runIDGenerator interface {
	Generate() string
}

type syncController struct {
	fetcher  adapter.RemoteChangeFetcher
	versions store.VersionStore
	files    store.LocalFiles
	journal  store.SyncJournal
	executor FileSyncExecutor

	track string
	ids   runIDGenerator
	now   func() time.Time

	group  singleflight.Group
	logger *logger.Logger
}

// NewSyncController wires a [SyncController]. journal may be nil, in which
// case passes are not recorded and History is always empty.
func NewSyncController(
	fetcher adapter.RemoteChangeFetcher,
	versions store.VersionStore,
	files store.LocalFiles,
	journal store.SyncJournal,
	executor FileSyncExecutor,
	track string,
	logger *logger.Logger,
) SyncController {
	return &syncController{
		fetcher:  fetcher,
		versions: versions,
		files:    files,
		journal:  journal,
		executor: executor,
		track:    track,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

// Synchronize implements [SyncController]. Concurrent callers share one pass:
// the pass runs with the context and autoUpdate of the caller that started it.
func (c *syncController) Synchronize(ctx context.Context, autoUpdate bool) (models.SyncOutcome, error) {
	v, err, shared := c.group.Do(syncFlightKey, func() (any, error) {
		return c.run(ctx, autoUpdate)
	})
	if shared {
		c.logger.Debug().
			Str("func", "syncController.Synchronize").
			Msg("joined a synchronization pass already in flight")
	}

	outcome, _ := v.(models.SyncOutcome)
	return outcome, err
}

func (c *syncController) SynchronizeAsync(ctx context.Context, autoUpdate bool, done func(models.SyncOutcome, error)) {
	go func() {
		outcome, err := c.Synchronize(ctx, autoUpdate)
		if done != nil {
			done(outcome, err)
		}
	}()
}

func (c *syncController) History(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	if c.journal == nil {
		return []models.JournalEntry{}, nil
	}
	return c.journal.Recent(ctx, limit)
}

// run performs Idle -> DecidingMode -> FullSync | IncrementalSync -> Finalizing,
// or stops in Aborted on the first unrecoverable error.
func (c *syncController) run(ctx context.Context, autoUpdate bool) (models.SyncOutcome, error) {
	outcome := models.SyncOutcome{
		RunID:     c.ids.Generate(),
		StartedAt: c.now().UTC(),
	}

	log := c.logger.WithRun(outcome.RunID)
	ctx = utils.WithRunID(log.WithContext(ctx), outcome.RunID)

	log.Info().
		Str("func", "syncController.run").
		Bool("auto_update", autoUpdate).
		Msg("synchronization pass started")

	err := c.execute(ctx, autoUpdate, &outcome)
	outcome.FinishedAt = c.now().UTC()

	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSyncAborted, err)
		outcome.Err = err
		log.Err(err).
			Str("func", "syncController.run").
			Str("mode", string(outcome.Mode)).
			Int("commits", outcome.Commits).
			Int("files", outcome.Files).
			Msg("synchronization pass aborted, marker not advanced")
	} else {
		log.Info().
			Str("func", "syncController.run").
			Str("mode", string(outcome.Mode)).
			Int("commits", outcome.Commits).
			Int("files", outcome.Files).
			Bool("marker_written", outcome.MarkerWritten).
			Dur("took", outcome.FinishedAt.Sub(outcome.StartedAt)).
			Msg("synchronization pass finished")
	}

	c.record(ctx, outcome)
	return outcome, err
}

func (c *syncController) execute(ctx context.Context, autoUpdate bool, outcome *models.SyncOutcome) error {
	mode, marker, err := c.decideMode(ctx, autoUpdate)
	if err != nil {
		return err
	}
	outcome.Mode = mode

	switch mode {
	case models.SyncModeNone:
		return nil
	case models.SyncModeIncremental:
		err = c.incrementalSync(ctx, *marker.LastSyncedAt, outcome)
		if errors.Is(err, errListCommits) {
			logger.FromContext(ctx).Warn().
				Err(err).
				Str("func", "syncController.execute").
				Msg("falling back to full synchronization")
			outcome.Mode = models.SyncModeFull
			err = c.fullSync(ctx, outcome)
		}
	case models.SyncModeFull:
		err = c.fullSync(ctx, outcome)
	default:
		err = fmt.Errorf("unsupported sync mode %q", mode)
	}
	if err != nil {
		return err
	}

	return c.finalize(ctx, outcome)
}

func (c *syncController) decideMode(ctx context.Context, autoUpdate bool) (models.SyncMode, models.SyncMarker, error) {
	log := logger.FromContext(ctx)

	marker, err := c.versions.ReadMarker()
	switch {
	case errors.Is(err, store.ErrConfigMissing):
		log.Info().Str("func", "syncController.decideMode").Msg("no local manifest, full synchronization required")
		return models.SyncModeFull, marker, nil
	case errors.Is(err, store.ErrManifestMalformed):
		log.Warn().Err(err).Str("func", "syncController.decideMode").Msg("local manifest unreadable, full synchronization required")
		return models.SyncModeFull, marker, nil
	case err != nil:
		return "", marker, fmt.Errorf("read sync marker: %w", err)
	}

	if !autoUpdate {
		log.Debug().Str("func", "syncController.decideMode").Msg("auto-update disabled, nothing to do")
		return models.SyncModeNone, marker, nil
	}
	if marker.IsZero() {
		return models.SyncModeFull, marker, nil
	}
	return models.SyncModeIncremental, marker, nil
}

// errListCommits marks a commit list failure, which degrades to a full pass.
var errListCommits = errors.New("list commits")

func (c *syncController) incrementalSync(ctx context.Context, since time.Time, outcome *models.SyncOutcome) error {
	log := logger.FromContext(ctx)

	ids, err := c.fetcher.ListCommitsSince(ctx, since, c.track)
	if err != nil {
		return fmt.Errorf("%w: %w", errListCommits, err)
	}
	slices.Reverse(ids)

	log.Debug().
		Str("func", "syncController.incrementalSync").
		Time("since", since).
		Int("commits", len(ids)).
		Msg("applying remote commits oldest first")

	for _, id := range ids {
		commit, err := c.fetcher.FetchCommitDetail(ctx, id)
		if err != nil {
			return fmt.Errorf("fetch commit %s: %w", id, err)
		}

		for _, change := range commit.Files {
			state, err := c.executor.Execute(ctx, commit.ID, change)
			if state == models.FileSyncApplied || state == models.FileSyncRedownloaded {
				outcome.Files++
			}
			if err != nil {
				return fmt.Errorf("commit %s, file %s: %w", commit.ID, change.Path, err)
			}
		}
		outcome.Commits++
	}

	return nil
}

// fullSync downloads the remote manifest and every locale it lists. All
// content is fetched before the first local write, so a network failure
// leaves the local directory untouched.
func (c *syncController) fullSync(ctx context.Context, outcome *models.SyncOutcome) error {
	log := logger.FromContext(ctx)

	rawManifest, err := c.fetcher.FetchSnapshotFile(ctx, c.track, models.ManifestFileName)
	if err != nil {
		return fmt.Errorf("fetch remote manifest: %w", err)
	}
	manifest, err := store.ParseManifest(rawManifest)
	if err != nil {
		return fmt.Errorf("remote manifest: %w", err)
	}

	locales := store.LocalesOf(manifest)
	contents := make([][]byte, len(locales))
	for i, locale := range locales {
		contents[i], err = c.fetcher.FetchSnapshotFile(ctx, c.track, locale.FileName())
		if err != nil {
			return fmt.Errorf("fetch locale %s: %w", locale.Code, err)
		}
	}

	for i, locale := range locales {
		if err = c.files.WriteFile(locale.FileName(), contents[i]); err != nil {
			return fmt.Errorf("write locale %s: %w", locale.Code, err)
		}
		outcome.Files++
	}
	if err = c.files.WriteFile(models.ManifestFileName, rawManifest); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	outcome.Files++

	log.Debug().
		Str("func", "syncController.fullSync").
		Int("locales", len(locales)).
		Msg("full snapshot written")
	return nil
}

func (c *syncController) finalize(ctx context.Context, outcome *models.SyncOutcome) error {
	if err := c.versions.WriteMarker(outcome.StartedAt); err != nil {
		return fmt.Errorf("write sync marker: %w", err)
	}
	outcome.MarkerWritten = true

	logger.FromContext(ctx).Debug().
		Str("func", "syncController.finalize").
		Str("marker", store.FormatMarker(outcome.StartedAt)).
		Msg("sync marker advanced")
	return nil
}

// record stores outcome in the journal. Journal failures never fail a pass.
func (c *syncController) record(ctx context.Context, outcome models.SyncOutcome) {
	if c.journal == nil {
		return
	}

	if err := c.journal.Record(context.WithoutCancel(ctx), models.NewJournalEntry(outcome)); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "syncController.record").
			Msg("failed to record synchronization pass")
	}
}
