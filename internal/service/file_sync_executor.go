package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lang-sync/internal/adapter"
	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/internal/patch"
	"github.com/MKhiriev/go-lang-sync/internal/store"
	"github.com/MKhiriev/go-lang-sync/models"
)

// execStep is a non-terminal step of the per-file state machine.
type execStep int

const (
	stepDispatch execStep = iota
	stepReadLocal
	stepPatch
	stepFetchFull
	stepWrite
	stepRemove
)

func (s execStep) String() string {
	switch s {
	case stepDispatch:
		return "dispatch"
	case stepReadLocal:
		return "read_local"
	case stepPatch:
		return "patch"
	case stepFetchFull:
		return "fetch_full"
	case stepWrite:
		return "write"
	case stepRemove:
		return "remove"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

type fileSyncExecutor struct {
	fetcher adapter.RemoteChangeFetcher
	files   store.LocalFiles
	logger  *logger.Logger
}

func NewFileSyncExecutor(fetcher adapter.RemoteChangeFetcher, files store.LocalFiles, logger *logger.Logger) FileSyncExecutor {
	return &fileSyncExecutor{
		fetcher: fetcher,
		files:   files,
		logger:  logger,
	}
}

// execution carries the data flowing between steps of one Execute call.
type execution struct {
	ref    string
	change models.RemoteFileChange
	path   string

	local   []byte
	content []byte

	// result is the state reported once the write succeeds.
	result models.FileSyncState
	// patchErr is reported together with a successful re-download.
	patchErr error
}

// Execute implements [FileSyncExecutor].
//
// Transitions:
//
//	dispatch   -> fetch_full (added) | read_local (modified) | remove (removed) | failed (unknown)
//	read_local -> fetch_full (file absent, redownloaded) | patch
//	patch      -> write (all hunks applied) | fetch_full (redownloaded + ErrPatchFailed)
//	fetch_full -> write | failed (network)
//	write      -> applied / redownloaded | failed (local io)
//	remove     -> applied | failed (local io)
func (e *fileSyncExecutor) Execute(ctx context.Context, ref string, change models.RemoteFileChange) (models.FileSyncState, error) {
	log := logger.FromContext(ctx)

	path, err := store.CleanPath(change.Path)
	if err != nil {
		log.Error().
			Str("func", "fileSyncExecutor.Execute").
			Str("path", change.Path).
			Msg("refusing unsafe path")
		return models.FileSyncFailed, err
	}

	x := &execution{ref: ref, change: change, path: path, result: models.FileSyncApplied}
	step := stepDispatch

	for {
		log.Trace().
			Str("func", "fileSyncExecutor.Execute").
			Str("path", path).
			Stringer("step", step).
			Msg("executor step")

		switch step {
		case stepDispatch:
			switch change.Status {
			case models.ChangeAdded:
				step = stepFetchFull
			case models.ChangeModified:
				step = stepReadLocal
			case models.ChangeRemoved:
				step = stepRemove
			default:
				log.Error().
					Str("func", "fileSyncExecutor.Execute").
					Str("path", path).
					Str("status", string(change.Status)).
					Msg("unknown change status")
				return models.FileSyncFailed, fmt.Errorf("%w: %q for %s", ErrUnknownChangeStatus, change.Status, path)
			}

		case stepReadLocal:
			exists, err := e.files.Exists(path)
			if err != nil {
				return models.FileSyncFailed, fmt.Errorf("check local %s: %w", path, err)
			}
			if !exists {
				log.Info().
					Str("func", "fileSyncExecutor.Execute").
					Str("path", path).
					Msg("modified file is missing locally, downloading it in full")
				x.result = models.FileSyncRedownloaded
				step = stepFetchFull
				continue
			}

			x.local, err = e.files.ReadFile(path)
			if err != nil {
				return models.FileSyncFailed, fmt.Errorf("read local %s: %w", path, err)
			}
			step = stepPatch

		case stepPatch:
			patched, reason := applyPatch(change.PatchText(), string(x.local))
			if reason != nil {
				log.Warn().
					Err(reason).
					Str("func", "fileSyncExecutor.Execute").
					Str("path", path).
					Str("commit", ref).
					Msg("patch failed, downloading file in full")
				x.result = models.FileSyncRedownloaded
				x.patchErr = fmt.Errorf("%w: %s at %s: %w", ErrPatchFailed, path, ref, reason)
				step = stepFetchFull
				continue
			}
			x.content = []byte(patched)
			step = stepWrite

		case stepFetchFull:
			data, err := e.fetcher.FetchSnapshotFile(ctx, ref, path)
			if err != nil {
				log.Err(err).
					Str("func", "fileSyncExecutor.Execute").
					Str("path", path).
					Str("ref", ref).
					Msg("failed to fetch file content")
				if x.patchErr != nil {
					return models.FileSyncFailed, fmt.Errorf("%w; redownload: %w", x.patchErr, err)
				}
				return models.FileSyncFailed, fmt.Errorf("fetch %s at %s: %w", path, ref, err)
			}
			x.content = data
			step = stepWrite

		case stepWrite:
			if err := e.files.WriteFile(path, x.content); err != nil {
				return models.FileSyncFailed, fmt.Errorf("write %s: %w", path, err)
			}
			log.Debug().
				Str("func", "fileSyncExecutor.Execute").
				Str("path", path).
				Str("state", string(x.result)).
				Msg("file synchronized")
			return x.result, x.patchErr

		case stepRemove:
			if err := e.files.Remove(path); err != nil {
				return models.FileSyncFailed, fmt.Errorf("remove %s: %w", path, err)
			}
			log.Debug().
				Str("func", "fileSyncExecutor.Execute").
				Str("path", path).
				Msg("file removed")
			return models.FileSyncApplied, nil

		default:
			return models.FileSyncFailed, fmt.Errorf("executor reached invalid step %s", step)
		}
	}
}

// applyPatch returns the patched text, or the reason the patch is unusable.
func applyPatch(patchText, original string) (string, error) {
	hunks, err := patch.Parse(patchText)
	if err != nil {
		return "", err
	}
	if len(hunks) == 0 {
		return "", fmt.Errorf("patch has no hunks")
	}

	res := patch.Apply(hunks, original)
	if !res.OK() {
		return "", fmt.Errorf("%d of %d hunks did not apply", countFalse(res.HunkApplied), len(hunks))
	}
	return res.NewText, nil
}

func countFalse(flags []bool) int {
	n := 0
	for _, ok := range flags {
		if !ok {
			n++
		}
	}
	return n
}
