// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lang-sync/internal/adapter"
	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/internal/mock"
	"github.com/MKhiriev/go-lang-sync/internal/store"
	"github.com/MKhiriev/go-lang-sync/internal/utils"
	"github.com/MKhiriev/go-lang-sync/models"
)

const (
	testTrack     = "master"
	remoteConfig  = `<config><version date="2026-01-01T00:00:00Z"/><language code="en_US"/><language code="fr_FR"/><language code="de_DE"/></config>`
	deRemote      = "menu.play=Spielen\n"
	seededMarker  = "2026-03-01T00:00:00Z"
	expectedStamp = "2026-03-10T12:00:00Z"
)

var (
	fixedNow   = time.Date(2026, 3, 10, 12, 0, 0, 700_000_000, time.UTC)
	seededTime = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
)

type fixedIDs struct{}

func (fixedIDs) Generate() string { return "run-test" }

type controllerFixture struct {
	fetcher  *mock.MockRemoteChangeFetcher
	files    store.LocalFiles
	versions store.VersionStore
	journal  *mock.MockSyncJournal

	controller *syncController

	mu         sync.Mutex
	entries    []models.JournalEntry
	journalErr error
}

func newControllerFixture(t *testing.T) *controllerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &controllerFixture{
		fetcher: mock.NewMockRemoteChangeFetcher(ctrl),
		files:   store.NewLocalFilesOn(memfs.New()),
		journal: mock.NewMockSyncJournal(ctrl),
	}
	f.versions = store.NewVersionStore(f.files, 0, logger.Nop())

	f.journal.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.JournalEntry) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.entries = append(f.entries, e)
			return f.journalErr
		}).AnyTimes()

	executor := NewFileSyncExecutor(f.fetcher, f.files, logger.Nop())
	c := NewSyncController(f.fetcher, f.versions, f.files, f.journal, executor, testTrack, logger.Nop()).(*syncController)
	c.now = func() time.Time { return fixedNow }
	c.ids = fixedIDs{}
	f.controller = c

	return f
}

func (f *controllerFixture) seed(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, f.files.WriteFile(name, []byte(content)))
}

func (f *controllerFixture) seedManifest(t *testing.T, date string) {
	t.Helper()
	f.seed(t, models.ManifestFileName,
		`<config><version date="`+date+`"/><language code="fr_FR"/></config>`)
}

func (f *controllerFixture) content(t *testing.T, name string) string {
	t.Helper()
	data, err := f.files.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}

func (f *controllerFixture) exists(t *testing.T, name string) bool {
	t.Helper()
	ok, err := f.files.Exists(name)
	require.NoError(t, err)
	return ok
}

func (f *controllerFixture) marker(t *testing.T) string {
	t.Helper()
	m, err := f.versions.ReadMarker()
	require.NoError(t, err)
	require.False(t, m.IsZero())
	return store.FormatMarker(*m.LastSyncedAt)
}

func (f *controllerFixture) journaled() []models.JournalEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.JournalEntry(nil), f.entries...)
}

func (f *controllerFixture) expectFullSnapshot() {
	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), testTrack, models.ManifestFileName).Return([]byte(remoteConfig), nil)
	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), testTrack, "fr_FR.lang").Return([]byte(frBefore), nil)
	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), testTrack, "de_DE.lang").Return([]byte(deRemote), nil)
}

func modified(path, patchText string) models.RemoteFileChange {
	return models.RemoteFileChange{Path: path, Status: models.ChangeModified, Patch: strPtr(patchText)}
}

// ── FullSync ─────────────────────────────────────────────────────────────────

func TestSynchronize_FirstRun_FullSync(t *testing.T) {
	f := newControllerFixture(t)
	f.expectFullSnapshot()

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, models.SyncModeFull, outcome.Mode)
	assert.Equal(t, "run-test", outcome.RunID)
	assert.True(t, outcome.MarkerWritten)
	assert.Equal(t, 3, outcome.Files)
	assert.Equal(t, 0, outcome.Commits)

	assert.Equal(t, frBefore, f.content(t, "fr_FR.lang"))
	assert.Equal(t, deRemote, f.content(t, "de_DE.lang"))
	assert.False(t, f.exists(t, "en_US.lang"))
	assert.Equal(t, expectedStamp, f.marker(t))

	locales, err := f.versions.ReadLocales()
	require.NoError(t, err)
	assert.Equal(t, []models.LocaleDescriptor{{Code: "fr_FR"}, {Code: "de_DE"}}, locales)

	entries := f.journaled()
	require.Len(t, entries, 1)
	assert.Equal(t, models.SyncModeFull, entries[0].Mode)
	assert.True(t, entries[0].MarkerWritten)
	assert.Empty(t, entries[0].Error)
}

func TestSynchronize_FirstRun_IgnoresAutoUpdateFlag(t *testing.T) {
	f := newControllerFixture(t)
	f.expectFullSnapshot()

	outcome, err := f.controller.Synchronize(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, models.SyncModeFull, outcome.Mode)
	assert.Equal(t, expectedStamp, f.marker(t))
}

func TestSynchronize_MalformedManifest_FullSync(t *testing.T) {
	f := newControllerFixture(t)
	f.seed(t, models.ManifestFileName, "<config><version")
	f.expectFullSnapshot()

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncModeFull, outcome.Mode)
	assert.Equal(t, expectedStamp, f.marker(t))
}

func TestSynchronize_UnparseableMarker_FullSync(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, "sometime last week")
	f.expectFullSnapshot()

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncModeFull, outcome.Mode)
	assert.Equal(t, expectedStamp, f.marker(t))
}

func TestSynchronize_FullSync_NetworkErrorWritesNothing(t *testing.T) {
	f := newControllerFixture(t)

	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), testTrack, models.ManifestFileName).Return([]byte(remoteConfig), nil)
	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), testTrack, "fr_FR.lang").Return([]byte(frBefore), nil)
	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), testTrack, "de_DE.lang").
		Return(nil, &adapter.NetworkError{Status: 500, Err: adapter.ErrServer})

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncAborted)
	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.False(t, outcome.MarkerWritten)
	assert.Equal(t, err, outcome.Err)

	assert.False(t, f.exists(t, "fr_FR.lang"))
	assert.False(t, f.exists(t, models.ManifestFileName))

	_, err = f.versions.ReadMarker()
	assert.ErrorIs(t, err, store.ErrConfigMissing)

	entries := f.journaled()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Error, "synchronization aborted")
}

func TestSynchronize_FullSync_MalformedRemoteManifest(t *testing.T) {
	f := newControllerFixture(t)
	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), testTrack, models.ManifestFileName).Return([]byte("<html>"), nil)

	_, err := f.controller.Synchronize(context.Background(), true)
	assert.ErrorIs(t, err, store.ErrManifestMalformed)
	assert.ErrorIs(t, err, ErrSyncAborted)
}

// ── IncrementalSync ──────────────────────────────────────────────────────────

func TestSynchronize_Incremental_OldestFirst(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)
	f.seed(t, "fr_FR.lang", frBefore)

	playPatch := lines(
		"@@ -1,1 +1,1 @@",
		"-menu.play=Jouer",
		"+menu.play=Lancer",
	)

	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).Return([]string{"c3", "c2", "c1"}, nil)
	gomock.InOrder(
		f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c1").Return(models.RemoteCommit{
			ID:    "c1",
			Files: []models.RemoteFileChange{modified("fr_FR.lang", frQuitPatch)},
		}, nil),
		f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c2").Return(models.RemoteCommit{
			ID:    "c2",
			Files: []models.RemoteFileChange{{Path: "de_DE.lang", Status: models.ChangeAdded}},
		}, nil),
		f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), "c2", "de_DE.lang").Return([]byte(deRemote), nil),
		f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c3").Return(models.RemoteCommit{
			ID:    "c3",
			Files: []models.RemoteFileChange{modified("fr_FR.lang", playPatch)},
		}, nil),
	)

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, models.SyncModeIncremental, outcome.Mode)
	assert.Equal(t, 3, outcome.Commits)
	assert.Equal(t, 3, outcome.Files)
	assert.True(t, outcome.MarkerWritten)

	assert.Equal(t, "menu.play=Lancer\nmenu.options=Options\nmenu.quit=Sortir\nmenu.back=Retour\n", f.content(t, "fr_FR.lang"))
	assert.Equal(t, deRemote, f.content(t, "de_DE.lang"))
	assert.Equal(t, expectedStamp, f.marker(t))
}

func TestSynchronize_Incremental_NoCommitsAdvancesMarker(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)

	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).Return([]string{}, nil)

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncModeIncremental, outcome.Mode)
	assert.Equal(t, 0, outcome.Files)
	assert.Equal(t, expectedStamp, f.marker(t))
}

func TestSynchronize_Incremental_ListFailureFallsBackToFull(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)

	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), gomock.Any(), testTrack).
		Return(nil, &adapter.NetworkError{Status: 429, Err: adapter.ErrRateLimited})
	f.expectFullSnapshot()

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncModeFull, outcome.Mode)
	assert.Equal(t, frBefore, f.content(t, "fr_FR.lang"))
	assert.Equal(t, expectedStamp, f.marker(t))
}

func TestSynchronize_Incremental_MissingLocalFileRedownloads(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)

	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).Return([]string{"c1"}, nil)
	f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c1").Return(models.RemoteCommit{
		ID:    "c1",
		Files: []models.RemoteFileChange{modified("fr_FR.lang", frQuitPatch)},
	}, nil)
	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), "c1", "fr_FR.lang").Return([]byte(frAfter), nil)

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Files)
	assert.Equal(t, frAfter, f.content(t, "fr_FR.lang"))
	assert.Equal(t, expectedStamp, f.marker(t))
}

func TestSynchronize_Incremental_EmptyHunksAbortPass(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)
	f.seed(t, "fr_FR.lang", frBefore)

	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).Return([]string{"c2", "c1"}, nil)
	f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c1").Return(models.RemoteCommit{
		ID:    "c1",
		Files: []models.RemoteFileChange{modified("fr_FR.lang", "")},
	}, nil)
	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), "c1", "fr_FR.lang").Return([]byte(frRemote), nil)
	// c2 must never be fetched
	f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c2").Times(0)

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncAborted)
	assert.ErrorIs(t, err, ErrPatchFailed)

	assert.False(t, outcome.MarkerWritten)
	assert.Equal(t, 0, outcome.Commits)
	assert.Equal(t, 1, outcome.Files)
	assert.Equal(t, frRemote, f.content(t, "fr_FR.lang"))
	assert.Equal(t, seededMarker, f.marker(t))
}

func TestSynchronize_Incremental_UnknownStatusAbortsPass(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)

	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).Return([]string{"c1"}, nil)
	f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c1").Return(models.RemoteCommit{
		ID: "c1",
		Files: []models.RemoteFileChange{
			{Path: "fr_FR.lang", Status: "renamed"},
			{Path: "de_DE.lang", Status: models.ChangeAdded},
		},
	}, nil)

	_, err := f.controller.Synchronize(context.Background(), true)
	assert.ErrorIs(t, err, ErrUnknownChangeStatus)
	assert.False(t, f.exists(t, "de_DE.lang"))
	assert.Equal(t, seededMarker, f.marker(t))
}

func TestSynchronize_Incremental_CommitDetailErrorAborts(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)

	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).Return([]string{"c1"}, nil)
	f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c1").
		Return(models.RemoteCommit{}, &adapter.NetworkError{Err: adapter.ErrTransport})

	_, err := f.controller.Synchronize(context.Background(), true)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, seededMarker, f.marker(t))
}

func TestSynchronize_Incremental_AddedThenRemoved(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)

	commits := func() {
		f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), gomock.Any(), testTrack).Return([]string{"c2", "c1"}, nil)
		f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c1").Return(models.RemoteCommit{
			ID:    "c1",
			Files: []models.RemoteFileChange{{Path: "it_IT.lang", Status: models.ChangeAdded}},
		}, nil)
		f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), "c1", "it_IT.lang").Return([]byte("a=b\n"), nil)
		f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c2").Return(models.RemoteCommit{
			ID:    "c2",
			Files: []models.RemoteFileChange{{Path: "it_IT.lang", Status: models.ChangeRemoved}},
		}, nil)
	}

	commits()
	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Commits)
	assert.False(t, f.exists(t, "it_IT.lang"))

	// replaying the same commit sequence converges to the same state
	commits()
	_, err = f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, f.exists(t, "it_IT.lang"))
}

// catalog renders a locale file with entries first..last whose values are
// long enough to defeat character-level context matching.
func catalog(first, last int) string {
	var b strings.Builder
	for n := first; n <= last; n++ {
		fmt.Fprintf(&b, "key.%03d=a reasonably long translated value for entry %d\n", n, n)
	}
	return b.String()
}

const catalogEdit = "key.100=the value of entry 100 after the remote edit\n"

var catalogPatch = lines(
	"@@ -99,3 +99,3 @@",
	" key.099=a reasonably long translated value for entry 99",
	"-key.100=a reasonably long translated value for entry 100",
	"+"+strings.TrimSuffix(catalogEdit, "\n"),
	" key.101=a reasonably long translated value for entry 101",
)

func catalogAfterEdit(text string) string {
	return strings.Replace(text, "key.100=a reasonably long translated value for entry 100\n", catalogEdit, 1)
}

func TestSynchronize_Incremental_DriftedLocalFilePatchesExactly(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)

	local := "local.a=first line only this install has\n" +
		"local.b=second line only this install has\n" +
		"local.c=third line only this install has\n" +
		catalog(1, 200)
	f.seed(t, "fr_FR.lang", local)

	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).Return([]string{"c1"}, nil)
	f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c1").Return(models.RemoteCommit{
		ID:    "c1",
		Files: []models.RemoteFileChange{modified("fr_FR.lang", catalogPatch)},
	}, nil)
	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Files)
	assert.Equal(t, catalogAfterEdit(local), f.content(t, "fr_FR.lang"))
	assert.Equal(t, expectedStamp, f.marker(t))
}

func TestSynchronize_Incremental_ReplayedEditRedownloads(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)

	// the edit is already on disk, so the patch cannot apply a second time
	edited := catalogAfterEdit(catalog(1, 200))
	f.seed(t, "fr_FR.lang", edited)

	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).Return([]string{"c1"}, nil)
	f.fetcher.EXPECT().FetchCommitDetail(gomock.Any(), "c1").Return(models.RemoteCommit{
		ID:    "c1",
		Files: []models.RemoteFileChange{modified("fr_FR.lang", catalogPatch)},
	}, nil)
	f.fetcher.EXPECT().FetchSnapshotFile(gomock.Any(), "c1", "fr_FR.lang").Return([]byte(edited), nil)

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPatchFailed)
	assert.False(t, outcome.MarkerWritten)

	assert.Equal(t, edited, f.content(t, "fr_FR.lang"))
	assert.Equal(t, seededMarker, f.marker(t))
}

func TestSynchronize_FullThenEmptyIncrementalIsStable(t *testing.T) {
	f := newControllerFixture(t)
	f.expectFullSnapshot()

	first, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)
	require.Equal(t, models.SyncModeFull, first.Mode)

	fr := f.content(t, "fr_FR.lang")
	de := f.content(t, "de_DE.lang")
	locales, err := f.versions.ReadLocales()
	require.NoError(t, err)

	later := fixedNow.Add(time.Hour)
	f.controller.now = func() time.Time { return later }
	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), fixedNow.Truncate(time.Second), testTrack).Return(nil, nil)

	second, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncModeIncremental, second.Mode)
	assert.Equal(t, 0, second.Files)
	assert.True(t, second.MarkerWritten)

	assert.Equal(t, fr, f.content(t, "fr_FR.lang"))
	assert.Equal(t, de, f.content(t, "de_DE.lang"))
	again, err := f.versions.ReadLocales()
	require.NoError(t, err)
	assert.Equal(t, locales, again)

	assert.Equal(t, "2026-03-10T13:00:00Z", f.marker(t))
}

func TestSynchronize_AutoUpdateDisabled_NoOp(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)
	f.seed(t, "fr_FR.lang", frBefore)

	outcome, err := f.controller.Synchronize(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, models.SyncModeNone, outcome.Mode)
	assert.False(t, outcome.MarkerWritten)
	assert.Equal(t, frBefore, f.content(t, "fr_FR.lang"))
	assert.Equal(t, seededMarker, f.marker(t))

	entries := f.journaled()
	require.Len(t, entries, 1)
	assert.Equal(t, models.SyncModeNone, entries[0].Mode)
}

// ── Finalizing / journal ─────────────────────────────────────────────────────

func TestSynchronize_JournalFailureIsTolerated(t *testing.T) {
	f := newControllerFixture(t)
	f.journalErr = errors.New("database is locked")
	f.expectFullSnapshot()

	outcome, err := f.controller.Synchronize(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, outcome.MarkerWritten)
}

func TestSynchronize_JournalSeesRunIDInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	versions := mock.NewMockVersionStore(ctrl)
	journal := mock.NewMockSyncJournal(ctrl)

	c := NewSyncController(nil, versions, nil, journal, nil, testTrack, logger.Nop()).(*syncController)
	c.ids = fixedIDs{}

	versions.EXPECT().ReadMarker().Return(models.SyncMarker{LastSyncedAt: &seededTime}, nil)
	journal.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e models.JournalEntry) error {
			id, ok := utils.GetRunIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "run-test", id)
			assert.Equal(t, "run-test", e.RunID)
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Synchronize(ctx, false)
	require.NoError(t, err)
}

func TestSynchronize_MarkerWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockRemoteChangeFetcher(ctrl)
	versions := mock.NewMockVersionStore(ctrl)

	c := NewSyncController(fetcher, versions, nil, nil, nil, testTrack, logger.Nop()).(*syncController)
	c.now = func() time.Time { return fixedNow }

	diskErr := errors.New("read-only file system")
	versions.EXPECT().ReadMarker().Return(models.SyncMarker{LastSyncedAt: &seededTime}, nil)
	fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).Return(nil, nil)
	versions.EXPECT().WriteMarker(fixedNow).Return(diskErr)

	outcome, err := c.Synchronize(context.Background(), true)
	assert.ErrorIs(t, err, diskErr)
	assert.ErrorIs(t, err, ErrSyncAborted)
	assert.False(t, outcome.MarkerWritten)
}

func TestSynchronize_ReadMarkerIOErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	versions := mock.NewMockVersionStore(ctrl)

	c := NewSyncController(nil, versions, nil, nil, nil, testTrack, logger.Nop())

	ioErr := errors.New("permission denied")
	versions.EXPECT().ReadMarker().Return(models.SyncMarker{}, ioErr)

	_, err := c.Synchronize(context.Background(), true)
	assert.ErrorIs(t, err, ioErr)
	assert.ErrorIs(t, err, ErrSyncAborted)
}

// ── single-flight / async ────────────────────────────────────────────────────

func TestSynchronize_ConcurrentCallersShareOnePass(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).
		DoAndReturn(func(context.Context, time.Time, string) ([]string, error) {
			close(entered)
			<-release
			return nil, nil
		}).Times(1)

	var wg sync.WaitGroup
	results := make([]models.SyncOutcome, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = f.controller.Synchronize(context.Background(), true)
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = f.controller.Synchronize(context.Background(), true)
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, results[0], results[1])
	assert.Len(t, f.journaled(), 1)
}

func TestSynchronizeAsync_CallsDoneOnce(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)
	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).Return(nil, nil)

	var calls atomic.Int32
	done := make(chan models.SyncOutcome, 1)
	f.controller.SynchronizeAsync(context.Background(), true, func(o models.SyncOutcome, err error) {
		calls.Add(1)
		assert.NoError(t, err)
		done <- o
	})

	select {
	case o := <-done:
		assert.Equal(t, models.SyncModeIncremental, o.Mode)
	case <-time.After(2 * time.Second):
		t.Fatal("done callback was not called")
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestSynchronizeAsync_NilDone(t *testing.T) {
	f := newControllerFixture(t)
	f.seedManifest(t, seededMarker)

	finished := make(chan struct{})
	f.fetcher.EXPECT().ListCommitsSince(gomock.Any(), seededTime, testTrack).
		DoAndReturn(func(context.Context, time.Time, string) ([]string, error) {
			defer close(finished)
			return nil, nil
		})

	assert.NotPanics(t, func() { f.controller.SynchronizeAsync(context.Background(), true, nil) })
	<-finished
	assert.Eventually(t, func() bool { return len(f.journaled()) == 1 }, time.Second, 5*time.Millisecond)
}

// ── History ──────────────────────────────────────────────────────────────────

func TestHistory(t *testing.T) {
	f := newControllerFixture(t)

	want := []models.JournalEntry{{RunID: "r2"}, {RunID: "r1"}}
	f.journal.EXPECT().Recent(gomock.Any(), 2).Return(want, nil)

	got, err := f.controller.History(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHistory_NoJournal(t *testing.T) {
	c := NewSyncController(nil, nil, nil, nil, nil, testTrack, logger.Nop())

	got, err := c.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
