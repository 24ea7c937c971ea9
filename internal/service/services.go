package service

import (
	"github.com/MKhiriev/go-lang-sync/internal/adapter"
	"github.com/MKhiriev/go-lang-sync/internal/config"
	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/internal/store"
)

type Services struct {
	FileSyncExecutor FileSyncExecutor
	SyncController   SyncController
}

func NewServices(storages *store.Storages, fetcher adapter.RemoteChangeFetcher, cfg config.Remote, logger *logger.Logger) *Services {
	executor := NewFileSyncExecutor(fetcher, storages.Files, logger)

	return &Services{
		FileSyncExecutor: executor,
		SyncController: NewSyncController(
			fetcher,
			storages.Versions,
			storages.Files,
			storages.Journal,
			executor,
			cfg.Track,
			logger,
		),
	}
}
