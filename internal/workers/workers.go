package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lang-sync/internal/config"
	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of watch mode.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	syncWorker, err := NewSyncWorker(services.SyncController, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Workers{workers: []Worker{syncWorker}}, nil
}

// Start starts every worker in order. If one fails, the ones already started
// are stopped again.
func (w *Workers) Start(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := worker.Start(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				w.workers[j].Stop()
			}
			return fmt.Errorf("start worker %d: %w", i, err)
		}
	}
	return nil
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
