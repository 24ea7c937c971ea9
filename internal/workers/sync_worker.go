// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/go-lang-sync/internal/config"
	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/internal/service"
	"github.com/MKhiriev/go-lang-sync/models"
)

var ErrWorkerRunning = errors.New("worker is already running")

// SyncWorker triggers a synchronization pass on a cron schedule and once
// right after Start. Ticks that fire while a pass is still running are
// skipped.
type SyncWorker struct {
	controller service.SyncController
	schedule   cron.Schedule
	autoUpdate bool
	logger     *logger.Logger

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker parses cfg.Schedule (standard 5-field spec or a descriptor
// such as "@every 30m").
func NewSyncWorker(controller service.SyncController, cfg config.Workers, logger *logger.Logger) (*SyncWorker, error) {
	schedule, err := cron.ParseStandard(cfg.Schedule)
	if err != nil {
		return nil, fmt.Errorf("parse sync schedule %q: %w", cfg.Schedule, err)
	}

	return newSyncWorker(controller, schedule, cfg.AutoUpdate(), logger), nil
}

func newSyncWorker(controller service.SyncController, schedule cron.Schedule, autoUpdate bool, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{
		controller: controller,
		schedule:   schedule,
		autoUpdate: autoUpdate,
		logger:     logger,
	}
}

func (w *SyncWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cron != nil {
		return ErrWorkerRunning
	}

	jobCtx, cancel := context.WithCancel(ctx)
	cronLog := cronLogger{w.logger}
	c := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	job := c.Schedule(w.schedule, cron.FuncJob(func() { w.tick(jobCtx) }))
	wrapped := c.Entry(job).WrappedJob

	w.cron = c
	w.cancel = cancel

	c.Start()

	// first pass right away, through the same chain as scheduled ones
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		wrapped.Run()
	}()

	w.logger.Info().
		Str("func", "SyncWorker.Start").
		Time("next", c.Entry(job).Next).
		Msg("sync worker started")
	return nil
}

// Stop stops scheduling and waits for a running pass to finish. Safe to call
// when the worker is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	c, cancel := w.cron, w.cancel
	w.cron, w.cancel = nil, nil
	w.mu.Unlock()

	if c == nil {
		return
	}

	<-c.Stop().Done()
	w.wg.Wait()
	cancel()

	w.logger.Info().Str("func", "SyncWorker.Stop").Msg("sync worker stopped")
}

func (w *SyncWorker) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	outcome, err := w.controller.Synchronize(ctx, w.autoUpdate)
	if err != nil {
		// already logged by the controller with the run id
		w.logger.Debug().
			Str("func", "SyncWorker.tick").
			Str("run_id", outcome.RunID).
			Msg("scheduled synchronization failed, will retry on next tick")
		return
	}

	if outcome.Mode != models.SyncModeNone {
		w.logger.Debug().
			Str("func", "SyncWorker.tick").
			Str("run_id", outcome.RunID).
			Str("mode", string(outcome.Mode)).
			Msg("scheduled synchronization finished")
	}
}

// cronLogger adapts the application logger to cron.Logger.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Trace().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
