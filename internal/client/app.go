package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MKhiriev/go-lang-sync/internal/config"
	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/internal/service"
	"github.com/MKhiriev/go-lang-sync/internal/store"
	"github.com/MKhiriev/go-lang-sync/internal/workers"
	"github.com/MKhiriev/go-lang-sync/models"
)

var errNoSyncController = errors.New("sync controller is not configured")

type App struct {
	controller service.SyncController
	versions   store.VersionStore
	workers    workers.Worker

	cli        config.CLI
	autoUpdate bool

	out    io.Writer
	logger *logger.Logger
}

// NewApp builds the application. bg is only started in watch mode and may be
// nil otherwise.
func NewApp(services *service.Services, versions store.VersionStore, bg workers.Worker, cfg *config.SyncConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.SyncController == nil {
		return nil, errNoSyncController
	}
	if cfg.CLI.Watch && bg == nil {
		return nil, errors.New("watch mode requires background workers")
	}

	return &App{
		controller: services.SyncController,
		versions:   versions,
		workers:    bg,
		cli:        cfg.CLI,
		autoUpdate: cfg.Workers.AutoUpdate(),
		out:        out,
		logger:     logger,
	}, nil
}

// Run runs the configured mode until it completes or the process receives
// SIGINT, SIGTERM or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	switch {
	case a.cli.History > 0:
		return a.printHistory(ctx, a.cli.History)
	case a.cli.Watch:
		return a.watch(ctx)
	default:
		return a.once(ctx)
	}
}

func (a *App) once(ctx context.Context) error {
	outcome, err := a.controller.Synchronize(ctx, a.autoUpdate)
	a.printOutcome(outcome)
	if err != nil {
		return err
	}

	a.printLocales()
	return nil
}

func (a *App) watch(ctx context.Context) error {
	if err := a.workers.Start(ctx); err != nil {
		return fmt.Errorf("start workers: %w", err)
	}
	a.logger.Info().Msg("watching for remote changes, press Ctrl+C to stop")

	<-ctx.Done()

	a.logger.Info().Msg("stopping workers...")
	a.workers.Stop()
	a.logger.Info().Msg("stopped gracefully")
	return nil
}

func (a *App) printHistory(ctx context.Context, limit int) error {
	entries, err := a.controller.History(ctx, limit)
	if err != nil {
		return fmt.Errorf("read sync journal: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No synchronization passes recorded yet.")
		return nil
	}

	for _, e := range entries {
		status := "ok"
		if e.Error != "" {
			status = "failed: " + e.Error
		}
		took := "-"
		if e.FinishedAt != nil {
			took = e.FinishedAt.Sub(e.StartedAt).Round(time.Millisecond).String()
		}

		fmt.Fprintf(a.out, "%s  %-11s  commits=%d files=%d marker=%t took=%s  %s  [%s]\n",
			e.StartedAt.UTC().Format(time.RFC3339), e.Mode, e.Commits, e.Files, e.MarkerWritten, took, status, e.RunID)
	}
	return nil
}

func (a *App) printOutcome(o models.SyncOutcome) {
	if o.Err != nil {
		fmt.Fprintf(a.out, "Synchronization failed (%s): %v\n", o.Mode, o.Err)
		return
	}

	switch o.Mode {
	case models.SyncModeNone:
		fmt.Fprintln(a.out, "Auto-update is disabled, local files left as they are.")
	case models.SyncModeFull:
		fmt.Fprintf(a.out, "Full download complete: %d files written.\n", o.Files)
	default:
		fmt.Fprintf(a.out, "Up to date: %d commits applied, %d files changed.\n", o.Commits, o.Files)
	}
}

func (a *App) printLocales() {
	if a.versions == nil {
		return
	}

	locales, err := a.versions.ReadLocales()
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.printLocales").Msg("cannot read tracked locales")
		return
	}

	codes := make([]string, 0, len(locales))
	for _, l := range locales {
		codes = append(codes, l.Code)
	}
	fmt.Fprintf(a.out, "Tracked locales (%d): %s\n", len(codes), strings.Join(codes, ", "))
}
