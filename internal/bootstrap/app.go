// Package bootstrap wires configuration into the providers, services and
// storage used by the CLI commands.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajuarez99/ballknowers/internal/app/dailyreport"
	"github.com/ajuarez99/ballknowers/internal/app/league"
	"github.com/ajuarez99/ballknowers/internal/config"
	"github.com/ajuarez99/ballknowers/internal/logging"
	"github.com/ajuarez99/ballknowers/internal/metrics"
	"github.com/ajuarez99/ballknowers/internal/providers"
	"github.com/ajuarez99/ballknowers/internal/report"
	"github.com/ajuarez99/ballknowers/internal/scoring"
	"github.com/ajuarez99/ballknowers/internal/snapshots"
	"github.com/ajuarez99/ballknowers/internal/store"
)

var metricsSetup = metrics.Setup

// App holds everything a command needs for one process run.
type App struct {
	Config    config.Config
	Logger    *slog.Logger
	Telemetry *metrics.Telemetry

	BoxScores providers.BoxScoreProvider
	Sleeper   providers.SleeperProvider
	Directory *store.PlayerStore

	Reports *dailyreport.Service
	League  *league.Service
	Writer  *snapshots.Writer
	Store   *snapshots.FSStore
}

// New builds an App from cfg. Telemetry failures degrade to an in-memory
// recorder; an unreadable scoring file is an error.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	scoringCfg, err := scoring.LoadFile(cfg.Report.ScoringFile)
	if err != nil {
		return nil, fmt.Errorf("load scoring config: %w", err)
	}

	tel := buildTelemetry(ctx, cfg, logger)
	factory := newProviderFactory(logger, tel.Recorder)
	box := factory.boxScores(cfg)
	sl := factory.sleeper(cfg)
	dir := store.NewPlayerStore()

	reports := dailyreport.NewService(dailyreport.Deps{
		BoxScores: box,
		Players:   sl,
		Trending:  sl,
		Directory: dir,
		Scoring:   scoringCfg,
		Logger:    logger,
		Metrics:   tel.Recorder,
	}, dailyreport.Settings{
		TopN:          cfg.Report.TopN,
		LookbackHours: cfg.Sleeper.LookbackHours,
		TrendingLimit: cfg.Sleeper.TrendingLimit,
	})

	snaps := buildSnapshots(cfg, logger)
	return &App{
		Config:    cfg,
		Logger:    logger,
		Telemetry: tel,
		BoxScores: box,
		Sleeper:   sl,
		Directory: dir,
		Reports:   reports,
		League:    league.NewService(sl, logger),
		Writer:    snaps.writer,
		Store:     snaps.store,
	}, nil
}

// Backfiller returns a backfiller that builds through the report service.
func (a *App) Backfiller(days int) *snapshots.Backfiller {
	build := func(ctx context.Context, date string, withTrending bool) (report.Daily, error) {
		return a.Reports.Build(ctx, date, dailyreport.Options{Trending: withTrending})
	}
	return snapshots.NewBackfiller(build, a.Writer, snapshots.BackfillConfig{
		Days:     days,
		Interval: a.Config.Report.BackfillInterval,
	}, a.Logger)
}

// RecordRun records a command outcome on the telemetry recorder.
func (a *App) RecordRun(command string, start time.Time, err error) {
	if a == nil || a.Telemetry == nil {
		return
	}
	a.Telemetry.Recorder.RecordRun(command, time.Since(start), err)
}

// Close pushes metrics when a Pushgateway is configured and stops the meter provider.
func (a *App) Close(command string) {
	if a == nil || a.Telemetry == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.Telemetry.Push(ctx, a.Config.Metrics.PushgatewayURL, a.Config.Metrics.ServiceName); err != nil {
		logging.Warn(a.Logger, "metrics push failed", logging.FieldCommand, command, "err", err)
	}
	if err := a.Telemetry.Shutdown(ctx); err != nil {
		logging.Warn(a.Logger, "metrics shutdown failed", "err", err)
	}
}

func buildTelemetry(ctx context.Context, cfg config.Config, logger *slog.Logger) *metrics.Telemetry {
	tel, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return &metrics.Telemetry{Recorder: metrics.NewRecorder()}
	}
	return tel
}
