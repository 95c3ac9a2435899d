package snapshots

import (
	"context"
	"log/slog"
	"time"

	"github.com/ajuarez99/ballknowers/internal/logging"
	"github.com/ajuarez99/ballknowers/internal/report"
	"github.com/ajuarez99/ballknowers/internal/timeutil"
)

// BuildFunc produces the report for one date. withTrending asks for the
// Sleeper trending section.
type BuildFunc func(ctx context.Context, date string, withTrending bool) (report.Daily, error)

// BackfillConfig controls which dates a backfill visits.
type BackfillConfig struct {
	Days     int
	Interval time.Duration
}

// BackfillResult summarizes one backfill pass.
type BackfillResult struct {
	Written []string
	Failed  []string
}

// Backfiller builds and saves reports for recent dates that are missing on disk.
type Backfiller struct {
	build  BuildFunc
	writer *Writer
	cfg    BackfillConfig
	logger *slog.Logger
	sleep  func(context.Context, time.Duration)
}

// NewBackfiller constructs a backfiller.
func NewBackfiller(build BuildFunc, writer *Writer, cfg BackfillConfig, logger *slog.Logger) *Backfiller {
	if cfg.Days <= 0 {
		cfg.Days = 7
	}
	if cfg.Interval < 0 {
		cfg.Interval = 0
	}
	return &Backfiller{
		build:  build,
		writer: writer,
		cfg:    cfg,
		logger: logger,
		sleep:  sleepContext,
	}
}

// Run visits yesterday (always rebuilt) and every older missing date within
// the window, one at a time. Only yesterday's report fetches trending data.
func (b *Backfiller) Run(ctx context.Context, now time.Time) BackfillResult {
	var result BackfillResult
	if b == nil || b.build == nil || b.writer == nil {
		return result
	}

	dates := b.Dates(now)
	logging.Info(b.logger, "backfill starting",
		"days", b.cfg.Days,
		logging.FieldCount, len(dates),
		"interval", b.cfg.Interval.String(),
	)
	yesterday := timeutil.DaysAgo(now, 1)

	for i, date := range dates {
		if ctx.Err() != nil {
			return result
		}
		if b.buildAndWrite(ctx, date, date == yesterday) {
			result.Written = append(result.Written, date)
		} else {
			result.Failed = append(result.Failed, date)
		}
		if i < len(dates)-1 {
			b.sleep(ctx, b.cfg.Interval)
		}
	}
	return result
}

// Dates lists the dates a run at now would visit, newest first.
func (b *Backfiller) Dates(now time.Time) []string {
	dates := []string{timeutil.DaysAgo(now, 1)}
	for i := 2; i <= b.cfg.Days; i++ {
		date := timeutil.DaysAgo(now, i)
		if !b.writer.HasReport(date) {
			dates = append(dates, date)
		}
	}
	return dates
}

func (b *Backfiller) buildAndWrite(ctx context.Context, date string, withTrending bool) bool {
	start := time.Now()
	d, err := b.build(ctx, date, withTrending)
	if err != nil {
		logging.Warn(b.logger, "backfill build failed", logging.FieldDate, date, "err", err)
		return false
	}
	path, err := b.writer.WriteReport(date, d)
	if err != nil {
		logging.Warn(b.logger, "backfill write failed", logging.FieldDate, date, "err", err)
		return false
	}
	logging.Info(b.logger, "report written",
		logging.FieldDate, date,
		logging.FieldCount, d.TotalPlayers,
		"path", path,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return true
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
