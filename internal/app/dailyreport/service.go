// Package dailyreport builds the daily fantasy report from box scores and
// trending adds.
package dailyreport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/domain/players"
	"github.com/ajuarez99/ballknowers/internal/domain/trending"
	"github.com/ajuarez99/ballknowers/internal/logging"
	"github.com/ajuarez99/ballknowers/internal/matching"
	"github.com/ajuarez99/ballknowers/internal/metrics"
	"github.com/ajuarez99/ballknowers/internal/providers"
	"github.com/ajuarez99/ballknowers/internal/report"
	"github.com/ajuarez99/ballknowers/internal/scoring"
)

// runName is the command label on build metrics.
const runName = "build"

// ErrNoPlayers is returned when no player logged minutes on the date.
var ErrNoPlayers = errors.New("no players with minutes played")

// Directory caches the player id → name directory between builds.
type Directory interface {
	matching.NameLookup
	SetPlayers([]players.Player)
	Len() int
}

// Deps are the collaborators a Service needs. Players, Trending and Directory
// are only required for reports that include trending data.
type Deps struct {
	BoxScores providers.BoxScoreProvider
	Players   providers.PlayerProvider
	Trending  providers.TrendingProvider
	Directory Directory
	Scoring   scoring.Config
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
}

// Settings holds the tunables shared by every build.
type Settings struct {
	TopN          int
	LookbackHours int
	TrendingLimit int
}

// Options controls a single build.
type Options struct {
	Trending bool
	// TopN overrides Settings.TopN when positive.
	TopN int
}

// Service assembles daily reports.
type Service struct {
	deps     Deps
	settings Settings
	now      func() time.Time
}

// NewService constructs a Service.
func NewService(deps Deps, settings Settings) *Service {
	if settings.TopN <= 0 {
		settings.TopN = report.DefaultTopN
	}
	if settings.LookbackHours <= 0 {
		settings.LookbackHours = 24
	}
	if settings.TrendingLimit <= 0 {
		settings.TrendingLimit = 25
	}
	if deps.Scoring.Weights == nil {
		deps.Scoring = scoring.Default()
	}
	return &Service{deps: deps, settings: settings, now: time.Now}
}

// Build produces the report for date (YYYY-MM-DD).
func (s *Service) Build(ctx context.Context, date string, opts Options) (d report.Daily, err error) {
	start := time.Now()
	defer func() {
		s.deps.Metrics.RecordRun(runName, time.Since(start), err)
	}()

	if s.deps.BoxScores == nil {
		return report.Daily{}, providers.ErrProviderUnavailable
	}
	lines, err := s.deps.BoxScores.FetchBoxScores(ctx, date)
	if err != nil {
		return report.Daily{}, fmt.Errorf("fetch box scores for %s: %w", date, err)
	}

	played := boxscores.FilterPlayed(lines)
	if len(played) == 0 {
		return report.Daily{}, fmt.Errorf("%s: %w", date, ErrNoPlayers)
	}
	scored := scoring.ScoreAll(played, s.deps.Scoring)
	logging.Info(s.deps.Logger, "scored players",
		logging.FieldDate, date,
		logging.FieldCount, len(scored),
		"fetched", len(lines),
	)

	var (
		entries []trending.Entry
		matches []trending.MatchResult
	)
	if opts.Trending {
		entries, matches = s.trending(ctx, scored)
	}

	topN := s.settings.TopN
	if opts.TopN > 0 {
		topN = opts.TopN
	}
	d = report.New(date, scored, topN, entries, matches, s.now())
	s.deps.Metrics.RecordReport(len(scored), trending.MatchedCount(matches), len(entries))
	return d, nil
}

// trending fetches trending adds and matches them against the scored pool.
// Failures are logged and leave the report without a trending section.
func (s *Service) trending(ctx context.Context, scored []boxscores.StatLine) ([]trending.Entry, []trending.MatchResult) {
	if s.deps.Trending == nil {
		logging.Warn(s.deps.Logger, "trending provider not configured")
		return nil, nil
	}
	if err := s.refreshDirectory(ctx); err != nil {
		logging.Warn(s.deps.Logger, "player directory unavailable", "err", err)
		return nil, nil
	}

	entries, err := s.deps.Trending.FetchTrending(ctx, s.settings.LookbackHours, s.settings.TrendingLimit)
	if err != nil {
		logging.Warn(s.deps.Logger, "trending fetch failed", "err", err)
		return nil, nil
	}
	if entries == nil {
		entries = []trending.Entry{}
	}

	var lookup matching.NameLookup
	if s.deps.Directory != nil {
		lookup = s.deps.Directory
	}
	matches := matching.New(scored).Match(entries, lookup)
	logging.Info(s.deps.Logger, "matched trending players",
		logging.FieldCount, len(entries),
		"matched", trending.MatchedCount(matches),
	)
	return entries, matches
}

// refreshDirectory loads the player directory once per process.
func (s *Service) refreshDirectory(ctx context.Context) error {
	if s.deps.Directory == nil || s.deps.Directory.Len() > 0 {
		return nil
	}
	if s.deps.Players == nil {
		return providers.ErrProviderUnavailable
	}
	list, err := s.deps.Players.FetchPlayers(ctx)
	if err != nil {
		return err
	}
	s.deps.Directory.SetPlayers(list)
	logging.Debug(s.deps.Logger, "player directory loaded", logging.FieldCount, s.deps.Directory.Len())
	return nil
}
