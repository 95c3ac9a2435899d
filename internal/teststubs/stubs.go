package teststubs

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/domain/league"
	"github.com/ajuarez99/ballknowers/internal/domain/players"
	"github.com/ajuarez99/ballknowers/internal/domain/trending"
	"github.com/ajuarez99/ballknowers/internal/report"
)

// StubBoxScores is a test double for providers.BoxScoreProvider.
type StubBoxScores struct {
	Lines  []boxscores.StatLine
	Err    error
	Calls  atomic.Int32
	Dates  []string
	Notify chan struct{}
}

// FetchBoxScores returns configured lines and error while tracking calls.
func (s *StubBoxScores) FetchBoxScores(ctx context.Context, date string) ([]boxscores.StatLine, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.Dates = append(s.Dates, date)
	return s.Lines, s.Err
}

// StubSleeper is a test double for providers.SleeperProvider.
// Per-method errors take precedence over Err.
type StubSleeper struct {
	Players  []players.Player
	Trending []trending.Entry
	Users    map[string]league.Member // keyed by username
	Members  []league.Member
	Rosters  []league.Roster
	Picks    []league.DraftPick
	Matchups map[int][]league.Matchup // keyed by week

	Err         error
	PlayersErr  error
	TrendingErr error

	PlayerCalls   atomic.Int32
	TrendingCalls atomic.Int32
	UserCalls     atomic.Int32
}

func (s *StubSleeper) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.PlayerCalls.Add(1)
	if s.PlayersErr != nil {
		return nil, s.PlayersErr
	}
	return s.Players, s.Err
}

func (s *StubSleeper) FetchTrending(ctx context.Context, lookbackHours, limit int) ([]trending.Entry, error) {
	_ = ctx
	_ = lookbackHours
	s.TrendingCalls.Add(1)
	if s.TrendingErr != nil {
		return nil, s.TrendingErr
	}
	if limit > 0 && len(s.Trending) > limit {
		return s.Trending[:limit], s.Err
	}
	return s.Trending, s.Err
}

// FetchUser returns the member for username, or ErrUserNotFound.
func (s *StubSleeper) FetchUser(ctx context.Context, username string) (league.Member, error) {
	_ = ctx
	s.UserCalls.Add(1)
	if s.Err != nil {
		return league.Member{}, s.Err
	}
	m, ok := s.Users[username]
	if !ok {
		return league.Member{}, ErrUserNotFound
	}
	return m, nil
}

func (s *StubSleeper) FetchLeagueUsers(ctx context.Context, leagueID string) ([]league.Member, error) {
	_ = ctx
	_ = leagueID
	return s.Members, s.Err
}

func (s *StubSleeper) FetchRosters(ctx context.Context, leagueID string) ([]league.Roster, error) {
	_ = ctx
	_ = leagueID
	return s.Rosters, s.Err
}

func (s *StubSleeper) FetchDraftPicks(ctx context.Context, draftID string) ([]league.DraftPick, error) {
	_ = ctx
	_ = draftID
	return s.Picks, s.Err
}

func (s *StubSleeper) FetchMatchups(ctx context.Context, leagueID string, week int) ([]league.Matchup, error) {
	_ = ctx
	_ = leagueID
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Matchups[week], nil
}

// ErrUserNotFound is returned by StubSleeper.FetchUser for unknown usernames.
var ErrUserNotFound = errors.New("user not found")

// StubReportStore is a test double for snapshots.Store.
type StubReportStore struct {
	Reports map[string]report.Daily // keyed by date
	LoadErr error
}

// LoadReport returns the report for date if present.
func (s *StubReportStore) LoadReport(date string) (report.Daily, error) {
	if s.LoadErr != nil {
		return report.Daily{}, s.LoadErr
	}
	d, ok := s.Reports[date]
	if !ok {
		return report.Daily{}, errors.New("report not found")
	}
	return d, nil
}
