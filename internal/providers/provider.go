package providers

import (
	"context"
	"net/http"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/domain/league"
	"github.com/ajuarez99/ballknowers/internal/domain/players"
	"github.com/ajuarez99/ballknowers/internal/domain/trending"
)

// BoxScoreProvider fetches every player's stat line for a YYYY-MM-DD date.
type BoxScoreProvider interface {
	FetchBoxScores(ctx context.Context, date string) ([]boxscores.StatLine, error)
}

// PlayerProvider fetches the fantasy platform's player directory.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// TrendingProvider fetches the most-added players over a lookback window.
type TrendingProvider interface {
	FetchTrending(ctx context.Context, lookbackHours, limit int) ([]trending.Entry, error)
}

// LeagueProvider fetches league membership, rosters, drafts and matchups.
type LeagueProvider interface {
	FetchUser(ctx context.Context, username string) (league.Member, error)
	FetchLeagueUsers(ctx context.Context, leagueID string) ([]league.Member, error)
	FetchRosters(ctx context.Context, leagueID string) ([]league.Roster, error)
	FetchDraftPicks(ctx context.Context, draftID string) ([]league.DraftPick, error)
	FetchMatchups(ctx context.Context, leagueID string, week int) ([]league.Matchup, error)
}

// SleeperProvider combines every fantasy platform capability.
type SleeperProvider interface {
	PlayerProvider
	TrendingProvider
	LeagueProvider
}

// Doer is the subset of *http.Client used by upstream clients.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to Doer.
type DoerFunc func(req *http.Request) (*http.Response, error)

// Do implements Doer.
func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}
