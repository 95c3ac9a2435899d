// Package fixture serves deterministic data for offline runs and tests.
package fixture

import (
	"context"
	"fmt"
	"sort"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/domain/league"
	"github.com/ajuarez99/ballknowers/internal/domain/players"
	"github.com/ajuarez99/ballknowers/internal/domain/trending"
	"github.com/ajuarez99/ballknowers/internal/providers"
	"github.com/ajuarez99/ballknowers/internal/timeutil"
)

// Provider implements every provider interface with static data.
type Provider struct{}

var (
	_ providers.BoxScoreProvider = (*Provider)(nil)
	_ providers.SleeperProvider  = (*Provider)(nil)
)

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchBoxScores returns the same slate for any valid date.
func (p *Provider) FetchBoxScores(ctx context.Context, date string) ([]boxscores.StatLine, error) {
	_ = ctx
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, fmt.Errorf("fixture: invalid date %q: %w", date, err)
	}
	out := make([]boxscores.StatLine, len(slate))
	for i, l := range slate {
		out[i] = l.WithTotals()
	}
	return out, nil
}

// FetchPlayers returns a small player directory.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := make([]players.Player, len(directory))
	copy(out, directory)
	return out, nil
}

// FetchTrending returns up to limit entries; lookback is ignored.
func (p *Provider) FetchTrending(ctx context.Context, lookbackHours, limit int) ([]trending.Entry, error) {
	_ = ctx
	_ = lookbackHours
	out := make([]trending.Entry, 0, len(trendingAdds))
	for i, e := range trendingAdds {
		if limit > 0 && i >= limit {
			break
		}
		out = append(out, e)
	}
	return out, nil
}

// FetchUser finds a member by username.
func (p *Provider) FetchUser(ctx context.Context, username string) (league.Member, error) {
	_ = ctx
	for _, m := range members {
		if m.Username == username {
			return m, nil
		}
	}
	return league.Member{}, fmt.Errorf("fixture user %q: %w", username, providers.ErrNotFound)
}

// FetchLeagueUsers returns every fixture member.
func (p *Provider) FetchLeagueUsers(ctx context.Context, leagueID string) ([]league.Member, error) {
	_ = ctx
	_ = leagueID
	out := make([]league.Member, len(members))
	copy(out, members)
	return out, nil
}

// FetchRosters returns one roster per member plus an orphan.
func (p *Provider) FetchRosters(ctx context.Context, leagueID string) ([]league.Roster, error) {
	_ = ctx
	out := make([]league.Roster, len(rosters))
	for i, r := range rosters {
		r.LeagueID = leagueID
		out[i] = r
	}
	return out, nil
}

// FetchDraftPicks returns picks in a shuffled order so callers must sort.
func (p *Provider) FetchDraftPicks(ctx context.Context, draftID string) ([]league.DraftPick, error) {
	_ = ctx
	out := make([]league.DraftPick, len(picks))
	for i, pk := range picks {
		pk.DraftID = draftID
		out[i] = pk
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PlayerID > out[j].PlayerID })
	return out, nil
}

// FetchMatchups returns a two-matchup week plus a bye.
func (p *Provider) FetchMatchups(ctx context.Context, leagueID string, week int) ([]league.Matchup, error) {
	_ = ctx
	_ = leagueID
	if week <= 0 {
		return nil, fmt.Errorf("fixture: invalid week %d", week)
	}
	out := make([]league.Matchup, len(matchups))
	copy(out, matchups)
	return out, nil
}
