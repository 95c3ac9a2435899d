// Package report assembles scored stat lines and trending matches into the daily report.
package report

import (
	"sort"
	"time"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/domain/trending"
)

// DefaultTopN is the size of the ranked list when none is configured.
const DefaultTopN = 20

// Daily is the persisted and rendered report for one date.
type Daily struct {
	Date         string                 `json:"date"`
	TopPlayers   []boxscores.StatLine   `json:"top_players"`
	Trending     []trending.Entry       `json:"trending"`
	Matches      []trending.MatchResult `json:"matches"`
	TotalPlayers int                    `json:"total_players"`
	GeneratedAt  time.Time              `json:"generated_at"`
}

// HasTrending reports whether trending data was fetched for the report.
func (d Daily) HasTrending() bool {
	return d.Trending != nil
}

// TopN returns the n highest-scoring lines. Equal scores keep input order.
func TopN(scored []boxscores.StatLine, n int) []boxscores.StatLine {
	if n <= 0 || len(scored) == 0 {
		return []boxscores.StatLine{}
	}

	sorted := make([]boxscores.StatLine, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FantasyPoints > sorted[j].FantasyPoints
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// New builds a Daily from the full scored pool.
// A nil entries slice means trending data was not fetched.
func New(date string, scored []boxscores.StatLine, n int, entries []trending.Entry, matches []trending.MatchResult, now time.Time) Daily {
	return Daily{
		Date:         date,
		TopPlayers:   TopN(scored, n),
		Trending:     entries,
		Matches:      matches,
		TotalPlayers: len(scored),
		GeneratedAt:  now.UTC(),
	}
}
