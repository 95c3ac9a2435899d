package trending

import "github.com/ajuarez99/ballknowers/internal/domain/boxscores"

// UnknownName is used when a trending player id has no display name.
const UnknownName = "Unknown"

// Entry is one trending-add signal from the fantasy platform.
type Entry struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// MatchMethod records how a trending entry was paired with a stat line.
type MatchMethod string

const (
	MatchExact       MatchMethod = "exact"
	MatchApproximate MatchMethod = "approximate"
)

// MatchResult pairs a trending entry with the day's stat line, if any.
type MatchResult struct {
	PlayerID      string              `json:"player_id"`
	Name          string              `json:"name"`
	Adds          int                 `json:"adds"`
	Matched       bool                `json:"matched"`
	Method        MatchMethod         `json:"method,omitempty"`
	BoxScoreName  string              `json:"box_score_name,omitempty"`
	FantasyPoints float64             `json:"fantasy_points"`
	Stat          *boxscores.StatLine `json:"stat,omitempty"`
}

// MatchedCount returns how many results carry a stat line.
func MatchedCount(results []MatchResult) int {
	n := 0
	for _, r := range results {
		if r.Matched {
			n++
		}
	}
	return n
}
