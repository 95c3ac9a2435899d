package boxscores

// Location records whether the player's team was at home.
type Location string

const (
	LocationHome Location = "HOME"
	LocationAway Location = "AWAY"
)

// Outcome records the result of the player's game.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
)

// StatLine is one player's counted statistics for a single date.
// JSON keys match the report format consumed downstream.
type StatLine struct {
	Name                          string   `json:"name"`
	Team                          string   `json:"team"`
	Location                      Location `json:"location"`
	Opponent                      string   `json:"opponent"`
	Outcome                       Outcome  `json:"outcome"`
	MinutesPlayed                 int      `json:"minutes_played"`
	MadeFieldGoals                int      `json:"made_field_goals"`
	AttemptedFieldGoals           int      `json:"attempted_field_goals"`
	MadeThreePointFieldGoals      int      `json:"made_three_point_field_goals"`
	AttemptedThreePointFieldGoals int      `json:"attempted_three_point_field_goals"`
	MadeFreeThrows                int      `json:"made_free_throws"`
	AttemptedFreeThrows           int      `json:"attempted_free_throws"`
	OffensiveRebounds             int      `json:"offensive_rebounds"`
	DefensiveRebounds             int      `json:"defensive_rebounds"`
	TotalRebounds                 int      `json:"total_rebounds"`
	Assists                       int      `json:"assists"`
	Steals                        int      `json:"steals"`
	Blocks                        int      `json:"blocks"`
	Turnovers                     int      `json:"turnovers"`
	PersonalFouls                 int      `json:"personal_fouls"`
	Points                        int      `json:"points"`
	PlusMinus                     int      `json:"plus_minus"`
	FantasyPoints                 float64  `json:"fantasy_points"`
}

// WithTotals returns a copy with TotalRebounds derived from the offensive and defensive counts.
func (s StatLine) WithTotals() StatLine {
	s.TotalRebounds = s.OffensiveRebounds + s.DefensiveRebounds
	return s
}

// Played reports whether the player logged any minutes.
func (s StatLine) Played() bool {
	return s.MinutesPlayed > 0
}

// FilterPlayed drops players who did not play, preserving order.
func FilterPlayed(lines []StatLine) []StatLine {
	out := make([]StatLine, 0, len(lines))
	for _, l := range lines {
		if l.Played() {
			out = append(out, l)
		}
	}
	return out
}
