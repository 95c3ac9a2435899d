package sleeper

// Wire shapes for Sleeper responses. Pointers mark fields whose absence must be detected.

type playerResponse struct {
	PlayerID     string `json:"player_id"`
	FullName     string `json:"full_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Team         string `json:"team"`
	Position     string `json:"position"`
	Status       string `json:"status"`
	InjuryStatus string `json:"injury_status"`
}

type trendingResponse struct {
	PlayerID *string `json:"player_id"`
	Count    int     `json:"count"`
}

type userResponse struct {
	UserID      *string           `json:"user_id"`
	Username    *string           `json:"username"`
	DisplayName string            `json:"display_name"`
	Avatar      string            `json:"avatar"`
	IsBot       bool              `json:"is_bot"`
	Metadata    map[string]string `json:"metadata"`
}

type rosterResponse struct {
	RosterID *int              `json:"roster_id"`
	OwnerID  *string           `json:"owner_id"`
	LeagueID string            `json:"league_id"`
	Players  []string          `json:"players"`
	Starters []string          `json:"starters"`
	Reserve  []string          `json:"reserve"`
	Metadata map[string]string `json:"metadata"`
	Settings rosterSettings    `json:"settings"`
}

type rosterSettings struct {
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Ties        int `json:"ties"`
	Fpts        int `json:"fpts"`
	FptsDecimal int `json:"fpts_decimal"`
}

type draftPickResponse struct {
	DraftID   string                `json:"draft_id"`
	DraftSlot int                   `json:"draft_slot"`
	IsKeeper  *bool                 `json:"is_keeper"`
	Metadata  *pickMetadataResponse `json:"metadata"`
	PickNo    *int                  `json:"pick_no"`
	PickedBy  string                `json:"picked_by"`
	PlayerID  *string               `json:"player_id"`
	RosterID  int                   `json:"roster_id"`
	Round     int                   `json:"round"`
}

type pickMetadataResponse struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	InjuryStatus  string  `json:"injury_status"`
	NewsUpdated   string  `json:"news_updated"`
	Number        string  `json:"number"`
	PlayerID      string  `json:"player_id"`
	Position      string  `json:"position"`
	Sport         string  `json:"sport"`
	Status        string  `json:"status"`
	Team          string  `json:"team"`
	TeamAbbr      string  `json:"team_abbr"`
	TeamChangedAt string  `json:"team_changed_at"`
	YearsExp      string  `json:"years_exp"`
}

type matchupResponse struct {
	MatchupID      *int               `json:"matchup_id"`
	RosterID       *int               `json:"roster_id"`
	Points         float64            `json:"points"`
	CustomPoints   *float64           `json:"custom_points"`
	Players        []string           `json:"players"`
	Starters       []string           `json:"starters"`
	StartersPoints []float64          `json:"starters_points"`
	PlayersPoints  map[string]float64 `json:"players_points"`
}
