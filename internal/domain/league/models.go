package league

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// NotAvailable fills optional descriptive fields the upstream omitted.
	NotAvailable = "N/A"
	// UnknownOwner is used when a roster has no resolvable owner.
	UnknownOwner = "Unknown"
	// UnknownUser is used when a draft pick's picker is not a known member.
	UnknownUser = "Unknown User"
)

// ErrMissingField marks upstream records that lack a required field.
var ErrMissingField = errors.New("missing required field")

// MissingField builds an ErrMissingField for the given record kind and field.
func MissingField(record, field string) error {
	return fmt.Errorf("%s: %w %q", record, ErrMissingField, field)
}

// Member is a fantasy league participant.
type Member struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar,omitempty"`
	IsBot       bool   `json:"is_bot"`
	TeamName    string `json:"team_name"`
}

// PlayerMetadata describes the drafted player as recorded on the pick.
type PlayerMetadata struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	InjuryStatus  string `json:"injury_status,omitempty"`
	NewsUpdated   string `json:"news_updated,omitempty"`
	Number        string `json:"number,omitempty"`
	PlayerID      string `json:"player_id"`
	Position      string `json:"position"`
	Sport         string `json:"sport,omitempty"`
	Status        string `json:"status,omitempty"`
	Team          string `json:"team"`
	TeamAbbr      string `json:"team_abbr,omitempty"`
	TeamChangedAt string `json:"team_changed_at,omitempty"`
	YearsExp      string `json:"years_exp,omitempty"`
}

// FullName joins first and last name.
func (m PlayerMetadata) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// TeamPosition renders "TEAM, POS" with N/A for blanks.
func (m PlayerMetadata) TeamPosition() string {
	return orNotAvailable(m.Team) + ", " + orNotAvailable(m.Position)
}

func (m PlayerMetadata) String() string {
	return fmt.Sprintf("%s (%s)", m.FullName(), m.Team)
}

// DraftPick is a single selection in a draft.
type DraftPick struct {
	DraftID   string         `json:"draft_id"`
	DraftSlot int            `json:"draft_slot"`
	IsKeeper  bool           `json:"is_keeper"`
	Metadata  PlayerMetadata `json:"metadata"`
	PickNo    int            `json:"pick_no"`
	PickedBy  string         `json:"picked_by"`
	PlayerID  string         `json:"player_id"`
	RosterID  int            `json:"roster_id"`
	Round     int            `json:"round"`
}

func (p DraftPick) String() string {
	return fmt.Sprintf("Pick #%d: %s", p.PickNo, p.Metadata)
}

// Roster is one team's roster and season record.
type Roster struct {
	RosterID  int      `json:"roster_id"`
	OwnerID   string   `json:"owner_id"`
	LeagueID  string   `json:"league_id"`
	Players   []string `json:"players"`
	Starters  []string `json:"starters"`
	Reserve   []string `json:"reserve"`
	Record    string   `json:"record,omitempty"`
	Streak    string   `json:"streak,omitempty"`
	Wins      int      `json:"wins"`
	Losses    int      `json:"losses"`
	Ties      int      `json:"ties"`
	PointsFor float64  `json:"fpts"`
}

func (r Roster) String() string {
	return fmt.Sprintf("Roster %d | Owner: %s | Record: %s | Wins: %d, Losses: %d",
		r.RosterID, r.OwnerID, orNotAvailable(r.Record), r.Wins, r.Losses)
}

// Matchup is one roster's side of a weekly head-to-head.
type Matchup struct {
	MatchupID      int                `json:"matchup_id"`
	RosterID       int                `json:"roster_id"`
	Points         float64            `json:"points"`
	CustomPoints   *float64           `json:"custom_points,omitempty"`
	Players        []string           `json:"players"`
	Starters       []string           `json:"starters"`
	StartersPoints []float64          `json:"starters_points"`
	PlayersPoints  map[string]float64 `json:"players_points"`
}

// EffectivePoints prefers commissioner-adjusted points when set.
func (m Matchup) EffectivePoints() float64 {
	if m.CustomPoints != nil {
		return *m.CustomPoints
	}
	return m.Points
}

// UserDraftPick ties a pick to the member who made it.
type UserDraftPick struct {
	PickNo   int       `json:"pick_no"`
	Username string    `json:"username"`
	Pick     DraftPick `json:"pick"`
}

func (u UserDraftPick) String() string {
	return fmt.Sprintf("Pick %d: %s selected %s %s", u.PickNo, u.Username, u.Pick.Metadata.FirstName, u.Pick.Metadata.LastName)
}

// DraftRow is one line of the draft report.
type DraftRow struct {
	PickNo     int    `json:"pick_no"`
	Round      int    `json:"round"`
	DraftSlot  int    `json:"draft_slot"`
	RosterID   int    `json:"roster_id"`
	PickedBy   string `json:"picked_by"`
	PlayerName string `json:"player_name"`
	TeamPos    string `json:"team_pos"`
	Username   string `json:"username"`
	TeamName   string `json:"team_name"`
}

func orNotAvailable(v string) string {
	if strings.TrimSpace(v) == "" {
		return NotAvailable
	}
	return v
}
