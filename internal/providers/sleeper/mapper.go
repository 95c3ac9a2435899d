package sleeper

import (
	"sort"
	"strings"

	"github.com/ajuarez99/ballknowers/internal/domain/league"
	"github.com/ajuarez99/ballknowers/internal/domain/players"
	"github.com/ajuarez99/ballknowers/internal/domain/trending"
)

// mapPlayers flattens the id-keyed directory. Entries are ordered by id so output is stable.
func mapPlayers(raw map[string]*playerResponse) []players.Player {
	ids := make([]string, 0, len(raw))
	for id, p := range raw {
		if p != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]players.Player, 0, len(ids))
	for _, id := range ids {
		p := raw[id]
		out = append(out, players.Player{
			ID:           id,
			FullName:     strings.TrimSpace(p.FullName),
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Team:         p.Team,
			Position:     p.Position,
			Status:       p.Status,
			InjuryStatus: p.InjuryStatus,
		})
	}
	return out
}

func mapTrending(raw []trendingResponse) ([]trending.Entry, error) {
	out := make([]trending.Entry, 0, len(raw))
	for _, t := range raw {
		if t.PlayerID == nil || *t.PlayerID == "" {
			return nil, league.MissingField("trending entry", "player_id")
		}
		out = append(out, trending.Entry{PlayerID: *t.PlayerID, Count: t.Count})
	}
	return out, nil
}

func mapMember(u userResponse) (league.Member, error) {
	if u.UserID == nil || *u.UserID == "" {
		return league.Member{}, league.MissingField("user", "user_id")
	}
	m := league.Member{
		UserID:      *u.UserID,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
		IsBot:       u.IsBot,
		TeamName:    league.NotAvailable,
	}
	if u.Username != nil {
		m.Username = *u.Username
	}
	if m.DisplayName == "" {
		m.DisplayName = m.Username
	}
	if name := strings.TrimSpace(u.Metadata["team_name"]); name != "" {
		m.TeamName = name
	}
	return m, nil
}

func mapMembers(raw []userResponse) ([]league.Member, error) {
	out := make([]league.Member, 0, len(raw))
	for _, u := range raw {
		m, err := mapMember(u)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func mapRoster(r rosterResponse) (league.Roster, error) {
	if r.RosterID == nil {
		return league.Roster{}, league.MissingField("roster", "roster_id")
	}
	out := league.Roster{
		RosterID:  *r.RosterID,
		LeagueID:  r.LeagueID,
		Players:   nonNil(r.Players),
		Starters:  nonNil(r.Starters),
		Reserve:   nonNil(r.Reserve),
		Record:    r.Metadata["record"],
		Streak:    r.Metadata["streak"],
		Wins:      r.Settings.Wins,
		Losses:    r.Settings.Losses,
		Ties:      r.Settings.Ties,
		PointsFor: float64(r.Settings.Fpts) + float64(r.Settings.FptsDecimal)/100,
	}
	if r.OwnerID != nil {
		out.OwnerID = *r.OwnerID
	}
	return out, nil
}

func mapRosters(raw []rosterResponse) ([]league.Roster, error) {
	out := make([]league.Roster, 0, len(raw))
	for _, r := range raw {
		roster, err := mapRoster(r)
		if err != nil {
			return nil, err
		}
		out = append(out, roster)
	}
	return out, nil
}

func mapDraftPick(p draftPickResponse) (league.DraftPick, error) {
	if p.PickNo == nil {
		return league.DraftPick{}, league.MissingField("draft pick", "pick_no")
	}
	if p.PlayerID == nil || *p.PlayerID == "" {
		return league.DraftPick{}, league.MissingField("draft pick", "player_id")
	}
	if p.Metadata == nil {
		return league.DraftPick{}, league.MissingField("draft pick", "metadata")
	}
	md, err := mapPickMetadata(*p.Metadata)
	if err != nil {
		return league.DraftPick{}, err
	}
	out := league.DraftPick{
		DraftID:   p.DraftID,
		DraftSlot: p.DraftSlot,
		Metadata:  md,
		PickNo:    *p.PickNo,
		PickedBy:  p.PickedBy,
		PlayerID:  *p.PlayerID,
		RosterID:  p.RosterID,
		Round:     p.Round,
	}
	if p.IsKeeper != nil {
		out.IsKeeper = *p.IsKeeper
	}
	return out, nil
}

func mapPickMetadata(m pickMetadataResponse) (league.PlayerMetadata, error) {
	if m.FirstName == nil {
		return league.PlayerMetadata{}, league.MissingField("pick metadata", "first_name")
	}
	if m.LastName == nil {
		return league.PlayerMetadata{}, league.MissingField("pick metadata", "last_name")
	}
	return league.PlayerMetadata{
		FirstName:     *m.FirstName,
		LastName:      *m.LastName,
		InjuryStatus:  m.InjuryStatus,
		NewsUpdated:   m.NewsUpdated,
		Number:        m.Number,
		PlayerID:      m.PlayerID,
		Position:      m.Position,
		Sport:         m.Sport,
		Status:        m.Status,
		Team:          m.Team,
		TeamAbbr:      m.TeamAbbr,
		TeamChangedAt: m.TeamChangedAt,
		YearsExp:      m.YearsExp,
	}, nil
}

func mapDraftPicks(raw []draftPickResponse) ([]league.DraftPick, error) {
	out := make([]league.DraftPick, 0, len(raw))
	for _, p := range raw {
		pick, err := mapDraftPick(p)
		if err != nil {
			return nil, err
		}
		out = append(out, pick)
	}
	return out, nil
}

func mapMatchups(raw []matchupResponse) ([]league.Matchup, error) {
	out := make([]league.Matchup, 0, len(raw))
	for _, m := range raw {
		if m.RosterID == nil {
			return nil, league.MissingField("matchup", "roster_id")
		}
		mu := league.Matchup{
			RosterID:       *m.RosterID,
			Points:         m.Points,
			CustomPoints:   m.CustomPoints,
			Players:        nonNil(m.Players),
			Starters:       nonNil(m.Starters),
			StartersPoints: m.StartersPoints,
			PlayersPoints:  m.PlayersPoints,
		}
		// Rosters on a bye have no matchup id.
		if m.MatchupID != nil {
			mu.MatchupID = *m.MatchupID
		}
		out = append(out, mu)
	}
	return out, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
