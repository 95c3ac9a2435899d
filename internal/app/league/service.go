// Package league joins Sleeper league data into draft and matchup views.
package league

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	domainleague "github.com/ajuarez99/ballknowers/internal/domain/league"
	"github.com/ajuarez99/ballknowers/internal/logging"
	"github.com/ajuarez99/ballknowers/internal/providers"
)

// Service answers league questions using a LeagueProvider.
type Service struct {
	provider providers.LeagueProvider
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(provider providers.LeagueProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// owner is what a roster resolves to for display.
type owner struct {
	name     string
	teamName string
}

var unknownOwner = owner{name: domainleague.UnknownOwner, teamName: domainleague.NotAvailable}

// DraftReport joins draft picks with the league's rosters and users,
// sorted by pick number.
func (s *Service) DraftReport(ctx context.Context, leagueID, draftID string) ([]domainleague.DraftRow, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	picks, err := s.provider.FetchDraftPicks(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("fetch draft picks: %w", err)
	}
	owners, err := s.owners(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	rows := make([]domainleague.DraftRow, 0, len(picks))
	for _, p := range picks {
		o, ok := owners[p.RosterID]
		if !ok {
			o = unknownOwner
		}
		rows = append(rows, domainleague.DraftRow{
			PickNo:     p.PickNo,
			Round:      p.Round,
			DraftSlot:  p.DraftSlot,
			RosterID:   p.RosterID,
			PickedBy:   p.PickedBy,
			PlayerName: p.Metadata.FullName(),
			TeamPos:    p.Metadata.TeamPosition(),
			Username:   o.name,
			TeamName:   o.teamName,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].PickNo < rows[j].PickNo })

	logging.Info(s.logger, "draft report built",
		logging.FieldLeague, leagueID,
		"draft_id", draftID,
		logging.FieldCount, len(rows),
	)
	return rows, nil
}

// owners maps roster ids to their owner's display and team names.
func (s *Service) owners(ctx context.Context, leagueID string) (map[int]owner, error) {
	users, err := s.provider.FetchLeagueUsers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch league users: %w", err)
	}
	rosters, err := s.provider.FetchRosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch rosters: %w", err)
	}

	byUser := make(map[string]owner, len(users))
	for _, u := range users {
		byUser[u.UserID] = owner{name: u.DisplayName, teamName: u.TeamName}
	}
	out := make(map[int]owner, len(rosters))
	for _, r := range rosters {
		o, ok := byUser[r.OwnerID]
		if !ok {
			o = unknownOwner
		}
		out[r.RosterID] = o
	}
	return out, nil
}

// Members looks up each username in order. Failed lookups are logged and skipped.
func (s *Service) Members(ctx context.Context, usernames []string) []domainleague.Member {
	members := make([]domainleague.Member, 0, len(usernames))
	if s.provider == nil {
		return members
	}
	for _, name := range usernames {
		if ctx.Err() != nil {
			break
		}
		m, err := s.provider.FetchUser(ctx, name)
		if err != nil {
			logging.Warn(s.logger, "member lookup failed", "username", name, "err", err)
			continue
		}
		members = append(members, m)
	}
	return members
}

// PicksByMember attributes picks to members by user id, in pick order.
// Picks made by anyone else are attributed to league.UnknownUser.
func PicksByMember(members []domainleague.Member, picks []domainleague.DraftPick) []domainleague.UserDraftPick {
	byID := make(map[string]string, len(members))
	for _, m := range members {
		byID[m.UserID] = m.Username
	}

	out := make([]domainleague.UserDraftPick, 0, len(picks))
	for _, p := range picks {
		username, ok := byID[p.PickedBy]
		if !ok {
			username = domainleague.UnknownUser
		}
		out = append(out, domainleague.UserDraftPick{PickNo: p.PickNo, Username: username, Pick: p})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PickNo < out[j].PickNo })
	return out
}

// DraftPicksByMember fetches the draft and attributes it to the given members.
func (s *Service) DraftPicksByMember(ctx context.Context, draftID string, members []domainleague.Member) ([]domainleague.UserDraftPick, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	picks, err := s.provider.FetchDraftPicks(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("fetch draft picks: %w", err)
	}
	return PicksByMember(members, picks), nil
}

// MatchupSide is one roster's half of a matchup with its owner resolved.
type MatchupSide struct {
	RosterID int     `json:"roster_id"`
	Owner    string  `json:"owner"`
	TeamName string  `json:"team_name"`
	Points   float64 `json:"points"`
}

// MatchupGroup is every roster sharing a matchup id for the week.
type MatchupGroup struct {
	MatchupID int           `json:"matchup_id"`
	Sides     []MatchupSide `json:"sides"`
}

// Matchups fetches the week's matchups and groups them by matchup id.
// Groups are ordered by matchup id and sides by roster id.
func (s *Service) Matchups(ctx context.Context, leagueID string, week int) ([]MatchupGroup, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	matchups, err := s.provider.FetchMatchups(ctx, leagueID, week)
	if err != nil {
		return nil, fmt.Errorf("fetch matchups for week %d: %w", week, err)
	}
	owners, err := s.owners(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int][]MatchupSide)
	for _, m := range matchups {
		o, ok := owners[m.RosterID]
		if !ok {
			o = unknownOwner
		}
		grouped[m.MatchupID] = append(grouped[m.MatchupID], MatchupSide{
			RosterID: m.RosterID,
			Owner:    o.name,
			TeamName: o.teamName,
			Points:   m.EffectivePoints(),
		})
	}

	groups := make([]MatchupGroup, 0, len(grouped))
	for id, sides := range grouped {
		sort.Slice(sides, func(i, j int) bool { return sides[i].RosterID < sides[j].RosterID })
		groups = append(groups, MatchupGroup{MatchupID: id, Sides: sides})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].MatchupID < groups[j].MatchupID })
	return groups, nil
}
