package fixture

import (
	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/domain/league"
	"github.com/ajuarez99/ballknowers/internal/domain/players"
	"github.com/ajuarez99/ballknowers/internal/domain/trending"
)

var slate = []boxscores.StatLine{
	{Name: "LeBron James", Team: "LAL", Location: boxscores.LocationHome, Opponent: "BOS", Outcome: boxscores.OutcomeWin, MinutesPlayed: 36,
		MadeFieldGoals: 11, AttemptedFieldGoals: 20, MadeThreePointFieldGoals: 2, AttemptedThreePointFieldGoals: 5, MadeFreeThrows: 6, AttemptedFreeThrows: 8,
		OffensiveRebounds: 1, DefensiveRebounds: 9, Assists: 11, Steals: 2, Blocks: 1, Turnovers: 4, PersonalFouls: 2, Points: 30, PlusMinus: 8},
	{Name: "Jayson Tatum", Team: "BOS", Location: boxscores.LocationAway, Opponent: "LAL", Outcome: boxscores.OutcomeLoss, MinutesPlayed: 38,
		MadeFieldGoals: 15, AttemptedFieldGoals: 27, MadeThreePointFieldGoals: 5, AttemptedThreePointFieldGoals: 11, MadeFreeThrows: 7, AttemptedFreeThrows: 7,
		OffensiveRebounds: 0, DefensiveRebounds: 8, Assists: 4, Steals: 1, Blocks: 0, Turnovers: 2, PersonalFouls: 3, Points: 42, PlusMinus: -8},
	{Name: "Nikola Jokic", Team: "DEN", Location: boxscores.LocationHome, Opponent: "PHO", Outcome: boxscores.OutcomeWin, MinutesPlayed: 34,
		MadeFieldGoals: 10, AttemptedFieldGoals: 15, MadeThreePointFieldGoals: 1, AttemptedThreePointFieldGoals: 2, MadeFreeThrows: 4, AttemptedFreeThrows: 5,
		OffensiveRebounds: 3, DefensiveRebounds: 11, Assists: 12, Steals: 1, Blocks: 1, Turnovers: 3, PersonalFouls: 2, Points: 25, PlusMinus: 12},
	{Name: "Jaren Jackson Jr.", Team: "MEM", Location: boxscores.LocationAway, Opponent: "NOP", Outcome: boxscores.OutcomeLoss, MinutesPlayed: 31,
		MadeFieldGoals: 7, AttemptedFieldGoals: 16, MadeThreePointFieldGoals: 2, AttemptedThreePointFieldGoals: 6, MadeFreeThrows: 3, AttemptedFreeThrows: 4,
		OffensiveRebounds: 2, DefensiveRebounds: 4, Assists: 1, Steals: 1, Blocks: 4, Turnovers: 2, PersonalFouls: 5, Points: 19, PlusMinus: -3},
	{Name: "Devin Booker", Team: "PHO", Location: boxscores.LocationAway, Opponent: "DEN", Outcome: boxscores.OutcomeLoss, MinutesPlayed: 35,
		MadeFieldGoals: 9, AttemptedFieldGoals: 22, MadeThreePointFieldGoals: 3, AttemptedThreePointFieldGoals: 8, MadeFreeThrows: 5, AttemptedFreeThrows: 6,
		OffensiveRebounds: 0, DefensiveRebounds: 3, Assists: 7, Steals: 0, Blocks: 0, Turnovers: 4, PersonalFouls: 2, Points: 26, PlusMinus: -12},
	{Name: "Bench Warmer", Team: "NOP", Location: boxscores.LocationHome, Opponent: "MEM", Outcome: boxscores.OutcomeWin},
}

var directory = []players.Player{
	{ID: "4017", FullName: "LeBron James", FirstName: "LeBron", LastName: "James", Team: "LAL", Position: "SF", Status: "Active"},
	{ID: "4866", FullName: "Jayson Tatum", FirstName: "Jayson", LastName: "Tatum", Team: "BOS", Position: "SF", Status: "Active"},
	{ID: "4617", FullName: "Nikola Jokić", FirstName: "Nikola", LastName: "Jokić", Team: "DEN", Position: "C", Status: "Active"},
	{ID: "5012", FullName: "Jaren Jackson", FirstName: "Jaren", LastName: "Jackson", Team: "MEM", Position: "PF", Status: "Active"},
	{ID: "6126", FullName: "Zion Williamson", FirstName: "Zion", LastName: "Williamson", Team: "NOP", Position: "PF", Status: "Inactive", InjuryStatus: "Out"},
	{ID: "9001", FirstName: "Nameless", LastName: "Prospect"},
}

var trendingAdds = []trending.Entry{
	{PlayerID: "4617", Count: 2200},
	{PlayerID: "5012", Count: 1800},
	{PlayerID: "6126", Count: 950},
	{PlayerID: "4017", Count: 400},
	{PlayerID: "0000", Count: 12},
}

var members = []league.Member{
	{UserID: "u1", Username: "popsharky", DisplayName: "PopSharky", TeamName: "Shark Tank"},
	{UserID: "u2", Username: "njerickson", DisplayName: "NJ", TeamName: league.NotAvailable},
	{UserID: "u3", Username: "shajav", DisplayName: "Shajav", TeamName: "Buckets"},
}

var rosters = []league.Roster{
	{RosterID: 1, OwnerID: "u1", Players: []string{"4017", "4866"}, Starters: []string{"4017"}, Reserve: []string{}, Record: "WWL", Wins: 2, Losses: 1, PointsFor: 612.5},
	{RosterID: 2, OwnerID: "u2", Players: []string{"4617"}, Starters: []string{"4617"}, Reserve: []string{}, Record: "LWW", Wins: 2, Losses: 1, PointsFor: 598},
	{RosterID: 3, OwnerID: "u3", Players: []string{"5012"}, Starters: []string{"5012"}, Reserve: []string{}, Record: "LLW", Wins: 1, Losses: 2, PointsFor: 540.25},
	{RosterID: 4, Players: []string{"6126"}, Starters: []string{}, Reserve: []string{}, Record: "LLL", Losses: 3, PointsFor: 401},
}

var picks = []league.DraftPick{
	{PickNo: 1, Round: 1, DraftSlot: 1, RosterID: 2, PickedBy: "u2", PlayerID: "4617",
		Metadata: league.PlayerMetadata{FirstName: "Nikola", LastName: "Jokic", Team: "DEN", Position: "C", PlayerID: "4617"}},
	{PickNo: 2, Round: 1, DraftSlot: 2, RosterID: 1, PickedBy: "u1", PlayerID: "4866",
		Metadata: league.PlayerMetadata{FirstName: "Jayson", LastName: "Tatum", Team: "BOS", Position: "SF", PlayerID: "4866"}},
	{PickNo: 3, Round: 1, DraftSlot: 3, RosterID: 3, PickedBy: "u3", PlayerID: "5012",
		Metadata: league.PlayerMetadata{FirstName: "Jaren", LastName: "Jackson", Team: "MEM", Position: "PF", PlayerID: "5012"}},
	{PickNo: 4, Round: 1, DraftSlot: 4, RosterID: 4, PickedBy: "u9", PlayerID: "6126",
		Metadata: league.PlayerMetadata{FirstName: "Zion", LastName: "Williamson", Team: "NOP", PlayerID: "6126"}},
	{PickNo: 5, Round: 2, DraftSlot: 4, RosterID: 9, PickedBy: "u1", PlayerID: "4017",
		Metadata: league.PlayerMetadata{FirstName: "LeBron", LastName: "James", Team: "LAL", Position: "SF", PlayerID: "4017"}},
}

var matchups = []league.Matchup{
	{MatchupID: 1, RosterID: 1, Points: 201.5, Players: []string{"4017", "4866"}, Starters: []string{"4017"}},
	{MatchupID: 1, RosterID: 2, Points: 188, Players: []string{"4617"}, Starters: []string{"4617"}},
	{MatchupID: 2, RosterID: 3, Points: 150.25, Players: []string{"5012"}, Starters: []string{"5012"}},
	{MatchupID: 2, RosterID: 4, Points: 99, Players: []string{"6126"}, Starters: []string{}},
	{MatchupID: 0, RosterID: 5, Points: 0, Players: []string{}, Starters: []string{}},
}
