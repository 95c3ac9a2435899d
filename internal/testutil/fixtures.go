package testutil

import (
	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/domain/players"
	"github.com/ajuarez99/ballknowers/internal/report"
)

// SampleStatLine returns a played stat line with the given headline numbers.
func SampleStatLine(name string, pts, reb, ast int) boxscores.StatLine {
	return boxscores.StatLine{
		Name:              name,
		Team:              "DEN",
		Location:          boxscores.LocationHome,
		Opponent:          "LAL",
		Outcome:           boxscores.OutcomeWin,
		MinutesPlayed:     34,
		DefensiveRebounds: reb,
		TotalRebounds:     reb,
		Assists:           ast,
		Points:            pts,
	}
}

// SamplePlayer returns a directory entry with a full name.
func SamplePlayer(id, fullName string) players.Player {
	return players.Player{ID: id, FullName: fullName, Team: "DEN", Position: "C"}
}

// SampleReport builds a report for date with a single ranked line.
func SampleReport(date string) report.Daily {
	line := SampleStatLine("Sample Player", 20, 10, 5)
	line.FantasyPoints = 41
	return report.Daily{
		Date:         date,
		TopPlayers:   []boxscores.StatLine{line},
		TotalPlayers: 1,
	}
}
