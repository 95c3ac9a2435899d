package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/domain/league"
	"github.com/ajuarez99/ballknowers/internal/domain/trending"
)

func lines(scores ...float64) []boxscores.StatLine {
	out := make([]boxscores.StatLine, len(scores))
	for i, s := range scores {
		out[i] = boxscores.StatLine{Name: string(rune('A' + i)), FantasyPoints: s}
	}
	return out
}

func TestTopNEmpty(t *testing.T) {
	got := TopN(nil, 5)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopNFewerThanN(t *testing.T) {
	got := TopN(lines(10, 30, 20), 10)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"B", "C", "A"}, namesOf(got))
}

func TestTopNStableTies(t *testing.T) {
	got := TopN(lines(5, 9, 5, 9, 1), 4)

	assert.Equal(t, []string{"B", "D", "A", "C"}, namesOf(got))
}

func TestTopNNonPositive(t *testing.T) {
	assert.Empty(t, TopN(lines(1, 2), 0))
	assert.Empty(t, TopN(lines(1, 2), -3))
}

func TestTopNDoesNotReorderInput(t *testing.T) {
	in := lines(1, 2, 3)
	_ = TopN(in, 3)
	assert.Equal(t, []string{"A", "B", "C"}, namesOf(in))
}

func TestNewCountsWholePool(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
	d := New("2024-01-01", lines(1, 2, 3), 2, nil, nil, now)

	assert.Equal(t, 3, d.TotalPlayers)
	assert.Len(t, d.TopPlayers, 2)
	assert.False(t, d.HasTrending())
	assert.Equal(t, time.UTC, d.GeneratedAt.Location())
}

func TestRenderTopAndTrending(t *testing.T) {
	stat := boxscores.StatLine{Name: "LeBron James", Points: 30, TotalRebounds: 8, Assists: 9, FantasyPoints: 45.5}
	d := Daily{
		Date:       "2024-01-15",
		TopPlayers: []boxscores.StatLine{stat},
		Trending:   []trending.Entry{{PlayerID: "1", Count: 10}, {PlayerID: "2", Count: 3}},
		Matches: []trending.MatchResult{
			{PlayerID: "1", Name: "LeBron James", Adds: 10, Matched: true, BoxScoreName: "LeBron James", FantasyPoints: 45.5, Stat: &stat},
			{PlayerID: "2", Name: "Unknown", Adds: 3},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d))
	out := buf.String()

	assert.Contains(t, out, "Top Fantasy Players for 2024-01-15:")
	assert.Contains(t, out, " 1. LeBron James -  45.50 FP\n     30pts, 8reb, 9ast\n")
	assert.Contains(t, out, "Sleeper Trending Players 01-15-2024:")
	assert.Contains(t, out, "Matched 1/2 trending players with game data")
	assert.NotContains(t, out, "Unknown")
}

func TestRenderPadsShortNames(t *testing.T) {
	stat := boxscores.StatLine{Name: "Bol", Points: 12, TotalRebounds: 4, Assists: 1, FantasyPoints: 11}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Daily{Date: "2024-01-15", TopPlayers: []boxscores.StatLine{stat}}))

	assert.Contains(t, buf.String(), " 1. Bol   -  11.00 FP\n")
}

func TestRenderSkipsMatchWithoutStatLine(t *testing.T) {
	stat := boxscores.StatLine{Name: "LeBron James", Points: 30, FantasyPoints: 45.5}
	d := Daily{
		Date:     "2024-01-15",
		Trending: []trending.Entry{{PlayerID: "1", Count: 10}, {PlayerID: "2", Count: 3}},
		Matches: []trending.MatchResult{
			{PlayerID: "1", Matched: true, BoxScoreName: "LeBron James", FantasyPoints: 45.5, Stat: &stat},
			{PlayerID: "2", Matched: true, BoxScoreName: "Ghost Entry"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d))

	assert.NotContains(t, buf.String(), "Ghost Entry")
	assert.Contains(t, buf.String(), "Matched 1/2 trending players with game data")
}

func TestRenderWithoutTrending(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Daily{Date: "2024-01-15", TopPlayers: lines(3)}))

	assert.NotContains(t, buf.String(), "Trending")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderPropagatesWriteError(t *testing.T) {
	assert.Error(t, Render(failingWriter{}, Daily{Date: "2024-01-15"}))
}

func TestWriteDraftCSV(t *testing.T) {
	rows := []league.DraftRow{
		{PickNo: 1, Round: 1, DraftSlot: 1, RosterID: 3, PickedBy: "u1", PlayerName: "Nikola Jokic", TeamPos: "DEN, C", Username: "alice", TeamName: "Nuggets Fans"},
		{PickNo: 2, Round: 1, DraftSlot: 2, RosterID: 9, PickedBy: "u2", PlayerName: "Luka Doncic", TeamPos: "DAL, PG", Username: "Unknown", TeamName: "N/A"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDraftCSV(&buf, rows))

	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, got, 3)
	assert.Equal(t, "pick_no,round,draft_slot,roster_id,picked_by,player_name,team_pos,username,team_name", got[0])
	assert.Equal(t, `1,1,1,3,u1,Nikola Jokic,"DEN, C",alice,Nuggets Fans`, got[1])
	assert.Equal(t, `2,1,2,9,u2,Luka Doncic,"DAL, PG",Unknown,N/A`, got[2])
}

func namesOf(in []boxscores.StatLine) []string {
	out := make([]string, len(in))
	for i, l := range in {
		out[i] = l.Name
	}
	return out
}
