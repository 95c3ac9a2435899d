package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/ajuarez99/ballknowers/internal/providers"
)

func TestFetchBoxScoresReturnsDeterministicSlate(t *testing.T) {
	p := New()

	first, err := p.FetchBoxScores(context.Background(), "2024-01-15")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, _ := p.FetchBoxScores(context.Background(), "2024-02-01")
	if len(first) != len(second) || first[0] != second[0] {
		t.Fatalf("expected identical slates across dates")
	}
	for _, l := range first {
		if l.TotalRebounds != l.OffensiveRebounds+l.DefensiveRebounds {
			t.Fatalf("expected totals derived for %s", l.Name)
		}
	}

	first[0].Points = 999
	again, _ := p.FetchBoxScores(context.Background(), "2024-01-15")
	if again[0].Points == 999 {
		t.Fatalf("expected callers to receive copies")
	}
}

func TestFetchBoxScoresRejectsBadDate(t *testing.T) {
	if _, err := New().FetchBoxScores(context.Background(), "yesterday"); err == nil {
		t.Fatalf("expected invalid date error")
	}
}

func TestFetchTrendingHonorsLimit(t *testing.T) {
	got, err := New().FetchTrending(context.Background(), 24, 2)
	if err != nil || len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d %v", len(got), err)
	}
	all, _ := New().FetchTrending(context.Background(), 24, 0)
	if len(all) != len(trendingAdds) {
		t.Fatalf("expected all entries without limit")
	}
}

func TestFetchUser(t *testing.T) {
	p := New()
	m, err := p.FetchUser(context.Background(), "shajav")
	if err != nil || m.UserID != "u3" {
		t.Fatalf("expected shajav, got %+v %v", m, err)
	}
	if _, err := p.FetchUser(context.Background(), "ghost"); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchLeagueFixtures(t *testing.T) {
	p := New()
	ctx := context.Background()

	rosters, _ := p.FetchRosters(ctx, "L1")
	if len(rosters) == 0 || rosters[0].LeagueID != "L1" {
		t.Fatalf("expected rosters stamped with league id")
	}
	picks, _ := p.FetchDraftPicks(ctx, "D1")
	if len(picks) != 5 || picks[0].DraftID != "D1" {
		t.Fatalf("expected picks stamped with draft id")
	}
	if _, err := p.FetchMatchups(ctx, "L1", 0); err == nil {
		t.Fatalf("expected invalid week error")
	}
	matchups, err := p.FetchMatchups(ctx, "L1", 1)
	if err != nil || len(matchups) == 0 {
		t.Fatalf("expected matchups, got %v", err)
	}
}
