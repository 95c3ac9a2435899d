package bbref

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
)

// row builds a 26-cell daily leaders row: rank, name, team, location, opponent,
// result, minutes, then the counting columns with percentages interleaved.
func row(name, team, loc, opp, result, mp string, fg, fga, tp, tpa, ft, fta, orb, drb, ast, stl, blk, tov, pf, pts int, pm string) string {
	cells := []string{
		"1", name, team, loc, opp, result, mp,
		fmt.Sprint(fg), fmt.Sprint(fga), ".500",
		fmt.Sprint(tp), fmt.Sprint(tpa), ".400",
		fmt.Sprint(ft), fmt.Sprint(fta), ".800",
		fmt.Sprint(orb), fmt.Sprint(drb), fmt.Sprint(orb + drb),
		fmt.Sprint(ast), fmt.Sprint(stl), fmt.Sprint(blk), fmt.Sprint(tov), fmt.Sprint(pf), fmt.Sprint(pts),
		pm,
	}
	var b strings.Builder
	b.WriteString("<tr><th>" + cells[0] + "</th>")
	for _, c := range cells[1:] {
		b.WriteString("<td>" + c + "</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}

func page(tableID string, rows ...string) string {
	return `<html><head><title>Daily Leaders</title></head><body><table id="` + tableID + `"><thead><tr><th>Rk</th></tr></thead><tbody>` +
		strings.Join(rows, "") + `</tbody></table></body></html>`
}

func TestParseMapsCells(t *testing.T) {
	html := page("dailyleaders",
		row("LeBron James", "lal", "vs.", "bos", "W (+5)", "36:12", 11, 20, 2, 5, 6, 8, 1, 7, 9, 2, 1, 3, 2, 30, "+5"),
		row("Jayson Tatum", "BOS", "@", "LAL", "L (-5)", "38", 9, 21, 3, 9, 4, 4, 0, 10, 4, 1, 0, 2, 3, 25, "-5"),
	)

	parsed, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if parsed.TableID != "dailyleaders" || parsed.Rows != 2 || len(parsed.Lines) != 2 {
		t.Fatalf("unexpected parse result %+v", parsed)
	}

	lbj := parsed.Lines[0]
	want := boxscores.StatLine{
		Name: "LeBron James", Team: "LAL", Location: boxscores.LocationHome, Opponent: "BOS",
		Outcome: boxscores.OutcomeWin, MinutesPlayed: 36,
		MadeFieldGoals: 11, AttemptedFieldGoals: 20,
		MadeThreePointFieldGoals: 2, AttemptedThreePointFieldGoals: 5,
		MadeFreeThrows: 6, AttemptedFreeThrows: 8,
		OffensiveRebounds: 1, DefensiveRebounds: 7, TotalRebounds: 8,
		Assists: 9, Steals: 2, Blocks: 1, Turnovers: 3, PersonalFouls: 2, Points: 30, PlusMinus: 5,
	}
	if lbj != want {
		t.Fatalf("unexpected line\n got %+v\nwant %+v", lbj, want)
	}

	tatum := parsed.Lines[1]
	if tatum.Location != boxscores.LocationAway || tatum.Outcome != boxscores.OutcomeLoss {
		t.Fatalf("expected away loss, got %s %s", tatum.Location, tatum.Outcome)
	}
	if tatum.MinutesPlayed != 38 || tatum.PlusMinus != -5 || tatum.TotalRebounds != 10 {
		t.Fatalf("unexpected tatum line %+v", tatum)
	}
}

func TestParseFallsBackToStatsTable(t *testing.T) {
	html := page("stats", row("A Player", "NYK", "@", "MIA", "W", "", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, ""))

	parsed, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if parsed.TableID != "stats" || len(parsed.Lines) != 1 {
		t.Fatalf("expected one line from stats table, got %+v", parsed)
	}
	if parsed.Lines[0].MinutesPlayed != 0 || parsed.Lines[0].PlusMinus != 0 {
		t.Fatalf("expected empty cells to parse as zero, got %+v", parsed.Lines[0])
	}
}

func TestParseSkipsShortRowsAndCollectsErrors(t *testing.T) {
	bad := row("Bad Row", "LAL", "vs.", "BOS", "W", "20", 1, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, "even")
	html := page("dailyleaders",
		`<tr class="thead"><th>Rk</th><th>Player</th></tr>`,
		bad,
		row("Good Row", "LAL", "vs.", "BOS", "W", "20", 1, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, ""),
	)

	parsed, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if parsed.Skipped != 1 {
		t.Fatalf("expected 1 skipped row, got %d", parsed.Skipped)
	}
	if len(parsed.RowErrors) != 1 || parsed.RowErrors[0].Name != "Bad Row" || parsed.RowErrors[0].Row != 2 {
		t.Fatalf("expected one row error for Bad Row, got %+v", parsed.RowErrors)
	}
	if len(parsed.Lines) != 1 || parsed.Lines[0].Name != "Good Row" {
		t.Fatalf("expected good row parsed, got %+v", parsed.Lines)
	}
}

func TestParseMissingTable(t *testing.T) {
	html := `<html><head><title>Access Denied</title></head><body><table id="other"></table><table></table><div class="error">Blocked</div></body></html>`

	_, err := Parse(strings.NewReader(html))
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
	var tnf *TableNotFoundError
	if !errors.As(err, &tnf) {
		t.Fatalf("expected TableNotFoundError, got %T", err)
	}
	if len(tnf.TableIDs) != 2 || tnf.TableIDs[0] != "other" || tnf.TableIDs[1] != "no-id" {
		t.Fatalf("unexpected table ids %v", tnf.TableIDs)
	}
	if tnf.PageError != "Blocked" || tnf.Title != "Access Denied" {
		t.Fatalf("unexpected diagnostics %+v", tnf)
	}
}

func TestParseMissingBody(t *testing.T) {
	// The html parser inserts an implicit tbody around bare rows, so only a row-less table lacks one.
	html := `<html><body><table id="dailyleaders"><thead><tr><th>Rk</th></tr></thead></table></body></html>`

	if _, err := Parse(strings.NewReader(html)); !errors.Is(err, ErrNoTableBody) {
		t.Fatalf("expected ErrNoTableBody, got %v", err)
	}
}

func TestParseMinutes(t *testing.T) {
	cases := map[string]int{"": 0, "12": 12, "33:36": 33, "0:45": 0}
	for in, want := range cases {
		got, err := parseMinutes(in)
		if err != nil || got != want {
			t.Fatalf("parseMinutes(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	if _, err := parseMinutes("DNP"); err == nil {
		t.Fatalf("expected error for non-numeric minutes")
	}
}
