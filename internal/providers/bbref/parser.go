package bbref

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
)

var (
	// ErrTableNotFound is returned when the page has no daily leaders table.
	ErrTableNotFound = errors.New("daily leaders table not found")
	// ErrNoTableBody is returned when the table exists but has no tbody.
	ErrNoTableBody = errors.New("daily leaders table has no tbody")
)

// TableNotFoundError carries page details useful for diagnosing a block or layout change.
type TableNotFoundError struct {
	TableIDs  []string
	PageError string
	Title     string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("%s (tables=%v title=%q)", ErrTableNotFound, e.TableIDs, e.Title)
}

func (e *TableNotFoundError) Is(target error) bool {
	return target == ErrTableNotFound
}

// RowError describes a table row that could not be parsed.
type RowError struct {
	Row  int
	Name string
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Name, e.Err)
}

// Parsed is the outcome of reading one daily leaders page.
type Parsed struct {
	TableID   string
	Rows      int
	Skipped   int
	Lines     []boxscores.StatLine
	RowErrors []RowError
}

// Parse reads a daily leaders HTML page.
func Parse(r io.Reader) (Parsed, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Parsed{}, fmt.Errorf("parsing html: %w", err)
	}

	table := doc.Find("table#dailyleaders").First()
	if table.Length() == 0 {
		table = doc.Find("table#stats").First()
	}
	if table.Length() == 0 {
		return Parsed{}, describeMissingTable(doc)
	}

	tableID, _ := table.Attr("id")
	tbody := table.Find("tbody").First()
	if tbody.Length() == 0 {
		return Parsed{TableID: tableID}, ErrNoTableBody
	}

	out := Parsed{TableID: tableID}
	tbody.Find("tr").Each(func(i int, row *goquery.Selection) {
		out.Rows++
		cells := cellTexts(row)
		if len(cells) < minCells {
			out.Skipped++
			return
		}
		line, err := parseRow(cells)
		if err != nil {
			out.RowErrors = append(out.RowErrors, RowError{Row: i + 1, Name: cells[colName], Err: err})
			return
		}
		out.Lines = append(out.Lines, line)
	})
	return out, nil
}

func describeMissingTable(doc *goquery.Document) error {
	e := &TableNotFoundError{}
	doc.Find("table").EachWithBreak(func(i int, t *goquery.Selection) bool {
		if i >= maxLoggedTables {
			return false
		}
		id, ok := t.Attr("id")
		if !ok {
			id = "no-id"
		}
		e.TableIDs = append(e.TableIDs, id)
		return true
	})
	e.PageError = strings.TrimSpace(doc.Find("div.error").First().Text())
	e.Title = strings.TrimSpace(doc.Find("title").First().Text())
	return e
}

func cellTexts(row *goquery.Selection) []string {
	cells := row.Find("th, td")
	out := make([]string, 0, cells.Length())
	cells.Each(func(_ int, c *goquery.Selection) {
		out = append(out, strings.TrimSpace(c.Text()))
	})
	return out
}

func parseRow(cells []string) (boxscores.StatLine, error) {
	line := boxscores.StatLine{
		Name:     cells[colName],
		Team:     strings.ToUpper(cells[colTeam]),
		Location: boxscores.LocationAway,
		Opponent: strings.ToUpper(cells[colOpponent]),
		Outcome:  boxscores.OutcomeLoss,
	}
	if cells[colLocation] == "vs." {
		line.Location = boxscores.LocationHome
	}
	if strings.HasPrefix(cells[colOutcome], "W") {
		line.Outcome = boxscores.OutcomeWin
	}

	minutes, err := parseMinutes(cells[colMinutes])
	if err != nil {
		return boxscores.StatLine{}, err
	}
	line.MinutesPlayed = minutes

	fields := []struct {
		col int
		dst *int
	}{
		{colFGM, &line.MadeFieldGoals},
		{colFGA, &line.AttemptedFieldGoals},
		{col3PM, &line.MadeThreePointFieldGoals},
		{col3PA, &line.AttemptedThreePointFieldGoals},
		{colFTM, &line.MadeFreeThrows},
		{colFTA, &line.AttemptedFreeThrows},
		{colORB, &line.OffensiveRebounds},
		{colDRB, &line.DefensiveRebounds},
		{colAST, &line.Assists},
		{colSTL, &line.Steals},
		{colBLK, &line.Blocks},
		{colTOV, &line.Turnovers},
		{colPF, &line.PersonalFouls},
		{colPTS, &line.Points},
	}
	for _, f := range fields {
		v, err := atoiOrZero(cells[f.col])
		if err != nil {
			return boxscores.StatLine{}, err
		}
		*f.dst = v
	}

	if len(cells) > colPlusMinus && cells[colPlusMinus] != "" {
		pm, err := strconv.Atoi(cells[colPlusMinus])
		if err != nil {
			return boxscores.StatLine{}, err
		}
		line.PlusMinus = pm
	}

	return line.WithTotals(), nil
}

// parseMinutes accepts "33" or "33:36" and keeps whole minutes.
func parseMinutes(raw string) (int, error) {
	if mins, _, ok := strings.Cut(raw, ":"); ok {
		return strconv.Atoi(mins)
	}
	return atoiOrZero(raw)
}

func atoiOrZero(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
