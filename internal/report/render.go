package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/timeutil"
)

var rule = strings.Repeat("=", 60)

// Render writes the console form of the report.
func Render(w io.Writer, d Daily) error {
	p := &printer{w: w}

	p.printf("%s\n", rule)
	p.printf("Top Fantasy Players for %s:\n", d.Date)
	p.printf("%s\n", rule)
	for i, line := range d.TopPlayers {
		p.ranked(i+1, line.Name, line.FantasyPoints, line)
	}

	if !d.HasTrending() {
		return p.err
	}

	p.printf("\nSleeper Trending Players %s:\n", trendingDate(d.Date))
	rank := 0
	for _, m := range d.Matches {
		if !m.Matched || m.Stat == nil {
			continue
		}
		rank++
		p.ranked(rank, m.BoxScoreName, m.FantasyPoints, *m.Stat)
	}
	p.printf("\nMatched %d/%d trending players with game data\n", rank, len(d.Trending))

	return p.err
}

func trendingDate(date string) string {
	t, err := timeutil.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("01-02-2006")
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) ranked(rank int, name string, fp float64, line boxscores.StatLine) {
	p.printf("%2d. %-5s - %6.2f FP\n", rank, name, fp)
	p.printf("     %dpts, %dreb, %dast\n", line.Points, line.TotalRebounds, line.Assists)
}
