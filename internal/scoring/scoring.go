// Package scoring turns box-score stat lines into fantasy points.
package scoring

import "github.com/ajuarez99/ballknowers/internal/domain/boxscores"

const (
	doubleFigures     = 10
	doubleDoubleCount = 2
	tripleDoubleCount = 3
	points40          = 40
	points50          = 50
	assists15         = 15
	rebounds20        = 20
)

type category struct {
	key   string
	value func(boxscores.StatLine) int
}

// weighted is the fixed stat → weight correspondence. Weights such as "ff"
// have no stat here and are never applied.
var weighted = []category{
	{KeyPoints, func(s boxscores.StatLine) int { return s.Points }},
	{KeyRebounds, func(s boxscores.StatLine) int { return s.TotalRebounds }},
	{KeyAssists, func(s boxscores.StatLine) int { return s.Assists }},
	{KeySteals, func(s boxscores.StatLine) int { return s.Steals }},
	{KeyBlocks, func(s boxscores.StatLine) int { return s.Blocks }},
	{KeyTurnovers, func(s boxscores.StatLine) int { return s.Turnovers }},
	{KeyThreesMade, func(s boxscores.StatLine) int { return s.MadeThreePointFieldGoals }},
}

// Score computes fantasy points for one stat line.
func Score(stat boxscores.StatLine, cfg Config) float64 {
	fp := 0.0
	for _, c := range weighted {
		fp += float64(c.value(stat)) * cfg.Weight(c.key)
	}

	doubles := DoubleFigureCategories(stat)
	if doubles >= doubleDoubleCount {
		fp += cfg.Weight(KeyDoubleDouble)
	}
	if doubles >= tripleDoubleCount {
		fp += cfg.Weight(KeyTripleDouble)
	}

	if stat.Points >= points40 {
		fp += cfg.Weight(KeyPoints40)
	}
	if stat.Points >= points50 {
		fp += cfg.Weight(KeyPoints50)
	}
	if stat.Assists >= assists15 {
		fp += cfg.Weight(KeyAssists15)
	}
	if stat.TotalRebounds >= rebounds20 {
		fp += cfg.Weight(KeyRebounds20)
	}

	return fp
}

// DoubleFigureCategories counts points, rebounds, assists, steals and blocks at 10 or more.
func DoubleFigureCategories(stat boxscores.StatLine) int {
	n := 0
	for _, v := range []int{stat.Points, stat.TotalRebounds, stat.Assists, stat.Steals, stat.Blocks} {
		if v >= doubleFigures {
			n++
		}
	}
	return n
}

// ScoreAll returns copies of lines with FantasyPoints populated.
func ScoreAll(lines []boxscores.StatLine, cfg Config) []boxscores.StatLine {
	out := make([]boxscores.StatLine, len(lines))
	for i, l := range lines {
		l.FantasyPoints = Score(l, cfg)
		out[i] = l
	}
	return out
}
