package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
)

func TestScoreFiftyPointGame(t *testing.T) {
	stat := boxscores.StatLine{
		Points:                   50,
		TotalRebounds:            5,
		Assists:                  2,
		Turnovers:                3,
		MadeThreePointFieldGoals: 2,
	}

	assert.InDelta(t, 34.0, Score(stat, Default()), 1e-9)
}

func TestScoreNoDoubleDoubleBonus(t *testing.T) {
	cfg := Default().With(KeyDoubleDouble, 100).With(KeyTripleDouble, 1000)
	stat := boxscores.StatLine{Points: 25, TotalRebounds: 9, Assists: 9, Steals: 1, Blocks: 1}

	// 12.5 + 9 + 9 + 2 + 2
	assert.InDelta(t, 34.5, Score(stat, cfg), 1e-9)
}

func TestScoreDoubleDouble(t *testing.T) {
	stat := boxscores.StatLine{Points: 20, TotalRebounds: 10}

	// 10 + 10 + bonus_dd
	assert.InDelta(t, 21.0, Score(stat, Default()), 1e-9)
}

func TestScoreTripleDoubleAddsBothBonuses(t *testing.T) {
	stat := boxscores.StatLine{Points: 10, TotalRebounds: 10, Assists: 10}
	base := 5.0 + 10 + 10

	got := Score(stat, Default())

	assert.InDelta(t, base+1.0+2.0, got, 1e-9)
}

func TestScoreThresholdBonusesIndependent(t *testing.T) {
	cfg := Default().With(KeyAssists15, 3).With(KeyRebounds20, 4)
	stat := boxscores.StatLine{Points: 0, TotalRebounds: 20, Assists: 15}

	// 20 + 15 + dd 1 + 15a 3 + 20r 4
	assert.InDelta(t, 43.0, Score(stat, cfg), 1e-9)
}

func TestScoreIgnoresUnmappedWeights(t *testing.T) {
	cfg := Default().With(KeyFouledOut, -50).With("pf", -10)
	stat := boxscores.StatLine{Points: 2, PersonalFouls: 6}

	assert.InDelta(t, 1.0, Score(stat, cfg), 1e-9)
}

func TestScoreMissingWeightContributesZero(t *testing.T) {
	cfg := Config{Weights: map[string]float64{KeyPoints: 1}}
	stat := boxscores.StatLine{Points: 12, TotalRebounds: 11, Assists: 3}

	assert.InDelta(t, 12.0, Score(stat, cfg), 1e-9)
}

func TestScoreAllReturnsCopies(t *testing.T) {
	lines := []boxscores.StatLine{{Name: "A", Points: 10}, {Name: "B", Points: 4}}

	scored := ScoreAll(lines, Default())

	assert.Equal(t, 5.0, scored[0].FantasyPoints)
	assert.Equal(t, 2.0, scored[1].FantasyPoints)
	assert.Zero(t, lines[0].FantasyPoints)
}

func TestDoubleFigureCategories(t *testing.T) {
	stat := boxscores.StatLine{Points: 10, TotalRebounds: 10, Assists: 10, Steals: 10, Blocks: 9, Turnovers: 12}

	assert.Equal(t, 4, DoubleFigureCategories(stat))
}
