// Package game rolls a fixed set of dice together and keeps the latest
// roll table.
package game

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/montecarlo/internal/common/clock"
	"github.com/KirkDiggler/montecarlo/internal/common/simerr"
	"github.com/KirkDiggler/montecarlo/internal/common/uuid"
	"github.com/KirkDiggler/montecarlo/internal/dice"
)

// Game holds dice by reference; weight changes made to a die after the game
// is built apply to later plays.
type Game[F dice.Face] struct {
	id       string
	dice     []*dice.Die[F]
	results  Results[F]
	playedAt time.Time
	clock    clock.Clock
}

// New creates a game from a non-empty list of dice
func New[F dice.Face](diceList []*dice.Die[F], cfg *Config) (*Game[F], error) {
	if len(diceList) == 0 {
		return nil, fmt.Errorf("%w: a game needs at least one die", simerr.ErrInvalidArgument)
	}
	for i, d := range diceList {
		if d == nil {
			return nil, fmt.Errorf("%w: die %d is nil", simerr.ErrInvalidArgument, i)
		}
	}

	if cfg == nil {
		cfg = &Config{}
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	columns := make([]string, len(diceList))
	for i := range diceList {
		columns[i] = ColumnLabel(i)
	}

	return &Game[F]{
		id:      ids.NewID(),
		dice:    append([]*dice.Die[F](nil), diceList...),
		results: Results[F]{Columns: columns},
		clock:   clk,
	}, nil
}

// Play rolls every die numRolls times and replaces the stored results
func (g *Game[F]) Play(numRolls int) error {
	if numRolls <= 0 {
		return fmt.Errorf("%w: number of rolls must be positive, got %d", simerr.ErrInvalidArgument, numRolls)
	}

	columns := make([][]F, len(g.dice))
	for j, d := range g.dice {
		outcomes, err := d.Roll(numRolls)
		if err != nil {
			return fmt.Errorf("roll %s: %w", ColumnLabel(j), err)
		}
		columns[j] = outcomes
	}

	rows := make([][]F, numRolls)
	for i := range rows {
		row := make([]F, len(columns))
		for j, col := range columns {
			row[j] = col[i]
		}
		rows[i] = row
	}

	g.results = Results[F]{
		Columns: g.results.Columns,
		Rows:    rows,
	}
	g.playedAt = g.clock.Now()
	return nil
}

// ShowResults returns the latest results in wide or narrow form.
// An empty form means wide.
func (g *Game[F]) ShowResults(form Form) (Table, error) {
	switch form {
	case FormWide, "":
		return g.Wide(), nil
	case FormNarrow:
		return g.Narrow(), nil
	default:
		return nil, fmt.Errorf("%w: unknown results form %q", simerr.ErrInvalidArgument, form)
	}
}

// Wide returns a copy of the roll table
func (g *Game[F]) Wide() Results[F] {
	return g.results.clone()
}

// Narrow melts the roll table into one row per (roll, die), die-major
func (g *Game[F]) Narrow() NarrowResults[F] {
	rows := make([]NarrowRow[F], 0, len(g.results.Rows)*len(g.results.Columns))
	for j, label := range g.results.Columns {
		for i, row := range g.results.Rows {
			rows = append(rows, NarrowRow[F]{Roll: i, Die: label, Outcome: row[j]})
		}
	}
	return NarrowResults[F]{Rows: rows}
}

// Results exposes the stored table without copying. Callers must not modify it.
func (g *Game[F]) Results() Results[F] {
	return g.results
}

// ID returns the game identifier
func (g *Game[F]) ID() string {
	return g.id
}

// PlayedAt returns when the stored results were produced; zero before the first play
func (g *Game[F]) PlayedAt() time.Time {
	return g.playedAt
}

// Dice returns the game's dice in column order
func (g *Game[F]) Dice() []*dice.Die[F] {
	return append([]*dice.Die[F](nil), g.dice...)
}

// NumRolls returns the row count of the stored results
func (g *Game[F]) NumRolls() int {
	return len(g.results.Rows)
}
