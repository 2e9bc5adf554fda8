package game

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/montecarlo/internal/common/clock"
	"github.com/KirkDiggler/montecarlo/internal/common/uuid"
	"github.com/KirkDiggler/montecarlo/internal/dice"
)

// Form selects the shape returned by ShowResults
type Form string

const (
	// FormWide has one row per roll and one column per die
	FormWide Form = "wide"

	// FormNarrow has one row per (roll, die) pair
	FormNarrow Form = "narrow"
)

const (
	// RollLabel names the row index of both table forms
	RollLabel = "Roll"

	// DieLabel and OutcomeLabel name the narrow form's columns
	DieLabel     = "Die"
	OutcomeLabel = "Outcome"
)

// Config holds the optional dependencies of a game
type Config struct {
	// Clock stamps each play; defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator names the game; defaults to random UUIDs
	UUIDGenerator uuid.Generator
}

// Table is the rendering view shared by both result forms
type Table interface {
	// Header returns the row label name followed by the column names
	Header() []string

	// Records returns one formatted record per row, aligned with Header
	Records() [][]string

	// Len returns the number of rows
	Len() int
}

// ColumnLabel returns the label of the die at position i
func ColumnLabel(i int) string {
	return "Die_" + strconv.Itoa(i)
}

// Results is the wide roll table: Rows[i][j] is roll i of die j
type Results[F dice.Face] struct {
	Columns []string
	Rows    [][]F
}

// Shape returns the number of rows and columns
func (r Results[F]) Shape() (int, int) {
	return len(r.Rows), len(r.Columns)
}

// Len returns the number of rolls
func (r Results[F]) Len() int {
	return len(r.Rows)
}

// Column returns a copy of one die's outcomes by label
func (r Results[F]) Column(label string) ([]F, bool) {
	for j, c := range r.Columns {
		if c != label {
			continue
		}
		col := make([]F, len(r.Rows))
		for i, row := range r.Rows {
			col[i] = row[j]
		}
		return col, true
	}
	return nil, false
}

// Header implements Table
func (r Results[F]) Header() []string {
	return append([]string{RollLabel}, r.Columns...)
}

// Records implements Table
func (r Results[F]) Records() [][]string {
	records := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.Itoa(i))
		for _, v := range row {
			rec = append(rec, fmt.Sprint(v))
		}
		records[i] = rec
	}
	return records
}

func (r Results[F]) clone() Results[F] {
	out := Results[F]{
		Columns: append([]string(nil), r.Columns...),
		Rows:    make([][]F, len(r.Rows)),
	}
	for i, row := range r.Rows {
		out.Rows[i] = append([]F(nil), row...)
	}
	return out
}

// NarrowRow is one (roll, die) observation
type NarrowRow[F dice.Face] struct {
	Roll    int
	Die     string
	Outcome F
}

// NarrowResults is the long form of Results. Roll is a non-unique row label.
type NarrowResults[F dice.Face] struct {
	Rows []NarrowRow[F]
}

// Len returns the number of observations
func (n NarrowResults[F]) Len() int {
	return len(n.Rows)
}

// Header implements Table
func (n NarrowResults[F]) Header() []string {
	return []string{RollLabel, DieLabel, OutcomeLabel}
}

// Records implements Table
func (n NarrowResults[F]) Records() [][]string {
	records := make([][]string, len(n.Rows))
	for i, row := range n.Rows {
		records[i] = []string{strconv.Itoa(row.Roll), row.Die, fmt.Sprint(row.Outcome)}
	}
	return records
}
