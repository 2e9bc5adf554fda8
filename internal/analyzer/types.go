package analyzer

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/montecarlo/internal/dice"
)

// FaceCounts tallies each face per die column.
// Counts[i][j] is how often Faces[i] came up on Columns[j].
type FaceCounts[F dice.Face] struct {
	Faces   []F
	Columns []string
	Counts  [][]int
}

// Count returns the tally for a face on a die column
func (fc FaceCounts[F]) Count(face F, column string) int {
	j := -1
	for k, c := range fc.Columns {
		if c == column {
			j = k
			break
		}
	}
	if j < 0 {
		return 0
	}
	for i, f := range fc.Faces {
		if f == face {
			return fc.Counts[i][j]
		}
	}
	return 0
}

// Header returns "Face" followed by the die columns
func (fc FaceCounts[F]) Header() []string {
	return append([]string{"Face"}, fc.Columns...)
}

// Records returns one formatted record per face
func (fc FaceCounts[F]) Records() [][]string {
	records := make([][]string, len(fc.Faces))
	for i, face := range fc.Faces {
		rec := make([]string, 0, len(fc.Columns)+1)
		rec = append(rec, fmt.Sprint(face))
		for _, n := range fc.Counts[i] {
			rec = append(rec, strconv.Itoa(n))
		}
		records[i] = rec
	}
	return records
}

// Len returns the number of distinct faces
func (fc FaceCounts[F]) Len() int {
	return len(fc.Faces)
}

// Count is one distinct combination or permutation and its frequency
type Count[F dice.Face] struct {
	Faces []F
	Count int
}

// Counts is an ordered frequency table, most frequent first
type Counts[F dice.Face] []Count[F]

// Total sums every count
func (c Counts[F]) Total() int {
	total := 0
	for _, row := range c {
		total += row.Count
	}
	return total
}

// Header returns one column per die position followed by "count"
func (c Counts[F]) Header() []string {
	width := 0
	if len(c) > 0 {
		width = len(c[0].Faces)
	}
	header := make([]string, 0, width+1)
	for i := 0; i < width; i++ {
		header = append(header, "Face_"+strconv.Itoa(i))
	}
	return append(header, "count")
}

// Records returns one formatted record per distinct key
func (c Counts[F]) Records() [][]string {
	records := make([][]string, len(c))
	for i, row := range c {
		rec := make([]string, 0, len(row.Faces)+1)
		for _, f := range row.Faces {
			rec = append(rec, fmt.Sprint(f))
		}
		records[i] = append(rec, strconv.Itoa(row.Count))
	}
	return records
}

// Len returns the number of distinct keys
func (c Counts[F]) Len() int {
	return len(c)
}

// Summary condenses the statistics of one play
type Summary struct {
	GameID               string
	Dice                 int
	Rolls                int
	Jackpots             int
	JackpotRate          float64
	DistinctCombinations int
	DistinctPermutations int
}
