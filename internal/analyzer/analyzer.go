// Package analyzer computes statistics over a game's latest roll table.
//
// The analyzer keeps a reference to its game and reads the results on every
// call, so statistics always describe the most recent play.
package analyzer

import (
	"fmt"
	"slices"
	"sort"

	"github.com/KirkDiggler/montecarlo/internal/common/simerr"
	"github.com/KirkDiggler/montecarlo/internal/dice"
	"github.com/KirkDiggler/montecarlo/internal/game"
)

// Analyzer derives statistics from a game
type Analyzer[F dice.Face] struct {
	game *game.Game[F]
}

// New creates an analyzer for g
func New[F dice.Face](g *game.Game[F]) (*Analyzer[F], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: analyzer needs a game", simerr.ErrInvalidArgument)
	}
	return &Analyzer[F]{game: g}, nil
}

// Jackpot counts rolls where every die shows the same face
func (a *Analyzer[F]) Jackpot() int {
	count := 0
	for _, row := range a.game.Results().Rows {
		if isJackpot(row) {
			count++
		}
	}
	return count
}

func isJackpot[F dice.Face](row []F) bool {
	if len(row) == 0 {
		return false
	}
	for _, v := range row[1:] {
		if v != row[0] {
			return false
		}
	}
	return true
}

// FaceCountsPerRoll counts how often each face came up on each die across all
// rolls. Faces are sorted ascending; faces a die never showed count 0.
func (a *Analyzer[F]) FaceCountsPerRoll() FaceCounts[F] {
	results := a.game.Results()

	perColumn := make([]map[F]int, len(results.Columns))
	for j := range perColumn {
		perColumn[j] = make(map[F]int)
	}
	seen := make(map[F]struct{})
	for _, row := range results.Rows {
		for j, v := range row {
			perColumn[j][v]++
			seen[v] = struct{}{}
		}
	}

	faces := make([]F, 0, len(seen))
	for f := range seen {
		faces = append(faces, f)
	}
	slices.Sort(faces)

	counts := make([][]int, len(faces))
	for i, f := range faces {
		counts[i] = make([]int, len(results.Columns))
		for j := range results.Columns {
			counts[i][j] = perColumn[j][f]
		}
	}

	return FaceCounts[F]{
		Faces:   faces,
		Columns: append([]string(nil), results.Columns...),
		Counts:  counts,
	}
}

// ComboCount counts distinct order-insensitive combinations of faces per roll
func (a *Analyzer[F]) ComboCount() Counts[F] {
	return a.count(func(row []F) []F {
		sorted := append([]F(nil), row...)
		slices.Sort(sorted)
		return sorted
	})
}

// PermutationCount counts distinct ordered tuples of faces per roll
func (a *Analyzer[F]) PermutationCount() Counts[F] {
	return a.count(func(row []F) []F {
		return append([]F(nil), row...)
	})
}

// count tallies the keys produced by keyOf, most frequent first with ties in
// discovery order.
func (a *Analyzer[F]) count(keyOf func([]F) []F) Counts[F] {
	var out Counts[F]
	index := make(map[string]int)
	for _, row := range a.game.Results().Rows {
		key := keyOf(row)
		id := tupleKey(key)
		if i, ok := index[id]; ok {
			out[i].Count++
			continue
		}
		index[id] = len(out)
		out = append(out, Count[F]{Faces: key, Count: 1})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// tupleKey encodes a tuple so distinct tuples never collide, including
// string faces that contain separators.
func tupleKey[F dice.Face](tuple []F) string {
	return fmt.Sprintf("%#v", tuple)
}

// Summary reports the headline numbers of the latest play
func (a *Analyzer[F]) Summary() Summary {
	rolls := a.game.NumRolls()
	jackpots := a.Jackpot()

	var rate float64
	if rolls > 0 {
		rate = float64(jackpots) / float64(rolls)
	}

	return Summary{
		GameID:               a.game.ID(),
		Dice:                 len(a.game.Dice()),
		Rolls:                rolls,
		Jackpots:             jackpots,
		JackpotRate:          rate,
		DistinctCombinations: a.ComboCount().Len(),
		DistinctPermutations: a.PermutationCount().Len(),
	}
}
