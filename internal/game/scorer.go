package game

import (
	"math"

	"github.com/fillergame/fillerbot/internal/common"
	"github.com/fillergame/fillerbot/internal/game/core"
	"github.com/fillergame/fillerbot/internal/game/heat"
)

// minScore is assigned to placements that claim no new territory.
// Any placement gaining at least one cell always outranks it.
const minScore = math.MinInt32 / 4

// scorer evaluates candidate anchors for one turn. It is built once
// per turn from the board snapshot, the heat map and the phase stats,
// then applied to every legal anchor.
type scorer struct {
	board   *core.Board
	own     core.Cell
	opp     core.Cell
	offsets []core.Offset
	heat    heat.Map
	stats   turnStats
	weights Weights
	params  HeuristicParams
}

func newScorer(b *core.Board, player core.Player, offsets []core.Offset, hm heat.Map, stats turnStats, params HeuristicParams) scorer {
	return scorer{
		board:   b,
		own:     player.Cell(),
		opp:     player.Opponent().Cell(),
		offsets: offsets,
		heat:    hm,
		stats:   stats,
		weights: params.phaseWeights(stats.phase),
		params:  params,
	}
}

// score computes the composite score of placing the piece at anchor.
// Only offsets landing on empty cells contribute; the single cell that
// overlaps our own territory is already ours and gains nothing.
func (s scorer) score(anchor core.Coordinate) int {
	newCells := 0
	liberties := 0
	pressure := 0
	heatSum := 0

	for _, off := range s.offsets {
		cell := anchor.Add(off)
		if s.board.Cells[cell.ToIndex(s.board.W)] != core.CellEmpty {
			continue
		}
		newCells++

		for _, n := range cell.ValidNeighbors(s.board.W, s.board.H) {
			switch s.board.Cells[n.ToIndex(s.board.W)] {
			case core.CellEmpty:
				liberties++
			case s.opp:
				pressure++
			}
		}

		// Cells with no distance measured carry no heat; that happens
		// only while the opponent has no cells on the board.
		if d := s.heat.At(cell.X, cell.Y); d > 0 {
			heatSum += d
		}
	}

	if newCells == 0 {
		return minScore
	}

	score := newCells*s.weights.Territory +
		liberties*s.weights.Liberties +
		pressure*s.weights.Pressure +
		heatSum*s.weights.Heat

	// Catch-up: while behind on territory, lean harder into contact.
	if s.stats.mine < s.stats.theirs {
		score += pressure * s.params.AggressionBonus
	}

	score += s.connectivityBonus(anchor)
	return score
}

// connectivityBonus rewards anchors near our existing mass. The reward
// is capped at ConnectivityRadius steps so it can nudge ties but never
// dominate the main terms.
func (s scorer) connectivityBonus(anchor core.Coordinate) int {
	if s.stats.mine == 0 {
		return 0
	}
	nearest := math.MaxInt
	for _, c := range s.stats.myCells {
		if d := anchor.DistanceTo(c); d < nearest {
			nearest = d
		}
	}
	return (s.params.ConnectivityRadius - common.Min(nearest, s.params.ConnectivityRadius)) * s.params.ConnectivityScale
}
