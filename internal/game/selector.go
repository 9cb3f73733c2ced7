// Package game turns one board-and-piece snapshot into a move. Each
// turn is a pure computation: normalize the piece, map distances to the
// opponent, enumerate legal anchors, score them, and pick the best.
package game

import (
	"github.com/rs/zerolog"

	"github.com/fillergame/fillerbot/internal/game/core"
	"github.com/fillergame/fillerbot/internal/game/heat"
	"github.com/fillergame/fillerbot/internal/game/rules"
)

// PassMove is the coordinate emitted when no legal placement exists.
var PassMove = core.Coordinate{X: 0, Y: 0}

// scoredMove pairs a candidate anchor with its heuristic score.
type scoredMove struct {
	pos   core.Coordinate
	score int
}

// better defines the total order on candidates: higher score first,
// then lower y, then lower x. Ties can therefore never be ambiguous.
func (m scoredMove) better(o scoredMove) bool {
	if m.score != o.score {
		return m.score > o.score
	}
	if m.pos.Y != o.pos.Y {
		return m.pos.Y < o.pos.Y
	}
	return m.pos.X < o.pos.X
}

// ChooseMove selects the placement for this turn and returns it in the
// original piece's coordinate frame, ready to print. The boolean is
// false when no legal placement exists and the result is PassMove.
//
// ChooseMove holds no state between calls; independent games can share
// a process freely.
func ChooseMove(b *core.Board, player core.Player, piece *core.Piece, params HeuristicParams, logger zerolog.Logger) (core.Coordinate, bool) {
	np := piece.Normalize()
	if np.Empty() {
		logger.Warn().Msg("Piece has no filled cells, passing")
		return PassMove, false
	}

	hm := heat.Calculate(b, player.Opponent().Cell())

	legal := rules.FindLegal(b, player, np.Offsets, rules.BoundedWindow(b, np))
	if len(legal) == 0 {
		// The bounded window is an optimization; before passing, the
		// full board scan has the final word.
		legal = rules.FindLegal(b, player, np.Offsets, rules.FullWindow(b, np))
		logger.Debug().Int("candidates", len(legal)).Msg("Bounded scan empty, ran full scan")
	}
	if len(legal) == 0 {
		logger.Info().Msg("No legal placement, passing")
		return PassMove, false
	}

	stats := collectStats(b, player)
	sc := newScorer(b, player, np.Offsets, hm, stats, params)

	best := scoredMove{pos: legal[0], score: sc.score(legal[0])}
	for _, anchor := range legal[1:] {
		if m := (scoredMove{pos: anchor, score: sc.score(anchor)}); m.better(best) {
			best = m
		}
	}

	// Translate the normalized anchor back to the original piece frame.
	// Both scan windows start at the correction, so the result cannot go
	// negative; the clamp is a last line of defense.
	out := best.pos.Sub(np.Correction)
	if out.X < 0 {
		out.X = 0
	}
	if out.Y < 0 {
		out.Y = 0
	}

	logger.Debug().
		Int("candidates", len(legal)).
		Int("score", best.score).
		Float64("phase", stats.phase).
		Str("move", out.String()).
		Msg("Selected move")

	return out, true
}
