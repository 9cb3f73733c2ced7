package game

import "github.com/fillergame/fillerbot/internal/game/core"

// This file holds the per-turn territory statistics the scorer reads.
// Everything is recomputed with a full board scan each turn; the board
// is a fresh snapshot and there is no cross-turn state to update.

type turnStats struct {
	mine    int
	theirs  int
	phase   float64
	myCells []core.Coordinate
}

func collectStats(b *core.Board, player core.Player) turnStats {
	s := turnStats{
		mine:    b.Count(player.Cell()),
		theirs:  b.Count(player.Opponent().Cell()),
		myCells: b.Positions(player.Cell()),
	}
	s.phase = float64(s.mine+s.theirs) / float64(b.W*b.H)
	return s
}
