// Package rules implements the placement rule of the game and the
// enumeration of legal anchors for a normalized piece.
package rules

import "github.com/fillergame/fillerbot/internal/game/core"

// IsLegal reports whether placing the piece with its normalized top-left
// at anchor is a valid move for the given player. A placement is valid
// iff every filled cell lands on the board, none of them lands on the
// opponent, and exactly one of them overlaps the player's own territory.
func IsLegal(b *core.Board, player core.Player, anchor core.Coordinate, offsets []core.Offset) bool {
	own := player.Cell()
	opp := player.Opponent().Cell()

	overlaps := 0
	for _, off := range offsets {
		cell := anchor.Add(off)
		if !cell.IsValid(b.W, b.H) {
			return false
		}
		switch b.Cells[cell.ToIndex(b.W)] {
		case opp:
			return false
		case own:
			overlaps++
		}
	}
	return overlaps == 1
}

// Window is an inclusive rectangle of candidate anchors. Both the
// normal bounded scan and the exhaustive fallback are expressed as
// windows so they cannot disagree on what counts as legal.
type Window struct {
	StartX, StartY int
	EndX, EndY     int
}

// BoundedWindow covers every anchor from which the normalized bounding
// box fits on the board, shifted by the piece's anchor correction so
// that the coordinate printed after subtracting the correction is never
// negative.
func BoundedWindow(b *core.Board, np core.NormalizedPiece) Window {
	return Window{
		StartX: np.Correction.DX,
		StartY: np.Correction.DY,
		EndX:   b.W - np.W + np.Correction.DX,
		EndY:   b.H - np.H + np.Correction.DY,
	}
}

// FullWindow is the authoritative fallback when the bounded scan comes
// up empty: every anchor on the board, with a margin past the far edge
// that IsLegal rejects on its own. Like BoundedWindow it starts at the
// anchor correction: anchors left of or above it would translate to
// negative coordinates, which the protocol cannot express, so such
// placements are passes rather than moves.
func FullWindow(b *core.Board, np core.NormalizedPiece) Window {
	return Window{
		StartX: np.Correction.DX,
		StartY: np.Correction.DY,
		EndX:   b.W,
		EndY:   b.H,
	}
}

// FindLegal enumerates every anchor in the window for which IsLegal
// holds, in row-major order.
func FindLegal(b *core.Board, player core.Player, offsets []core.Offset, w Window) []core.Coordinate {
	var legal []core.Coordinate
	if len(offsets) == 0 {
		return legal
	}
	for y := w.StartY; y <= w.EndY; y++ {
		for x := w.StartX; x <= w.EndX; x++ {
			anchor := core.Coordinate{X: x, Y: y}
			if IsLegal(b, player, anchor, offsets) {
				legal = append(legal, anchor)
			}
		}
	}
	return legal
}
