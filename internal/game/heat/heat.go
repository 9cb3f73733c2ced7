// Package heat computes per-cell shortest distances to the opponent's
// territory. The distance map is the "heat" input of the move scorer:
// low values mean a cell sits close to the opponent front.
package heat

import "github.com/fillergame/fillerbot/internal/game/core"

// Unreachable marks cells with no 4-connected path to any opponent cell.
// The search expands through claimed territory, so on a rectangular board
// this survives only when the opponent owns no cells at all.
const Unreachable = -1

// Map holds one distance value per board cell, row-major, same layout
// as core.Board. Opponent cells are 0, their neighbors 1, and so on.
type Map struct {
	W, H int
	D    []int
}

// At returns the distance at (x, y).
func (m Map) At(x, y int) int {
	return m.D[y*m.W+x]
}

// Calculate runs a multi-source BFS seeded at every cell owned by the
// given opponent. It is recomputed from scratch every turn; the board
// is always a fresh snapshot, never an incremental update.
func Calculate(b *core.Board, opponent core.Cell) Map {
	m := Map{W: b.W, H: b.H, D: make([]int, len(b.Cells))}
	for i := range m.D {
		m.D[i] = Unreachable
	}

	queue := make([]core.Coordinate, 0, len(b.Cells))
	for idx, cell := range b.Cells {
		if cell == opponent {
			m.D[idx] = 0
			x, y := b.XY(idx)
			queue = append(queue, core.Coordinate{X: x, Y: y})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		dist := m.At(cur.X, cur.Y)

		for _, n := range cur.ValidNeighbors(b.W, b.H) {
			if m.D[n.ToIndex(b.W)] == Unreachable {
				m.D[n.ToIndex(b.W)] = dist + 1
				queue = append(queue, n)
			}
		}
	}

	return m
}
