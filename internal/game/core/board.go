package core

// Cell represents the occupancy of a single board square.
// CellEmpty means unclaimed; the other two values mark territory
// owned by player one or player two.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellPlayer1
	CellPlayer2
)

// Player identifies which side this bot is playing.
type Player int

const (
	PlayerOne Player = iota + 1
	PlayerTwo
)

// Cell returns the board cell value marking this player's territory.
func (p Player) Cell() Cell {
	if p == PlayerOne {
		return CellPlayer1
	}
	return CellPlayer2
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Board is the game field for one turn. Cells are stored row-major,
// length = W*H. The board is rebuilt from scratch every turn by the
// protocol framer; the decision code treats it as read-only.
type Board struct {
	W, H  int
	Cells []Cell
}

func NewBoard(w, h int) *Board {
	return &Board{W: w, H: h, Cells: make([]Cell, w*h)}
}

func (b *Board) Idx(x, y int) int      { return y*b.W + x }
func (b *Board) XY(idx int) (int, int) { return idx % b.W, idx / b.W }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// CellAt returns the cell at (x, y), or CellEmpty for out-of-bounds
// coordinates. Callers that care about the distinction should check
// InBounds first.
func (b *Board) CellAt(x, y int) Cell {
	if !b.InBounds(x, y) {
		return CellEmpty
	}
	return b.Cells[b.Idx(x, y)]
}

func (b *Board) SetCell(x, y int, c Cell) {
	if b.InBounds(x, y) {
		b.Cells[b.Idx(x, y)] = c
	}
}

// Count returns the number of cells holding the given value.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.Cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Positions returns the coordinates of every cell holding the given value,
// in row-major order.
func (b *Board) Positions(c Cell) []Coordinate {
	var pos []Coordinate
	for idx, cell := range b.Cells {
		if cell == c {
			x, y := b.XY(idx)
			pos = append(pos, Coordinate{X: x, Y: y})
		}
	}
	return pos
}
