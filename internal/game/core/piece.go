package core

// PieceCell is one square of the piece grid as announced by the engine.
type PieceCell uint8

const (
	PieceEmpty PieceCell = iota
	PieceFilled
)

// Piece is the raw piece grid for one turn, stored row-major like Board.
// The announced rectangle may carry empty border rows and columns around
// the actual shape; Normalize strips them.
type Piece struct {
	W, H  int
	Cells []PieceCell
}

func NewPiece(w, h int) *Piece {
	return &Piece{W: w, H: h, Cells: make([]PieceCell, w*h)}
}

func (p *Piece) Idx(x, y int) int { return y*p.W + x }

func (p *Piece) CellAt(x, y int) PieceCell {
	return p.Cells[p.Idx(x, y)]
}

func (p *Piece) SetCell(x, y int, c PieceCell) {
	p.Cells[p.Idx(x, y)] = c
}

// Offset is the displacement of one filled piece cell from the
// normalized piece's top-left corner.
type Offset struct {
	DX, DY int
}

// NormalizedPiece is a piece reduced to its minimal bounding box:
// the filled cells as offsets from the box's top-left, the box
// dimensions, and the correction from the box's top-left back to the
// top-left of the original piece grid. Moves are searched in the
// normalized frame and translated back through Correction on output.
type NormalizedPiece struct {
	Offsets    []Offset
	Correction Offset
	W, H       int
}

// Empty reports whether the piece had no filled cells at all. The
// engine should never send such a piece; when it does the only
// legal answer is a pass.
func (np NormalizedPiece) Empty() bool {
	return len(np.Offsets) == 0
}

// Normalize finds the minimal bounding box of the filled cells and
// returns the filled cells as offsets within that box. Row-major scan
// order keeps the offset list deterministic.
func (p *Piece) Normalize() NormalizedPiece {
	minRow, minCol := p.H, p.W
	maxRow, maxCol := -1, -1

	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			if p.CellAt(x, y) == PieceFilled {
				if y < minRow {
					minRow = y
				}
				if y > maxRow {
					maxRow = y
				}
				if x < minCol {
					minCol = x
				}
				if x > maxCol {
					maxCol = x
				}
			}
		}
	}

	if maxRow < minRow || maxCol < minCol {
		return NormalizedPiece{}
	}

	np := NormalizedPiece{
		Correction: Offset{DX: minCol, DY: minRow},
		W:          maxCol - minCol + 1,
		H:          maxRow - minRow + 1,
	}
	for y := minRow; y <= maxRow; y++ {
		for x := minCol; x <= maxCol; x++ {
			if p.CellAt(x, y) == PieceFilled {
				np.Offsets = append(np.Offsets, Offset{DX: x - minCol, DY: y - minRow})
			}
		}
	}
	return np
}
