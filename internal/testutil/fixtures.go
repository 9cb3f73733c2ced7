package testutil

import (
	"strings"

	"github.com/fillergame/fillerbot/internal/game/core"
)

// ParseBoard builds a board from a string diagram using the wire
// symbols: '.' empty, '@' player one, '$' player two. Leading and
// trailing blank lines are ignored so diagrams can be written as
// indented raw strings. Panics on malformed diagrams; fixtures are
// authored by the tests themselves.
func ParseBoard(diagram string) *core.Board {
	rows := diagramRows(diagram)
	b := core.NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range []byte(row) {
			switch ch {
			case '.':
				b.SetCell(x, y, core.CellEmpty)
			case '@':
				b.SetCell(x, y, core.CellPlayer1)
			case '$':
				b.SetCell(x, y, core.CellPlayer2)
			default:
				panic("testutil: unknown board symbol " + string(ch))
			}
		}
	}
	return b
}

// ParsePiece builds a piece grid from a diagram using '.' for empty
// and 'O' or '#' for filled cells.
func ParsePiece(diagram string) *core.Piece {
	rows := diagramRows(diagram)
	p := core.NewPiece(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range []byte(row) {
			switch ch {
			case '.':
				p.SetCell(x, y, core.PieceEmpty)
			case 'O', '#':
				p.SetCell(x, y, core.PieceFilled)
			default:
				panic("testutil: unknown piece symbol " + string(ch))
			}
		}
	}
	return p
}

func diagramRows(diagram string) []string {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		panic("testutil: empty diagram")
	}
	return rows
}
