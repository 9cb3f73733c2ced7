package game

import (
	"strings"

	"github.com/fillergame/fillerbot/internal/game/core"
)

// BoardString renders the board as text for debug logging. Symbols
// match the wire protocol: '.' empty, '@' player one, '$' player two.
func BoardString(b *core.Board) string {
	var sb strings.Builder
	sb.Grow((b.W + 1) * b.H)

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			switch b.CellAt(x, y) {
			case core.CellPlayer1:
				sb.WriteByte('@')
			case core.CellPlayer2:
				sb.WriteByte('$')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
