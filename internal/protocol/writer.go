package protocol

import (
	"fmt"
	"io"

	"github.com/fillergame/fillerbot/internal/game/core"
)

// WriteMove emits one move line in the engine's expected format. The
// caller owns buffering and must flush after every turn.
func WriteMove(w io.Writer, move core.Coordinate) error {
	_, err := fmt.Fprintf(w, "%d %d\n", move.X, move.Y)
	return err
}
