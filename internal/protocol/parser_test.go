package protocol

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillergame/fillerbot/internal/game/core"
	"github.com/fillergame/fillerbot/internal/testutil"
)

const sampleTurn = `$$$ exec p2 : [robots/bot]
Anfield 5 3:
    01234
000 .....
001 .@$..
002 ..a.s
Piece 2 2:
O.
.O
`

func TestParser_Next(t *testing.T) {
	p := NewParser(strings.NewReader(sampleTurn), testutil.NopLogger())

	turn, err := p.Next()
	require.NoError(t, err)

	assert.Equal(t, core.PlayerTwo, turn.Player)

	require.Equal(t, 5, turn.Board.W)
	require.Equal(t, 3, turn.Board.H)
	assert.Equal(t, core.CellPlayer1, turn.Board.CellAt(1, 1))
	assert.Equal(t, core.CellPlayer2, turn.Board.CellAt(2, 1))
	// Lowercase symbols mark the most recent placement; same owners.
	assert.Equal(t, core.CellPlayer1, turn.Board.CellAt(2, 2))
	assert.Equal(t, core.CellPlayer2, turn.Board.CellAt(4, 2))
	assert.Equal(t, core.CellEmpty, turn.Board.CellAt(0, 0))

	require.Equal(t, 2, turn.Piece.W)
	require.Equal(t, 2, turn.Piece.H)
	assert.Equal(t, core.PieceFilled, turn.Piece.CellAt(0, 0))
	assert.Equal(t, core.PieceEmpty, turn.Piece.CellAt(1, 0))
	assert.Equal(t, core.PieceFilled, turn.Piece.CellAt(1, 1))

	// Stream is exhausted after the single turn.
	_, err = p.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParser_MultipleTurns(t *testing.T) {
	input := `$$$ exec p1 : [robots/bot]
Anfield 2 2:
    01
000 @.
001 ..
Piece 1 1:
O
Anfield 2 2:
    01
000 @a
001 .s
Piece 1 1:
O
`
	p := NewParser(strings.NewReader(input), testutil.NopLogger())

	first, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, core.PlayerOne, first.Player)
	assert.Equal(t, core.CellEmpty, first.Board.CellAt(1, 0))

	second, err := p.Next()
	require.NoError(t, err)
	// Identity persists without being re-announced.
	assert.Equal(t, core.PlayerOne, second.Player)
	assert.Equal(t, core.CellPlayer1, second.Board.CellAt(1, 0))
	assert.Equal(t, core.CellPlayer2, second.Board.CellAt(1, 1))

	_, err = p.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			"board row shorter than width",
			"Anfield 5 2:\n    01234\n000 ..\n001 .....\nPiece 1 1:\nO\n",
			ErrShortRow,
		},
		{
			"unknown board symbol",
			"Anfield 3 1:\n    012\n000 .x.\nPiece 1 1:\nO\n",
			ErrBadSymbol,
		},
		{
			"unknown piece symbol",
			"Anfield 2 1:\n    01\n000 ..\nPiece 2 1:\nO?\n",
			ErrBadSymbol,
		},
		{
			"malformed board header",
			"Anfield five 2:\n",
			ErrBadHeader,
		},
		{
			"non-positive dimensions",
			"Anfield 0 2:\n",
			ErrBadHeader,
		},
		{
			"board truncated mid-rows",
			"Anfield 3 3:\n    012\n000 ...\n",
			ErrTruncatedInput,
		},
		{
			"piece never arrives",
			"Anfield 2 1:\n    01\n000 ..\n",
			ErrTruncatedInput,
		},
		{
			"piece truncated mid-rows",
			"Anfield 2 1:\n    01\n000 ..\nPiece 2 3:\nO.\n",
			ErrTruncatedInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(strings.NewReader(tt.input), testutil.NopLogger())
			_, err := p.Next()
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParser_DefaultsToPlayerOne(t *testing.T) {
	input := "Anfield 2 1:\n    01\n000 @.\nPiece 1 1:\nO\n"
	p := NewParser(strings.NewReader(input), testutil.NopLogger())

	turn, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, core.PlayerOne, turn.Player)
}

func TestWriteMove(t *testing.T) {
	var sb strings.Builder

	require.NoError(t, WriteMove(&sb, core.Coordinate{X: 7, Y: 12}))
	require.NoError(t, WriteMove(&sb, core.Coordinate{X: 0, Y: 0}))

	assert.Equal(t, "7 12\n0 0\n", sb.String())
}
