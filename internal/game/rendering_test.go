package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fillergame/fillerbot/internal/testutil"
)

func TestBoardString(t *testing.T) {
	b := testutil.ParseBoard(`
		.@$
		...
	`)

	assert.Equal(t, ".@$\n...\n", BoardString(b))
}

func TestBoardString_RoundTripsThroughFixture(t *testing.T) {
	diagram := "@@..$\n.....\n..$$.\n"
	b := testutil.ParseBoard(diagram)

	assert.Equal(t, diagram, BoardString(b))
}
