package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PlaysTurnsAndPassesOnBadInput(t *testing.T) {
	// One clean turn followed by a board with a garbage symbol: the
	// first turn gets a real move, the second a pass, and the loop ends
	// cleanly at EOF.
	input := strings.Join([]string{
		"$$$ exec p1 : [robots/bot]",
		"Anfield 4 4:",
		"    0123",
		"000 ....",
		"001 ....",
		"002 ..@.",
		"003 ....",
		"Piece 2 1:",
		"OO",
		"Anfield 4 4:",
		"    0123",
		"000 ..x.",
	}, "\n") + "\n"

	var out, logs bytes.Buffer
	logger := zerolog.New(&logs)

	err := run(strings.NewReader(input), &out, logger)

	require.NoError(t, err)
	assert.Equal(t, "1 2\n0 0\n", out.String())

	// The board dump runs at debug level for every parsed turn.
	assert.Contains(t, logs.String(), "Board state:")
	assert.Contains(t, logs.String(), "..@.")
}
