package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_AddSub(t *testing.T) {
	c := NewCoordinate(3, 4)
	off := Offset{DX: 2, DY: -1}

	assert.Equal(t, Coordinate{X: 5, Y: 3}, c.Add(off))
	assert.Equal(t, Coordinate{X: 1, Y: 5}, c.Sub(off))
	assert.True(t, c.Add(off).Sub(off).Equal(c))
}

func TestCoordinate_DistanceTo(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coordinate
		expected int
	}{
		{"same point", Coordinate{2, 2}, Coordinate{2, 2}, 0},
		{"horizontal", Coordinate{0, 0}, Coordinate{4, 0}, 4},
		{"diagonal", Coordinate{1, 1}, Coordinate{4, 5}, 7},
		{"negative direction", Coordinate{4, 5}, Coordinate{1, 1}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.DistanceTo(tt.b))
		})
	}
}

func TestCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		c        Coordinate
		expected bool
	}{
		{Coordinate{0, 0}, true},
		{Coordinate{4, 4}, true},
		{Coordinate{5, 0}, false},
		{Coordinate{0, 5}, false},
		{Coordinate{-1, 2}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.c.IsValid(5, 5), "IsValid for %s", tt.c)
	}
}

func TestCoordinate_ValidNeighbors(t *testing.T) {
	t.Run("interior cell has four neighbors", func(t *testing.T) {
		n := Coordinate{2, 2}.ValidNeighbors(5, 5)
		assert.Len(t, n, 4)
	})

	t.Run("corner cell has two neighbors", func(t *testing.T) {
		n := Coordinate{0, 0}.ValidNeighbors(5, 5)
		assert.ElementsMatch(t, []Coordinate{{1, 0}, {0, 1}}, n)
	})

	t.Run("edge cell has three neighbors", func(t *testing.T) {
		n := Coordinate{0, 2}.ValidNeighbors(5, 5)
		assert.Len(t, n, 3)
	})
}

func TestCoordinate_ToIndex(t *testing.T) {
	assert.Equal(t, 0, Coordinate{0, 0}.ToIndex(5))
	assert.Equal(t, 7, Coordinate{2, 1}.ToIndex(5))
	assert.Equal(t, 24, Coordinate{4, 4}.ToIndex(5))
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(3,7)", Coordinate{3, 7}.String())
}
