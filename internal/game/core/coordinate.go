package core

import (
	"fmt"

	"github.com/fillergame/fillerbot/internal/common"
)

// Coordinate represents a position on the game board
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	return common.ManhattanDistance(c.X, c.Y, other.X, other.Y)
}

// Neighbors returns the four orthogonal neighbors of this coordinate
func (c Coordinate) Neighbors() []Coordinate {
	return []Coordinate{
		{X: c.X, Y: c.Y - 1}, // North
		{X: c.X + 1, Y: c.Y}, // East
		{X: c.X, Y: c.Y + 1}, // South
		{X: c.X - 1, Y: c.Y}, // West
	}
}

// ValidNeighbors returns only the neighbors that are within the given bounds
func (c Coordinate) ValidNeighbors(width, height int) []Coordinate {
	neighbors := c.Neighbors()
	valid := make([]Coordinate, 0, 4)

	for _, n := range neighbors {
		if n.IsValid(width, height) {
			valid = append(valid, n)
		}
	}

	return valid
}

// Add returns a new coordinate displaced by the given offset
func (c Coordinate) Add(off Offset) Coordinate {
	return Coordinate{
		X: c.X + off.DX,
		Y: c.Y + off.DY,
	}
}

// Sub returns a new coordinate displaced backwards by the given offset
func (c Coordinate) Sub(off Offset) Coordinate {
	return Coordinate{
		X: c.X - off.DX,
		Y: c.Y - off.DY,
	}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
