package domain

import "fmt"

// Position is a cell on the unbounded integer grid. It is comparable and can
// be used directly as a map key.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Origin is the shared starting cell of every agent.
var Origin = Position{}

// Add returns the position one step away from p in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns the position as "(x, y)".
func (p Position) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Direction is one of the four cardinal moves.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Delta returns the unit displacement of d. North increases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Glyph returns the input character that encodes d.
func (d Direction) Glyph() rune {
	switch d {
	case North:
		return '^'
	case South:
		return 'v'
	case East:
		return '>'
	case West:
		return '<'
	}
	return '?'
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
