// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package entity

import (
	"fmt"
	"strings"
)

// Position is a cell on the grid.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Step returns the position one unit along d.
func (p Position) Step(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Offset returns the per-axis delta from p to q.
func (p Position) Offset(q Position) (dx, dy int) {
	return q.X - p.X, q.Y - p.Y
}

// Manhattan returns the taxicab distance between p and q.
func (p Position) Manhattan(q Position) int {
	dx, dy := p.Offset(q)
	return abs(dx) + abs(dy)
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit step on the grid.
type Direction struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// The four cardinal directions. Y grows downward.
var (
	North = Direction{DX: 0, DY: -1}
	South = Direction{DX: 0, DY: 1}
	East  = Direction{DX: 1, DY: 0}
	West  = Direction{DX: -1, DY: 0}
)

// Cardinals lists the cardinal directions in a fixed order.
var Cardinals = [4]Direction{North, East, South, West}

// IsCardinal reports whether d is exactly one of the four unit cardinal vectors.
func (d Direction) IsCardinal() bool {
	return abs(d.DX)+abs(d.DY) == 1
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String names the direction, or renders the raw vector.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("<%d,%d>", d.DX, d.DY)
	}
}

// DirectionBetween returns the cardinal direction from p to an adjacent q.
// ok is false when q is not exactly one cardinal step from p.
func DirectionBetween(p, q Position) (Direction, bool) {
	dx, dy := p.Offset(q)
	d := Direction{DX: dx, DY: dy}
	return d, d.IsCardinal()
}

// ParseDirection accepts compass and screen names for the cardinal directions.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "up", "n":
		return North, true
	case "south", "down", "s":
		return South, true
	case "east", "right", "e":
		return East, true
	case "west", "left", "w":
		return West, true
	default:
		return Direction{}, false
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
