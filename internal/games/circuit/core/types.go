// Package core implements the circuit puzzle: a square grid of rotatable
// conduit tiles that must form an unbroken connection from the entry node to
// the exit port while avoiding trap cells. The package is UI-agnostic and
// deterministic: all randomness flows through an injected *rand.Rand and no
// global state is kept, so the same seed always produces the same puzzle.
package core

import (
	"fmt"
	"math/bits"
)

// Dir is one of the four grid directions a conduit arm can point.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// Delta returns the (row, col) offset of one step in this direction.
// Row 0 is the top of the grid, so North decreases the row.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// String returns the compass letter for the direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	default:
		return "W"
	}
}

// dirs lists all four directions in a fixed scan order.
var dirs = [4]Dir{North, East, South, West}

// DirSet is a bitmask of directions, used for conduit arms and for the
// neighbor requirements of a path cell.
type DirSet uint8

// SetOf builds a DirSet from individual directions.
func SetOf(ds ...Dir) DirSet {
	var s DirSet
	for _, d := range ds {
		s = s.With(d)
	}
	return s
}

// AllDirs is the set of all four directions.
var AllDirs = SetOf(North, East, South, West)

// Has returns true if the set contains d.
func (s DirSet) Has(d Dir) bool {
	return s&(1<<d) != 0
}

// With returns the set extended with d.
func (s DirSet) With(d Dir) DirSet {
	return s | (1 << d)
}

// Covers returns true if the set contains every direction in other.
func (s DirSet) Covers(other DirSet) bool {
	return s&other == other
}

// Count returns the number of directions in the set.
func (s DirSet) Count() int {
	return bits.OnesCount8(uint8(s))
}

// RotateCW returns the set with every direction turned 90 degrees clockwise.
func (s DirSet) RotateCW() DirSet {
	var out DirSet
	for _, d := range dirs {
		if s.Has(d) {
			out = out.With((d + 1) % 4)
		}
	}
	return out
}

// String lists the contained directions in N, E, S, W order.
func (s DirSet) String() string {
	if s == 0 {
		return "-"
	}
	out := ""
	for _, d := range dirs {
		if s.Has(d) {
			out += d.String()
		}
	}
	return out
}

// Pos is a grid position. Row 0, col 0 is the top-left corner.
type Pos struct {
	Row, Col int
}

// P is a shorthand constructor for positions.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Step returns the adjacent position in the given direction.
func (p Pos) Step(d Dir) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
