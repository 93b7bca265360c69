package core

import "fmt"

// Grid is a square board of conduit tiles stored row-major. The entry node
// occupies the top-left corner and the exit port the bottom-right corner;
// both are fixed for the lifetime of the grid.
type Grid struct {
	size  int
	tiles []Tile
}

// NewGrid creates a grid of the given size filled with the zero tile.
// Panics if size is less than 1: callers validate puzzle dimensions before
// construction.
func NewGrid(size int) *Grid {
	if size < 1 {
		panic(fmt.Sprintf("circuit: invalid grid size %d", size))
	}
	return &Grid{
		size:  size,
		tiles: make([]Tile, size*size),
	}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if p lies on the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// Entry returns the entry node position (top-left corner).
func (g *Grid) Entry() Pos {
	return Pos{Row: 0, Col: 0}
}

// Exit returns the exit port position (bottom-right corner).
func (g *Grid) Exit() Pos {
	return Pos{Row: g.size - 1, Col: g.size - 1}
}

// At returns the tile at p. Panics when p is out of bounds: internal callers
// stay within the grid, and the Board API bounds-checks player input before
// it reaches here.
func (g *Grid) At(p Pos) Tile {
	g.check(p)
	return g.tiles[p.Row*g.size+p.Col]
}

// SetAt places a tile at p. Panics when p is out of bounds.
func (g *Grid) SetAt(p Pos, t Tile) {
	g.check(p)
	g.tiles[p.Row*g.size+p.Col] = t
}

// RotateAt turns the tile at p 90 degrees clockwise. Panics when p is out
// of bounds.
func (g *Grid) RotateAt(p Pos) {
	g.check(p)
	i := p.Row*g.size + p.Col
	g.tiles[i] = g.tiles[i].RotateCW()
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{size: g.size, tiles: tiles}
}

func (g *Grid) check(p Pos) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("circuit: position %v outside %dx%d grid", p, g.size, g.size))
	}
}
