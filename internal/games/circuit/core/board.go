package core

import (
	"errors"
	"sort"
)

// ErrOutOfBounds is returned when a player-supplied position lies outside
// the grid. The board state is untouched; coordinates are never clamped.
var ErrOutOfBounds = errors.New("circuit: position out of bounds")

// Board is one puzzle instance: the grid, its hidden hazards and the fixed
// endpoints. The only mutation it allows is rotating a tile; everything else
// is read-only, so the shell can render and probe freely.
type Board struct {
	grid    *Grid
	hazards map[Pos]bool
	pathLen int
}

func newBoard(g *Grid, hazards map[Pos]bool, pathLen int) *Board {
	if hazards == nil {
		hazards = map[Pos]bool{}
	}
	return &Board{grid: g, hazards: hazards, pathLen: pathLen}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.grid.Size()
}

// Entry returns the entry node position.
func (b *Board) Entry() Pos {
	return b.grid.Entry()
}

// Exit returns the exit port position.
func (b *Board) Exit() Pos {
	return b.grid.Exit()
}

// TileAt returns the tile at p, or ErrOutOfBounds.
func (b *Board) TileAt(p Pos) (Tile, error) {
	if !b.grid.InBounds(p) {
		return 0, ErrOutOfBounds
	}
	return b.grid.At(p), nil
}

// IsHazard returns true if p holds a hazard. Out-of-bounds positions are
// not hazardous.
func (b *Board) IsHazard(p Pos) bool {
	return b.hazards[p]
}

// HazardCount returns the number of hazards on the board.
func (b *Board) HazardCount() int {
	return len(b.hazards)
}

// PathLen returns the length of the generated solution path, endpoints
// included.
func (b *Board) PathLen() int {
	return b.pathLen
}

// Rotate turns the tile at p 90 degrees clockwise. Rotating the entry or
// exit succeeds but cannot affect connectivity (they are wildcards). Returns
// ErrOutOfBounds for positions off the grid and changes nothing.
func (b *Board) Rotate(p Pos) error {
	if !b.grid.InBounds(p) {
		return ErrOutOfBounds
	}
	b.grid.RotateAt(p)
	return nil
}

// Solved reports whether the circuit currently connects entry to exit.
func (b *Board) Solved() bool {
	return Solved(b.grid, b.hazards)
}

// View returns a read-only snapshot of the board for rendering and
// transport. Mutating the snapshot never affects the board.
func (b *Board) View() BoardView {
	tiles := make([]Tile, len(b.grid.tiles))
	copy(tiles, b.grid.tiles)

	hazards := make([]Pos, 0, len(b.hazards))
	for p := range b.hazards {
		hazards = append(hazards, p)
	}
	sort.Slice(hazards, func(i, j int) bool {
		if hazards[i].Row != hazards[j].Row {
			return hazards[i].Row < hazards[j].Row
		}
		return hazards[i].Col < hazards[j].Col
	})

	return BoardView{
		Size:    b.grid.Size(),
		Tiles:   tiles,
		Hazards: hazards,
		Entry:   b.grid.Entry(),
		Exit:    b.grid.Exit(),
	}
}

// BoardView is an immutable copy of a board's visible state. Tiles are
// row-major; Hazards are sorted row-major for stable iteration.
type BoardView struct {
	Size    int
	Tiles   []Tile
	Hazards []Pos
	Entry   Pos
	Exit    Pos
}

// TileAt returns the tile at (row, col). Callers iterate within Size.
func (v BoardView) TileAt(row, col int) Tile {
	return v.Tiles[row*v.Size+col]
}

// IsHazard returns true if (row, col) holds a hazard.
func (v BoardView) IsHazard(row, col int) bool {
	for _, h := range v.Hazards {
		if h.Row == row && h.Col == col {
			return true
		}
	}
	return false
}
