package core

// Tile is one of the eleven conduit shapes, named after the directions its
// arms point in N, E, S, W order. The declaration order is the canonical
// order: when several tiles tie during placement, the earliest declared tile
// wins, so generation is reproducible.
type Tile uint8

const (
	TileEW   Tile = iota // ─
	TileNS               // │
	TileES               // ┌
	TileSW               // ┐
	TileNW               // ┘
	TileNE               // └
	TileESW              // ┬
	TileNEW              // ┴
	TileNES              // ├
	TileNSW              // ┤
	TileNESW             // ┼
)

// TileCount is the number of conduit shapes.
const TileCount = 11

// tileArms maps each tile to its connection arms.
var tileArms = [TileCount]DirSet{
	TileEW:   SetOf(East, West),
	TileNS:   SetOf(North, South),
	TileES:   SetOf(East, South),
	TileSW:   SetOf(South, West),
	TileNW:   SetOf(North, West),
	TileNE:   SetOf(North, East),
	TileESW:  SetOf(East, South, West),
	TileNEW:  SetOf(North, East, West),
	TileNES:  SetOf(North, East, South),
	TileNSW:  SetOf(North, South, West),
	TileNESW: SetOf(North, East, South, West),
}

// tileRunes maps each tile to its box-drawing character.
var tileRunes = [TileCount]rune{
	TileEW:   '─',
	TileNS:   '│',
	TileES:   '┌',
	TileSW:   '┐',
	TileNW:   '┘',
	TileNE:   '└',
	TileESW:  '┬',
	TileNEW:  '┴',
	TileNES:  '├',
	TileNSW:  '┤',
	TileNESW: '┼',
}

// tileRotate maps each tile to the tile it becomes after a 90 degree
// clockwise turn. Rotating arms geometrically always lands on another
// conduit shape, so the table is total: straights swap with each other,
// corners and tees cycle with period four, the cross is invariant.
var tileRotate = [TileCount]Tile{
	TileEW:   TileNS,
	TileNS:   TileEW,
	TileES:   TileSW,
	TileSW:   TileNW,
	TileNW:   TileNE,
	TileNE:   TileES,
	TileESW:  TileNSW,
	TileNSW:  TileNEW,
	TileNEW:  TileNES,
	TileNES:  TileESW,
	TileNESW: TileNESW,
}

// Arms returns the directions this tile connects through.
func (t Tile) Arms() DirSet {
	return tileArms[t]
}

// RotateCW returns the tile rotated 90 degrees clockwise.
func (t Tile) RotateCW() Tile {
	return tileRotate[t]
}

// Rune returns the box-drawing character for the tile.
func (t Tile) Rune() rune {
	return tileRunes[t]
}

// String returns the tile's character as a string.
func (t Tile) String() string {
	if int(t) >= TileCount {
		return "?"
	}
	return string(tileRunes[t])
}
