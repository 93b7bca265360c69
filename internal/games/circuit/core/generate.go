package core

import (
	"fmt"
	"math/rand"
)

// Generate builds a new puzzle board:
//
//  1. walk a monotone solution path from entry to exit,
//  2. sample hazards from the off-path cells,
//  3. fill the grid with random tiles and lay minimal tiles along the path,
//  4. verify the constructed board solves (it must - a failure here is a
//     generator bug, not bad input, and panics),
//  5. scramble, guaranteeing the delivered board does not start solved.
//
// On the rare scramble that cannot be broken out of a solved state the whole
// puzzle is rebuilt from the next randomness, so the guarantee holds for
// every returned board of size 2 and up. A 1x1 board is a degenerate case:
// entry and exit share the lone wildcard cell, no hazards fit, and the board
// is born solved. Panics when size is less than 1.
func Generate(size, hazardCount int, rng *rand.Rand) *Board {
	if size < 1 {
		panic(fmt.Sprintf("circuit: invalid grid size %d", size))
	}
	if size == 1 {
		g := NewGrid(1)
		g.SetAt(P(0, 0), TileFor(0))
		return newBoard(g, nil, 1)
	}

	for {
		path := BuildPath(size, rng)
		hazards := PlaceHazards(size, path, hazardCount, rng)

		g := NewGrid(size)
		fillRandom(g, rng)
		LayPath(g, path)

		if !Solved(g, hazards) {
			panic(fmt.Sprintf("circuit: constructed %dx%d board does not solve", size, size))
		}

		if Scramble(g, hazards, rng) {
			return newBoard(g, hazards, len(path))
		}
	}
}

// fillRandom covers the grid with uniformly random tiles. Path cells are
// overwritten afterwards; the rest stay as decoys.
func fillRandom(g *Grid, rng *rand.Rand) {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			g.SetAt(P(r, c), Tile(rng.Intn(TileCount)))
		}
	}
}
