package core

import "math/rand"

// Scramble rotates every cell a uniform 0-3 times, then makes sure the
// player has work to do: while the board still solves, it rotates a cell on
// the connecting route and re-checks. One clockwise turn always severs a
// two-arm cell's through connection, so a route with any two-arm interior
// cell dies immediately; tee cells can take a few turns and cross cells are
// rotation-invariant, hence the attempt bound.
//
// Returns true when the board ends up unsolved. A false return means the
// solved state survived every attempt (routes running entirely through
// cross tiles cannot be broken by rotation at all) and the caller should
// regenerate from fresh randomness. A 1x1 board is a lone wildcard cell,
// permanently solved, and always returns false.
func Scramble(g *Grid, hazards map[Pos]bool, rng *rand.Rand) bool {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			for n := rng.Intn(4); n > 0; n-- {
				g.RotateAt(P(r, c))
			}
		}
	}
	if g.size == 1 {
		return false
	}

	maxAttempts := 4 * g.size * g.size
	for i := 0; i < maxAttempts; i++ {
		route, ok := Route(g, hazards)
		if !ok {
			return true
		}
		if !breakRoute(g, route) {
			return false
		}
	}
	return !Solved(g, hazards)
}

// breakRoute rotates one interior cell of the route a single clockwise turn,
// preferring a two-arm cell (guaranteed sever) over a tee. Returns false when
// the route has no rotatable interior cell. Endpoints are wildcards, so
// rotating them never changes connectivity; for any grid larger than 1x1 the
// route holds at least one interior cell.
func breakRoute(g *Grid, route []Pos) bool {
	interior := route[1 : len(route)-1]
	for _, p := range interior {
		if g.At(p).Arms().Count() == 2 {
			g.RotateAt(p)
			return true
		}
	}
	for _, p := range interior {
		if g.At(p) != TileNESW {
			g.RotateAt(p)
			return true
		}
	}
	return false
}
