package core

import "math/rand"

// TileFor returns the tile whose arms cover every direction in required,
// preferring the fewest arms. Ties resolve to the earliest tile in canonical
// order, so placement is deterministic. Every one- and two-direction
// requirement is covered by a two-arm tile; the cross covers everything, so
// a candidate always exists.
func TileFor(required DirSet) Tile {
	best := TileNESW
	bestArms := 5
	for t := Tile(0); t < TileCount; t++ {
		arms := t.Arms()
		if arms.Covers(required) && arms.Count() < bestArms {
			best = t
			bestArms = arms.Count()
		}
	}
	return best
}

// LayPath overwrites every path cell with the minimal tile connecting it to
// its path neighbors. Membership in the path decides adjacency, not order:
// a monotone path never touches itself, so the two are equivalent, and the
// laid tiles realize the path end to end.
func LayPath(g *Grid, path []Pos) {
	onPath := make(map[Pos]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	for _, p := range path {
		var need DirSet
		for _, d := range dirs {
			n := p.Step(d)
			if g.InBounds(n) && onPath[n] {
				need = need.With(d)
			}
		}
		g.SetAt(p, TileFor(need))
	}
}

// PlaceHazards samples hazard cells uniformly without replacement from the
// cells off the solution path; the entry node and exit port sit on the path
// and are therefore never hazardous. A count larger than the number of
// off-path cells is capped silently; zero or negative places none.
func PlaceHazards(size int, path []Pos, count int, rng *rand.Rand) map[Pos]bool {
	onPath := make(map[Pos]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	offPath := make([]Pos, 0, size*size-len(path))
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if p := P(r, c); !onPath[p] {
				offPath = append(offPath, p)
			}
		}
	}

	if count > len(offPath) {
		count = len(offPath)
	}
	hazards := make(map[Pos]bool, count)
	// Partial Fisher-Yates: the first count slots end up a uniform sample.
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(offPath)-i)
		offPath[i], offPath[j] = offPath[j], offPath[i]
		hazards[offPath[i]] = true
	}
	return hazards
}
