package core

// Solved reports whether an unbroken circuit connects the entry node to the
// exit port. Two adjacent cells connect only when each has an arm pointing
// at the other; hazard cells never join the circuit; grid edges connect
// nowhere. The entry and exit act as wildcards that connect on all four
// sides, both outgoing and incoming, so the player never has to rotate a
// hidden endpoint into position.
func Solved(g *Grid, hazards map[Pos]bool) bool {
	_, ok := Route(g, hazards)
	return ok
}

// Route returns one connecting route from entry to exit when the board is
// solved, inclusive of both endpoints. Which route is returned is an
// implementation detail; only reachability is part of the contract.
func Route(g *Grid, hazards map[Pos]bool) ([]Pos, bool) {
	entry := g.Entry()
	exit := g.Exit()

	visited := make(map[Pos]bool, g.size*g.size)
	parent := make(map[Pos]Pos)
	stack := []Pos{entry}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[p] || hazards[p] {
			continue
		}
		visited[p] = true

		if p == exit {
			return traceRoute(parent, entry, exit), true
		}

		arms := g.armsAt(p)
		for _, d := range dirs {
			if !arms.Has(d) {
				continue
			}
			n := p.Step(d)
			if !g.InBounds(n) || visited[n] || hazards[n] {
				continue
			}
			if !g.armsAt(n).Has(d.Opposite()) {
				continue
			}
			if _, seen := parent[n]; !seen {
				parent[n] = p
			}
			stack = append(stack, n)
		}
	}
	return nil, false
}

// armsAt returns the connection arms of a cell, widening the entry and exit
// to all four directions.
func (g *Grid) armsAt(p Pos) DirSet {
	if p == g.Entry() || p == g.Exit() {
		return AllDirs
	}
	return g.At(p).Arms()
}

// traceRoute walks parent links back from exit to entry and reverses them.
// Parents are recorded on first push only, so every link is a real
// connection and the chain terminates at the entry.
func traceRoute(parent map[Pos]Pos, entry, exit Pos) []Pos {
	route := []Pos{exit}
	for cur := exit; cur != entry; {
		cur = parent[cur]
		route = append(route, cur)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
