package core

import "math/rand"

// BuildPath walks a random monotone path from the entry node to the exit
// port, moving only down or right. While both moves stay on the grid a fair
// coin decides; once an axis is exhausted the other is forced. The result
// always has exactly 2*(size-1)+1 cells including both endpoints; a 1x1 grid
// yields the single-cell path.
func BuildPath(size int, rng *rand.Rand) []Pos {
	path := make([]Pos, 0, 2*(size-1)+1)
	cur := P(0, 0)
	exit := P(size-1, size-1)
	path = append(path, cur)

	for cur != exit {
		canDown := cur.Row < size-1
		canRight := cur.Col < size-1
		if canDown && (!canRight || rng.Intn(2) == 0) {
			cur.Row++
		} else {
			cur.Col++
		}
		path = append(path, cur)
	}
	return path
}
