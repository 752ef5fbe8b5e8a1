package automata

import "tricell/internal/core"

// Neighborhood slots, in the order Neighbors returns them.
const (
	NW = iota
	N
	NE
	W
	E
	SW
	S
	SE
)

// neighborsOf returns the Moore neighbourhood of index i on a w*h torus.
func neighborsOf(i, w, h int) [8]int {
	x, y := core.Coords(i, w)
	l, r := core.Left(x, w), core.Right(x, w)
	u, d := core.Up(y, h), core.Down(y, h)
	return [8]int{
		NW: core.Index(l, u, w),
		N:  core.Index(x, u, w),
		NE: core.Index(r, u, w),
		W:  core.Index(l, y, w),
		E:  core.Index(r, y, w),
		SW: core.Index(l, d, w),
		S:  core.Index(x, d, w),
		SE: core.Index(r, d, w),
	}
}

// Dimensions are fixed after construction so the table never goes stale.
func buildNeighbors(w, h int) [][8]int {
	table := make([][8]int, w*h)
	for i := range table {
		table[i] = neighborsOf(i, w, h)
	}
	return table
}

// Neighbors returns the eight wrapped neighbour indices of cell i in the
// order NW, N, NE, W, E, SW, S, SE. ok is false when i is out of range.
func (w *World) Neighbors(i int) (idx [8]int, ok bool) {
	if i < 0 || i >= len(w.neighbors) {
		return idx, false
	}
	return w.neighbors[i], true
}
