package automata

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Advance computes the next generation unless the world is paused.
func (w *World) Advance() error {
	if w.paused {
		return nil
	}
	return w.Step()
}

// Step computes the next generation regardless of the pause flag. Rows are
// split into bands that run concurrently, each reading only the current
// buffer and writing its own rows of the next one. On failure the current
// generation is left untouched.
func (w *World) Step() error {
	var g errgroup.Group
	for _, b := range bands(w.h, w.workers) {
		y0, y1 := b[0], b[1]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("automata: rows %d-%d: %v", y0, y1, r)
				}
			}()
			w.stepRows(y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	w.cur, w.nxt = w.nxt, w.cur
	w.gen++
	return nil
}

func (w *World) stepRows(y0, y1 int) {
	cur, nxt := w.cur, w.nxt
	for i := y0 * w.w; i < y1*w.w; i++ {
		nxt[i] = nextState(cur[i], w.aliveAround(i))
	}
}

func (w *World) aliveAround(i int) int {
	n := 0
	for _, j := range w.neighbors[i] {
		if w.cur[j] == Alive {
			n++
		}
	}
	return n
}

// nextState applies the transition rule to one cell.
func nextState(s CellState, alive int) CellState {
	if s == Immutable {
		return Immutable
	}
	switch alive {
	case 2:
		return s
	case 3:
		return Alive
	default:
		return Dead
	}
}

// bands splits h rows into at most n contiguous [start, end) ranges.
func bands(h, n int) [][2]int {
	if n < 1 {
		n = 1
	}
	if n > h {
		n = h
	}
	out := make([][2]int, 0, n)
	size, rem := h/n, h%n
	y := 0
	for k := 0; k < n; k++ {
		end := y + size
		if k < rem {
			end++
		}
		out = append(out, [2]int{y, end})
		y = end
	}
	return out
}
