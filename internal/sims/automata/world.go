// Package automata implements a three-state variant of Conway's Game of Life
// on a fixed-size toroidal grid.
//
// Cells are Dead, Alive or Immutable. Immutable cells never change through
// the rule and count as not alive for their neighbours. Every generation is
// computed from a frozen snapshot of the previous one into a second buffer,
// which is swapped in only once all rows have been computed.
package automata

import (
	"errors"
	"fmt"
	"runtime"

	"tricell/internal/core"
)

// CellState is the state of a single cell. The zero value is Dead.
type CellState uint8

const (
	Dead CellState = iota
	Alive
	Immutable
)

// String returns a lowercase name for the state.
func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	case Immutable:
		return "immutable"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// ErrInvalidDimensions is returned when a world is constructed with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("automata: invalid dimensions")

// World owns the cell buffers and grid dimensions.
type World struct {
	w, h    int
	paused  bool
	workers int
	gen     uint64

	cur []CellState
	nxt []CellState

	neighbors [][8]int
}

// New returns a paused world of w*h cells, all Dead.
func New(w, h int) (*World, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	total := w * h
	if total/w != h {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, w, h)
	}
	return &World{
		w:         w,
		h:         h,
		paused:    true,
		workers:   runtime.GOMAXPROCS(0),
		cur:       make([]CellState, total),
		nxt:       make([]CellState, total),
		neighbors: buildNeighbors(w, h),
	}, nil
}

// FromConfig builds a world from cfg and applies its seed and density.
func FromConfig(cfg Config) (*World, error) {
	w, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	w.SetWorkers(cfg.Workers)
	if cfg.Density > 0 {
		Seed(w, cfg.Seed, cfg.Density)
	}
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "tricell" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current generation. Callers must treat it as read-only;
// use SetCellState to mutate. The slice is only valid until the next Step or
// Advance, which reuses it as the scratch buffer for the following generation.
func (w *World) Cells() []CellState { return w.cur }

// State returns the state of the cell at index i.
func (w *World) State(i int) (CellState, bool) {
	if i < 0 || i >= len(w.cur) {
		return Dead, false
	}
	return w.cur[i], true
}

// SetCellState overwrites the state at index i. Out-of-range indices are
// ignored, since pointer-to-cell mapping in front-ends may land past an edge.
func (w *World) SetCellState(i int, s CellState) {
	if i < 0 || i >= len(w.cur) {
		return
	}
	w.cur[i] = s
}

// Paused reports whether Advance is currently a no-op.
func (w *World) Paused() bool { return w.paused }

// SetPaused sets the pause flag.
func (w *World) SetPaused(p bool) { w.paused = p }

// TogglePause flips the pause flag and returns the new value.
func (w *World) TogglePause() bool {
	w.paused = !w.paused
	return w.paused
}

// Workers returns the maximum number of goroutines used per step.
func (w *World) Workers() int { return w.workers }

// SetWorkers bounds the goroutines used per step. Values below one select
// GOMAXPROCS.
func (w *World) SetWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	w.workers = n
}

// Generation returns the number of generations computed so far.
func (w *World) Generation() uint64 { return w.gen }

// Population counts the Alive cells in the current generation.
func (w *World) Population() int {
	n := 0
	for _, c := range w.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// Parameters reports the live counters for display.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			{Key: "size", Label: "Size", Type: core.ParamTypeString, Value: fmt.Sprintf("%dx%d", w.w, w.h)},
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: fmt.Sprint(w.gen)},
			{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: fmt.Sprint(w.Population())},
			{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Value: fmt.Sprint(w.workers)},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: fmt.Sprint(w.paused)},
		},
	}}}
}
