package automata

import "tricell/internal/core"

// Seed fills the world with Alive cells at the given density using a
// deterministic RNG. Cells that are not chosen become Dead; Immutable cells
// are left as they are.
func Seed(w *World, seed int64, density float64) {
	rng := core.NewRNG(seed)
	for i, c := range w.cur {
		if c == Immutable {
			continue
		}
		if rng.Chance(density) {
			w.cur[i] = Alive
			continue
		}
		w.cur[i] = Dead
	}
}
