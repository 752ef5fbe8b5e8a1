package app

import (
	"time"

	"tricell/internal/core"
	"tricell/internal/sims/automata"
)

// Session holds the world a front-end is driving and applies user actions
// to it. It is not safe for concurrent use; front-ends call it from their
// update loop only.
type Session struct {
	cfg      automata.Config
	world    *automata.World
	tickOnce bool
}

// NewSession builds the initial world from cfg.
func NewSession(cfg automata.Config, paused bool) (*Session, error) {
	w, err := automata.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	w.SetPaused(paused)
	return &Session{cfg: cfg, world: w}, nil
}

// World returns the current world. Reset replaces it.
func (s *Session) World() *automata.World { return s.world }

// TogglePause flips the pause flag.
func (s *Session) TogglePause() { s.world.TogglePause() }

// Resume clears the pause flag.
func (s *Session) Resume() { s.world.SetPaused(false) }

// StepOnce requests a single generation on the next Tick even when paused.
func (s *Session) StepOnce() { s.tickOnce = true }

// Reset replaces the world with an empty one of the same size, keeping the
// pause flag.
func (s *Session) Reset() error {
	w, err := automata.New(s.cfg.Width, s.cfg.Height)
	if err != nil {
		return err
	}
	w.SetWorkers(s.cfg.Workers)
	w.SetPaused(s.world.Paused())
	s.world = w
	s.tickOnce = false
	return nil
}

// Reseed replaces the world with a random fill using seed. A non-positive
// configured density falls back to one cell in four.
func (s *Session) Reseed(seed int64) error {
	if err := s.Reset(); err != nil {
		return err
	}
	density := s.cfg.Density
	if density <= 0 {
		density = 0.25
	}
	s.cfg.Seed = seed
	automata.Seed(s.world, seed, density)
	return nil
}

// ReseedNow reseeds using the current time.
func (s *Session) ReseedNow() error { return s.Reseed(time.Now().UnixNano()) }

// Paint sets the cell under grid coordinates (x, y). Coordinates left of or
// above the grid, or right of its last column, are dropped so they cannot
// alias into a neighbouring row; anything below the last row yields an
// index the world ignores.
func (s *Session) Paint(x, y int, state automata.CellState) {
	size := s.world.Size()
	if x < 0 || y < 0 || x >= size.W {
		return
	}
	s.world.SetCellState(core.Index(x, y, size.W), state)
}

// Tick advances the world once if it is running or a single step is pending.
func (s *Session) Tick() error {
	if s.tickOnce {
		s.tickOnce = false
		return s.world.Step()
	}
	return s.world.Advance()
}
