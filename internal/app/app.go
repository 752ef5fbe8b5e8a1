//go:build ebiten

package app

import (
	"tricell/internal/render"
	"tricell/internal/sims/automata"
	"tricell/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD

	scale int
	err   error
}

// New constructs a Game driving the provided session.
func New(s *Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := s.World().Size()
	return &Game{
		session: s,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.session.ReseedNow(); err != nil {
			return err
		}
	}
	g.paint()

	if err := g.session.Tick(); err != nil {
		return err
	}
	g.hud.Update(g.session.World().Parameters())
	return nil
}

func (g *Game) paint() {
	var state automata.CellState
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		state = automata.Alive
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		state = automata.Dead
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		state = automata.Immutable
	default:
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 {
		return
	}
	g.session.Paint(mx/g.scale, my/g.scale, state)
}

// Draw renders the current generation and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.painter.Blit(screen, g.session.World(), g.scale); err != nil {
		// Draw cannot fail; surface it from the next Update.
		g.err = err
		return
	}
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.World().Size()
	return s.W * g.scale, s.H * g.scale
}
