package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"tricell/internal/app"
	"tricell/internal/render"
	"tricell/internal/sims/automata"
)

func newFrontend(t *testing.T, w, h int) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)

	s, err := app.NewSession(automata.Config{Width: w, Height: h, Workers: 1}, true)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return New(screen, s, 60), screen
}

func TestDrawUsesPaletteBackgrounds(t *testing.T) {
	f, screen := newFrontend(t, 5, 5)
	f.session.Paint(0, 0, automata.Alive)
	f.session.Paint(1, 0, automata.Immutable)
	f.Draw()

	check := func(x, y int, s automata.CellState) {
		t.Helper()
		_, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		c := render.ColorOf(s)
		want := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		if bg != want {
			t.Fatalf("cell (%d,%d) background = %v, want %v (%v)", x, y, bg, want, s)
		}
	}
	check(0, 0, automata.Alive)
	check(1, 0, automata.Immutable)
	check(2, 0, automata.Dead)
	check(4, 4, automata.Dead)

	r, _, _, _ := screen.GetContent(0, 9)
	if r != 'g' {
		t.Fatalf("status line starts with %q, want 'g'", r)
	}
}

func TestKeysDriveSession(t *testing.T) {
	f, _ := newFrontend(t, 5, 5)

	if quit, err := f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); quit || err != nil {
		t.Fatalf("space: quit=%v err=%v", quit, err)
	}
	if f.session.World().Paused() {
		t.Fatalf("space should resume a paused world")
	}

	f.session.Paint(2, 2, automata.Alive)
	if _, err := f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if f.session.World().Population() != 0 {
		t.Fatalf("reset kept live cells")
	}

	if quit, _ := f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); !quit {
		t.Fatalf("q should quit")
	}
	if quit, _ := f.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Fatalf("escape should quit")
	}
}

func TestMouseButtonsPaintStates(t *testing.T) {
	f, _ := newFrontend(t, 5, 5)
	cases := []struct {
		btn  tcell.ButtonMask
		x, y int
		want automata.CellState
	}{
		{tcell.Button1, 1, 1, automata.Alive},
		{tcell.Button3, 2, 1, automata.Immutable},
		{tcell.Button2, 1, 1, automata.Dead},
	}
	for _, tc := range cases {
		f.HandleEvent(tcell.NewEventMouse(tc.x, tc.y, tc.btn, tcell.ModNone))
		if s, _ := f.session.World().State(tc.y*5 + tc.x); s != tc.want {
			t.Fatalf("button %v at (%d,%d) = %v, want %v", tc.btn, tc.x, tc.y, s, tc.want)
		}
	}

	// Clicks past the right edge or below the last row are ignored.
	f.HandleEvent(tcell.NewEventMouse(12, 9, tcell.Button1, tcell.ModNone))
	f.HandleEvent(tcell.NewEventMouse(3, 7, tcell.Button1, tcell.ModNone))
	if f.session.World().Population() != 0 {
		t.Fatalf("out-of-grid clicks changed the world")
	}
}

func TestStatusRowClickOnTallGrid(t *testing.T) {
	// 20 rows do not fit the 10-row screen; row 9 is the status line.
	f, _ := newFrontend(t, 5, 20)
	f.HandleEvent(tcell.NewEventMouse(2, 9, tcell.Button1, tcell.ModNone))
	if s, _ := f.session.World().State(9*5 + 2); s != automata.Dead {
		t.Fatalf("status row click painted hidden cell (2,9): %v", s)
	}

	f.HandleEvent(tcell.NewEventMouse(2, 8, tcell.Button1, tcell.ModNone))
	if s, _ := f.session.World().State(8*5 + 2); s != automata.Alive {
		t.Fatalf("click on last visible grid row = %v, want alive", s)
	}
}
