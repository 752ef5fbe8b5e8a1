// Package term runs a world in a terminal using tcell. Each grid cell maps
// to one terminal cell painted with the state's palette color; the bottom
// row carries the status line.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"tricell/internal/app"
	"tricell/internal/core"
	"tricell/internal/render"
	"tricell/internal/sims/automata"
	"tricell/internal/ui"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Frontend drives a Session from tcell events.
type Frontend struct {
	screen  tcell.Screen
	session *app.Session
	pacer   *core.FixedStep
	styles  [len(render.Palette)]tcell.Style
}

// New wraps an initialised screen. The caller owns screen.Fini.
func New(screen tcell.Screen, s *app.Session, tps int) *Frontend {
	f := &Frontend{screen: screen, session: s, pacer: core.NewFixedStep(tps)}
	for i, c := range render.Palette {
		col := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		f.styles[i] = tcell.StyleDefault.Background(col).Foreground(col)
	}
	screen.EnableMouse()
	return f
}

// Run processes events and renders frames until the user quits or a step
// fails.
func (f *Frontend) Run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := f.HandleEvent(ev)
			if err != nil || quit {
				return err
			}
		case <-ticker.C:
			if f.pacer.ShouldStep() {
				if err := f.session.Tick(); err != nil {
					return err
				}
			}
			f.Draw()
		}
	}
}

// HandleEvent applies one input event. quit is true when the user asked to
// leave.
func (f *Frontend) HandleEvent(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true, nil
		}
		if ev.Key() == tcell.KeyEnter {
			f.session.Resume()
			return false, nil
		}
		if ev.Key() != tcell.KeyRune {
			return false, nil
		}
		switch ev.Rune() {
		case 'q':
			return true, nil
		case ' ':
			f.session.TogglePause()
		case 'n':
			f.session.StepOnce()
		case 'r':
			return false, f.session.Reset()
		case 's':
			return false, f.session.ReseedNow()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		// The last screen row is the status line, not grid.
		if _, sh := f.screen.Size(); y >= sh-1 {
			return false, nil
		}
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.Button1 != 0:
			f.session.Paint(x, y, automata.Alive)
		case buttons&tcell.Button2 != 0:
			f.session.Paint(x, y, automata.Dead)
		case buttons&tcell.Button3 != 0:
			f.session.Paint(x, y, automata.Immutable)
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return false, nil
}

// Draw renders the visible part of the grid and the status line.
func (f *Frontend) Draw() {
	world := f.session.World()
	size := world.Size()
	sw, sh := f.screen.Size()
	rows := sh - 1
	f.screen.Clear()
	cells := world.Cells()
	for y := 0; y < size.H && y < rows; y++ {
		for x := 0; x < size.W && x < sw; x++ {
			f.screen.SetContent(x, y, ' ', nil, f.styleOf(cells[core.Index(x, y, size.W)]))
		}
	}
	if sh > 0 {
		line := ui.StatusLine(world.Parameters())
		for i, r := range line {
			if i >= sw {
				break
			}
			f.screen.SetContent(i, sh-1, r, nil, tcell.StyleDefault)
		}
	}
	f.screen.Show()
}

func (f *Frontend) styleOf(s automata.CellState) tcell.Style {
	if int(s) >= len(f.styles) {
		return f.styles[automata.Dead]
	}
	return f.styles[s]
}
