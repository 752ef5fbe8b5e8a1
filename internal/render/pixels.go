package render

import (
	"errors"
	"fmt"
	"image/color"

	"tricell/internal/sims/automata"
)

// ErrBufferSizeMismatch is returned when a frame buffer is not exactly
// four bytes per cell.
var ErrBufferSizeMismatch = errors.New("render: frame buffer size mismatch")

// Palette maps each cell state to its pixel color.
var Palette = [...]color.RGBA{
	automata.Dead:      {R: 0xF8, G: 0xF8, B: 0xF8, A: 0xF8},
	automata.Alive:     {R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF},
	automata.Immutable: {R: 0xFF, G: 0x00, B: 0x4D, A: 0xFF},
}

// ColorOf returns the palette color for s. Unknown states render as Dead.
func ColorOf(s automata.CellState) color.RGBA {
	if int(s) >= len(Palette) {
		return Palette[automata.Dead]
	}
	return Palette[s]
}

// Draw writes the world's current generation into buf as row-major RGBA8
// pixels. buf must hold exactly width*height*4 bytes; nothing is written
// otherwise.
func Draw(w *automata.World, buf []byte) error {
	cells := w.Cells()
	if len(buf) != len(cells)*4 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSizeMismatch, len(buf), len(cells)*4)
	}
	fillStateRGBA(buf, cells)
	return nil
}

// fillStateRGBA converts cell states into RGBA pixels in buf.
func fillStateRGBA(buf []byte, cells []automata.CellState) {
	for i, c := range cells {
		col := ColorOf(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
