//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tricell/internal/sims/automata"
)

// GridPainter uploads a world's frame buffer into a single image each frame.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit renders world into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, world *automata.World, scale int) error {
	if err := Draw(world, gp.buf); err != nil {
		return err
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
	return nil
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
