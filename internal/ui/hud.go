//go:build ebiten

package ui

import (
	"image/color"

	"tricell/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status bar over the top-left corner of the grid.
type HUD struct {
	line  string
	pixel *ebiten.Image
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the status line from a parameter snapshot.
func (h *HUD) Update(snap core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.line = StatusLine(snap)
}

// Draw paints the status line onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	width := len(h.line)*7 + 8
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), 18)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)
	text.Draw(screen, h.line, face, 4, 13, color.White)
}
