//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-life/model"
)

// GridPainter keeps one RGBA image in sync with a grid's cells.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// Blit uploads the grid's current generation and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *model.Grid, on, off color.Color, scale int) {
	view := g.View()
	if len(view) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, view, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
