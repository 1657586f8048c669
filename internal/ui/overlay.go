//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"mapgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type sectorProvider interface {
	SectorOrigin(cx, cy int) (int, int)
	SectorSide() int
}

var (
	footprintColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	rejectedColor  = color.RGBA{R: 230, G: 40, B: 40, A: 220}
)

// Overlay outlines the sector a click would regenerate.
type Overlay struct {
	terrain       core.Terrain
	scale         int
	showFootprint bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(t core.Terrain, scale int) *Overlay {
	o := &Overlay{terrain: t, scale: scale, showFootprint: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the footprint with F.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.showFootprint = !o.showFootprint
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showFootprint {
		return
	}
	provider, ok := o.terrain.(sectorProvider)
	if !ok {
		return
	}
	size := o.terrain.Size()
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/scale, my/scale
	if cx < 0 || cy < 0 || cx >= size.W || cy >= size.H {
		return
	}

	side := provider.SectorSide()
	x, y := provider.SectorOrigin(cx, cy)
	col := footprintColor
	if x < 0 || y < 0 || x+side > size.W || y+side > size.H {
		col = rejectedColor
	}

	s := float64(scale)
	x0, y0 := float64(x)*s, float64(y)*s
	x1, y1 := float64(x+side)*s, float64(y+side)*s
	o.drawLine(screen, x0, y0, x1, y0, 1, col)
	o.drawLine(screen, x1, y0, x1, y1, 1, col)
	o.drawLine(screen, x1, y1, x0, y1, 1, col)
	o.drawLine(screen, x0, y1, x0, y0, 1, col)
	o.drawPoint(screen, (float64(cx)+0.5)*s, (float64(cy)+0.5)*s, math.Max(2, s), col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
