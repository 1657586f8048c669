package render

import (
	"image"
	"image/color"
)

// Band colours heights in [From, To] by blending Bottom into Top.
type Band struct {
	From, To    uint8
	Bottom, Top color.RGBA
}

// Gradient maps a byte height onto a colour through ordered bands.
type Gradient []Band

// TerrainGradient returns the default terrain colouring, from sand through
// grass and rock up to snow.
func TerrainGradient() Gradient {
	steps := []uint8{0, 20, 40, 80, 120, 200, 255}
	pairs := [][2]color.RGBA{
		{{R: 165, G: 88, B: 11, A: 255}, {R: 196, G: 109, B: 23, A: 255}},
		{{R: 214, G: 183, B: 62, A: 255}, {R: 165, G: 88, B: 11, A: 255}},
		{{R: 183, G: 182, B: 179, A: 255}, {R: 196, G: 195, B: 192, A: 255}},
		{{R: 53, G: 130, B: 23, A: 255}, {R: 67, G: 150, B: 34, A: 255}},
		{{R: 139, G: 165, B: 153, A: 255}, {R: 160, G: 186, B: 173, A: 255}},
		{{R: 224, G: 224, B: 224, A: 255}, {R: 250, G: 250, B: 250, A: 255}},
	}
	g := make(Gradient, len(pairs))
	for i, p := range pairs {
		g[i] = Band{From: steps[i], To: steps[i+1], Bottom: p[0], Top: p[1]}
	}
	return g
}

// Grayscale maps 0 to black and 255 to white.
func Grayscale() Gradient {
	return Gradient{{
		From:   0,
		To:     255,
		Bottom: color.RGBA{A: 255},
		Top:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}}
}

// At returns the colour of height h. Heights outside every band take the
// nearest band edge.
func (g Gradient) At(h uint8) color.RGBA {
	if len(g) == 0 {
		return color.RGBA{}
	}
	if h < g[0].From {
		return g[0].Bottom
	}
	for _, b := range g {
		if h > b.To {
			continue
		}
		span := int(b.To) - int(b.From)
		if span <= 0 {
			return b.Top
		}
		t := int(h) - int(b.From)
		return color.RGBA{
			R: lerp(b.Bottom.R, b.Top.R, t, span),
			G: lerp(b.Bottom.G, b.Top.G, t, span),
			B: lerp(b.Bottom.B, b.Top.B, t, span),
			A: lerp(b.Bottom.A, b.Top.A, t, span),
		}
	}
	return g[len(g)-1].Top
}

// Palette expands the gradient into one colour per byte value.
func (g Gradient) Palette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		palette[i] = g.At(uint8(i))
	}
	return palette
}

func lerp(a, b uint8, t, span int) uint8 {
	return uint8(int(a) + (int(b)-int(a))*t/span)
}

// fillGradientRGBA converts byte heights into RGBA pixels using gradient.
func fillGradientRGBA(buf []byte, cells []uint8, gradient Gradient) {
	fillPaletteRGBA(buf, cells, gradient.Palette())
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image renders a w*h byte heightmap into an RGBA image.
func Image(cells []uint8, w, h int, gradient Gradient) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(cells) != w*h {
		return img
	}
	fillGradientRGBA(img.Pix, cells, gradient)
	return img
}
