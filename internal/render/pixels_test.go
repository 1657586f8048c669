package render

import (
	"image/color"
	"testing"
)

func TestTerrainGradientBandEdges(t *testing.T) {
	g := TerrainGradient()
	if len(g) != 6 {
		t.Fatalf("expected 6 bands, got %d", len(g))
	}
	if got := g.At(0); got != (color.RGBA{R: 165, G: 88, B: 11, A: 255}) {
		t.Fatalf("height 0 = %v", got)
	}
	if got := g.At(20); got != (color.RGBA{R: 196, G: 109, B: 23, A: 255}) {
		t.Fatalf("height 20 = %v", got)
	}
	if got := g.At(255); got != (color.RGBA{R: 250, G: 250, B: 250, A: 255}) {
		t.Fatalf("height 255 = %v", got)
	}
	// Halfway through the grass band.
	if got := g.At(100); got != (color.RGBA{R: 60, G: 140, B: 28, A: 255}) {
		t.Fatalf("height 100 = %v", got)
	}
}

func TestGrayscale(t *testing.T) {
	g := Grayscale()
	for _, h := range []uint8{0, 1, 128, 254, 255} {
		c := g.At(h)
		if c.R != h || c.G != h || c.B != h || c.A != 255 {
			t.Fatalf("height %d = %v", h, c)
		}
	}
}

func TestEmptyGradientIsTransparent(t *testing.T) {
	if got := (Gradient{}).At(9); got != (color.RGBA{}) {
		t.Fatalf("expected transparent, got %v", got)
	}
	buf := []byte{1, 2, 3, 4}
	fillGradientRGBA(buf, []uint8{7}, Gradient{})
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, expected cleared buffer", i, b)
		}
	}
}

func TestImage(t *testing.T) {
	cells := []uint8{0, 255, 128, 64}
	img := Image(cells, 2, 2, Grayscale())
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("pixel (1,0) = %v", got)
	}
	if got := img.RGBAAt(1, 1); got.R != 64 {
		t.Fatalf("pixel (1,1) = %v", got)
	}
	if Image(cells, 3, 3, Grayscale()).RGBAAt(0, 0).A != 0 {
		t.Fatal("mismatched cell count should yield a blank image")
	}
}
