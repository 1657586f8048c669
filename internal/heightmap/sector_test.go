package heightmap

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func generated(t *testing.T, detail int, seed int64, roughness float64) *Grid {
	t.Helper()
	g := newSeeded(t, detail, seed)
	if err := g.Generate(roughness); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return g
}

func TestGenerateSectorKeepsCornersAndCentre(t *testing.T) {
	g := newSeeded(t, 2, 3)
	corners := map[[2]int]float64{{0, 0}: 1, {4, 0}: 2, {4, 4}: 3, {0, 4}: 4}
	for c, v := range corners {
		g.Set(c[0], c[1], v)
	}
	if err := g.GenerateSector(0.4, 10); err != nil {
		t.Fatal(err)
	}
	for c, v := range corners {
		if got, _ := g.Get(c[0], c[1]); got != v {
			t.Fatalf("corner %v = %v, expected %v", c, got, v)
		}
	}
	if got, _ := g.Get(2, 2); got != 10 {
		t.Fatalf("centre = %v, expected 10", got)
	}
	for i, v := range g.Cells() {
		if math.IsNaN(v) {
			t.Fatalf("cell %d left unset by GenerateSector", i)
		}
	}
}

func TestGenerateSectorRejectsInvalidRoughness(t *testing.T) {
	g := newSeeded(t, 2, 3)
	if err := g.GenerateSector(-1, 10); !errors.Is(err, ErrInvalidRoughness) {
		t.Fatalf("expected ErrInvalidRoughness, got %v", err)
	}
}

func TestModifySectorTopLeftScenario(t *testing.T) {
	g := generated(t, 4, 42, 0.5)
	before := append([]float64(nil), g.Cells()...)

	if err := g.ModifySector(0, 0, 2, 0.3, 100); err != nil {
		t.Fatalf("ModifySector: %v", err)
	}

	side := g.Size()
	if side != 17 {
		t.Fatalf("expected side 17, got %d", side)
	}
	changed := 0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			idx := x + side*y
			inside := x < 5 && y < 5
			if !inside && g.Cells()[idx] != before[idx] {
				t.Fatalf("cell (%d,%d) outside the sector changed", x, y)
			}
			if inside && g.Cells()[idx] != before[idx] {
				changed++
			}
		}
	}
	if got, _ := g.Get(2, 2); got != 100 {
		t.Fatalf("sector centre = %v, expected 100", got)
	}
	for _, c := range [][2]int{{0, 0}, {4, 0}, {4, 4}, {0, 4}} {
		got, _ := g.Get(c[0], c[1])
		if got != before[c[0]+side*c[1]] {
			t.Fatalf("sector corner %v changed", c)
		}
	}
	if changed < 5*5-4 {
		t.Fatalf("expected every non-corner sector cell rewritten, %d changed", changed)
	}
}

func TestModifySectorContainment(t *testing.T) {
	g := generated(t, 5, 11, 0.7)
	cases := []struct {
		x, y, lod int
	}{
		{3, 7, 3},
		{0, 0, 5},
		{24, 24, 3},
		{10, 2, 1},
	}
	for _, c := range cases {
		before := append([]float64(nil), g.Cells()...)
		if err := g.ModifySector(c.x, c.y, c.lod, 0.5, 20); err != nil {
			t.Fatalf("ModifySector(%d,%d,%d): %v", c.x, c.y, c.lod, err)
		}
		tam := SectorSide(c.lod)
		side := g.Size()
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				inside := x >= c.x && x < c.x+tam && y >= c.y && y < c.y+tam
				idx := x + side*y
				if !inside && g.Cells()[idx] != before[idx] {
					t.Fatalf("sector %+v changed outside cell (%d,%d)", c, x, y)
				}
			}
		}
	}
}

func TestModifySectorErrors(t *testing.T) {
	cases := []struct {
		name      string
		x, y, lod int
		roughness float64
		want      error
	}{
		{"lod zero", 0, 0, 0, 0.3, ErrInvalidDetail},
		{"negative roughness", 0, 0, 2, -0.3, ErrInvalidRoughness},
		{"lod larger than grid", 0, 0, 5, 0.3, ErrOutOfRangeSector},
		{"past right edge", 13, 0, 2, 0.3, ErrOutOfRangeSector},
		{"past bottom edge", 0, 13, 2, 0.3, ErrOutOfRangeSector},
		{"negative origin", -1, 0, 2, 0.3, ErrOutOfRangeSector},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := generated(t, 4, 8, 0.5)
			before := append([]float64(nil), g.Cells()...)
			err := g.ModifySector(c.x, c.y, c.lod, c.roughness, 50)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if !slices.Equal(before, g.Cells()) {
				t.Fatal("failed ModifySector mutated the grid")
			}
		})
	}
}

func TestModifySectorTouchingFarEdge(t *testing.T) {
	g := generated(t, 4, 8, 0.5)
	if err := g.ModifySector(12, 12, 2, 0.3, 0); err != nil {
		t.Fatalf("sector ending on the last row/column should fit: %v", err)
	}
	if got, _ := g.Get(14, 14); got != 0 {
		t.Fatalf("sector centre = %v, expected 0", got)
	}
}

func TestModifySectorDeterministic(t *testing.T) {
	a := generated(t, 5, 99, 0.5)
	b := generated(t, 5, 99, 0.5)

	// A rejected edit must not consume randomness.
	if err := b.ModifySector(30, 30, 3, 0.4, 60); err == nil {
		t.Fatal("expected out of range error")
	}

	for _, g := range []*Grid{a, b} {
		if err := g.ModifySector(4, 4, 3, 0.4, 60); err != nil {
			t.Fatal(err)
		}
		if err := g.ModifySector(16, 0, 4, 0.2, -10); err != nil {
			t.Fatal(err)
		}
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical edit sequences on identical grids diverged")
	}
}
