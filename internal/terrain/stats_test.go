package terrain

import (
	"math"
	"testing"

	"mapgen/internal/heightmap"
)

func TestMeasureKnownGrid(t *testing.T) {
	g, err := heightmap.NewWithSeed(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, float64(x+3*y))
		}
	}
	s := Measure(g)
	if s.Min != 0 || s.Max != 8 || s.Mean != 4 {
		t.Fatalf("unexpected stats %v", s)
	}
	if s.Jaggedness != 2 {
		t.Fatalf("jaggedness = %v, expected 2", s.Jaggedness)
	}
	if math.Abs(s.StdDev-math.Sqrt(7.5)) > 1e-12 {
		t.Fatalf("stddev = %v", s.StdDev)
	}
}

func TestMeasureFlatMap(t *testing.T) {
	g, err := heightmap.NewWithSeed(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(0); err != nil {
		t.Fatal(err)
	}
	s := Measure(g)
	if s.Jaggedness != 0 || s.StdDev != 0 || s.Min != s.Max {
		t.Fatalf("flat map should have no spread: %v", s)
	}
}
