package heightmap

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NormalizedMax is the top of the range produced by Normalize.
const NormalizedMax = 255

// Bounds returns the lowest and highest heights currently stored.
func (g *Grid) Bounds() (lo, hi float64) {
	return floats.Min(g.cells), floats.Max(g.cells)
}

// Normalize rescales every height to an integer value in [0, 255]. The lowest
// cell becomes 0 and the highest 255. A perfectly flat grid becomes all 0.
// Running it again on normalized data leaves the data unchanged.
func (g *Grid) Normalize() {
	lo := floats.Min(g.cells)

	var hi float64
	for i, v := range g.cells {
		shifted := v - lo
		g.cells[i] = shifted
		if shifted > hi {
			hi = shifted
		}
	}
	if hi == 0 {
		return
	}

	for i, v := range g.cells {
		if v == hi {
			g.cells[i] = NormalizedMax
			continue
		}
		g.cells[i] = math.Trunc(v * NormalizedMax / hi)
	}
}
