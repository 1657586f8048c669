package terrain

import (
	"fmt"
	"math"

	"mapgen/internal/heightmap"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the heights of a generated map.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	// Jaggedness is the mean absolute height difference between orthogonal
	// neighbours.
	Jaggedness float64
}

func (s Stats) String() string {
	return fmt.Sprintf("min=%.2f max=%.2f mean=%.2f stddev=%.2f jaggedness=%.3f",
		s.Min, s.Max, s.Mean, s.StdDev, s.Jaggedness)
}

// Measure computes Stats over every cell of g.
func Measure(g *heightmap.Grid) Stats {
	cells := g.Cells()
	if len(cells) == 0 {
		return Stats{}
	}
	mean, std := stat.MeanStdDev(cells, nil)
	return Stats{
		Min:        floats.Min(cells),
		Max:        floats.Max(cells),
		Mean:       mean,
		StdDev:     std,
		Jaggedness: jaggedness(cells, g.Size()),
	}
}

func jaggedness(cells []float64, side int) float64 {
	var sum float64
	var pairs int
	for y := 0; y < side; y++ {
		row := cells[y*side : (y+1)*side]
		for x := 0; x < side; x++ {
			if x+1 < side {
				sum += math.Abs(row[x+1] - row[x])
				pairs++
			}
			if y+1 < side {
				sum += math.Abs(cells[(y+1)*side+x] - row[x])
				pairs++
			}
		}
	}
	if pairs == 0 {
		return 0
	}
	return sum / float64(pairs)
}
