// Package heightmap generates fractal terrain heights with the Diamond-Square
// algorithm on a square grid of side 2^detail+1.
package heightmap

import (
	"fmt"
	"math"
	"time"

	"mapgen/internal/core"

	"go.uber.org/zap"
)

// MaxDetail bounds the detail level so the sample slice stays allocatable.
const MaxDetail = 14

// Grid owns a square array of height samples stored in row-major order.
//
// A Grid is not safe for concurrent use. Distinct grids share no state and
// may be generated on separate goroutines.
type Grid struct {
	detail int
	side   int
	max    int

	roughness float64
	seed      int64

	cells []float64
	rng   *core.RNG
	log   *zap.Logger
}

// New returns a grid of the given detail seeded from the current time.
func New(detail int) (*Grid, error) {
	return NewWithSeed(detail, time.Now().UnixNano())
}

// NewWithSeed returns a grid of the given detail whose generation is fully
// determined by seed.
func NewWithSeed(detail int, seed int64) (*Grid, error) {
	if detail < 1 || detail > MaxDetail {
		return nil, fmt.Errorf("new grid: detail %d not in [1,%d]: %w", detail, MaxDetail, ErrInvalidDetail)
	}
	side := 1<<detail + 1
	cells := make([]float64, side*side)
	for i := range cells {
		cells[i] = math.NaN()
	}
	return &Grid{
		detail: detail,
		side:   side,
		max:    side - 1,
		seed:   seed,
		cells:  cells,
		rng:    core.NewRNG(seed),
		log:    zap.NewNop(),
	}, nil
}

// SetLogger replaces the grid's logger. A nil logger disables logging.
func (g *Grid) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	g.log = log
}

// Detail returns the generation level.
func (g *Grid) Detail() int { return g.detail }

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.side }

// MaxIndex returns the last valid coordinate along each axis.
func (g *Grid) MaxIndex() int { return g.max }

// Seed returns the seed the grid's random stream was created with.
func (g *Grid) Seed() int64 { return g.seed }

// Roughness returns the roughness used by the most recent generation.
func (g *Grid) Roughness() float64 { return g.roughness }

// Cells exposes the row-major backing slice; (x, y) lives at x + Size()*y.
func (g *Grid) Cells() []float64 { return g.cells }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x <= g.max && y >= 0 && y <= g.max
}

// Get returns the height at (x, y). The boolean is false when the position is
// off the grid, in which case the height is meaningless.
func (g *Grid) Get(x, y int) (float64, bool) {
	if !g.inBounds(x, y) {
		return 0, false
	}
	return g.cells[x+g.side*y], true
}

// Set writes v at (x, y). Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, v float64) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[x+g.side*y] = v
}

func (g *Grid) at(x, y int) sample {
	v, ok := g.Get(x, y)
	if !ok {
		return absent
	}
	return present(v)
}
