package heightmap

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// cornerHeight is the flat baseline shared by the four corners.
func (g *Grid) cornerHeight() float64 {
	return float64(g.max * 3 / 4)
}

func validRoughness(roughness float64) bool {
	return !math.IsNaN(roughness) && roughness >= 0
}

// Generate fills every cell of the grid. Roughness scales the random offset
// applied at each subdivision level; typical values lie in (0, 1].
func (g *Grid) Generate(roughness float64) error {
	if !validRoughness(roughness) {
		return fmt.Errorf("generate: roughness %v: %w", roughness, ErrInvalidRoughness)
	}
	g.roughness = roughness
	g.seedCorners()
	g.divide(g.max)
	g.log.Debug("heightmap generated",
		zap.Int("side", g.side),
		zap.Int64("seed", g.seed),
		zap.Float64("roughness", roughness),
	)
	return nil
}

func (g *Grid) seedCorners() {
	h := g.cornerHeight()
	g.Set(0, 0, h)
	g.Set(g.max, 0, h)
	g.Set(g.max, g.max, h)
	g.Set(0, g.max, h)
}

// offset draws the random perturbation for one cell at the given scale.
func (g *Grid) offset(scale float64) float64 {
	return g.rng.Signed(scale)
}

// square sets (x, y) from its diagonal neighbours at distance half.
func (g *Grid) square(x, y, half int, offset float64) {
	ave := average([4]sample{
		g.at(x-half, y-half), // upper left
		g.at(x+half, y-half), // upper right
		g.at(x+half, y+half), // lower right
		g.at(x-half, y+half), // lower left
	})
	g.Set(x, y, ave+offset)
}

// diamond sets (x, y) from its axis neighbours at distance half.
func (g *Grid) diamond(x, y, half int, offset float64) {
	ave := average([4]sample{
		g.at(x, y-half), // top
		g.at(x+half, y), // right
		g.at(x, y+half), // bottom
		g.at(x-half, y), // left
	})
	g.Set(x, y, ave+offset)
}

// divide runs one square pass and one diamond pass over every section of the
// given size, then recurses on sections half as large. The first call spans
// g.max, the even distance between corner anchors.
func (g *Grid) divide(size int) {
	half := size / 2
	if half < 1 {
		return
	}
	scale := g.roughness * float64(size)

	for y := half; y < g.max; y += size {
		for x := half; x < g.max; x += size {
			g.square(x, y, half, g.offset(scale))
		}
	}
	g.diamondPass(size, half, scale)

	g.divide(half)
}

// diamondPass fills the edge midpoints of every section. Square centres of the
// same level must already be set. Rows alternate their column phase so each
// diamond centre is visited once.
func (g *Grid) diamondPass(size, half int, scale float64) {
	for y := 0; y <= g.max; y += half {
		for x := (y + half) % size; x <= g.max; x += size {
			g.diamond(x, y, half, g.offset(scale))
		}
	}
}
