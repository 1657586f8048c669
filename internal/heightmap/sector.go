package heightmap

import (
	"fmt"

	"go.uber.org/zap"
)

// GenerateSector regenerates a grid whose corners already hold boundary
// heights, forcing the centre cell to centralHeight. Every other cell is
// recomputed from averages seeded by the corners and the centre.
func (g *Grid) GenerateSector(roughness, centralHeight float64) error {
	if !validRoughness(roughness) {
		return fmt.Errorf("generate sector: roughness %v: %w", roughness, ErrInvalidRoughness)
	}
	g.roughness = roughness
	g.divideSector(g.max, centralHeight)
	return nil
}

// divideSector is the top level of divide with the centre assigned instead of
// averaged. Deeper levels use the ordinary recursion.
func (g *Grid) divideSector(size int, centralHeight float64) {
	half := size / 2
	if half < 1 {
		return
	}
	scale := g.roughness * float64(size)

	g.Set(half, half, centralHeight)
	g.diamondPass(size, half, scale)

	g.divide(half)
}

// SectorSide returns the side length of a sector of the given LOD.
func SectorSide(lod int) int { return 1<<lod + 1 }

// ModifySector regenerates the square of side 2^lod+1 whose upper-left corner
// is (origX, origY), blending from the sector's current corner heights towards
// centralHeight at its centre. Cells outside the square are left untouched.
//
// The sector grid is seeded from this grid's random stream, so a sequence of
// edits on a seeded grid is reproducible.
func (g *Grid) ModifySector(origX, origY, lod int, roughness, centralHeight float64) error {
	if lod < 1 {
		return fmt.Errorf("modify sector: lod %d: %w", lod, ErrInvalidDetail)
	}
	if !validRoughness(roughness) {
		return fmt.Errorf("modify sector: roughness %v: %w", roughness, ErrInvalidRoughness)
	}
	if lod > g.detail {
		return fmt.Errorf("modify sector: lod %d exceeds grid detail %d: %w", lod, g.detail, ErrOutOfRangeSector)
	}
	side := SectorSide(lod)
	if origX < 0 || origY < 0 || origX+side > g.side || origY+side > g.side {
		return fmt.Errorf("modify sector: origin (%d,%d) side %d on grid of side %d: %w",
			origX, origY, side, g.side, ErrOutOfRangeSector)
	}

	sector, err := NewWithSeed(lod, g.rng.Int64())
	if err != nil {
		return fmt.Errorf("modify sector: %w", err)
	}
	sector.SetLogger(g.log)

	for j := 0; j < side; j++ {
		src := origX + g.side*(origY+j)
		copy(sector.cells[j*side:(j+1)*side], g.cells[src:src+side])
	}
	if err := sector.GenerateSector(roughness, centralHeight); err != nil {
		return fmt.Errorf("modify sector: %w", err)
	}
	for j := 0; j < side; j++ {
		dst := origX + g.side*(origY+j)
		copy(g.cells[dst:dst+side], sector.cells[j*side:(j+1)*side])
	}

	g.log.Debug("sector regenerated",
		zap.Int("x", origX),
		zap.Int("y", origY),
		zap.Int("side", side),
		zap.Float64("roughness", roughness),
		zap.Float64("central_height", centralHeight),
		zap.Int64("sector_seed", sector.Seed()),
	)
	return nil
}
