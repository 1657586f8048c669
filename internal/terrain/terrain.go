package terrain

import (
	"errors"
	"fmt"
	"time"

	"mapgen/internal/core"
	"mapgen/internal/heightmap"

	"go.uber.org/zap"
)

// Name is the registry key of the Diamond-Square terrain.
const Name = "diamondsquare"

// ErrNotGenerated is returned by edits issued before the first Reset.
var ErrNotGenerated = errors.New("terrain not generated")

// World couples a heightmap with the byte raster handed to renderers.
type World struct {
	cfg Config

	side int

	grid    *heightmap.Grid
	display *core.ByteGrid

	log *zap.Logger
}

// New returns a World of the given detail using defaults.
func New(detail int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Detail = detail
	if cfg.Params.SectorLOD > detail {
		cfg.Params.SectorLOD = detail
	}
	return NewWithConfig(cfg, nil)
}

// NewWithConfig returns a World configured from the provided options. The map
// is empty until Reset is called.
func NewWithConfig(cfg Config, log *zap.Logger) (*World, error) {
	if cfg.Detail < 1 || cfg.Detail > heightmap.MaxDetail {
		return nil, fmt.Errorf("new terrain: detail %d: %w", cfg.Detail, heightmap.ErrInvalidDetail)
	}
	if log == nil {
		log = zap.NewNop()
	}
	side := heightmap.SectorSide(cfg.Detail)
	return &World{
		cfg:     cfg,
		side:    side,
		display: core.NewByteGrid(side, side),
		log:     log,
	}, nil
}

// Name returns the terrain identifier.
func (w *World) Name() string { return Name }

// Size reports the raster dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.side, H: w.side} }

// Cells exposes the current display buffer, one byte per height sample.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the underlying heightmap, or nil before the first Reset.
func (w *World) Grid() *heightmap.Grid { return w.grid }

// Heights exposes the raw heights, or nil before the first Reset.
func (w *World) Heights() []float64 {
	if w.grid == nil {
		return nil
	}
	return w.grid.Cells()
}

// Seed returns the seed of the current map, or 0 before the first Reset.
func (w *World) Seed() int64 {
	if w.grid == nil {
		return 0
	}
	return w.grid.Seed()
}

// Reset generates a fresh map. Seed 0 is reserved to mean "unset": it selects
// the configured seed, and a zero configured seed selects one from the clock.
// Use Regenerate to build the map for seed 0 itself. Seed reports the value
// that was used.
func (w *World) Reset(seed int64) error {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if effective == 0 {
		effective = time.Now().UnixNano()
	}
	return w.regenerate(effective)
}

// Regenerate generates a fresh map from exactly seed, including 0.
func (w *World) Regenerate(seed int64) error {
	return w.regenerate(seed)
}

func (w *World) regenerate(seed int64) error {
	grid, err := heightmap.NewWithSeed(w.cfg.Detail, seed)
	if err != nil {
		return fmt.Errorf("reset terrain: %w", err)
	}
	grid.SetLogger(w.log)
	if err := grid.Generate(w.cfg.Params.Roughness); err != nil {
		return fmt.Errorf("reset terrain: %w", err)
	}
	if w.cfg.Params.Normalize {
		grid.Normalize()
	}
	w.grid = grid
	w.rebuildDisplay()

	lo, hi := grid.Bounds()
	w.log.Info("terrain generated",
		zap.Int("side", w.side),
		zap.Int64("seed", seed),
		zap.Float64("roughness", w.cfg.Params.Roughness),
		zap.Float64("min", lo),
		zap.Float64("max", hi),
	)
	return nil
}

// SectorSide returns the side length of the configured sector.
func (w *World) SectorSide() int { return heightmap.SectorSide(w.cfg.Params.SectorLOD) }

// SectorOrigin returns the upper-left corner of the configured sector centred
// on (cx, cy).
func (w *World) SectorOrigin(cx, cy int) (int, int) {
	half := (w.SectorSide() - 1) / 2
	return cx - half, cy - half
}

// RaiseSector regenerates the configured sector centred on (cx, cy), forcing
// its centre to the configured sector height (limited to [0, 255] on a
// normalized map).
func (w *World) RaiseSector(cx, cy int) error {
	if w.grid == nil {
		return ErrNotGenerated
	}
	x, y := w.SectorOrigin(cx, cy)
	p := w.cfg.Params
	height := p.SectorHeight
	if ctrl, ok := w.control("sector_height"); ok {
		height = ctrl.Clamp(height)
	}
	if err := w.grid.ModifySector(x, y, p.SectorLOD, p.SectorRoughness, height); err != nil {
		return fmt.Errorf("raise sector at (%d,%d): %w", cx, cy, err)
	}
	w.settle()
	return nil
}

// ApplyEdits performs each edit in order, stopping at the first failure.
// Edits applied before the failure are kept. A normalized map is normalized
// again if the edits pushed it out of range.
func (w *World) ApplyEdits(edits []SectorEdit) error {
	if w.grid == nil {
		return ErrNotGenerated
	}
	defer w.settle()
	for i, e := range edits {
		if err := w.grid.ModifySector(e.X, e.Y, e.LOD, e.Roughness, e.CentralHeight); err != nil {
			return fmt.Errorf("edit %d (%s): %w", i, e, err)
		}
	}
	w.log.Debug("sector edits applied", zap.Int("count", len(edits)))
	return nil
}

func init() {
	core.Register(Name, func(cfg map[string]string, log *zap.Logger) (core.Terrain, error) {
		w, err := NewWithConfig(FromMap(cfg), log)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
