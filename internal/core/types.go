package core

import "go.uber.org/zap"

// Size describes the dimensions of a terrain raster.
type Size struct {
	W int
	H int
}

// Terrain defines the minimal contract a viewer needs from a height source.
// Reset may substitute a seed of its own choosing for 0; Seed reports the
// seed actually used so the same map can be produced again.
type Terrain interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Seed() int64
	Cells() []uint8
}

// Factory constructs a Terrain using an optional configuration map.
type Factory func(cfg map[string]string, log *zap.Logger) (Terrain, error)

var terrains = map[string]Factory{}

// Register adds a terrain factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	terrains[name] = f
}

// Terrains exposes the registry of available terrain factories.
func Terrains() map[string]Factory {
	return terrains
}
