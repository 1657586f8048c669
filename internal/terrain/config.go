package terrain

import (
	"strconv"

	"mapgen/internal/config"
)

// Params holds the tunables applied when generating and editing a map.
type Params struct {
	Roughness float64
	Normalize bool

	SectorLOD       int
	SectorRoughness float64
	SectorHeight    float64
}

// Config controls the map dimensions and seed.
type Config struct {
	Detail int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Detail: 8,
		Seed:   1337,
		Params: Params{
			Roughness:       0.7,
			Normalize:       true,
			SectorLOD:       4,
			SectorRoughness: 0.3,
			SectorHeight:    230,
		},
	}
}

// FromFile converts the TOML configuration into a terrain config.
func FromFile(c *config.Config) Config {
	cfg := DefaultConfig()
	if c == nil {
		return cfg
	}
	cfg.Detail = c.Map.Detail
	cfg.Seed = c.Map.Seed
	cfg.Params.Roughness = c.Map.Roughness
	cfg.Params.Normalize = c.Map.Normalize
	cfg.Params.SectorLOD = c.Sector.LOD
	cfg.Params.SectorRoughness = c.Sector.Roughness
	cfg.Params.SectorHeight = c.Sector.CentralHeight
	return cfg
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return Merge(DefaultConfig(), cfg)
}

// Merge applies string overrides on top of base. Unparseable or out of range
// values are ignored.
func Merge(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["detail"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Detail = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["roughness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Roughness = parsed
		}
	}
	if v, ok := cfg["normalize"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.Normalize = parsed
		}
	}
	if v, ok := cfg["sector_lod"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.SectorLOD = parsed
		}
	}
	if c.Params.SectorLOD > c.Detail {
		c.Params.SectorLOD = c.Detail
	}
	if v, ok := cfg["sector_roughness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SectorRoughness = parsed
		}
	}
	if v, ok := cfg["sector_height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SectorHeight = parsed
		}
	}
	return c
}
