package config

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable consulted when no -config flag is given.
const EnvPath = "MAPGEN_CONFIG"

// Config is the on-disk configuration shared by every command.
type Config struct {
	Map     MapConfig     `toml:"map"`
	Sector  SectorConfig  `toml:"sector"`
	View    ViewConfig    `toml:"view"`
	Sweep   SweepConfig   `toml:"sweep"`
	Logging LoggingConfig `toml:"logging"`
}

// MapConfig controls full-map generation.
type MapConfig struct {
	Detail    int     `toml:"detail"`
	Seed      int64   `toml:"seed"` // 0 = derive from the clock
	Roughness float64 `toml:"roughness"`
	Normalize bool    `toml:"normalize"`
}

// SectorConfig controls interactive and scripted sector edits.
type SectorConfig struct {
	LOD           int     `toml:"lod"`
	Roughness     float64 `toml:"roughness"`
	CentralHeight float64 `toml:"central_height"`
	EditsFile     string  `toml:"edits_file"` // YAML list of sector edits
}

// ViewConfig holds viewer window settings.
type ViewConfig struct {
	Scale    int  `toml:"scale"`
	TPS      int  `toml:"tps"`
	HUDWidth int  `toml:"hud_width"`
	Gray     bool `toml:"gray"`
}

// SweepConfig drives cmd/roughness-sweep.
type SweepConfig struct {
	Workers   int       `toml:"workers"` // 0 = runtime.NumCPU()
	Seeds     int       `toml:"seeds"`
	Detail    int       `toml:"detail"`
	Roughness []float64 `toml:"roughness"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads path, falling back to $MAPGEN_CONFIG, and finally to the defaults.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return Defaults(), nil
	}
	return Load(path)
}

// Validate rejects values no generator could honour.
func (c *Config) Validate() error {
	if c.Map.Detail < 1 {
		return fmt.Errorf("map.detail must be >= 1, got %d", c.Map.Detail)
	}
	if !validRoughness(c.Map.Roughness) {
		return fmt.Errorf("map.roughness must be a number >= 0, got %v", c.Map.Roughness)
	}
	if c.Sector.LOD < 1 {
		return fmt.Errorf("sector.lod must be >= 1, got %d", c.Sector.LOD)
	}
	if !validRoughness(c.Sector.Roughness) {
		return fmt.Errorf("sector.roughness must be a number >= 0, got %v", c.Sector.Roughness)
	}
	if c.Sweep.Detail < 1 {
		return fmt.Errorf("sweep.detail must be >= 1, got %d", c.Sweep.Detail)
	}
	for _, r := range c.Sweep.Roughness {
		if !validRoughness(r) {
			return fmt.Errorf("sweep.roughness entries must be a number >= 0, got %v", r)
		}
	}
	return nil
}

func validRoughness(r float64) bool {
	return !math.IsNaN(r) && r >= 0
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Map: MapConfig{
			Detail:    8,
			Seed:      0,
			Roughness: 0.7,
			Normalize: true,
		},
		Sector: SectorConfig{
			LOD:           4,
			Roughness:     0.3,
			CentralHeight: 230,
		},
		View: ViewConfig{
			Scale:    3,
			TPS:      60,
			HUDWidth: 240,
		},
		Sweep: SweepConfig{
			Workers:   0,
			Seeds:     16,
			Detail:    7,
			Roughness: []float64{0.1, 0.3, 0.5, 0.7, 1.0, 1.5},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
