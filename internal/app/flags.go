package app

import (
	"flag"
	"strconv"

	"mapgen/internal/config"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	ConfigPath string
	Terrain    string
	Scale      int
	TPS        int
	HUDWidth   int
	Seed       int64
	Detail     int
	Roughness  float64
	Gray       bool
}

// NewConfig returns a Config populated from the file configuration.
func NewConfig(file *config.Config) *Config {
	if file == nil {
		file = config.Defaults()
	}
	return &Config{
		Terrain:   "diamondsquare",
		Scale:     file.View.Scale,
		TPS:       file.View.TPS,
		HUDWidth:  file.View.HUDWidth,
		Seed:      file.Map.Seed,
		Detail:    file.Map.Detail,
		Roughness: file.Map.Roughness,
		Gray:      file.View.Gray,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML configuration file")
	fs.StringVar(&c.Terrain, "terrain", c.Terrain, "terrain generator to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "map seed (0 picks one from the clock)")
	fs.IntVar(&c.Detail, "detail", c.Detail, "map detail; the side is 2^detail+1")
	fs.Float64Var(&c.Roughness, "roughness", c.Roughness, "Diamond-Square roughness")
	fs.BoolVar(&c.Gray, "gray", c.Gray, "start with grayscale colouring")
}

// Overrides returns the terrain settings as factory key/value pairs.
func (c *Config) Overrides(file *config.Config) map[string]string {
	out := map[string]string{}
	if file != nil {
		out["normalize"] = strconv.FormatBool(file.Map.Normalize)
		out["sector_lod"] = strconv.Itoa(file.Sector.LOD)
		out["sector_roughness"] = formatFloat(file.Sector.Roughness)
		out["sector_height"] = formatFloat(file.Sector.CentralHeight)
	}
	out["detail"] = strconv.Itoa(c.Detail)
	out["seed"] = strconv.FormatInt(c.Seed, 10)
	out["roughness"] = formatFloat(c.Roughness)
	return out
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
