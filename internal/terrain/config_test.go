package terrain

import (
	"testing"

	"mapgen/internal/config"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"detail":           "6",
		"seed":             "-4",
		"roughness":        "0.25",
		"normalize":        "false",
		"sector_lod":       "3",
		"sector_roughness": "0.9",
		"sector_height":    "-20",
	})
	if c.Detail != 6 || c.Seed != -4 {
		t.Fatalf("unexpected map config %+v", c)
	}
	p := c.Params
	if p.Roughness != 0.25 || p.Normalize || p.SectorLOD != 3 || p.SectorRoughness != 0.9 || p.SectorHeight != -20 {
		t.Fatalf("unexpected params %+v", p)
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"detail":    "zero",
		"roughness": "-1",
		"normalize": "maybe",
	})
	if c.Detail != def.Detail || c.Params.Roughness != def.Params.Roughness || c.Params.Normalize != def.Params.Normalize {
		t.Fatalf("invalid overrides should be ignored: %+v", c)
	}
}

func TestFromMapClampsSectorLOD(t *testing.T) {
	c := FromMap(map[string]string{"detail": "2"})
	if c.Params.SectorLOD != 2 {
		t.Fatalf("sector lod should clamp to detail, got %d", c.Params.SectorLOD)
	}
}

func TestFromFile(t *testing.T) {
	file := config.Defaults()
	file.Map.Detail = 4
	file.Map.Seed = 8
	file.Sector.CentralHeight = 12
	c := FromFile(file)
	if c.Detail != 4 || c.Seed != 8 || c.Params.SectorHeight != 12 {
		t.Fatalf("unexpected config %+v", c)
	}
	if FromFile(nil) != DefaultConfig() {
		t.Fatal("nil file config should yield defaults")
	}
}
