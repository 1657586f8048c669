package app

import (
	"flag"
	"testing"

	"mapgen/internal/config"
)

func TestBindOverridesFileDefaults(t *testing.T) {
	file := config.Defaults()
	file.Map.Detail = 6
	file.View.Gray = true
	cfg := NewConfig(file)
	if cfg.Detail != 6 || !cfg.Gray || cfg.Scale != file.View.Scale {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "12", "-roughness", "0.4", "-gray=false", "-scale", "2"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 12 || cfg.Roughness != 0.4 || cfg.Gray || cfg.Scale != 2 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Detail != 6 {
		t.Fatalf("unset flag should keep file value, got %d", cfg.Detail)
	}
}

func TestOverrides(t *testing.T) {
	file := config.Defaults()
	cfg := NewConfig(file)
	cfg.Seed = -3
	cfg.Roughness = 0.25
	got := cfg.Overrides(file)
	want := map[string]string{
		"detail":           "8",
		"seed":             "-3",
		"roughness":        "0.25",
		"normalize":        "true",
		"sector_lod":       "4",
		"sector_roughness": "0.3",
		"sector_height":    "230",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("override %s = %q, expected %q", k, got[k], v)
		}
	}
	if NewConfig(nil).Terrain != "diamondsquare" {
		t.Fatal("nil file config should fall back to defaults")
	}
}
