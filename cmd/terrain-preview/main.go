package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"mapgen/internal/config"
	"mapgen/internal/logging"
	"mapgen/internal/render"
	"mapgen/internal/terrain"

	"go.uber.org/zap"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "terrain-preview:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML configuration file (defaults to $"+config.EnvPath+")")
	editsPath := flag.String("edits", "", "YAML sector edit script (overrides sector.edits_file)")
	cols := flag.Int("cols", 96, "width of the ASCII preview in characters")
	pngPath := flag.String("png", "", "also write a coloured PNG to this path")
	gray := flag.Bool("gray", false, "use grayscale colouring for the PNG")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	file, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(file.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	pairs := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Warn("ignoring malformed override", zap.String("override", kv))
			continue
		}
		pairs[parts[0]] = parts[1]
	}
	cfg := terrain.Merge(terrain.FromFile(file), pairs)

	world, err := terrain.NewWithConfig(cfg, log)
	if err != nil {
		return err
	}
	if err := world.Reset(cfg.Seed); err != nil {
		return err
	}

	if *editsPath == "" {
		*editsPath = file.Sector.EditsFile
	}
	if *editsPath != "" {
		edits, err := terrain.LoadEdits(*editsPath)
		if err != nil {
			return err
		}
		for _, e := range edits {
			log.Debug("sector edit", zap.Stringer("edit", e))
		}
		if err := world.ApplyEdits(edits); err != nil {
			return err
		}
	}

	size := world.Size()
	stats := terrain.Measure(world.Grid())
	log.Info("map ready",
		zap.Int64("seed", world.Seed()),
		zap.Int("side", size.W),
		zap.Float64("roughness", cfg.Params.Roughness),
		zap.Stringer("stats", stats),
	)
	fmt.Print(render.ASCII(world.Cells(), size.W, size.H, *cols))

	if *pngPath != "" {
		gradient := render.TerrainGradient()
		if *gray {
			gradient = render.Grayscale()
		}
		if err := writePNG(*pngPath, render.Image(world.Cells(), size.W, size.H, gradient)); err != nil {
			return err
		}
		log.Info("wrote preview image", zap.String("path", *pngPath))
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
