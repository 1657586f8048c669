//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"mapgen/internal/app"
	"mapgen/internal/config"
	"mapgen/internal/core"
	"mapgen/internal/logging"
	_ "mapgen/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mapgen:", err)
		os.Exit(1)
	}
}

func run() error {
	file, err := config.Resolve(configFlag(os.Args[1:]))
	if err != nil {
		return err
	}
	cfg := app.NewConfig(file)
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log, err := logging.New(file.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	factory, ok := core.Terrains()[cfg.Terrain]
	if !ok {
		return fmt.Errorf("unknown terrain %q", cfg.Terrain)
	}
	t, err := factory(cfg.Overrides(file), log)
	if err != nil {
		return err
	}
	if err := t.Reset(cfg.Seed); err != nil {
		return err
	}

	game := app.New(t, cfg, log)
	size := t.Size()

	ebiten.SetWindowTitle("mapgen - " + t.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	log.Info("viewer starting",
		zap.String("terrain", t.Name()),
		zap.Int("side", size.W),
		zap.Int64("seed", t.Seed()),
	)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// configFlag peeks at -config before the remaining flags are bound, since the
// file supplies their defaults.
func configFlag(args []string) string {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("config", "", "")
	for i, arg := range args {
		if arg == "-config" || arg == "--config" || strings.HasPrefix(arg, "-config=") || strings.HasPrefix(arg, "--config=") {
			_ = fs.Parse(args[i:])
			break
		}
	}
	return *path
}
