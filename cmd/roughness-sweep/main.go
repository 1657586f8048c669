package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mapgen/internal/config"
	"mapgen/internal/logging"
	"mapgen/internal/terrain"

	"go.uber.org/zap"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "roughness-sweep:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML configuration file (defaults to $"+config.EnvPath+")")
	workers := flag.Int("workers", 0, "number of worker goroutines (0 uses the config value or NumCPU)")
	seeds := flag.Int("seeds", 0, "maps per roughness value (0 uses the config value)")
	detail := flag.Int("detail", 0, "map detail (0 uses the config value)")
	var roughness floatList
	flag.Var(&roughness, "roughness", "comma-separated roughness values (repeatable)")
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

	sweep := file.Sweep
	if *workers > 0 {
		sweep.Workers = *workers
	}
	if *seeds > 0 {
		sweep.Seeds = *seeds
	}
	if *detail > 0 {
		sweep.Detail = *detail
	}
	if len(roughness) > 0 {
		sweep.Roughness = roughness
	}

	base := terrain.FromFile(file)
	base.Detail = sweep.Detail

	log.Info("sweeping roughness",
		zap.Float64s("roughness", sweep.Roughness),
		zap.Int("seeds", sweep.Seeds),
		zap.Int("detail", sweep.Detail),
		zap.Int("workers", sweep.Workers),
	)
	start := time.Now()
	results, err := terrain.RoughnessSweep(base, sweep.Roughness, sweep.Seeds, sweep.Workers)
	if err != nil {
		return err
	}
	log.Info("sweep finished", zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))

	for _, res := range results {
		fmt.Println(res)
	}
	return nil
}
