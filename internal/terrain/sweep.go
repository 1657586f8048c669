package terrain

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// SweepResult aggregates the maps generated for one roughness value.
type SweepResult struct {
	Roughness float64
	Maps      int
	// Worst-case extremes and averaged summary statistics across the maps.
	Min        float64
	Max        float64
	Mean       float64
	StdDev     float64
	Jaggedness float64
}

func (r SweepResult) String() string {
	return fmt.Sprintf("roughness=%.2f maps=%d min=%.2f max=%.2f mean=%.2f stddev=%.2f jaggedness=%.3f",
		r.Roughness, r.Maps, r.Min, r.Max, r.Mean, r.StdDev, r.Jaggedness)
}

// RoughnessSweep generates seeds maps per roughness value on up to workers
// goroutines. Map i of every roughness uses seed base.Seed+i+1, so results do
// not depend on scheduling. Heights are measured before normalization.
func RoughnessSweep(base Config, roughness []float64, seeds, workers int) ([]SweepResult, error) {
	if seeds < 1 {
		return nil, fmt.Errorf("roughness sweep: need at least one seed, got %d", seeds)
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	type job struct {
		r, s int
	}
	stats := make([][]Stats, len(roughness))
	for i := range stats {
		stats[i] = make([]Stats, seeds)
	}

	jobs := make(chan job)
	errs := make(chan error, len(roughness)*seeds)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				cfg := base
				cfg.Params.Roughness = roughness[j.r]
				cfg.Params.Normalize = false
				world, err := NewWithConfig(cfg, nil)
				if err == nil {
					err = world.Regenerate(base.Seed + int64(j.s) + 1)
				}
				if err != nil {
					errs <- fmt.Errorf("roughness %v seed #%d: %w", roughness[j.r], j.s, err)
					continue
				}
				stats[j.r][j.s] = Measure(world.Grid())
			}
		}()
	}

	for r := range roughness {
		for s := 0; s < seeds; s++ {
			jobs <- job{r: r, s: s}
		}
	}
	close(jobs)
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return nil, fmt.Errorf("roughness sweep: %w", err)
	}

	results := make([]SweepResult, len(roughness))
	for i, r := range roughness {
		results[i] = aggregate(r, stats[i])
	}
	return results, nil
}

func aggregate(roughness float64, runs []Stats) SweepResult {
	n := len(runs)
	mins := make([]float64, n)
	maxs := make([]float64, n)
	means := make([]float64, n)
	stds := make([]float64, n)
	jags := make([]float64, n)
	for i, s := range runs {
		mins[i], maxs[i], means[i], stds[i], jags[i] = s.Min, s.Max, s.Mean, s.StdDev, s.Jaggedness
	}
	inv := 1 / float64(n)
	return SweepResult{
		Roughness:  roughness,
		Maps:       n,
		Min:        floats.Min(mins),
		Max:        floats.Max(maxs),
		Mean:       floats.Sum(means) * inv,
		StdDev:     floats.Sum(stds) * inv,
		Jaggedness: floats.Sum(jags) * inv,
	}
}
