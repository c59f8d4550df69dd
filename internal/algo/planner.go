package algo

import (
	"sync"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/geo"
	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/grid"
)

// PlanOutput bundles one run's full results for callers that render or
// replay them: the grid, the valid cell set, and per-partition rows.
type PlanOutput struct {
	Grid       *core.Grid
	ValidCells []core.Cell
	Results    []core.Result
}

// Plan runs the whole coverage pipeline: validate, discretize, filter,
// partition, then build each partition's path and metrics. Partitions
// are planned concurrently; each worker touches only its own partition's
// data, so no locking is needed. A failed partition carries its error in
// its result row while the remaining rows stay valid.
func Plan(cfg *core.Config) (*PlanOutput, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.Discretize(cfg.Boundary, cfg.CellSize)
	if err != nil {
		return nil, err
	}
	adapter := geo.NewAdapter(cfg.Boundary, cfg.NoGoZones)
	valid := grid.FilterValid(g, adapter)

	parts, err := BuildPartitions(valid, g.Bounds(), cfg)
	if err != nil {
		return nil, err
	}

	results := make([]core.Result, len(parts))
	var wg sync.WaitGroup
	for i := range parts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = planPartition(parts[i], cfg.Speed)
		}(i)
	}
	wg.Wait()

	return &PlanOutput{Grid: g, ValidCells: valid, Results: results}, nil
}

// planPartition builds one partition's path and metrics in isolation.
func planPartition(p core.Partition, speed float64) core.Result {
	res := core.Result{Partition: p}
	path, err := NewPathBuilder(p).Build()
	if err != nil {
		res.Err = err
		return res
	}
	res.Path = path
	res.Metrics, res.Err = ComputeMetrics(p.Start, path, speed)
	return res
}
