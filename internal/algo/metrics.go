package algo

import (
	"fmt"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
)

// ComputeMetrics sums the Euclidean legs over [start, path...] and
// derives traversal time at the given speed. Pure and deterministic.
func ComputeMetrics(start core.Point, path core.Path, speed float64) (core.Metrics, error) {
	if speed <= 0 {
		return core.Metrics{}, fmt.Errorf("%w: speed %v must be positive", core.ErrInvalidConfiguration, speed)
	}
	var dist float64
	prev := start
	for _, p := range path {
		dist += prev.Dist(p)
		prev = p
	}
	return core.Metrics{Distance: dist, Time: dist / speed}, nil
}
