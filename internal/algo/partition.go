// Package algo implements the coverage planning algorithms: spatial
// partitioning, the KD-tree spatial index, greedy nearest-neighbor path
// construction, and path metrics.
package algo

import (
	"fmt"
	"math"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
)

// axis selects the partitioning direction.
type axis int

const (
	axisX axis = iota
	axisY
)

// dominantAxis returns the axis with the larger extent. Ties go to X.
func dominantAxis(bb core.Bounds) axis {
	if bb.Height() > bb.Width() {
		return axisY
	}
	return axisX
}

// cutLines computes n+1 partition boundaries evenly spaced over [lo, hi],
// each interior line snapped to the nearest multiple of cellSize from lo.
// Snapping can collapse adjacent lines; duplicates are dropped and the
// final line is capped at hi, so fewer than n bands may come back.
func cutLines(lo, hi, cellSize float64, n int) []float64 {
	lines := []float64{lo}
	for i := 1; i <= n; i++ {
		raw := lo + (hi-lo)*float64(i)/float64(n)
		snapped := lo + math.Round((raw-lo)/cellSize)*cellSize
		if snapped >= hi {
			break
		}
		if snapped > lines[len(lines)-1] {
			lines = append(lines, snapped)
		}
	}
	return append(lines, hi)
}

// BuildPartitions splits the valid cell set into disjoint bands along the
// dominant axis of bb and pairs each band with its start position from
// cfg. Every valid cell lands in exactly one partition. Fails with
// ErrPartition if the partition count is incompatible with the valid
// cell set or any band would be empty.
func BuildPartitions(valid []core.Cell, bb core.Bounds, cfg *core.Config) ([]core.Partition, error) {
	n := cfg.Partitions
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: no valid cells to partition", core.ErrPartition)
	}
	if n > len(valid) {
		return nil, fmt.Errorf("%w: partition count %d exceeds %d valid cells", core.ErrPartition, n, len(valid))
	}

	ax := dominantAxis(bb)
	var lines []float64
	if len(cfg.CutLines) > 0 {
		lines = cfg.CutLines
	} else if ax == axisX {
		lines = cutLines(bb.Min.X, bb.Max.X, cfg.CellSize, n)
	} else {
		lines = cutLines(bb.Min.Y, bb.Max.Y, cfg.CellSize, n)
	}
	if got := len(lines) - 1; got != n {
		return nil, fmt.Errorf("%w: cell size %v collapses %d requested partitions to %d bands",
			core.ErrPartition, cfg.CellSize, n, got)
	}

	parts := make([]core.Partition, n)
	for i := range parts {
		parts[i] = core.Partition{ID: i, Start: cfg.StartFor(i)}
	}
	for _, c := range valid {
		v := c.Center.X
		if ax == axisY {
			v = c.Center.Y
		}
		b := bandFor(lines, v)
		parts[b].Cells = append(parts[b].Cells, c)
	}
	for i := range parts {
		if len(parts[i].Cells) == 0 {
			return nil, fmt.Errorf("%w: partition %d covers no valid cells", core.ErrPartition, i)
		}
	}
	return parts, nil
}

// bandFor returns the index of the half-open band [lines[i], lines[i+1])
// containing v. The final band is closed so the maximum edge belongs to it.
func bandFor(lines []float64, v float64) int {
	for i := 1; i < len(lines)-1; i++ {
		if v < lines[i] {
			return i - 1
		}
	}
	return len(lines) - 2
}
