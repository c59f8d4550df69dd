package algo

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
)

func squarePoly(x0, y0, size float64) core.Polygon {
	return core.Polygon{{X: x0, Y: y0}, {X: x0 + size, Y: y0}, {X: x0 + size, Y: y0 + size}, {X: x0, Y: y0 + size}}
}

func TestPlanUnitSquareSinglePartition(t *testing.T) {
	cfg := &core.Config{
		Boundary:   squarePoly(0, 0, 10),
		CellSize:   1,
		Partitions: 1,
		Starts:     []core.Point{{X: 0, Y: 0}},
		Speed:      4,
	}

	out, err := Plan(cfg)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(out.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(out.Results))
	}
	r := out.Results[0]
	if r.Err != nil {
		t.Fatalf("partition error: %v", r.Err)
	}
	if len(r.Path) != 100 {
		t.Fatalf("path visits %d cells, want 100", len(r.Path))
	}

	// Every center sits at half-integer coordinates within the square.
	for _, p := range r.Path {
		if p.X != math.Floor(p.X)+0.5 || p.Y != math.Floor(p.Y)+0.5 {
			t.Fatalf("center %v not at half-integer coordinates", p)
		}
		if p.X < 0.5 || p.X > 9.5 || p.Y < 0.5 || p.Y > 9.5 {
			t.Fatalf("center %v outside the square", p)
		}
	}

	// Distance bounds: positive, and below 100 diagonal hops plus the
	// initial leg.
	maxDist := 100*math.Sqrt2 + r.Partition.Start.Dist(r.Path[0])
	if r.Metrics.Distance <= 0 || r.Metrics.Distance >= maxDist {
		t.Errorf("distance %v outside (0, %v)", r.Metrics.Distance, maxDist)
	}
	if r.Metrics.Time != r.Metrics.Distance/4 {
		t.Errorf("time %v != distance/speed %v", r.Metrics.Time, r.Metrics.Distance/4)
	}
}

func TestPlanNoGoSubSquare(t *testing.T) {
	cfg := &core.Config{
		Boundary:   squarePoly(0, 0, 10),
		NoGoZones:  []core.Polygon{squarePoly(4, 4, 2)},
		CellSize:   1,
		Partitions: 1,
		Starts:     []core.Point{{X: 0, Y: 0}},
		Speed:      4,
	}

	out, err := Plan(cfg)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(out.ValidCells) != 96 {
		t.Fatalf("%d valid cells, want 96", len(out.ValidCells))
	}
	r := out.Results[0]
	if len(r.Path) != 96 {
		t.Fatalf("path visits %d cells, want 96", len(r.Path))
	}
	for _, p := range r.Path {
		if p.X > 4 && p.X < 6 && p.Y > 4 && p.Y < 6 {
			t.Errorf("path visits %v inside the no-go square", p)
		}
	}
}

func TestPlanFullyBlockedBoundary(t *testing.T) {
	cfg := &core.Config{
		Boundary:   squarePoly(0, 0, 10),
		NoGoZones:  []core.Polygon{squarePoly(-1, -1, 12)},
		CellSize:   1,
		Partitions: 1,
		Starts:     []core.Point{{X: 0, Y: 0}},
		Speed:      4,
	}

	_, err := Plan(cfg)
	if !errors.Is(err, core.ErrPartition) {
		t.Errorf("fully blocked boundary: got %v, want ErrPartition", err)
	}
}

func TestPlanRejectsBadConfigEagerly(t *testing.T) {
	cfg := &core.Config{
		Boundary:   squarePoly(0, 0, 10),
		CellSize:   1,
		Partitions: 1,
		Starts:     []core.Point{{X: 0, Y: 0}},
		Speed:      0,
	}
	_, err := Plan(cfg)
	if !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("got %v, want ErrInvalidConfiguration", err)
	}
}

func TestPlanPartitionCompleteness(t *testing.T) {
	cfg := &core.Config{
		Boundary:   squarePoly(0, 0, 10),
		NoGoZones:  []core.Polygon{squarePoly(1, 1, 2)},
		CellSize:   1,
		Partitions: 3,
		Starts:     []core.Point{{X: 5, Y: 5}},
		Speed:      2,
	}

	out, err := Plan(cfg)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	// Union of partition cell sets equals the valid cell set, and each
	// partition's path covers exactly its own cells.
	assigned := make(map[[2]int]int)
	for _, r := range out.Results {
		if r.Err != nil {
			t.Fatalf("partition %d: %v", r.Partition.ID, r.Err)
		}
		if len(r.Path) != len(r.Partition.Cells) {
			t.Errorf("partition %d path visits %d of %d cells",
				r.Partition.ID, len(r.Path), len(r.Partition.Cells))
		}
		centers := make(map[core.Point]bool, len(r.Partition.Cells))
		for _, c := range r.Partition.Cells {
			assigned[[2]int{c.Row, c.Col}]++
			centers[c.Center] = true
		}
		for _, p := range r.Path {
			if !centers[p] {
				t.Errorf("partition %d path visits foreign point %v", r.Partition.ID, p)
			}
		}
	}
	if len(assigned) != len(out.ValidCells) {
		t.Errorf("partitions cover %d cells, valid set has %d", len(assigned), len(out.ValidCells))
	}
	for key, count := range assigned {
		if count != 1 {
			t.Errorf("cell %v assigned %d times", key, count)
		}
	}
}

func TestPlanDeterministic(t *testing.T) {
	cfg := &core.Config{
		Boundary:   core.Polygon{{X: 18, Y: 95}, {X: 105, Y: 81}, {X: 93, Y: 0}, {X: 43, Y: 2}, {X: 20, Y: 16}, {X: 0, Y: 19}, {X: 0, Y: 76}},
		NoGoZones:  []core.Polygon{{{X: 40, Y: 29}, {X: 46, Y: 29}, {X: 43, Y: 11}, {X: 37, Y: 11}}},
		CellSize:   2,
		Partitions: 4,
		Starts:     []core.Point{{X: 55, Y: 44}},
		Speed:      4,
	}

	first, err := Plan(cfg)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	second, err := Plan(cfg)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	// Paths and metrics must be byte-identical across runs.
	a := fmt.Sprintf("%v", first.Results)
	b := fmt.Sprintf("%v", second.Results)
	if a != b {
		t.Error("two runs on identical inputs produced different results")
	}
}
