// Package main generates deterministic random coverage scenarios.
// Boundaries are jittered convex polygons; no-go zones are random quads
// placed inside the boundary's inner region.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/scenario"
)

// ScenarioParams defines parameters for scenario generation.
type ScenarioParams struct {
	Seed       int64
	Radius     float64 // Approximate field radius in meters
	Vertices   int     // Boundary vertex count
	NoGoCount  int
	CellSize   float64
	Partitions int
	Speed      float64
}

// generateScenario creates one scenario from parameters.
func generateScenario(params ScenarioParams) *scenario.Scenario {
	rng := rand.New(rand.NewSource(params.Seed))

	s := &scenario.Scenario{
		Name:       fmt.Sprintf("field_r%.0f_p%d_%d", params.Radius, params.Partitions, params.Seed),
		CellSize:   params.CellSize,
		Partitions: params.Partitions,
		Speed:      params.Speed,
	}

	// Boundary: vertices on a circle with jittered radius, centered so
	// all coordinates stay positive.
	cx, cy := params.Radius*1.2, params.Radius*1.2
	for i := 0; i < params.Vertices; i++ {
		angle := 2 * math.Pi * float64(i) / float64(params.Vertices)
		r := params.Radius * (0.7 + 0.3*rng.Float64())
		s.Boundary = append(s.Boundary, [2]float64{
			round1(cx + r*math.Cos(angle)),
			round1(cy + r*math.Sin(angle)),
		})
	}

	// No-go zones: axis-aligned quads well inside the boundary circle.
	for i := 0; i < params.NoGoCount; i++ {
		angle := 2 * math.Pi * rng.Float64()
		dist := params.Radius * 0.5 * rng.Float64()
		zx := cx + dist*math.Cos(angle)
		zy := cy + dist*math.Sin(angle)
		w := params.Radius * (0.05 + 0.1*rng.Float64())
		h := params.Radius * (0.05 + 0.1*rng.Float64())
		s.NoGoZones = append(s.NoGoZones, [][2]float64{
			{round1(zx - w), round1(zy - h)},
			{round1(zx + w), round1(zy - h)},
			{round1(zx + w), round1(zy + h)},
			{round1(zx - w), round1(zy + h)},
		})
	}

	// Single shared launch point near the field center.
	s.Starts = [][2]float64{{round1(cx), round1(cy)}}

	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	radius := flag.Float64("radius", 50, "Approximate field radius (meters)")
	vertices := flag.Int("vertices", 8, "Boundary vertex count")
	noGoCount := flag.Int("nogo", 4, "Number of no-go zones")
	cellSize := flag.Float64("cell", 2, "Cell size (meters)")
	partitions := flag.Int("partitions", 4, "Partition count")
	speed := flag.Float64("speed", 4, "Robot speed (m/s)")
	outputDir := flag.String("output", "testdata", "Output directory")
	scalingMode := flag.Bool("scaling", false, "Generate scaling suite (radii 25, 50, 100, 200)")

	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	var scenarios []*scenario.Scenario

	if *scalingMode {
		for _, r := range []float64{25, 50, 100, 200} {
			// Partition count scales with radius so band widths stay
			// comparable across the suite.
			params := ScenarioParams{
				Seed:       *seed,
				Radius:     r,
				Vertices:   *vertices,
				NoGoCount:  *noGoCount,
				CellSize:   *cellSize,
				Partitions: int(math.Max(2, math.Round(r/12.5))),
				Speed:      *speed,
			}
			scenarios = append(scenarios, generateScenario(params))
		}
	} else {
		params := ScenarioParams{
			Seed:       *seed,
			Radius:     *radius,
			Vertices:   *vertices,
			NoGoCount:  *noGoCount,
			CellSize:   *cellSize,
			Partitions: *partitions,
			Speed:      *speed,
		}
		scenarios = append(scenarios, generateScenario(params))
	}

	for _, s := range scenarios {
		path := filepath.Join(*outputDir, s.Name+".yaml")
		if err := s.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d boundary vertices, %d no-go zones, %d partitions)\n",
			path, len(s.Boundary), len(s.NoGoZones), s.Partitions)
	}
}
