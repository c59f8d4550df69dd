// Package scenario loads and saves planning scenarios as YAML files and
// converts them to planner configuration.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
)

// Scenario is the on-disk form of one planning run. Points are [x, y]
// pairs in meters.
type Scenario struct {
	Name       string         `yaml:"name"`
	Boundary   [][2]float64   `yaml:"boundary"`
	NoGoZones  [][][2]float64 `yaml:"no_go_zones,omitempty"`
	CellSize   float64        `yaml:"cell_size"`
	Partitions int            `yaml:"partitions"`
	Starts     [][2]float64   `yaml:"starts"`
	CutLines   []float64      `yaml:"cut_lines,omitempty"`
	Speed      float64        `yaml:"speed"`
}

// Load reads a scenario YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the scenario as YAML.
func (s *Scenario) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Config converts the scenario to planner configuration. Validation
// happens in the planner, not here.
func (s *Scenario) Config() *core.Config {
	cfg := &core.Config{
		Boundary:   toPolygon(s.Boundary),
		CellSize:   s.CellSize,
		Partitions: s.Partitions,
		CutLines:   s.CutLines,
		Speed:      s.Speed,
	}
	for _, z := range s.NoGoZones {
		cfg.NoGoZones = append(cfg.NoGoZones, toPolygon(z))
	}
	for _, p := range s.Starts {
		cfg.Starts = append(cfg.Starts, core.Point{X: p[0], Y: p[1]})
	}
	return cfg
}

func toPolygon(pts [][2]float64) core.Polygon {
	poly := make(core.Polygon, len(pts))
	for i, p := range pts {
		poly[i] = core.Point{X: p[0], Y: p[1]}
	}
	return poly
}

// Demo returns the built-in survey field scenario: an irregular
// eight-vertex boundary with four no-go zones, nine partitions sharing
// one launch point.
func Demo() *Scenario {
	return &Scenario{
		Name: "survey-field",
		Boundary: [][2]float64{
			{18, 95}, {105, 81}, {93, 0}, {43, 2}, {20, 16}, {0, 19}, {0, 76}, {18, 95},
		},
		NoGoZones: [][][2]float64{
			{{40, 29}, {46, 29}, {43, 11}, {37, 11}},
			{{23, 72}, {29, 71}, {34, 61}, {23, 62}},
			{{50, 89}, {65, 77}, {64, 67}, {54, 68}, {53, 58}, {46, 59}},
			{{72, 76}, {79, 75}, {84, 74}, {85, 64}, {80, 55}, {76, 55}, {69, 56}},
		},
		CellSize:   2,
		Partitions: 9,
		Starts:     [][2]float64{{55, 44}},
		Speed:      4,
	}
}
