package core

import "fmt"

// Config holds all inputs for one planning run. Polygons and parameters
// are supplied once at run start and are immutable for the duration.
type Config struct {
	Boundary   Polygon
	NoGoZones  []Polygon
	CellSize   float64
	Partitions int

	// Starts holds per-partition start positions. A single entry is
	// shared by every partition.
	Starts []Point

	// CutLines optionally overrides the computed partition boundaries.
	// Values are coordinates along the dominant axis, ascending.
	CutLines []float64

	// Speed is the robot traversal speed in meters per second.
	Speed float64
}

// Validate checks the configuration eagerly, before any grid work.
// All violations wrap ErrInvalidConfiguration and name the offending value.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %v must be positive", ErrInvalidConfiguration, c.CellSize)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed %v must be positive", ErrInvalidConfiguration, c.Speed)
	}
	if c.Partitions < 1 {
		return fmt.Errorf("%w: partition count %d must be positive", ErrInvalidConfiguration, c.Partitions)
	}
	if n := c.Boundary.DistinctVertices(); n < 3 {
		return fmt.Errorf("%w: boundary polygon has %d distinct vertices, need at least 3", ErrInvalidConfiguration, n)
	}
	for i, z := range c.NoGoZones {
		if n := z.DistinctVertices(); n < 3 {
			return fmt.Errorf("%w: no-go zone %d has %d distinct vertices, need at least 3", ErrInvalidConfiguration, i, n)
		}
	}
	bb := c.Boundary.BoundingBox()
	if c.CellSize > bb.Width() || c.CellSize > bb.Height() {
		return fmt.Errorf("%w: cell size %v exceeds boundary extent %vx%v",
			ErrInvalidConfiguration, c.CellSize, bb.Width(), bb.Height())
	}
	if len(c.Starts) != 1 && len(c.Starts) != c.Partitions {
		return fmt.Errorf("%w: %d start positions for %d partitions, need 1 or %d",
			ErrInvalidConfiguration, len(c.Starts), c.Partitions, c.Partitions)
	}
	if len(c.CutLines) > 0 && len(c.CutLines) != c.Partitions+1 {
		return fmt.Errorf("%w: %d cut lines for %d partitions, need %d",
			ErrInvalidConfiguration, len(c.CutLines), c.Partitions, c.Partitions+1)
	}
	for i := 1; i < len(c.CutLines); i++ {
		if c.CutLines[i] <= c.CutLines[i-1] {
			return fmt.Errorf("%w: cut lines must be strictly ascending, got %v then %v",
				ErrInvalidConfiguration, c.CutLines[i-1], c.CutLines[i])
		}
	}
	return nil
}

// StartFor returns the start position for partition i. A lone start
// position is shared across all partitions.
func (c *Config) StartFor(i int) Point {
	if len(c.Starts) == 1 {
		return c.Starts[0]
	}
	return c.Starts[i]
}
