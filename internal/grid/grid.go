// Package grid discretizes a boundary polygon into a regular lattice of
// square cells and classifies each cell against the boundary and the
// no-go zones.
package grid

import (
	"fmt"
	"math"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/geo"
)

// Discretize lays out square cells of the given size over the boundary's
// bounding box, anchored at the minimum corner. Cell edges form a lattice
// with spacing exactly cellSize, so partition cut lines snapped to
// cell-size multiples coincide with cell edges.
func Discretize(boundary core.Polygon, cellSize float64) (*core.Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %v must be positive", core.ErrInvalidConfiguration, cellSize)
	}
	bb := boundary.BoundingBox()
	if cellSize > bb.Width() || cellSize > bb.Height() {
		return nil, fmt.Errorf("%w: cell size %v exceeds boundary extent %vx%v",
			core.ErrInvalidConfiguration, cellSize, bb.Width(), bb.Height())
	}

	g := &core.Grid{
		Origin:   bb.Min,
		CellSize: cellSize,
		Cols:     int(math.Ceil(bb.Width() / cellSize)),
		Rows:     int(math.Ceil(bb.Height() / cellSize)),
	}
	g.Cells = make([]core.Cell, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			g.Cells = append(g.Cells, core.Cell{
				Row: r,
				Col: c,
				Center: core.Point{
					X: bb.Min.X + (float64(c)+0.5)*cellSize,
					Y: bb.Min.Y + (float64(r)+0.5)*cellSize,
				},
				Size: cellSize,
			})
		}
	}
	return g, nil
}

// FilterValid assigns each cell's validity: the center must lie inside
// the boundary and the cell's square region must not overlap any no-go
// zone. Returns the valid subset in row-major order. Validity is
// assigned exactly once; callers must not run the filter twice.
func FilterValid(g *core.Grid, adapter *geo.Adapter) []core.Cell {
	for i := range g.Cells {
		c := &g.Cells[i]
		c.Valid = adapter.PointInBoundary(c.Center) && !adapter.CellIntersectsNoGo(*c)
	}
	return g.ValidCells()
}
