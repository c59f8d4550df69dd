package core

// Cell is one square sampling unit of the coverage grid.
// Validity is assigned once during filtering and never mutated afterward.
type Cell struct {
	Row, Col int
	Center   Point
	Size     float64
	Valid    bool
}

// Before reports whether c precedes o in deterministic grid order:
// lower row first, then lower column. Used as the tie-break rule when
// two cells are equidistant from a query point.
func (c Cell) Before(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Grid is the full cell lattice covering the boundary's bounding box.
// Cells are stored row-major with deterministic (Row, Col) indices; the
// lattice is anchored at Origin, the bounding box minimum corner, so
// partition cut lines snapped to cell-size multiples land on cell edges.
type Grid struct {
	Origin   Point
	CellSize float64
	Rows     int
	Cols     int
	Cells    []Cell
}

// At returns the cell at (row, col), or nil if out of range.
func (g *Grid) At(row, col int) *Cell {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return nil
	}
	return &g.Cells[row*g.Cols+col]
}

// Bounds returns the extent of the full lattice.
func (g *Grid) Bounds() Bounds {
	return Bounds{
		Min: g.Origin,
		Max: Point{
			X: g.Origin.X + float64(g.Cols)*g.CellSize,
			Y: g.Origin.Y + float64(g.Rows)*g.CellSize,
		},
	}
}

// ValidCells returns the cells that passed validity filtering, in
// row-major order.
func (g *Grid) ValidCells() []Cell {
	var out []Cell
	for _, c := range g.Cells {
		if c.Valid {
			out = append(out, c)
		}
	}
	return out
}
