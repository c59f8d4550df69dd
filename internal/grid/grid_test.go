package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/geo"
)

func square(x0, y0, size float64) core.Polygon {
	return core.Polygon{{X: x0, Y: y0}, {X: x0 + size, Y: y0}, {X: x0 + size, Y: y0 + size}, {X: x0, Y: y0 + size}}
}

func TestDiscretizeUnitSquareGrid(t *testing.T) {
	g, err := Discretize(square(0, 0, 10), 1)
	require.NoError(t, err)

	assert.Equal(t, 10, g.Rows)
	assert.Equal(t, 10, g.Cols)
	assert.Len(t, g.Cells, 100)

	// Centers lie at half-integer coordinates from (0.5,0.5) to (9.5,9.5).
	for _, c := range g.Cells {
		assert.Equal(t, float64(c.Col)+0.5, c.Center.X)
		assert.Equal(t, float64(c.Row)+0.5, c.Center.Y)
	}
	first, last := g.Cells[0], g.Cells[99]
	assert.Equal(t, core.Point{X: 0.5, Y: 0.5}, first.Center)
	assert.Equal(t, core.Point{X: 9.5, Y: 9.5}, last.Center)
}

func TestDiscretizeRoundsUpPartialCells(t *testing.T) {
	// A 5x3 box with cell size 2 needs 3x2 cells to cover it.
	g, err := Discretize(core.Polygon{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 3}, {X: 0, Y: 3}}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 3, g.Cols)
}

func TestDiscretizeInvalidCellSize(t *testing.T) {
	_, err := Discretize(square(0, 0, 10), 0)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = Discretize(square(0, 0, 10), -2)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = Discretize(square(0, 0, 10), 12)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestFilterValidNoZones(t *testing.T) {
	g, err := Discretize(square(0, 0, 10), 1)
	require.NoError(t, err)

	valid := FilterValid(g, geo.NewAdapter(square(0, 0, 10), nil))
	assert.Len(t, valid, 100)
}

func TestFilterValidNoGoSubSquare(t *testing.T) {
	// No-go zone covering (4,4)-(6,6) knocks out exactly the 4 cells it
	// fully encloses; edge-adjacent cells only touch it.
	boundary := square(0, 0, 10)
	noGo := []core.Polygon{square(4, 4, 2)}

	g, err := Discretize(boundary, 1)
	require.NoError(t, err)

	valid := FilterValid(g, geo.NewAdapter(boundary, noGo))
	assert.Len(t, valid, 96)
	for _, c := range valid {
		inside := c.Center.X > 4 && c.Center.X < 6 && c.Center.Y > 4 && c.Center.Y < 6
		assert.False(t, inside, "valid cell center %v inside no-go square", c.Center)
	}
}

func TestFilterValidDeterministic(t *testing.T) {
	boundary := core.Polygon{{X: 18, Y: 95}, {X: 105, Y: 81}, {X: 93, Y: 0}, {X: 43, Y: 2}, {X: 20, Y: 16}, {X: 0, Y: 19}, {X: 0, Y: 76}}
	noGo := []core.Polygon{{{X: 40, Y: 29}, {X: 46, Y: 29}, {X: 43, Y: 11}, {X: 37, Y: 11}}}

	g1, err := Discretize(boundary, 2)
	require.NoError(t, err)
	g2, err := Discretize(boundary, 2)
	require.NoError(t, err)

	v1 := FilterValid(g1, geo.NewAdapter(boundary, noGo))
	v2 := FilterValid(g2, geo.NewAdapter(boundary, noGo))
	require.Equal(t, len(v1), len(v2))
	for i := range v1 {
		assert.Equal(t, v1[i], v2[i])
	}
}

func TestLatticeAlignment(t *testing.T) {
	// Cell edges must land on exact multiples of the cell size from the
	// bounding box minimum corner.
	boundary := core.Polygon{{X: 3, Y: 7}, {X: 13, Y: 7}, {X: 13, Y: 17}, {X: 3, Y: 17}}
	g, err := Discretize(boundary, 2)
	require.NoError(t, err)

	for _, c := range g.Cells {
		offX := (c.Center.X - 1 - g.Origin.X) / 2
		offY := (c.Center.Y - 1 - g.Origin.Y) / 2
		assert.Equal(t, offX, math.Trunc(offX))
		assert.Equal(t, offY, math.Trunc(offY))
	}
}
