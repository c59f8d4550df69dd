package algo

import (
	"sort"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
)

// kdNode is one node of a partition's spatial index.
type kdNode struct {
	cell    core.Cell
	axis    axis
	left    *kdNode
	right   *kdNode
	parent  *kdNode
	visited bool
	alive   int // unvisited nodes in this subtree, self included
}

// Index is a balanced KD-tree over one partition's cell centers. It is
// built once and supports nearest-unvisited queries with removal:
// visiting a cell marks its node dead and decrements alive counters up
// the parent chain, so later queries prune exhausted subtrees instead of
// rescanning them. Equidistant candidates resolve to the lower
// (Row, Col) cell, making query results fully deterministic.
type Index struct {
	root  *kdNode
	nodes map[[2]int]*kdNode
	alive int
}

// NewIndex builds the index over the given cells.
func NewIndex(cells []core.Cell) *Index {
	ix := &Index{
		nodes: make(map[[2]int]*kdNode, len(cells)),
		alive: len(cells),
	}
	own := make([]core.Cell, len(cells))
	copy(own, cells)
	ix.root = ix.build(own, axisX, nil)
	return ix
}

// build constructs a balanced subtree by median split on the current
// axis. The sort is fully ordered (axis coordinate, then grid order) so
// the tree shape is identical across runs.
func (ix *Index) build(cells []core.Cell, ax axis, parent *kdNode) *kdNode {
	if len(cells) == 0 {
		return nil
	}
	sort.Slice(cells, func(i, j int) bool {
		a, b := coord(cells[i], ax), coord(cells[j], ax)
		if a != b {
			return a < b
		}
		return cells[i].Before(cells[j])
	})
	mid := len(cells) / 2
	n := &kdNode{
		cell:   cells[mid],
		axis:   ax,
		parent: parent,
		alive:  len(cells),
	}
	next := axisX
	if ax == axisX {
		next = axisY
	}
	n.left = ix.build(cells[:mid], next, n)
	n.right = ix.build(cells[mid+1:], next, n)
	ix.nodes[[2]int{n.cell.Row, n.cell.Col}] = n
	return n
}

func coord(c core.Cell, ax axis) float64 {
	if ax == axisY {
		return c.Center.Y
	}
	return c.Center.X
}

// Len returns the number of unvisited cells remaining.
func (ix *Index) Len() int { return ix.alive }

// Nearest returns the unvisited cell whose center is closest to q under
// Euclidean distance, or false if every cell has been visited.
func (ix *Index) Nearest(q core.Point) (core.Cell, bool) {
	var best *kdNode
	bestD2 := 0.0
	ix.search(ix.root, q, &best, &bestD2)
	if best == nil {
		return core.Cell{}, false
	}
	return best.cell, true
}

func (ix *Index) search(n *kdNode, q core.Point, best **kdNode, bestD2 *float64) {
	if n == nil || n.alive == 0 {
		return
	}
	if !n.visited {
		dx, dy := q.X-n.cell.Center.X, q.Y-n.cell.Center.Y
		d2 := dx*dx + dy*dy
		if *best == nil || d2 < *bestD2 || (d2 == *bestD2 && n.cell.Before((*best).cell)) {
			*best = n
			*bestD2 = d2
		}
	}
	qv := q.X
	nv := n.cell.Center.X
	if n.axis == axisY {
		qv, nv = q.Y, n.cell.Center.Y
	}
	near, far := n.left, n.right
	if qv > nv {
		near, far = n.right, n.left
	}
	ix.search(near, q, best, bestD2)
	// The far subtree can only hold the answer if the splitting plane is
	// no farther than the current best; equality stays in so equidistant
	// candidates are still considered for the tie-break.
	diff := qv - nv
	if *best == nil || diff*diff <= *bestD2 {
		ix.search(far, q, best, bestD2)
	}
}

// Remove marks the cell visited. Reports false if the cell is not in the
// index or was already removed.
func (ix *Index) Remove(c core.Cell) bool {
	n := ix.nodes[[2]int{c.Row, c.Col}]
	if n == nil || n.visited {
		return false
	}
	n.visited = true
	for p := n; p != nil; p = p.parent {
		p.alive--
	}
	ix.alive--
	return true
}
