// Package geo binds the planner's geometry predicates to polygon math
// from github.com/ctessum/geom. The planner consumes point-in-polygon
// and region-intersection tests as black-box predicates and implements
// no geometry itself.
//
// Convention, fixed for reproducibility: a point exactly on the boundary
// edge counts as inside the boundary, while a cell that only touches a
// no-go zone edge (zero-area overlap) does not count as intersecting it.
package geo

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
)

// Adapter evaluates validity predicates against one boundary polygon and
// a set of no-go zones. No-go zones are indexed in an r-tree so cell
// tests prune by bounding box before running exact intersections.
type Adapter struct {
	boundary geom.Polygon
	zones    *rtree.Rtree
	numZones int
}

// NewAdapter builds an adapter for the given boundary and no-go zones.
func NewAdapter(boundary core.Polygon, noGo []core.Polygon) *Adapter {
	a := &Adapter{
		boundary: toGeom(boundary),
		zones:    rtree.NewTree(2, 8),
		numZones: len(noGo),
	}
	for _, z := range noGo {
		a.zones.Insert(toGeom(z))
	}
	return a
}

// PointInBoundary reports whether p lies inside the boundary polygon.
// Points exactly on the edge count as inside.
func (a *Adapter) PointInBoundary(p core.Point) bool {
	return geom.Point{X: p.X, Y: p.Y}.Within(a.boundary) != geom.Outside
}

// CellIntersectsNoGo reports whether the cell's square region overlaps
// any no-go zone with positive area.
func (a *Adapter) CellIntersectsNoGo(c core.Cell) bool {
	if a.numZones == 0 {
		return false
	}
	half := c.Size / 2
	region := &geom.Bounds{
		Min: geom.Point{X: c.Center.X - half, Y: c.Center.Y - half},
		Max: geom.Point{X: c.Center.X + half, Y: c.Center.Y + half},
	}
	for _, hit := range a.zones.SearchIntersect(region) {
		zone := hit.(geom.Polygon)
		isect := zone.Intersection(region)
		if isect != nil && isect.Area() > 0 {
			return true
		}
	}
	return false
}

func toGeom(p core.Polygon) geom.Polygon {
	ring := make([]geom.Point, len(p))
	for i, v := range p {
		ring[i] = geom.Point{X: v.X, Y: v.Y}
	}
	return geom.Polygon{ring}
}
