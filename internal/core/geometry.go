// Package core defines domain models for swarm area coverage planning.
package core

import "math"

// Point is a 2D position in workspace coordinates (meters).
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Polygon is a ring of vertices. The ring is implicitly closed: the last
// vertex connects back to the first.
type Polygon []Point

// DistinctVertices counts vertices after collapsing exact duplicates,
// including a duplicated closing vertex.
func (pg Polygon) DistinctVertices() int {
	seen := make(map[Point]struct{}, len(pg))
	for _, v := range pg {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Point
}

// Width returns the X extent.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the Y extent.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// BoundingBox returns the axis-aligned bounding box of the polygon.
// Result is undefined for an empty polygon.
func (pg Polygon) BoundingBox() Bounds {
	b := Bounds{Min: pg[0], Max: pg[0]}
	for _, v := range pg[1:] {
		b.Min.X = math.Min(b.Min.X, v.X)
		b.Min.Y = math.Min(b.Min.Y, v.Y)
		b.Max.X = math.Max(b.Max.X, v.X)
		b.Max.Y = math.Max(b.Max.Y, v.Y)
	}
	return b
}
