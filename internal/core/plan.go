package core

// Partition is a disjoint subset of valid cells assigned to one robot,
// with its own start position. A partition owns its cells exclusively.
type Partition struct {
	ID    int
	Start Point
	Cells []Cell
}

// Path is an ordered sequence of cell centers for one partition. Every
// cell assigned to the partition appears exactly once.
type Path []Point

// Metrics holds the derived cost of a completed path.
type Metrics struct {
	Distance float64 // Total Euclidean path length, including the leg from the start position.
	Time     float64 // Distance divided by the configured robot speed, in seconds.
}

// Result is one partition's planning output. When Err is non-nil the
// partition's planning failed and Path/Metrics must be ignored; other
// partitions' results remain valid.
type Result struct {
	Partition Partition
	Path      Path
	Metrics   Metrics
	Err       error
}
