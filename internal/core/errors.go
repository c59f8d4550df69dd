package core

import "errors"

// Planning error taxonomy. Configuration errors are detected eagerly,
// before any grid or index work, and carry the offending value via
// fmt.Errorf("%w: ...") wrapping. Match with errors.Is.
var (
	// ErrInvalidConfiguration covers non-positive cell size or speed,
	// degenerate polygons, and mismatched start positions.
	ErrInvalidConfiguration = errors.New("coverage: invalid configuration")

	// ErrPartition covers a partition count incompatible with the valid
	// cell set, or a partition that would end up empty.
	ErrPartition = errors.New("coverage: partition error")

	// ErrIndexInconsistency is an internal bookkeeping failure inside
	// the path builder: the spatial index returned nothing while cells
	// remained. Fatal for the affected partition, never retried.
	ErrIndexInconsistency = errors.New("coverage: spatial index inconsistency")
)
