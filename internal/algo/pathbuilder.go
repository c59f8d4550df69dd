package algo

import (
	"fmt"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
)

// BuilderState enumerates the path builder's states.
type BuilderState int

const (
	StateUnvisited BuilderState = iota // No cell visited yet.
	StateVisiting                      // At least one cell visited, more remain.
	StateDone                          // Every assigned cell visited.
)

func (s BuilderState) String() string {
	return [...]string{"Unvisited", "Visiting", "Done"}[s]
}

// PathBuilder sequences one partition's cells by always moving to the
// closest unvisited cell. One instance per partition; steps are strictly
// sequential because each query depends on the previous step's position.
type PathBuilder struct {
	index     *Index
	pos       core.Point
	state     BuilderState
	path      core.Path
	remaining int
}

// NewPathBuilder initializes a builder at the partition's start position
// with all assigned cells unvisited.
func NewPathBuilder(p core.Partition) *PathBuilder {
	b := &PathBuilder{
		index:     NewIndex(p.Cells),
		pos:       p.Start,
		state:     StateUnvisited,
		path:      make(core.Path, 0, len(p.Cells)),
		remaining: len(p.Cells),
	}
	if b.remaining == 0 {
		b.state = StateDone
	}
	return b
}

// State returns the current builder state.
func (b *PathBuilder) State() BuilderState { return b.state }

// Path returns the cells visited so far, in order.
func (b *PathBuilder) Path() core.Path { return b.path }

// Step performs one transition: visit the nearest unvisited cell and
// advance the current position to its center. No-op once Done.
// Returns ErrIndexInconsistency if the index comes back empty while
// cells remain; that aborts the partition's planning.
func (b *PathBuilder) Step() error {
	if b.state == StateDone {
		return nil
	}
	next, ok := b.index.Nearest(b.pos)
	if !ok {
		return fmt.Errorf("%w: index empty with %d cells remaining", core.ErrIndexInconsistency, b.remaining)
	}
	if !b.index.Remove(next) {
		return fmt.Errorf("%w: cell (%d,%d) visited twice", core.ErrIndexInconsistency, next.Row, next.Col)
	}
	b.path = append(b.path, next.Center)
	b.pos = next.Center
	b.remaining--
	if b.remaining == 0 {
		b.state = StateDone
	} else {
		b.state = StateVisiting
	}
	return nil
}

// Build runs the builder to completion and returns the full path.
func (b *PathBuilder) Build() (core.Path, error) {
	for b.state != StateDone {
		if err := b.Step(); err != nil {
			return nil, err
		}
	}
	return b.path, nil
}
