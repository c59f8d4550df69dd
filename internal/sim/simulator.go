// Package sim replays planned coverage paths against simulated time.
//
// Each robot advances along its partition's path at the configured speed
// with a fixed timestep; the simulator tracks how many planned cells have
// been covered as time passes. Replay is a verification aid: a completed
// run must cover every planned cell, and its duration must agree with
// the planner's time metric up to one timestep per robot.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/core"
)

// Config controls one replay run.
type Config struct {
	// Results are the planner's per-partition rows. Rows carrying an
	// error are skipped and counted in Metrics.SkippedPartitions.
	Results []core.Result

	// Speed in meters per second, shared by all robots.
	Speed float64

	// TimeStep in seconds.
	TimeStep float64

	// Verbose prints per-sample progress.
	Verbose bool
}

// DefaultConfig returns the standard replay parameters.
func DefaultConfig() Config {
	return Config{
		Speed:    4,
		TimeStep: 0.1,
	}
}

// Sample is one point of the coverage-over-time series.
type Sample struct {
	T       float64
	Covered int
}

// Metrics aggregates one replay run.
type Metrics struct {
	StartTime     time.Time
	EndTime       time.Time
	SimulatedTime float64

	CellsPlanned      int
	CellsCovered      int
	SkippedPartitions int

	Coverage []Sample
}

// robotState tracks one robot's progress along its path.
type robotState struct {
	pos  core.Point
	path core.Path
	next int // index of the next path point to reach
	done bool
}

// Simulator replays a set of planned paths.
type Simulator struct {
	config  Config
	robots  []*robotState
	metrics Metrics
}

// NewSimulator prepares a replay of the given results.
func NewSimulator(config Config) *Simulator {
	s := &Simulator{config: config}
	for _, r := range config.Results {
		if r.Err != nil {
			s.metrics.SkippedPartitions++
			continue
		}
		s.metrics.CellsPlanned += len(r.Path)
		s.robots = append(s.robots, &robotState{
			pos:  r.Partition.Start,
			path: r.Path,
			done: len(r.Path) == 0,
		})
	}
	return s
}

// Run executes the replay until every robot finishes its path or the
// context is cancelled. A cancelled replay returns partial metrics and
// the context's error; partial coverage must not be treated as complete.
func (s *Simulator) Run(ctx context.Context) (*Metrics, error) {
	if s.config.Speed <= 0 {
		return nil, fmt.Errorf("%w: speed %v must be positive", core.ErrInvalidConfiguration, s.config.Speed)
	}
	if s.config.TimeStep <= 0 {
		return nil, fmt.Errorf("%w: timestep %v must be positive", core.ErrInvalidConfiguration, s.config.TimeStep)
	}

	s.metrics.StartTime = time.Now()
	defer func() { s.metrics.EndTime = time.Now() }()

	for !s.allDone() {
		select {
		case <-ctx.Done():
			return &s.metrics, ctx.Err()
		default:
		}

		s.metrics.SimulatedTime += s.config.TimeStep
		step := s.config.Speed * s.config.TimeStep
		for _, r := range s.robots {
			s.advance(r, step)
		}
		s.metrics.Coverage = append(s.metrics.Coverage, Sample{
			T:       s.metrics.SimulatedTime,
			Covered: s.metrics.CellsCovered,
		})
		if s.config.Verbose {
			fmt.Printf("t=%.1fs covered %d/%d\n",
				s.metrics.SimulatedTime, s.metrics.CellsCovered, s.metrics.CellsPlanned)
		}
	}
	return &s.metrics, nil
}

// advance moves one robot by up to dist meters, consuming path legs and
// marking cells covered as their centers are reached.
func (s *Simulator) advance(r *robotState, dist float64) {
	for !r.done && dist > 0 {
		target := r.path[r.next]
		leg := r.pos.Dist(target)
		if leg > dist {
			// Partway along the leg: interpolate.
			frac := dist / leg
			r.pos = core.Point{
				X: r.pos.X + (target.X-r.pos.X)*frac,
				Y: r.pos.Y + (target.Y-r.pos.Y)*frac,
			}
			return
		}
		dist -= leg
		r.pos = target
		r.next++
		s.metrics.CellsCovered++
		if r.next == len(r.path) {
			r.done = true
		}
	}
}

func (s *Simulator) allDone() bool {
	for _, r := range s.robots {
		if !r.done {
			return false
		}
	}
	return true
}
