// Package metrics tracks per-run counters for flow computations: search
// steps, visited nodes, augmenting paths, flow pushed, per-arc residual
// capacities, and elapsed wall time.
//
// A Tracker is owned by exactly one computation at a time and is not safe
// for concurrent use. Start must be called before any other method;
// violating that ordering yields ErrNotTracking. Report returns an
// immutable, deep-copied snapshot, so retained reports are never altered by
// later tracking.
package metrics

import (
	"errors"
	"time"

	"github.com/katalvlaran/flownet/core"
)

// ErrNotTracking is returned when a Tracker is used before Start.
var ErrNotTracking = errors.New("metrics: tracking not started")

// Report is an immutable snapshot of a Tracker at one point in time.
type Report struct {
	// Elapsed is the wall time since Start.
	Elapsed time.Duration

	// Steps counts nodes examined by path searches (not augmentations).
	Steps int

	// Paths counts successful augmentations so far.
	Paths int

	// TotalFlow is the cumulative flow pushed so far.
	TotalFlow float64

	// Visited lists distinct nodes examined by searches, in first-seen order.
	Visited []string

	// ResidualCaps maps each arc touched by an augmentation to its residual
	// capacity at snapshot time.
	ResidualCaps map[core.Arc]float64
}

// Tracker accumulates computation metrics between Start and the final Report.
type Tracker struct {
	started   bool
	start     time.Time
	steps     int
	paths     int
	totalFlow float64
	visited   []string
	seen      map[string]bool
	residual  map[core.Arc]float64
}

// NewTracker returns a Tracker in the not-started state.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Start resets all counters and records the start time. Calling Start on a
// running Tracker begins a fresh run.
func (t *Tracker) Start() {
	t.started = true
	t.start = time.Now()
	t.steps = 0
	t.paths = 0
	t.totalFlow = 0
	t.visited = t.visited[:0]
	t.seen = make(map[string]bool)
	t.residual = make(map[core.Arc]float64)
}

// IncrementStep records one node examination by a path search.
func (t *Tracker) IncrementStep() error {
	if !t.started {
		return ErrNotTracking
	}
	t.steps++
	searchSteps.Inc()

	return nil
}

// AddVisited records a node examined by a search. Repeat visits across
// searches are deduplicated; first-seen order is preserved.
func (t *Tracker) AddVisited(id string) error {
	if !t.started {
		return ErrNotTracking
	}
	if !t.seen[id] {
		t.seen[id] = true
		t.visited = append(t.visited, id)
		visitedNodes.Inc()
	}

	return nil
}

// AddPath records one successful augmentation pushing the given flow.
func (t *Tracker) AddPath(flow float64) error {
	if !t.started {
		return ErrNotTracking
	}
	t.paths++
	t.totalFlow += flow
	augmentations.Inc()
	flowPushed.Add(flow)

	return nil
}

// UpdateResidual records the residual capacity of one arc after an
// augmentation touched it.
func (t *Tracker) UpdateResidual(arc core.Arc, capacity float64) error {
	if !t.started {
		return ErrNotTracking
	}
	t.residual[arc] = capacity

	return nil
}

// Report returns an immutable snapshot of the current counters. The elapsed
// time is computed relative to Start; tracked state is not mutated.
func (t *Tracker) Report() (Report, error) {
	if !t.started {
		return Report{}, ErrNotTracking
	}

	visited := make([]string, len(t.visited))
	copy(visited, t.visited)
	residual := make(map[core.Arc]float64, len(t.residual))
	for arc, c := range t.residual {
		residual[arc] = c
	}

	return Report{
		Elapsed:      time.Since(t.start),
		Steps:        t.steps,
		Paths:        t.paths,
		TotalFlow:    t.totalFlow,
		Visited:      visited,
		ResidualCaps: residual,
	}, nil
}
