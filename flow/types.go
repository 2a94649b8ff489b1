package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/metrics"
)

// DefaultEpsilon is the threshold below which residual capacities are
// treated as zero, absorbing float64 rounding noise.
const DefaultEpsilon = 1e-9

// Sentinel errors for flow computation.
var (
	// ErrNetworkNil is returned when a nil network pointer is passed.
	ErrNetworkNil = errors.New("flow: network is nil")

	// ErrSourceNotFound is returned when the specified source node is missing.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound is returned when the specified sink node is missing.
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrSourceIsSink is returned when source and sink name the same node.
	ErrSourceIsSink = errors.New("flow: source equals sink")

	// ErrArcNotFound is returned by residual lookups for a node pair the
	// graph has never known in either direction.
	ErrArcNotFound = errors.New("flow: arc not found in residual graph")

	// ErrInvariant is the internal defect class: it marks a bug in the
	// engine, not bad input. It is never recovered or retried.
	ErrInvariant = errors.New("flow: internal invariant violated")

	// ErrPathTooShort indicates an augmenting path with fewer than two nodes
	// reached the augmentor.
	ErrPathTooShort = fmt.Errorf("%w: augmenting path shorter than two nodes", ErrInvariant)
)

// InvariantError reports a residual capacity driven negative — a defect in
// the engine. It unwraps to ErrInvariant.
type InvariantError struct {
	Arc      core.Arc
	Residual float64
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("flow: negative residual capacity %g on arc %s", e.Residual, e.Arc)
}

// Unwrap ties InvariantError into the ErrInvariant defect class.
func (e InvariantError) Unwrap() error { return ErrInvariant }

// VisitFunc observes each node a PathFinder examines, in examination order.
// Compute uses it to drive the metrics tracker.
type VisitFunc func(id string)

// PathFinder searches the residual graph for an augmenting path from source
// to sink, traversing only arcs with residual capacity above epsilon and
// never revisiting a node within one search.
//
// FindPath returns (nil, nil) when no augmenting path exists — the normal
// loop-termination signal, not an error. A non-nil error means the search
// was cancelled or hit an engine defect.
type PathFinder interface {
	// Name identifies the strategy, e.g. "bfs" or "dfs".
	Name() string

	// FindPath returns the next augmenting path as a node-ID sequence
	// [source, …, sink], or nil when none remains. visit, if non-nil,
	// fires once per node examined.
	FindPath(ctx context.Context, r *Residual, source, sink string, visit VisitFunc) ([]string, error)
}

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds the knobs for one max-flow computation.
type Options struct {
	// Ctx allows cancellation and deadlines; checked at the top of the
	// search loop, before each PathFinder invocation.
	Ctx context.Context

	// Finder is the augmenting-path strategy. Defaults to BFS().
	Finder PathFinder

	// Epsilon: residual capacities ≤ Epsilon are treated as zero.
	Epsilon float64

	// Tracker receives per-step metrics. Defaults to a fresh tracker
	// owned by the computation.
	Tracker *metrics.Tracker

	// Verbose, if true, prints each augmenting path and its flow.
	Verbose bool
}

// DefaultOptions returns production-safe defaults: background context,
// BFS finder, DefaultEpsilon, private tracker, quiet.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Finder:  BFS(),
		Epsilon: DefaultEpsilon,
	}
}

// normalize fills zero-valued fields with defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Finder == nil {
		o.Finder = BFS()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Tracker == nil {
		o.Tracker = metrics.NewTracker()
	}
}

// WithContext sets the context used for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFinder selects the augmenting-path strategy.
func WithFinder(f PathFinder) Option {
	return func(o *Options) {
		if f != nil {
			o.Finder = f
		}
	}
}

// WithEpsilon overrides the zero-capacity threshold. Non-positive values
// are ignored and DefaultEpsilon is used.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithTracker injects a caller-owned metrics tracker. Compute restarts it.
func WithTracker(t *metrics.Tracker) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracker = t
		}
	}
}

// WithVerbose enables printing of each augmentation.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}
