package flow

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/metrics"
)

// Result is the complete outcome of one max-flow computation: the flow
// value plus the replayable history external renderers and benchmarks
// consume. All lists are in discovery order.
type Result struct {
	// RunID uniquely identifies this computation for external correlation.
	RunID uuid.UUID

	// Strategy is the PathFinder label that produced this result.
	Strategy string

	// Source and Sink are the node IDs the flow was computed between.
	Source string
	Sink   string

	// MaxFlow is the final accumulated flow value.
	MaxFlow float64

	// Paths holds one augmenting path per successful augmentation.
	Paths [][]string

	// Metrics holds one tracker report per augmentation, aligned with Paths.
	Metrics []metrics.Report

	initial Snapshot
	final   Snapshot
	diffs   []Snapshot // per-step changed arcs with their new residuals
}

// Snapshots materializes the residual-state history: index 0 is the
// pre-loop state, index i the state after the i-th augmentation, so the
// list is one longer than Paths. History is stored as per-step diffs;
// full snapshots are rebuilt here, on demand, never during the loop.
//
// Complexity: O(len(Paths) · E).
func (res *Result) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(res.diffs)+1)
	cur := res.initial.Clone()
	out = append(out, cur)
	for _, diff := range res.diffs {
		cur = cur.Clone()
		for arc, c := range diff {
			cur[arc] = c
		}
		out = append(out, cur)
	}

	return out
}

// InitialResidual returns the pre-loop residual state.
func (res *Result) InitialResidual() Snapshot { return res.initial.Clone() }

// FinalResidual returns the residual state after the last augmentation.
func (res *Result) FinalResidual() Snapshot { return res.final.Clone() }

// Compute runs the Ford–Fulkerson loop from source to sink over net and
// returns the full Result, or an error with no partial output.
//
// The orchestrator passes through exactly two states, Searching and
// Terminated, in that order:
//
//  1. Validate inputs, derive the residual graph, start the tracker, and
//     record the initial snapshot — all before any search begins.
//  2. Searching: check the context, then ask the finder for a path.
//     Found: compute the bottleneck, apply it, accumulate flow, record the
//     step (path, residual diff, metrics report), stay in Searching.
//     None: transition to Terminated.
//  3. Terminated: return the accumulated Result. A finished computation is
//     never re-entered; run Compute again for a fresh one.
//
// Errors: ErrNetworkNil, ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink
// before any search; context cancellation between augmentations; any
// ErrInvariant-class defect aborts immediately.
func Compute(net *core.Network, source, sink string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	// Fail before any partial state is produced.
	if net == nil {
		return nil, ErrNetworkNil
	}
	if !net.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !net.HasNode(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}

	r, err := NewResidual(net, o.Epsilon)
	if err != nil {
		return nil, err
	}

	tracker := o.Tracker
	tracker.Start()

	res := &Result{
		RunID:    uuid.New(),
		Strategy: o.Finder.Name(),
		Source:   source,
		Sink:     sink,
		initial:  r.Snapshot(),
	}

	// The tracker is started above, so these cannot fail.
	visit := func(id string) {
		_ = tracker.IncrementStep()
		_ = tracker.AddVisited(id)
	}

	for {
		// Cooperative cancellation at the top of the Searching loop —
		// between augmentations, never mid-augmentation.
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}

		path, ferr := o.Finder.FindPath(o.Ctx, r, source, sink, visit)
		if ferr != nil {
			return nil, ferr
		}
		if path == nil {
			break // Terminated
		}

		delta, berr := Bottleneck(r, path)
		if berr != nil {
			return nil, berr
		}
		if aerr := Apply(r, path, delta); aerr != nil {
			return nil, aerr
		}
		res.MaxFlow += delta
		_ = tracker.AddPath(delta)

		if o.Verbose {
			fmt.Printf("augmenting path %v with flow %g\n", path, delta)
		}

		// Record the step: changed arcs with their post-augment residuals.
		diff := make(Snapshot, 2*(len(path)-1))
		for i := 0; i < len(path)-1; i++ {
			fw := core.Arc{From: path[i], To: path[i+1]}
			bw := fw.Reverse()
			diff[fw] = r.cap[fw]
			diff[bw] = r.cap[bw]
			_ = tracker.UpdateResidual(fw, r.cap[fw])
			_ = tracker.UpdateResidual(bw, r.cap[bw])
		}
		res.diffs = append(res.diffs, diff)
		res.Paths = append(res.Paths, path)

		report, rerr := tracker.Report()
		if rerr != nil {
			return nil, rerr
		}
		res.Metrics = append(res.Metrics, report)
	}

	res.final = r.Snapshot()

	if final, rerr := tracker.Report(); rerr == nil {
		metrics.ObserveComputation(res.Strategy, final.Elapsed)
	}

	return res, nil
}
