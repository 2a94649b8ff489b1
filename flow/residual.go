package flow

import (
	"sort"

	"github.com/katalvlaran/flownet/core"
)

// Residual holds the mutable residual-capacity state of one computation:
// a flat arc→capacity table plus a sorted adjacency index. It is derived
// once from an immutable core.Network and is the only structure the engine
// mutates. A Residual is owned by exactly one computation; concurrent
// computations over the same network must each build their own.
//
// Invariant, held at all times: for every arc pair,
// residual(u,v) + residual(v,u) == capacity(u,v) + capacity(v,u), and no
// residual capacity is negative. A violation is an engine defect surfaced
// as InvariantError, never a normal error.
type Residual struct {
	eps float64
	cap map[core.Arc]float64
	out map[string][]string // neighbors over forward ∪ reverse arcs, ascending
}

// Snapshot is a deep, independently-mutable copy of a Residual's capacity
// table at one point in time. Later augmentations never alter a Snapshot.
type Snapshot map[core.Arc]float64

// Capacity returns the snapshot's residual capacity for arc u→v and whether
// that arc is part of the snapshot.
func (s Snapshot) Capacity(u, v string) (float64, bool) {
	c, ok := s[core.Arc{From: u, To: v}]
	return c, ok
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for arc, c := range s {
		out[arc] = c
	}

	return out
}

// NewResidual materializes the residual graph of net: every forward edge
// starts with residual = capacity, and every forward edge lacking an
// explicit counter-edge gets a reverse arc with residual 0. This runs once,
// at construction, independent of which PathFinder is used later.
//
// eps is the zero-capacity threshold; values ≤ 0 fall back to
// DefaultEpsilon.
//
// Complexity: O(N + E log d_max) for the sorted adjacency index.
func NewResidual(net *core.Network, eps float64) (*Residual, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	r := &Residual{
		eps: eps,
		cap: make(map[core.Arc]float64, 2*net.Size()),
		out: make(map[string][]string, net.Order()),
	}

	// Forward arcs carry their full capacity.
	for _, e := range net.Edges() {
		r.cap[core.Arc{From: e.From, To: e.To}] = e.Capacity
	}
	// Reverse arcs start empty unless the network declares them forward.
	for _, e := range net.Edges() {
		rev := core.Arc{From: e.To, To: e.From}
		if _, ok := r.cap[rev]; !ok {
			r.cap[rev] = 0
		}
	}

	// Adjacency over all known arcs, ascending per node. Every network node
	// appears, including isolated ones.
	for _, id := range net.NodeIDs() {
		r.out[id] = nil
	}
	for arc := range r.cap {
		r.out[arc.From] = append(r.out[arc.From], arc.To)
	}
	for _, nbrs := range r.out {
		sort.Strings(nbrs)
	}

	return r, nil
}

// Has reports whether id is a node of the residual graph.
func (r *Residual) Has(id string) bool {
	_, ok := r.out[id]
	return ok
}

// Out returns the neighbors of u (over forward and reverse arcs) in
// ascending ID order. The slice is shared; callers must not mutate it.
func (r *Residual) Out(u string) []string {
	return r.out[u]
}

// Capacity returns the current residual capacity of arc u→v.
// Returns ErrArcNotFound if the pair is not part of the residual graph.
func (r *Residual) Capacity(u, v string) (float64, error) {
	c, ok := r.cap[core.Arc{From: u, To: v}]
	if !ok {
		return 0, ErrArcNotFound
	}

	return c, nil
}

// admissible reports whether arc u→v can still carry flow.
func (r *Residual) admissible(u, v string) bool {
	return r.cap[core.Arc{From: u, To: v}] > r.eps
}

// Augment pushes flow along path: each consecutive arc loses flow units of
// residual capacity and its reverse gains them. The caller guarantees
// flow ≤ bottleneck(path); a residual capacity driven below -eps is an
// engine defect reported as InvariantError. Values within [-eps, 0] are
// rounding noise and clamp to zero.
func (r *Residual) Augment(path []string, flow float64) error {
	if len(path) < 2 {
		return ErrPathTooShort
	}

	for i := 0; i < len(path)-1; i++ {
		fw := core.Arc{From: path[i], To: path[i+1]}
		if _, ok := r.cap[fw]; !ok {
			return ErrArcNotFound
		}
		bw := fw.Reverse()

		r.cap[fw] -= flow
		r.cap[bw] += flow

		if r.cap[fw] < -r.eps {
			return InvariantError{Arc: fw, Residual: r.cap[fw]}
		}
		if r.cap[fw] < 0 {
			r.cap[fw] = 0
		}
	}

	return nil
}

// Snapshot returns a deep copy of the current residual state for history
// retention.
// Complexity: O(E).
func (r *Residual) Snapshot() Snapshot {
	return Snapshot(r.cap).Clone()
}
