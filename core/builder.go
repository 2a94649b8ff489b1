package core

import (
	"fmt"
	"sort"
)

// Builder accumulates nodes and edges, then validates and freezes them into
// an immutable Network. A zero-value Builder is not usable; call NewBuilder.
//
// Builder itself is not safe for concurrent use; the Network it produces is.
type Builder struct {
	nodes map[string]Node
	edges map[Arc]float64
	errs  []error
}

// NewBuilder returns an empty Builder.
// Complexity: O(1).
func NewBuilder() *Builder {
	return &Builder{
		nodes: make(map[string]Node),
		edges: make(map[Arc]float64),
	}
}

// AddNode declares a node with the given role. Declaring an empty ID or the
// same ID twice is recorded as a construction error and surfaced by Build.
// Returns the Builder for chaining.
func (b *Builder) AddNode(id string, role NodeRole) *Builder {
	if id == "" {
		b.errs = append(b.errs, ErrEmptyNodeID)
		return b
	}
	if _, ok := b.nodes[id]; ok {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrDuplicateNode, id))
		return b
	}
	b.nodes[id] = Node{ID: id, Role: role}

	return b
}

// AddEdge declares a directed edge u→v with the given capacity. The edge is
// validated eagerly: capacity must be strictly positive, both endpoints must
// already be declared, u must differ from v, and (u,v) must be new.
// Violations are recorded and surfaced by Build. Returns the Builder.
func (b *Builder) AddEdge(u, v string, capacity float64) *Builder {
	if capacity <= 0 {
		b.errs = append(b.errs, fmt.Errorf("%w: %s→%s has capacity %g", ErrNonPositiveCapacity, u, v, capacity))
		return b
	}
	if u == v {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrSelfLoop, u))
		return b
	}
	if _, ok := b.nodes[u]; !ok {
		b.errs = append(b.errs, fmt.Errorf("%w: edge tail %q", ErrNodeNotFound, u))
		return b
	}
	if _, ok := b.nodes[v]; !ok {
		b.errs = append(b.errs, fmt.Errorf("%w: edge head %q", ErrNodeNotFound, v))
		return b
	}
	arc := Arc{From: u, To: v}
	if _, ok := b.edges[arc]; ok {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrDuplicateEdge, arc))
		return b
	}
	b.edges[arc] = capacity

	return b
}

// Build validates the accumulated declarations and returns the frozen
// Network. The first recorded construction error is returned and no Network
// is produced. Build additionally requires at least one source-role node and
// at least one sink-role node.
//
// Steps:
//  1. Surface the first deferred AddNode/AddEdge error, if any.
//  2. Verify ≥1 source and ≥1 sink role.
//  3. Copy nodes and edges into the Network (the Builder stays usable,
//     but later mutations never leak into an already-built Network).
//  4. Materialize the sorted indexes: node order, edge list, adjacency.
//
// Complexity: O(N log N + E log E).
func (b *Builder) Build() (*Network, error) {
	// 1) Deferred construction errors, in declaration order.
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	// 2) Role presence.
	var hasSource, hasSink bool
	for _, n := range b.nodes {
		switch n.Role {
		case RoleSource:
			hasSource = true
		case RoleSink:
			hasSink = true
		}
	}
	if !hasSource {
		return nil, ErrNoSource
	}
	if !hasSink {
		return nil, ErrNoSink
	}

	// 3) Copy state so the Network owns its tables outright.
	net := &Network{
		nodes: make(map[string]Node, len(b.nodes)),
		edges: make(map[Arc]float64, len(b.edges)),
		out:   make(map[string][]string, len(b.nodes)),
	}
	for id, n := range b.nodes {
		net.nodes[id] = n
	}
	for arc, c := range b.edges {
		net.edges[arc] = c
	}

	// 4) Sorted indexes: node order, forward adjacency, terminal lists.
	net.order = make([]string, 0, len(net.nodes))
	for id := range net.nodes {
		net.order = append(net.order, id)
	}
	sort.Strings(net.order)

	for arc := range net.edges {
		net.out[arc.From] = append(net.out[arc.From], arc.To)
	}
	for _, nbrs := range net.out {
		sort.Strings(nbrs)
	}

	for _, id := range net.order {
		switch net.nodes[id].Role {
		case RoleSource:
			net.sources = append(net.sources, id)
		case RoleSink:
			net.sinks = append(net.sinks, id)
		}
	}

	return net, nil
}
