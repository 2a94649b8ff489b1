package core

import (
	"errors"
	"fmt"
)

// Synthetic terminal IDs introduced by AggregateTerminals.
const (
	// SuperSource is the ID of the synthetic source added by AggregateTerminals.
	SuperSource = "__super_source__"

	// SuperSink is the ID of the synthetic sink added by AggregateTerminals.
	SuperSink = "__super_sink__"
)

// ErrReservedNodeID indicates a network already uses a synthetic terminal ID.
var ErrReservedNodeID = errors.New("core: reserved node ID in use")

// AggregateTerminals derives a single-pair network from a multi-terminal one:
// a synthetic SuperSource gains an edge to every declared source and every
// declared sink gains an edge to the synthetic SuperSink. Original terminals
// are demoted to RoleIntermediate; node and edge sets are otherwise copied
// verbatim.
//
// Each synthetic edge carries the total capacity the terminal it reaches can
// actually move (sum of that source's outgoing, or that sink's incoming,
// capacities), so aggregation never constrains the achievable flow. Terminals
// that cannot move any flow get no synthetic edge.
//
// The input network is not modified. Returns the derived network together
// with the two synthetic terminal IDs to pass to the flow engine.
//
// Complexity: O(N log N + E log E) — dominated by the rebuild.
func AggregateTerminals(net *Network) (agg *Network, source, sink string, err error) {
	if net == nil {
		return nil, "", "", ErrNetworkNil
	}
	if net.HasNode(SuperSource) || net.HasNode(SuperSink) {
		return nil, "", "", fmt.Errorf("%w: %q/%q", ErrReservedNodeID, SuperSource, SuperSink)
	}

	// Per-terminal throughput bounds.
	outSum := make(map[string]float64, len(net.sources))
	inSum := make(map[string]float64, len(net.sinks))
	for arc, c := range net.edges {
		outSum[arc.From] += c
		inSum[arc.To] += c
	}

	b := NewBuilder()
	b.AddNode(SuperSource, RoleSource)
	b.AddNode(SuperSink, RoleSink)
	for _, id := range net.order {
		// Original terminals become plain pass-through nodes.
		b.AddNode(id, RoleIntermediate)
	}
	for _, e := range net.Edges() {
		b.AddEdge(e.From, e.To, e.Capacity)
	}
	for _, s := range net.sources {
		if outSum[s] > 0 {
			b.AddEdge(SuperSource, s, outSum[s])
		}
	}
	for _, t := range net.sinks {
		if inSum[t] > 0 {
			b.AddEdge(t, SuperSink, inSum[t])
		}
	}

	agg, err = b.Build()
	if err != nil {
		return nil, "", "", err
	}

	return agg, SuperSource, SuperSink, nil
}
